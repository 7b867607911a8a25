package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// queryLogger routes GORM output through slog. Statements are logged at Info
// only in debug mode; slow statements and failures always surface.
type queryLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newQueryLogger(base *slog.Logger, debug bool) logger.Interface {
	level := logger.Warn
	if debug {
		level = logger.Info
	}

	return &queryLogger{
		logger:        base,
		level:         level,
		slowThreshold: defaultSlowQueryThreshold,
	}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) printf(ctx context.Context, enabledAt logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < enabledAt {
		return
	}

	l.logger.LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.logger.LogAttrs(ctx, slog.LevelError, "sql failed", append(queryAttrs(fc, elapsed), slog.String("error", err.Error()))...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.logger.LogAttrs(ctx, slog.LevelWarn, "slow sql", append(queryAttrs(fc, elapsed), slog.Duration("threshold", l.slowThreshold))...)
	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelInfo, "sql", queryAttrs(fc, elapsed)...)
	}
}

func queryAttrs(fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := fc()

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}
