package stripe

import (
	"fmt"
	"log/slog"
)

// leveledLogger adapts slog to the client library's logger interface.
type leveledLogger struct {
	logger *slog.Logger
}

func (l *leveledLogger) Debugf(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}

func (l *leveledLogger) Infof(format string, v ...any) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

func (l *leveledLogger) Warnf(format string, v ...any) {
	l.logger.Warn(fmt.Sprintf(format, v...))
}

func (l *leveledLogger) Errorf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...))
}
