package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// uniqueViolation reports whether err is a unique constraint violation and,
// when the driver error is still reachable, which constraint fired.
func uniqueViolation(err error) (constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return pgErr.ConstraintName, true
	}

	// TranslateError replaces the driver error and drops the constraint name.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", true
	}

	return "", false
}
