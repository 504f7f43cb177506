package persistence

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"neighbornet/internal/core"
)

const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

var (
	ErrNoDatabaseURL = errors.New("no DATABASE_URL provided")
)

// Translate maps driver errors to the core error taxonomy.
func Translate(err error, what string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", core.ErrNotFound, what)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolation:
			return fmt.Errorf("%w: %s references a missing record (%s)", core.ErrValidation, what, pgErr.ConstraintName)
		case uniqueViolation:
			return fmt.Errorf("%w: %s already exists", core.ErrValidation, what)
		}
	}

	return fmt.Errorf("%w: %s: %w", core.ErrUpstream, what, err)
}
