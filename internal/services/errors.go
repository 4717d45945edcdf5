package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound marks lookups for ids that do not resolve. Handlers translate
// it to a 404.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate marks uniqueness conflicts a caller can act on (blog slug,
// content key). Handlers translate it to a 400 with an "already exists"
// message.
var ErrDuplicate = errors.New("already exists")

// ValidationError carries a user-facing message for a rejected request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isUniqueViolation matches PostgreSQL duplicate-key errors (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
