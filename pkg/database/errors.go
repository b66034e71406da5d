package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgIntegrityClass      = "23"
	pgDataExceptionClass  = "22"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	return pgCode(err) == pgForeignKeyViolation
}

// IsIntegrityViolation reports any class 23 error (unique, foreign key, not null, check).
func IsIntegrityViolation(err error) bool {
	return strings.HasPrefix(pgCode(err), pgIntegrityClass)
}

// IsDataException reports any class 22 error (value too long, bad numeric, invalid text).
func IsDataException(err error) bool {
	return strings.HasPrefix(pgCode(err), pgDataExceptionClass)
}
