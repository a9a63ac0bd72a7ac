package gorm

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	stdgorm "gorm.io/gorm"
)

// uniqueViolation is the postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

func IsNotFound(err error) bool {
	return err != nil && errors.Is(err, stdgorm.ErrRecordNotFound)
}

func IsFoundButHasErrors(err error) bool {
	return err != nil && !errors.Is(err, stdgorm.ErrRecordNotFound)
}

func HasDbIssues(err error) bool {
	return IsNotFound(err) || IsFoundButHasErrors(err)
}

// IsDuplicate reports whether err comes from a unique index rejecting a write.
// It understands gorm's translated error, raw pgx errors and sqlite messages.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, stdgorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
