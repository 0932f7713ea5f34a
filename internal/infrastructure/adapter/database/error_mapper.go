package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/amirhossein-jamali/calendar-units/internal/domain/error"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL error codes and classes the mapper cares about
const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgClassIntegrity       = "23"
	pgClassConnection      = "08"
	pgClassResources       = "53"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error from the given operation to a domain error.
// Missing rows become notFound so each repository can pick its own sentinel.
func (m *ErrorMapper) MapError(err error, operation string, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s: %s", domainErr.ErrDatabaseConnection, operation, err.Error())
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			return domainErr.ErrDuplicateCalendar
		case strings.HasPrefix(pgErr.Code, pgClassIntegrity):
			return fmt.Errorf("%w: %s", domainErr.ErrConstraintViolation, pgErr.Message)
		default:
			return fmt.Errorf("%w: %s: %s", domainErr.ErrDatabaseConnection, operation, pgErr.Message)
		}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) || m.isDuplicateMessage(err) {
		return domainErr.ErrDuplicateCalendar
	}

	return fmt.Errorf("%w: %s: %s", domainErr.ErrDatabaseConnection, operation, err.Error())
}

// IsTransient reports whether retrying the operation may succeed
func (m *ErrorMapper) IsTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgSerializationFailure ||
			pgErr.Code == pgDeadlockDetected ||
			strings.HasPrefix(pgErr.Code, pgClassConnection) ||
			strings.HasPrefix(pgErr.Code, pgClassResources)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "too many connections") ||
		strings.Contains(errMsg, "server closed") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "i/o timeout") ||
		strings.HasSuffix(errMsg, "eof")
}

func (m *ErrorMapper) isDuplicateMessage(err error) bool {
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint")
}
