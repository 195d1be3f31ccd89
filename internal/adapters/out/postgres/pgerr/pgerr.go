// Package pgerr maps PostgreSQL driver failures onto the domain error
// taxonomy so handlers never inspect SQLSTATE codes themselves.
package pgerr

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"cafedelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes surfaced by concurrent writers.
const (
	serializationFailure = "40001"
	uniqueViolation      = "23505"
)

// Translate converts low-level database failures into domain errors.
// Serialization failures and duplicate keys become transaction conflicts;
// timeouts and dropped connections become remote unavailability. Anything
// else passes through unchanged, including nil.
func Translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case strings.Contains(err.Error(), serializationFailure),
		strings.Contains(err.Error(), uniqueViolation),
		errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewTransactionConflictError(op)
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, sql.ErrConnDone),
		strings.Contains(err.Error(), "connection refused"),
		strings.Contains(err.Error(), "database is closed"):
		return errs.NewRemoteUnavailableError(op)
	default:
		return err
	}
}
