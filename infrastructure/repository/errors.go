package repository

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/vfg2006/marketing-warehouse-api/internal/domain"
)

// SQLSTATE codes the warehouse cares about.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// translateError maps driver errors onto the domain taxonomy. Constraint
// names are kept in the error so callers can log which rule was violated.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewWarehouseError(op, domain.ErrNotFound, "")
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeUniqueViolation:
			return domain.NewWarehouseError(op, domain.ErrConflict, pqErr.Constraint)
		case codeForeignKeyViolation:
			return domain.NewWarehouseError(op, domain.ErrReferentialIntegrity, pqErr.Constraint)
		case codeSerializationFailure, codeDeadlockDetected:
			return domain.NewWarehouseError(op, domain.ErrTransactionAborted, pqErr.Message)
		}
	}

	return domain.NewWarehouseError(op, err, "")
}

// IsRetryable reports whether an error is a transient transaction failure
// worth retrying with backoff.
func IsRetryable(err error) bool {
	return errors.Is(err, domain.ErrTransactionAborted)
}
