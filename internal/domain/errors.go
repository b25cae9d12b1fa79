package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every layer of the warehouse. Repositories
// translate driver errors into these; handlers translate them into HTTP
// status codes.
var (
	ErrNotFound             = errors.New("entity not found")
	ErrConflict             = errors.New("conflict with existing data")
	ErrValidation           = errors.New("validation failure")
	ErrReferentialIntegrity = errors.New("referential integrity failure")
	ErrReconciliation       = errors.New("reconciliation failure")
	ErrTransactionAborted   = errors.New("transaction aborted")
)

// WarehouseError carries the operation that failed alongside the base error.
type WarehouseError struct {
	Err     error
	Op      string
	Details string
}

func (e *WarehouseError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Err.Error(), e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
}

func (e *WarehouseError) Unwrap() error {
	return e.Err
}

func NewWarehouseError(op string, baseErr error, details string) *WarehouseError {
	return &WarehouseError{
		Err:     baseErr,
		Op:      op,
		Details: details,
	}
}
