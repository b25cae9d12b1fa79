package handler

import (
	"errors"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/marketing-warehouse-api/internal/domain"
	"github.com/vfg2006/marketing-warehouse-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func parseRequiredDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("date is required")
	}
	return time.Parse("2006-01-02", s)
}

// warehouseErrorCode maps the domain error taxonomy onto API error codes.
// Unknown errors fall through to a generic database operation failure.
func warehouseErrorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return apiErrors.ErrResourceNotFound
	case errors.Is(err, domain.ErrConflict):
		return apiErrors.ErrResourceConflict
	case errors.Is(err, domain.ErrValidation):
		return apiErrors.ErrUnprocessableData
	case errors.Is(err, domain.ErrReferentialIntegrity):
		return apiErrors.ErrReferentialIntegrity
	case errors.Is(err, domain.ErrReconciliation):
		return apiErrors.ErrReconciliation
	case errors.Is(err, domain.ErrTransactionAborted):
		return apiErrors.ErrTransactionAborted
	default:
		return apiErrors.ErrDatabaseOperation
	}
}

// writeWarehouseError maps the domain error onto the API payload. Codes in
// the 500 class respond with a generic message; constraint names and driver
// detail stay in the logs.
func writeWarehouseError(w http.ResponseWriter, err error) {
	code := warehouseErrorCode(err)

	message := err.Error()
	switch code {
	case apiErrors.ErrReferentialIntegrity, apiErrors.ErrReconciliation,
		apiErrors.ErrTransactionAborted, apiErrors.ErrDatabaseOperation:
		message = "unexpected error"
	}

	apiErrors.WriteError(w, code, message, nil)
}
