package apiErrors

import (
	"encoding/json"
	"net/http"
)

// API error codes grouped by concern.
const (
	// Authentication errors (1000-1999)
	ErrInvalidCredentials    = "AUTH_001"
	ErrUserNotFound          = "AUTH_002"
	ErrInvalidToken          = "AUTH_003"
	ErrExpiredToken          = "AUTH_004"
	ErrInsufficientPrivilege = "AUTH_005"
	ErrUserAlreadyExists     = "AUTH_006"

	// Validation errors (2000-2999)
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003"
	ErrUnprocessableData   = "VAL_004"

	// Resource errors (3000-3999)
	ErrResourceNotFound = "RES_001"
	ErrResourceConflict = "RES_002"

	// Warehouse errors (4000-4999)
	ErrReferentialIntegrity = "WH_001"
	ErrReconciliation       = "WH_002"
	ErrTransactionAborted   = "WH_003"

	// Server errors (5000-5999)
	ErrInternalServer    = "SRV_001"
	ErrDatabaseOperation = "SRV_002"
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusConflict,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusUnprocessableEntity,
	ErrUnprocessableData:     http.StatusUnprocessableEntity,
	ErrResourceNotFound:      http.StatusNotFound,
	ErrResourceConflict:      http.StatusConflict,
	ErrReferentialIntegrity:  http.StatusInternalServerError,
	ErrReconciliation:        http.StatusInternalServerError,
	ErrTransactionAborted:    http.StatusInternalServerError,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
}

// APIError is the standard error payload returned by every endpoint.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error payload with the HTTP status
// mapped from the code. Unknown codes default to 500.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error in an API error payload.
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
