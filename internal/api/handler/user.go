package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-warehouse-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-warehouse-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-warehouse-api/pkg/log"
)

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUser registers a new user and returns it with a 201.
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.ForContext(r.Context()).Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "failed to decode request body", nil)
			return
		}

		user, err := service.CreateUser(r.Context(), req.Email, req.Password)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			writeAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(user); err != nil {
			log.ForContext(r.Context()).Error(err)
		}
	}
}

// GetUser returns a user by id.
func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}

		user, err := service.GetUserProfile(r.Context(), id)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			writeAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(user); err != nil {
			log.ForContext(r.Context()).Error(err)
		}
	}
}

// DeleteUser removes a user by id, responding 204 on success.
func DeleteUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}

		if err := service.DeleteUser(r.Context(), id); err != nil {
			log.ForContext(r.Context()).Error(err)
			writeAuthError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func userIDFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "user id is required", nil)
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "user id must be numeric", nil)
		return 0, false
	}

	return id, true
}

// writeAuthError unwraps AuthError so its code drives the HTTP status.
func writeAuthError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "unexpected error", nil)
}
