package handler

import (
	"net/http"

	"github.com/vfg2006/marketing-warehouse-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-warehouse-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-warehouse-api/pkg/log"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "failed to decode request body", nil)
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			log.ForContext(r.Context()).Error(err)
			writeAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token": token,
		})
	}
}
