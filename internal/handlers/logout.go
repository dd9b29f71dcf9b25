package handlers

import (
	"context"
	"net/http"

	"github.com/smolin2019/vehicle-auction-service/internal/logger"
)

// LogoutTokener defines only the token extraction needed by this handler.
type LogoutTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Logouter defines the interface that the service must implement.
type Logouter interface {
	Logout(ctx context.Context, tokenString string) error
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`
}

// NewLogoutHandler returns an HTTP handler that ends the current session.
// Logging out without a token is a no-op success, matching the semantics of
// clearing an absent session.
// @Summary Log out
// @Description Revokes the presented token for its remaining lifetime.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Logged out"
// @Router /logout [post]
func NewLogoutHandler(svc Logouter, tokenGetter LogoutTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err == nil && tokenStr != "" {
			if err := svc.Logout(ctx, tokenStr); err != nil {
				logger.Log.Errorw("failed to log out", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
		}

		writeJSON(w, http.StatusOK, LogoutResponse{Success: true})
	}
}
