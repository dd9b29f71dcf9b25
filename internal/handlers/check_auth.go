package handlers

import (
	"context"
	"net/http"

	"github.com/smolin2019/vehicle-auction-service/internal/jwt"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
)

// CheckAuthTokener defines only the methods needed by this handler.
type CheckAuthTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// CheckAuthRevocationChecker reports whether a token was revoked by logout.
type CheckAuthRevocationChecker interface {
	IsRevoked(ctx context.Context, tokenString string) (bool, error)
}

// CheckAuthResponse represents the authenticated identity
// swagger:model CheckAuthResponse
type CheckAuthResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`

	// User ID
	ID string `json:"id"`

	// Username
	// default: john_doe
	Username string `json:"username"`

	// Administrator flag
	// default: false
	IsAdmin bool `json:"is_admin"`
}

// NewCheckAuthHandler returns an HTTP handler that echoes the caller's
// identity if the presented token is valid.
// @Summary Check authentication
// @Description Returns the identity carried by the bearer token.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.CheckAuthResponse "Authenticated identity"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /check-auth [get]
// @Security BearerAuth
func NewCheckAuthHandler(tokenGetter CheckAuthTokener, revocationChecker CheckAuthRevocationChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		// A token revoked by logout must not pass the auth check, even
		// though its signature and expiry are still valid.
		if revocationChecker != nil {
			revoked, err := revocationChecker.IsRevoked(ctx, tokenStr)
			if err != nil {
				logger.Log.Errorw("failed to check token revocation", "error", err)
				writeError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			if revoked {
				writeError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
		}

		writeJSON(w, http.StatusOK, CheckAuthResponse{
			Success:  true,
			ID:       claims.UserID.String(),
			Username: claims.Username,
			IsAdmin:  claims.IsAdmin,
		})
	}
}
