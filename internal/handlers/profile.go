package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/middlewares"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
	"github.com/smolin2019/vehicle-auction-service/internal/services"
)

// ProfileGetter defines the interface that the service must implement.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ProfileResponse represents the caller's own profile
// swagger:model ProfileResponse
type ProfileResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`

	// User ID
	ID string `json:"id"`

	// Username
	// default: john_doe
	Username string `json:"username"`

	// Email
	// default: john@example.com
	Email string `json:"email"`

	// Account balance
	// default: 0.0
	Balance float64 `json:"balance"`

	// Administrator flag
	// default: false
	IsAdmin bool `json:"is_admin"`
}

// NewGetProfileHandler returns an HTTP handler for the caller's own profile.
// @Summary Get own profile
// @Tags account
// @Produce json
// @Success 200 {object} handlers.ProfileResponse "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /profile [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		user, err := svc.GetProfile(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			logger.Log.Errorw("failed to get profile", "user_id", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, ProfileResponse{
			Success:  true,
			ID:       user.UserID.String(),
			Username: user.Username,
			Email:    user.Email,
			Balance:  user.Balance,
			IsAdmin:  user.IsAdmin,
		})
	}
}
