package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/services"
)

// UserProfileUpdater defines the interface that the service must implement.
type UserProfileUpdater interface {
	UpdateUser(ctx context.Context, userID uuid.UUID, username, email string, balance float64) error
}

// UpdateUserRequest represents the JSON body for overwriting a user record
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// Username
	// required: true
	Username string `json:"username"`

	// Email
	// required: true
	Email string `json:"email"`

	// Balance
	// required: true
	Balance float64 `json:"balance"`
}

// UpdateUserResponse represents a successful user update response
// swagger:model UpdateUserResponse
type UpdateUserResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`
}

// NewUpdateUserHandler returns an HTTP handler that overwrites a user's
// username, email, and balance.
// @Summary Update user
// @Tags admin
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param updateUserRequest body handlers.UpdateUserRequest true "New values"
// @Success 200 {object} handlers.UpdateUserResponse "User updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Not an administrator"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /admin/users/{userID} [put]
// @Security BearerAuth
func NewUpdateUserHandler(svc UserProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.Username == "" || req.Email == "" {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		if err := svc.UpdateUser(ctx, userID, req.Username, req.Email, req.Balance); err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			logger.Log.Errorw("failed to update user", "user_id", userID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, UpdateUserResponse{Success: true})
	}
}
