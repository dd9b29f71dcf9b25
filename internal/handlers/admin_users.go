package handlers

import (
	"context"
	"net/http"

	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
)

// UsersLister defines the interface that the service must implement.
type UsersLister interface {
	ListUsers(ctx context.Context) ([]models.UserDB, error)
}

// UserItem represents one user in the admin listing
// swagger:model UserItem
type UserItem struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Balance  float64 `json:"balance"`
	IsAdmin  bool    `json:"is_admin"`
}

// UsersResponse represents the admin user listing
// swagger:model UsersResponse
type UsersResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`

	// All user accounts
	Users []UserItem `json:"users"`
}

// NewListUsersHandler returns an HTTP handler listing all user accounts.
// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.UsersResponse "All users"
// @Failure 403 {object} handlers.ErrorResponse "Not an administrator"
// @Router /admin/users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UsersLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		items := make([]UserItem, 0, len(users))
		for _, u := range users {
			items = append(items, UserItem{
				ID:       u.UserID.String(),
				Username: u.Username,
				Email:    u.Email,
				Balance:  u.Balance,
				IsAdmin:  u.IsAdmin,
			})
		}

		writeJSON(w, http.StatusOK, UsersResponse{Success: true, Users: items})
	}
}
