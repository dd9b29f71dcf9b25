package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
	"github.com/smolin2019/vehicle-auction-service/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, *models.UserDB, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
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

	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return a JWT token plus the user's identity.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "User login request"
// @Success 200 {object} handlers.LoginResponse "Successful login"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		token, user, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				writeError(w, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Success:  true,
			ID:       user.UserID.String(),
			Username: user.Username,
			IsAdmin:  user.IsAdmin,
			Token:    token,
		})
	}
}
