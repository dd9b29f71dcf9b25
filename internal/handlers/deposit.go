package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/middlewares"
	"github.com/smolin2019/vehicle-auction-service/internal/services"
)

// Depositer defines the interface that the service must implement.
type Depositer interface {
	Deposit(ctx context.Context, userID uuid.UUID, amount float64) (float64, error)
}

// DepositRequest represents the JSON body for adding funds
// swagger:model DepositRequest
type DepositRequest struct {
	// Amount to add, must be positive
	// required: true
	// default: 100.0
	Amount float64 `json:"amount"`
}

// DepositResponse represents a successful top-up response
// swagger:model DepositResponse
type DepositResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`

	// New balance after the top-up
	// default: 100.0
	NewBalance float64 `json:"new_balance"`
}

// NewDepositHandler returns an HTTP handler for adding funds to the caller's
// own balance.
// @Summary Add funds
// @Description Adds a positive amount to the caller's balance and returns the new balance.
// @Tags account
// @Accept json
// @Produce json
// @Param depositRequest body handlers.DepositRequest true "Deposit request"
// @Success 200 {object} handlers.DepositResponse "Balance updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /balance/deposit [post]
// @Security BearerAuth
func NewDepositHandler(svc Depositer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		var req DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		balance, err := svc.Deposit(ctx, claims.UserID, req.Amount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				writeError(w, http.StatusBadRequest, "Invalid amount")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("failed to deposit", "user_id", claims.UserID, "amount", req.Amount, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, DepositResponse{Success: true, NewBalance: balance})
	}
}
