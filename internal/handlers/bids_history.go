package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/middlewares"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
)

// BidHistoryGetter defines the interface that the service must implement.
type BidHistoryGetter interface {
	GetBidHistory(ctx context.Context, userID uuid.UUID) ([]models.BidDB, error)
}

// BidHistoryItem represents one bid in the caller's history
// swagger:model BidHistoryItem
type BidHistoryItem struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Time      time.Time `json:"time"`
	VehicleID string    `json:"vehicle_id"`
}

// BidHistoryResponse represents the caller's bid history
// swagger:model BidHistoryResponse
type BidHistoryResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`

	// Bids placed by the caller, newest first
	Bids []BidHistoryItem `json:"bids"`
}

// NewGetBidHistoryHandler returns an HTTP handler for the caller's own bids.
// @Summary Get own bid history
// @Tags bids
// @Produce json
// @Success 200 {object} handlers.BidHistoryResponse "Bid history"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /bids [get]
// @Security BearerAuth
func NewGetBidHistoryHandler(svc BidHistoryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		bids, err := svc.GetBidHistory(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get bid history", "user_id", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		items := make([]BidHistoryItem, 0, len(bids))
		for _, b := range bids {
			items = append(items, BidHistoryItem{
				ID:        b.BidID.String(),
				Amount:    b.Amount,
				Time:      b.CreatedAt,
				VehicleID: b.VehicleID.String(),
			})
		}

		writeJSON(w, http.StatusOK, BidHistoryResponse{Success: true, Bids: items})
	}
}
