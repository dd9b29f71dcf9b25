package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/middlewares"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
	"github.com/smolin2019/vehicle-auction-service/internal/services"
)

// BidPlacer defines the interface that the service must implement.
type BidPlacer interface {
	PlaceBid(ctx context.Context, vehicleID, bidderID uuid.UUID, amount float64) (*models.BidDB, error)
}

// BidRequest represents the JSON body for placing a bid
// swagger:model BidRequest
type BidRequest struct {
	// Bid amount
	// required: true
	// default: 1500.0
	Amount float64 `json:"amount"`
}

// BidResponse represents a successful bid response
// swagger:model BidResponse
type BidResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`

	// Created bid ID
	ID string `json:"id"`
}

// NewPlaceBidHandler returns an HTTP handler for placing a bid.
// @Summary Place a bid
// @Description Validates the bid against auction end time, current highest bid, and reserve price, then records it and notifies the seller.
// @Tags bids
// @Accept json
// @Produce json
// @Param vehicleID path string true "Vehicle ID"
// @Param bidRequest body handlers.BidRequest true "Bid request"
// @Success 200 {object} handlers.BidResponse "Bid accepted"
// @Failure 400 {object} handlers.ErrorResponse "Auction ended / bid too low / below reserve"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Vehicle not found"
// @Router /vehicles/{vehicleID}/bid [post]
// @Security BearerAuth
func NewPlaceBidHandler(svc BidPlacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		vehicleID, err := uuid.Parse(chi.URLParam(r, "vehicleID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid vehicle id")
			return
		}

		var req BidRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		bid, err := svc.PlaceBid(ctx, vehicleID, claims.UserID, req.Amount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrVehicleNotFound):
				writeError(w, http.StatusNotFound, "Vehicle not found")
			case errors.Is(err, services.ErrAuctionClosed):
				writeError(w, http.StatusBadRequest, "Auction has ended")
			case errors.Is(err, services.ErrBidTooLow):
				writeError(w, http.StatusBadRequest, "Bid must be higher than current highest bid")
			case errors.Is(err, services.ErrBelowReserve):
				writeError(w, http.StatusBadRequest, "Bid must be at least the reserve price")
			default:
				logger.Log.Errorw("failed to place bid", "vehicle_id", vehicleID, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, BidResponse{Success: true, ID: bid.BidID.String()})
	}
}
