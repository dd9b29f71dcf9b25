package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/services"
)

// VehicleSoldMarker defines the interface that the service must implement.
type VehicleSoldMarker interface {
	MarkSold(ctx context.Context, vehicleID uuid.UUID) error
}

// MarkSoldResponse represents a successful mark-sold response
// swagger:model MarkSoldResponse
type MarkSoldResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`
}

// NewMarkVehicleSoldHandler returns an HTTP handler that sets the terminal
// "sold" status on a listing.
// @Summary Mark listing sold
// @Tags admin
// @Produce json
// @Param vehicleID path string true "Vehicle ID"
// @Success 200 {object} handlers.MarkSoldResponse "Listing marked sold"
// @Failure 403 {object} handlers.ErrorResponse "Not an administrator"
// @Failure 404 {object} handlers.ErrorResponse "Vehicle not found"
// @Router /admin/vehicles/{vehicleID}/sold [post]
// @Security BearerAuth
func NewMarkVehicleSoldHandler(svc VehicleSoldMarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		vehicleID, err := uuid.Parse(chi.URLParam(r, "vehicleID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid vehicle id")
			return
		}

		if err := svc.MarkSold(ctx, vehicleID); err != nil {
			if errors.Is(err, services.ErrVehicleNotFound) {
				writeError(w, http.StatusNotFound, "Vehicle not found")
				return
			}
			logger.Log.Errorw("failed to mark vehicle sold", "vehicle_id", vehicleID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, MarkSoldResponse{Success: true})
	}
}
