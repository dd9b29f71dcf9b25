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

// VehicleRemover defines the interface that the service must implement.
type VehicleRemover interface {
	Delete(ctx context.Context, vehicleID uuid.UUID) error
}

// DeleteVehicleResponse represents a successful delete response
// swagger:model DeleteVehicleResponse
type DeleteVehicleResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`
}

// NewDeleteVehicleHandler returns an HTTP handler that removes a listing and
// its bids. The route runs under the per-request transaction so the two
// deletes commit together.
// @Summary Delete listing
// @Tags admin
// @Produce json
// @Param vehicleID path string true "Vehicle ID"
// @Success 200 {object} handlers.DeleteVehicleResponse "Listing deleted"
// @Failure 403 {object} handlers.ErrorResponse "Not an administrator"
// @Failure 404 {object} handlers.ErrorResponse "Vehicle not found"
// @Router /admin/vehicles/{vehicleID} [delete]
// @Security BearerAuth
func NewDeleteVehicleHandler(svc VehicleRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		vehicleID, err := uuid.Parse(chi.URLParam(r, "vehicleID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid vehicle id")
			return
		}

		if err := svc.Delete(ctx, vehicleID); err != nil {
			if errors.Is(err, services.ErrVehicleNotFound) {
				writeError(w, http.StatusNotFound, "Vehicle not found")
				return
			}
			logger.Log.Errorw("failed to delete vehicle", "vehicle_id", vehicleID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, DeleteVehicleResponse{Success: true})
	}
}
