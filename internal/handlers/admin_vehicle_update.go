package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/services"
)

// VehicleUpdater defines the interface that the service must implement.
type VehicleUpdater interface {
	Update(ctx context.Context, vehicleID uuid.UUID, vehicleMake, vehicleModel *string, year, mileage *int, description *string, reservePrice *float64, endTime *time.Time) error
}

// UpdateVehicleRequest represents the JSON body for a partial listing update.
// Absent fields keep their prior value.
// swagger:model UpdateVehicleRequest
type UpdateVehicleRequest struct {
	Make         *string  `json:"make"`
	Model        *string  `json:"model"`
	Year         *int     `json:"year"`
	Mileage      *int     `json:"mileage"`
	Description  *string  `json:"description"`
	ReservePrice *float64 `json:"reserve_price"`
	EndTime      *string  `json:"end_time"`
}

// UpdateVehicleResponse represents a successful update response
// swagger:model UpdateVehicleResponse
type UpdateVehicleResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`
}

// NewUpdateVehicleHandler returns an HTTP handler for partially updating a
// listing. Only the admin flag is checked; listing ownership is not.
// @Summary Edit listing
// @Tags admin
// @Accept json
// @Produce json
// @Param vehicleID path string true "Vehicle ID"
// @Param updateVehicleRequest body handlers.UpdateVehicleRequest true "Fields to change"
// @Success 200 {object} handlers.UpdateVehicleResponse "Listing updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Not an administrator"
// @Failure 404 {object} handlers.ErrorResponse "Vehicle not found"
// @Router /admin/vehicles/{vehicleID} [put]
// @Security BearerAuth
func NewUpdateVehicleHandler(svc VehicleUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		vehicleID, err := uuid.Parse(chi.URLParam(r, "vehicleID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid vehicle id")
			return
		}

		var req UpdateVehicleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		var endTime *time.Time
		if req.EndTime != nil {
			parsed, err := parseEndTime(*req.EndTime)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid end_time")
				return
			}
			endTime = &parsed
		}

		err = svc.Update(ctx, vehicleID, req.Make, req.Model, req.Year, req.Mileage, req.Description, req.ReservePrice, endTime)
		if err != nil {
			if errors.Is(err, services.ErrVehicleNotFound) {
				writeError(w, http.StatusNotFound, "Vehicle not found")
				return
			}
			logger.Log.Errorw("failed to update vehicle", "vehicle_id", vehicleID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, UpdateVehicleResponse{Success: true})
	}
}
