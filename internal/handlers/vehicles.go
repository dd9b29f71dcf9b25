package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
)

// ActiveVehicleLister defines the interface that the service must implement.
type ActiveVehicleLister interface {
	ListActive(ctx context.Context) ([]models.VehicleListing, error)
}

// VehicleItem represents one listing in the browse response
// swagger:model VehicleItem
type VehicleItem struct {
	ID           string    `json:"id"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Mileage      int       `json:"mileage"`
	Description  string    `json:"description"`
	ReservePrice float64   `json:"reserve_price"`
	EndTime      time.Time `json:"end_time"`

	// Current highest bid amount, null when no bids exist
	HighestBid *float64 `json:"highest_bid"`
}

// VehiclesResponse represents the browse response
// swagger:model VehiclesResponse
type VehiclesResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`

	// Active listings
	Vehicles []VehicleItem `json:"vehicles"`
}

// NewGetVehiclesHandler returns an HTTP handler listing active vehicles.
// @Summary List active vehicles
// @Description Returns listings whose auction has not ended, with each listing's current highest bid.
// @Tags vehicles
// @Produce json
// @Success 200 {object} handlers.VehiclesResponse "Active listings"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /vehicles [get]
func NewGetVehiclesHandler(svc ActiveVehicleLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listings, err := svc.ListActive(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list vehicles", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		items := make([]VehicleItem, 0, len(listings))
		for _, l := range listings {
			items = append(items, VehicleItem{
				ID:           l.VehicleID.String(),
				Make:         l.Make,
				Model:        l.Model,
				Year:         l.Year,
				Mileage:      l.Mileage,
				Description:  l.Description,
				ReservePrice: l.ReservePrice,
				EndTime:      l.EndTime,
				HighestBid:   l.HighestBid,
			})
		}

		writeJSON(w, http.StatusOK, VehiclesResponse{Success: true, Vehicles: items})
	}
}
