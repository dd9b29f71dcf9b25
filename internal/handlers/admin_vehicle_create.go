package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/middlewares"
)

// VehicleCreator defines the interface that the service must implement.
type VehicleCreator interface {
	Create(ctx context.Context, sellerID uuid.UUID, vehicleMake, vehicleModel string, year, mileage int, description string, reservePrice float64, endTime time.Time) (uuid.UUID, error)
}

// CreateVehicleRequest represents the JSON body for creating a listing
// swagger:model CreateVehicleRequest
type CreateVehicleRequest struct {
	// Make
	// required: true
	// default: Toyota
	Make string `json:"make"`

	// Model
	// required: true
	// default: Corolla
	Model string `json:"model"`

	// Year
	// required: true
	// default: 2018
	Year int `json:"year"`

	// Mileage
	// required: true
	// default: 65000
	Mileage int `json:"mileage"`

	// Description
	Description string `json:"description"`

	// Reserve price, minimum acceptable winning bid
	// required: true
	// default: 1000.0
	ReservePrice float64 `json:"reserve_price"`

	// Auction end time, RFC 3339 or HTML datetime-local format
	// required: true
	EndTime string `json:"end_time"`
}

// CreateVehicleResponse represents a successful create response
// swagger:model CreateVehicleResponse
type CreateVehicleResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`

	// Created listing ID
	ID string `json:"id"`
}

// parseEndTime accepts RFC 3339 or the HTML datetime-local format the admin
// form submits ("2006-01-02T15:04").
func parseEndTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04", value); err == nil {
		return t, nil
	}
	return time.Time{}, errors.New("unsupported end_time format")
}

// NewCreateVehicleHandler returns an HTTP handler for creating a listing.
// The authenticated admin becomes the listing's seller.
// @Summary Create listing
// @Tags admin
// @Accept json
// @Produce json
// @Param createVehicleRequest body handlers.CreateVehicleRequest true "Listing"
// @Success 201 {object} handlers.CreateVehicleResponse "Listing created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "Not an administrator"
// @Router /admin/vehicles [post]
// @Security BearerAuth
func NewCreateVehicleHandler(svc VehicleCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		var req CreateVehicleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.Make == "" || req.Model == "" || req.EndTime == "" {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		endTime, err := parseEndTime(req.EndTime)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid end_time")
			return
		}

		vehicleID, err := svc.Create(ctx, claims.UserID, req.Make, req.Model, req.Year, req.Mileage, req.Description, req.ReservePrice, endTime)
		if err != nil {
			logger.Log.Errorw("failed to create vehicle", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, CreateVehicleResponse{Success: true, ID: vehicleID.String()})
	}
}
