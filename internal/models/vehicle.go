package models

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle listing statuses. A listing is browsable while its end time is in
// the future; StatusSold is a terminal marker set only by an explicit admin
// action and never derived from the clock.
const (
	StatusActive = "active"
	StatusSold   = "sold"
)

// VehicleDB represents a vehicle listing record in the database
type VehicleDB struct {
	VehicleID    uuid.UUID `json:"id" db:"vehicle_id"` // Primary key
	Make         string    `json:"make" db:"make"`
	Model        string    `json:"model" db:"model"`
	Year         int       `json:"year" db:"year"`
	Mileage      int       `json:"mileage" db:"mileage"`
	Description  string    `json:"description" db:"description"`
	ReservePrice float64   `json:"reserve_price" db:"reserve_price"` // Minimum acceptable winning bid
	EndTime      time.Time `json:"end_time" db:"end_time"`           // Auction end, absolute timestamp
	SellerID     uuid.UUID `json:"seller_id" db:"seller_id"`         // Owning seller
	Status       string    `json:"status" db:"status"`               // "active" or "sold"
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// VehicleListing is a browse-view of a listing with its current highest bid.
// HighestBid is nil when no bids have been placed yet.
type VehicleListing struct {
	VehicleDB
	HighestBid *float64 `json:"highest_bid"`
}
