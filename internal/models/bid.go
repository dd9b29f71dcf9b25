package models

import (
	"time"

	"github.com/google/uuid"
)

// BidDB represents a bid record in the database. Bids are append-only: they
// are never updated, and are deleted only when their vehicle is deleted.
type BidDB struct {
	BidID     uuid.UUID `json:"id" db:"bid_id"` // Primary key
	Amount    float64   `json:"amount" db:"amount"`
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Server timestamp at acceptance
	BidderID  uuid.UUID `json:"bidder_id" db:"bidder_id"`
	VehicleID uuid.UUID `json:"vehicle_id" db:"vehicle_id"`
}
