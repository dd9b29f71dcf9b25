package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationDB represents a notification record in the database
type NotificationDB struct {
	NotificationID uuid.UUID `json:"id" db:"notification_id"` // Primary key
	UserID         uuid.UUID `json:"user_id" db:"user_id"`    // Recipient
	Message        string    `json:"message" db:"message"`
	CreatedAt      time.Time `json:"time" db:"created_at"`
	IsRead         bool      `json:"is_read" db:"is_read"`
}
