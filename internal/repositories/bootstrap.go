package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

// Default administrator account created at startup if absent.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
	defaultAdminEmail    = "admin@auction.com"
)

// schema holds the four tables of the system. No FK cascade is declared:
// deleting a listing's bids is the caller's responsibility.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id       UUID PRIMARY KEY,
		username      VARCHAR NOT NULL UNIQUE,
		email         VARCHAR NOT NULL UNIQUE,
		password_hash VARCHAR NOT NULL,
		balance       DOUBLE PRECISION NOT NULL DEFAULT 0,
		is_admin      BOOLEAN NOT NULL DEFAULT FALSE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		vehicle_id    UUID PRIMARY KEY,
		make          VARCHAR NOT NULL,
		model         VARCHAR NOT NULL,
		year          INT NOT NULL,
		mileage       INT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		reserve_price DOUBLE PRECISION NOT NULL,
		end_time      TIMESTAMPTZ NOT NULL,
		seller_id     UUID NOT NULL REFERENCES users(user_id),
		status        VARCHAR NOT NULL DEFAULT 'active',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS bids (
		bid_id     UUID PRIMARY KEY,
		amount     DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		bidder_id  UUID NOT NULL REFERENCES users(user_id),
		vehicle_id UUID NOT NULL REFERENCES vehicles(vehicle_id)
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		notification_id UUID PRIMARY KEY,
		user_id         UUID NOT NULL REFERENCES users(user_id),
		message         TEXT NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL,
		is_read         BOOLEAN NOT NULL DEFAULT FALSE
	)`,
}

// Bootstrap creates the schema if needed and seeds the default admin account.
func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Log.Errorw("failed to create table", "error", err)
			return err
		}
	}
	return seedAdmin(ctx, db)
}

// seedAdmin inserts the default administrator account if it does not exist.
func seedAdmin(ctx context.Context, db *sqlx.DB) error {
	var existing uuid.UUID
	err := db.GetContext(ctx, &existing, `SELECT user_id FROM users WHERE username = $1`, defaultAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO users (user_id, username, email, password_hash, balance, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, TRUE, NOW(), NOW())
	`, uuid.New(), defaultAdminUsername, defaultAdminEmail, string(hash))
	if err != nil {
		return err
	}

	logger.Log.Infow("seeded default admin account", "username", defaultAdminUsername)
	return nil
}
