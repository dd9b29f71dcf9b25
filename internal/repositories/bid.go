package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
)

// BidReadRepository handles bid read operations
type BidReadRepository struct {
	db *sqlx.DB
}

func NewBidReadRepository(db *sqlx.DB) *BidReadRepository {
	return &BidReadRepository{db: db}
}

// GetHighestForVehicle returns the bid with the greatest amount for a vehicle,
// or nil when the vehicle has no bids. The highest bid is always recomputed
// by scanning; no aggregate field is maintained.
func (r *BidReadRepository) GetHighestForVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.BidDB, error) {
	const query = `
		SELECT bid_id, amount, created_at, bidder_id, vehicle_id
		FROM bids
		WHERE vehicle_id = $1
		ORDER BY amount DESC
		LIMIT 1
	`

	var bid models.BidDB
	err := r.db.GetContext(ctx, &bid, query, vehicleID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{vehicleID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bid, nil
}

// ListByBidder returns every bid placed by a user, newest first.
func (r *BidReadRepository) ListByBidder(ctx context.Context, bidderID uuid.UUID) ([]models.BidDB, error) {
	const query = `
		SELECT bid_id, amount, created_at, bidder_id, vehicle_id
		FROM bids
		WHERE bidder_id = $1
		ORDER BY created_at DESC
	`

	var bids []models.BidDB
	err := r.db.SelectContext(ctx, &bids, query, bidderID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bidderID},
		"result_count", len(bids),
		"error", err,
	)

	return bids, err
}

// BidWriteRepository handles bid write operations
type BidWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBidWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BidWriteRepository {
	return &BidWriteRepository{db: db, txGetter: txGetter}
}

func (r *BidWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new bid record. Bids are append-only.
func (r *BidWriteRepository) Save(ctx context.Context, bid models.BidDB) error {
	query := `
		INSERT INTO bids (bid_id, amount, created_at, bidder_id, vehicle_id)
		VALUES ($1, $2, $3, $4, $5)
	`
	args := []any{bid.BidID, bid.Amount, bid.CreatedAt, bid.BidderID, bid.VehicleID}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// DeleteByVehicle removes all bids for a vehicle. Used before deleting the
// vehicle itself to satisfy referential integrity.
func (r *BidWriteRepository) DeleteByVehicle(ctx context.Context, vehicleID uuid.UUID) (int64, error) {
	query := `
		DELETE FROM bids
		WHERE vehicle_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, vehicleID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{vehicleID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
