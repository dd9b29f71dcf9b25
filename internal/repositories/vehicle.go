package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
)

// VehicleReadRepository handles vehicle read operations
type VehicleReadRepository struct {
	db *sqlx.DB
}

func NewVehicleReadRepository(db *sqlx.DB) *VehicleReadRepository {
	return &VehicleReadRepository{db: db}
}

// GetByID returns the vehicle with the given ID, or nil if none exists.
func (r *VehicleReadRepository) GetByID(ctx context.Context, vehicleID uuid.UUID) (*models.VehicleDB, error) {
	const query = `
		SELECT vehicle_id, make, model, year, mileage, description, reserve_price,
		       end_time, seller_id, status, created_at, updated_at
		FROM vehicles
		WHERE vehicle_id = $1
	`

	var vehicle models.VehicleDB
	err := r.db.GetContext(ctx, &vehicle, query, vehicleID)

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
	return &vehicle, nil
}

// ListActive returns listings whose end time is strictly in the future and
// that have not been marked sold. The time comparison is canonical; the
// status column only narrows the result further.
func (r *VehicleReadRepository) ListActive(ctx context.Context) ([]models.VehicleDB, error) {
	const query = `
		SELECT vehicle_id, make, model, year, mileage, description, reserve_price,
		       end_time, seller_id, status, created_at, updated_at
		FROM vehicles
		WHERE end_time > NOW() AND status <> 'sold'
		ORDER BY end_time ASC
	`

	var vehicles []models.VehicleDB
	err := r.db.SelectContext(ctx, &vehicles, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"result_count", len(vehicles),
		"error", err,
	)

	return vehicles, err
}

// VehicleWriteRepository handles vehicle write operations
type VehicleWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewVehicleWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *VehicleWriteRepository {
	return &VehicleWriteRepository{db: db, txGetter: txGetter}
}

func (r *VehicleWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new vehicle listing.
func (r *VehicleWriteRepository) Save(ctx context.Context, vehicle models.VehicleDB) error {
	query := `
		INSERT INTO vehicles (vehicle_id, make, model, year, mileage, description,
		                      reserve_price, end_time, seller_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`
	args := []any{
		vehicle.VehicleID, vehicle.Make, vehicle.Model, vehicle.Year, vehicle.Mileage,
		vehicle.Description, vehicle.ReservePrice, vehicle.EndTime, vehicle.SellerID, vehicle.Status,
	}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{vehicle.VehicleID, vehicle.Make, vehicle.Model, vehicle.SellerID},
		"error", err,
	)

	return err
}

// Update performs a partial update: nil fields keep their prior value.
// Returns the number of rows affected (0 when the vehicle does not exist).
func (r *VehicleWriteRepository) Update(
	ctx context.Context,
	vehicleID uuid.UUID,
	vehicleMake, vehicleModel *string,
	year, mileage *int,
	description *string,
	reservePrice *float64,
	endTime *time.Time,
) (int64, error) {
	query := `
		UPDATE vehicles
		SET make          = COALESCE($2::VARCHAR, make),
		    model         = COALESCE($3::VARCHAR, model),
		    year          = COALESCE($4::INT, year),
		    mileage       = COALESCE($5::INT, mileage),
		    description   = COALESCE($6::TEXT, description),
		    reserve_price = COALESCE($7::DOUBLE PRECISION, reserve_price),
		    end_time      = COALESCE($8::TIMESTAMPTZ, end_time),
		    updated_at    = NOW()
		WHERE vehicle_id = $1
	`
	args := []any{vehicleID, vehicleMake, vehicleModel, year, mileage, description, reservePrice, endTime}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
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

// MarkSold sets the terminal "sold" status on a listing.
// Returns the number of rows affected (0 when the vehicle does not exist).
func (r *VehicleWriteRepository) MarkSold(ctx context.Context, vehicleID uuid.UUID) (int64, error) {
	query := `
		UPDATE vehicles
		SET status = 'sold', updated_at = NOW()
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

// Delete removes a vehicle listing. The caller is responsible for deleting
// the listing's bids first; no FK cascade is declared.
// Returns the number of rows affected (0 when the vehicle does not exist).
func (r *VehicleWriteRepository) Delete(ctx context.Context, vehicleID uuid.UUID) (int64, error) {
	query := `
		DELETE FROM vehicles
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
