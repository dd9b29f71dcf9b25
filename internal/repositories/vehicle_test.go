package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestVehicleRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewVehicleReadRepository(db)
	ctx := context.Background()

	sellerID := insertTestUser(t, db, "seller")
	endTime := time.Now().Add(24 * time.Hour)
	vehicleID := insertTestVehicle(t, db, sellerID, endTime)

	vehicle, err := readRepo.GetByID(ctx, vehicleID)
	assert.NoError(t, err)
	assert.NotNil(t, vehicle)
	assert.Equal(t, "Toyota", vehicle.Make)
	assert.Equal(t, "Corolla", vehicle.Model)
	assert.Equal(t, 1000.0, vehicle.ReservePrice)
	assert.Equal(t, sellerID, vehicle.SellerID)
	assert.Equal(t, models.StatusActive, vehicle.Status)
	assert.WithinDuration(t, endTime, vehicle.EndTime, time.Second)

	missing, err := readRepo.GetByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestVehicleReadRepository_ListActive(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewVehicleReadRepository(db)
	writeRepo := NewVehicleWriteRepository(db, nil)
	ctx := context.Background()

	sellerID := insertTestUser(t, db, "seller")

	laterID := insertTestVehicle(t, db, sellerID, time.Now().Add(48*time.Hour))
	soonerID := insertTestVehicle(t, db, sellerID, time.Now().Add(1*time.Hour))
	insertTestVehicle(t, db, sellerID, time.Now().Add(-1*time.Hour)) // ended

	soldID := insertTestVehicle(t, db, sellerID, time.Now().Add(24*time.Hour))
	rows, err := writeRepo.MarkSold(ctx, soldID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	vehicles, err := readRepo.ListActive(ctx)
	assert.NoError(t, err)
	assert.Len(t, vehicles, 2)

	// Soonest-ending listing comes first.
	assert.Equal(t, soonerID, vehicles[0].VehicleID)
	assert.Equal(t, laterID, vehicles[1].VehicleID)
}

func TestVehicleWriteRepository_Update(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewVehicleReadRepository(db)
	writeRepo := NewVehicleWriteRepository(db, nil)
	ctx := context.Background()

	sellerID := insertTestUser(t, db, "seller")
	vehicleID := insertTestVehicle(t, db, sellerID, time.Now().Add(24*time.Hour))

	newMake := "Honda"
	newReserve := 2500.0
	rows, err := writeRepo.Update(ctx, vehicleID, &newMake, nil, nil, nil, nil, &newReserve, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	vehicle, err := readRepo.GetByID(ctx, vehicleID)
	assert.NoError(t, err)
	assert.Equal(t, "Honda", vehicle.Make)
	assert.Equal(t, 2500.0, vehicle.ReservePrice)
	// Untouched fields keep their prior values.
	assert.Equal(t, "Corolla", vehicle.Model)
	assert.Equal(t, 2018, vehicle.Year)

	rows, err = writeRepo.Update(ctx, uuid.New(), &newMake, nil, nil, nil, nil, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

func TestVehicleWriteRepository_MarkSold(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewVehicleReadRepository(db)
	writeRepo := NewVehicleWriteRepository(db, nil)
	ctx := context.Background()

	sellerID := insertTestUser(t, db, "seller")
	vehicleID := insertTestVehicle(t, db, sellerID, time.Now().Add(24*time.Hour))

	rows, err := writeRepo.MarkSold(ctx, vehicleID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	vehicle, err := readRepo.GetByID(ctx, vehicleID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusSold, vehicle.Status)

	rows, err = writeRepo.MarkSold(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

func TestVehicleWriteRepository_Delete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewVehicleReadRepository(db)
	writeRepo := NewVehicleWriteRepository(db, nil)
	ctx := context.Background()

	sellerID := insertTestUser(t, db, "seller")
	vehicleID := insertTestVehicle(t, db, sellerID, time.Now().Add(24*time.Hour))

	rows, err := writeRepo.Delete(ctx, vehicleID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	vehicle, err := readRepo.GetByID(ctx, vehicleID)
	assert.NoError(t, err)
	assert.Nil(t, vehicle)

	rows, err = writeRepo.Delete(ctx, vehicleID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}
