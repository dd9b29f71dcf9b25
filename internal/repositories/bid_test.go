package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBidRepository_GetHighestForVehicle(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewBidReadRepository(db)
	writeRepo := NewBidWriteRepository(db, nil)
	ctx := context.Background()

	sellerID := insertTestUser(t, db, "seller")
	bidderID := insertTestUser(t, db, "bidder")
	vehicleID := insertTestVehicle(t, db, sellerID, time.Now().Add(24*time.Hour))

	t.Run("no bids yet", func(t *testing.T) {
		highest, err := readRepo.GetHighestForVehicle(ctx, vehicleID)
		assert.NoError(t, err)
		assert.Nil(t, highest)
	})

	for _, amount := range []float64{1000, 1500, 1200} {
		err := writeRepo.Save(ctx, models.BidDB{
			BidID:     uuid.New(),
			Amount:    amount,
			CreatedAt: time.Now(),
			BidderID:  bidderID,
			VehicleID: vehicleID,
		})
		assert.NoError(t, err)
	}

	t.Run("picks the largest amount", func(t *testing.T) {
		highest, err := readRepo.GetHighestForVehicle(ctx, vehicleID)
		assert.NoError(t, err)
		assert.NotNil(t, highest)
		assert.Equal(t, 1500.0, highest.Amount)
		assert.Equal(t, bidderID, highest.BidderID)
	})
}

func TestBidReadRepository_ListByBidder(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewBidReadRepository(db)
	writeRepo := NewBidWriteRepository(db, nil)
	ctx := context.Background()

	sellerID := insertTestUser(t, db, "seller")
	bidderID := insertTestUser(t, db, "bidder")
	otherID := insertTestUser(t, db, "other")
	vehicleID := insertTestVehicle(t, db, sellerID, time.Now().Add(24*time.Hour))

	oldBid := uuid.New()
	newBid := uuid.New()
	assert.NoError(t, writeRepo.Save(ctx, models.BidDB{
		BidID: oldBid, Amount: 1000, CreatedAt: time.Now().Add(-time.Hour),
		BidderID: bidderID, VehicleID: vehicleID,
	}))
	assert.NoError(t, writeRepo.Save(ctx, models.BidDB{
		BidID: newBid, Amount: 1500, CreatedAt: time.Now(),
		BidderID: bidderID, VehicleID: vehicleID,
	}))
	assert.NoError(t, writeRepo.Save(ctx, models.BidDB{
		BidID: uuid.New(), Amount: 2000, CreatedAt: time.Now(),
		BidderID: otherID, VehicleID: vehicleID,
	}))

	bids, err := readRepo.ListByBidder(ctx, bidderID)
	assert.NoError(t, err)
	assert.Len(t, bids, 2)

	// Newest first.
	assert.Equal(t, newBid, bids[0].BidID)
	assert.Equal(t, oldBid, bids[1].BidID)
}

func TestBidWriteRepository_DeleteByVehicle(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewBidReadRepository(db)
	writeRepo := NewBidWriteRepository(db, nil)
	ctx := context.Background()

	sellerID := insertTestUser(t, db, "seller")
	bidderID := insertTestUser(t, db, "bidder")
	vehicleID := insertTestVehicle(t, db, sellerID, time.Now().Add(24*time.Hour))
	otherVehicleID := insertTestVehicle(t, db, sellerID, time.Now().Add(24*time.Hour))

	for _, vid := range []uuid.UUID{vehicleID, vehicleID, otherVehicleID} {
		assert.NoError(t, writeRepo.Save(ctx, models.BidDB{
			BidID: uuid.New(), Amount: 1000, CreatedAt: time.Now(),
			BidderID: bidderID, VehicleID: vid,
		}))
	}

	rows, err := writeRepo.DeleteByVehicle(ctx, vehicleID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), rows)

	highest, err := readRepo.GetHighestForVehicle(ctx, vehicleID)
	assert.NoError(t, err)
	assert.Nil(t, highest)

	// Bids on other vehicles are untouched.
	highest, err = readRepo.GetHighestForVehicle(ctx, otherVehicleID)
	assert.NoError(t, err)
	assert.NotNil(t, highest)
}
