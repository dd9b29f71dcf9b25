package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
)

// ErrVehicleNotFound is returned when a vehicle ID does not resolve to an
// existing listing.
var ErrVehicleNotFound = errors.New("vehicle not found")

// VehicleReader defines read operations for vehicle listings.
type VehicleReader interface {
	GetByID(ctx context.Context, vehicleID uuid.UUID) (*models.VehicleDB, error)
	ListActive(ctx context.Context) ([]models.VehicleDB, error)
}

// VehicleWriter defines write operations for vehicle listings.
type VehicleWriter interface {
	Save(ctx context.Context, vehicle models.VehicleDB) error
	Update(ctx context.Context, vehicleID uuid.UUID, vehicleMake, vehicleModel *string, year, mileage *int, description *string, reservePrice *float64, endTime *time.Time) (int64, error)
	MarkSold(ctx context.Context, vehicleID uuid.UUID) (int64, error)
	Delete(ctx context.Context, vehicleID uuid.UUID) (int64, error)
}

// BidsByVehicleDeleter removes all bids for a vehicle.
type BidsByVehicleDeleter interface {
	DeleteByVehicle(ctx context.Context, vehicleID uuid.UUID) (int64, error)
}

// VehicleService handles listing browsing and admin listing management.
type VehicleService struct {
	reader     VehicleReader
	writer     VehicleWriter
	bidReader  BidReader
	bidDeleter BidsByVehicleDeleter
}

// NewVehicleService creates a new VehicleService.
func NewVehicleService(reader VehicleReader, writer VehicleWriter, bidReader BidReader, bidDeleter BidsByVehicleDeleter) *VehicleService {
	return &VehicleService{
		reader:     reader,
		writer:     writer,
		bidReader:  bidReader,
		bidDeleter: bidDeleter,
	}
}

// ListActive returns active listings with each listing's current highest bid.
// The highest bid is recomputed from the bids table on every call.
func (s *VehicleService) ListActive(ctx context.Context) ([]models.VehicleListing, error) {
	vehicles, err := s.reader.ListActive(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list active vehicles", "error", err)
		return nil, err
	}

	listings := make([]models.VehicleListing, 0, len(vehicles))
	for _, v := range vehicles {
		listing := models.VehicleListing{VehicleDB: v}

		highest, err := s.bidReader.GetHighestForVehicle(ctx, v.VehicleID)
		if err != nil {
			logger.Log.Errorw("failed to get highest bid", "vehicle_id", v.VehicleID, "error", err)
			return nil, err
		}
		if highest != nil {
			amount := highest.Amount
			listing.HighestBid = &amount
		}

		listings = append(listings, listing)
	}

	return listings, nil
}

// Create inserts a new listing owned by the given seller and returns its ID.
func (s *VehicleService) Create(ctx context.Context, sellerID uuid.UUID, vehicleMake, vehicleModel string, year, mileage int, description string, reservePrice float64, endTime time.Time) (uuid.UUID, error) {
	vehicle := models.VehicleDB{
		VehicleID:    uuid.New(),
		Make:         vehicleMake,
		Model:        vehicleModel,
		Year:         year,
		Mileage:      mileage,
		Description:  description,
		ReservePrice: reservePrice,
		EndTime:      endTime,
		SellerID:     sellerID,
		Status:       models.StatusActive,
	}

	if err := s.writer.Save(ctx, vehicle); err != nil {
		logger.Log.Errorw("failed to save vehicle", "seller_id", sellerID, "error", err)
		return uuid.Nil, err
	}

	return vehicle.VehicleID, nil
}

// Update applies a partial update to a listing; nil fields keep their prior
// value. No ownership check is performed, only the caller's admin flag.
func (s *VehicleService) Update(ctx context.Context, vehicleID uuid.UUID, vehicleMake, vehicleModel *string, year, mileage *int, description *string, reservePrice *float64, endTime *time.Time) error {
	rows, err := s.writer.Update(ctx, vehicleID, vehicleMake, vehicleModel, year, mileage, description, reservePrice, endTime)
	if err != nil {
		logger.Log.Errorw("failed to update vehicle", "vehicle_id", vehicleID, "error", err)
		return err
	}
	if rows == 0 {
		return ErrVehicleNotFound
	}
	return nil
}

// MarkSold sets the terminal "sold" status on a listing.
func (s *VehicleService) MarkSold(ctx context.Context, vehicleID uuid.UUID) error {
	rows, err := s.writer.MarkSold(ctx, vehicleID)
	if err != nil {
		logger.Log.Errorw("failed to mark vehicle sold", "vehicle_id", vehicleID, "error", err)
		return err
	}
	if rows == 0 {
		return ErrVehicleNotFound
	}
	return nil
}

// Delete removes a listing and its bids. Bids are deleted first to satisfy
// referential integrity; the route-level transaction makes the pair atomic.
func (s *VehicleService) Delete(ctx context.Context, vehicleID uuid.UUID) error {
	if _, err := s.bidDeleter.DeleteByVehicle(ctx, vehicleID); err != nil {
		logger.Log.Errorw("failed to delete bids for vehicle", "vehicle_id", vehicleID, "error", err)
		return err
	}

	rows, err := s.writer.Delete(ctx, vehicleID)
	if err != nil {
		logger.Log.Errorw("failed to delete vehicle", "vehicle_id", vehicleID, "error", err)
		return err
	}
	if rows == 0 {
		return ErrVehicleNotFound
	}
	return nil
}
