package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
)

// Bid-acceptance errors, in check order.
var (
	ErrAuctionClosed = errors.New("auction has ended")
	ErrBidTooLow     = errors.New("bid must be higher than current highest bid")
	ErrBelowReserve  = errors.New("bid must be at least the reserve price")
)

// BidReader defines read operations for bids.
type BidReader interface {
	GetHighestForVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.BidDB, error)
}

// BidWriter defines write operations for bids.
type BidWriter interface {
	Save(ctx context.Context, bid models.BidDB) error
}

// NotificationWriter persists notifications.
type NotificationWriter interface {
	Save(ctx context.Context, notification models.NotificationDB) error
}

// VehicleGetter resolves a vehicle listing by ID.
type VehicleGetter interface {
	GetByID(ctx context.Context, vehicleID uuid.UUID) (*models.VehicleDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// BidService applies the bid-acceptance rule and records its side effects.
type BidService struct {
	vehicles      VehicleGetter
	bidReader     BidReader
	bidWriter     BidWriter
	notifications NotificationWriter
	kafkaWriter   KafkaWriter
}

// NewBidService creates a new BidService.
func NewBidService(
	vehicles VehicleGetter,
	bidReader BidReader,
	bidWriter BidWriter,
	notifications NotificationWriter,
	kafkaWriter KafkaWriter,
) *BidService {
	return &BidService{
		vehicles:      vehicles,
		bidReader:     bidReader,
		bidWriter:     bidWriter,
		notifications: notifications,
		kafkaWriter:   kafkaWriter,
	}
}

// PlaceBid validates an incoming bid and, if accepted, records exactly one
// bid and one notification to the seller. The checks run in a fixed order:
// listing exists, auction still open (strict wall-clock comparison), amount
// strictly above the current highest bid, amount at or above the reserve.
// The highest bid is read without isolation from the insert, so two
// concurrent bids can both pass validation; this matches the documented
// behavior of the system.
func (s *BidService) PlaceBid(ctx context.Context, vehicleID, bidderID uuid.UUID, amount float64) (*models.BidDB, error) {
	vehicle, err := s.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		logger.Log.Errorw("failed to get vehicle", "vehicle_id", vehicleID, "error", err)
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	now := time.Now()
	if !now.Before(vehicle.EndTime) {
		return nil, ErrAuctionClosed
	}

	highest, err := s.bidReader.GetHighestForVehicle(ctx, vehicleID)
	if err != nil {
		logger.Log.Errorw("failed to get highest bid", "vehicle_id", vehicleID, "error", err)
		return nil, err
	}
	if highest != nil && amount <= highest.Amount {
		return nil, ErrBidTooLow
	}

	if amount < vehicle.ReservePrice {
		return nil, ErrBelowReserve
	}

	bid := models.BidDB{
		BidID:     uuid.New(),
		Amount:    amount,
		CreatedAt: now,
		BidderID:  bidderID,
		VehicleID: vehicleID,
	}
	if err := s.bidWriter.Save(ctx, bid); err != nil {
		logger.Log.Errorw("failed to save bid", "vehicle_id", vehicleID, "bidder_id", bidderID, "error", err)
		return nil, err
	}

	notification := models.NotificationDB{
		NotificationID: uuid.New(),
		UserID:         vehicle.SellerID,
		Message:        fmt.Sprintf("New bid of $%.2f placed on your %s %s", amount, vehicle.Make, vehicle.Model),
		CreatedAt:      now,
	}
	if err := s.notifications.Save(ctx, notification); err != nil {
		logger.Log.Errorw("failed to save seller notification", "seller_id", vehicle.SellerID, "error", err)
		return nil, err
	}

	event := models.BidEvent{
		EventID:   uuid.NewString(),
		Timestamp: now.Unix(),
		Amount:    amount,
		BidderID:  bidderID.String(),
		VehicleID: vehicleID.String(),
		SellerID:  vehicle.SellerID.String(),
	}
	s.publishBid(ctx, event)

	return &bid, nil
}

// publishBid publishes an accepted bid to Kafka. Failures are logged and
// swallowed; the bid is already committed.
func (s *BidService) publishBid(ctx context.Context, event models.BidEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal bid event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish bid event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Bid event published to Kafka", "event_id", event.EventID, "amount", event.Amount)
	}
}
