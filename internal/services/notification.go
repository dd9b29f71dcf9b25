package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
)

// ErrNotificationNotFound is returned when a notification ID does not exist.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationReader defines read operations for notifications.
type NotificationReader interface {
	ListUnreadForUser(ctx context.Context, userID uuid.UUID) ([]models.NotificationDB, error)
}

// NotificationMarker flags a notification as read.
type NotificationMarker interface {
	MarkRead(ctx context.Context, notificationID uuid.UUID) (int64, error)
}

// NotificationService handles listing and acknowledging notifications.
type NotificationService struct {
	reader NotificationReader
	marker NotificationMarker
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(reader NotificationReader, marker NotificationMarker) *NotificationService {
	return &NotificationService{
		reader: reader,
		marker: marker,
	}
}

// ListUnread returns the user's unread notifications.
func (s *NotificationService) ListUnread(ctx context.Context, userID uuid.UUID) ([]models.NotificationDB, error) {
	notifications, err := s.reader.ListUnreadForUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list notifications", "user_id", userID, "error", err)
		return nil, err
	}
	return notifications, nil
}

// MarkRead flags a notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID uuid.UUID) error {
	rows, err := s.marker.MarkRead(ctx, notificationID)
	if err != nil {
		logger.Log.Errorw("failed to mark notification read", "notification_id", notificationID, "error", err)
		return err
	}
	if rows == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
