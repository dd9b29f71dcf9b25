package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNotificationRepository_ListUnreadForUser(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewNotificationReadRepository(db)
	writeRepo := NewNotificationWriteRepository(db, nil)
	ctx := context.Background()

	userID := insertTestUser(t, db, "seller")
	otherID := insertTestUser(t, db, "other")

	oldID := uuid.New()
	newID := uuid.New()
	readID := uuid.New()
	assert.NoError(t, writeRepo.Save(ctx, models.NotificationDB{
		NotificationID: oldID, UserID: userID,
		Message: "New bid of $1000.00 placed on your Toyota Corolla", CreatedAt: time.Now().Add(-time.Hour),
	}))
	assert.NoError(t, writeRepo.Save(ctx, models.NotificationDB{
		NotificationID: newID, UserID: userID,
		Message: "New bid of $1500.00 placed on your Toyota Corolla", CreatedAt: time.Now(),
	}))
	assert.NoError(t, writeRepo.Save(ctx, models.NotificationDB{
		NotificationID: readID, UserID: userID,
		Message: "already seen", CreatedAt: time.Now(), IsRead: true,
	}))
	assert.NoError(t, writeRepo.Save(ctx, models.NotificationDB{
		NotificationID: uuid.New(), UserID: otherID,
		Message: "someone else's", CreatedAt: time.Now(),
	}))

	notifications, err := readRepo.ListUnreadForUser(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, notifications, 2)

	// Newest first, read ones excluded.
	assert.Equal(t, newID, notifications[0].NotificationID)
	assert.Equal(t, oldID, notifications[1].NotificationID)
}

func TestNotificationWriteRepository_MarkRead(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewNotificationReadRepository(db)
	writeRepo := NewNotificationWriteRepository(db, nil)
	ctx := context.Background()

	userID := insertTestUser(t, db, "seller")

	notificationID := uuid.New()
	assert.NoError(t, writeRepo.Save(ctx, models.NotificationDB{
		NotificationID: notificationID, UserID: userID,
		Message: "New bid of $1000.00 placed on your Toyota Corolla", CreatedAt: time.Now(),
	}))

	rows, err := writeRepo.MarkRead(ctx, notificationID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	notifications, err := readRepo.ListUnreadForUser(ctx, userID)
	assert.NoError(t, err)
	assert.Empty(t, notifications)

	rows, err = writeRepo.MarkRead(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}
