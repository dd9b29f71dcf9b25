package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
)

// NotificationReadRepository handles notification read operations
type NotificationReadRepository struct {
	db *sqlx.DB
}

func NewNotificationReadRepository(db *sqlx.DB) *NotificationReadRepository {
	return &NotificationReadRepository{db: db}
}

// ListUnreadForUser returns a user's unread notifications, newest first.
func (r *NotificationReadRepository) ListUnreadForUser(ctx context.Context, userID uuid.UUID) ([]models.NotificationDB, error) {
	const query = `
		SELECT notification_id, user_id, message, created_at, is_read
		FROM notifications
		WHERE user_id = $1 AND is_read = FALSE
		ORDER BY created_at DESC
	`

	var notifications []models.NotificationDB
	err := r.db.SelectContext(ctx, &notifications, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result_count", len(notifications),
		"error", err,
	)

	return notifications, err
}

// NotificationWriteRepository handles notification write operations
type NotificationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewNotificationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *NotificationWriteRepository {
	return &NotificationWriteRepository{db: db, txGetter: txGetter}
}

func (r *NotificationWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new notification record.
func (r *NotificationWriteRepository) Save(ctx context.Context, notification models.NotificationDB) error {
	query := `
		INSERT INTO notifications (notification_id, user_id, message, created_at, is_read)
		VALUES ($1, $2, $3, $4, $5)
	`
	args := []any{
		notification.NotificationID, notification.UserID, notification.Message,
		notification.CreatedAt, notification.IsRead,
	}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{notification.NotificationID, notification.UserID},
		"error", err,
	)

	return err
}

// MarkRead flags a notification as read.
// Returns the number of rows affected (0 when the notification does not exist).
func (r *NotificationWriteRepository) MarkRead(ctx context.Context, notificationID uuid.UUID) (int64, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE notification_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, notificationID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{notificationID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
