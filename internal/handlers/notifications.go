package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/middlewares"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
)

// NotificationsLister defines the interface that the service must implement.
type NotificationsLister interface {
	ListUnread(ctx context.Context, userID uuid.UUID) ([]models.NotificationDB, error)
}

// NotificationItem represents one notification in the response
// swagger:model NotificationItem
type NotificationItem struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// NotificationsResponse represents the unread notifications response
// swagger:model NotificationsResponse
type NotificationsResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`

	// Unread notifications
	Notifications []NotificationItem `json:"notifications"`
}

// NewGetNotificationsHandler returns an HTTP handler listing the caller's
// unread notifications.
// @Summary List unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} handlers.NotificationsResponse "Unread notifications"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /notifications [get]
// @Security BearerAuth
func NewGetNotificationsHandler(svc NotificationsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		notifications, err := svc.ListUnread(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list notifications", "user_id", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		items := make([]NotificationItem, 0, len(notifications))
		for _, n := range notifications {
			items = append(items, NotificationItem{
				ID:      n.NotificationID.String(),
				Message: n.Message,
				Time:    n.CreatedAt,
			})
		}

		writeJSON(w, http.StatusOK, NotificationsResponse{Success: true, Notifications: items})
	}
}
