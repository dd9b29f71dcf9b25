package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/services"
)

// NotificationReadMarker defines the interface that the service must implement.
type NotificationReadMarker interface {
	MarkRead(ctx context.Context, notificationID uuid.UUID) error
}

// MarkReadResponse represents a successful mark-read response
// swagger:model MarkReadResponse
type MarkReadResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`
}

// NewMarkNotificationReadHandler returns an HTTP handler that flags a
// notification as read.
// @Summary Mark notification read
// @Tags notifications
// @Produce json
// @Param notificationID path string true "Notification ID"
// @Success 200 {object} handlers.MarkReadResponse "Marked read"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Notification not found"
// @Router /notifications/{notificationID}/read [post]
// @Security BearerAuth
func NewMarkNotificationReadHandler(svc NotificationReadMarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		notificationID, err := uuid.Parse(chi.URLParam(r, "notificationID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid notification id")
			return
		}

		if err := svc.MarkRead(ctx, notificationID); err != nil {
			if errors.Is(err, services.ErrNotificationNotFound) {
				writeError(w, http.StatusNotFound, "Notification not found")
				return
			}
			logger.Log.Errorw("failed to mark notification read", "notification_id", notificationID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, MarkReadResponse{Success: true})
	}
}
