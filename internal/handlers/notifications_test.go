package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/smolin2019/vehicle-auction-service/internal/jwt"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
	"github.com/smolin2019/vehicle-auction-service/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetNotificationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	claims := &jwt.Claims{UserID: userID, Username: "seller"}

	t.Run("returns unread notifications", func(t *testing.T) {
		mockSvc := NewMockNotificationsLister(ctrl)

		notifications := []models.NotificationDB{
			{
				NotificationID: uuid.New(),
				UserID:         userID,
				Message:        "New bid of $1500.00 placed on your Toyota Corolla",
				CreatedAt:      time.Now(),
			},
		}
		mockSvc.EXPECT().ListUnread(gomock.Any(), userID).Return(notifications, nil)

		handler := NewGetNotificationsHandler(mockSvc)

		req := newAuthedRequest(http.MethodGet, "/api/notifications", nil, claims)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got NotificationsResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.True(t, got.Success)
		assert.Len(t, got.Notifications, 1)
		assert.Equal(t, "New bid of $1500.00 placed on your Toyota Corolla", got.Notifications[0].Message)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		mockSvc := NewMockNotificationsLister(ctrl)

		handler := NewGetNotificationsHandler(mockSvc)

		req := newAuthedRequest(http.MethodGet, "/api/notifications", nil, nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestMarkNotificationReadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notificationID := uuid.New()
	claims := &jwt.Claims{UserID: uuid.New()}

	newRouter := func(svc NotificationReadMarker) http.Handler {
		r := chi.NewRouter()
		r.Post("/api/notifications/{notificationID}/read", NewMarkNotificationReadHandler(svc))
		return r
	}

	t.Run("marks the notification read", func(t *testing.T) {
		mockSvc := NewMockNotificationReadMarker(ctrl)
		mockSvc.EXPECT().MarkRead(gomock.Any(), notificationID).Return(nil)

		req := newAuthedRequest(http.MethodPost, "/api/notifications/"+notificationID.String()+"/read", nil, claims)
		rec := httptest.NewRecorder()

		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":true`)
	})

	t.Run("missing notification", func(t *testing.T) {
		mockSvc := NewMockNotificationReadMarker(ctrl)
		mockSvc.EXPECT().MarkRead(gomock.Any(), notificationID).Return(services.ErrNotificationNotFound)

		req := newAuthedRequest(http.MethodPost, "/api/notifications/"+notificationID.String()+"/read", nil, claims)
		rec := httptest.NewRecorder()

		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Notification not found")
	})

	t.Run("invalid id", func(t *testing.T) {
		mockSvc := NewMockNotificationReadMarker(ctrl)

		req := newAuthedRequest(http.MethodPost, "/api/notifications/not-a-uuid/read", nil, claims)
		rec := httptest.NewRecorder()

		newRouter(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
