package notification

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationHandler handles HTTP requests for notifications.
type NotificationHandler struct {
	service *NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(service *NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ScheduleNotificationRequest represents the request to schedule a notification.
type ScheduleNotificationRequest struct {
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	SendTime   time.Time `json:"send_time"`
	Recipients []string  `json:"recipients"`
}

// ScheduleNotification allows admins to schedule a new email notice.
func (h *NotificationHandler) ScheduleNotification(c echo.Context) error {
	var req ScheduleNotificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if req.SendTime.Before(time.Now()) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "send time must be in the future"})
	}

	notification := &Notification{
		Subject:    req.Subject,
		Message:    req.Message,
		SendTime:   req.SendTime,
		Recipients: req.Recipients,
	}

	if err := h.service.ScheduleNotification(context.Background(), notification); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to schedule notification"})
	}

	return c.JSON(http.StatusCreated, map[string]string{"message": "notification scheduled successfully"})
}

// ListNotifications handles GET /api/notifications
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	notifications, err := h.service.ListNotifications(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch notifications"})
	}
	return c.JSON(http.StatusOK, notifications)
}

// DeleteNotification handles DELETE /api/notifications/:id
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	id := c.Param("id")
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid notification id"})
	}
	if err := h.service.DeleteNotification(c.Request().Context(), objID); err != nil {
		if err.Error() == "not found" {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "notification not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete notification: " + err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "notification deleted successfully"})
}
