// Notification HTTP handlers.
//
// This file exposes REST endpoints for per-user notifications:
//   - GET /notifications            (list, newest first)
//   - PUT /notifications/{id}/read  (acknowledge one)
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/confqa/go-conference-backend/internal/domain"
	"github.com/confqa/go-conference-backend/internal/services"
)

// NotificationService defines notification operations consumed by HTTP
// handlers.
type NotificationService interface {
	// List returns the caller's notifications, newest first.
	List(ctx context.Context, userID string) ([]domain.Notification, error)
	// MarkRead acknowledges one of the caller's notifications.
	MarkRead(ctx context.Context, userID, id string) error
}

// ListNotificationsResponse wraps a user's notifications.
type ListNotificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
}

// ListNotifications godoc
// @ID          listNotifications
// @Summary     List the caller's notifications
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {object} handlers.ListNotificationsResponse
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /notifications [get]
func (h *Handlers) ListNotifications(c *gin.Context) {
	items, err := h.notifSvc.List(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListNotificationsResponse{Notifications: items})
}

// MarkNotificationRead godoc
// @ID          markNotificationRead
// @Summary     Mark a notification as read
// @Description Acknowledges one of the caller's notifications. Notifications
// @Description owned by other users report 404.
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Notification ID (UUID)"  format(uuid)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Notification not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /notifications/{id}/read [put]
func (h *Handlers) MarkNotificationRead(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "notification id must be a UUID")
		return
	}

	if err := h.notifSvc.MarkRead(c.Request.Context(), userID(c), id); err != nil {
		switch err {
		case services.ErrNotificationNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "notification not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	noContent(c)
}
