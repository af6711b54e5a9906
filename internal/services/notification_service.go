// Package services – NotificationService
//
// This file implements NotificationService, a thin layer over the
// notification repository: listing a user's notifications and acknowledging
// one. Notifications are produced elsewhere (question triage in
// QuestionService); this service only reads and flips read flags.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/confqa/go-conference-backend/internal/domain"
	"github.com/confqa/go-conference-backend/internal/repo"
)

// NotificationService implements the use-cases around user notifications.
type NotificationService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// List returns the caller's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, userID string) ([]domain.Notification, error) {
	return repo.ListNotifications(ctx, s.DB, userID)
}

// MarkRead flips the read flag on one of the caller's notifications. A
// notification owned by another user is indistinguishable from a missing one
// (ErrNotificationNotFound).
func (s *NotificationService) MarkRead(ctx context.Context, userID, id string) error {
	if err := repo.MarkNotificationRead(ctx, s.DB, id, userID); err != nil {
		if isNotFound(err) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}
