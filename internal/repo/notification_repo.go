// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// Notification model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/confqa/go-conference-backend/internal/domain"
)

// CreateNotification inserts a notification addressed to userID. topicID and
// questionID are optional pointers back to the triggering entities.
func CreateNotification(ctx context.Context, db *gorm.DB, userID, typ, message, topicID, questionID string) (*domain.Notification, error) {
	n := &domain.Notification{
		ID:         uuid.NewString(),
		UserID:     userID,
		Type:       typ,
		Message:    message,
		TopicID:    topicID,
		QuestionID: questionID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}

// ListNotifications returns a user's notifications, newest first.
func ListNotifications(ctx context.Context, db *gorm.DB, userID string) ([]domain.Notification, error) {
	var out []domain.Notification
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

// MarkNotificationRead flips the read flag on a notification, scoped to the
// owning user so one user can never ack another's notifications. Returns
// ErrNotFound when no row matches the (id, user) pair.
func MarkNotificationRead(ctx context.Context, db *gorm.DB, id, userID string) error {
	res := db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
