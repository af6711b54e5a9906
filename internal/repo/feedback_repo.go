// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Feedback model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/confqa/go-conference-backend/internal/domain"
)

// CreateFeedback inserts a feedback row for (userID, topicID). The unique
// index on that pair is the arbiter under concurrent submissions; violations
// surface as a raw DB error for the service layer to translate.
func CreateFeedback(ctx context.Context, db *gorm.DB, userID, topicID string, rating int, comment string) (*domain.Feedback, error) {
	fb := &domain.Feedback{
		ID:        uuid.NewString(),
		UserID:    userID,
		TopicID:   topicID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(fb).Error; err != nil {
		return nil, err
	}
	return fb, nil
}

// ListTopicFeedback returns all feedback for a topic, newest first.
func ListTopicFeedback(ctx context.Context, db *gorm.DB, topicID string) ([]domain.Feedback, error) {
	var out []domain.Feedback
	err := db.WithContext(ctx).
		Where("topic_id = ?", topicID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

// GetUserTopicFeedback fetches the feedback a user left on a topic, or
// ErrNotFound when the user has not rated it yet.
func GetUserTopicFeedback(ctx context.Context, db *gorm.DB, userID, topicID string) (*domain.Feedback, error) {
	var fb domain.Feedback
	err := db.WithContext(ctx).
		Where("user_id = ? AND topic_id = ?", userID, topicID).
		First(&fb).Error
	if err != nil {
		return nil, err
	}
	return &fb, nil
}
