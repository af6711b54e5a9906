// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository helpers for the Submission
// model used to implement safe-retry semantics for question submission.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/confqa/go-conference-backend/internal/domain"
)

// ErrDuplicate indicates that a submission record already exists for the
// given (user_id, key) pair.
var ErrDuplicate = errors.New("duplicate")

// GetSubmission returns a non-expired record or ErrNotFound.
func GetSubmission(ctx context.Context, db *gorm.DB, userID, key string, now time.Time) (*domain.Submission, error) {
	var rec domain.Submission
	err := db.WithContext(ctx).
		Where("user_id = ? AND key = ? AND expires_at > ?", userID, key, now).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &rec, err
}

// CreateSubmission inserts a record and returns ErrDuplicate on unique violation.
func CreateSubmission(ctx context.Context, db *gorm.DB, userID, key, topicID, questionID string, status int, ttl time.Duration) (*domain.Submission, error) {
	now := time.Now().UTC()
	rec := &domain.Submission{
		ID:         uuid.NewString(),
		UserID:     userID,
		Key:        key,
		TopicID:    topicID,
		QuestionID: questionID,
		Status:     status,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
	}
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		// glebarez/sqlite often returns plain-text errors for UNIQUE violations.
		low := strings.ToLower(err.Error())
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(low, "unique constraint failed") ||
			strings.Contains(low, "constraint failed: unique") {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return rec, nil
}
