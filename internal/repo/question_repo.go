// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Question model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/confqa/go-conference-backend/internal/domain"
)

// CreateQuestion inserts a new question row. The relevance fields are
// expected to be populated already by the submission path.
func CreateQuestion(ctx context.Context, db *gorm.DB, q *domain.Question) (*domain.Question, error) {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	q.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

// GetQuestion fetches a question by primary key, or ErrNotFound.
func GetQuestion(ctx context.Context, db *gorm.DB, id string) (*domain.Question, error) {
	var q domain.Question
	if err := db.WithContext(ctx).Where("id = ?", id).First(&q).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

// ListUserQuestions returns every question submitted by userID, newest first.
func ListUserQuestions(ctx context.Context, db *gorm.DB, userID string) ([]domain.Question, error) {
	var out []domain.Question
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

// ListSpeakerQuestions returns every question addressed to speakerID, newest
// first, so fresh submissions lead each dashboard partition.
func ListSpeakerQuestions(ctx context.Context, db *gorm.DB, speakerID string) ([]domain.Question, error) {
	var out []domain.Question
	err := db.WithContext(ctx).
		Where("speaker_id = ?", speakerID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

// UpdateQuestionStatus sets the triage status of a question. Returns
// ErrNotFound when no row matches.
func UpdateQuestionStatus(ctx context.Context, db *gorm.DB, id, status string) error {
	res := db.WithContext(ctx).
		Model(&domain.Question{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteQuestion removes a question row. Ownership checks happen in the
// service layer before this is called.
func DeleteQuestion(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Question{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
