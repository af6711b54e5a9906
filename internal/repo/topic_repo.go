// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Topic model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/confqa/go-conference-backend/internal/domain"
)

// CreateTopic inserts a new topic owned by speakerID. The (speaker_id, name)
// pair is unique; violations surface as a raw DB error for the service layer
// to translate.
func CreateTopic(ctx context.Context, db *gorm.DB, t *domain.Topic) (*domain.Topic, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

// ListTopics returns every topic ordered by start time ascending (the
// listener schedule view).
func ListTopics(ctx context.Context, db *gorm.DB) ([]domain.Topic, error) {
	var out []domain.Topic
	err := db.WithContext(ctx).
		Order("start_time asc").
		Find(&out).Error
	return out, err
}

// ListSpeakerTopics returns only the topics owned by speakerID, ordered by
// start time ascending. Creation time breaks ties so concurrent sessions
// keep a stable order.
func ListSpeakerTopics(ctx context.Context, db *gorm.DB, speakerID string) ([]domain.Topic, error) {
	var out []domain.Topic
	err := db.WithContext(ctx).
		Where("speaker_id = ?", speakerID).
		Order("start_time asc, created_at asc").
		Find(&out).Error
	return out, err
}

// GetTopic fetches a topic by primary key, or ErrNotFound.
func GetTopic(ctx context.Context, db *gorm.DB, id string) (*domain.Topic, error) {
	var t domain.Topic
	if err := db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// GetSpeakerTopic fetches a topic by id while enforcing speaker ownership.
// A topic that exists but belongs to another speaker is indistinguishable
// from a missing one (ErrNotFound), so handlers never leak existence.
func GetSpeakerTopic(ctx context.Context, db *gorm.DB, id, speakerID string) (*domain.Topic, error) {
	var t domain.Topic
	err := db.WithContext(ctx).
		Where("id = ? AND speaker_id = ?", id, speakerID).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetTopicForSpeakerPair fetches a topic by (id, speaker_id) for question
// submission, where the client supplies both identifiers and they must agree.
func GetTopicForSpeakerPair(ctx context.Context, db *gorm.DB, topicID, speakerID string) (*domain.Topic, error) {
	return GetSpeakerTopic(ctx, db, topicID, speakerID)
}

// CountSpeakerTopicName counts topics owned by speakerID with the given
// name, optionally excluding one topic id (used when renaming).
func CountSpeakerTopicName(ctx context.Context, db *gorm.DB, speakerID, name, excludeID string) (int64, error) {
	var n int64
	q := db.WithContext(ctx).
		Model(&domain.Topic{}).
		Where("speaker_id = ? AND name = ?", speakerID, name)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n, err
}

// SaveTopic persists the full topic record (used after an allow-listed
// field merge in the service layer).
func SaveTopic(ctx context.Context, db *gorm.DB, t *domain.Topic) error {
	return db.WithContext(ctx).Save(t).Error
}

// CascadeResult reports what a topic deletion removed.
type CascadeResult struct {
	DeletedQuestions int64
	DeletedFeedback  int64
}

// DeleteTopicCascade removes a topic together with every question and
// feedback row referencing it, in a single transaction, and reports the
// per-collection counts. The topic row is removed last so a failed cascade
// never leaves an orphaned-but-deleted topic.
func DeleteTopicCascade(ctx context.Context, db *gorm.DB, topicID string) (CascadeResult, error) {
	var res CascadeResult
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Where("topic_id = ?", topicID).Delete(&domain.Question{})
		if q.Error != nil {
			return q.Error
		}
		res.DeletedQuestions = q.RowsAffected

		f := tx.Where("topic_id = ?", topicID).Delete(&domain.Feedback{})
		if f.Error != nil {
			return f.Error
		}
		res.DeletedFeedback = f.RowsAffected

		return tx.Where("id = ?", topicID).Delete(&domain.Topic{}).Error
	})
	if err != nil {
		return CascadeResult{}, err
	}
	return res, nil
}
