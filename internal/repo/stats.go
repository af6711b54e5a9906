// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate/statistics queries used
// primarily for conditional responses (e.g., ETag generation) in the HTTP
// layer. Each function is context-aware and safe to call from services or
// handlers.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/confqa/go-conference-backend/internal/domain"
)

// TopicsStats returns aggregate metadata for the topics table: the total
// number of rows and the maximum UpdatedAt timestamp among those rows.
//
// When speakerID is non-empty the stats are scoped to that speaker's topics;
// otherwise they cover the whole schedule. When there are no rows, the
// returned count is 0 and maxUpdatedAt is nil.
//
// Return values:
//   - count:        total matching topics
//   - maxUpdatedAt: pointer to the greatest UpdatedAt, or nil if no rows
//   - err:          database error, if any
func TopicsStats(ctx context.Context, db *gorm.DB, speakerID string) (count int64, maxUpdatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Topic{})
	if speakerID != "" {
		q = q.Where("speaker_id = ?", speakerID)
	}

	// Count
	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest updated_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	if err = q.Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}

// QuestionsStats returns aggregate metadata for a speaker's inbound
// questions: the total number of rows and the maximum UpdatedAt timestamp
// among those rows. When the speaker has no questions, the returned count is
// 0 and maxUpdatedAt is nil.
//
// Return values:
//   - count:        total questions addressed to speakerID
//   - maxUpdatedAt: pointer to the greatest UpdatedAt, or nil if no rows
//   - err:          database error, if any
func QuestionsStats(ctx context.Context, db *gorm.DB, speakerID string) (count int64, maxUpdatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Question{}).Where("speaker_id = ?", speakerID)

	// Count
	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest updated_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	if err = q.Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}
