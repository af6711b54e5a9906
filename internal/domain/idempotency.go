// Package domain defines the core persistence models for the application.
// These types are used by GORM for database schema mapping and are shared
// across the repository and service layers.
package domain

import "time"

// Submission represents a recorded result of a previously processed question
// submission, keyed by (user_id, key). It enables safe retries of
// POST /questions: a replayed request returns the originally created question
// without invoking the relevance classifier a second time.
type Submission struct {
	ID         string    `gorm:"type:TEXT NOT NULL;primaryKey"`
	UserID     string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_submission_user_key,priority:1"`
	Key        string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_submission_user_key,priority:2"`
	TopicID    string    `gorm:"type:TEXT NOT NULL"`
	QuestionID string    `gorm:"type:TEXT NOT NULL"`
	Status     int       `gorm:"type:INTEGER NOT NULL"`
	CreatedAt  time.Time `gorm:"type:DATETIME NOT NULL;autoCreateTime"`
	ExpiresAt  time.Time `gorm:"type:DATETIME NOT NULL;index"`
}

// TableName implements the GORM tabler interface.
func (Submission) TableName() string { return "submissions" }
