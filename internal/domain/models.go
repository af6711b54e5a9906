// Package domain defines the persistence models for users, topics, questions,
// feedback, and notifications. These types are mapped with GORM and form the
// core data layer of the conference Q&A application.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// User roles. A user record exists per (email, role) pair, so the same email
// may be registered once as a listener and once as a speaker.
const (
	RoleListener = "listener"
	RoleSpeaker  = "speaker"
)

// Question statuses. Transitions between them are unrestricted: a speaker may
// set any status from any other.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Topic lifecycle states shown on the listener schedule.
const (
	TopicUpcoming  = "upcoming"
	TopicActive    = "active"
	TopicCompleted = "completed"
)

// User represents an account in either the listener or speaker role.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Email / Role: identity pair; unique together, so one email can hold
//     both a listener and a speaker account.
//   - Password: bcrypt hash, never serialized.
//   - Name / Bio / Organization / Avatar: profile fields; Avatar stores the
//     relative URL of the uploaded image (e.g. /uploads/avatars/x.png).
type User struct {
	ID           string         `json:"id"           gorm:"type:char(36);primaryKey"`
	Email        string         `json:"email"        gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email_role,priority:1"`
	Password     string         `json:"-"            gorm:"type:varchar(255);not null"`
	Role         string         `json:"role"         gorm:"type:varchar(16);not null;uniqueIndex:ux_users_email_role,priority:2;check:role IN ('listener','speaker')"`
	Name         string         `json:"name"         gorm:"type:varchar(255)"`
	Bio          string         `json:"bio"          gorm:"type:text"`
	Organization string         `json:"organization" gorm:"type:varchar(255)"`
	Avatar       string         `json:"avatar"       gorm:"type:varchar(512)"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-"            gorm:"index"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// SpeakerInfo is the display block embedded in a Topic. It is a snapshot
// taken at topic-creation time (including the speaker's avatar path) and is
// not refreshed when the speaker later edits their profile.
type SpeakerInfo struct {
	SpeakerName    string    `json:"speakerName"    gorm:"column:speaker_name;type:varchar(255);not null"`
	ConferenceTime time.Time `json:"conferenceTime" gorm:"column:conference_time;not null"`
	DurationMin    int       `json:"duration"       gorm:"column:duration_min;not null;default:60"`
	Avatar         string    `json:"avatar"         gorm:"column:speaker_avatar;type:varchar(512)"`
}

// Topic represents a scheduled speaker session that listeners submit
// questions against. A speaker may not own two topics with the same name
// (unique index on speaker_id + name).
type Topic struct {
	ID          string         `json:"id"          gorm:"type:char(36);primaryKey"`
	Name        string         `json:"name"        gorm:"type:varchar(255);not null;uniqueIndex:ux_topics_speaker_name,priority:2"`
	SpeakerID   string         `json:"speakerId"   gorm:"type:char(36);not null;index;uniqueIndex:ux_topics_speaker_name,priority:1"`
	SpeakerInfo SpeakerInfo    `json:"speakerInfo" gorm:"embedded"`
	StartTime   time.Time      `json:"startTime"   gorm:"not null;index"`
	EndTime     time.Time      `json:"endTime"     gorm:"not null"`
	Status      string         `json:"status"      gorm:"type:varchar(16);not null;default:'upcoming';check:status IN ('upcoming','active','completed')"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-"           gorm:"index"`
}

// TableName returns the database table name for Topic.
func (Topic) TableName() string { return "topics" }

// Question is a listener-submitted question against a topic. The speaker id
// is denormalized so dashboard queries avoid a join. Relevance fields
// (IsRelevant, Confidence, Score) are produced by the external classifier
// exactly once, at submission time, and never recomputed.
//
// Username and UserEmail are stored as supplied even for anonymous
// submissions; the scrub to "Anonymous"/"" happens at read time in the
// speaker-facing service layer.
type Question struct {
	ID          string         `json:"id"          gorm:"type:char(36);primaryKey"`
	UserID      string         `json:"userId"      gorm:"type:char(36);not null;index:idx_questions_user_created,priority:1"`
	TopicID     string         `json:"topicId"     gorm:"type:char(36);not null;index:idx_questions_topic_speaker,priority:1"`
	SpeakerID   string         `json:"speakerId"   gorm:"type:char(36);not null;index:idx_questions_topic_speaker,priority:2"`
	Content     string         `json:"content"     gorm:"type:text;not null"`
	Status      string         `json:"status"      gorm:"type:varchar(16);not null;default:'pending';check:status IN ('pending','approved','rejected')"`
	IsAnonymous bool           `json:"isAnonymous" gorm:"not null;default:true"`
	Username    string         `json:"username"    gorm:"type:varchar(255)"`
	UserEmail   string         `json:"userEmail"   gorm:"type:varchar(255)"`
	IsRelevant  bool           `json:"isRelevant"  gorm:"not null;default:false"`
	Confidence  float64        `json:"confidence"  gorm:"not null;default:0"`
	Score       float64        `json:"score"       gorm:"not null;default:0"`
	CreatedAt   time.Time      `json:"created_at"  gorm:"index:idx_questions_user_created,priority:2"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-"           gorm:"index"`

	// Topic is the parent session. Questions are cascade-deleted when their
	// topic is removed.
	Topic Topic `json:"-" gorm:"foreignKey:TopicID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Question.
func (Question) TableName() string { return "questions" }

// Feedback is a single rating+comment a user leaves on a topic. At most one
// row may exist per (user, topic); the unique index is the arbiter under
// concurrent submissions.
type Feedback struct {
	ID        string         `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID    string         `json:"userId"     gorm:"type:char(36);not null;index;uniqueIndex:ux_feedback_user_topic,priority:1"`
	TopicID   string         `json:"topicId"    gorm:"type:char(36);not null;index;uniqueIndex:ux_feedback_user_topic,priority:2"`
	Rating    int            `json:"rating"     gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Comment   string         `json:"comment"    gorm:"type:text;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"          gorm:"index"`

	// Topic is the rated session. Feedback is cascade-deleted when the
	// topic is removed.
	Topic Topic `json:"-" gorm:"foreignKey:TopicID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Feedback.
func (Feedback) TableName() string { return "feedback" }

// Notification is a per-user message with a read flag, optionally pointing at
// the topic and question that produced it.
type Notification struct {
	ID         string         `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID     string         `json:"userId"     gorm:"type:char(36);not null;index:idx_notifications_user_created,priority:1"`
	Type       string         `json:"type"       gorm:"type:varchar(64);not null"`
	Message    string         `json:"message"    gorm:"type:text;not null"`
	Read       bool           `json:"read"       gorm:"not null;default:false"`
	TopicID    string         `json:"topicId,omitempty"    gorm:"type:char(36)"`
	QuestionID string         `json:"questionId,omitempty" gorm:"type:char(36)"`
	CreatedAt  time.Time      `json:"created_at" gorm:"index:idx_notifications_user_created,priority:2"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-"          gorm:"index"`
}

// TableName returns the database table name for Notification.
func (Notification) TableName() string { return "notifications" }
