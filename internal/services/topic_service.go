// Package services – TopicService
//
// This file implements TopicService, which manages the lifecycle of speaker
// topics: creation (with a snapshot of the speaker's display info and avatar),
// listing for the listener schedule and the speaker dashboard, allow-listed
// updates, and cascading deletion of a topic together with its questions and
// feedback.
//
// Service-level errors (e.g. ErrTopicNotFound, ErrDuplicateTopic) are returned
// for predictable cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/confqa/go-conference-backend/internal/domain"
	"github.com/confqa/go-conference-backend/internal/repo"
)

// defaultDurationMin is applied when a topic is created without an explicit
// session duration.
const defaultDurationMin = 60

// TopicService provides topic-level operations and enforces speaker
// ownership constraints.
type TopicService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// TopicInput carries the client-supplied fields for creating a topic.
type TopicInput struct {
	Name           string
	SpeakerName    string
	ConferenceTime time.Time
	DurationMin    int
	StartTime      time.Time
	EndTime        time.Time
	Status         string
}

// TopicUpdate carries the allow-listed mutable fields for updating a topic.
// Nil pointers mean "leave unchanged".
type TopicUpdate struct {
	Name           *string
	SpeakerName    *string
	ConferenceTime *time.Time
	DurationMin    *int
	StartTime      *time.Time
	EndTime        *time.Time
	Status         *string
}

// DeleteResult reports what a topic deletion removed alongside the topic.
type DeleteResult struct {
	DeletedQuestions int64
	DeletedFeedback  int64
}

// Create inserts a new topic owned by speakerID. The speaker's current
// avatar is snapshotted onto the topic and not refreshed on later profile
// edits. Duration defaults to 60 minutes when unset.
func (s *TopicService) Create(ctx context.Context, speakerID string, in TopicInput) (*domain.Topic, error) {
	tr := otel.Tracer("services/TopicService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(attribute.String("speaker.id", speakerID)),
	)
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)
	if err := validateTopicInput(in); err != nil {
		return nil, err
	}
	if in.DurationMin <= 0 {
		in.DurationMin = defaultDurationMin
	}
	if in.Status == "" {
		in.Status = domain.TopicUpcoming
	}

	speaker, err := repo.GetUser(ctx, s.DB, speakerID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	speakerName := strings.TrimSpace(in.SpeakerName)
	if speakerName == "" {
		speakerName = speaker.Name
	}

	t := &domain.Topic{
		Name:      in.Name,
		SpeakerID: speakerID,
		SpeakerInfo: domain.SpeakerInfo{
			SpeakerName:    speakerName,
			ConferenceTime: in.ConferenceTime,
			DurationMin:    in.DurationMin,
			Avatar:         speaker.Avatar,
		},
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Status:    in.Status,
	}

	created, err := repo.CreateTopic(ctx, s.DB, t)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicate(err) {
			return nil, ErrDuplicateTopic
		}
		return nil, err
	}
	return created, nil
}

// List returns the full schedule ordered by start time.
func (s *TopicService) List(ctx context.Context) ([]domain.Topic, error) {
	return repo.ListTopics(ctx, s.DB)
}

// ListOwn returns only the topics owned by speakerID.
func (s *TopicService) ListOwn(ctx context.Context, speakerID string) ([]domain.Topic, error) {
	return repo.ListSpeakerTopics(ctx, s.DB, speakerID)
}

// Get fetches a single topic by id.
func (s *TopicService) Get(ctx context.Context, id string) (*domain.Topic, error) {
	t, err := repo.GetTopic(ctx, s.DB, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrTopicNotFound
		}
		return nil, err
	}
	return t, nil
}

// Update applies an allow-listed set of field changes to a topic owned by
// speakerID. A topic owned by another speaker is reported as ErrTopicNotFound
// so existence never leaks. Renaming to a name the speaker already uses
// yields ErrDuplicateTopic.
func (s *TopicService) Update(ctx context.Context, speakerID, topicID string, upd TopicUpdate) (*domain.Topic, error) {
	tr := otel.Tracer("services/TopicService")
	ctx, span := tr.Start(ctx, "Update",
		trace.WithAttributes(
			attribute.String("topic.id", topicID),
			attribute.String("speaker.id", speakerID),
		),
	)
	defer span.End()

	var out *domain.Topic
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		t, err := repo.GetSpeakerTopic(ctx, tx, topicID, speakerID)
		if err != nil {
			if isNotFound(err) {
				return ErrTopicNotFound
			}
			return err
		}

		if upd.Name != nil {
			name := strings.TrimSpace(*upd.Name)
			if name == "" {
				return ErrInvalidTopic
			}
			if name != t.Name {
				n, err := repo.CountSpeakerTopicName(ctx, tx, speakerID, name, topicID)
				if err != nil {
					return err
				}
				if n > 0 {
					return ErrDuplicateTopic
				}
				t.Name = name
			}
		}
		if upd.SpeakerName != nil {
			t.SpeakerInfo.SpeakerName = strings.TrimSpace(*upd.SpeakerName)
		}
		if upd.ConferenceTime != nil {
			t.SpeakerInfo.ConferenceTime = *upd.ConferenceTime
		}
		if upd.DurationMin != nil {
			if *upd.DurationMin <= 0 {
				return ErrInvalidTopic
			}
			t.SpeakerInfo.DurationMin = *upd.DurationMin
		}
		if upd.StartTime != nil {
			t.StartTime = *upd.StartTime
		}
		if upd.EndTime != nil {
			t.EndTime = *upd.EndTime
		}
		if !t.EndTime.IsZero() && !t.EndTime.After(t.StartTime) {
			return ErrInvalidTopic
		}
		if upd.Status != nil {
			switch *upd.Status {
			case domain.TopicUpcoming, domain.TopicActive, domain.TopicCompleted:
				t.Status = *upd.Status
			default:
				return ErrInvalidTopic
			}
		}

		if err := repo.SaveTopic(ctx, tx, t); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicate(err) {
				return ErrDuplicateTopic
			}
			return err
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a topic owned by speakerID together with all of its
// questions and feedback, and reports the per-collection counts.
func (s *TopicService) Delete(ctx context.Context, speakerID, topicID string) (*DeleteResult, error) {
	tr := otel.Tracer("services/TopicService")
	ctx, span := tr.Start(ctx, "Delete",
		trace.WithAttributes(
			attribute.String("topic.id", topicID),
			attribute.String("speaker.id", speakerID),
		),
	)
	defer span.End()

	if _, err := repo.GetSpeakerTopic(ctx, s.DB, topicID, speakerID); err != nil {
		if isNotFound(err) {
			return nil, ErrTopicNotFound
		}
		return nil, err
	}

	res, err := repo.DeleteTopicCascade(ctx, s.DB, topicID)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{
		DeletedQuestions: res.DeletedQuestions,
		DeletedFeedback:  res.DeletedFeedback,
	}, nil
}

// validateTopicInput checks the fields required at creation time.
func validateTopicInput(in TopicInput) error {
	if in.Name == "" {
		return ErrInvalidTopic
	}
	if in.StartTime.IsZero() || in.EndTime.IsZero() {
		return ErrInvalidTopic
	}
	if !in.EndTime.After(in.StartTime) {
		return ErrInvalidTopic
	}
	switch in.Status {
	case "", domain.TopicUpcoming, domain.TopicActive, domain.TopicCompleted:
	default:
		return ErrInvalidTopic
	}
	return nil
}
