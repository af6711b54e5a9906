// Package services – FeedbackService
//
// This file implements the FeedbackService, which governs how users rate
// topics (1–5 stars plus a comment). It enforces business rules (topic
// existence, rating bounds, non-empty comment, one rating per user per topic)
// and persists feedback atomically. Service-level errors (ErrInvalidRating,
// ErrEmptyComment, ErrTopicNotFound, ErrDuplicateFeedback) are returned for
// predictable cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/confqa/go-conference-backend/internal/domain"
	"github.com/confqa/go-conference-backend/internal/repo"
)

// FeedbackService implements the use-cases around topic feedback.
type FeedbackService struct {
	// DB is the database handle used for all feedback operations.
	DB *gorm.DB
}

// Submit records a rating+comment for topicID on behalf of userID.
//
// Semantics and validation:
//   - rating must be between 1 and 5 inclusive; otherwise ErrInvalidRating.
//   - comment must be non-empty after trimming; otherwise ErrEmptyComment.
//   - topicID must exist; otherwise ErrTopicNotFound.
//   - A user may rate a topic at most once; the (user_id, topic_id) unique
//     index is the arbiter under concurrent submissions, mapped to
//     ErrDuplicateFeedback.
//
// Concurrency & atomicity:
//   - The operation runs inside a transaction to ensure the existence check
//     and the insert are atomic.
func (s *FeedbackService) Submit(ctx context.Context, userID, topicID string, rating int, comment string) (*domain.Feedback, error) {
	tr := otel.Tracer("services/FeedbackService")
	ctx, span := tr.Start(ctx, "Submit",
		trace.WithAttributes(
			attribute.String("topic.id", topicID),
			attribute.Int("feedback.rating", rating),
		),
	)
	defer span.End()

	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, ErrEmptyComment
	}

	var out *domain.Feedback
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetTopic(ctx, tx, topicID); err != nil {
			if isNotFound(err) {
				return ErrTopicNotFound
			}
			return err
		}

		fb, err := repo.CreateFeedback(ctx, tx, userID, topicID, rating, comment)
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicate(err) {
				return ErrDuplicateFeedback
			}
			return err
		}
		out = fb
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListForTopic returns all feedback left on a topic, newest first. Any
// authenticated user may read a topic's feedback.
func (s *FeedbackService) ListForTopic(ctx context.Context, topicID string) ([]domain.Feedback, error) {
	if _, err := repo.GetTopic(ctx, s.DB, topicID); err != nil {
		if isNotFound(err) {
			return nil, ErrTopicNotFound
		}
		return nil, err
	}
	return repo.ListTopicFeedback(ctx, s.DB, topicID)
}

// Check reports whether userID has already rated topicID, and returns the
// existing feedback when present.
func (s *FeedbackService) Check(ctx context.Context, userID, topicID string) (bool, *domain.Feedback, error) {
	fb, err := repo.GetUserTopicFeedback(ctx, s.DB, userID, topicID)
	if err != nil {
		if isNotFound(err) {
			return false, nil, nil
		}
		return false, nil, err
	}
	return true, fb, nil
}
