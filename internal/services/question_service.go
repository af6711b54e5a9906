// Package services – QuestionService
//
// This file implements QuestionService, the application-level component that
// owns the lifecycle of listener questions. Submission validates the
// (topic, speaker) pair, calls the external relevance classifier exactly once
// (fail-closed: a classifier failure aborts the submission), and persists the
// question with its verdict. Speakers read their inbound questions grouped by
// topic and partitioned by relevance, with submitter identity scrubbed for
// anonymous questions at read time.
//
// Observability: all public methods are OpenTelemetry-instrumented; spans
// include topic/user identifiers where applicable.
package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/confqa/go-conference-backend/internal/classifier"
	"github.com/confqa/go-conference-backend/internal/domain"
	"github.com/confqa/go-conference-backend/internal/repo"
)

// anonymousName replaces the submitter's name in speaker-facing reads of
// anonymous questions.
const anonymousName = "Anonymous"

// notificationStatusChange is the notification type emitted when a speaker
// triages a question.
const notificationStatusChange = "question_status"

// Predictor is the classifier contract required by QuestionService.
type Predictor interface {
	// Predict returns the relevance verdict for (question, topic) or a
	// typed error when the classifier cannot answer.
	Predict(ctx context.Context, question, topic string) (*classifier.Prediction, error)
}

// QuestionService coordinates question persistence and relevance
// classification.
type QuestionService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Classifier produces the relevance verdict at submission time.
	Classifier Predictor

	// MaxContentRunes caps submitted question length (0 disables the cap).
	MaxContentRunes int
}

// QuestionInput carries the client-supplied fields for submitting a question.
// The client names both the topic and the speaker it believes owns it; the
// pair must agree or the topic is treated as missing. Username and UserEmail
// are optional; when blank the submitter's profile values are recorded.
type QuestionInput struct {
	TopicID     string
	SpeakerID   string
	Content     string
	IsAnonymous bool
	Username    string
	UserEmail   string
}

// TopicQuestions is one group in the speaker dashboard: a topic with its
// questions partitioned by the classifier verdict.
type TopicQuestions struct {
	TopicID     string            `json:"topicId"`
	TopicName   string            `json:"topicName"`
	Relevant    []domain.Question `json:"relevant"`
	NonRelevant []domain.Question `json:"nonRelevant"`
}

// SpeakerDashboard is the full grouped view with aggregate counts.
type SpeakerDashboard struct {
	Topics           []TopicQuestions `json:"topics"`
	TotalQuestions   int              `json:"totalQuestions"`
	RelevantCount    int              `json:"relevantCount"`
	NonRelevantCount int              `json:"nonRelevantCount"`
}

// Submit validates the (TopicID, SpeakerID) pair, obtains a relevance verdict
// from the classifier, and persists the question. The submitter's display
// name and email are taken from the request when supplied, otherwise from
// their profile; either way they are stored verbatim and scrubbed only in
// speaker-facing reads of anonymous questions.
//
// A classifier failure of any kind aborts the submission with
// ErrClassifierUnavailable; no question row is written.
func (s *QuestionService) Submit(ctx context.Context, userID string, in QuestionInput) (*domain.Question, error) {
	tr := otel.Tracer("services/QuestionService")
	ctx, span := tr.Start(ctx, "Submit",
		trace.WithAttributes(
			attribute.String("topic.id", in.TopicID),
			attribute.String("user.id", userID),
			attribute.Bool("question.anonymous", in.IsAnonymous),
		),
	)
	defer span.End()

	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, ErrEmptyQuestion
	}
	if s.MaxContentRunes > 0 && utf8.RuneCountInString(content) > s.MaxContentRunes {
		return nil, ErrQuestionTooLong
	}

	// The client supplies both identifiers; they must agree or the topic is
	// treated as missing.
	topic, err := repo.GetTopicForSpeakerPair(ctx, s.DB, in.TopicID, in.SpeakerID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrTopicNotFound
		}
		return nil, err
	}

	user, err := repo.GetUser(ctx, s.DB, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	username := strings.TrimSpace(in.Username)
	if username == "" {
		username = user.Name
	}
	userEmail := strings.TrimSpace(in.UserEmail)
	if userEmail == "" {
		userEmail = user.Email
	}

	// Classification happens before persistence and is never retried here.
	pred, err := s.Classifier.Predict(ctx, content, topic.Name)
	if err != nil {
		span.RecordError(err)
		return nil, ErrClassifierUnavailable
	}

	q := &domain.Question{
		UserID:      userID,
		TopicID:     topic.ID,
		SpeakerID:   topic.SpeakerID,
		Content:     content,
		Status:      domain.StatusPending,
		IsAnonymous: in.IsAnonymous,
		Username:    username,
		UserEmail:   userEmail,
		IsRelevant:  pred.IsRelevant,
		Confidence:  pred.Confidence,
		Score:       pred.Score,
	}
	return repo.CreateQuestion(ctx, s.DB, q)
}

// MyQuestions returns the caller's own submissions, newest first. Identity
// fields are left intact: users always see their own name on their questions.
func (s *QuestionService) MyQuestions(ctx context.Context, userID string) ([]domain.Question, error) {
	return repo.ListUserQuestions(ctx, s.DB, userID)
}

// SpeakerQuestions returns the speaker's dashboard: every topic they own, in
// schedule order, with its questions partitioned by the classifier verdict
// newest first. Topics with no questions still appear, with empty partitions.
// Anonymous questions have their submitter identity scrubbed here, at read
// time.
func (s *QuestionService) SpeakerQuestions(ctx context.Context, speakerID string) (*SpeakerDashboard, error) {
	tr := otel.Tracer("services/QuestionService")
	ctx, span := tr.Start(ctx, "SpeakerQuestions",
		trace.WithAttributes(attribute.String("speaker.id", speakerID)),
	)
	defer span.End()

	topics, err := repo.ListSpeakerTopics(ctx, s.DB, speakerID)
	if err != nil {
		return nil, err
	}
	questions, err := repo.ListSpeakerQuestions(ctx, s.DB, speakerID)
	if err != nil {
		return nil, err
	}

	dash := &SpeakerDashboard{Topics: make([]TopicQuestions, 0, len(topics))}
	index := make(map[string]int, len(topics))
	for _, t := range topics {
		index[t.ID] = len(dash.Topics)
		dash.Topics = append(dash.Topics, TopicQuestions{
			TopicID:     t.ID,
			TopicName:   t.Name,
			Relevant:    []domain.Question{},
			NonRelevant: []domain.Question{},
		})
	}

	for _, q := range questions {
		scrubAnonymous(&q)

		i, ok := index[q.TopicID]
		if !ok {
			// Question outlived its topic row; keep it visible.
			i = len(dash.Topics)
			index[q.TopicID] = i
			dash.Topics = append(dash.Topics, TopicQuestions{
				TopicID:     q.TopicID,
				Relevant:    []domain.Question{},
				NonRelevant: []domain.Question{},
			})
		}
		if q.IsRelevant {
			dash.Topics[i].Relevant = append(dash.Topics[i].Relevant, q)
			dash.RelevantCount++
		} else {
			dash.Topics[i].NonRelevant = append(dash.Topics[i].NonRelevant, q)
			dash.NonRelevantCount++
		}
		dash.TotalQuestions++
	}
	return dash, nil
}

// UpdateStatus sets the triage status of a question owned by speakerID and
// notifies the submitter. A question addressed to another speaker yields
// ErrNotQuestionOwner.
func (s *QuestionService) UpdateStatus(ctx context.Context, speakerID, questionID, status string) (*domain.Question, error) {
	tr := otel.Tracer("services/QuestionService")
	ctx, span := tr.Start(ctx, "UpdateStatus",
		trace.WithAttributes(
			attribute.String("question.id", questionID),
			attribute.String("question.status", status),
		),
	)
	defer span.End()

	switch status {
	case domain.StatusPending, domain.StatusApproved, domain.StatusRejected:
	default:
		return nil, ErrInvalidStatus
	}

	var out *domain.Question
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q, err := repo.GetQuestion(ctx, tx, questionID)
		if err != nil {
			if isNotFound(err) {
				return ErrQuestionNotFound
			}
			return err
		}
		if q.SpeakerID != speakerID {
			return ErrNotQuestionOwner
		}

		if err := repo.UpdateQuestionStatus(ctx, tx, questionID, status); err != nil {
			return err
		}
		q.Status = status

		msg := fmt.Sprintf("Your question was %s by the speaker", status)
		if _, err := repo.CreateNotification(ctx, tx, q.UserID, notificationStatusChange, msg, q.TopicID, q.ID); err != nil {
			return err
		}
		out = q
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a question addressed to one of the speaker's own topics.
// A question addressed to another speaker yields ErrNotQuestionOwner.
func (s *QuestionService) Delete(ctx context.Context, speakerID, questionID string) error {
	tr := otel.Tracer("services/QuestionService")
	ctx, span := tr.Start(ctx, "Delete",
		trace.WithAttributes(attribute.String("question.id", questionID)),
	)
	defer span.End()

	q, err := repo.GetQuestion(ctx, s.DB, questionID)
	if err != nil {
		if isNotFound(err) {
			return ErrQuestionNotFound
		}
		return err
	}
	if q.SpeakerID != speakerID {
		return ErrNotQuestionOwner
	}
	return repo.DeleteQuestion(ctx, s.DB, questionID)
}

// scrubAnonymous blanks the submitter identity on anonymous questions for
// speaker-facing reads. The stored row is untouched.
func scrubAnonymous(q *domain.Question) {
	if q.IsAnonymous {
		q.Username = anonymousName
		q.UserEmail = ""
	}
}
