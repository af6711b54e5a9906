package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/confqa/go-conference-backend/internal/classifier"
	"github.com/confqa/go-conference-backend/internal/domain"
)

// ---------- test helpers ----------

func newQuestionDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:qsvc_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Topic{}, &domain.Question{}, &domain.Notification{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

// fakePredictor returns a canned verdict or error and counts calls.
type fakePredictor struct {
	pred  *classifier.Prediction
	err   error
	calls int
}

func (f *fakePredictor) Predict(ctx context.Context, question, topic string) (*classifier.Prediction, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.pred, nil
}

func seedListener(t *testing.T, db *gorm.DB, name, email string) *domain.User {
	t.Helper()
	u := &domain.User{ID: uuid.NewString(), Email: email, Role: domain.RoleListener, Name: name}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed listener: %v", err)
	}
	return u
}

func seedTopic(t *testing.T, db *gorm.DB, speakerID, name string) *domain.Topic {
	t.Helper()
	start := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	tp := &domain.Topic{
		ID:        uuid.NewString(),
		Name:      name,
		SpeakerID: speakerID,
		SpeakerInfo: domain.SpeakerInfo{
			SpeakerName:    "S",
			ConferenceTime: start,
			DurationMin:    60,
		},
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    domain.TopicUpcoming,
	}
	if err := db.Create(tp).Error; err != nil {
		t.Fatalf("seed topic: %v", err)
	}
	return tp
}

// ---------- Submit() ----------

func TestQuestionService_Submit_Validation(t *testing.T) {
	db := newQuestionDB(t)
	s := &QuestionService{DB: db, Classifier: &fakePredictor{}, MaxContentRunes: 5}
	ctx := context.Background()

	blank := QuestionInput{TopicID: "t1", SpeakerID: "sp1", Content: "   ", IsAnonymous: true}
	if _, err := s.Submit(ctx, "u1", blank); err != ErrEmptyQuestion {
		t.Fatalf("blank: expected ErrEmptyQuestion, got %v", err)
	}
	long := QuestionInput{TopicID: "t1", SpeakerID: "sp1", Content: "toolong", IsAnonymous: true}
	if _, err := s.Submit(ctx, "u1", long); err != ErrQuestionTooLong {
		t.Fatalf("long: expected ErrQuestionTooLong, got %v", err)
	}
}

func TestQuestionService_Submit_TopicSpeakerPairMustAgree(t *testing.T) {
	db := newQuestionDB(t)
	fp := &fakePredictor{pred: &classifier.Prediction{IsRelevant: true}}
	s := &QuestionService{DB: db, Classifier: fp}
	ctx := context.Background()

	u := seedListener(t, db, "Lia", "lia@x.com")
	tp := seedTopic(t, db, "real-speaker", "Topic")

	in := QuestionInput{TopicID: tp.ID, SpeakerID: "wrong-speaker", Content: "hello?", IsAnonymous: true}
	if _, err := s.Submit(ctx, u.ID, in); err != ErrTopicNotFound {
		t.Fatalf("mismatched pair: expected ErrTopicNotFound, got %v", err)
	}
	if fp.calls != 0 {
		t.Fatalf("classifier must not run for a missing topic")
	}
}

func TestQuestionService_Submit_ClassifierFailure_FailClosed(t *testing.T) {
	db := newQuestionDB(t)
	fp := &fakePredictor{err: &classifier.Error{Kind: classifier.KindTimeout}}
	s := &QuestionService{DB: db, Classifier: fp}
	ctx := context.Background()

	u := seedListener(t, db, "Lia", "lia@x.com")
	tp := seedTopic(t, db, "sp1", "Topic")

	in := QuestionInput{TopicID: tp.ID, SpeakerID: "sp1", Content: "a fine question", IsAnonymous: true}
	if _, err := s.Submit(ctx, u.ID, in); err != ErrClassifierUnavailable {
		t.Fatalf("expected ErrClassifierUnavailable, got %v", err)
	}
	// Fail-closed: nothing persisted.
	var n int64
	if err := db.Model(&domain.Question{}).Count(&n).Error; err != nil || n != 0 {
		t.Fatalf("no question row may exist: n=%d err=%v", n, err)
	}
}

func TestQuestionService_Submit_StoresVerdictAndIdentity(t *testing.T) {
	db := newQuestionDB(t)
	fp := &fakePredictor{pred: &classifier.Prediction{IsRelevant: true, Confidence: 93.5, Score: 0.935}}
	s := &QuestionService{DB: db, Classifier: fp}
	ctx := context.Background()

	u := seedListener(t, db, "Lia", "lia@x.com")
	tp := seedTopic(t, db, "sp1", "Topic")

	q, err := s.Submit(ctx, u.ID, QuestionInput{
		TopicID: tp.ID, SpeakerID: "sp1",
		Content: "  What about sharding?  ", IsAnonymous: true,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if q.Content != "What about sharding?" || q.Status != domain.StatusPending {
		t.Fatalf("unexpected question: %+v", q)
	}
	if !q.IsRelevant || q.Confidence != 93.5 || q.Score != 0.935 {
		t.Fatalf("verdict mismatch: %+v", q)
	}
	// Without body-supplied identity, the profile values are stored verbatim,
	// anonymous or not.
	if q.Username != "Lia" || q.UserEmail != "lia@x.com" || !q.IsAnonymous {
		t.Fatalf("identity should be stored as-is: %+v", q)
	}
	if fp.calls != 1 {
		t.Fatalf("classifier must be called exactly once, got %d", fp.calls)
	}
}

func TestQuestionService_Submit_BodyIdentityOverridesProfile(t *testing.T) {
	db := newQuestionDB(t)
	fp := &fakePredictor{pred: &classifier.Prediction{IsRelevant: true}}
	s := &QuestionService{DB: db, Classifier: fp}
	ctx := context.Background()

	u := seedListener(t, db, "Lia", "lia@x.com")
	tp := seedTopic(t, db, "sp1", "Topic")

	q, err := s.Submit(ctx, u.ID, QuestionInput{
		TopicID: tp.ID, SpeakerID: "sp1", Content: "who am I?",
		Username: " Lia L. ", UserEmail: "lia+conf@x.com",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if q.Username != "Lia L." || q.UserEmail != "lia+conf@x.com" {
		t.Fatalf("supplied identity not stored: %+v", q)
	}
}

// ---------- SpeakerQuestions() ----------

func TestQuestionService_SpeakerQuestions_GroupsPartitionsAndScrubs(t *testing.T) {
	db := newQuestionDB(t)
	s := &QuestionService{DB: db}
	ctx := context.Background()

	tpA := seedTopic(t, db, "sp1", "Topic A")
	tpB := seedTopic(t, db, "sp1", "Topic B")
	tpC := seedTopic(t, db, "sp1", "Topic C") // never gets a question
	base := time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC)

	rows := []domain.Question{
		{ID: "q1", UserID: "u1", TopicID: tpA.ID, SpeakerID: "sp1", Content: "rel-anon",
			Status: domain.StatusPending, IsAnonymous: true, Username: "Secret", UserEmail: "secret@x.com",
			IsRelevant: true, CreatedAt: base},
		{ID: "q2", UserID: "u2", TopicID: tpA.ID, SpeakerID: "sp1", Content: "junk",
			Status: domain.StatusPending, IsAnonymous: false, Username: "Open", UserEmail: "open@x.com",
			IsRelevant: false, CreatedAt: base.Add(time.Minute)},
		{ID: "q3", UserID: "u3", TopicID: tpB.ID, SpeakerID: "sp1", Content: "rel",
			Status: domain.StatusApproved, IsAnonymous: false, Username: "Open2", UserEmail: "open2@x.com",
			IsRelevant: true, CreatedAt: base.Add(2 * time.Minute)},
		{ID: "q4", UserID: "u4", TopicID: tpA.ID, SpeakerID: "sp1", Content: "rel-late",
			Status: domain.StatusPending, IsAnonymous: false, Username: "Late", UserEmail: "late@x.com",
			IsRelevant: true, CreatedAt: base.Add(3 * time.Minute)},
	}
	for _, q := range rows {
		if err := db.Create(&q).Error; err != nil {
			t.Fatalf("seed %s: %v", q.ID, err)
		}
	}

	dash, err := s.SpeakerQuestions(ctx, "sp1")
	if err != nil {
		t.Fatalf("SpeakerQuestions: %v", err)
	}
	if dash.TotalQuestions != 4 || dash.RelevantCount != 3 || dash.NonRelevantCount != 1 {
		t.Fatalf("unexpected counts: %+v", dash)
	}
	if len(dash.Topics) != 3 ||
		dash.Topics[0].TopicID != tpA.ID ||
		dash.Topics[1].TopicID != tpB.ID ||
		dash.Topics[2].TopicID != tpC.ID {
		t.Fatalf("unexpected grouping: %#v", dash.Topics)
	}
	if dash.Topics[0].TopicName != "Topic A" {
		t.Fatalf("topic name not resolved: %q", dash.Topics[0].TopicName)
	}

	// A topic without questions still appears, with empty partitions.
	groupC := dash.Topics[2]
	if groupC.Relevant == nil || groupC.NonRelevant == nil ||
		len(groupC.Relevant) != 0 || len(groupC.NonRelevant) != 0 {
		t.Fatalf("empty topic misrepresented: %+v", groupC)
	}

	groupA := dash.Topics[0]
	if len(groupA.Relevant) != 2 || len(groupA.NonRelevant) != 1 {
		t.Fatalf("partition wrong: %+v", groupA)
	}
	// Partitions run newest first.
	if groupA.Relevant[0].ID != "q4" || groupA.Relevant[1].ID != "q1" {
		t.Fatalf("relevant partition out of order: %#v", groupA.Relevant)
	}
	// Anonymous submitter is scrubbed in the read model.
	anon := groupA.Relevant[1]
	if anon.Username != "Anonymous" || anon.UserEmail != "" {
		t.Fatalf("anonymous identity leaked: %+v", anon)
	}
	// Non-anonymous identity is kept.
	if groupA.NonRelevant[0].Username != "Open" {
		t.Fatalf("named identity lost: %+v", groupA.NonRelevant[0])
	}

	// The stored row is untouched by the scrub.
	var stored domain.Question
	if err := db.First(&stored, "id = ?", "q1").Error; err != nil {
		t.Fatalf("load stored: %v", err)
	}
	if stored.Username != "Secret" || stored.UserEmail != "secret@x.com" {
		t.Fatalf("storage must keep the real identity: %+v", stored)
	}
}

// ---------- UpdateStatus() ----------

func TestQuestionService_UpdateStatus_NotifiesSubmitter(t *testing.T) {
	db := newQuestionDB(t)
	s := &QuestionService{DB: db}
	ctx := context.Background()

	tp := seedTopic(t, db, "sp1", "Topic")
	q := domain.Question{ID: "q1", UserID: "submitter", TopicID: tp.ID, SpeakerID: "sp1",
		Content: "c", Status: domain.StatusPending}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := s.UpdateStatus(ctx, "sp1", "q1", "weird"); err != ErrInvalidStatus {
		t.Fatalf("bad status: expected ErrInvalidStatus, got %v", err)
	}
	if _, err := s.UpdateStatus(ctx, "sp1", "missing", domain.StatusApproved); err != ErrQuestionNotFound {
		t.Fatalf("missing: expected ErrQuestionNotFound, got %v", err)
	}
	if _, err := s.UpdateStatus(ctx, "other-speaker", "q1", domain.StatusApproved); err != ErrNotQuestionOwner {
		t.Fatalf("foreign: expected ErrNotQuestionOwner, got %v", err)
	}

	got, err := s.UpdateStatus(ctx, "sp1", "q1", domain.StatusApproved)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if got.Status != domain.StatusApproved {
		t.Fatalf("status not applied: %+v", got)
	}

	var notes []domain.Notification
	if err := db.Where("user_id = ?", "submitter").Find(&notes).Error; err != nil {
		t.Fatalf("load notifications: %v", err)
	}
	if len(notes) != 1 || notes[0].QuestionID != "q1" || notes[0].TopicID != tp.ID {
		t.Fatalf("expected one notification for the submitter: %#v", notes)
	}
	if !strings.Contains(notes[0].Message, "approved") {
		t.Fatalf("message should carry the new status: %q", notes[0].Message)
	}
}

// ---------- Delete() ----------

func TestQuestionService_Delete_OwnershipAndSuccess(t *testing.T) {
	db := newQuestionDB(t)
	s := &QuestionService{DB: db}
	ctx := context.Background()

	q := domain.Question{ID: "q1", UserID: "u1", TopicID: "t1", SpeakerID: "sp1",
		Content: "c", Status: domain.StatusPending}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := s.Delete(ctx, "other", "q1"); err != ErrNotQuestionOwner {
		t.Fatalf("foreign: expected ErrNotQuestionOwner, got %v", err)
	}
	if err := s.Delete(ctx, "sp1", "missing"); err != ErrQuestionNotFound {
		t.Fatalf("missing: expected ErrQuestionNotFound, got %v", err)
	}
	if err := s.Delete(ctx, "sp1", "q1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, "sp1", "q1"); err != ErrQuestionNotFound {
		t.Fatalf("second delete: expected ErrQuestionNotFound, got %v", err)
	}
}
