package handlers

import (
	"context"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/confqa/go-conference-backend/internal/auth"
	"github.com/confqa/go-conference-backend/internal/classifier"
	"github.com/confqa/go-conference-backend/internal/domain"
	"github.com/confqa/go-conference-backend/internal/services"
)

// ---------- test plumbing ----------

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.User{}, &domain.Topic{}, &domain.Question{},
		&domain.Feedback{}, &domain.Notification{}, &domain.Submission{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// stubPredictor satisfies services.Predictor with a canned verdict or error.
type stubPredictor struct {
	pred  *classifier.Prediction
	err   error
	calls int
}

func (s *stubPredictor) Predict(ctx context.Context, question, topic string) (*classifier.Prediction, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.pred, nil
}

// newTestHandlers wires real services over db so handler tests cover the full
// stack below the transport.
func newTestHandlers(t *testing.T, db *gorm.DB, pred services.Predictor) *Handlers {
	t.Helper()
	tokens := auth.NewJWTManager("0123456789abcdef0123456789abcdef", "confqa-test", time.Hour)
	return New(
		&services.AccountService{DB: db, Tokens: tokens},
		&services.TopicService{DB: db},
		&services.QuestionService{DB: db, Classifier: pred, MaxContentRunes: 2000},
		&services.FeedbackService{DB: db},
		&services.ProfileService{DB: db, UploadDir: t.TempDir(), MaxAvatarBytes: 1 << 20},
		&services.NotificationService{DB: db},
	)
}

// asUser fakes the auth middleware by stashing the identity keys it would set.
func asUser(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", uid)
		c.Next()
	}
}

// seedUser inserts a user row directly.
func seedUser(t *testing.T, db *gorm.DB, role, name string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:    uuid.NewString(),
		Email: fmt.Sprintf("%s@conf.test", uuid.NewString()),
		Role:  role,
		Name:  name,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// seedTopicRow inserts a topic row directly.
func seedTopicRow(t *testing.T, db *gorm.DB, speakerID, name string) *domain.Topic {
	t.Helper()
	start := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	tp := &domain.Topic{
		ID:        uuid.NewString(),
		Name:      name,
		SpeakerID: speakerID,
		SpeakerInfo: domain.SpeakerInfo{
			SpeakerName: "S", ConferenceTime: start, DurationMin: 60,
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
