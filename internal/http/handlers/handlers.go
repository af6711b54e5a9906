// Handler wiring.
//
// This file declares the Handlers aggregate that groups every HTTP endpoint
// behind the service interfaces it consumes. Handlers are transport-thin:
// they validate input, call application services, and translate results into
// HTTP responses. Business rules live in internal/services.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/confqa/go-conference-backend/internal/http/middleware"
)

// Handlers groups HTTP endpoints for accounts, topics, questions, feedback,
// profiles, and notifications. It depends on abstract service interfaces to
// keep transport concerns separate from business logic.
type Handlers struct {
	accountSvc  AccountService
	topicSvc    TopicService
	questionSvc QuestionService
	feedbackSvc FeedbackService
	profileSvc  ProfileService
	notifSvc    NotificationService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(
	accountSvc AccountService,
	topicSvc TopicService,
	questionSvc QuestionService,
	feedbackSvc FeedbackService,
	profileSvc ProfileService,
	notifSvc NotificationService,
) *Handlers {
	return &Handlers{
		accountSvc:  accountSvc,
		topicSvc:    topicSvc,
		questionSvc: questionSvc,
		feedbackSvc: feedbackSvc,
		profileSvc:  profileSvc,
		notifSvc:    notifSvc,
	}
}

// userID extracts the authenticated user id from the Gin context (set by the
// auth middleware). Routes behind Authenticate always have it; the empty
// string only appears when a handler is exercised without the middleware.
func userID(c *gin.Context) string {
	uid, _ := middleware.UserID(c)
	return uid
}
