// Feedback HTTP handlers.
//
// This file exposes REST endpoints for topic feedback:
//   - POST /feedback                  (rate a topic; one rating per user per topic)
//   - GET  /feedback/topic/{topicId}  (all feedback on a topic)
//   - GET  /feedback/check/{topicId}  (has the caller rated this topic yet)
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/confqa/go-conference-backend/internal/domain"
	"github.com/confqa/go-conference-backend/internal/services"
)

// FeedbackService defines operations to capture and read topic feedback.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type FeedbackService interface {
	// Submit records a rating+comment for topicID by userID.
	Submit(ctx context.Context, userID, topicID string, rating int, comment string) (*domain.Feedback, error)
	// ListForTopic returns all feedback on a topic, newest first.
	ListForTopic(ctx context.Context, topicID string) ([]domain.Feedback, error)
	// Check reports whether userID already rated topicID.
	Check(ctx context.Context, userID, topicID string) (bool, *domain.Feedback, error)
}

//
// DTOs
//

// SubmitFeedbackRequest is the JSON payload for rating a topic.
type SubmitFeedbackRequest struct {
	TopicID string `json:"topicId" binding:"required,uuid" format:"uuid"`
	// Rating is a star count from 1 to 5.
	Rating  int    `json:"rating"  binding:"required,min=1,max=5" example:"4"`
	Comment string `json:"comment" binding:"required,min=1" example:"Great pacing, would have liked more demos."`
}

// ListFeedbackResponse wraps a topic's feedback.
type ListFeedbackResponse struct {
	Feedback []domain.Feedback `json:"feedback"`
}

// CheckFeedbackResponse reports whether the caller has rated a topic.
type CheckFeedbackResponse struct {
	HasSubmitted bool             `json:"hasSubmitted"`
	Feedback     *domain.Feedback `json:"feedback,omitempty"`
}

//
// Handlers
//

// SubmitFeedback godoc
// @ID          submitFeedback
// @Summary     Rate a topic
// @Description Records a 1–5 star rating with a comment. A user may rate each
// @Description topic at most once; a second attempt reports a conflict.
// @Tags        Feedback
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.SubmitFeedbackRequest  true  "Feedback payload"
//
// @Success     201  {object}  domain.Feedback
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request or already rated"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse  "Topic not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /feedback [post]
func (h *Handlers) SubmitFeedback(c *gin.Context) {
	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "topicId, rating (1-5), and comment required")
		return
	}

	fb, err := h.feedbackSvc.Submit(c.Request.Context(), userID(c), req.TopicID, req.Rating, req.Comment)
	if err != nil {
		switch err {
		case services.ErrTopicNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "topic not found")
		case services.ErrInvalidRating, services.ErrEmptyComment:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case services.ErrDuplicateFeedback:
			fail(c, http.StatusBadRequest, ErrCodeConflict, "feedback already exists for this topic")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, fb)
}

// ListTopicFeedback godoc
// @ID          listTopicFeedback
// @Summary     List feedback on a topic
// @Tags        Feedback
// @Produce     json
// @Security    BearerAuth
//
// @Param       topicId  path  string  true  "Topic ID (UUID)"  format(uuid)
//
// @Success     200  {object} handlers.ListFeedbackResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Topic not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /feedback/topic/{topicId} [get]
func (h *Handlers) ListTopicFeedback(c *gin.Context) {
	topicID := c.Param("topicId")
	if _, err := uuid.Parse(topicID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "topic id must be a UUID")
		return
	}

	items, err := h.feedbackSvc.ListForTopic(c.Request.Context(), topicID)
	if err != nil {
		switch err {
		case services.ErrTopicNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "topic not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, ListFeedbackResponse{Feedback: items})
}

// CheckFeedback godoc
// @ID          checkFeedback
// @Summary     Check whether the caller rated a topic
// @Tags        Feedback
// @Produce     json
// @Security    BearerAuth
//
// @Param       topicId  path  string  true  "Topic ID (UUID)"  format(uuid)
//
// @Success     200  {object} handlers.CheckFeedbackResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /feedback/check/{topicId} [get]
func (h *Handlers) CheckFeedback(c *gin.Context) {
	topicID := c.Param("topicId")
	if _, err := uuid.Parse(topicID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "topic id must be a UUID")
		return
	}

	has, fb, err := h.feedbackSvc.Check(c.Request.Context(), userID(c), topicID)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, CheckFeedbackResponse{HasSubmitted: has, Feedback: fb})
}
