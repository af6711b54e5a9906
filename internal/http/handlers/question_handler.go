// Question HTTP handlers.
//
// This file exposes REST endpoints for listener questions:
//   - POST   /questions                   (submit; classification happens inline)
//   - GET    /questions/my-questions      (listener's own submissions)
//   - GET    /questions/speaker-questions (speaker dashboard; ETag support)
//   - PUT    /questions/{id}/status       (triage; owner only)
//   - DELETE /questions/{id}              (owner only)
//
// Idempotency:
// If the client supplies an Idempotency-Key header and a previous successful
// submission exists for (user, key), the handler returns that recorded
// question without calling the classifier again and sets
// `Idempotency-Replayed: true`.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/confqa/go-conference-backend/internal/domain"
	"github.com/confqa/go-conference-backend/internal/http/middleware"
	"github.com/confqa/go-conference-backend/internal/repo"
	"github.com/confqa/go-conference-backend/internal/services"
)

// QuestionService defines question lifecycle operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type QuestionService interface {
	// Submit classifies and persists a new question.
	Submit(ctx context.Context, userID string, in services.QuestionInput) (*domain.Question, error)
	// MyQuestions returns the caller's own submissions, newest first.
	MyQuestions(ctx context.Context, userID string) ([]domain.Question, error)
	// SpeakerQuestions returns the grouped relevance-partitioned dashboard.
	SpeakerQuestions(ctx context.Context, speakerID string) (*services.SpeakerDashboard, error)
	// UpdateStatus triages a question and notifies the submitter.
	UpdateStatus(ctx context.Context, speakerID, questionID, status string) (*domain.Question, error)
	// Delete removes a question addressed to one of the speaker's topics.
	Delete(ctx context.Context, speakerID, questionID string) error
}

//
// DTOs
//

// SubmitQuestionRequest is the JSON payload for submitting a question. The
// client supplies both the topic and the speaker it believes owns it; the
// pair must agree or the topic is treated as missing.
type SubmitQuestionRequest struct {
	TopicID   string `json:"topicId"   binding:"required,uuid" format:"uuid"`
	SpeakerID string `json:"speakerId" binding:"required,uuid" format:"uuid"`
	Content   string `json:"content"   binding:"required,min=1" example:"How do you handle schema migrations with zero downtime?"`
	// IsAnonymous defaults to true when omitted.
	IsAnonymous *bool `json:"isAnonymous"`
	// Username and UserEmail override the profile values on the stored
	// question; blank means "use the profile".
	Username  string `json:"username"  example:"Ada L."`
	UserEmail string `json:"userEmail" binding:"omitempty,email" example:"ada@example.com"`
}

// SubmitQuestionResponse is the JSON envelope for a newly created question.
type SubmitQuestionResponse struct {
	Question *domain.Question `json:"question"`
}

// ListQuestionsResponse wraps a flat question listing.
type ListQuestionsResponse struct {
	Questions []domain.Question `json:"questions"`
}

// UpdateQuestionStatusRequest is the JSON payload for triaging a question.
type UpdateQuestionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected" example:"approved"`
}

//
// Handlers
//

// SubmitQuestion godoc
// @ID          submitQuestion
// @Summary     Submit a question
// @Description Submits a question to a topic. The question is scored by the external
// @Description relevance classifier before it is stored; when the classifier is
// @Description unavailable the submission fails and nothing is stored.
// @Description Supports idempotency via the Idempotency-Key header (same key → same result).
// @Tags        Questions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries (UUID recommended)"
// @Param       body             body    handlers.SubmitQuestionRequest  true  "Question payload"
//
// @Success     201  {object}  handlers.SubmitQuestionResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse  "Topic not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Classifier or internal error"
// @Router      /questions [post]
func (h *Handlers) SubmitQuestion(c *gin.Context) {
	ctx := c.Request.Context()

	var req SubmitQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "topicId, speakerId, and content required")
		return
	}
	isAnonymous := true
	if req.IsAnonymous != nil {
		isAnonymous = *req.IsAnonymous
	}

	currentUser := userID(c)

	// Idempotency (replay path) – read validated key if present.
	idemKey, _ := middleware.GetIdempotencyKey(c)
	if idemKey != "" {
		if db := h.questionDB(); db != nil {
			if rec, err := repo.GetSubmission(ctx, db, currentUser, idemKey, time.Now().UTC()); err == nil && rec != nil {
				if prev, err2 := repo.GetQuestion(ctx, db, rec.QuestionID); err2 == nil {
					c.Header("Idempotency-Replayed", "true")
					ok(c, http.StatusCreated, SubmitQuestionResponse{Question: prev})
					return
				}
			}
		}
	}

	q, err := h.questionSvc.Submit(ctx, currentUser, services.QuestionInput{
		TopicID:     req.TopicID,
		SpeakerID:   req.SpeakerID,
		Content:     req.Content,
		IsAnonymous: isAnonymous,
		Username:    req.Username,
		UserEmail:   req.UserEmail,
	})
	if err != nil {
		switch err {
		case services.ErrTopicNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "topic not found")
		case services.ErrEmptyQuestion, services.ErrQuestionTooLong:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case services.ErrClassifierUnavailable:
			fail(c, http.StatusInternalServerError, ErrCodeClassifierFailed, "question could not be classified; try again later")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}

	// Idempotency (store path) – best effort.
	if idemKey != "" {
		if db := h.questionDB(); db != nil {
			ttl := 24 * time.Hour
			_, _ = repo.CreateSubmission(ctx, db, currentUser, idemKey, q.TopicID, q.ID, http.StatusCreated, ttl)
		}
	}

	ok(c, http.StatusCreated, SubmitQuestionResponse{Question: q})
}

// MyQuestions godoc
// @ID          myQuestions
// @Summary     List the caller's own questions
// @Description Returns every question the caller submitted, newest first, with
// @Description relevance verdicts and triage status.
// @Tags        Questions
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {object} handlers.ListQuestionsResponse
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /questions/my-questions [get]
func (h *Handlers) MyQuestions(c *gin.Context) {
	items, err := h.questionSvc.MyQuestions(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListQuestionsResponse{Questions: items})
}

// SpeakerQuestions godoc
// @ID          speakerQuestions
// @Summary     Speaker question dashboard
// @Description Returns the speaker's inbound questions grouped by topic and
// @Description partitioned into relevant / non-relevant. Anonymous submitters are
// @Description reported as "Anonymous". Supports weak ETag via If-None-Match.
// @Tags        Questions
// @Produce     json
// @Security    BearerAuth
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"
//
// @Success     200  {object} services.SpeakerDashboard
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     403  {object} handlers.ErrorResponse "Not a speaker"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /questions/speaker-questions [get]
func (h *Handlers) SpeakerQuestions(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	// ETag pre-check (best effort).
	if db := h.questionDB(); db != nil {
		count, maxTS, err := repo.QuestionsStats(ctx, db, uid)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"questions:%s:%d:%d"`, uid, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	dash, err := h.questionSvc.SpeakerQuestions(ctx, uid)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, dash)
}

// UpdateQuestionStatus godoc
// @ID          updateQuestionStatus
// @Summary     Triage a question
// @Description Sets the status of a question addressed to one of the speaker's
// @Description topics and notifies the submitter.
// @Tags        Questions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       id    path  string                                true  "Question ID (UUID)"  format(uuid)
// @Param       body  body  handlers.UpdateQuestionStatusRequest  true  "New status"
//
// @Success     200  {object} domain.Question
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     403  {object} handlers.ErrorResponse "Question belongs to another speaker"
// @Failure     404  {object} handlers.ErrorResponse "Question not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /questions/{id}/status [put]
func (h *Handlers) UpdateQuestionStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "question id must be a UUID")
		return
	}

	var req UpdateQuestionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "status must be pending, approved, or rejected")
		return
	}

	q, err := h.questionSvc.UpdateStatus(c.Request.Context(), userID(c), id, req.Status)
	if err != nil {
		switch err {
		case services.ErrQuestionNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "question not found")
		case services.ErrNotQuestionOwner:
			fail(c, http.StatusForbidden, ErrCodeForbidden, "question belongs to another speaker")
		case services.ErrInvalidStatus:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, q)
}

// DeleteQuestion godoc
// @ID          deleteQuestion
// @Summary     Delete a question
// @Description Deletes a question addressed to one of the speaker's own topics.
// @Tags        Questions
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Question ID (UUID)"  format(uuid)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     403  {object} handlers.ErrorResponse "Question belongs to another speaker"
// @Failure     404  {object} handlers.ErrorResponse "Question not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /questions/{id} [delete]
func (h *Handlers) DeleteQuestion(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "question id must be a UUID")
		return
	}

	if err := h.questionSvc.Delete(c.Request.Context(), userID(c), id); err != nil {
		switch err {
		case services.ErrQuestionNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "question not found")
		case services.ErrNotQuestionOwner:
			fail(c, http.StatusForbidden, ErrCodeForbidden, "question belongs to another speaker")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	noContent(c)
}

// questionDB exposes the concrete service's DB handle for idempotency and
// conditional-response stats, when available.
func (h *Handlers) questionDB() *gorm.DB {
	if svc, ok := h.questionSvc.(*services.QuestionService); ok {
		return svc.DB
	}
	return nil
}
