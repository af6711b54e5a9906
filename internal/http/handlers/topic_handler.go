// Topic HTTP handlers.
//
// This file exposes REST endpoints for speaker topics:
//   - POST   /topics       (create; speaker only)
//   - GET    /topics       (schedule listing; ETag support)
//   - GET    /topics/my    (speaker's own topics)
//   - GET    /topics/{id}  (fetch one)
//   - PUT    /topics/{id}  (allow-listed update; owner only)
//   - DELETE /topics/{id}  (cascade delete; owner only)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses (including conditional responses).
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
	"github.com/confqa/go-conference-backend/internal/repo"
	"github.com/confqa/go-conference-backend/internal/services"
)

// TopicService defines topic lifecycle operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type TopicService interface {
	// Create inserts a topic owned by speakerID, snapshotting the speaker's
	// avatar.
	Create(ctx context.Context, speakerID string, in services.TopicInput) (*domain.Topic, error)
	// List returns the full schedule ordered by start time.
	List(ctx context.Context) ([]domain.Topic, error)
	// ListOwn returns only the topics owned by speakerID.
	ListOwn(ctx context.Context, speakerID string) ([]domain.Topic, error)
	// Get fetches a single topic.
	Get(ctx context.Context, id string) (*domain.Topic, error)
	// Update applies allow-listed field changes to an owned topic.
	Update(ctx context.Context, speakerID, topicID string, upd services.TopicUpdate) (*domain.Topic, error)
	// Delete removes an owned topic with its questions and feedback.
	Delete(ctx context.Context, speakerID, topicID string) (*services.DeleteResult, error)
}

//
// DTOs
//

// SpeakerInfoRequest is the nested speaker block of a topic creation payload.
type SpeakerInfoRequest struct {
	// SpeakerName optionally overrides the profile display name on the topic.
	SpeakerName    string    `json:"speakerName"`
	ConferenceTime time.Time `json:"conferenceTime" binding:"required"`
	// Duration is the session length in minutes; defaults to 60.
	Duration int `json:"duration" example:"45"`
}

// CreateTopicRequest is the JSON payload for creating a topic.
type CreateTopicRequest struct {
	Name        string             `json:"name" binding:"required,min=1,max=255" example:"Observability on a Budget"`
	SpeakerInfo SpeakerInfoRequest `json:"speakerInfo" binding:"required"`
	StartTime   time.Time          `json:"startTime" binding:"required"`
	EndTime     time.Time          `json:"endTime" binding:"required"`
	Status      string             `json:"status" binding:"omitempty,oneof=upcoming active completed"`
}

// UpdateSpeakerInfoRequest is the nested speaker block of a topic update.
// Absent fields are left unchanged.
type UpdateSpeakerInfoRequest struct {
	SpeakerName    *string    `json:"speakerName"`
	ConferenceTime *time.Time `json:"conferenceTime"`
	Duration       *int       `json:"duration"`
}

// UpdateTopicRequest carries the allow-listed mutable topic fields. Absent
// fields are left unchanged.
type UpdateTopicRequest struct {
	Name        *string                   `json:"name"`
	SpeakerInfo *UpdateSpeakerInfoRequest `json:"speakerInfo"`
	StartTime   *time.Time                `json:"startTime"`
	EndTime     *time.Time                `json:"endTime"`
	Status      *string                   `json:"status"`
}

// ListTopicsResponse wraps the topic schedule.
type ListTopicsResponse struct {
	Topics []domain.Topic `json:"topics"`
}

// DeleteTopicResponse reports what a cascade deletion removed.
type DeleteTopicResponse struct {
	DeletedQuestions int64 `json:"deletedQuestions"`
	DeletedFeedback  int64 `json:"deletedFeedback"`
}

//
// Handlers
//

// CreateTopic godoc
// @ID          createTopic
// @Summary     Create a topic
// @Description Creates a topic owned by the authenticated speaker. The speaker's
// @Description current avatar is snapshotted onto the topic.
// @Tags        Topics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.CreateTopicRequest  true  "Topic payload"
//
// @Success     201  {object}  domain.Topic
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request or duplicate name"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     403  {object}  handlers.ErrorResponse  "Not a speaker"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /topics [post]
func (h *Handlers) CreateTopic(c *gin.Context) {
	var req CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name, speakerInfo.conferenceTime, startTime, and endTime required")
		return
	}

	t, err := h.topicSvc.Create(c.Request.Context(), userID(c), services.TopicInput{
		Name:           req.Name,
		SpeakerName:    req.SpeakerInfo.SpeakerName,
		ConferenceTime: req.SpeakerInfo.ConferenceTime,
		DurationMin:    req.SpeakerInfo.Duration,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Status:         req.Status,
	})
	if err != nil {
		switch err {
		case services.ErrDuplicateTopic:
			fail(c, http.StatusBadRequest, ErrCodeConflict, "topic name already in use")
		case services.ErrInvalidTopic:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid topic fields")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, t)
}

// ListTopics godoc
// @ID          listTopics
// @Summary     List the topic schedule
// @Description Returns every topic ordered by start time. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Topics
// @Produce     json
// @Security    BearerAuth
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"
//
// @Success     200  {object} handlers.ListTopicsResponse
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /topics [get]
func (h *Handlers) ListTopics(c *gin.Context) {
	ctx := c.Request.Context()

	// ETag pre-check (best effort).
	if db := h.topicDB(); db != nil {
		count, maxTS, err := repo.TopicsStats(ctx, db, "")
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"topics:%d:%d"`, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, err := h.topicSvc.List(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListTopicsResponse{Topics: items})
}

// ListMyTopics godoc
// @ID          listMyTopics
// @Summary     List the speaker's own topics
// @Tags        Topics
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {object} handlers.ListTopicsResponse
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     403  {object} handlers.ErrorResponse "Not a speaker"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /topics/my [get]
func (h *Handlers) ListMyTopics(c *gin.Context) {
	items, err := h.topicSvc.ListOwn(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListTopicsResponse{Topics: items})
}

// GetTopic godoc
// @ID          getTopic
// @Summary     Fetch one topic
// @Tags        Topics
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Topic ID (UUID)"  format(uuid)
//
// @Success     200  {object} domain.Topic
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Topic not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /topics/{id} [get]
func (h *Handlers) GetTopic(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "topic id must be a UUID")
		return
	}

	t, err := h.topicSvc.Get(c.Request.Context(), id)
	if err != nil {
		switch err {
		case services.ErrTopicNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "topic not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, t)
}

// UpdateTopic godoc
// @ID          updateTopic
// @Summary     Update a topic
// @Description Applies allow-listed field changes to a topic owned by the
// @Description authenticated speaker. Topics owned by other speakers report 404.
// @Tags        Topics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       id    path  string                        true  "Topic ID (UUID)"  format(uuid)
// @Param       body  body  handlers.UpdateTopicRequest   true  "Fields to change"
//
// @Success     200  {object} domain.Topic
// @Failure     400  {object} handlers.ErrorResponse "Bad request or duplicate name"
// @Failure     404  {object} handlers.ErrorResponse "Topic not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /topics/{id} [put]
func (h *Handlers) UpdateTopic(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "topic id must be a UUID")
		return
	}

	var req UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	upd := services.TopicUpdate{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    req.Status,
	}
	if req.SpeakerInfo != nil {
		upd.SpeakerName = req.SpeakerInfo.SpeakerName
		upd.ConferenceTime = req.SpeakerInfo.ConferenceTime
		upd.DurationMin = req.SpeakerInfo.Duration
	}

	t, err := h.topicSvc.Update(c.Request.Context(), userID(c), id, upd)
	if err != nil {
		switch err {
		case services.ErrTopicNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "topic not found")
		case services.ErrDuplicateTopic:
			fail(c, http.StatusBadRequest, ErrCodeConflict, "topic name already in use")
		case services.ErrInvalidTopic:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid topic fields")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, t)
}

// DeleteTopic godoc
// @ID          deleteTopic
// @Summary     Delete a topic
// @Description Deletes a topic owned by the authenticated speaker together with
// @Description every question and feedback row referencing it, and reports the counts.
// @Tags        Topics
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Topic ID (UUID)"  format(uuid)
//
// @Success     200  {object} handlers.DeleteTopicResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Topic not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /topics/{id} [delete]
func (h *Handlers) DeleteTopic(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "topic id must be a UUID")
		return
	}

	res, err := h.topicSvc.Delete(c.Request.Context(), userID(c), id)
	if err != nil {
		switch err {
		case services.ErrTopicNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "topic not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, DeleteTopicResponse{
		DeletedQuestions: res.DeletedQuestions,
		DeletedFeedback:  res.DeletedFeedback,
	})
}

// topicDB exposes the concrete service's DB handle for conditional-response
// stats, when available.
func (h *Handlers) topicDB() *gorm.DB {
	if svc, ok := h.topicSvc.(*services.TopicService); ok {
		return svc.DB
	}
	return nil
}
