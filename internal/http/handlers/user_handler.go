// User profile HTTP handlers.
//
// This file exposes REST endpoints for the caller's own profile:
//   - GET  /users/profile  (read)
//   - PUT  /users/profile  (update display fields)
//   - POST /users/avatar   (multipart image upload)
//
// Avatar uploads are size- and format-restricted; the stored file is served
// back under /uploads/avatars/.
package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/confqa/go-conference-backend/internal/domain"
	"github.com/confqa/go-conference-backend/internal/services"
)

// ProfileService defines profile and avatar operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ProfileService interface {
	// Get returns the caller's user record.
	Get(ctx context.Context, userID string) (*domain.User, error)
	// Update overwrites the caller's display fields.
	Update(ctx context.Context, userID string, upd services.ProfileUpdate) (*domain.User, error)
	// SaveAvatar validates, stores, and records an uploaded avatar.
	SaveAvatar(ctx context.Context, userID, filename, contentType string, size int64, r io.Reader) (string, error)
}

//
// DTOs
//

// UpdateProfileRequest is the JSON payload for updating display fields.
type UpdateProfileRequest struct {
	Name         string `json:"name"         example:"Ada Lovelace"`
	Bio          string `json:"bio"          example:"Distributed systems, data tooling."`
	Organization string `json:"organization" example:"Analytical Engines Ltd"`
}

// AvatarResponse returns the relative URL of a freshly stored avatar.
type AvatarResponse struct {
	Avatar string `json:"avatar" example:"/uploads/avatars/4f9f3f2a.png"`
}

//
// Handlers
//

// GetProfile godoc
// @ID          getProfile
// @Summary     Read the caller's profile
// @Tags        Users
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {object} domain.User
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     404  {object} handlers.ErrorResponse "User not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /users/profile [get]
func (h *Handlers) GetProfile(c *gin.Context) {
	u, err := h.profileSvc.Get(c.Request.Context(), userID(c))
	if err != nil {
		switch err {
		case services.ErrUserNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, u)
}

// UpdateProfile godoc
// @ID          updateProfile
// @Summary     Update the caller's profile
// @Description Overwrites the display fields (name, bio, organization). Avatars
// @Description already snapshotted onto existing topics are not refreshed.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.UpdateProfileRequest  true  "Profile fields"
//
// @Success     200  {object} domain.User
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /users/profile [put]
func (h *Handlers) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	u, err := h.profileSvc.Update(c.Request.Context(), userID(c), services.ProfileUpdate{
		Name:         req.Name,
		Bio:          req.Bio,
		Organization: req.Organization,
	})
	if err != nil {
		switch err {
		case services.ErrUserNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, u)
}

// UploadAvatar godoc
// @ID          uploadAvatar
// @Summary     Upload an avatar
// @Description Accepts a multipart form with an "avatar" file field. Images are
// @Description limited to 5 MiB and jpeg/jpg/png/gif formats; non-image payloads
// @Description are rejected regardless of filename.
// @Tags        Users
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
//
// @Param       avatar  formData  file  true  "Avatar image"
//
// @Success     200  {object} handlers.AvatarResponse
// @Failure     400  {object} handlers.ErrorResponse "Missing file, wrong type, or too large"
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /users/avatar [post]
func (h *Handlers) UploadAvatar(c *gin.Context) {
	fh, err := c.FormFile("avatar")
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "avatar file required")
		return
	}

	f, err := fh.Open()
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeUploadFailed, err.Error())
		return
	}
	defer f.Close()

	rel, err := h.profileSvc.SaveAvatar(c.Request.Context(), userID(c),
		fh.Filename, fh.Header.Get("Content-Type"), fh.Size, f)
	if err != nil {
		switch err {
		case services.ErrAvatarTooLarge, services.ErrAvatarType:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case services.ErrUserNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeUploadFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, AvatarResponse{Avatar: rel})
}
