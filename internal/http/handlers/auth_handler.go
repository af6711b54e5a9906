// Authentication HTTP handlers.
//
// This file exposes REST endpoints for account registration and login:
//   - POST /auth/register   (create an account for an (email, role) pair)
//   - POST /auth/login      (authenticate and mint a JWT)
//
// The same email may hold one listener and one speaker account; the role in
// the payload selects which one is addressed.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/confqa/go-conference-backend/internal/services"
)

// AccountService defines the registration and login operations consumed by
// HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type AccountService interface {
	// Register creates an account under the (email, role) pair.
	Register(ctx context.Context, email, password, role string) (*services.AuthResult, error)
	// Login authenticates the (email, role) pair.
	Login(ctx context.Context, email, password, role string) (*services.AuthResult, error)
}

//
// DTOs
//

// RegisterRequest is the JSON payload for creating an account.
type RegisterRequest struct {
	Email    string `json:"email"    binding:"required,email"     example:"ada@example.com"`
	Password string `json:"password" binding:"required,min=8"     example:"correct horse battery"`
	// Role selects the account type: listener or speaker.
	Role string `json:"role" binding:"required,oneof=listener speaker" example:"listener"`
}

// LoginRequest is the JSON payload for authenticating.
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email" example:"ada@example.com"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"     binding:"required,oneof=listener speaker" example:"listener"`
}

// AuthResponse is the JSON envelope for a successful register or login.
type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// AuthUser is the public view of the authenticated account.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name,omitempty"`
}

//
// Handlers
//

// Register godoc
// @ID          register
// @Summary     Register an account
// @Description Creates an account for the (email, role) pair and returns a JWT.
// @Description The same email may register once as listener and once as speaker.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RegisterRequest  true  "Registration payload"
//
// @Success     201  {object}  handlers.AuthResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request or account exists"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/register [post]
func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "email, password (min 8 chars), and role required")
		return
	}

	res, err := h.accountSvc.Register(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		switch err {
		case services.ErrUserExists:
			fail(c, http.StatusBadRequest, ErrCodeConflict, "account already exists for this email and role")
		case services.ErrInvalidRole, services.ErrInvalidCredentials:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}

	ok(c, http.StatusCreated, AuthResponse{
		Token: res.Token,
		User: AuthUser{
			ID:    res.User.ID,
			Email: res.User.Email,
			Role:  res.User.Role,
			Name:  res.User.Name,
		},
	})
}

// Login godoc
// @ID          login
// @Summary     Log in
// @Description Authenticates the (email, role) pair and returns a JWT valid for 24 hours.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LoginRequest  true  "Login payload"
//
// @Success     200  {object}  handlers.AuthResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid credentials"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "email, password, and role required")
		return
	}

	res, err := h.accountSvc.Login(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		switch err {
		case services.ErrInvalidCredentials:
			fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid credentials")
		case services.ErrInvalidRole:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, AuthResponse{
		Token: res.Token,
		User: AuthUser{
			ID:    res.User.ID,
			Email: res.User.Email,
			Role:  res.User.Role,
			Name:  res.User.Name,
		},
	})
}
