// Package services – AccountService
//
// This file implements AccountService, which owns registration and login for
// the dual-role account model: a user record exists per (email, role) pair,
// so the same email may hold one listener and one speaker account. Passwords
// are bcrypt-hashed before they reach the repository, and successful logins
// mint a signed JWT carrying the user id and role.
//
// Service-level errors (ErrUserExists, ErrInvalidCredentials, ErrInvalidRole)
// are returned for predictable cases so handlers can map them to HTTP results
// consistently.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/confqa/go-conference-backend/internal/auth"
	"github.com/confqa/go-conference-backend/internal/domain"
	"github.com/confqa/go-conference-backend/internal/repo"
)

// AccountService implements the use-cases around registration and login.
type AccountService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Tokens mints and verifies JWTs for authenticated sessions.
	Tokens *auth.JWTManager
}

// AuthResult is the outcome of a successful registration or login.
type AuthResult struct {
	Token string
	User  *domain.User
}

// Register creates a new account under the (email, role) pair and returns a
// fresh token for it. The same email may register once per role; a second
// registration under the same pair yields ErrUserExists.
func (s *AccountService) Register(ctx context.Context, email, password, role string) (*AuthResult, error) {
	tr := otel.Tracer("services/AccountService")
	ctx, span := tr.Start(ctx, "Register",
		trace.WithAttributes(attribute.String("user.role", role)),
	)
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidCredentials
	}
	if password == "" {
		return nil, ErrInvalidCredentials
	}
	if role != domain.RoleListener && role != domain.RoleSpeaker {
		return nil, ErrInvalidRole
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u, err := repo.CreateUser(ctx, s.DB, email, hash, role)
	if err != nil {
		// The (email, role) unique index is the arbiter under concurrent
		// registrations.
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicate(err) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	token, err := s.Tokens.Issue(u.ID, u.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: u}, nil
}

// Login authenticates the (email, role) pair against the stored bcrypt hash
// and returns a fresh token. Both an unknown account and a wrong password
// collapse to ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, email, password, role string) (*AuthResult, error) {
	tr := otel.Tracer("services/AccountService")
	ctx, span := tr.Start(ctx, "Login",
		trace.WithAttributes(attribute.String("user.role", role)),
	)
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))
	if role != domain.RoleListener && role != domain.RoleSpeaker {
		return nil, ErrInvalidRole
	}

	u, err := repo.GetUserByEmailRole(ctx, s.DB, email, role)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(u.ID, u.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: u}, nil
}

// isNotFound treats repo-level not found sentinels as "not found" in a
// driver-agnostic way. It also checks gorm.ErrRecordNotFound for safety.
func isNotFound(err error) bool {
	if errors.Is(err, repo.ErrNotFound) {
		return true
	}
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isDuplicate attempts to detect unique-constraint violations across drivers
// that may not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
