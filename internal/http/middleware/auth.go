// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file provides JWT bearer authentication and role gating. The
// authenticator verifies the Authorization header, rejects missing or invalid
// tokens with 401, and stores the caller's identity in the Gin context under
// the "userID" and "userRole" keys so downstream middleware (logging, rate
// limiting) and handlers can rely on it.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/confqa/go-conference-backend/internal/auth"
)

// Context keys for the authenticated identity.
const (
	ctxKeyUserID   = "userID"
	ctxKeyUserRole = "userRole"
)

// UserID returns the authenticated user id stored by Authenticate. The
// second return value indicates presence.
func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxKeyUserID)
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}

// UserRole returns the authenticated user's role stored by Authenticate.
func UserRole(c *gin.Context) string {
	v, ok := c.Get(ctxKeyUserRole)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Authenticate verifies the Bearer token on every request and stores the
// caller's identity in the context. Missing, malformed, and expired tokens
// all produce the same 401 body so clients cannot distinguish token states.
func Authenticate(tokens *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
			unauthorized(c)
			return
		}

		userID, role, err := tokens.Verify(strings.TrimSpace(header[len(prefix):]))
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(ctxKeyUserID, userID)
		c.Set(ctxKeyUserRole, role)
		c.Next()
	}
}

// RequireRole gates a route group to one role. It assumes Authenticate ran
// earlier in the chain; an absent identity is treated as forbidden.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserRole(c) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"request_id": c.Writer.Header().Get("X-Request-ID"),
				"code":       "forbidden",
				"message":    "insufficient role",
			})
			return
		}
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", `Bearer realm="api"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"request_id": c.Writer.Header().Get("X-Request-ID"),
		"code":       "unauthorized",
		"message":    "missing or invalid token",
	})
}
