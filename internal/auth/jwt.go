// Package auth implements the stateless credential layer: HS256 JWT issuance
// and verification, and bcrypt password hashing. Tokens are self-contained —
// there is no server-side session store, and logout is a client-side concern.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a credential is missing, malformed,
// carries a wrong signature or issuer, or has expired.
var ErrInvalidToken = errors.New("invalid or expired token")

// JWTManager issues and verifies the signed bearer credentials used by the
// API. Each token embeds the user id (subject) and role claim and is valid
// for the configured TTL (24h per product contract).
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewJWTManager constructs a JWTManager. The secret must be at least 32
// bytes for HS256; config validation enforces this before we get here.
func NewJWTManager(secret, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// claims extends the registered JWT claims with the user's role.
type claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Issue creates a signed HS256 token with userID as subject and the role as
// a custom claim.
func (m *JWTManager) Issue(userID, role string) (string, error) {
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Role: role,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string, returning the embedded
// (userID, role). Any failure — bad algorithm, bad signature, wrong issuer,
// expiry — collapses into ErrInvalidToken so callers map it to a single 401.
func (m *JWTManager) Verify(tokenString string) (userID, role string, err error) {
	if tokenString == "" {
		return "", "", ErrInvalidToken
	}

	tok, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", "", ErrInvalidToken
	}

	c, ok := tok.Claims.(*claims)
	if !ok || !tok.Valid {
		return "", "", ErrInvalidToken
	}
	if c.Issuer != m.issuer || c.Subject == "" {
		return "", "", ErrInvalidToken
	}
	return c.Subject, c.Role, nil
}
