package auth

import (
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef" // 32 bytes

func TestJWTManager_IssueVerify_RoundTrip(t *testing.T) {
	m := NewJWTManager(testSecret, "confqa", time.Hour)

	tok, err := m.Issue("user-1", "speaker")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	uid, role, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if uid != "user-1" || role != "speaker" {
		t.Fatalf("claims mismatch: uid=%q role=%q", uid, role)
	}
}

func TestJWTManager_Verify_EmptyAndGarbage(t *testing.T) {
	m := NewJWTManager(testSecret, "confqa", time.Hour)

	if _, _, err := m.Verify(""); err != ErrInvalidToken {
		t.Fatalf("empty token: expected ErrInvalidToken, got %v", err)
	}
	if _, _, err := m.Verify("not.a.jwt"); err != ErrInvalidToken {
		t.Fatalf("garbage token: expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTManager_Verify_WrongSecret(t *testing.T) {
	issuer := NewJWTManager(testSecret, "confqa", time.Hour)
	verifier := NewJWTManager("ffffffffffffffffffffffffffffffff", "confqa", time.Hour)

	tok, err := issuer.Issue("user-1", "listener")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, _, err := verifier.Verify(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestJWTManager_Verify_WrongIssuer(t *testing.T) {
	issuer := NewJWTManager(testSecret, "someone-else", time.Hour)
	verifier := NewJWTManager(testSecret, "confqa", time.Hour)

	tok, err := issuer.Issue("user-1", "listener")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, _, err := verifier.Verify(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong issuer, got %v", err)
	}
}

func TestJWTManager_Verify_Expired(t *testing.T) {
	m := NewJWTManager(testSecret, "confqa", -time.Minute)

	tok, err := m.Issue("user-1", "listener")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, _, err := m.Verify(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestHashPassword_CheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-pass" || hash == "" {
		t.Fatalf("hash must not echo the plaintext: %q", hash)
	}
	if !CheckPassword(hash, "s3cret-pass") {
		t.Fatalf("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatalf("wrong password accepted")
	}
}
