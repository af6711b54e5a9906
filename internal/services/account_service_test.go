package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/confqa/go-conference-backend/internal/auth"
	"github.com/confqa/go-conference-backend/internal/domain"
)

// ---------- test helpers ----------

func newAccountDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:accsvc_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func newTokens() *auth.JWTManager {
	return auth.NewJWTManager("0123456789abcdef0123456789abcdef", "confqa-test", time.Hour)
}

// ---------- Register() ----------

func TestAccountService_Register_Success_TokenCarriesIdentity(t *testing.T) {
	db := newAccountDB(t, &domain.User{})
	s := &AccountService{DB: db, Tokens: newTokens()}

	res, err := s.Register(context.Background(), "  Alice@Example.COM ", "hunter22", domain.RoleListener)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if res.User.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", res.User.Email)
	}
	if res.User.Password == "hunter22" {
		t.Fatalf("password stored in plaintext")
	}

	uid, role, err := s.Tokens.Verify(res.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if uid != res.User.ID || role != domain.RoleListener {
		t.Fatalf("token claims mismatch: uid=%q role=%q", uid, role)
	}
}

func TestAccountService_Register_DuplicatePair_ButOtherRoleOK(t *testing.T) {
	db := newAccountDB(t, &domain.User{})
	s := &AccountService{DB: db, Tokens: newTokens()}
	ctx := context.Background()

	if _, err := s.Register(ctx, "dual@x.com", "pw123456", domain.RoleListener); err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, err := s.Register(ctx, "dual@x.com", "pw123456", domain.RoleListener); err != ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	// The same email may also hold a speaker account.
	if _, err := s.Register(ctx, "dual@x.com", "pw123456", domain.RoleSpeaker); err != nil {
		t.Fatalf("speaker slot: %v", err)
	}
}

func TestAccountService_Register_Validation(t *testing.T) {
	db := newAccountDB(t, &domain.User{})
	s := &AccountService{DB: db, Tokens: newTokens()}
	ctx := context.Background()

	if _, err := s.Register(ctx, "not-an-email", "pw123456", domain.RoleListener); err != ErrInvalidCredentials {
		t.Fatalf("bad email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := s.Register(ctx, "a@b.com", "", domain.RoleListener); err != ErrInvalidCredentials {
		t.Fatalf("empty password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := s.Register(ctx, "a@b.com", "pw123456", "admin"); err != ErrInvalidRole {
		t.Fatalf("bad role: expected ErrInvalidRole, got %v", err)
	}
}

// ---------- Login() ----------

func TestAccountService_Login_SuccessAndFailures(t *testing.T) {
	db := newAccountDB(t, &domain.User{})
	s := &AccountService{DB: db, Tokens: newTokens()}
	ctx := context.Background()

	if _, err := s.Register(ctx, "bob@x.com", "correct-horse", domain.RoleSpeaker); err != nil {
		t.Fatalf("seed: %v", err)
	}

	res, err := s.Login(ctx, "BOB@x.com", "correct-horse", domain.RoleSpeaker)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token == "" || res.User.Role != domain.RoleSpeaker {
		t.Fatalf("unexpected login result: %+v", res)
	}

	// Wrong password and unknown account collapse to the same error.
	if _, err := s.Login(ctx, "bob@x.com", "wrong", domain.RoleSpeaker); err != ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := s.Login(ctx, "nobody@x.com", "correct-horse", domain.RoleSpeaker); err != ErrInvalidCredentials {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
	// The speaker password does not open a listener session.
	if _, err := s.Login(ctx, "bob@x.com", "correct-horse", domain.RoleListener); err != ErrInvalidCredentials {
		t.Fatalf("other role: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := s.Login(ctx, "bob@x.com", "correct-horse", "admin"); err != ErrInvalidRole {
		t.Fatalf("bad role: expected ErrInvalidRole, got %v", err)
	}
}
