package repo

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/confqa/go-conference-backend/internal/domain"
)

func newUserRepoDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("user_repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Ensure the file handle is released before TempDir cleanup (Windows needs this).
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func TestCreateUser_Error_NoTable(t *testing.T) {
	db := newUserRepoDB(t /* no migrations */)
	u, err := CreateUser(context.Background(), db, "a@b.com", "hash", domain.RoleListener)
	if err == nil || u != nil {
		t.Fatalf("expected error creating without table, got user=%v err=%v", u, err)
	}
}

func TestCreateUser_Success_SetsFields(t *testing.T) {
	db := newUserRepoDB(t, &domain.User{})

	start := time.Now().UTC().Add(-time.Minute)
	u, err := CreateUser(context.Background(), db, "a@b.com", "bcrypt-hash", domain.RoleListener)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.ID == "" || u.Email != "a@b.com" || u.Role != domain.RoleListener || u.Password != "bcrypt-hash" {
		t.Fatalf("unexpected User fields: %+v", u)
	}
	if u.CreatedAt.Before(start) {
		t.Fatalf("CreatedAt seems unset: %v", u.CreatedAt)
	}
}

func TestCreateUser_DuplicateEmailRole_FailsButOtherRoleSucceeds(t *testing.T) {
	db := newUserRepoDB(t, &domain.User{})

	if _, err := CreateUser(context.Background(), db, "dual@x.com", "h", domain.RoleListener); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	// Same (email, role) pair must hit the unique index.
	if _, err := CreateUser(context.Background(), db, "dual@x.com", "h", domain.RoleListener); err == nil {
		t.Fatalf("expected unique violation for duplicate (email, role)")
	}
	// Same email under the other role is a distinct account.
	if _, err := CreateUser(context.Background(), db, "dual@x.com", "h", domain.RoleSpeaker); err != nil {
		t.Fatalf("same email as speaker should succeed: %v", err)
	}
}

func TestGetUserByEmailRole_FoundAndNotFound(t *testing.T) {
	db := newUserRepoDB(t, &domain.User{})

	if _, err := GetUserByEmailRole(context.Background(), db, "nobody@x.com", domain.RoleListener); err == nil {
		t.Fatalf("expected ErrRecordNotFound for missing user")
	}

	seed, err := CreateUser(context.Background(), db, "dual@x.com", "h", domain.RoleSpeaker)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	// The listener slot for the same email stays empty.
	if _, err := GetUserByEmailRole(context.Background(), db, "dual@x.com", domain.RoleListener); err == nil {
		t.Fatalf("expected not found for other role")
	}
	got, err := GetUserByEmailRole(context.Background(), db, "dual@x.com", domain.RoleSpeaker)
	if err != nil {
		t.Fatalf("GetUserByEmailRole: %v", err)
	}
	if got.ID != seed.ID {
		t.Fatalf("fetched wrong user: %+v", got)
	}
}

func TestUpdateProfile_SuccessAndNotFound(t *testing.T) {
	db := newUserRepoDB(t, &domain.User{})

	u, err := CreateUser(context.Background(), db, "p@x.com", "h", domain.RoleListener)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := UpdateProfile(context.Background(), db, u.ID, "Ada", "bio text", "ACME"); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	got, err := GetUser(context.Background(), db, u.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Name != "Ada" || got.Bio != "bio text" || got.Organization != "ACME" {
		t.Fatalf("profile not persisted: %+v", got)
	}

	if err := UpdateProfile(context.Background(), db, "missing", "x", "y", "z"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestUpdateAvatar_SuccessAndNotFound(t *testing.T) {
	db := newUserRepoDB(t, &domain.User{})

	u, err := CreateUser(context.Background(), db, "a@x.com", "h", domain.RoleSpeaker)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := UpdateAvatar(context.Background(), db, u.ID, "/uploads/avatars/a.png"); err != nil {
		t.Fatalf("UpdateAvatar: %v", err)
	}
	got, err := GetUser(context.Background(), db, u.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Avatar != "/uploads/avatars/a.png" {
		t.Fatalf("avatar not persisted: %q", got.Avatar)
	}

	if err := UpdateAvatar(context.Background(), db, "missing", "/x.png"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}
