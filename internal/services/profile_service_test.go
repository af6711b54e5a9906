package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/confqa/go-conference-backend/internal/domain"
)

// ---------- test helpers ----------

func newProfileDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:profsvc_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedProfileUser(t *testing.T, db *gorm.DB) *domain.User {
	t.Helper()
	u := &domain.User{ID: uuid.NewString(), Email: "p@x.com", Role: domain.RoleListener}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// ---------- Get() / Update() ----------

func TestProfileService_GetAndUpdate(t *testing.T) {
	db := newProfileDB(t)
	s := &ProfileService{DB: db, UploadDir: t.TempDir(), MaxAvatarBytes: 1 << 20}
	ctx := context.Background()
	u := seedProfileUser(t, db)

	if _, err := s.Get(ctx, uuid.NewString()); err != ErrUserNotFound {
		t.Fatalf("missing user: expected ErrUserNotFound, got %v", err)
	}

	got, err := s.Update(ctx, u.ID, ProfileUpdate{Name: "  Ada ", Bio: "compilers", Organization: " RTC "})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Name != "Ada" || got.Bio != "compilers" || got.Organization != "RTC" {
		t.Fatalf("profile not trimmed/persisted: %+v", got)
	}

	if _, err := s.Update(ctx, uuid.NewString(), ProfileUpdate{Name: "x"}); err != ErrUserNotFound {
		t.Fatalf("missing user update: expected ErrUserNotFound, got %v", err)
	}
}

// ---------- SaveAvatar() ----------

// pngBytes returns a valid PNG signature padded to n bytes so the content
// sniff sees image/png.
func pngBytes(n int) []byte {
	b := append([]byte{}, 0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A)
	for len(b) < n {
		b = append(b, 0)
	}
	return b
}

// jpegBytes returns a valid JPEG signature padded to n bytes.
func jpegBytes(n int) []byte {
	b := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	for len(b) < n {
		b = append(b, 0)
	}
	return b
}

func TestProfileService_SaveAvatar_RejectsTypeAndSize(t *testing.T) {
	db := newProfileDB(t)
	s := &ProfileService{DB: db, UploadDir: t.TempDir(), MaxAvatarBytes: 16}
	ctx := context.Background()
	u := seedProfileUser(t, db)

	if _, err := s.SaveAvatar(ctx, u.ID, "payload.exe", "", 4, strings.NewReader("abcd")); err != ErrAvatarType {
		t.Fatalf("bad extension: expected ErrAvatarType, got %v", err)
	}
	if _, err := s.SaveAvatar(ctx, u.ID, "big.png", "image/png", 17, strings.NewReader("x")); err != ErrAvatarTooLarge {
		t.Fatalf("declared size over cap: expected ErrAvatarTooLarge, got %v", err)
	}
	// An understated declared size must not smuggle an oversized body.
	big := bytes.NewReader(pngBytes(32))
	if _, err := s.SaveAvatar(ctx, u.ID, "sneaky.png", "image/png", 4, big); err != ErrAvatarTooLarge {
		t.Fatalf("oversized body: expected ErrAvatarTooLarge, got %v", err)
	}

	// Nothing may be left behind under the upload dir.
	entries, err := os.ReadDir(filepath.Join(s.UploadDir, "avatars"))
	if err == nil && len(entries) != 0 {
		t.Fatalf("rejected uploads must not leave files: %v", entries)
	}
}

func TestProfileService_SaveAvatar_RejectsNonImagePayloads(t *testing.T) {
	db := newProfileDB(t)
	s := &ProfileService{DB: db, UploadDir: t.TempDir(), MaxAvatarBytes: 1 << 20}
	ctx := context.Background()
	u := seedProfileUser(t, db)

	// Declared type wins first: an honest non-image declaration is rejected
	// no matter what the filename says.
	html := "<html><body>not a picture</body></html>"
	if _, err := s.SaveAvatar(ctx, u.ID, "evil.png", "text/html", int64(len(html)),
		strings.NewReader(html)); err != ErrAvatarType {
		t.Fatalf("declared text/html: expected ErrAvatarType, got %v", err)
	}

	// A lying declaration falls to the byte sniff.
	if _, err := s.SaveAvatar(ctx, u.ID, "evil.png", "image/png", int64(len(html)),
		strings.NewReader(html)); err != ErrAvatarType {
		t.Fatalf("html bytes behind image/png: expected ErrAvatarType, got %v", err)
	}

	// So does an unstated type (generic multipart writers send octet-stream).
	if _, err := s.SaveAvatar(ctx, u.ID, "evil.png", "application/octet-stream", int64(len(html)),
		strings.NewReader(html)); err != ErrAvatarType {
		t.Fatalf("html bytes behind octet-stream: expected ErrAvatarType, got %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(s.UploadDir, "avatars"))
	if err == nil && len(entries) != 0 {
		t.Fatalf("rejected uploads must not leave files: %v", entries)
	}
}

func TestProfileService_SaveAvatar_Success(t *testing.T) {
	db := newProfileDB(t)
	dir := t.TempDir()
	s := &ProfileService{DB: db, UploadDir: dir, MaxAvatarBytes: 1 << 20}
	ctx := context.Background()
	u := seedProfileUser(t, db)

	content := jpegBytes(64)
	rel, err := s.SaveAvatar(ctx, u.ID, "me.JPG", "image/jpeg", int64(len(content)),
		bytes.NewReader(content))
	if err != nil {
		t.Fatalf("SaveAvatar: %v", err)
	}
	if !strings.HasPrefix(rel, "/uploads/avatars/") || !strings.HasSuffix(rel, ".jpg") {
		t.Fatalf("unexpected relative URL: %q", rel)
	}

	// File lands on disk with the uploaded bytes.
	onDisk := filepath.Join(dir, "avatars", filepath.Base(rel))
	b, err := os.ReadFile(onDisk)
	if err != nil || !bytes.Equal(b, content) {
		t.Fatalf("file content mismatch: %d bytes err=%v", len(b), err)
	}

	// The profile records the relative URL.
	got, err := s.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Avatar != rel {
		t.Fatalf("avatar not recorded: %q != %q", got.Avatar, rel)
	}
}

func TestProfileService_SaveAvatar_MissingUser_CleansFile(t *testing.T) {
	db := newProfileDB(t)
	dir := t.TempDir()
	s := &ProfileService{DB: db, UploadDir: dir, MaxAvatarBytes: 1 << 20}

	content := pngBytes(16)
	_, err := s.SaveAvatar(context.Background(), uuid.NewString(), "a.png", "image/png",
		int64(len(content)), bytes.NewReader(content))
	if err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	entries, err := os.ReadDir(filepath.Join(dir, "avatars"))
	if err != nil {
		t.Fatalf("read avatars dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("orphan file left on disk: %v", entries)
	}
}
