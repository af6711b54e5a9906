// Package services – ProfileService
//
// This file implements ProfileService, which owns the user profile surface:
// reading and updating display fields and storing uploaded avatar images on
// local disk. Avatars are capped in size, restricted to common image formats,
// and stored under a per-install upload directory; the user's record keeps
// only the relative URL.
package services

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/confqa/go-conference-backend/internal/domain"
	"github.com/confqa/go-conference-backend/internal/repo"
)

// avatarSubdir is the directory under the upload root that holds avatars.
const avatarSubdir = "avatars"

// allowedAvatarExts are the accepted avatar file extensions (lowercased,
// with dot).
var allowedAvatarExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
}

// ProfileService implements the use-cases around user profiles and avatars.
type ProfileService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// UploadDir is the local root for uploaded files (e.g. "uploads").
	UploadDir string
	// MaxAvatarBytes caps uploaded avatar size.
	MaxAvatarBytes int64
}

// ProfileUpdate carries the mutable display fields of a profile.
type ProfileUpdate struct {
	Name         string
	Bio          string
	Organization string
}

// Get returns the caller's own user record.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	u, err := repo.GetUser(ctx, s.DB, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// Update overwrites the caller's display fields and returns the fresh record.
func (s *ProfileService) Update(ctx context.Context, userID string, upd ProfileUpdate) (*domain.User, error) {
	err := repo.UpdateProfile(ctx, s.DB, userID,
		strings.TrimSpace(upd.Name),
		strings.TrimSpace(upd.Bio),
		strings.TrimSpace(upd.Organization),
	)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.Get(ctx, userID)
}

// SaveAvatar validates and stores an uploaded avatar, then records its
// relative URL on the user's profile.
//
// Validation:
//   - size must not exceed MaxAvatarBytes; otherwise ErrAvatarTooLarge.
//   - the filename extension must be one of jpg/jpeg/png/gif; otherwise
//     ErrAvatarType.
//   - the payload must actually be an image: the declared multipart
//     Content-Type (when stated) and the sniffed leading bytes both have to
//     be image/*; otherwise ErrAvatarType.
//
// The stored filename is a fresh UUID plus the original extension, so
// uploads never collide and client-supplied names never reach the
// filesystem. Returns the relative URL (e.g. /uploads/avatars/<id>.png).
func (s *ProfileService) SaveAvatar(ctx context.Context, userID, filename, contentType string, size int64, r io.Reader) (string, error) {
	tr := otel.Tracer("services/ProfileService")
	ctx, span := tr.Start(ctx, "SaveAvatar",
		trace.WithAttributes(attribute.Int64("avatar.size", size)),
	)
	defer span.End()

	if s.MaxAvatarBytes > 0 && size > s.MaxAvatarBytes {
		return "", ErrAvatarTooLarge
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedAvatarExts[ext]; !ok {
		return "", ErrAvatarType
	}
	if !declaredImageType(contentType) {
		return "", ErrAvatarType
	}

	// The declared type is client-controlled; the sniffed bytes are the
	// authoritative check.
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}
	head = head[:n]
	if !strings.HasPrefix(http.DetectContentType(head), "image/") {
		return "", ErrAvatarType
	}
	body := io.MultiReader(bytes.NewReader(head), r)

	dir := filepath.Join(s.UploadDir, avatarSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	// Copy at most one byte past the cap so an understated Content-Length
	// cannot smuggle an oversized file.
	limit := s.MaxAvatarBytes
	if limit <= 0 {
		limit = 5 << 20
	}
	written, err := io.Copy(f, io.LimitReader(body, limit+1))
	cerr := f.Close()
	if err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(dst)
		return "", err
	}
	if written > limit {
		os.Remove(dst)
		return "", ErrAvatarTooLarge
	}

	rel := "/uploads/" + avatarSubdir + "/" + name
	if err := repo.UpdateAvatar(ctx, s.DB, userID, rel); err != nil {
		os.Remove(dst)
		if isNotFound(err) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return rel, nil
}

// declaredImageType reports whether the multipart part's declared
// Content-Type is acceptable for an avatar. Empty and application/octet-stream
// count as unstated; generic multipart writers send those, and the byte sniff
// decides for them.
func declaredImageType(ct string) bool {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct == "" || ct == "application/octet-stream" {
		return true
	}
	return strings.HasPrefix(ct, "image/")
}
