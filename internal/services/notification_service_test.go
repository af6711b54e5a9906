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

	"github.com/confqa/go-conference-backend/internal/domain"
)

func newNotifDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:notifsvc_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Notification{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestNotificationService_List_ScopedNewestFirst(t *testing.T) {
	db := newNotifDB(t)
	s := &NotificationService{DB: db}
	base := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)

	rows := []domain.Notification{
		{ID: "n1", UserID: "u1", Type: "x", Message: "old", CreatedAt: base},
		{ID: "n2", UserID: "u1", Type: "x", Message: "new", CreatedAt: base.Add(time.Minute)},
		{ID: "nx", UserID: "u2", Type: "x", Message: "foreign", CreatedAt: base},
	}
	for _, n := range rows {
		if err := db.Create(&n).Error; err != nil {
			t.Fatalf("seed %s: %v", n.ID, err)
		}
	}

	list, err := s.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != "n2" {
		t.Fatalf("unexpected list: %#v", list)
	}
}

func TestNotificationService_MarkRead_OwnershipAndMissing(t *testing.T) {
	db := newNotifDB(t)
	s := &NotificationService{DB: db}
	ctx := context.Background()

	n := domain.Notification{ID: "n1", UserID: "owner", Type: "x", Message: "m"}
	if err := db.Create(&n).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := s.MarkRead(ctx, "intruder", "n1"); err != ErrNotificationNotFound {
		t.Fatalf("foreign: expected ErrNotificationNotFound, got %v", err)
	}
	if err := s.MarkRead(ctx, "owner", "missing"); err != ErrNotificationNotFound {
		t.Fatalf("missing: expected ErrNotificationNotFound, got %v", err)
	}
	if err := s.MarkRead(ctx, "owner", "n1"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	var got domain.Notification
	if err := db.First(&got, "id = ?", "n1").Error; err != nil || !got.Read {
		t.Fatalf("read flag not set: read=%v err=%v", got.Read, err)
	}
}
