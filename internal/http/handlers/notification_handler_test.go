package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/confqa/go-conference-backend/internal/domain"
)

func seedNotification(t *testing.T, db *gorm.DB, userID, msg string, at time.Time) *domain.Notification {
	t.Helper()
	n := &domain.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      "question_status",
		Message:   msg,
		CreatedAt: at,
	}
	if err := db.Create(n).Error; err != nil {
		t.Fatalf("seed notification: %v", err)
	}
	return n
}

func TestListNotifications_OwnNewestFirst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	me := seedUser(t, db, domain.RoleListener, "Me")
	other := seedUser(t, db, domain.RoleListener, "Other")

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	seedNotification(t, db, me.ID, "older", base)
	seedNotification(t, db, me.ID, "newer", base.Add(time.Hour))
	seedNotification(t, db, other.ID, "not mine", base)

	h := newTestHandlers(t, db, &stubPredictor{})
	r := gin.New()
	r.GET("/notifications", asUser(me.ID), h.ListNotifications)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list -> %d body=%s", w.Code, w.Body.String())
	}
	var res ListNotificationsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Notifications) != 2 {
		t.Fatalf("got %d notifications, want 2", len(res.Notifications))
	}
	if res.Notifications[0].Message != "newer" || res.Notifications[1].Message != "older" {
		t.Fatalf("not newest first: %+v", res.Notifications)
	}
}

func TestMarkNotificationRead_OwnershipScoped(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	me := seedUser(t, db, domain.RoleListener, "Me")
	other := seedUser(t, db, domain.RoleListener, "Other")
	n := seedNotification(t, db, me.ID, "ack me", time.Now().UTC())

	h := newTestHandlers(t, db, &stubPredictor{})
	r := gin.New()
	r.PUT("/notifications/:id/read", asUser(me.ID), h.MarkNotificationRead)
	rIntruder := gin.New()
	rIntruder.PUT("/notifications/:id/read", asUser(other.ID), h.MarkNotificationRead)

	// Bad path param.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/notifications/nope/read", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad uuid -> %d, want 400", w.Code)
	}

	// Someone else's notification is indistinguishable from a missing one.
	w = httptest.NewRecorder()
	rIntruder.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/notifications/"+n.ID+"/read", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("foreign ack -> %d, want 404", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/notifications/"+n.ID+"/read", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("ack -> %d, want 204", w.Code)
	}

	var got domain.Notification
	if err := db.First(&got, "id = ?", n.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !got.Read {
		t.Fatalf("read flag not set")
	}
}
