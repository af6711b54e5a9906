package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestPredict_RelevantVerdict(t *testing.T) {
	var gotBody predictRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/predict" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"result": "Relevant", "confidence": 97.27, "score": 0.9727,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	p, err := c.Predict(context.Background(), "How do goroutines schedule?", "Go concurrency")
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if !p.IsRelevant || p.Confidence != 97.27 || p.Score != 0.9727 {
		t.Fatalf("unexpected prediction: %+v", p)
	}
	if gotBody.Question != "How do goroutines schedule?" || gotBody.Topic != "Go concurrency" {
		t.Fatalf("wrong wire request: %+v", gotBody)
	}
}

func TestPredict_NonRelevantVerdict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"result": "Not Relevant", "confidence": 88.0, "score": 0.12,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	p, err := c.Predict(context.Background(), "What's for lunch?", "Go concurrency")
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if p.IsRelevant {
		t.Fatalf("expected non-relevant verdict: %+v", p)
	}
}

func TestPredict_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Predict(context.Background(), "q", "t")
	var ce *Error
	if !errors.As(err, &ce) || ce.Kind != KindStatus || ce.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestPredict_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not json"))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Predict(context.Background(), "q", "t")
	var ce *Error
	if !errors.As(err, &ce) || ce.Kind != KindDecode {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestPredict_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(srv.URL, 20*time.Millisecond)
	_, err := c.Predict(context.Background(), "q", "t")
	var ce *Error
	if !errors.As(err, &ce) || ce.Kind != KindTimeout {
		t.Fatalf("expected timeout error, got %v", err)
	}
}

func TestPredict_TransportError(t *testing.T) {
	// Nothing listens on this port.
	c := New("http://127.0.0.1:1", time.Second)
	_, err := c.Predict(context.Background(), "q", "t")
	var ce *Error
	if !errors.As(err, &ce) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if ce.Kind != KindTransport && ce.Kind != KindTimeout {
		t.Fatalf("expected transport failure, got kind=%q", ce.Kind)
	}
}
