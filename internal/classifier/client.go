// Package classifier implements the outbound client for the external
// question-relevance service. The service exposes a single POST /predict
// endpoint taking {question, topic} and answering with a relevance verdict,
// a confidence percentage, and a raw model score.
//
// The client performs exactly one call per prediction: no retry, no
// batching, no caching. Failures are returned as a typed *Error so the
// question-submission path can log the failure class while still treating
// every failure the same way (submission aborts; fail-closed).
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Prediction is the translated classifier verdict stored on a question.
type Prediction struct {
	// IsRelevant is true when the service answered result == "Relevant".
	IsRelevant bool
	// Confidence is the service's confidence percentage (0..100).
	Confidence float64
	// Score is the raw model score (0..1).
	Score float64
}

// Failure kinds carried by Error.Kind.
const (
	KindTimeout   = "timeout"
	KindTransport = "transport"
	KindStatus    = "status"
	KindDecode    = "decode"
)

// Error describes a failed prediction call. Kind is one of the Kind*
// constants; StatusCode is set only for KindStatus.
type Error struct {
	Kind       string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("classifier %s: status %d", e.Kind, e.StatusCode)
	}
	return fmt.Sprintf("classifier %s: %v", e.Kind, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error { return e.Err }

// Client issues predictions against a classifier base URL. The zero value is
// not usable; construct with New.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for baseURL with an explicit per-call timeout. The
// timeout bounds the entire exchange (dial, write, read), so a hung
// classifier cannot stall question submission indefinitely.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// predictRequest is the wire request body for POST /predict.
type predictRequest struct {
	Question string `json:"question"`
	Topic    string `json:"topic"`
}

// predictResponse mirrors the service's response. Fields beyond these three
// (echoed question/topic, model path) are ignored.
type predictResponse struct {
	Result     string  `json:"result"`
	Confidence float64 `json:"confidence"`
	Score      float64 `json:"score"`
}

// resultRelevant is the exact verdict string the service uses for relevant
// questions; anything else maps to not relevant.
const resultRelevant = "Relevant"

// Predict sends (question, topic) to the classifier and returns the
// translated Prediction. On any failure — timeout, transport error, non-2xx
// status, undecodable payload — it returns a *Error and the caller is
// expected to abort the surrounding submission.
func (c *Client) Predict(ctx context.Context, question, topic string) (*Prediction, error) {
	tr := otel.Tracer("classifier/Client")
	ctx, span := tr.Start(ctx, "Predict",
		trace.WithAttributes(attribute.String("classifier.topic", topic)),
	)
	defer span.End()

	body, err := json.Marshal(predictRequest{Question: question, Topic: topic})
	if err != nil {
		return nil, &Error{Kind: KindDecode, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: KindTransport, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		kind := KindTransport
		var ne interface{ Timeout() bool }
		if errors.As(err, &ne) && ne.Timeout() {
			kind = KindTimeout
		} else if errors.Is(err, context.DeadlineExceeded) {
			kind = KindTimeout
		}
		return nil, &Error{Kind: kind, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Kind: KindStatus, StatusCode: resp.StatusCode}
	}

	var pr predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, &Error{Kind: KindDecode, Err: err}
	}

	return &Prediction{
		IsRelevant: pr.Result == resultRelevant,
		Confidence: pr.Confidence,
		Score:      pr.Score,
	}, nil
}
