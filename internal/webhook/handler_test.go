package webhook

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"nylas-email-app/internal/event"
	fileRepo "nylas-email-app/internal/event/repository/file"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

const testSecret = "test-webhook-secret"

var messageCreatedBody = []byte(`{
	"specversion": "1.0",
	"type": "message.created",
	"source": "/google/emails/realtime",
	"id": "evt-123",
	"time": 1714000000,
	"webhook_delivery_attempt": 1,
	"data": {
		"application_id": "app-1",
		"object": {
			"id": "msg-1",
			"grant_id": "grant-1",
			"thread_id": "thread-1",
			"object": "message",
			"subject": "Hello",
			"body": "<b>Hi</b>",
			"snippet": "Hi",
			"date": 1714000000,
			"starred": false,
			"unread": true,
			"from": [{"name": "Alice", "email": "alice@example.com"}],
			"to": [{"name": "Bob", "email": "bob@example.com"}]
		}
	}
}`)

func newTestRouter(t *testing.T) (*gin.Engine, *event.Registry, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	registry := event.NewRegistry()
	h := NewHandler(
		fileRepo.New(dir, &mockLogger{}),
		registry,
		SecurityConfig{Secret: testSecret, RateLimitPerMin: 6000},
		&mockLogger{},
	)

	r := gin.New()
	r.GET("/events", h.HandleEvents)
	r.POST("/events", h.HandleEvents)
	r.PUT("/events", h.HandleEvents)
	r.GET("/events/:key", h.HandleStoredEvent)
	return r, registry, dir
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0
		}
		t.Fatalf("failed to read events dir: %v", err)
	}
	return len(entries)
}

func TestHandleChallenge(t *testing.T) {
	t.Run("Echoes Challenge", func(t *testing.T) {
		r, _, _ := newTestRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/events?challenge=abc123", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "abc123" {
			t.Errorf("expected challenge echo, got %q", w.Body.String())
		}
	})

	t.Run("No Challenge", func(t *testing.T) {
		r, _, _ := newTestRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		if w.Body.String() != "No challenge" {
			t.Errorf("unexpected body %q", w.Body.String())
		}
	})
}

func TestHandleDelivery(t *testing.T) {
	t.Run("Valid Delivery Stored And Registered", func(t *testing.T) {
		r, registry, dir := newTestRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(messageCreatedBody))
		req.Header.Set(SignatureHeader, signHex(testSecret, messageCreatedBody))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
		if w.Body.String() != "Webhook received" {
			t.Errorf("unexpected body %q", w.Body.String())
		}
		if got := countFiles(t, dir); got != 1 {
			t.Errorf("expected 1 stored file, got %d", got)
		}
		if registry.Len() != 1 {
			t.Errorf("expected 1 registry entry, got %d", registry.Len())
		}

		emails := registry.Snapshot()
		if emails[0].Subject != "Hello" {
			t.Errorf("unexpected subject %q", emails[0].Subject)
		}
	})

	t.Run("Invalid Signature Discards Event", func(t *testing.T) {
		r, registry, dir := newTestRouter(t)

		// Signature of a different body
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(messageCreatedBody))
		req.Header.Set(SignatureHeader, signHex(testSecret, []byte("other body")))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
		if w.Body.String() != "Signature verification failed!" {
			t.Errorf("unexpected body %q", w.Body.String())
		}
		if got := countFiles(t, dir); got != 0 {
			t.Errorf("expected no stored files, got %d", got)
		}
		if registry.Len() != 0 {
			t.Errorf("expected empty registry, got %d", registry.Len())
		}
	})

	t.Run("Missing Signature Header", func(t *testing.T) {
		r, _, dir := newTestRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(messageCreatedBody))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
		if got := countFiles(t, dir); got != 0 {
			t.Errorf("expected no stored files, got %d", got)
		}
	})

	t.Run("Unparseable Body Still Stored", func(t *testing.T) {
		r, registry, dir := newTestRouter(t)

		body := []byte(`{"not":"a valid envelope`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(body))
		req.Header.Set(SignatureHeader, signHex(testSecret, body))
		r.ServeHTTP(w, req)

		// Storage is the success gate: the raw payload must survive even
		// though structured parsing fails.
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		if got := countFiles(t, dir); got != 1 {
			t.Errorf("expected 1 stored file, got %d", got)
		}
		if registry.Len() != 0 {
			t.Errorf("expected no registry entries, got %d", registry.Len())
		}
	})

	t.Run("Unknown Trigger Stored Not Registered", func(t *testing.T) {
		r, registry, dir := newTestRouter(t)

		body := []byte(`{"specversion":"1.0","type":"message.opened","id":"evt-9","time":1,"webhook_delivery_attempt":1,"data":{"object":{"message_id":"msg-1"}}}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(body))
		req.Header.Set(SignatureHeader, signHex(testSecret, body))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		if got := countFiles(t, dir); got != 1 {
			t.Errorf("expected 1 stored file, got %d", got)
		}
		if registry.Len() != 0 {
			t.Errorf("expected no registry entries, got %d", registry.Len())
		}
	})

	t.Run("Redelivery Creates Second Record", func(t *testing.T) {
		r, registry, dir := newTestRouter(t)

		for attempt := 0; attempt < 2; attempt++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(messageCreatedBody))
			req.Header.Set(SignatureHeader, signHex(testSecret, messageCreatedBody))
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("attempt %d: expected 200, got %d", attempt, w.Code)
			}
		}

		// No dedup: every accepted delivery is its own record and entry.
		if got := countFiles(t, dir); got != 2 {
			t.Errorf("expected 2 stored files, got %d", got)
		}
		if registry.Len() != 2 {
			t.Errorf("expected 2 registry entries, got %d", registry.Len())
		}
	})

	t.Run("Unsupported Method", func(t *testing.T) {
		r, _, _ := newTestRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/events", bytes.NewReader(messageCreatedBody))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", w.Code)
		}
	})
}

func TestHandleStoredEvent(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		r, _, dir := newTestRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(messageCreatedBody))
		req.Header.Set(SignatureHeader, signHex(testSecret, messageCreatedBody))
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("setup delivery failed: %d", w.Code)
		}

		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) != 1 {
			t.Fatalf("expected exactly one stored file, got %d (%v)", len(entries), err)
		}
		key := entries[0].Name()[:len(entries[0].Name())-len(filepath.Ext(entries[0].Name()))]

		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/events/"+key, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Equal(w.Body.Bytes(), messageCreatedBody) {
			t.Errorf("stored record is not byte-identical to the delivery body")
		}
	})

	t.Run("Unknown Key", func(t *testing.T) {
		r, _, _ := newTestRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/events/00000000-0000-0000-0000-000000000000", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}
