package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"nylas-email-app/internal/event/repository"
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

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Byte Identity", func(t *testing.T) {
		s := New(t.TempDir(), &mockLogger{})

		payload := []byte(`{"type":"message.created","data":{"object":{"id":"msg-1"}}}`)
		key, err := s.Save(ctx, payload)
		if err != nil {
			t.Fatalf("save failed: %v", err)
		}
		if key == "" {
			t.Fatal("expected a non-empty key")
		}

		got, err := s.Load(ctx, key)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if !bytes.Equal(got, payload) {
			t.Errorf("loaded payload differs from saved payload")
		}
	})

	t.Run("Creates Directory", func(t *testing.T) {
		dir := t.TempDir() + "/nested/events"
		s := New(dir, &mockLogger{})

		if _, err := s.Save(ctx, []byte(`{}`)); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		if _, err := os.Stat(dir); err != nil {
			t.Errorf("expected events directory to exist: %v", err)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		s := New(t.TempDir(), &mockLogger{})

		_, err := s.Load(ctx, "0198c2a0-0000-7000-8000-000000000000")
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestSaveConcurrent(t *testing.T) {
	const n = 50

	s := New(t.TempDir(), &mockLogger{})
	ctx := context.Background()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		keys = make(map[string]struct{}, n)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key, err := s.Save(ctx, []byte(fmt.Sprintf(`{"seq":%d}`, i)))
			if err != nil {
				t.Errorf("save %d failed: %v", i, err)
				return
			}
			mu.Lock()
			keys[key] = struct{}{}
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	if len(keys) != n {
		t.Errorf("expected %d distinct keys, got %d", n, len(keys))
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		t.Fatalf("failed to read events dir: %v", err)
	}
	if len(entries) != n {
		t.Errorf("expected %d files, got %d", n, len(entries))
	}
}

func TestLoadRejectsBadKeys(t *testing.T) {
	s := New(t.TempDir(), &mockLogger{})
	ctx := context.Background()

	for _, key := range []string{
		"",
		"../secrets",
		"..%2Fsecrets",
		"sub/dir",
		`sub\dir`,
		"key.json",
		"not-a-uuid",
	} {
		if _, err := s.Load(ctx, key); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("key %q: expected ErrNotFound, got %v", key, err)
		}
	}
}
