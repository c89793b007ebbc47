package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"nylas-email-app/internal/event/repository"
	pkgLog "nylas-email-app/pkg/log"
)

// Store writes one JSON file per accepted webhook delivery. Keys are UUIDv7
// strings, so they are time-ordered and unique regardless of provider-side
// redeliveries; the filename is "<key>.json" under the configured directory.
type Store struct {
	dir string
	l   pkgLog.Logger
}

// New creates a file-backed event store rooted at dir.
func New(dir string, l pkgLog.Logger) *Store {
	return &Store{dir: dir, l: l}
}

// Save writes the payload verbatim under a freshly generated key.
// A colliding key is a hard error, never a silent overwrite.
func (s *Store) Save(ctx context.Context, payload []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create events directory: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate record key: %w", err)
	}
	key := id.String()

	f, err := os.OpenFile(s.path(key), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s", repository.ErrKeyCollision, key)
		}
		return "", fmt.Errorf("failed to create event file: %w", err)
	}

	if _, err := f.Write(payload); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write event file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close event file: %w", err)
	}

	s.l.Debugf(ctx, "stored webhook delivery as %s (%d bytes)", key, len(payload))
	return key, nil
}

// Load returns the verbatim bytes stored under key.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", repository.ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to read event file: %w", err)
	}
	return raw, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// validateKey rejects anything that is not a bare UUID, so a key can never
// escape the events directory.
func validateKey(key string) error {
	if strings.ContainsAny(key, "/\\.") {
		return fmt.Errorf("%w: %s", repository.ErrNotFound, key)
	}
	if _, err := uuid.Parse(key); err != nil {
		return fmt.Errorf("%w: %s", repository.ErrNotFound, key)
	}
	return nil
}
