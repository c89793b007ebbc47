package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Session is the per-browser state. It holds at most a grant id.
type Session struct {
	mu      sync.RWMutex
	grantID string
}

// GrantID returns the grant id bound to this session, empty when none.
func (s *Session) GrantID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grantID
}

// SetGrantID binds a grant id to this session.
func (s *Session) SetGrantID(grantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grantID = grantID
}

// Store keeps sessions in a bounded expirable LRU so abandoned sessions age
// out with their cookie instead of accumulating until restart.
type Store struct {
	sessions *expirable.LRU[string, *Session]
	ttl      time.Duration
}

// NewStore creates a session store with the given TTL and capacity bound.
func NewStore(ttl time.Duration, maxSessions int) *Store {
	return &Store{
		sessions: expirable.NewLRU[string, *Session](maxSessions, nil, ttl),
		ttl:      ttl,
	}
}

// TTL returns the session lifetime, which also bounds the cookie max-age.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Get looks up an existing session by id.
func (s *Store) Get(id string) (*Session, bool) {
	return s.sessions.Get(id)
}

// Create mints a fresh session under a new random id.
func (s *Store) Create() (string, *Session, error) {
	id, err := newSessionID()
	if err != nil {
		return "", nil, err
	}
	sess := &Session{}
	s.sessions.Add(id, sess)
	return id, sess, nil
}

// newSessionID returns 16 random bytes, hex encoded.
func newSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
