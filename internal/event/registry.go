package event

import (
	"sync"

	"nylas-email-app/internal/model"
)

// Registry is the in-process ordered list of received emails shown on the
// index page. It is created at startup and injected into handlers; appends
// are atomic with respect to readers, readers get a snapshot copy.
type Registry struct {
	mu     sync.RWMutex
	emails []model.EmailObject
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Append adds an email to the registry in arrival order.
func (r *Registry) Append(email model.EmailObject) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.emails = append(r.emails, email)
}

// Snapshot returns a copy of the registry contents.
func (r *Registry) Snapshot() []model.EmailObject {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.EmailObject, len(r.emails))
	copy(out, r.emails)
	return out
}

// Len reports the number of stored entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.emails)
}
