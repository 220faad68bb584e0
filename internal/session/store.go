// Package session owns the authenticated identity persisted across page
// loads. All other components read the session through a Store; only the
// login success handler and the logout action write it.
package session

import (
	"sync"

	"disease-predictor-gateway/internal/models"
)

// Store abstracts the persisted session so handlers depend on an injected
// service rather than ambient state, and tests can substitute a fake.
type Store interface {
	// Load returns the persisted session, or (nil, false) when it is
	// missing or malformed. It never fails hard: an unreadable session
	// routes the user back to authentication.
	Load() (*models.Session, bool)

	// Save persists the full session atomically.
	Save(session *models.Session) error

	// Clear removes the persisted session and notifies subscribers so
	// dependent view state is flushed. Clearing an absent session is
	// not an error.
	Clear() error

	// Subscribe registers a hook fired after every Clear.
	Subscribe(fn func())
}

// MemoryStore keeps the session in memory. It backs tests and serves as the
// substitutable fake the handlers are written against.
type MemoryStore struct {
	mu      sync.Mutex
	session *models.Session
	subs    []func()
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load implements Store.
func (m *MemoryStore) Load() (*models.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.session.Valid() {
		return nil, false
	}
	copied := *m.session
	return &copied, true
}

// Save implements Store.
func (m *MemoryStore) Save(session *models.Session) error {
	if !session.Valid() {
		return ErrPartialSession
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *session
	m.session = &copied
	return nil
}

// Clear implements Store.
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	m.session = nil
	subs := make([]func(), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
	return nil
}

// Subscribe implements Store.
func (m *MemoryStore) Subscribe(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}
