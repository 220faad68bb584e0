package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"disease-predictor-gateway/internal/models"
	"disease-predictor-gateway/internal/utils"
)

// ErrPartialSession is returned when a caller attempts to persist a session
// that is not wholly populated.
var ErrPartialSession = errors.New("session: refusing to persist a partial session")

// FileStore persists the session as a signed token in a single local file,
// the process-wide analog of the browser's localStorage entry. Writes go
// through a temp file and rename so no reader observes a partial session.
type FileStore struct {
	path   string
	secret string

	mu   sync.Mutex
	subs []func()
}

// NewFileStore creates a store backed by the token file at path.
func NewFileStore(path, secret string) *FileStore {
	return &FileStore{path: path, secret: secret}
}

// Load reads and verifies the persisted session. Any failure - missing
// file, unreadable file, tampered or malformed token - yields (nil, false).
func (f *FileStore) Load() (*models.Session, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, false
	}

	session, err := utils.ParseSessionToken(strings.TrimSpace(string(data)), f.secret)
	if err != nil {
		return nil, false
	}
	if !session.Valid() {
		return nil, false
	}
	return session, true
}

// Save signs the session and writes it atomically.
func (f *FileStore) Save(session *models.Session) error {
	if !session.Valid() {
		return ErrPartialSession
	}

	token, err := utils.SignSessionToken(session, f.secret)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("failed to create session file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(token); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write session file: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// Clear removes the persisted session and fires subscribers. Idempotent.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	err := os.Remove(f.path)
	subs := make([]func(), len(f.subs))
	copy(subs, f.subs)
	f.mu.Unlock()

	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	// Notify dependents even when the session was already absent, so no
	// stale authenticated view state survives a logout.
	for _, fn := range subs {
		fn()
	}
	return nil
}

// Subscribe registers a hook fired after every Clear.
func (f *FileStore) Subscribe(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs = append(f.subs, fn)
}
