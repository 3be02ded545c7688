// ABOUTME: Session store backed by a local badger key/value database.
// ABOUTME: Single source of truth for the current token, role, and identity.
package session

import (
	"fmt"
	"sync"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/workoutplan/cli/internal/models"
)

// The two persisted keys are the session's external storage contract.
// Nothing else survives a process exit.
const (
	keyAccessToken = "access_token"
	keyUserEmail   = "user_email"
)

// Session is the authenticated identity for the current process. Role is
// decoded from the token's claims when the session is installed and never
// re-derived afterward; a server-side revocation surfaces as a 401 on the
// next call.
type Session struct {
	Token string
	Role  models.Role
	Email string
	Name  string
}

// Store owns the session lifecycle: install on login, clear on logout,
// expire on an observed 401. Persisted state is read exactly once, at Open.
type Store struct {
	db *badger.DB

	mu      sync.RWMutex
	current *Session
	expired bool
}

// Open opens the session database at dir and loads any persisted session.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	s := &Store{db: db}
	if err := s.loadPersisted(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Current returns the active session, or nil when logged out.
func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	copy := *s.current
	return &copy
}

// Install records a freshly issued token as the active session, decoding the
// role from its claims and persisting the token and email.
func (s *Store) Install(token, email string) (*Session, error) {
	claims, err := DecodeClaims(token)
	if err != nil {
		return nil, err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(keyAccessToken), []byte(token)); err != nil {
			return err
		}
		return txn.Set([]byte(keyUserEmail), []byte(email))
	})
	if err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	sess := &Session{Token: token, Role: claims.Role, Email: email, Name: claims.Name}
	s.mu.Lock()
	s.current = sess
	s.expired = false
	s.mu.Unlock()

	copy := *sess
	return &copy, nil
}

// Clear removes all session state, in memory and persisted. Idempotent.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked()
}

// Expire clears the session exactly like Clear but marks the store so the
// caller can tell a forced expiry apart from a deliberate logout. Calling it
// on an already-cleared store is a no-op that keeps the expired marker.
func (s *Store) Expire() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expired = true
	return s.clearLocked()
}

// WasExpired reports whether the last session ended by expiry rather than
// logout.
func (s *Store) WasExpired() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expired
}

func (s *Store) clearLocked() error {
	s.current = nil
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(keyAccessToken)); err != nil {
			return err
		}
		return txn.Delete([]byte(keyUserEmail))
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// loadPersisted restores a session from the persisted keys, if present.
// A token that no longer decodes is discarded rather than surfaced.
func (s *Store) loadPersisted() error {
	var token, email string
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		if token, err = readKey(txn, keyAccessToken); err != nil {
			return err
		}
		email, err = readKey(txn, keyUserEmail)
		return err
	})
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if token == "" {
		return nil
	}

	claims, err := DecodeClaims(token)
	if err != nil {
		return s.Clear()
	}

	s.mu.Lock()
	s.current = &Session{Token: token, Role: claims.Role, Email: email, Name: claims.Name}
	s.mu.Unlock()
	return nil
}

func readKey(txn *badger.Txn, key string) (string, error) {
	item, err := txn.Get([]byte(key))
	if err == badger.ErrKeyNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	var out string
	err = item.Value(func(val []byte) error {
		out = string(val)
		return nil
	})
	return out, err
}
