package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	pkgerrors "github.com/kjramos5310/inventario-console/pkg/errors"
	"github.com/kjramos5310/inventario-console/pkg/logger"

	"github.com/kjramos5310/inventario-console/internal/resources"
)

// Store is the single process-wide holder of the persisted session: one JSON
// file containing the authenticated usuario record. Absence means logged out.
// All consumers read through the store instead of re-reading the file ad hoc,
// and subscribers observe every replacement.
type Store struct {
	mu      sync.Mutex
	path    string
	logg    *logger.Logger
	current *resources.Usuario
	loaded  bool
	subs    []func(*resources.Usuario)
}

func NewStore(path string, logg *logger.Logger) *Store {
	return &Store{path: path, logg: logg}
}

// Load resumes the persisted session. A missing or malformed file is the
// logged-out state, never an error, and the result is idempotent.
func (s *Store) Load() *resources.Usuario {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.current
	}
	s.loaded = true

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var user resources.Usuario
	if err := json.Unmarshal(raw, &user); err != nil {
		if s.logg != nil {
			s.logg.Warn(context.Background(), "persisted session is malformed, treating as logged out")
		}
		return nil
	}

	s.current = &user
	return s.current
}

// Current returns the session without re-reading storage.
func (s *Store) Current() *resources.Usuario {
	return s.Load()
}

// Set replaces the session wholesale and persists it.
func (s *Store) Set(user *resources.Usuario) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode session")
	}

	s.mu.Lock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		s.mu.Unlock()
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create session directory")
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		s.mu.Unlock()
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist session")
	}
	s.current = user
	s.loaded = true
	subs := append(([]func(*resources.Usuario))(nil), s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(user)
	}
	return nil
}

// Clear removes the persisted session, returning the caller to the
// unauthenticated entry point.
func (s *Store) Clear() error {
	s.mu.Lock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.mu.Unlock()
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove session")
	}
	s.current = nil
	s.loaded = true
	subs := append(([]func(*resources.Usuario))(nil), s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(nil)
	}
	return nil
}

// Subscribe registers an observer called with every replacement value.
func (s *Store) Subscribe(fn func(*resources.Usuario)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}
