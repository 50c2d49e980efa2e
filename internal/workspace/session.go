package workspace

import (
	"context"
	"errors"
	"sync"
)

// Session errors
var (
	ErrNoWorkspaceLoaded = errors.New("no analysis workspace loaded")
	ErrLoadInProgress    = errors.New("workspace load already in progress")
)

// LoadFunc opens an analysis workspace rooted at path.
type LoadFunc func(ctx context.Context, path string) (Analyzer, error)

// Session is an explicit handle to the currently loaded analysis workspace.
// Callers create one, pass it where analysis is needed, and close it with
// Unload. At most one Load runs at a time; a second concurrent Load is
// rejected rather than queued so callers see the contention instead of a
// silent serialization point.
type Session struct {
	load LoadFunc

	mu       sync.Mutex
	loading  bool
	path     string
	analyzer Analyzer
}

// NewSession creates a Session that loads workspaces with the given LoadFunc.
func NewSession(load LoadFunc) *Session {
	return &Session{load: load}
}

// Load opens the workspace at path, replacing any previously loaded one.
func (s *Session) Load(ctx context.Context, path string) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return ErrLoadInProgress
	}
	s.loading = true
	s.mu.Unlock()

	analyzer, err := s.load(ctx, path)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		return err
	}
	s.path = path
	s.analyzer = analyzer
	return nil
}

// Unload drops the loaded workspace.
func (s *Session) Unload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = ""
	s.analyzer = nil
}

// IsLoaded reports whether a workspace is currently loaded.
func (s *Session) IsLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analyzer != nil
}

// Path returns the root of the loaded workspace, or "".
func (s *Session) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// Analyzer returns the loaded analyzer, or ErrNoWorkspaceLoaded.
func (s *Session) Analyzer() (Analyzer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.analyzer == nil {
		return nil, ErrNoWorkspaceLoaded
	}
	return s.analyzer, nil
}
