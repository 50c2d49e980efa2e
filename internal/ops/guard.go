package ops

import (
	"path/filepath"
	"sync"
)

// repoGuard serializes operations per repository path within this process.
// Two concurrent operations against the same working tree would otherwise
// race exactly like two git invocations from two shells; distinct
// repositories still run in parallel. Cross-process races remain the git
// binary's own locking problem.
type repoGuard struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newRepoGuard() *repoGuard {
	return &repoGuard{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for dir and returns its unlock func.
func (g *repoGuard) lock(dir string) func() {
	key := filepath.Clean(dir)
	if abs, err := filepath.Abs(key); err == nil {
		key = abs
	}

	g.mu.Lock()
	m, ok := g.locks[key]
	if !ok {
		m = &sync.Mutex{}
		g.locks[key] = m
	}
	g.mu.Unlock()

	m.Lock()
	return m.Unlock
}
