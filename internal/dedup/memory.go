package dedup

import (
	"context"
	"sync"
	"time"
)

type applied struct {
	hash     string
	markedAt time.Time
}

// Memory is the in-process Store: one entry per file, TTL-bounded and
// size-capped. When the cap is hit, the longest-tracked file goes first.
type Memory struct {
	mu         sync.Mutex
	byPath     map[string]applied
	order      []string
	ttl        time.Duration
	maxEntries int
}

func NewMemory() *Memory {
	return &Memory{
		byPath:     make(map[string]applied),
		ttl:        time.Hour,
		maxEntries: 4096,
	}
}

func (m *Memory) Unchanged(ctx context.Context, path, hash string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.byPath[path]
	if !ok {
		return false
	}
	if time.Since(e.markedAt) > m.ttl {
		m.dropLocked(path)
		return false
	}
	return e.hash == hash
}

func (m *Memory) Remember(ctx context.Context, path, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byPath[path]; !ok {
		m.order = append(m.order, path)
	}
	m.byPath[path] = applied{hash: hash, markedAt: time.Now()}

	for len(m.order) > m.maxEntries {
		m.dropLocked(m.order[0])
	}
	return nil
}

func (m *Memory) Forget(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dropLocked(path)
	return nil
}

func (m *Memory) dropLocked(path string) {
	delete(m.byPath, path)
	for i, p := range m.order {
		if p == path {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}
