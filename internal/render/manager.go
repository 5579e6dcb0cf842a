package render

import (
	"sync"

	"diff-annotator/internal/annotate"
	"diff-annotator/internal/observability"
)

// Manager owns the per-editor decoration lifecycle. It is the only holder of
// "currently active annotations" state: a bundle applied for an editor fully
// retracts that editor's previous bundle first, so stale decorations never
// stack under fresh ones.
type Manager struct {
	mu        sync.Mutex
	decorator Decorator
	logger    *observability.Logger
	active    map[string]*annotate.Bundle
}

func NewManager(d Decorator, logger *observability.Logger) *Manager {
	return &Manager{
		decorator: d,
		logger:    logger,
		active:    make(map[string]*annotate.Bundle),
	}
}

// Apply retracts the editor's previous bundle, then applies and records the
// new one. An empty bundle is equivalent to Clear.
func (m *Manager) Apply(editor string, b *annotate.Bundle) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.active[editor]; ok {
		if err := m.decorator.Clear(editor); err != nil {
			m.logger.Error("retract failed", "editor", editor, "err", err)
		}
		delete(m.active, editor)
	}

	if b.Empty() {
		return nil
	}

	if err := m.decorator.Apply(editor, b); err != nil {
		return err
	}
	m.active[editor] = b
	return nil
}

// Clear retracts and forgets the editor's decorations; used on editor close
// and when a recomputation finds nothing to annotate.
func (m *Manager) Clear(editor string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.active[editor]; !ok {
		return
	}
	if err := m.decorator.Clear(editor); err != nil {
		m.logger.Error("retract failed", "editor", editor, "err", err)
	}
	delete(m.active, editor)
}

// Snapshot returns the bundle currently applied for an editor, or nil.
func (m *Manager) Snapshot(editor string) *annotate.Bundle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active[editor]
}
