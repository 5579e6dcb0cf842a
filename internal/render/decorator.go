package render

import "diff-annotator/internal/annotate"

// Decorator is the host-editor abstraction: it turns an annotation bundle
// into whatever the host can paint, and retracts it again.
type Decorator interface {
	Apply(editor string, b *annotate.Bundle) error
	Clear(editor string) error
}

// Noop satisfies Decorator for hosts that only read snapshots (the daemon
// surface serves bundles as JSON; nothing is painted in-process).
type Noop struct{}

func (Noop) Apply(string, *annotate.Bundle) error { return nil }
func (Noop) Clear(string) error                   { return nil }
