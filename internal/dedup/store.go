package dedup

import "context"

// Store remembers, per file, the hash of the annotation input that produced
// the currently applied bundle. Its point is to skip a re-apply only when the
// input is identical to what is already on screen; an edit-and-revert
// sequence changes the hash in between, so the revert must re-apply.
type Store interface {
	// Unchanged reports whether hash matches the input most recently
	// remembered for path.
	Unchanged(ctx context.Context, path, hash string) bool

	// Remember records hash as path's applied input, replacing any previous
	// one.
	Remember(ctx context.Context, path, hash string) error

	// Forget drops path's entry; called when the file's annotations are
	// retracted so a later identical diff applies again.
	Forget(ctx context.Context, path string) error
}
