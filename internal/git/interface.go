package git

import "context"

// Client is the version-control collaborator: everything the annotation
// pipeline needs to know about a file's last committed state.
//
// An unmodified file reports IsModified false and an empty diff; both mean
// "nothing to annotate", never an error.
type Client interface {
	DiffFile(ctx context.Context, path string) (string, error)
	IsModified(ctx context.Context, path string) (bool, error)
}
