package worker

import "context"

// Queue carries pending recompute jobs from the debouncer to the processor.
type Queue interface {
	Push(ctx context.Context, j Job) error
	Pop(ctx context.Context) (Job, error)
}

// Job asks for one file's annotations to be recomputed from scratch.
type Job struct {
	Path string `json:"path"`
}
