package worker

import "context"

// Adapter implements the debouncer's Enqueuer so that package only knows a
// narrow interface, not the queue.
type Adapter struct {
	q Queue
}

func NewAdapter(q Queue) *Adapter {
	return &Adapter{q: q}
}

func (a *Adapter) Enqueue(ctx context.Context, path string) error {
	return a.q.Push(ctx, Job{Path: path})
}
