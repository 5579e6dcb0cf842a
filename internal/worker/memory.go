package worker

import "context"

// MemoryQueue is the in-process queue used when the editor front end and the
// processor share one daemon. Capacity bounds how many recomputes may be
// outstanding before further notifications block on their context.
type MemoryQueue struct {
	jobs chan Job
}

func NewMemoryQueue(capacity int) *MemoryQueue {
	return &MemoryQueue{jobs: make(chan Job, capacity)}
}

func (q *MemoryQueue) Push(ctx context.Context, j Job) error {
	select {
	case q.jobs <- j:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryQueue) Pop(ctx context.Context) (Job, error) {
	select {
	case j := <-q.jobs:
		return j, nil
	case <-ctx.Done():
		return Job{}, ctx.Err()
	}
}
