package worker

import (
	"context"
	"sync"
	"time"

	"diff-annotator/internal/observability"
)

// Enqueuer is what the debouncer needs from the queue side.
type Enqueuer interface {
	Enqueue(ctx context.Context, path string) error
}

// Debouncer holds one pending recompute per file. Every change notification
// for a file cancels and reschedules its pending job, so a burst of
// keystrokes costs a single diff fetch once the burst settles.
type Debouncer struct {
	mu         sync.Mutex
	interval   time.Duration
	enqTimeout time.Duration
	enq        Enqueuer
	logger     *observability.Logger
	pending    map[string]*time.Timer
	stopped    bool
}

func NewDebouncer(interval time.Duration, enq Enqueuer, logger *observability.Logger) *Debouncer {
	return &Debouncer{
		interval:   interval,
		enqTimeout: 2 * time.Second,
		enq:        enq,
		logger:     logger,
		pending:    make(map[string]*time.Timer),
	}
}

// Notify records a change to path and (re)starts its debounce window.
func (d *Debouncer) Notify(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if t, ok := d.pending[path]; ok {
		t.Stop()
	}

	d.pending[path] = time.AfterFunc(d.interval, func() {
		d.fire(path)
	})
}

func (d *Debouncer) fire(path string) {
	d.mu.Lock()
	delete(d.pending, path)
	stopped := d.stopped
	d.mu.Unlock()

	if stopped {
		return
	}

	// A full queue must not pin the timer goroutine forever; the dropped
	// recompute is recovered by the next change notification.
	ctx, cancel := context.WithTimeout(context.Background(), d.enqTimeout)
	defer cancel()

	if err := d.enq.Enqueue(ctx, path); err != nil {
		d.logger.Error("recompute dropped", "path", path, "err", err)
	}
}

// Stop cancels every pending job. The debouncer accepts no notifications
// afterwards.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	for path, t := range d.pending {
		t.Stop()
		delete(d.pending, path)
	}
}
