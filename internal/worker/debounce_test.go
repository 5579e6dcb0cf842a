package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"diff-annotator/internal/observability"
)

type recordingEnqueuer struct {
	mu    sync.Mutex
	paths []string
}

func (r *recordingEnqueuer) Enqueue(ctx context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	return nil
}

func (r *recordingEnqueuer) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func TestDebouncer_CoalescesBursts(t *testing.T) {
	enq := &recordingEnqueuer{}
	d := NewDebouncer(20*time.Millisecond, enq, observability.NewLogger("error"))
	defer d.Stop()

	for i := 0; i < 10; i++ {
		d.Notify("main.go")
		time.Sleep(time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return len(enq.snapshot()) == 1
	}, time.Second, 5*time.Millisecond, "a burst of edits must yield one job")

	time.Sleep(50 * time.Millisecond)
	require.Equal(t, []string{"main.go"}, enq.snapshot())
}

func TestDebouncer_IndependentPerPath(t *testing.T) {
	enq := &recordingEnqueuer{}
	d := NewDebouncer(10*time.Millisecond, enq, observability.NewLogger("error"))
	defer d.Stop()

	d.Notify("a.go")
	d.Notify("b.go")

	require.Eventually(t, func() bool {
		return len(enq.snapshot()) == 2
	}, time.Second, 5*time.Millisecond)

	got := enq.snapshot()
	require.ElementsMatch(t, []string{"a.go", "b.go"}, got)
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	enq := &recordingEnqueuer{}
	d := NewDebouncer(20*time.Millisecond, enq, observability.NewLogger("error"))

	d.Notify("main.go")
	d.Stop()

	time.Sleep(50 * time.Millisecond)
	require.Empty(t, enq.snapshot())

	// Notifications after Stop are ignored.
	d.Notify("main.go")
	time.Sleep(50 * time.Millisecond)
	require.Empty(t, enq.snapshot())
}

type blockedEnqueuer struct {
	mu   sync.Mutex
	errs []error
}

func (b *blockedEnqueuer) Enqueue(ctx context.Context, path string) error {
	<-ctx.Done()
	b.mu.Lock()
	defer b.mu.Unlock()
	b.errs = append(b.errs, ctx.Err())
	return ctx.Err()
}

func TestDebouncer_FullQueueDoesNotPinTimer(t *testing.T) {
	enq := &blockedEnqueuer{}
	d := NewDebouncer(5*time.Millisecond, enq, observability.NewLogger("error"))
	d.enqTimeout = 20 * time.Millisecond
	defer d.Stop()

	d.Notify("main.go")

	// The enqueue blocks until its context expires; the timer goroutine must
	// come back instead of waiting on the queue forever.
	require.Eventually(t, func() bool {
		enq.mu.Lock()
		defer enq.mu.Unlock()
		return len(enq.errs) == 1 && errors.Is(enq.errs[0], context.DeadlineExceeded)
	}, time.Second, 5*time.Millisecond, "a blocked enqueue must give up after the timeout")
}

func TestMemoryQueue_PushPop(t *testing.T) {
	q := NewMemoryQueue(1)

	require.NoError(t, q.Push(context.Background(), Job{Path: "x.go"}))

	j, err := q.Pop(context.Background())
	require.NoError(t, err)
	require.Equal(t, "x.go", j.Path)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = q.Pop(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded, "empty queue pop must surface the context error")
}
