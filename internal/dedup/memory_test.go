package dedup

import (
	"context"
	"testing"
	"time"
)

func TestMemory_UnchangedOnlyForRememberedHash(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	if store.Unchanged(ctx, "f.go", "h1") {
		t.Fatalf("nothing remembered yet")
	}

	_ = store.Remember(ctx, "f.go", "h1")
	if !store.Unchanged(ctx, "f.go", "h1") {
		t.Fatalf("expected remembered hash to match")
	}
	if store.Unchanged(ctx, "f.go", "h2") {
		t.Fatalf("a different hash is a change")
	}
}

func TestMemory_RememberReplacesPreviousHash(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	_ = store.Remember(ctx, "f.go", "state-a")
	_ = store.Remember(ctx, "f.go", "state-b")

	// Reverting to the first state must read as changed again.
	if store.Unchanged(ctx, "f.go", "state-a") {
		t.Fatalf("expected old hash to be superseded")
	}
	if !store.Unchanged(ctx, "f.go", "state-b") {
		t.Fatalf("expected latest hash to match")
	}
}

func TestMemory_ForgetClearsEntry(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	_ = store.Remember(ctx, "f.go", "h1")
	_ = store.Forget(ctx, "f.go")

	if store.Unchanged(ctx, "f.go", "h1") {
		t.Fatalf("expected forgotten path to read as changed")
	}
}

func TestMemory_EvictsWhenMaxEntriesExceeded(t *testing.T) {
	store := NewMemory()
	store.maxEntries = 2
	store.ttl = time.Hour

	ctx := context.Background()
	_ = store.Remember(ctx, "k1.go", "h")
	_ = store.Remember(ctx, "k2.go", "h")
	_ = store.Remember(ctx, "k3.go", "h")

	if store.Unchanged(ctx, "k1.go", "h") {
		t.Fatalf("expected oldest path to be evicted")
	}
	if !store.Unchanged(ctx, "k2.go", "h") || !store.Unchanged(ctx, "k3.go", "h") {
		t.Fatalf("expected newer paths to stay")
	}
}

func TestMemory_ExpiresEntriesByTTL(t *testing.T) {
	store := NewMemory()
	store.ttl = 5 * time.Millisecond

	ctx := context.Background()
	_ = store.Remember(ctx, "expiring.go", "h")
	time.Sleep(10 * time.Millisecond)

	if store.Unchanged(ctx, "expiring.go", "h") {
		t.Fatalf("expected entry to expire after ttl")
	}
}

func TestMemory_ReRememberDoesNotDuplicateOrder(t *testing.T) {
	store := NewMemory()
	store.maxEntries = 2

	ctx := context.Background()
	_ = store.Remember(ctx, "k1.go", "h1")
	_ = store.Remember(ctx, "k1.go", "h2")
	_ = store.Remember(ctx, "k2.go", "h")

	if !store.Unchanged(ctx, "k1.go", "h2") || !store.Unchanged(ctx, "k2.go", "h") {
		t.Fatalf("expected both paths to remain")
	}
}
