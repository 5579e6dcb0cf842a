package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const pruneEvery = time.Minute

// Limiter gates how often the git collaborator may be invoked for any single
// file: a hot file drains only its own token bucket, so one rapidly edited
// buffer cannot starve recomputes for the rest of the workspace. Buckets for
// files that go quiet are pruned.
type Limiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	rps       rate.Limit
	burst     int
	idleTTL   time.Duration
	nextPrune time.Time
}

type bucket struct {
	tokens   *rate.Limiter
	lastSeen time.Time
}

func New(rps int, burst int) *Limiter {
	return &Limiter{
		buckets: make(map[string]*bucket),
		rps:     rate.Limit(rps),
		burst:   burst,
		idleTTL: 30 * time.Minute,
	}
}

// Get returns the token bucket for path, creating it on first use.
func (l *Limiter) Get(path string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.After(l.nextPrune) {
		l.pruneLocked(now)
		l.nextPrune = now.Add(pruneEvery)
	}

	b, ok := l.buckets[path]
	if !ok {
		b = &bucket{tokens: rate.NewLimiter(l.rps, l.burst)}
		l.buckets[path] = b
	}
	b.lastSeen = now

	return b.tokens
}

func (l *Limiter) pruneLocked(now time.Time) {
	for path, b := range l.buckets {
		if now.Sub(b.lastSeen) > l.idleTTL {
			delete(l.buckets, path)
		}
	}
}
