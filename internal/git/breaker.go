package git

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerClient stops invoking git for a cool-down window once it fails
// repeatedly (missing binary, not a repository, corrupt index). While the
// breaker is open, callers see an error and degrade to "no annotations".
type BreakerClient struct {
	inner Client
	cb    *gobreaker.CircuitBreaker
}

func NewBreaker(inner Client) *BreakerClient {

	settings := gobreaker.Settings{
		Name:        "git-client",
		MaxRequests: 3,
		Interval:    0,
		Timeout:     30 * time.Second,
	}

	return &BreakerClient{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker(settings),
	}
}

func (b *BreakerClient) DiffFile(ctx context.Context, path string) (string, error) {

	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.DiffFile(ctx, path)
	})

	if err != nil {
		return "", err
	}

	text, ok := out.(string)
	if !ok {
		return "", fmt.Errorf("unexpected circuit breaker response type")
	}

	return text, nil
}

func (b *BreakerClient) IsModified(ctx context.Context, path string) (bool, error) {

	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.IsModified(ctx, path)
	})

	if err != nil {
		return false, err
	}

	modified, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("unexpected circuit breaker response type")
	}

	return modified, nil
}
