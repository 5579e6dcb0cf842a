package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"diff-annotator/internal/config"
	"diff-annotator/internal/observability"
	"diff-annotator/internal/retry"
)

// runner executes one git invocation and returns stdout plus the exit code.
// It exists so tests can substitute canned process results.
type runner func(ctx context.Context, dir, bin string, args ...string) ([]byte, int, error)

type client struct {
	cfg    *config.Config
	logger *observability.Logger
	run    runner
}

func NewClient(cfg *config.Config, logger *observability.Logger) Client {
	return &client{
		cfg:    cfg,
		logger: logger,
		run:    execRun,
	}
}

// DiffFile returns the unified diff of the working tree against HEAD for one
// file. An untracked or unchanged file yields an empty string.
func (c *client) DiffFile(ctx context.Context, path string) (string, error) {

	var out []byte

	err := retry.Do(ctx, 3, 200*time.Millisecond, func() error {
		var code int
		var runErr error

		out, code, runErr = c.run(ctx, c.cfg.RepoDir, c.cfg.GitBinary,
			"diff", "--no-color", "--no-ext-diff", "--", path)

		if runErr != nil {
			c.logger.Debug("git diff attempt failed", "path", path, "err", runErr)
			return fmt.Errorf("git diff %s: %w", path, runErr)
		}
		if code != 0 {
			return fmt.Errorf("git diff %s: exit code %d", path, code)
		}
		return nil
	})

	if err != nil {
		observability.GitErrors.Inc()
		return "", err
	}

	return string(out), nil
}

// IsModified maps `git diff --quiet` exit codes: 0 means clean, 1 means the
// working tree differs from HEAD for this file.
func (c *client) IsModified(ctx context.Context, path string) (bool, error) {

	_, code, err := c.run(ctx, c.cfg.RepoDir, c.cfg.GitBinary,
		"diff", "--quiet", "--", path)

	if err != nil {
		observability.GitErrors.Inc()
		return false, fmt.Errorf("git diff --quiet %s: %w", path, err)
	}

	switch code {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		observability.GitErrors.Inc()
		return false, fmt.Errorf("git diff --quiet %s: exit code %d", path, code)
	}
}

func execRun(ctx context.Context, dir, bin string, args ...string) ([]byte, int, error) {

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// A non-zero exit is a result, not a process failure; callers
			// interpret the code.
			return out, exitErr.ExitCode(), nil
		}
		return nil, -1, err
	}

	return out, 0, nil
}
