package worker

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"diff-annotator/internal/annotate"
	"diff-annotator/internal/dedup"
	"diff-annotator/internal/diff"
	"diff-annotator/internal/git"
	"diff-annotator/internal/observability"
	"diff-annotator/internal/ratelimit"
	"diff-annotator/internal/render"
)

// Processor drains the queue and runs the full pipeline per job: modified
// check, diff fetch, parse, project against the live file, apply. Every
// failure is logged and skipped; one broken file never stops the loop.
type Processor struct {
	queue       Queue
	git         git.Client
	manager     *render.Manager
	dedup       dedup.Store
	logger      *observability.Logger
	rateLimiter *ratelimit.Limiter
	repoDir     string
	readFile    func(string) ([]byte, error)
	popBackoff  time.Duration
}

func NewProcessor(
	q Queue,
	g git.Client,
	m *render.Manager,
	d dedup.Store,
	l *observability.Logger,
	rl *ratelimit.Limiter,
	repoDir string,
) *Processor {

	return &Processor{
		queue:       q,
		git:         g,
		manager:     m,
		dedup:       d,
		logger:      l,
		rateLimiter: rl,
		repoDir:     repoDir,
		readFile:    os.ReadFile,
		popBackoff:  250 * time.Millisecond,
	}
}

func (p *Processor) Start(ctx context.Context) {

	go func() {
		for {
			job, err := p.queue.Pop(ctx)
			if err != nil {
				if errors.Is(ctx.Err(), context.Canceled) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
					return
				}
				// An unreachable queue backend fails fast; pace the loop
				// instead of spinning on it.
				select {
				case <-ctx.Done():
					return
				case <-time.After(p.popBackoff):
				}
				continue
			}

			p.handle(ctx, job)
		}
	}()
}

func (p *Processor) handle(parent context.Context, j Job) {

	ctx, cancel := context.WithTimeout(parent, 30*time.Second)
	defer cancel()

	started := time.Now()

	if err := p.rateLimiter.Get(j.Path).Wait(ctx); err != nil {
		p.logger.Error("rate limiter error", "path", j.Path, "err", err)
		return
	}

	modified, err := p.git.IsModified(ctx, j.Path)
	if err != nil {
		observability.Recomputes.WithLabelValues("git_error").Inc()
		p.logger.Error("modified check failed", "path", j.Path, "err", err)
		return
	}
	if !modified {
		observability.Recomputes.WithLabelValues("clean").Inc()
		p.manager.Clear(j.Path)
		_ = p.dedup.Forget(ctx, j.Path)
		return
	}

	diffText, err := p.git.DiffFile(ctx, j.Path)
	if err != nil {
		observability.Recomputes.WithLabelValues("git_error").Inc()
		p.logger.Error("diff fetch failed", "path", j.Path, "err", err)
		return
	}
	if diffText == "" {
		observability.Recomputes.WithLabelValues("clean").Inc()
		p.manager.Clear(j.Path)
		_ = p.dedup.Forget(ctx, j.Path)
		return
	}

	lines, err := p.documentLines(j.Path)
	if err != nil {
		p.logger.Error("document read failed", "path", j.Path, "err", err)
		return
	}

	// Same diff against the same buffer as the applied bundle: nothing to
	// redo. Any other hash, including a revert to an earlier state, goes
	// through the full apply.
	digest := hash(diffText + "\x00" + strings.Join(lines, "\n"))
	if p.dedup.Unchanged(ctx, j.Path, digest) {
		observability.Recomputes.WithLabelValues("deduped").Inc()
		return
	}

	hunks := diff.Parse(diffText)
	observability.ParsedHunks.Add(float64(len(hunks)))

	bundle := annotate.Project(hunks, len(lines), func(i int) string { return lines[i] })

	observability.Annotations.WithLabelValues("added_line").Add(float64(len(bundle.AddedLines)))
	observability.Annotations.WithLabelValues("modified_line").Add(float64(len(bundle.ModifiedLines)))
	observability.Annotations.WithLabelValues("inserted_text").Add(float64(len(bundle.InsertedText)))
	observability.Annotations.WithLabelValues("deleted_text").Add(float64(len(bundle.DeletedText)))
	observability.Annotations.WithLabelValues("deleted_line_ghost").Add(float64(len(bundle.DeletedLineGhosts)))

	if err := p.manager.Apply(j.Path, bundle); err != nil {
		p.logger.Error("apply failed", "path", j.Path, "err", err)
		return
	}

	_ = p.dedup.Remember(ctx, j.Path, digest)

	observability.Recomputes.WithLabelValues("applied").Inc()
	observability.RecomputeLatency.Observe(time.Since(started).Seconds())

	p.logger.Debug("annotations applied",
		"path", j.Path,
		"hunks", len(hunks),
		"ghosts", len(bundle.DeletedLineGhosts),
	)
}

// documentLines reads the live working-tree file as editor lines. A trailing
// newline does not count as an extra empty line.
func (p *Processor) documentLines(path string) ([]string, error) {

	raw, err := p.readFile(filepath.Join(p.repoDir, path))
	if err != nil {
		return nil, err
	}

	text := strings.TrimSuffix(string(raw), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

func hash(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
