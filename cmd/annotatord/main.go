package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"diff-annotator/internal/annotate"
	"diff-annotator/internal/app"
	"diff-annotator/internal/config"
	"diff-annotator/internal/dedup"
	"diff-annotator/internal/diff"
	"diff-annotator/internal/git"
	"diff-annotator/internal/observability"
	"diff-annotator/internal/ratelimit"
	"diff-annotator/internal/render"
	"diff-annotator/internal/worker"
)

func main() {

	once := flag.String("once", "", "annotate one file to stdout and exit")
	width := flag.Int("width", 0, "max display width for -once output (0 = unlimited)")
	flag.Parse()

	cfg := config.Load()
	logger := observability.NewLogger(cfg.LogLevel)

	gitClient := git.NewBreaker(git.NewClient(cfg, logger))

	if *once != "" {
		if err := annotateOnce(cfg, gitClient, *once, *width); err != nil {
			fmt.Fprintf(os.Stderr, "annotate %s: %v\n", *once, err)
			os.Exit(1)
		}
		return
	}

	observability.InitMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	manager := render.NewManager(render.Noop{}, logger)

	queue := worker.NewQueue(cfg)
	debouncer := worker.NewDebouncer(cfg.Debounce(), worker.NewAdapter(queue), logger)
	defer debouncer.Stop()

	processor := worker.NewProcessor(
		queue,
		gitClient,
		manager,
		dedup.NewMemory(),
		logger,
		ratelimit.New(cfg.GitRPS, cfg.GitBurst),
		cfg.RepoDir,
	)
	processor.Start(ctx)

	server := app.NewServer(cfg, logger, debouncer, manager)
	if err := server.Start(ctx); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

// annotateOnce runs the pipeline a single time and paints the annotated file
// to stdout.
func annotateOnce(cfg *config.Config, gitClient git.Client, path string, width int) error {

	ctx := context.Background()

	modified, err := gitClient.IsModified(ctx, path)
	if err != nil {
		return err
	}
	if !modified {
		fmt.Printf("%s: no changes\n", path)
		return nil
	}

	diffText, err := gitClient.DiffFile(ctx, path)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(filepath.Join(cfg.RepoDir, path))
	if err != nil {
		return err
	}

	var lines []string
	if text := strings.TrimSuffix(string(raw), "\n"); text != "" {
		lines = strings.Split(text, "\n")
	}

	hunks := diff.Parse(diffText)
	bundle := annotate.Project(hunks, len(lines), func(i int) string { return lines[i] })

	terminal := render.NewTerminal(render.ThemeFromConfig(cfg), width)
	fmt.Print(terminal.Render(lines, bundle))
	return nil
}
