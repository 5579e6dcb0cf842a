package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"diff-annotator/internal/config"
	"diff-annotator/internal/observability"
	"diff-annotator/internal/render"
	"diff-annotator/internal/worker"
)

// Server is the local surface an editor plugin talks to: it reports change
// notifications in and reads annotation snapshots out.
type Server struct {
	cfg       *config.Config
	logger    *observability.Logger
	debouncer *worker.Debouncer
	manager   *render.Manager
	http      *http.Server
}

func NewServer(
	cfg *config.Config,
	logger *observability.Logger,
	debouncer *worker.Debouncer,
	manager *render.Manager,
) *Server {

	s := &Server{
		cfg:       cfg,
		logger:    logger,
		debouncer: debouncer,
		manager:   manager,
	}

	s.http = &http.Server{
		Addr:         "127.0.0.1:" + cfg.Port,
		Handler:      s.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 20 * time.Second,
	}

	return s
}

func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.http.Shutdown(context.Background())
	}()

	s.logger.Info("starting server",
		"port", s.cfg.Port,
		"env", s.cfg.Env,
	)

	if err := s.http.ListenAndServe(); err != nil &&
		err != http.ErrServerClosed {
		return fmt.Errorf("listen: %w", err)
	}

	return nil
}
