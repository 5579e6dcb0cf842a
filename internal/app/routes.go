package app

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) routes() http.Handler {

	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.health)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/refresh", s.refresh)
	mux.HandleFunc("/annotations", s.annotations)

	return mux
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// refresh registers a document-change notification; the actual recompute runs
// after the debounce window settles.
func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "missing path", http.StatusBadRequest)
		return
	}

	s.debouncer.Notify(path)
	w.WriteHeader(http.StatusAccepted)
}

// annotations serves the bundle last applied for a file, or 204 when there is
// nothing to draw.
func (s *Server) annotations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "missing path", http.StatusBadRequest)
		return
	}

	bundle := s.manager.Snapshot(path)
	if bundle == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(bundle); err != nil {
		s.logger.Error("encode annotations failed", "path", path, "err", err)
	}
}
