// Package server exposes the solver over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridpath/internal/metrics"
	"github.com/katalvlaran/gridpath/internal/render"
	"github.com/katalvlaran/gridpath/solver"
)

// DefaultMaxCells bounds n² for a single request.
const DefaultMaxCells = 1 << 20

// Options configures a Server.
type Options struct {
	// MaxCells rejects requests whose grid has more cells.
	MaxCells int
	// ShutdownTimeout bounds graceful shutdown in Run.
	ShutdownTimeout time.Duration
}

// SolveRequest is the body of POST /solve.
type SolveRequest struct {
	N       int         `json:"n"`
	Start   solver.Cell `json:"start"`
	Goal    solver.Cell `json:"goal"`
	Blocked []int       `json:"blocked"`
	MaxLen  int         `json:"max_len"`
}

// Server routes solve requests and serves metrics.
type Server struct {
	logger  *slog.Logger
	metrics *metrics.Solver
	opts    Options
	mux     *http.ServeMux
}

// New builds a Server registering its collectors on reg.
func New(logger *slog.Logger, reg *prometheus.Registry, opts Options) (*Server, error) {
	if opts.MaxCells <= 0 {
		opts.MaxCells = DefaultMaxCells
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	m, err := metrics.NewSolver(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	s := &Server{logger: logger, metrics: m, opts: opts, mux: http.NewServeMux()}
	s.mux.HandleFunc("POST /solve", s.handleSolve)
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down", "addr", addr)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, int64(s.opts.MaxCells)*24+4096))
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if req.N > 0 && req.N > s.opts.MaxCells/req.N {
		s.writeError(w, http.StatusRequestEntityTooLarge, fmt.Errorf("grid %d×%d exceeds %d cells", req.N, req.N, s.opts.MaxCells))
		return
	}

	begin := time.Now()
	res, err := solver.Find(req.N, req.Start, req.Goal, req.Blocked, req.MaxLen)
	s.metrics.Observe(begin, res, err)

	body := render.NewPathJSON(req.N, req.Start, req.Goal, res, err)
	status := http.StatusOK
	switch solver.Reason(err) {
	case solver.FailureNone:
		s.logger.Debug("Solved", "n", req.N, "length", res.Len(), "expanded", res.Expanded)
	case solver.FailureInvalidInput:
		status = http.StatusBadRequest
	default:
		status = http.StatusUnprocessableEntity
	}
	if err != nil {
		s.logger.Debug("No path", "n", req.N, "reason", body.Failure, "error", err)
	}
	s.writeJSON(w, status, body)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := render.JSON(w, v); err != nil {
		s.logger.Warn("Failed to write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Debug("Rejected request", "status", status, "error", err)
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
