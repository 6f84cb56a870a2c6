// Package server exposes the grid engine over HTTP: guide line geometry as
// JSON, rendered previews and exports as PNG, and recorded draw commands
// for canvas clients.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"vantage/internal/config"
)

type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	router *mux.Router
}

func New(cfg *config.Config, logger *slog.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
		router: mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.recovery)
	r.Use(requestID)
	r.Use(s.logRequests)

	r.HandleFunc("/healthz", s.handleHealth).Methods("GET")

	// Registered on the root router so a wrong method answers 405.
	r.HandleFunc("/v1/lines", s.handleLines).Methods("POST")
	r.HandleFunc("/v1/render", s.handleRender).Methods("POST")
	r.HandleFunc("/v1/export", s.handleExport).Methods("POST")
	r.HandleFunc("/v1/commands", s.handleCommands).Methods("POST")
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on the configured address until ctx is done, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
