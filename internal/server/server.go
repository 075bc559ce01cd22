// Package server wires configuration, the database handle and the HTTP
// handlers into one application value that is built once at startup.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/mtlprog/goodwill/internal/config"
	"github.com/mtlprog/goodwill/internal/database"
	"github.com/mtlprog/goodwill/internal/handler"
	"github.com/mtlprog/goodwill/internal/middleware"
	"github.com/mtlprog/goodwill/internal/repository"
	"github.com/mtlprog/goodwill/internal/service"
)

// Server is the application context: everything a request needs is reachable from it.
type Server struct {
	config config.Config
	db     *database.DB
	router *chi.Mux
}

// New builds the router for cfg on top of db. db may still be connecting.
func New(cfg config.Config, db *database.DB) *Server {
	s := &Server{
		config: cfg,
		db:     db,
		router: chi.NewRouter(),
	}

	s.setupMiddleware()
	s.registerRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(chimw.RequestID)
	s.router.Use(middleware.RequestLogger)
	s.router.Use(chimw.Recoverer)
	s.router.Use(middleware.Metrics)
	s.router.Use(middleware.CORS)
	s.router.Use(middleware.RateLimit(s.config.RateLimit, s.config.RateBurst))
	s.router.Use(middleware.JSONBody(config.MaxBodyBytes))
}

func (s *Server) registerRoutes() {
	valuations := service.NewValuationService(repository.NewValuationRepository(s.db))
	handler.New(s.db, valuations).RegisterRoutes(s.router)
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen binds the configured port.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.config.Addr())
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", s.config.Addr(), err)
	}
	return ln, nil
}

// Start binds the configured port and serves until ctx is cancelled.
// A bind failure is returned immediately.
func (s *Server) Start(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within config.ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go s.ensureIndexes(ctx)

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server listening", "port", listenPort(ln), "addr", ln.Addr().String())
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// ensureIndexes creates the collection indexes once the database is reachable.
// A failed connection has already been logged by the database handle.
func (s *Server) ensureIndexes(ctx context.Context) {
	mdb, err := s.db.Wait(ctx)
	if err != nil {
		return
	}

	if err := database.EnsureIndexes(ctx, mdb); err != nil {
		slog.Warn("failed to ensure indexes", "error", err)
	}
}

func listenPort(ln net.Listener) int {
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}
