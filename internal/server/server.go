// Package server serves the dashboard page and the update endpoints it calls
// when a selector changes.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pfrederiksen/worldcup-dashboard/internal/dashboard"
	"github.com/pfrederiksen/worldcup-dashboard/internal/logger"
	"github.com/pfrederiksen/worldcup-dashboard/internal/metrics"
)

//go:embed templates/*.html
var templates embed.FS

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 15 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Server routes requests to the dashboard handlers
type Server struct {
	dash    *dashboard.Context
	logger  *logger.Logger
	metrics *metrics.Recorder
	page    *template.Template
	router  chi.Router
}

// New creates a Server over an already-loaded dashboard context
func New(dash *dashboard.Context, log *logger.Logger, rec *metrics.Recorder) (*Server, error) {
	page, err := template.ParseFS(templates, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	if log == nil {
		log = logger.Default()
	}
	if rec == nil {
		rec = metrics.NewRecorder()
	}

	s := &Server{
		dash:    dash,
		logger:  log,
		metrics: rec,
		page:    page,
		router:  chi.NewRouter(),
	}
	s.setupRoutes()

	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/", s.handlePage)
	s.router.Get("/health", s.handleHealth)
	s.router.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/map", s.handleMap)
		r.Get("/country", s.handleCountry)
		r.Get("/year", s.handleYear)
		r.Get("/finals", s.handleFinals)
	})
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on addr until ctx is canceled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server starting", logger.Fields{"addr": addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutdown signal received", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	s.logger.Info("shutdown complete", nil)
	return nil
}
