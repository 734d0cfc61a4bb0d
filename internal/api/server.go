// Package api exposes the prioritization engine over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/QTest-hq/autoprio/internal/backlog"
	"github.com/QTest-hq/autoprio/internal/config"
	"github.com/QTest-hq/autoprio/internal/render"
)

// Server represents the API server
type Server struct {
	cfg       *config.Config
	repo      *backlog.Repository
	renderers *render.Registry
	router    *chi.Mux
}

// NewServer creates a new API server around a repository
func NewServer(cfg *config.Config, repo *backlog.Repository) (*Server, error) {
	s := &Server{
		cfg:       cfg,
		repo:      repo,
		renderers: render.NewRegistry(),
		router:    chi.NewRouter(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// Router returns the HTTP router
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.Get("/health", s.healthCheck)
	s.router.Get("/ready", s.readyCheck)

	// API v1
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Route("/tests", func(r chi.Router) {
			r.Get("/", s.listTests)
			r.Get("/sorted", s.listTests)
			r.Post("/", s.createTest)
			r.Delete("/", s.deleteAllTests)
			r.Get("/{testID}", s.getTest)
			r.Put("/{testID}", s.updateTest)
			r.Delete("/{testID}", s.deleteTest)
		})

		r.Get("/tiers", s.getTiers)
		r.Get("/sections", s.getSections)
		r.Get("/catalog", s.getCatalog)
		r.Get("/guide", s.getGuide)
		r.Get("/report", s.getReport)
		r.Post("/import", s.importTests)
	})
}

// Health check handlers
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) readyCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
