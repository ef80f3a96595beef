// internal/server/server.go

// Package server exposes the workflow over HTTP: takeoff submission,
// validation, workflow lookup, listings, health, and metrics.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sow-engine/internal/common/config"
	"sow-engine/internal/common/logger"
	"sow-engine/internal/orchestrator"
	"sow-engine/internal/sow/templates"
	"sow-engine/internal/store"
	"sow-engine/internal/takeoff"
)

// Server holds the HTTP surface and its collaborators.
type Server struct {
	config       *config.Config
	logger       logger.Logger
	orchestrator *orchestrator.Orchestrator
	validator    *takeoff.Validator
	selector     *templates.Selector
	store        *store.Store
	router       chi.Router
}

func New(cfg *config.Config, log logger.Logger, o *orchestrator.Orchestrator,
	v *takeoff.Validator, sel *templates.Selector, st *store.Store) *Server {
	s := &Server{
		config:       cfg,
		logger:       log,
		orchestrator: o,
		validator:    v,
		selector:     sel,
		store:        st,
	}
	s.router = s.routes()
	return s
}

// Handler returns the fully wired HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Post("/submit-takeoff", s.handleSubmitTakeoff)
		r.Post("/validate-only", s.handleValidateOnly)
		r.Route("/assembly", func(r chi.Router) {
			r.Post("/derive-layers", s.handleDeriveLayers)
			r.Post("/compatibility", s.handleAssemblyCompatibility)
			r.Post("/validate", s.handleAssemblyValidate)
		})
		r.Get("/workflow/{workflowID}", s.handleGetWorkflow)
		r.Get("/projects", s.handleListProjects)
		r.Get("/generations", s.handleListGenerations)
		r.Get("/templates", s.handleListTemplates)
		r.Get("/health", s.handleHealth)
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
