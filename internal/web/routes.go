package web

import (
	"github.com/go-chi/chi/v5"
	"github.com/kozaktomas/slideshow-builder/internal/web/handlers"
)

func (s *Server) setupRoutes() {
	slideshowHandler := handlers.NewSlideshowHandler(s.config)
	policiesHandler := handlers.NewPoliciesHandler(s.config)
	jobsHandler := handlers.NewJobsHandler(s.config, s.jobManager)

	s.router.Get("/api/v1/health", handlers.HealthCheck)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/policies", policiesHandler.List)
		r.Post("/slideshow", slideshowHandler.Build)

		r.Post("/jobs", jobsHandler.Create)
		r.Get("/jobs/{id}", jobsHandler.Get)
	})
}
