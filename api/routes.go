package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes registers the public REST surface
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/health", handlers.healthHandler.getHealth())

	r.Route("/projects", func(r chi.Router) {
		r.Post("/", handlers.projectHandler.createProject())
		r.Get("/", handlers.projectHandler.getAllProjects())
		r.Get("/featured", handlers.projectHandler.getFeaturedProjects())
		r.Get("/by-language/{languageCode}", handlers.projectHandler.getProjectsByLanguage())
		r.Patch("/reorder/{languageId}", handlers.projectHandler.reorderProjects())
		r.Get("/{id}", handlers.projectHandler.getProject())
		r.Patch("/{id}", handlers.projectHandler.updateProject())
		r.Delete("/{id}", handlers.projectHandler.deleteProject())
		r.Patch("/{id}/toggle-featured", handlers.projectHandler.toggleFeatured())
	})

	r.Route("/languages", func(r chi.Router) {
		r.Get("/", handlers.languageHandler.getLanguages())
		r.Get("/{code}", handlers.languageHandler.getLanguage())
	})
}
