package api

import (
	"time"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		projectHandler:  newProjectHandler(services.NewProjectService(database.ProjectRepo(), database.LanguageRepo())),
		languageHandler: newLanguageHandler(services.NewLanguageService(database.LanguageRepo())),
		healthHandler:   newHealthHandler(database, startupTime),
	}
}
