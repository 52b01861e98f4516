package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// projectService is the behaviour the project routes rely on
type projectService interface {
	Create(ctx context.Context, req services.CreateProjectRequest) (*services.ProjectResponse, error)
	FindAll(ctx context.Context, languageID uint) ([]services.ProjectResponse, error)
	FindFeatured(ctx context.Context, languageID uint) ([]services.ProjectResponse, error)
	FindByLanguage(ctx context.Context, languageCode string) (*services.ProjectsListResponse, error)
	FindOne(ctx context.Context, id uint) (*services.ProjectResponse, error)
	Update(ctx context.Context, id uint, req services.UpdateProjectRequest) (*services.ProjectResponse, error)
	Remove(ctx context.Context, id uint) error
	ToggleFeatured(ctx context.Context, id uint) (*services.ProjectResponse, error)
	ReorderProjects(ctx context.Context, languageID uint, projectIDs []uint) ([]services.ProjectResponse, error)
}

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   projectService
}

func newProjectHandler(service projectService) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

// createProject creates a new project
// @Summary Create project
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body services.CreateProjectRequest true "Project data"
// @Success 201 {object} services.ProjectResponse "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Router /projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req services.CreateProjectRequest
		if err := decodeAndValidate(w, r, h.logger, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.service.Create(r.Context(), req)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, project)
	}
}

// getAllProjects lists projects, optionally for one language
// @Summary Get all projects
// @Tags Projects
// @Produce json
// @Param languageId query int false "Language ID"
// @Success 200 {array} services.ProjectResponse
// @Router /projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		languageID, err := uintQueryParam(r, "languageId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		projects, err := h.service.FindAll(r.Context(), languageID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, projects)
	}
}

// getFeaturedProjects lists featured projects, optionally for one language
// @Summary Get featured projects
// @Tags Projects
// @Produce json
// @Param languageId query int false "Language ID"
// @Success 200 {array} services.ProjectResponse
// @Router /projects/featured [get]
func (h projectHandler) getFeaturedProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		languageID, err := uintQueryParam(r, "languageId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		projects, err := h.service.FindFeatured(r.Context(), languageID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, projects)
	}
}

// getProjectsByLanguage lists a language's projects in the shape the site frontend expects
// @Summary Get projects by language code
// @Tags Projects
// @Produce json
// @Param languageCode path string true "Language code (en, ru, de, tr, ua)"
// @Success 200 {object} services.ProjectsListResponse
// @Router /projects/by-language/{languageCode} [get]
func (h projectHandler) getProjectsByLanguage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		languageCode := chi.URLParam(r, "languageCode")

		projects, err := h.service.FindByLanguage(r.Context(), languageCode)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, projects)
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} services.ProjectResponse
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /projects/{id} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uintURLParam(r, "id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.service.FindOne(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, project)
	}
}

// updateProject patches an existing project
// @Summary Update project
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param project body services.UpdateProjectRequest true "Fields to change"
// @Success 200 {object} services.ProjectResponse
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /projects/{id} [patch]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uintURLParam(r, "id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req services.UpdateProjectRequest
		if err := decodeAndValidate(w, r, h.logger, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.service.Update(r.Context(), id, req)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, project)
	}
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Tags Projects
// @Param id path int true "Project ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /projects/{id} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uintURLParam(r, "id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.service.Remove(r.Context(), id); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteNoContent(w)
	}
}

// toggleFeatured flips the featured flag of a project
// @Summary Toggle featured status of project
// @Tags Projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} services.ProjectResponse
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /projects/{id}/toggle-featured [patch]
func (h projectHandler) toggleFeatured() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uintURLParam(r, "id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.service.ToggleFeatured(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, project)
	}
}

// reorderProjects assigns order indexes within a language from the position of each id
// @Summary Reorder projects for a specific language
// @Tags Projects
// @Accept json
// @Produce json
// @Param languageId path int true "Language ID"
// @Param body body ReorderProjectsBody true "Project ids in the desired order"
// @Success 200 {array} services.ProjectResponse
// @Router /projects/reorder/{languageId} [patch]
func (h projectHandler) reorderProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		languageID, err := uintURLParam(r, "languageId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req services.ReorderProjectsRequest
		if err := decodeAndValidate(w, r, h.logger, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		projects, err := h.service.ReorderProjects(r.Context(), languageID, req.ProjectIDs)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, projects)
	}
}
