package services

import (
	"context"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ProjectService struct {
	projectRepo  *database.ProjectRepo
	languageRepo *database.LanguageRepo
	logger       zerolog.Logger
}

func NewProjectService(projectRepo *database.ProjectRepo, languageRepo *database.LanguageRepo) *ProjectService {
	return &ProjectService{
		projectRepo:  projectRepo,
		languageRepo: languageRepo,
		logger:       log.With().Str("service", "projects").Logger(),
	}
}

func (s *ProjectService) ensureLanguage(ctx context.Context, languageID uint) error {
	exists, err := s.languageRepo.Exists(ctx, languageID)
	if err != nil {
		return errs.NewDatabaseError("find", "language", err)
	}
	if !exists {
		return errs.NewUnknownLanguageError(languageID)
	}
	return nil
}

func (s *ProjectService) ensureProject(ctx context.Context, id uint) error {
	exists, err := s.projectRepo.Exists(ctx, id)
	if err != nil {
		return errs.NewDatabaseError("find", "project", err)
	}
	if !exists {
		return errs.NewProjectNotFound(id)
	}
	return nil
}

// Create stores a project and its technologies, then returns the stored version
func (s *ProjectService) Create(ctx context.Context, req CreateProjectRequest) (*ProjectResponse, error) {
	if err := s.ensureLanguage(ctx, req.LanguageID); err != nil {
		return nil, err
	}

	project := models.Project{
		LanguageID:  req.LanguageID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		DemoLink:    req.DemoLink,
		CodeLink:    req.CodeLink,
		Featured:    boolOr(req.Featured, false),
		ShowDemo:    boolOr(req.ShowDemo, true),
		ShowCode:    boolOr(req.ShowCode, true),
	}
	if req.OrderIndex != nil {
		project.OrderIndex = *req.OrderIndex
	}

	if err := s.projectRepo.Add(ctx, &project, req.Technologies); err != nil {
		return nil, errs.NewDatabaseError("create", "project", err)
	}

	s.logger.Info().
		Uint("projectID", project.ID).
		Int("technologies", len(req.Technologies)).
		Msg("Project created")

	return s.FindOne(ctx, project.ID)
}

// FindAll lists projects by order index. A zero languageID lists every language.
func (s *ProjectService) FindAll(ctx context.Context, languageID uint) ([]ProjectResponse, error) {
	projects, err := s.projectRepo.FindAll(ctx, database.ProjectFilter{LanguageID: languageID})
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	return newProjectResponses(projects), nil
}

// FindFeatured is FindAll restricted to featured projects
func (s *ProjectService) FindFeatured(ctx context.Context, languageID uint) ([]ProjectResponse, error) {
	projects, err := s.projectRepo.FindAll(ctx, database.ProjectFilter{LanguageID: languageID, FeaturedOnly: true})
	if err != nil {
		return nil, errs.NewDatabaseError("find", "featured projects", err)
	}
	return newProjectResponses(projects), nil
}

// FindByLanguage returns every project of the language with the given code.
// An unknown code yields an empty list.
func (s *ProjectService) FindByLanguage(ctx context.Context, languageCode string) (*ProjectsListResponse, error) {
	projects, err := s.projectRepo.FindAll(ctx, database.ProjectFilter{LanguageCode: languageCode})
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	return &ProjectsListResponse{FeaturedProjects: newProjectResponses(projects)}, nil
}

func (s *ProjectService) FindOne(ctx context.Context, id uint) (*ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	if project == nil {
		return nil, errs.NewProjectNotFound(id)
	}

	response := newProjectResponse(project)
	return &response, nil
}

// Update applies a partial change. A present technologies list replaces the whole set.
func (s *ProjectService) Update(ctx context.Context, id uint, req UpdateProjectRequest) (*ProjectResponse, error) {
	if err := s.ensureProject(ctx, id); err != nil {
		return nil, err
	}
	if req.LanguageID != nil {
		if err := s.ensureLanguage(ctx, *req.LanguageID); err != nil {
			return nil, err
		}
	}

	if err := s.projectRepo.Update(ctx, id, req.columns(), req.Technologies); err != nil {
		return nil, errs.NewDatabaseError("update", "project", err)
	}

	return s.FindOne(ctx, id)
}

func (s *ProjectService) Remove(ctx context.Context, id uint) error {
	if err := s.ensureProject(ctx, id); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return errs.NewDatabaseError("delete", "project", err)
	}

	s.logger.Info().Uint("projectID", id).Msg("Project deleted")
	return nil
}

// ToggleFeatured flips the featured flag and returns the updated project
func (s *ProjectService) ToggleFeatured(ctx context.Context, id uint) (*ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	if project == nil {
		return nil, errs.NewProjectNotFound(id)
	}

	if err := s.projectRepo.SetFeatured(ctx, id, !project.Featured); err != nil {
		return nil, errs.NewDatabaseError("update", "project", err)
	}

	return s.FindOne(ctx, id)
}

// ReorderProjects gives each listed project its position as order index.
// Ids that are unknown or belong to another language are skipped.
func (s *ProjectService) ReorderProjects(ctx context.Context, languageID uint, projectIDs []uint) ([]ProjectResponse, error) {
	skipped := 0
	for i, id := range projectIDs {
		affected, err := s.projectRepo.SetOrderIndex(ctx, id, languageID, i)
		if err != nil {
			return nil, errs.NewDatabaseError("reorder", "project", err)
		}
		if affected == 0 {
			skipped++
		}
	}

	s.logger.Debug().
		Uint("languageID", languageID).
		Int("requested", len(projectIDs)).
		Int("skipped", skipped).
		Msg("Projects reordered")

	return s.FindAll(ctx, languageID)
}
