package services

import (
	"time"

	"github.com/rpupo63/portfolio-backend/models"
)

// CreateProjectRequest is the body of POST /projects
type CreateProjectRequest struct {
	LanguageID   uint     `json:"languageId" validate:"required"`
	Title        string   `json:"title" validate:"required,max=200"`
	Description  string   `json:"description" validate:"required"`
	ImageURL     *string  `json:"imageUrl,omitempty" validate:"omitempty,max=500"`
	DemoLink     *string  `json:"demoLink,omitempty" validate:"omitempty,max=500"`
	CodeLink     *string  `json:"codeLink,omitempty" validate:"omitempty,max=500"`
	Featured     *bool    `json:"featured,omitempty"`
	ShowDemo     *bool    `json:"showDemo,omitempty"`
	ShowCode     *bool    `json:"showCode,omitempty"`
	OrderIndex   *int     `json:"orderIndex,omitempty"`
	Technologies []string `json:"technologies" validate:"required,dive,required,max=100"`
}

// UpdateProjectRequest is the body of PATCH /projects/{id}. Nil fields are left unchanged.
type UpdateProjectRequest struct {
	LanguageID   *uint     `json:"languageId,omitempty" validate:"omitempty,min=1"`
	Title        *string   `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description  *string   `json:"description,omitempty" validate:"omitempty,min=1"`
	ImageURL     *string   `json:"imageUrl,omitempty" validate:"omitempty,max=500"`
	DemoLink     *string   `json:"demoLink,omitempty" validate:"omitempty,max=500"`
	CodeLink     *string   `json:"codeLink,omitempty" validate:"omitempty,max=500"`
	Featured     *bool     `json:"featured,omitempty"`
	ShowDemo     *bool     `json:"showDemo,omitempty"`
	ShowCode     *bool     `json:"showCode,omitempty"`
	OrderIndex   *int      `json:"orderIndex,omitempty"`
	Technologies *[]string `json:"technologies,omitempty" validate:"omitempty,dive,required,max=100"`
}

// ReorderProjectsRequest is the body of PATCH /projects/reorder/{languageId}
type ReorderProjectsRequest struct {
	ProjectIDs []uint `json:"projectIds" validate:"required"`
}

// columns maps the present fields onto database column names
func (r UpdateProjectRequest) columns() map[string]interface{} {
	columns := make(map[string]interface{})
	if r.LanguageID != nil {
		columns["language_id"] = *r.LanguageID
	}
	if r.Title != nil {
		columns["title"] = *r.Title
	}
	if r.Description != nil {
		columns["description"] = *r.Description
	}
	if r.ImageURL != nil {
		columns["image_url"] = *r.ImageURL
	}
	if r.DemoLink != nil {
		columns["demo_link"] = *r.DemoLink
	}
	if r.CodeLink != nil {
		columns["code_link"] = *r.CodeLink
	}
	if r.Featured != nil {
		columns["featured"] = *r.Featured
	}
	if r.ShowDemo != nil {
		columns["show_demo"] = *r.ShowDemo
	}
	if r.ShowCode != nil {
		columns["show_code"] = *r.ShowCode
	}
	if r.OrderIndex != nil {
		columns["order_index"] = *r.OrderIndex
	}
	return columns
}

// ProjectResponse is a project with its technologies flattened to labels
type ProjectResponse struct {
	ID           uint      `json:"id"`
	LanguageID   uint      `json:"languageId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     *string   `json:"imageUrl"`
	DemoLink     *string   `json:"demoLink"`
	CodeLink     *string   `json:"codeLink"`
	Featured     bool      `json:"featured"`
	ShowDemo     bool      `json:"showDemo"`
	ShowCode     bool      `json:"showCode"`
	OrderIndex   int       `json:"orderIndex"`
	Technologies []string  `json:"technologies"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProjectsListResponse wraps the projects of one language for the site frontend
type ProjectsListResponse struct {
	FeaturedProjects []ProjectResponse `json:"featuredProjects"`
}

func newProjectResponse(p *models.Project) ProjectResponse {
	return ProjectResponse{
		ID:           p.ID,
		LanguageID:   p.LanguageID,
		Title:        p.Title,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		DemoLink:     p.DemoLink,
		CodeLink:     p.CodeLink,
		Featured:     p.Featured,
		ShowDemo:     p.ShowDemo,
		ShowCode:     p.ShowCode,
		OrderIndex:   p.OrderIndex,
		Technologies: p.TechnologyNames(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func newProjectResponses(projects []*models.Project) []ProjectResponse {
	responses := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, newProjectResponse(p))
	}
	return responses
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
