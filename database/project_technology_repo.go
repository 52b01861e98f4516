package database

import (
	"context"

	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type ProjectTechnologyRepo struct {
	db *gorm.DB
}

func NewProjectTechnologyRepo(db *gorm.DB) *ProjectTechnologyRepo {
	return &ProjectTechnologyRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ProjectTechnologyRepo) GetDB() *gorm.DB {
	return r.db
}

// FindByProject returns a project's technologies in display order
func (r *ProjectTechnologyRepo) FindByProject(ctx context.Context, projectID uint) ([]*models.ProjectTechnology, error) {
	var technologies []*models.ProjectTechnology
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("order_index ASC").
		Order("id ASC").
		Find(&technologies).Error
	return technologies, err
}

// Add inserts the technologies in the given order
func (r *ProjectTechnologyRepo) Add(ctx context.Context, projectID uint, technologies []string) error {
	if len(technologies) == 0 {
		return nil
	}
	rows := models.NewProjectTechnologies(projectID, technologies)
	return r.db.WithContext(ctx).Create(&rows).Error
}

// DeleteByProject removes every technology of a project
func (r *ProjectTechnologyRepo) DeleteByProject(ctx context.Context, projectID uint) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&models.ProjectTechnology{}).Error
}

// Replace swaps the whole technology set of a project
func (r *ProjectTechnologyRepo) Replace(ctx context.Context, projectID uint, technologies []string) error {
	if err := r.DeleteByProject(ctx, projectID); err != nil {
		return err
	}
	return r.Add(ctx, projectID, technologies)
}
