package database

import (
	"context"
	"errors"
	"time"

	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

// ProjectFilter narrows a project listing. Zero values mean no restriction.
type ProjectFilter struct {
	LanguageID   uint
	LanguageCode string
	FeaturedOnly bool
}

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ProjectRepo) GetDB() *gorm.DB {
	return r.db
}

func orderedTechnologies(db *gorm.DB) *gorm.DB {
	return db.Order("project_technologies.order_index ASC").Order("project_technologies.id ASC")
}

// FindAll returns the projects matching the filter, sorted by order index
func (r *ProjectRepo) FindAll(ctx context.Context, filter ProjectFilter) ([]*models.Project, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Preload("Technologies", orderedTechnologies)

	if filter.LanguageCode != "" {
		query = query.
			Joins("JOIN languages ON languages.id = projects.language_id").
			Where("languages.code = ?", filter.LanguageCode)
	}
	if filter.LanguageID != 0 {
		query = query.Where("projects.language_id = ?", filter.LanguageID)
	}
	if filter.FeaturedOnly {
		query = query.Where("projects.featured = ?", true)
	}

	var projects []*models.Project
	err := query.
		Order("projects.order_index ASC").
		Order("projects.id ASC").
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project with its technologies, or nil when the id is unknown
func (r *ProjectRepo) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Preload("Technologies", orderedTechnologies).
		First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Exists reports whether a project row has the id
func (r *ProjectRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Add inserts a project and its technologies in one transaction
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project, technologies []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Technologies", "Language").Create(project).Error; err != nil {
			return err
		}
		return NewProjectTechnologyRepo(tx).Add(ctx, project.ID, technologies)
	})
}

// Update applies the column changes and, when technologies is non-nil, replaces the technology set.
// Column keys are database column names.
func (r *ProjectRepo) Update(ctx context.Context, id uint, columns map[string]interface{}, technologies *[]string) error {
	if len(columns) == 0 && technologies == nil {
		return nil
	}
	if len(columns) == 0 {
		columns = map[string]interface{}{"updated_at": time.Now()}
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Project{ID: id}).Updates(columns).Error; err != nil {
			return err
		}
		if technologies == nil {
			return nil
		}
		return NewProjectTechnologyRepo(tx).Replace(ctx, id, *technologies)
	})
}

// SetFeatured stores the featured flag of a project
func (r *ProjectRepo) SetFeatured(ctx context.Context, id uint, featured bool) error {
	return r.db.WithContext(ctx).Model(&models.Project{ID: id}).Update("featured", featured).Error
}

// SetOrderIndex moves a project within its language. Rows of other languages are left alone.
func (r *ProjectRepo) SetOrderIndex(ctx context.Context, id, languageID uint, orderIndex int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ? AND language_id = ?", id, languageID).
		Update("order_index", orderIndex)
	return result.RowsAffected, result.Error
}

// Delete removes a project by id together with its technologies
func (r *ProjectRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := NewProjectTechnologyRepo(tx).DeleteByProject(ctx, id); err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}
