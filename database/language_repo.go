package database

import (
	"context"
	"errors"

	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type LanguageRepo struct {
	db *gorm.DB
}

func NewLanguageRepo(db *gorm.DB) *LanguageRepo {
	return &LanguageRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *LanguageRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns the languages with the default one first, then by code
func (r *LanguageRepo) FindAll(ctx context.Context, activeOnly bool) ([]*models.Language, error) {
	var languages []*models.Language
	query := r.db.WithContext(ctx).Order("is_default DESC").Order("code ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&languages).Error
	return languages, err
}

// FindByCode returns nil when no language uses the code
func (r *LanguageRepo) FindByCode(ctx context.Context, code string) (*models.Language, error) {
	var language models.Language
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&language).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &language, nil
}

// Exists reports whether a language row has the id
func (r *LanguageRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Language{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
