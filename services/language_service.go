package services

import (
	"context"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

type LanguageService struct {
	languageRepo *database.LanguageRepo
}

func NewLanguageService(languageRepo *database.LanguageRepo) *LanguageService {
	return &LanguageService{languageRepo: languageRepo}
}

// List returns the default language first, then the rest by code
func (s *LanguageService) List(ctx context.Context, activeOnly bool) ([]*models.Language, error) {
	languages, err := s.languageRepo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "languages", err)
	}
	if languages == nil {
		languages = []*models.Language{}
	}
	return languages, nil
}

func (s *LanguageService) FindByCode(ctx context.Context, code string) (*models.Language, error) {
	language, err := s.languageRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "language", err)
	}
	if language == nil {
		return nil, errs.NewLanguageNotFound(code)
	}
	return language, nil
}
