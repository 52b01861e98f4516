package models

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// DefaultLanguages are the locales the site ships with
var DefaultLanguages = []Language{
	{Code: "en", Name: "English", IsActive: true, IsDefault: true},
	{Code: "ru", Name: "Russian", IsActive: true},
	{Code: "de", Name: "German", IsActive: true},
	{Code: "tr", Name: "Turkish", IsActive: true},
	{Code: "ua", Name: "Ukrainian", IsActive: true},
}

// Migrations returns the ordered schema history
func Migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "20250301_create_portfolio_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&Language{}, &Project{}, &ProjectTechnology{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("project_technologies", "projects", "languages")
			},
		},
		{
			ID: "20250302_seed_languages",
			Migrate: func(tx *gorm.DB) error {
				languages := make([]Language, len(DefaultLanguages))
				copy(languages, DefaultLanguages)
				return tx.Create(&languages).Error
			},
			Rollback: func(tx *gorm.DB) error {
				codes := make([]string, 0, len(DefaultLanguages))
				for _, l := range DefaultLanguages {
					codes = append(codes, l.Code)
				}
				return tx.Where("code IN ?", codes).Delete(&Language{}).Error
			},
		},
	}
}

// NewMigrator wires the schema history to a connection
func NewMigrator(db *gorm.DB) *gormigrate.Gormigrate {
	return gormigrate.New(db, gormigrate.DefaultOptions, Migrations())
}

// Migrate applies every pending migration
func Migrate(db *gorm.DB) error {
	return NewMigrator(db).Migrate()
}
