package database

import (
	"context"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	db                    *gorm.DB
	languageRepo          *LanguageRepo
	projectRepo           *ProjectRepo
	projectTechnologyRepo *ProjectTechnologyRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:                    db,
		languageRepo:          NewLanguageRepo(db),
		projectRepo:           NewProjectRepo(db),
		projectTechnologyRepo: NewProjectTechnologyRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) LanguageRepo() *LanguageRepo {
	return d.languageRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProjectTechnologyRepo() *ProjectTechnologyRepo {
	return d.projectTechnologyRepo
}

// Ping checks that the primary connection is reachable
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return errs.NewDatabaseError("open", "connection", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errs.NewDatabaseError("ping", "database", err)
	}
	return nil
}

// Migrate applies all pending schema migrations
func (d Database) Migrate() error {
	if err := models.Migrate(d.db); err != nil {
		return errs.NewDatabaseError("migrate", "schema", err)
	}
	return nil
}

// RollbackSteps undoes the last n applied migrations
func (d Database) RollbackSteps(steps int) error {
	if steps <= 0 {
		return errs.NewBadRequestError("steps must be positive")
	}

	migrator := models.NewMigrator(d.db)
	for i := 0; i < steps; i++ {
		if err := migrator.RollbackLast(); err != nil {
			return errs.NewDatabaseError("roll back", "schema", err)
		}
	}
	return nil
}

// Close releases the underlying connection pool
func (d Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
