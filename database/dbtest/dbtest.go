// Package dbtest opens migrated in-memory SQLite databases for tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Config describes a private in-memory database. A single connection keeps every query on the same database.
func Config() config.DatabaseConfig {
	return config.DatabaseConfig{
		Type:         config.DBTypeSQLite,
		SQLitePath:   ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		Environment:  "test",
	}
}

// New returns a migrated database with the default languages seeded
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(context.Background(), Config())
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// Language looks up a seeded language id by code
func Language(t testing.TB, db *gorm.DB, code string) uint {
	t.Helper()

	var language models.Language
	require.NoError(t, db.Where("code = ?", code).First(&language).Error)
	return language.ID
}
