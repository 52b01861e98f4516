package database_test

import (
	"context"
	"testing"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/database/dbtest"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageRepoFindAll(t *testing.T) {
	db := dbtest.New(t)
	repo := database.New(db).LanguageRepo()
	ctx := context.Background()

	require.NoError(t, db.Model(&models.Language{}).Where("code = ?", "tr").Update("is_active", false).Error)

	all, err := repo.FindAll(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "en", all[0].Code)
	assert.True(t, all[0].IsDefault)

	var codes []string
	for _, l := range all[1:] {
		codes = append(codes, l.Code)
	}
	assert.Equal(t, []string{"de", "ru", "tr", "ua"}, codes)

	active, err := repo.FindAll(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 4)
}

func TestLanguageRepoLookups(t *testing.T) {
	db := dbtest.New(t)
	repo := database.New(db).LanguageRepo()
	ctx := context.Background()

	ua, err := repo.FindByCode(ctx, "ua")
	require.NoError(t, err)
	require.NotNil(t, ua)
	assert.Equal(t, "Ukrainian", ua.Name)

	missing, err := repo.FindByCode(ctx, "fr")
	require.NoError(t, err)
	assert.Nil(t, missing)

	exists, err := repo.Exists(ctx, ua.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, 1000)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDatabasePingAndRollback(t *testing.T) {
	db := dbtest.New(t)
	d := database.New(db)
	ctx := context.Background()

	require.NoError(t, d.Ping(ctx))

	require.Error(t, d.RollbackSteps(0))
	require.NoError(t, d.RollbackSteps(1))

	var count int64
	require.NoError(t, db.Model(&models.Language{}).Count(&count).Error)
	assert.Zero(t, count)

	require.NoError(t, d.Migrate())
	require.NoError(t, db.Model(&models.Language{}).Count(&count).Error)
	assert.EqualValues(t, len(models.DefaultLanguages), count)
}
