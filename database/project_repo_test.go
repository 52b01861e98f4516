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

func addProject(t *testing.T, repo *database.ProjectRepo, languageID uint, title string, orderIndex int, featured bool, technologies ...string) *models.Project {
	t.Helper()

	project := &models.Project{
		LanguageID:  languageID,
		Title:       title,
		Description: title + " description",
		OrderIndex:  orderIndex,
		Featured:    featured,
		ShowDemo:    true,
		ShowCode:    true,
	}
	require.NoError(t, repo.Add(context.Background(), project, technologies))
	require.NotZero(t, project.ID)
	return project
}

func TestProjectRepoAddKeepsTechnologyOrder(t *testing.T) {
	db := dbtest.New(t)
	repo := database.New(db).ProjectRepo()
	en := dbtest.Language(t, db, "en")

	created := addProject(t, repo, en, "Compiler", 0, false, "Go", "LLVM", "Bison")

	found, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, []string{"Go", "LLVM", "Bison"}, found.TechnologyNames())
	for i, tech := range found.Technologies {
		assert.Equal(t, i, tech.OrderIndex)
	}
}

func TestProjectRepoFindByIDMissing(t *testing.T) {
	repo := database.New(dbtest.New(t)).ProjectRepo()

	found, err := repo.FindByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, found)

	exists, err := repo.Exists(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestProjectRepoFindAllFilters(t *testing.T) {
	db := dbtest.New(t)
	repo := database.New(db).ProjectRepo()
	en := dbtest.Language(t, db, "en")
	de := dbtest.Language(t, db, "de")

	b := addProject(t, repo, en, "B", 2, true)
	a := addProject(t, repo, en, "A", 1, false)
	c := addProject(t, repo, de, "C", 0, true)

	ctx := context.Background()
	titles := func(projects []*models.Project) []string {
		var out []string
		for _, p := range projects {
			out = append(out, p.Title)
		}
		return out
	}

	all, err := repo.FindAll(ctx, database.ProjectFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{c.Title, a.Title, b.Title}, titles(all))

	english, err := repo.FindAll(ctx, database.ProjectFilter{LanguageID: en})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, titles(english))

	featured, err := repo.FindAll(ctx, database.ProjectFilter{FeaturedOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B"}, titles(featured))

	german, err := repo.FindAll(ctx, database.ProjectFilter{LanguageCode: "de"})
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, titles(german))

	unknown, err := repo.FindAll(ctx, database.ProjectFilter{LanguageCode: "xx"})
	require.NoError(t, err)
	assert.Empty(t, unknown)
}

func TestProjectRepoUpdateReplacesTechnologies(t *testing.T) {
	db := dbtest.New(t)
	repo := database.New(db).ProjectRepo()
	en := dbtest.Language(t, db, "en")
	ctx := context.Background()

	project := addProject(t, repo, en, "Site", 0, false, "Angular", "NestJS")

	technologies := []string{"Go", "Postgres"}
	require.NoError(t, repo.Update(ctx, project.ID, map[string]interface{}{"title": "Site v2", "show_demo": false}, &technologies))

	found, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Site v2", found.Title)
	assert.False(t, found.ShowDemo)
	assert.Equal(t, []string{"Go", "Postgres"}, found.TechnologyNames())

	require.NoError(t, repo.Update(ctx, project.ID, map[string]interface{}{"description": "new"}, nil))
	found, err = repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Postgres"}, found.TechnologyNames())

	empty := []string{}
	require.NoError(t, repo.Update(ctx, project.ID, nil, &empty))
	found, err = repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Technologies)
}

func TestProjectRepoDeleteRemovesTechnologies(t *testing.T) {
	db := dbtest.New(t)
	d := database.New(db)
	en := dbtest.Language(t, db, "en")
	ctx := context.Background()

	project := addProject(t, d.ProjectRepo(), en, "Gone", 0, false, "Rust")

	require.NoError(t, d.ProjectRepo().Delete(ctx, project.ID))

	found, err := d.ProjectRepo().FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	technologies, err := d.ProjectTechnologyRepo().FindByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, technologies)
}

func TestProjectRepoSetOrderIndexScopedToLanguage(t *testing.T) {
	db := dbtest.New(t)
	repo := database.New(db).ProjectRepo()
	en := dbtest.Language(t, db, "en")
	ru := dbtest.Language(t, db, "ru")
	ctx := context.Background()

	project := addProject(t, repo, ru, "Russian only", 7, false)

	affected, err := repo.SetOrderIndex(ctx, project.ID, en, 0)
	require.NoError(t, err)
	assert.Zero(t, affected)

	affected, err = repo.SetOrderIndex(ctx, project.ID, ru, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	found, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, found.OrderIndex)
}

func TestProjectRepoSetFeatured(t *testing.T) {
	db := dbtest.New(t)
	repo := database.New(db).ProjectRepo()
	en := dbtest.Language(t, db, "en")
	ctx := context.Background()

	project := addProject(t, repo, en, "Flag", 0, false)
	require.NoError(t, repo.SetFeatured(ctx, project.ID, true))

	found, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.True(t, found.Featured)
}
