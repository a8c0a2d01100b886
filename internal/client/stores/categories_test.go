package stores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkitsONe/blogctl/internal/client/api"
	"github.com/SkitsONe/blogctl/internal/client/models"
)

type fakeCategoriesAPI struct {
	ListRet []models.Category
	ListErr error

	GetRet *models.Category
	GetErr error

	CreateRet *models.Category
	CreateErr error

	UpdateRet *models.Category
	UpdateErr error

	DeleteErr error

	LastID models.ID
}

func (f *fakeCategoriesAPI) ListCategories(ctx context.Context) ([]models.Category, error) {
	return f.ListRet, f.ListErr
}

func (f *fakeCategoriesAPI) GetCategory(ctx context.Context, id models.ID) (*models.Category, error) {
	f.LastID = id
	return f.GetRet, f.GetErr
}

func (f *fakeCategoriesAPI) CreateCategory(ctx context.Context, data api.CategoryData) (*models.Category, error) {
	return f.CreateRet, f.CreateErr
}

func (f *fakeCategoriesAPI) UpdateCategory(ctx context.Context, id models.ID, data api.CategoryData) (*models.Category, error) {
	f.LastID = id
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeCategoriesAPI) DeleteCategory(ctx context.Context, id models.ID) error {
	f.LastID = id
	return f.DeleteErr
}

func cat(id models.ID, name string) models.Category {
	return models.Category{ID: id, Name: name}
}

func TestFetchCategories_PopulatesAndSwallowsFailures(t *testing.T) {
	fa := &fakeCategoriesAPI{ListRet: []models.Category{cat(1, "go"), cat(2, "news")}}
	c := NewCategories(fa, testLogger())

	c.FetchCategories(context.Background())
	require.Len(t, c.All(), 2)
	assert.Empty(t, c.Err())

	fa.ListErr = &api.Error{Message: "internal server error", Status: 500}
	c.FetchCategories(context.Background())

	assert.Empty(t, c.All())
	assert.Contains(t, c.Err(), "internal server error")
	assert.False(t, c.Loading())
}

func TestCreateCategory_InsertsAtFront(t *testing.T) {
	created := cat(3, "new")
	fa := &fakeCategoriesAPI{CreateRet: &created}
	c := NewCategories(fa, testLogger())
	c.mu.Lock()
	c.categories = []models.Category{cat(1, "old")}
	c.mu.Unlock()

	_, err := c.CreateCategory(context.Background(), api.CategoryData{Name: "new"})
	require.NoError(t, err)

	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, models.ID(3), all[0].ID)
}

func TestUpdateCategory_BestEffortReplace(t *testing.T) {
	updated := cat(2, "renamed")
	fa := &fakeCategoriesAPI{UpdateRet: &updated}
	c := NewCategories(fa, testLogger())
	c.mu.Lock()
	c.categories = []models.Category{cat(1, "keep"), cat(2, "old")}
	cur := cat(2, "old")
	c.current = &cur
	c.mu.Unlock()

	got, err := c.UpdateCategory(context.Background(), 2, api.CategoryData{Name: "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)

	all := c.All()
	assert.Equal(t, "keep", all[0].Name)
	assert.Equal(t, "renamed", all[1].Name)
	require.NotNil(t, c.Current())
	assert.Equal(t, "renamed", c.Current().Name)
}

func TestDeleteCategory_RemovesMatchesAndClearsCurrent(t *testing.T) {
	fa := &fakeCategoriesAPI{}
	c := NewCategories(fa, testLogger())
	c.mu.Lock()
	c.categories = []models.Category{cat(1, "a"), cat(2, "b")}
	cur := cat(2, "b")
	c.current = &cur
	c.mu.Unlock()

	require.NoError(t, c.DeleteCategory(context.Background(), 2))

	all := c.All()
	require.Len(t, all, 1)
	assert.Equal(t, models.ID(1), all[0].ID)
	assert.Nil(t, c.Current())
}

func TestFetchCategory_FailureClearsCurrentAndRethrows(t *testing.T) {
	fa := &fakeCategoriesAPI{GetErr: &api.Error{Message: "resource not found", Status: 404}}
	c := NewCategories(fa, testLogger())
	cur := cat(1, "a")
	c.mu.Lock()
	c.current = &cur
	c.mu.Unlock()

	_, err := c.FetchCategory(context.Background(), 1)
	require.Error(t, err)
	assert.Nil(t, c.Current())
}
