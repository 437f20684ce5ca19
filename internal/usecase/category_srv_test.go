package usecase

import (
	"context"
	"testing"

	"car-rental/internal/data/fixture"
	"car-rental/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetCategories(t *testing.T) {
	svc := NewCategoryService(repository.NewCategoryRepository(fixture.Categories(), zap.NewNop()), zap.NewNop())

	categories, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 6)
	assert.Equal(t, "luxury", categories[0].ID)
	assert.Equal(t, "Luxury", categories[0].Name)
}

func TestGetCategoryByID(t *testing.T) {
	svc := NewCategoryService(repository.NewCategoryRepository(fixture.Categories(), zap.NewNop()), zap.NewNop())

	category, err := svc.GetCategoryByID(context.Background(), "electric")
	require.NoError(t, err)
	assert.Equal(t, "Electric", category.Name)

	_, err = svc.GetCategoryByID(context.Background(), "boats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
