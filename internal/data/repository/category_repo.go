package repository

import (
	"context"

	"car-rental/internal/data/entity"

	"go.uber.org/zap"
)

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]*entity.Category, error)
	FindByID(ctx context.Context, categoryID string) (*entity.Category, error)
}

type categoryRepository struct {
	categories []*entity.Category
	byID       map[string]*entity.Category
	log        *zap.Logger
}

func NewCategoryRepository(categories []*entity.Category, log *zap.Logger) CategoryRepository {
	byID := make(map[string]*entity.Category, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}

	return &categoryRepository{
		categories: categories,
		byID:       byID,
		log:        log.With(zap.String("repository", "category")),
	}
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	result := make([]*entity.Category, len(r.categories))
	copy(result, r.categories)
	return result, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, categoryID string) (*entity.Category, error) {
	category, ok := r.byID[categoryID]
	if !ok {
		return nil, nil
	}
	return category, nil
}
