package usecase

import (
	"context"
	"fmt"

	"car-rental/internal/data/repository"
	"car-rental/internal/dto/response"

	"go.uber.org/zap"
)

type CategoryService interface {
	GetCategories(ctx context.Context) ([]response.CategoryResponse, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*response.CategoryResponse, error)
}

type categoryService struct {
	repo repository.CategoryRepository
	log  *zap.Logger
}

func NewCategoryService(repo repository.CategoryRepository, log *zap.Logger) CategoryService {
	return &categoryService{
		repo: repo,
		log:  log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) GetCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get categories", zap.Error(err))
		return nil, fmt.Errorf("get categories: %w", err)
	}

	result := make([]response.CategoryResponse, len(categories))
	for i, category := range categories {
		result[i] = response.CategoryToResponse(category)
	}

	return result, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*response.CategoryResponse, error) {
	category, err := s.repo.FindByID(ctx, categoryID)
	if err != nil {
		s.log.Error("Failed to get category by ID",
			zap.Error(err),
			zap.String("category_id", categoryID),
		)
		return nil, fmt.Errorf("get category by id: %w", err)
	}

	if category == nil {
		return nil, fmt.Errorf("category not found")
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}
