package service

import (
	"context"

	"github.com/classumlab/classroom-backend/internal/model"
	"github.com/classumlab/classroom-backend/internal/repository"
)

// CategoryService handles category business logic.
type CategoryService struct {
	categoryRepo *repository.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List retrieves all categories.
func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.List(ctx)
}

// Create creates a new category.
func (s *CategoryService) Create(ctx context.Context, c *model.Category) error {
	return s.categoryRepo.Create(ctx, c)
}

// Delete removes a category. Classes keep their stored category name;
// only the foreign key link goes away (the schema sets it null).
func (s *CategoryService) Delete(ctx context.Context, id int) error {
	return s.categoryRepo.Delete(ctx, id)
}
