package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"shopmart/internal/models"
	"shopmart/internal/repositories"
)

type CategoryService interface {
	List(ctx context.Context) ([]*models.Category, error)
	Get(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) (int64, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id int64) error
}

type categoryService struct {
	categories repositories.CategoryRepository
}

func NewCategoryService(categories repositories.CategoryRepository) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) List(ctx context.Context) ([]*models.Category, error) {
	return s.categories.List(ctx)
}

func (s *categoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Create(ctx context.Context, category *models.Category) (int64, error) {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return 0, fmt.Errorf("%w: name is required", ErrValidation)
	}

	existing, err := s.categories.GetByName(ctx, category.Name)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("check category name: %w", err)
	}
	if existing != nil {
		return 0, fmt.Errorf("category %q: %w", category.Name, ErrDuplicate)
	}

	return s.categories.Create(ctx, category)
}

func (s *categoryService) Update(ctx context.Context, category *models.Category) error {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	if _, err := s.Get(ctx, category.ID); err != nil {
		return err
	}

	existing, err := s.categories.GetByName(ctx, category.Name)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check category name: %w", err)
	}
	if existing != nil && existing.ID != category.ID {
		return fmt.Errorf("category %q: %w", category.Name, ErrDuplicate)
	}

	return s.categories.Update(ctx, category)
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.categories.Delete(ctx, id)
}
