package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/campusboard/bulletin-api/internal/domain/entity"
	repo "github.com/campusboard/bulletin-api/internal/domain/repository"
)

// CategoryService is plain CRUD; uniqueness and referential integrity are
// enforced by constraints and surface as repository sentinels.
type CategoryService struct {
	Categories repo.CategoryRepository
	Logger     *logrus.Logger
}

func NewCategoryService(categories repo.CategoryRepository, logger *logrus.Logger) *CategoryService {
	return &CategoryService{Categories: categories, Logger: logger}
}

func (s *CategoryService) List(ctx context.Context) ([]entity.Category, error) {
	return s.Categories.List(ctx)
}

func (s *CategoryService) Create(ctx context.Context, name string) (*entity.Category, error) {
	c := &entity.Category{Name: name}
	if err := s.Categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	return s.Categories.GetByID(ctx, id)
}

func (s *CategoryService) Update(ctx context.Context, id int64, name string) (*entity.Category, error) {
	c := &entity.Category{ID: id, Name: name}
	if err := s.Categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.Categories.Delete(ctx, id)
}
