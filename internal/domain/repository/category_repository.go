package repository

import (
	"context"

	"github.com/campusboard/bulletin-api/internal/domain/entity"
)

// CategoryRepository defines database operations over categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	Update(ctx context.Context, c *entity.Category) error
	Delete(ctx context.Context, id int64) error
}
