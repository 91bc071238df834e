package repository

import (
	"context"

	"github.com/campusboard/bulletin-api/internal/domain/entity"
)

// NoticeRepository defines database operations over notices.
type NoticeRepository interface {
	ListAll(ctx context.Context, categoryID *int64) ([]entity.Notice, error)
	ListRecent(ctx context.Context, limit int) ([]entity.Notice, error)
	GetByID(ctx context.Context, id int64) (*entity.Notice, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]entity.Notice, error)
	Create(ctx context.Context, n *entity.Notice) error
	Update(ctx context.Context, n *entity.Notice) error
	Delete(ctx context.Context, id int64) error
}
