package repository

import (
	"context"

	"github.com/campusboard/bulletin-api/internal/domain/entity"
)

// EventRepository defines database operations over events.
// List reads join the category name; ListByCategory deliberately does not,
// mirroring the unjoined category-page query.
type EventRepository interface {
	ListAll(ctx context.Context, categoryID *int64) ([]entity.Event, error)
	ListRecent(ctx context.Context, limit int) ([]entity.Event, error)
	GetByID(ctx context.Context, id int64) (*entity.Event, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]entity.Event, error)
	Create(ctx context.Context, e *entity.Event) error
	Update(ctx context.Context, e *entity.Event) error
	Delete(ctx context.Context, id int64) error
}
