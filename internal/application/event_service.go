package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/campusboard/bulletin-api/internal/domain/entity"
	repo "github.com/campusboard/bulletin-api/internal/domain/repository"
)

// recentLimit caps the landing-page listings regardless of table size.
const recentLimit = 5

// EventService wraps event reads and writes. Create is two round-trips
// (insert, then category-name lookup) because the created row id is needed
// before the name can be attached; there is no atomicity between them.
type EventService struct {
	Events     repo.EventRepository
	Categories repo.CategoryRepository
	Logger     *logrus.Logger
}

func NewEventService(events repo.EventRepository, categories repo.CategoryRepository, logger *logrus.Logger) *EventService {
	return &EventService{Events: events, Categories: categories, Logger: logger}
}

func (s *EventService) ListAll(ctx context.Context, categoryID *int64) ([]entity.Event, error) {
	return s.Events.ListAll(ctx, categoryID)
}

func (s *EventService) ListRecent(ctx context.Context) ([]entity.Event, error) {
	return s.Events.ListRecent(ctx, recentLimit)
}

func (s *EventService) GetByID(ctx context.Context, id int64) (*entity.Event, error) {
	return s.Events.GetByID(ctx, id)
}

func (s *EventService) ListByCategory(ctx context.Context, categoryID int64) ([]entity.Event, error) {
	return s.Events.ListByCategory(ctx, categoryID)
}

// Create inserts the event and attaches the category name to the returned
// value as a denormalized convenience for the client.
func (s *EventService) Create(ctx context.Context, e *entity.Event) error {
	if err := s.Events.Create(ctx, e); err != nil {
		return err
	}
	cat, err := s.Categories.GetByID(ctx, e.CategoryID)
	if err != nil {
		// The row exists either way; a failed lookup only loses the
		// convenience field.
		if s.Logger != nil && !errors.Is(err, repo.ErrNotFound) {
			s.Logger.WithError(err).WithField("category_id", e.CategoryID).Warn("category lookup failed after event insert")
		}
		return nil
	}
	e.CategoryName = cat.Name
	return nil
}

func (s *EventService) Update(ctx context.Context, e *entity.Event) error {
	return s.Events.Update(ctx, e)
}

func (s *EventService) Delete(ctx context.Context, id int64) error {
	return s.Events.Delete(ctx, id)
}
