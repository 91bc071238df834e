package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusboard/bulletin-api/internal/domain/entity"
	"github.com/campusboard/bulletin-api/internal/domain/repository"
)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func scanEvents(rows pgx.Rows, joined bool) ([]entity.Event, error) {
	defer rows.Close()
	events := make([]entity.Event, 0)
	for rows.Next() {
		var e entity.Event
		var err error
		if joined {
			err = rows.Scan(&e.ID, &e.Title, &e.Description, &e.Place, &e.Date, &e.Time,
				&e.CategoryID, &e.CreatedAt, &e.CategoryName)
		} else {
			err = rows.Scan(&e.ID, &e.Title, &e.Description, &e.Place, &e.Date, &e.Time,
				&e.CategoryID, &e.CreatedAt)
		}
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// ListAll returns all events joined with their category name, newest date
// first, optionally filtered to one category.
func (r *EventRepository) ListAll(ctx context.Context, categoryID *int64) ([]entity.Event, error) {
	query := `
		SELECT e.id, e.title, e.description, e.place, e.date, e.time,
		       e.category_id, e.created_at, c.name AS category_name
		FROM events e
		JOIN categories c ON e.category_id = c.id
	`
	args := []any{}
	if categoryID != nil {
		query += ` WHERE e.category_id = $1`
		args = append(args, *categoryID)
	}
	query += ` ORDER BY e.date DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows, true)
}

func (r *EventRepository) ListRecent(ctx context.Context, limit int) ([]entity.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT e.id, e.title, e.description, e.place, e.date, e.time,
		       e.category_id, e.created_at, c.name AS category_name
		FROM events e
		JOIN categories c ON e.category_id = c.id
		ORDER BY e.date DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows, true)
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*entity.Event, error) {
	e := &entity.Event{}
	row := r.pool.QueryRow(ctx, `
		SELECT e.id, e.title, e.description, e.place, e.date, e.time,
		       e.category_id, e.created_at, c.name AS category_name
		FROM events e
		JOIN categories c ON e.category_id = c.id
		WHERE e.id = $1
	`, id)
	if err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Place, &e.Date, &e.Time,
		&e.CategoryID, &e.CreatedAt, &e.CategoryName); err != nil {
		return nil, translate(err)
	}
	return e, nil
}

// ListByCategory is the unjoined category-page read; an unknown category
// yields an empty slice, not an error.
func (r *EventRepository) ListByCategory(ctx context.Context, categoryID int64) ([]entity.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, place, date, time, category_id, created_at
		FROM events
		WHERE category_id = $1
	`, categoryID)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows, false)
}

func (r *EventRepository) Create(ctx context.Context, e *entity.Event) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO events (title, description, place, date, time, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, e.Title, e.Description, e.Place, e.Date, e.Time, e.CategoryID)
	if err := row.Scan(&e.ID, &e.CreatedAt); err != nil {
		return translate(err)
	}
	return nil
}

// Update replaces every field; there are no partial-patch semantics.
func (r *EventRepository) Update(ctx context.Context, e *entity.Event) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE events
		SET title = $1, description = $2, place = $3, date = $4, time = $5, category_id = $6
		WHERE id = $7
	`, e.Title, e.Description, e.Place, e.Date, e.Time, e.CategoryID, e.ID)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.EventRepository = (*EventRepository)(nil)
