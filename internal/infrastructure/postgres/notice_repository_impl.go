package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusboard/bulletin-api/internal/domain/entity"
	"github.com/campusboard/bulletin-api/internal/domain/repository"
)

type NoticeRepository struct {
	pool *pgxpool.Pool
}

func NewNoticeRepository(pool *pgxpool.Pool) *NoticeRepository {
	return &NoticeRepository{pool: pool}
}

func scanNotices(rows pgx.Rows, joined bool) ([]entity.Notice, error) {
	defer rows.Close()
	notices := make([]entity.Notice, 0)
	for rows.Next() {
		var n entity.Notice
		var err error
		if joined {
			err = rows.Scan(&n.ID, &n.Title, &n.Description, &n.CategoryID, &n.CreatedAt, &n.CategoryName)
		} else {
			err = rows.Scan(&n.ID, &n.Title, &n.Description, &n.CategoryID, &n.CreatedAt)
		}
		if err != nil {
			return nil, err
		}
		notices = append(notices, n)
	}
	return notices, rows.Err()
}

// ListAll returns all notices joined with their category name, newest first,
// optionally filtered to one category.
func (r *NoticeRepository) ListAll(ctx context.Context, categoryID *int64) ([]entity.Notice, error) {
	query := `
		SELECT n.id, n.title, n.description, n.category_id, n.created_at, c.name AS category_name
		FROM notices n
		JOIN categories c ON n.category_id = c.id
	`
	args := []any{}
	if categoryID != nil {
		query += ` WHERE n.category_id = $1`
		args = append(args, *categoryID)
	}
	query += ` ORDER BY n.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanNotices(rows, true)
}

func (r *NoticeRepository) ListRecent(ctx context.Context, limit int) ([]entity.Notice, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT n.id, n.title, n.description, n.category_id, n.created_at, c.name AS category_name
		FROM notices n
		JOIN categories c ON n.category_id = c.id
		ORDER BY n.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return scanNotices(rows, true)
}

func (r *NoticeRepository) GetByID(ctx context.Context, id int64) (*entity.Notice, error) {
	n := &entity.Notice{}
	row := r.pool.QueryRow(ctx, `
		SELECT n.id, n.title, n.description, n.category_id, n.created_at, c.name AS category_name
		FROM notices n
		JOIN categories c ON n.category_id = c.id
		WHERE n.id = $1
	`, id)
	if err := row.Scan(&n.ID, &n.Title, &n.Description, &n.CategoryID, &n.CreatedAt, &n.CategoryName); err != nil {
		return nil, translate(err)
	}
	return n, nil
}

func (r *NoticeRepository) ListByCategory(ctx context.Context, categoryID int64) ([]entity.Notice, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, category_id, created_at
		FROM notices
		WHERE category_id = $1
	`, categoryID)
	if err != nil {
		return nil, err
	}
	return scanNotices(rows, false)
}

func (r *NoticeRepository) Create(ctx context.Context, n *entity.Notice) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO notices (title, description, category_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, n.Title, n.Description, n.CategoryID)
	if err := row.Scan(&n.ID, &n.CreatedAt); err != nil {
		return translate(err)
	}
	return nil
}

func (r *NoticeRepository) Update(ctx context.Context, n *entity.Notice) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE notices
		SET title = $1, description = $2, category_id = $3
		WHERE id = $4
	`, n.Title, n.Description, n.CategoryID, n.ID)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *NoticeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.NoticeRepository = (*NoticeRepository)(nil)
