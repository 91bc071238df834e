package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/campusboard/bulletin-api/internal/domain/entity"
	repo "github.com/campusboard/bulletin-api/internal/domain/repository"
)

// NoticeService mirrors EventService for undated announcements.
type NoticeService struct {
	Notices    repo.NoticeRepository
	Categories repo.CategoryRepository
	Logger     *logrus.Logger
}

func NewNoticeService(notices repo.NoticeRepository, categories repo.CategoryRepository, logger *logrus.Logger) *NoticeService {
	return &NoticeService{Notices: notices, Categories: categories, Logger: logger}
}

func (s *NoticeService) ListAll(ctx context.Context, categoryID *int64) ([]entity.Notice, error) {
	return s.Notices.ListAll(ctx, categoryID)
}

func (s *NoticeService) ListRecent(ctx context.Context) ([]entity.Notice, error) {
	return s.Notices.ListRecent(ctx, recentLimit)
}

func (s *NoticeService) GetByID(ctx context.Context, id int64) (*entity.Notice, error) {
	return s.Notices.GetByID(ctx, id)
}

func (s *NoticeService) ListByCategory(ctx context.Context, categoryID int64) ([]entity.Notice, error) {
	return s.Notices.ListByCategory(ctx, categoryID)
}

func (s *NoticeService) Create(ctx context.Context, n *entity.Notice) error {
	if err := s.Notices.Create(ctx, n); err != nil {
		return err
	}
	cat, err := s.Categories.GetByID(ctx, n.CategoryID)
	if err != nil {
		if s.Logger != nil && !errors.Is(err, repo.ErrNotFound) {
			s.Logger.WithError(err).WithField("category_id", n.CategoryID).Warn("category lookup failed after notice insert")
		}
		return nil
	}
	n.CategoryName = cat.Name
	return nil
}

func (s *NoticeService) Update(ctx context.Context, n *entity.Notice) error {
	return s.Notices.Update(ctx, n)
}

func (s *NoticeService) Delete(ctx context.Context, id int64) error {
	return s.Notices.Delete(ctx, id)
}
