package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/campusboard/bulletin-api/internal/domain/entity"
	"github.com/campusboard/bulletin-api/internal/session"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func sessionUser(id int64, username string) session.User {
	return session.User{ID: id, Username: username}
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	if u := args.Get(0); u != nil {
		return u.([]entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) ListAll(ctx context.Context, categoryID *int64) ([]entity.Event, error) {
	args := m.Called(ctx, categoryID)
	if e := args.Get(0); e != nil {
		return e.([]entity.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEventRepo) ListRecent(ctx context.Context, limit int) ([]entity.Event, error) {
	args := m.Called(ctx, limit)
	if e := args.Get(0); e != nil {
		return e.([]entity.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEventRepo) GetByID(ctx context.Context, id int64) (*entity.Event, error) {
	args := m.Called(ctx, id)
	if e := args.Get(0); e != nil {
		return e.(*entity.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEventRepo) ListByCategory(ctx context.Context, categoryID int64) ([]entity.Event, error) {
	args := m.Called(ctx, categoryID)
	if e := args.Get(0); e != nil {
		return e.([]entity.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEventRepo) Create(ctx context.Context, e *entity.Event) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockEventRepo) Update(ctx context.Context, e *entity.Event) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockEventRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockNoticeRepo struct {
	mock.Mock
}

func (m *mockNoticeRepo) ListAll(ctx context.Context, categoryID *int64) ([]entity.Notice, error) {
	args := m.Called(ctx, categoryID)
	if n := args.Get(0); n != nil {
		return n.([]entity.Notice), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoticeRepo) ListRecent(ctx context.Context, limit int) ([]entity.Notice, error) {
	args := m.Called(ctx, limit)
	if n := args.Get(0); n != nil {
		return n.([]entity.Notice), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoticeRepo) GetByID(ctx context.Context, id int64) (*entity.Notice, error) {
	args := m.Called(ctx, id)
	if n := args.Get(0); n != nil {
		return n.(*entity.Notice), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoticeRepo) ListByCategory(ctx context.Context, categoryID int64) ([]entity.Notice, error) {
	args := m.Called(ctx, categoryID)
	if n := args.Get(0); n != nil {
		return n.([]entity.Notice), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoticeRepo) Create(ctx context.Context, n *entity.Notice) error {
	return m.Called(ctx, n).Error(0)
}

func (m *mockNoticeRepo) Update(ctx context.Context, n *entity.Notice) error {
	return m.Called(ctx, n).Error(0)
}

func (m *mockNoticeRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]entity.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*entity.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// memStore is an in-memory session.Store for handler tests.
type memStore struct {
	sessions map[string]*session.Session
	next     int
}

func newMemStore() *memStore {
	return &memStore{sessions: map[string]*session.Session{}}
}

func (s *memStore) Create(_ context.Context, user session.User) (string, error) {
	s.next++
	token := fmt.Sprintf("tok-%d", s.next)
	s.sessions[token] = &session.Session{User: user}
	return token, nil
}

func (s *memStore) Get(_ context.Context, token string) (*session.Session, error) {
	sess, ok := s.sessions[token]
	if !ok {
		return nil, session.ErrNotFound
	}
	return sess, nil
}

func (s *memStore) Destroy(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}
