package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusboard/bulletin-api/internal/domain/entity"
	repo "github.com/campusboard/bulletin-api/internal/domain/repository"
	"github.com/campusboard/bulletin-api/pkg/helpers"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
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
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestSignupStoresHashNotPlaintext(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByUsername", mock.Anything, "alice").Return(nil, repo.ErrNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Username == "alice" && u.Password != "wonderland" &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("wonderland")) == nil
	})).Return(nil)

	svc := NewAuthService(users, "axe", nil)
	u, err := svc.Signup(context.Background(), SignupInput{
		Name:           "Alice",
		Username:       "alice",
		Email:          "alice@example.com",
		Password:       "wonderland",
		InvitationCode: "axe",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	users.AssertExpectations(t)
}

func TestSignupInvalidInvitation(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewAuthService(users, "axe", nil)

	_, err := svc.Signup(context.Background(), SignupInput{
		Username:       "alice",
		Password:       "wonderland",
		InvitationCode: "sword",
	})

	assert.ErrorIs(t, err, ErrInvalidInvitation)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignupDuplicateUsername(t *testing.T) {
	t.Run("caught by lookup", func(t *testing.T) {
		users := new(mockUserRepo)
		users.On("GetByUsername", mock.Anything, "alice").Return(&entity.User{ID: 1, Username: "alice"}, nil)

		svc := NewAuthService(users, "axe", nil)
		_, err := svc.Signup(context.Background(), SignupInput{
			Username: "alice", Password: "x", InvitationCode: "axe",
		})

		assert.ErrorIs(t, err, ErrUsernameTaken)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("caught by constraint", func(t *testing.T) {
		users := new(mockUserRepo)
		users.On("GetByUsername", mock.Anything, "alice").Return(nil, repo.ErrNotFound)
		users.On("Create", mock.Anything, mock.Anything).Return(repo.ErrConflict)

		svc := NewAuthService(users, "axe", nil)
		_, err := svc.Signup(context.Background(), SignupInput{
			Username: "alice", Password: "x", InvitationCode: "axe",
		})

		assert.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestLogin(t *testing.T) {
	hash, err := helpers.HashPassword("wonderland")
	require.NoError(t, err)
	alice := &entity.User{ID: 1, Username: "alice", Password: hash}

	tests := []struct {
		name     string
		username string
		password string
		stored   *entity.User
		storeErr error
		wantErr  error
	}{
		{
			name:     "success",
			username: "alice",
			password: "wonderland",
			stored:   alice,
		},
		{
			name:     "unknown user",
			username: "bob",
			password: "wonderland",
			storeErr: repo.ErrNotFound,
			wantErr:  ErrUserNotFound,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "looking-glass",
			stored:   alice,
			wantErr:  ErrIncorrectPassword,
		},
		{
			name:     "store failure passes through",
			username: "alice",
			password: "wonderland",
			storeErr: errors.New("connection refused"),
			wantErr:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mockUserRepo)
			users.On("GetByUsername", mock.Anything, tt.username).Return(tt.stored, tt.storeErr)

			svc := NewAuthService(users, "axe", nil)
			u, err := svc.Login(context.Background(), tt.username, tt.password)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.storeErr != nil:
				assert.ErrorIs(t, err, tt.storeErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.stored.ID, u.ID)
			}
		})
	}
}
