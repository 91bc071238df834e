package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/campusboard/bulletin-api/internal/domain/entity"
	repo "github.com/campusboard/bulletin-api/internal/domain/repository"
	"github.com/campusboard/bulletin-api/pkg/helpers"
)

var (
	ErrInvalidInvitation = errors.New("invalid invitation code")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
)

// AuthService validates credentials and creates admin accounts. Session
// issuance lives in the session package; this service only answers whether
// the caller may have one.
type AuthService struct {
	Users          repo.UserRepository
	InvitationCode string
	Logger         *logrus.Logger
}

func NewAuthService(users repo.UserRepository, invitationCode string, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, InvitationCode: invitationCode, Logger: logger}
}

type SignupInput struct {
	Name           string
	Username       string
	Email          string
	Password       string
	InvitationCode string
}

// Signup registers a new admin. The invitation code is a shared secret gating
// signup; the username uniqueness ultimately rests on the database constraint,
// the lookup here only produces the friendlier error on the common path.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	if in.InvitationCode != s.InvitationCode {
		return nil, ErrInvalidInvitation
	}

	if _, err := s.Users.GetByUsername(ctx, in.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Name:     in.Name,
		Username: in.Username,
		Email:    in.Email,
		Password: hash,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithField("username", u.Username).Info("user registered")
	}
	return u, nil
}

// Login checks the username and password against the stored bcrypt hash.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entity.User, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrIncorrectPassword
	}
	return u, nil
}
