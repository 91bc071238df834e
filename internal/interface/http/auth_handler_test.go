package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campusboard/bulletin-api/internal/application"
	"github.com/campusboard/bulletin-api/internal/domain/entity"
	repo "github.com/campusboard/bulletin-api/internal/domain/repository"
	"github.com/campusboard/bulletin-api/pkg/helpers"
)

func newAuthRouter(users *mockUserRepo, store *memStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := application.NewAuthService(users, "axe", nil)
	h := NewAuthHandler(svc, store, testLogger(), helpers.NewCookie("", false), time.Hour, nil, false)

	r := gin.New()
	r.POST("/api/auth/signup", h.Signup)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/logout", h.Logout)
	r.GET("/api/auth/status", h.Status)
	return r
}

func TestSignup(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(users *mockUserRepo)
		wantStatus int
		wantBody   string
	}{
		{
			name: "valid invitation registers",
			body: `{"name":"Alice","username":"alice","email":"alice@example.com","password":"wonderland","invitationCode":"axe"}`,
			setup: func(users *mockUserRepo) {
				users.On("GetByUsername", mock.Anything, "alice").Return(nil, repo.ErrNotFound)
				users.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   "User registered successfully",
		},
		{
			name:       "wrong invitation refused",
			body:       `{"name":"Alice","username":"alice","email":"alice@example.com","password":"wonderland","invitationCode":"sword"}`,
			setup:      func(users *mockUserRepo) {},
			wantStatus: http.StatusForbidden,
			wantBody:   "Invalid invitation code. Signup restricted.",
		},
		{
			name: "duplicate username",
			body: `{"name":"Alice","username":"alice","email":"alice@example.com","password":"wonderland","invitationCode":"axe"}`,
			setup: func(users *mockUserRepo) {
				users.On("GetByUsername", mock.Anything, "alice").Return(&entity.User{ID: 1, Username: "alice"}, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Username already taken.",
		},
		{
			name:       "missing fields rejected",
			body:       `{"username":"alice"}`,
			setup:      func(users *mockUserRepo) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mockUserRepo)
			tt.setup(users)
			r := newAuthRouter(users, newMemStore())

			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
			users.AssertExpectations(t)
		})
	}
}

func TestLoginSetsSessionCookie(t *testing.T) {
	hash, err := helpers.HashPassword("wonderland")
	require.NoError(t, err)

	users := new(mockUserRepo)
	users.On("GetByUsername", mock.Anything, "alice").
		Return(&entity.User{ID: 1, Username: "alice", Password: hash}, nil)

	store := newMemStore()
	r := newAuthRouter(users, store)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"alice","password":"wonderland"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Login successful!")
	assert.Contains(t, w.Body.String(), `"username":"alice"`)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, helpers.SessionCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Len(t, store.sessions, 1)
}

func TestLoginFailuresLeaveNoSession(t *testing.T) {
	hash, err := helpers.HashPassword("wonderland")
	require.NoError(t, err)

	tests := []struct {
		name     string
		body     string
		stored   *entity.User
		storeErr error
		wantBody string
	}{
		{
			name:     "unknown user",
			body:     `{"username":"bob","password":"wonderland"}`,
			storeErr: repo.ErrNotFound,
			wantBody: "User not found!",
		},
		{
			name:     "wrong password",
			body:     `{"username":"alice","password":"looking-glass"}`,
			stored:   &entity.User{ID: 1, Username: "alice", Password: hash},
			wantBody: "Incorrect password!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mockUserRepo)
			users.On("GetByUsername", mock.Anything, mock.Anything).Return(tt.stored, tt.storeErr)

			store := newMemStore()
			r := newAuthRouter(users, store)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.Empty(t, w.Result().Cookies())
			assert.Empty(t, store.sessions)
		})
	}
}

func TestLogoutDestroysSession(t *testing.T) {
	store := newMemStore()
	token, err := store.Create(context.Background(), sessionUser(1, "alice"))
	require.NoError(t, err)

	r := newAuthRouter(new(mockUserRepo), store)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logout successful!")
	assert.Empty(t, store.sessions)
}

func TestStatus(t *testing.T) {
	store := newMemStore()
	token, err := store.Create(context.Background(), sessionUser(7, "alice"))
	require.NoError(t, err)

	r := newAuthRouter(new(mockUserRepo), store)

	t.Run("logged in", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
		req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"loggedIn":true`)
		assert.Contains(t, w.Body.String(), `"username":"alice"`)
	})

	t.Run("anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"loggedIn":false`)
	})
}
