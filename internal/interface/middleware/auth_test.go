package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/campusboard/bulletin-api/internal/session"
	"github.com/campusboard/bulletin-api/pkg/helpers"
)

type fakeStore struct {
	sessions map[string]*session.Session
}

func (f *fakeStore) Create(_ context.Context, user session.User) (string, error) {
	token := "token-" + user.Username
	f.sessions[token] = &session.Session{User: user}
	return token, nil
}

func (f *fakeStore) Get(_ context.Context, token string) (*session.Session, error) {
	s, ok := f.sessions[token]
	if !ok {
		return nil, session.ErrNotFound
	}
	return s, nil
}

func (f *fakeStore) Destroy(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		cookie         string
		expectedStatus int
	}{
		{
			name:           "valid session passes through",
			cookie:         "token-alice",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing cookie refused",
			cookie:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown token refused",
			cookie:         "token-bogus",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{sessions: map[string]*session.Session{
				"token-alice": {User: session.User{ID: 1, Username: "alice"}},
			}}

			r := gin.New()
			r.GET("/protected", Auth(store), func(c *gin.Context) {
				assert.Equal(t, int64(1), c.GetInt64(CtxUserIDKey))
				assert.Equal(t, "alice", c.GetString(CtxUsernameKey))
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
