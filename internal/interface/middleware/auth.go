package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusboard/bulletin-api/internal/session"
	"github.com/campusboard/bulletin-api/pkg/helpers"
	"github.com/campusboard/bulletin-api/pkg/response"
)

const (
	CtxUserIDKey   = "userID"
	CtxUsernameKey = "username"
)

// Auth resolves the session cookie against the store and refuses the request
// before it reaches business logic when no live session exists. On success it
// sets userID and username in the Gin context.
func Auth(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := helpers.SessionToken(c)
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "Not authenticated")
			return
		}
		sess, err := store.Get(c.Request.Context(), token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Not authenticated")
			return
		}
		c.Set(CtxUserIDKey, sess.User.ID)
		c.Set(CtxUsernameKey, sess.User.Username)
		c.Next()
	}
}
