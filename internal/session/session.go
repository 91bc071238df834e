// Package session holds the server side of the login session: a short-lived
// record in Redis keyed by a random session id, referenced from the browser by
// a signed cookie. The Store interface is injected into handlers and
// middleware so tests can swap in a fake.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a token does not resolve to a live session,
// whether it is malformed, expired, or the Redis record is gone.
var ErrNotFound = errors.New("session not found")

// User is the slice of the account kept in the session record.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Session is the server-held record behind a cookie.
type Session struct {
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// Store creates, resolves, and destroys sessions. Create returns the signed
// token for the cookie; Get and Destroy take that same token back.
type Store interface {
	Create(ctx context.Context, user User) (token string, err error)
	Get(ctx context.Context, token string) (*Session, error)
	Destroy(ctx context.Context, token string) error
}
