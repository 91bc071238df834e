package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/campusboard/bulletin-api/pkg/helpers"
)

func sessionKey(sid string) string {
	return "session:" + sid
}

// RedisStore keeps session records in Redis with a fixed TTL. The lifetime is
// non-sliding: the record expires TTL after login regardless of activity.
type RedisStore struct {
	rdb    *redis.Client
	signer *TokenSigner
	ttl    time.Duration
}

func NewRedisStore(rdb *redis.Client, signer *TokenSigner, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, signer: signer, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, user User) (string, error) {
	sid := uuid.NewString()
	sess := Session{User: user, CreatedAt: time.Now().UTC()}
	if err := helpers.RedisSetJSON(ctx, s.rdb, sessionKey(sid), sess, s.ttl); err != nil {
		return "", err
	}
	return s.signer.Sign(sid)
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	sid, err := s.signer.Parse(token)
	if err != nil {
		return nil, ErrNotFound
	}
	var sess Session
	found, err := helpers.RedisGetJSON(ctx, s.rdb, sessionKey(sid), &sess)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &sess, nil
}

// Destroy removes the record. A token that no longer parses is treated as
// already destroyed; a Redis failure propagates so logout can report it.
func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	sid, err := s.signer.Parse(token)
	if err != nil {
		return nil
	}
	return helpers.RedisDel(ctx, s.rdb, sessionKey(sid))
}

var _ Store = (*RedisStore)(nil)
