package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store keeps the active token per user in Redis so a session can be
// checked and revoked without waiting for JWT expiry.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func key(userID int64) string {
	return fmt.Sprintf("session:%d", userID)
}

func (s *Store) Save(ctx context.Context, userID int64, token string, ttl time.Duration) error {
	return s.rdb.Set(ctx, key(userID), token, ttl).Err()
}

// Valid reports whether token is the currently stored session token for
// userID. A missing key means the session was revoked or never issued.
func (s *Store) Valid(ctx context.Context, userID int64, token string) (bool, error) {
	stored, err := s.rdb.Get(ctx, key(userID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored == token, nil
}

func (s *Store) Revoke(ctx context.Context, userID int64) error {
	return s.rdb.Del(ctx, key(userID)).Err()
}
