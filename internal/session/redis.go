package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore keeps sessions in Redis hashes with a TTL, one hash per token.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisStore constructs a Redis-backed session store.
func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}
}

// Create issues a fresh opaque token bound to the identity.
func (s *RedisStore) Create(ctx context.Context, identity Identity) (string, error) {
	token := uuid.NewString()
	if err := s.write(ctx, token, identity); err != nil {
		return "", err
	}
	return token, nil
}

// Get resolves the token or reports it unknown/expired.
func (s *RedisStore) Get(ctx context.Context, token string) (*Identity, error) {
	fields, err := s.client.HGetAll(ctx, redisKeyPrefix+token).Result()
	if err != nil {
		return nil, fmt.Errorf("session lookup: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrNotFound
	}
	userID, err := strconv.ParseInt(fields["user_id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("session lookup: corrupt user id: %w", err)
	}
	return &Identity{
		UserID:        userID,
		Username:      fields["username"],
		Email:         fields["email"],
		ProfilePicURL: fields["profile_pic_url"],
	}, nil
}

// Refresh replaces the identity bag and extends the lifetime.
func (s *RedisStore) Refresh(ctx context.Context, token string, identity Identity) error {
	exists, err := s.client.Exists(ctx, redisKeyPrefix+token).Result()
	if err != nil {
		return fmt.Errorf("session refresh: %w", err)
	}
	if exists == 0 {
		return ErrNotFound
	}
	return s.write(ctx, token, identity)
}

// Delete removes the session. Deleting an unknown token is a no-op.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *RedisStore) write(ctx context.Context, token string, identity Identity) error {
	key := redisKeyPrefix + token
	fields := map[string]any{
		"user_id":         strconv.FormatInt(identity.UserID, 10),
		"username":        identity.Username,
		"email":           identity.Email,
		"profile_pic_url": identity.ProfilePicURL,
	}
	if err := s.client.HSet(ctx, key, fields).Err(); err != nil {
		return fmt.Errorf("session write: %w", err)
	}
	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		return fmt.Errorf("session expire: %w", err)
	}
	return nil
}
