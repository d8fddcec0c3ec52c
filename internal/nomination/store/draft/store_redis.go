package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dematkyc/internal/nomination/models"
	"dematkyc/pkg/platform/sentinel"
)

const draftKeyPrefix = "nomination:draft:"

// RedisStore keeps drafts in Redis with a sliding TTL: every save restarts
// the expiry.
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedis(client redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, d models.Draft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKeyPrefix+d.AccountID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, accountID string) (*models.Draft, error) {
	raw, err := s.client.Get(ctx, draftKeyPrefix+accountID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}
	var d models.Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &d, nil
}

func (s *RedisStore) Delete(ctx context.Context, accountID string) error {
	n, err := s.client.Del(ctx, draftKeyPrefix+accountID).Result()
	if err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
