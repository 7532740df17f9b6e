package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const confirmKeyPrefix = "griya:confirm:"

func confirmKey(scope, token string) string {
	return confirmKeyPrefix + scope + ":" + token
}

// RedisConfirmations keeps pending requests in Redis so that any server
// instance can answer them. Keys expire on their own.
type RedisConfirmations struct {
	rdb *redis.Client
}

// NewRedisConfirmations creates a Redis-backed confirmation set.
func NewRedisConfirmations(rdb *redis.Client) *RedisConfirmations {
	return &RedisConfirmations{rdb: rdb}
}

func (r *RedisConfirmations) Put(ctx context.Context, p Pending) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode pending confirmation: %w", err)
	}
	ttl := time.Until(p.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := r.rdb.Set(ctx, confirmKey(p.Scope, p.Token), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store pending confirmation: %w", err)
	}
	return nil
}

func (r *RedisConfirmations) Take(ctx context.Context, scope, token string) (Pending, error) {
	data, err := r.rdb.GetDel(ctx, confirmKey(scope, token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Pending{}, ErrUnknownConfirmation
		}
		return Pending{}, fmt.Errorf("failed to read pending confirmation: %w", err)
	}
	var p Pending
	if err := json.Unmarshal(data, &p); err != nil {
		return Pending{}, fmt.Errorf("failed to decode pending confirmation: %w", err)
	}
	return p, nil
}
