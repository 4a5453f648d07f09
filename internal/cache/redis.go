package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache wraps Redis for the two transient concerns the API has: one-shot
// email-verification tokens and short-lived dashboard aggregates.
type Cache struct {
	client *redis.Client
}

func New(redisURL string) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &Cache{client: redis.NewClient(opts)}, nil
}

// --------------------------------------------------
// Verification tokens
// --------------------------------------------------

const verificationTTL = 24 * time.Hour

func verificationKey(token string) string {
	return "verify:" + token
}

func (c *Cache) StoreVerificationToken(ctx context.Context, token string, userID uint) error {
	return c.client.Set(
		ctx,
		verificationKey(token),
		strconv.FormatUint(uint64(userID), 10),
		verificationTTL,
	).Err()
}

// ConsumeVerificationToken resolves and deletes the token in one step.
// Returns (0, nil) for an unknown or expired token.
func (c *Cache) ConsumeVerificationToken(ctx context.Context, token string) (uint, error) {
	val, err := c.client.GetDel(ctx, verificationKey(token)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// --------------------------------------------------
// Dashboard aggregates
// --------------------------------------------------

func (c *Cache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(val), out)
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, ttl).Err()
}
