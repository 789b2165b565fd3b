package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-finance-assistant/internal/logger"
	"github.com/sbilibin2017/gw-finance-assistant/internal/models"
)

// IdempotencyRepository keeps short-lived locks and replayable responses in Redis.
// Callers namespace their keys.
type IdempotencyRepository struct {
	client  *redis.Client
	lockTTL time.Duration
	exp     time.Duration
}

// NewIdempotencyRepository creates a repository whose locks expire after lockTTL
// and whose stored responses expire after expiration.
func NewIdempotencyRepository(client *redis.Client, lockTTL, expiration time.Duration) *IdempotencyRepository {
	return &IdempotencyRepository{
		client:  client,
		lockTTL: lockTTL,
		exp:     expiration,
	}
}

// Acquire sets key if it is absent. It reports false when someone else holds it.
func (r *IdempotencyRepository) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := r.client.SetNX(ctx, key+":lock", "processing", r.lockTTL).Result()

	logger.Log.Infow(
		"key", key,
		"result", ok,
		"error", err,
	)

	return ok, err
}

// Release drops the lock taken by Acquire.
func (r *IdempotencyRepository) Release(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key+":lock").Err()

	logger.Log.Infow(
		"key", key,
		"result", "released",
		"error", err,
	)

	return err
}

// MarkSeen records key for the repository TTL and reports whether it was new.
// The mark lasts until it expires or Forget drops it.
func (r *IdempotencyRepository) MarkSeen(ctx context.Context, key string) (bool, error) {
	ok, err := r.client.SetNX(ctx, key+":seen", time.Now().Unix(), r.exp).Result()

	logger.Log.Infow(
		"key", key,
		"result", ok,
		"error", err,
	)

	return ok, err
}

// Forget drops the mark set by MarkSeen so the key counts as new again.
func (r *IdempotencyRepository) Forget(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key+":seen").Err()

	logger.Log.Infow(
		"key", key,
		"result", "forgotten",
		"error", err,
	)

	return err
}

// GetResponse returns the stored response for key, or nil when there is none.
func (r *IdempotencyRepository) GetResponse(ctx context.Context, key string) (*models.CachedResponse, error) {
	val, err := r.client.Get(ctx, key+":response").Bytes()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", nil,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var resp models.CachedResponse
	if err := json.Unmarshal(val, &resp); err != nil {
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", resp.Status,
		"error", nil,
	)

	return &resp, nil
}

// SaveResponse stores resp under key with the repository TTL.
func (r *IdempotencyRepository) SaveResponse(ctx context.Context, key string, resp *models.CachedResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key+":response", data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"status", resp.Status,
		"error", err,
	)

	return err
}
