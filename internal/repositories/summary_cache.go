package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-finance-assistant/internal/logger"
	"github.com/sbilibin2017/gw-finance-assistant/internal/models"
)

// SummaryCacheRepository caches daily summaries in Redis, one key per user and day.
type SummaryCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached summaries
}

// NewSummaryCacheRepository creates a new repository instance with the given TTL
func NewSummaryCacheRepository(client *redis.Client, expiration time.Duration) *SummaryCacheRepository {
	return &SummaryCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func summaryKey(phone, day string) string {
	return fmt.Sprintf("summary:%s:%s", phone, day)
}

// Get returns the cached summary, or nil on a cache miss.
func (r *SummaryCacheRepository) Get(ctx context.Context, phone, day string) (*models.DailySummary, error) {
	key := summaryKey(phone, day)

	val, err := r.client.Get(ctx, key).Bytes()
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

	var summary models.DailySummary
	if err := json.Unmarshal(val, &summary); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", string(val),
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", summary.Date,
		"error", nil,
	)

	return &summary, nil
}

// Set caches summary with the repository TTL.
func (r *SummaryCacheRepository) Set(ctx context.Context, phone, day string, summary *models.DailySummary) error {
	key := summaryKey(phone, day)

	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Delete drops the cached summary. Deleting a missing key is not an error.
func (r *SummaryCacheRepository) Delete(ctx context.Context, phone, day string) error {
	key := summaryKey(phone, day)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
