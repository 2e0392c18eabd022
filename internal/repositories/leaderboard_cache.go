package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dyorhub/referral-service/internal/logger"
	"github.com/dyorhub/referral-service/internal/models"
)

// LeaderboardCacheRepository caches leaderboard pages in Redis
type LeaderboardCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached pages
}

// NewLeaderboardCacheRepository creates a new repository instance with optional TTL
func NewLeaderboardCacheRepository(client *redis.Client, expiration time.Duration) *LeaderboardCacheRepository {
	return &LeaderboardCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetPage fetches a cached leaderboard page for the given page and limit
func (r *LeaderboardCacheRepository) GetPage(ctx context.Context, page, limit int) (*models.LeaderboardPage, error) {
	key := fmt.Sprintf("referral_leaderboard:%d:%d", page, limit)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("leaderboard page not found in cache for page=%d limit=%d", page, limit)
		}
		return nil, err
	}

	var result models.LeaderboardPage
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", len(result.Entries),
		"error", nil,
	)

	return &result, nil
}

// SetPage caches a leaderboard page in Redis with expiration
func (r *LeaderboardCacheRepository) SetPage(ctx context.Context, page, limit int, result *models.LeaderboardPage) error {
	key := fmt.Sprintf("referral_leaderboard:%d:%d", page, limit)

	data, err := json.Marshal(result)
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
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
