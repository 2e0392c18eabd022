package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dyorhub/referral-service/internal/models"
)

func TestLeaderboardCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	// Get container host and port
	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	// Ping to ensure connection
	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewLeaderboardCacheRepository(rdb, 2*time.Second)

	page := &models.LeaderboardPage{
		Entries: []models.LeaderboardEntry{
			{UserID: uuid.New(), Username: "alice", ReferralCount: 5},
		},
		Total:      1,
		Page:       1,
		Limit:      20,
		TotalPages: 1,
	}

	t.Run("Set and Get leaderboard page", func(t *testing.T) {
		err := repo.SetPage(ctx, 1, 20, page)
		assert.NoError(t, err)

		got, err := repo.GetPage(ctx, 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, page, got)
	})

	t.Run("Get missing page returns error", func(t *testing.T) {
		_, err := repo.GetPage(ctx, 99, 20)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found in cache")
	})

	t.Run("Pages with different limits are cached separately", func(t *testing.T) {
		err := repo.SetPage(ctx, 1, 50, page)
		assert.NoError(t, err)

		_, err = repo.GetPage(ctx, 1, 10)
		assert.Error(t, err)
	})

	t.Run("Cached page expires", func(t *testing.T) {
		err := repo.SetPage(ctx, 2, 20, page)
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err = repo.GetPage(ctx, 2, 20)
		assert.Error(t, err)
	})
}
