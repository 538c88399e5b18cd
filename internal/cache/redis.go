package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/seatmap/config"
	"github.com/Domenick1991/seatmap/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	seatmapTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, seatmapTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		seatmapTTL: seatmapTTL,
	}
}

// GetSeatmap returns the cached reconciled seat map for a flight, or nil
// on a miss. The TTL is only a backstop; writes invalidate explicitly.
func (c *RedisCache) GetSeatmap(ctx context.Context, flightID string) ([]domain.Seat, error) {
	data, err := c.client.Get(ctx, seatmapKey(flightID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var seats []domain.Seat
	if err := json.Unmarshal(data, &seats); err != nil {
		return nil, err
	}
	return seats, nil
}

func (c *RedisCache) SetSeatmap(ctx context.Context, flightID string, seats []domain.Seat) error {
	payload, err := json.Marshal(seats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, seatmapKey(flightID), payload, c.seatmapTTL).Err()
}

func (c *RedisCache) InvalidateSeatmap(ctx context.Context, flightID string) error {
	return c.client.Del(ctx, seatmapKey(flightID)).Err()
}

func (c *RedisCache) AcquireSeatLock(ctx context.Context, flightID, seatID string, ttl time.Duration) (bool, error) {
	key := seatLockKey(flightID, seatID)
	return c.client.SetNX(ctx, key, "locked", ttl).Result()
}

func (c *RedisCache) ReleaseSeatLock(ctx context.Context, flightID, seatID string) error {
	return c.client.Del(ctx, seatLockKey(flightID, seatID)).Err()
}

func seatmapKey(flightID string) string {
	return fmt.Sprintf("cache:seatmap:%s", flightID)
}

func seatLockKey(flightID, seatID string) string {
	return fmt.Sprintf("lock:flight:%s:seat:%s", flightID, seatID)
}
