package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"github.com/saransh1220/flowart/internal/modules/directory/domain"
)

// GenerationKey holds the counter that versions every cached listing.
const GenerationKey = "directory:generation"

var cacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "directory_cache_requests_total",
	Help: "Directory listing cache lookups by result.",
}, []string{"result"})

// RedisCache caches listing results in Redis. Bumping the generation
// counter orphans every earlier entry; they expire through their TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisCache{client: client, ttl: ttl}
}

// ListKey builds the cache key for a filter and limit under a generation.
func ListKey(generation int64, filter domain.Filter, limit int) string {
	return fmt.Sprintf("directory:list:%d:%d:%s", generation, limit, filter.Key())
}

func (c *RedisCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, GenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *RedisCache) Get(ctx context.Context, filter domain.Filter, limit int) ([]domain.Artist, bool) {
	gen, err := c.generation(ctx)
	if err != nil {
		cacheRequests.WithLabelValues("error").Inc()
		return nil, false
	}

	raw, err := c.client.Get(ctx, ListKey(gen, filter, limit)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.DebugContext(ctx, "directory cache read failed", "error", err)
		}
		cacheRequests.WithLabelValues("miss").Inc()
		return nil, false
	}

	var artists []domain.Artist
	if err := json.Unmarshal(raw, &artists); err != nil {
		cacheRequests.WithLabelValues("error").Inc()
		return nil, false
	}
	cacheRequests.WithLabelValues("hit").Inc()
	return artists, true
}

func (c *RedisCache) Set(ctx context.Context, filter domain.Filter, limit int, artists []domain.Artist) {
	gen, err := c.generation(ctx)
	if err != nil {
		return
	}
	payload, err := json.Marshal(artists)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, ListKey(gen, filter, limit), payload, c.ttl).Err(); err != nil {
		slog.DebugContext(ctx, "directory cache write failed", "error", err)
	}
}

// Invalidate bumps the generation counter.
func (c *RedisCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, GenerationKey).Err(); err != nil {
		return fmt.Errorf("bump directory cache generation: %w", err)
	}
	return nil
}
