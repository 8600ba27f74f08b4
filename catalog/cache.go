package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"salon-site-server/logx"
	"salon-site-server/models"
)

const cacheKeyPrefix = "salon:catalog:"

// Cache stores encoded catalogs by key
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisCache is a Cache backed by redis
type RedisCache struct {
	rdb redis.Cmdable
}

// NewRedisCache wraps a redis client
func NewRedisCache(rdb redis.Cmdable) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

// CachedLoader puts a read-through cache in front of another loader.
// Cache failures are logged and never fail the load.
type CachedLoader struct {
	Next  Loader
	Cache Cache
	TTL   time.Duration
}

func (l *CachedLoader) Name() string {
	return l.Next.Name() + "+cache"
}

func (l *CachedLoader) key() string {
	return cacheKeyPrefix + l.Next.Name()
}

func (l *CachedLoader) Load(ctx context.Context) ([]models.ServiceRecord, error) {
	raw, ok, err := l.Cache.Get(ctx, l.key())
	if err != nil {
		logx.Warn().Err(err).Str("key", l.key()).Msg("⚠️ Catalog cache read failed")
	}
	if ok {
		if records, err := Decode(raw); err == nil {
			logx.Debug().Str("key", l.key()).Int("records", len(records)).Msg("📦 Catalog served from cache")
			return records, nil
		}
		logx.Warn().Str("key", l.key()).Msg("⚠️ Discarding undecodable cached catalog")
	}

	records, err := l.Next.Load(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog for cache: %w", err)
	}
	if err := l.Cache.Set(ctx, l.key(), encoded, l.TTL); err != nil {
		logx.Warn().Err(err).Str("key", l.key()).Msg("⚠️ Catalog cache write failed")
	}
	return records, nil
}

// RedisOptions are the connection settings for NewRedisClient
type RedisOptions struct {
	URL          string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewRedisClient connects and pings redis
func NewRedisClient(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	parsed, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	parsed.DialTimeout = opts.DialTimeout
	parsed.ReadTimeout = opts.ReadTimeout
	parsed.WriteTimeout = opts.WriteTimeout

	client := redis.NewClient(parsed)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}
