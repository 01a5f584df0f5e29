package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"taxi-fare-api/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const redisKeyPrefix = "geocode:"

// Redis shares cached results between replicas. Backend failures are logged
// and treated as misses so a Redis outage never blocks resolution.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a cache on top of client; entries expire after ttl.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// Get returns the cached result for key.
func (r *Redis) Get(ctx context.Context, key string) (models.GeocodeResult, bool) {
	var result models.GeocodeResult

	data, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("key", key).Msg("cache: redis get failed")
		}
		return result, false
	}

	if err := json.Unmarshal(data, &result); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache: corrupt redis entry")
		return result, false
	}
	return result, true
}

// Set stores result under key with the configured TTL.
func (r *Redis) Set(ctx context.Context, key string, result models.GeocodeResult) {
	data, err := json.Marshal(result)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache: failed to encode result")
		return
	}
	if err := r.client.Set(ctx, redisKeyPrefix+key, data, r.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache: redis set failed")
	}
}
