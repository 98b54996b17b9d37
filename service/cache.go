package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"pricing-estimator/repository"
)

// cachedEstimate looks key up in cache and falls back to compute. Cache
// failures are logged and never change the returned value.
func cachedEstimate[T any](
	ctx context.Context,
	cache repository.CacheRepository,
	key string,
	compute func() T,
) T {
	logger := zerolog.Ctx(ctx)

	if cached, ok := cache.Get(ctx, key); ok {
		var result T
		err := json.Unmarshal([]byte(cached), &result)
		if err == nil {
			logger.Debug().Str("key", key).Msg("estimate served from cache")
			return result
		}
		logger.Warn().Err(err).Str("key", key).Msg("discarding unreadable cache entry")
	}

	result := compute()

	data, err := json.Marshal(result)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("failed to encode estimate for cache")
		return result
	}
	if err := cache.Set(ctx, key, string(data)); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("failed to cache estimate")
	}

	return result
}
