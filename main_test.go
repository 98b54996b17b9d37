package main

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricing-estimator/config"
	"pricing-estimator/repository"
)

func TestNewCache_MemoryByDefault(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	cache, closeCache := newCache(context.Background(), cfg, zerolog.Nop())
	defer closeCache()

	assert.IsType(t, &repository.MemoryCache{}, cache)
}

func TestNewCache_UnreachableRedisFallsBackToMemory(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"ESTIMATOR_REDIS_ADDR": "127.0.0.1:9",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cache, closeCache := newCache(ctx, cfg, zerolog.Nop())
	defer closeCache()

	assert.IsType(t, &repository.MemoryCache{}, cache)
}
