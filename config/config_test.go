package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, 60, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
	assert.False(t, cfg.UseRedis())
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"ESTIMATOR_ADDR":        "127.0.0.1:9000",
		"ESTIMATOR_REDIS_ADDR":  "localhost:6379",
		"ESTIMATOR_REDIS_DB":    "2",
		"ESTIMATOR_CACHE_TTL":   "5m",
		"ESTIMATOR_RATE_LIMIT":  "5",
		"ESTIMATOR_RATE_WINDOW": "30s",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.True(t, cfg.UseRedis())
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 5, cfg.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.RateWindow)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"bad duration": {"ESTIMATOR_CACHE_TTL": "soon"},
		"bad int":      {"ESTIMATOR_RATE_LIMIT": "many"},
		"zero limit":   {"ESTIMATOR_RATE_LIMIT": "0"},
		"zero window":  {"ESTIMATOR_RATE_WINDOW": "0s"},
		"negative ttl": {"ESTIMATOR_CACHE_TTL": "-1m"},
	}

	for name, environ := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFrom(environ)
			assert.Error(t, err)
		})
	}
}
