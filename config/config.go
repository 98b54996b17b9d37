package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	Addr            string        `env:"ESTIMATOR_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"ESTIMATOR_LOG_LEVEL" envDefault:"info"`
	ReadTimeout     time.Duration `env:"ESTIMATOR_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"ESTIMATOR_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"ESTIMATOR_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"ESTIMATOR_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Sin REDIS_ADDR se usa la caché en memoria
	RedisAddr        string        `env:"ESTIMATOR_REDIS_ADDR"`
	RedisPassword    string        `env:"ESTIMATOR_REDIS_PASSWORD"`
	RedisDB          int           `env:"ESTIMATOR_REDIS_DB" envDefault:"0"`
	CacheTTL         time.Duration `env:"ESTIMATOR_CACHE_TTL" envDefault:"1h"`
	MemoryCacheLimit int           `env:"ESTIMATOR_MEMORY_CACHE_LIMIT" envDefault:"10000"`

	RateLimit  int           `env:"ESTIMATOR_RATE_LIMIT" envDefault:"60"`
	RateWindow time.Duration `env:"ESTIMATOR_RATE_WINDOW" envDefault:"1m"`
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the configuration from the given variables only.
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("server address is required")
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("rate limit must be positive, got %d", c.RateLimit)
	}
	if c.RateWindow <= 0 {
		return fmt.Errorf("rate window must be positive, got %s", c.RateWindow)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache ttl must not be negative, got %s", c.CacheTTL)
	}
	return nil
}

// UseRedis reports whether estimates are cached in Redis.
func (c *Config) UseRedis() bool {
	return c.RedisAddr != ""
}
