package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"pricing-estimator/config"
	httpLayer "pricing-estimator/http"
	"pricing-estimator/repository"
	"pricing-estimator/service"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "estimator",
		Short:         "ROI and video production cost estimators",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServer,
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the estimator web server",
			Args:  cobra.NoArgs,
			RunE:  runServer,
		},
		newROICommand(),
		newVideoCommand(),
	)

	return rootCmd
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger(), nil
}

// newCache picks Redis when configured and reachable, and the in-memory
// cache otherwise. The returned func releases the cache.
func newCache(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (repository.CacheRepository, func()) {
	if !cfg.UseRedis() {
		logger.Info().Int("max_entries", cfg.MemoryCacheLimit).Msg("using in-memory estimate cache")
		return repository.NewMemoryCache(cfg.MemoryCacheLimit), func() {}
	}

	cache := repository.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTL)
	if err := cache.Ping(ctx); err != nil {
		// Sin Redis se usa la caché en memoria
		logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, falling back to in-memory estimate cache")
		if err := cache.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close redis cache")
		}
		return repository.NewMemoryCache(cfg.MemoryCacheLimit), func() {}
	}
	logger.Info().Str("addr", cfg.RedisAddr).Dur("ttl", cfg.CacheTTL).Msg("using redis estimate cache")

	return cache, func() {
		if err := cache.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close redis cache")
		}
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	cache, closeCache := newCache(ctx, cfg, logger)
	defer closeCache()

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.Dependencies{
		ROI:         service.NewROIService(cache),
		Video:       service.NewVideoService(cache),
		RateLimiter: rateLimiter,
		Logger:      logger,
	})

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		logger.Info().Msg("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
		if err := server.Close(); err != nil {
			return fmt.Errorf("failed to close server: %w", err)
		}
	}

	logger.Info().Msg("server exited")
	return nil
}
