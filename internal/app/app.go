package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/officedash-backend/internal/adapter/cache"
	"github.com/heartmarshall/officedash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/officedash-backend/internal/config"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and the optional Redis cache, and serves HTTP until ctx is
// cancelled. The exchange-rate refresher runs alongside the server.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	redisClient := connectCache(ctx, cfg.Redis, logger)
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	application := Build(logger, cfg, pool, redisClient)
	defer application.Close()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      application.Handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	refresherDone := make(chan struct{})
	go func() {
		defer close(refresherDone)
		application.Currency.Run(runCtx)
	}()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-serveErr:
		stop()
		<-refresherDone
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", slog.String("error", err.Error()))
	}
	stop()
	<-refresherDone

	logger.Info("stopped")
	return nil
}

// connectCache returns nil when Redis is not configured or unreachable.
// The exchange-rate cache is optional and the service runs without it.
func connectCache(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) *redis.Client {
	if cfg.URL == "" {
		return nil
	}
	client, err := cache.Connect(ctx, cfg.URL)
	if err != nil {
		logger.Warn("redis unavailable, running without rate cache", slog.String("error", err.Error()))
		return nil
	}
	return client
}
