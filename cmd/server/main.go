package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/bookverse/internal/cache"
	"github.com/nikolayk812/bookverse/internal/config"
	"github.com/nikolayk812/bookverse/internal/httpapi"
	"github.com/nikolayk812/bookverse/internal/ratelimit"
	"github.com/nikolayk812/bookverse/internal/repository"
	"github.com/nikolayk812/bookverse/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := run(logger); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

func run(logger zerolog.Logger) error {
	cfg := config.Load()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}
	logger.Info().Msg("connected to postgres")

	if err := repository.Migrate(ctx, pool); err != nil {
		return err
	}

	bookRepo, err := repository.NewBook(pool)
	if err != nil {
		return err
	}
	cartRepo, err := repository.NewCart(pool)
	if err != nil {
		return err
	}
	orderRepo, err := repository.NewOrder(pool)
	if err != nil {
		return err
	}

	if cfg.SeedOnStart {
		if err := repository.SeedBooks(ctx, bookRepo); err != nil {
			return err
		}
	}

	cartService, err := service.NewCartService(cartRepo, bookRepo)
	if err != nil {
		return err
	}
	orderService, err := service.NewOrderService(cartRepo, orderRepo)
	if err != nil {
		return err
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer redisClient.Close()

	recCache, err := cache.NewRedisCache(redisClient, cfg.RecommendTTL)
	if err != nil {
		return err
	}
	recommender, err := service.NewRecommendService(bookRepo, recCache,
		cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel, logger)
	if err != nil {
		return err
	}
	limiter, err := ratelimit.NewFixedWindow(redisClient, "bookverse:recs",
		cfg.RecommendLimit, cfg.RecommendWindow)
	if err != nil {
		return err
	}

	router := httpapi.NewRouter(httpapi.RouterConfig{
		Cart:        cartService,
		Orders:      orderService,
		Books:       bookRepo,
		Recommender: recommender,
		Limiter:     limiter,
		JWTSecret:   []byte(cfg.JWTSecret),
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
