package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/showcasehub/showcase-system/internal/api"
	"github.com/showcasehub/showcase-system/internal/core/domain"
	"github.com/showcasehub/showcase-system/internal/infrastructure/config"
	"github.com/showcasehub/showcase-system/internal/infrastructure/db/jsonstore"
	"github.com/showcasehub/showcase-system/internal/infrastructure/db/redis"
	"github.com/showcasehub/showcase-system/internal/infrastructure/storage"
	"github.com/showcasehub/showcase-system/pkg/logger"
)

// defaultRankTable seeds ranks.json on a fresh deployment. Key order defines
// the upgrade progression.
func defaultRankTable() *domain.RankTable {
	names := []string{"broke", "bronze", "silver", "gold", "diamond"}
	return domain.NewRankTable(names, map[string]int{
		"broke":   0,
		"bronze":  100,
		"silver":  300,
		"gold":    800,
		"diamond": 2000,
	})
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := jsonstore.Open(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open data directory")
	}
	if err := jsonstore.NewRankRepository(store).SeedDefault(defaultRankTable()); err != nil {
		log.Fatal().Err(err).Msg("failed to seed rank table")
	}

	uploads, err := storage.NewUploadStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open upload directory")
	}

	rdb, err := redisClient(ctx, cfg)
	if err != nil {
		// Redis only backs the rate limiter; run without it rather than refuse to start.
		log.Warn().Err(err).Msg("redis unavailable, rate limiting disabled")
	}

	e := api.NewRouter(cfg, store, uploads, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	log.Info().Msg("server stopped")
}

func redisClient(ctx context.Context, cfg *config.Config) (*goredis.Client, error) {
	if cfg.Redis.Addr == "" {
		return nil, nil
	}
	return redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
}
