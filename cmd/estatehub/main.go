package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mikelm2020/estatehub/internal/api"
	"github.com/mikelm2020/estatehub/internal/core/token"
	mongodb "github.com/mikelm2020/estatehub/internal/infrastructure/db/mongo"
	redisdb "github.com/mikelm2020/estatehub/internal/infrastructure/db/redis"
	"github.com/mikelm2020/estatehub/internal/pkg/config"
	"github.com/mikelm2020/estatehub/pkg/logger"
)

// @title        EstateHub API
// @version      1.0
// @description  Real-estate listing backend: agent authentication, property
// @description  listings, and reference data.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Warn().Err(err).Msg("index creation failed")
	}

	codec := token.NewCodec(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.TokenTTL)

	e, dispatcher := api.NewRouter(db, rdb, codec, log)

	workerCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	dispatcher.Start(workerCtx)

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting estatehub server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		log.Fatal().Err(err).Msg("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	stopWorkers()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("server stopped")
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewAgentRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewPropertyRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewCityRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewInteractionRepository(db).EnsureIndexes(ctx)
}
