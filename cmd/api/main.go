// @title        Tourism Platform API
// @version      1.0
// @description  Multi-role authentication and relevance search over activities and itineraries.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/tripnest/tourism-platform/internal/api"
	"github.com/tripnest/tourism-platform/internal/infrastructure/db/mongo"
	"github.com/tripnest/tourism-platform/internal/infrastructure/db/redis"
	"github.com/tripnest/tourism-platform/internal/pkg/config"
	"github.com/tripnest/tourism-platform/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "tourism-api",
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("api stopped with error")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database, AppName: "tourism-api"})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(dctx)
	}()

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()

	repos, err := api.NewRepositories(db)
	if err != nil {
		return err
	}
	if err := ensureIndexes(ctx, repos); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	e, err := api.NewRouter(cfg, db, rdb, repos, log)
	if err != nil {
		return fmt.Errorf("router: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("api listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func ensureIndexes(ctx context.Context, repos *api.Repositories) error {
	if err := mongo.EnsureIndexes(ctx, repos.Tags, repos.Categories, repos.Activities, repos.Itineraries); err != nil {
		return err
	}
	for _, store := range repos.Credentials {
		if err := mongo.EnsureIndexes(ctx, store); err != nil {
			return err
		}
	}
	return nil
}
