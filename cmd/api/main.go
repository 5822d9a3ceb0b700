package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hunter122526/quantum2017/internal/api"
	"github.com/hunter122526/quantum2017/internal/core/token"
	"github.com/hunter122526/quantum2017/internal/infrastructure/config"
	"github.com/hunter122526/quantum2017/internal/infrastructure/db/postgres"
	redisdb "github.com/hunter122526/quantum2017/internal/infrastructure/db/redis"
	"github.com/hunter122526/quantum2017/internal/infrastructure/queue"
	"github.com/hunter122526/quantum2017/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	secret := cfg.JWT.Secret
	if secret == "" {
		secret = config.InsecureDevSecret
		log.Warn().Msg("JWT_SECRET not set, using insecure development default")
	}
	tokens := token.NewService(secret, cfg.JWT.TokenTTL)

	dbCfg := postgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
		MaxConns: cfg.DB.MaxConns,
	}
	if err := postgres.Migrate(dbCfg); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	pool, err := postgres.Connect(ctx, dbCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer pool.Close()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// The audit worker runs on its own context so it can keep flushing while
	// the HTTP server drains; it stops only after Shutdown returns and no
	// handler can Record anymore.
	auditCtx, stopAudit := context.WithCancel(context.Background())
	audit := queue.NewAuditRecorder(postgres.NewAuditRepository(pool), log)
	audit.Start(auditCtx)

	e := api.NewRouter(pool, rdb, tokens, audit, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting API server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	shutdownErr := e.Shutdown(shutdownCtx)

	stopAudit()
	audit.Wait()

	if shutdownErr != nil {
		log.Error().Err(shutdownErr).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
