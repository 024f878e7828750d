package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/kiosk123/user-api/internal/api"
	"github.com/kiosk123/user-api/internal/core/service"
	"github.com/kiosk123/user-api/internal/infrastructure/config"
	mongodb "github.com/kiosk123/user-api/internal/infrastructure/db/mongo"
	redisdb "github.com/kiosk123/user-api/internal/infrastructure/db/redis"
	"github.com/kiosk123/user-api/internal/infrastructure/queue"
	"github.com/kiosk123/user-api/internal/seed"
	"github.com/kiosk123/user-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Stores ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := redisdb.NewCachedUserRepository(mongodb.NewUserRepository(db), rdb, log)
	postRepo := mongodb.NewPostRepository(db)
	authRepo := mongodb.NewAuthRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}
	if err := authRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	// --- Audit trail ---
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, service.NewAuditService(auditRepo, log), log)
	dispatcher.Start(ctx)

	// --- Services ---
	userService := service.NewUserService(userRepo, dispatcher, log)
	postService := service.NewPostService(postRepo, userRepo, dispatcher, log)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, 24*time.Hour)

	if cfg.Env == "development" {
		if err := seed.Run(ctx, userService, postService, log); err != nil {
			log.Warn().Err(err).Msg("seed data insertion failed")
		}
	}

	e, err := api.NewRouter(api.Deps{
		Users:     userService,
		Posts:     postService,
		Auth:      authService,
		DB:        db,
		RDB:       rdb,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("router configuration invalid")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
