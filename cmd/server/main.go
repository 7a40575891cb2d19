package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/seek/client-registry/internal/api"
	"github.com/seek/client-registry/internal/core/domain"
	mongodb "github.com/seek/client-registry/internal/infrastructure/db/mongo"
	redisdb "github.com/seek/client-registry/internal/infrastructure/db/redis"
	"github.com/seek/client-registry/internal/pkg/config"
	"github.com/seek/client-registry/pkg/logger"
)

// @title           Client Registry API
// @version         1.0
// @description     Registers clients, reports aggregate age statistics, gated behind JWT role authorization.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:         cfg.Mongo.URI,
		Database:    cfg.Mongo.Database,
		Timeout:     cfg.Mongo.Timeout,
		MaxPoolSize: cfg.Mongo.MaxPoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(ctx) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
		Timeout:  cfg.Redis.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongodb.NewUserRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := clientRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("client indexes failed")
	}

	seedAdmin(ctx, userRepo, cfg.Admin, log)

	e := api.NewRouter(cfg, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// seedAdmin creates the initial administrative user when configured and not
// already present, so the registry is usable on first boot.
func seedAdmin(ctx context.Context, users *mongodb.UserRepository, cfg config.AdminConfig, log zerolog.Logger) {
	if cfg.Email == "" || cfg.Password == "" {
		return
	}

	if _, err := users.FindByEmail(ctx, cfg.Email); err == nil {
		return
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		log.Warn().Err(err).Msg("admin seed lookup failed")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Warn().Err(err).Msg("admin seed hash failed")
		return
	}

	now := time.Now().UTC()
	if _, err := users.Create(ctx, &domain.User{
		Email:        cfg.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		RoleAlias:    "Admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		log.Warn().Err(err).Msg("admin seed insert failed")
		return
	}

	log.Info().Str("email", cfg.Email).Msg("admin user seeded")
}
