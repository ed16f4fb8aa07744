package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/expertsdental/clinic-system/internal/api"
	"github.com/expertsdental/clinic-system/internal/core/domain"
	"github.com/expertsdental/clinic-system/internal/infrastructure/config"
	mongoinfra "github.com/expertsdental/clinic-system/internal/infrastructure/db/mongo"
	redisinfra "github.com/expertsdental/clinic-system/internal/infrastructure/db/redis"
	"github.com/expertsdental/clinic-system/internal/infrastructure/storage"
	"github.com/expertsdental/clinic-system/pkg/logger"

	_ "github.com/expertsdental/clinic-system/docs"
)

// @title           Dental Clinic Management API
// @version         1.0
// @description     Role-based clinic management: patients, appointments, visits, payments and medical images.
// @BasePath        /api
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	mongoClient, db, err := mongoinfra.Connect(ctx, mongoinfra.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect mongodb")
	}

	redisClient, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect redis")
	}

	imageStore, err := storage.New(storage.Config{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init image store")
	}
	if err := imageStore.EnsureBucket(ctx); err != nil {
		log.Warn().Err(err).Msg("ensure bucket failed")
	}

	counters := mongoinfra.NewCounters(db)
	userRepo := mongoinfra.NewUserRepository(db, counters)
	appointmentRepo := mongoinfra.NewAppointmentRepository(db, counters)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("ensure user indexes failed")
	}
	if err := appointmentRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("ensure appointment indexes failed")
	}

	if err := seedAdmin(ctx, userRepo, cfg.Seed, log); err != nil {
		log.Fatal().Err(err).Msg("seed admin account failed")
	}

	e, err := api.NewRouter(api.RouterDeps{
		Mongo:         db,
		Redis:         redisClient,
		Storage:       imageStore,
		JWTSecret:     cfg.JWTSecret,
		SecureCookies: cfg.IsProduction(),
		Logger:        log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("clinic server started")

	shutdownCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-shutdownCtx.Done()
	log.Info().Msg("shutdown signal received")

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(timeoutCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if err := mongoClient.Disconnect(timeoutCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect error")
	}
	if err := redisClient.Close(); err != nil {
		log.Error().Err(err).Msg("redis close error")
	}

	log.Info().Msg("server exited cleanly")
}

// seedAdmin creates the bootstrap admin account on an empty users collection.
// The account starts with the first-login flag set so the seeded password
// must be changed before normal use.
func seedAdmin(ctx context.Context, users *mongoinfra.UserRepository, seed config.SeedConfig, log zerolog.Logger) error {
	_, err := users.FindByUsername(ctx, seed.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = users.Create(ctx, &domain.User{
		Username:             seed.AdminUsername,
		PasswordHash:         string(hash),
		FullName:             seed.AdminFullName,
		Role:                 domain.RoleAdmin,
		IsFirstLogin:         true,
		SessionDurationHours: 8,
		CreatedAt:            time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	log.Info().Str("username", seed.AdminUsername).Msg("seeded bootstrap admin account")
	return nil
}
