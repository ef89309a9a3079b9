package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/HakimZ78/devhakim-api/internal/api"
	"github.com/HakimZ78/devhakim-api/internal/api/handlers"
	"github.com/HakimZ78/devhakim-api/internal/cache"
	"github.com/HakimZ78/devhakim-api/internal/queue/tasks"
	"github.com/HakimZ78/devhakim-api/internal/repository"
	"github.com/HakimZ78/devhakim-api/pkg/config"
	"github.com/HakimZ78/devhakim-api/pkg/database"
	"github.com/HakimZ78/devhakim-api/pkg/logger"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("starting portfolio api",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	log.Info("database connected")

	jwtSecret := []byte(cfg.JWTSecret)
	if len(jwtSecret) == 0 {
		log.Warn("JWT_SECRET not set, using default (INSECURE for production)")
		jwtSecret = []byte("change-me-in-production-please")
	}

	// Redis backs the public list cache and the recalc queue. When it is
	// down the API still serves; lists skip the cache and recalcs are lost
	// until the next mutation.
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	var lc *cache.ListCache
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, list cache disabled", zap.Error(err))
	} else {
		lc = cache.NewListCache(cache.NewRedisStore(rdb), cfg.CacheTTL)
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer asynqClient.Close()
	enq := tasks.NewEnqueuer(asynqClient)

	userRepo := repository.NewUserRepository(db)
	authHandler := handlers.NewAuthHandler(userRepo, jwtSecret)

	router := api.NewRouter(api.Dependencies{
		HMACSecret:  jwtSecret,
		AuthHandler: authHandler,
		Resources:   api.NewResourceRoutes(db, lc, enq),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
