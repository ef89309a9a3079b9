package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/HakimZ78/devhakim-api/internal/queue/tasks"
	"github.com/HakimZ78/devhakim-api/internal/repository"
	"github.com/HakimZ78/devhakim-api/internal/services"
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

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("redis connection failed", zap.Error(err))
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		},
		asynq.Config{
			Concurrency: cfg.AsynqConcurrency,
		},
	)

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}

	pathRepo := repository.NewLearningPathRepository(db)
	categoryRepo := repository.NewProgressCategoryRepository(db)
	itemRepo := repository.NewProgressItemRepository(db)

	progressSvc := services.NewProgressService(pathRepo, categoryRepo, itemRepo)
	handler := tasks.NewProgressTaskHandler(progressSvc)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeRecalcPath, handler.HandleRecalcPath)
	mux.HandleFunc(tasks.TypeRecalcCategory, handler.HandleRecalcCategory)

	errCh := make(chan error, 1)
	go func() {
		log.Info("asynq worker starting", zap.Int("concurrency", cfg.AsynqConcurrency))
		if err := srv.Run(mux); err != nil {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("worker stopped with error", zap.Error(err))
	}

	// Allow in-flight tasks to finish gracefully
	srv.Shutdown()
}
