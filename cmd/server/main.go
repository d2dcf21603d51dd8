package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/classumlab/classroom-backend/internal/config"
	"github.com/classumlab/classroom-backend/internal/database"
	"github.com/classumlab/classroom-backend/internal/handler"
	"github.com/classumlab/classroom-backend/internal/logger"
	"github.com/classumlab/classroom-backend/internal/repository"
	"github.com/classumlab/classroom-backend/internal/router"
	"github.com/classumlab/classroom-backend/internal/service"
	"github.com/classumlab/classroom-backend/internal/validator"
)

func main() {
	cfg := config.Load()

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting classroom backend")

	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	classRepo := repository.NewClassRepository(pool, log)
	categoryRepo := repository.NewCategoryRepository(pool)
	noticeRepo := repository.NewNoticeRepository(pool)
	videoRepo := repository.NewVideoRepository(pool)

	classService := service.NewClassService(classRepo, service.NewRedisCache(rdb), cfg, log)
	categoryService := service.NewCategoryService(categoryRepo)
	noticeService := service.NewNoticeService(noticeRepo)
	videoService := service.NewVideoService(videoRepo)

	handlers := &router.Handlers{
		Class:    handler.NewClassHandler(classService),
		Category: handler.NewCategoryHandler(categoryService),
		Notice:   handler.NewNoticeHandler(noticeService),
		Video:    handler.NewVideoHandler(videoService),
	}

	r := router.SetupRouter(handlers, cfg, log)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
