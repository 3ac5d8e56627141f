package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"solarys/internal/config"
	"solarys/internal/database"
	"solarys/internal/inference"
	"solarys/internal/logger"
	"solarys/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx := context.Background()

	pool, err := database.Connect(ctx, cfg.DatabaseURL, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := database.RunMigrations(ctx, pool, zapLogger); err != nil {
			zapLogger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	predictor, err := inference.Load(cfg.ModelPath, cfg.ModelColumnsPath)
	if err != nil {
		zapLogger.Warn("Delay model not loaded, prediction endpoint disabled",
			zap.String("model_path", cfg.ModelPath),
			zap.String("columns_path", cfg.ModelColumnsPath),
			zap.Error(err),
		)
	} else {
		zapLogger.Info("Delay model loaded", zap.Int("columns", len(predictor.Columns())))
	}

	srv, err := server.NewServer(cfg, database.NewPoolProvider(pool), predictor, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to build server", zap.Error(err))
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server gracefully ...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server shutdown", zap.Error(err))
	}
	zapLogger.Info("Server exiting")
}
