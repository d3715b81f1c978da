package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"diet-planner/internal/app"
	"diet-planner/internal/config"
	"diet-planner/internal/database"
	"diet-planner/internal/ghost"
	"diet-planner/internal/httpapi"
	"diet-planner/internal/storage"
)

func main() {
	// 1. Configuration and logging
	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 2. Storage
	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	planStore, err := storage.NewPlanStore(cfg.PlanExportDir)
	if err != nil {
		logger.Fatal("failed to initialize plan export store", zap.Error(err))
	}

	// 3. Services
	var ghostClient ghost.Client
	if cfg.GhostConfigured() {
		ghostClient = ghost.NewClient(cfg)
	}
	application := app.NewApp(cfg, logger, db, ghostClient, planStore)

	ctx := context.Background()
	if n, err := application.CatalogSize(ctx); err != nil {
		logger.Fatal("failed to read recipe catalog", zap.Error(err))
	} else if n == 0 {
		if _, err := application.SeedCatalog(ctx); err != nil {
			logger.Fatal("failed to seed empty catalog", zap.Error(err))
		}
	}

	// 4. Start Server with Graceful Shutdown
	server := httpapi.NewServer(application, logger, cfg.CORSAllowedOrigins)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("plan server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}
