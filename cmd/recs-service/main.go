package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"recs-admin/internal/api"
	"recs-admin/internal/api/handlers"
	"recs-admin/internal/repository"
	"recs-admin/internal/service"
	"recs-admin/pkg/config"
	"recs-admin/pkg/logger"
	"recs-admin/pkg/postgres"

	"go.uber.org/zap"
)

// @title Recommendation Service API
// @version 1.0
// @description Create, retrieve, update, delete and search product recommendations
// @host localhost:8080
// @BasePath /

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting recommendation service", zap.String("store", cfg.Service.StoreDriver))

	ctx := context.Background()
	var store repository.Store
	switch cfg.Service.StoreDriver {
	case "memory":
		store = repository.NewMemoryStore()
	case "postgres":
		db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		repo := repository.NewRecommendationRepository(db, logger.Component("repository"))
		if err := repo.EnsureSchema(ctx); err != nil {
			appLogger.Fatal("Failed to prepare database", zap.Error(err))
		}
		store = repo
	default:
		appLogger.Fatal("Unknown store driver", zap.String("driver", cfg.Service.StoreDriver))
	}

	recService := service.NewRecommendationService(store, logger.Component("service"))
	recHandler := handlers.NewRecommendationHandler(recService, appLogger)
	app := api.SetupServiceRouter(recHandler, &cfg.Server, appLogger)

	go func() {
		addr := ":" + cfg.Service.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
