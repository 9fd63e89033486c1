package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recs-admin/internal/api"
	"recs-admin/internal/api/handlers"
	"recs-admin/internal/api/views"
	"recs-admin/internal/console"
	"recs-admin/internal/transport"
	"recs-admin/pkg/config"
	"recs-admin/pkg/logger"

	"go.uber.org/zap"
)

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
	appLogger.Info("Starting recommendation console", zap.String("rest_service", cfg.Console.RestServiceURL))

	page, err := views.Index()
	if err != nil {
		appLogger.Fatal("Failed to parse console page", zap.Error(err))
	}

	client := transport.NewClient(cfg.Console.RestServiceURL, logger.Component("transport"))
	recConsole := console.New(client, logger.Component("console"))
	sessions := console.NewSessions()

	consoleHandler := handlers.NewConsoleHandler(recConsole, sessions, page, appLogger)
	app := api.SetupRouter(consoleHandler, &cfg.Server, appLogger)

	stopPruning := make(chan struct{})
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := sessions.Prune(api.SessionTTL); n > 0 {
					appLogger.Info("Pruned idle sessions", zap.Int("count", n))
				}
			case <-stopPruning:
				return
			}
		}
	}()

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	close(stopPruning)
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
