// main.go
package main

import (
	"context"
	"log"

	"hotel-booking/cmd"
	"hotel-booking/internal/clock"
	"hotel-booking/internal/data/fixture"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/wire"
	"hotel-booking/pkg/storage"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("storage", config.Storage.Driver),
	)

	if err := fixture.Validate(fixture.Hotels(), fixture.Rooms()); err != nil {
		logger.Fatal("Invalid catalog fixtures", zap.Error(err))
	}

	// Open the profile store
	store, closeStore, err := storage.Open(context.Background(), config, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer closeStore()

	logger.Info("Storage ready", zap.String("driver", config.Storage.Driver))

	// Initialize all repositories
	repos := repository.NewRepository(store, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, clock.NewSystem(), logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}
