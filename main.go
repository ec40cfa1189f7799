// main.go
package main

import (
	"log"

	"salon-booking/cmd"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/wire"
	"salon-booking/pkg/storage"
	"salon-booking/pkg/utils"

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
	)

	// Open the key/value store
	store, err := storage.NewFileStore(config.Data.Dir)
	if err != nil {
		logger.Fatal("Failed to open data store", zap.Error(err))
	}

	// Initialize all repositories (loads the catalog and locales)
	repos, err := repository.NewRepository(store, config, logger)
	if err != nil {
		logger.Fatal("Failed to initialize repositories", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
