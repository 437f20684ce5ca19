// main.go
package main

import (
	"context"
	"log"

	"car-rental/cmd"
	"car-rental/internal/data/fixture"
	"car-rental/internal/data/repository"
	"car-rental/internal/wire"
	"car-rental/pkg/kv"
	"car-rental/pkg/utils"

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

	// Pick the session store: Redis when configured, in-process otherwise
	var store kv.Store
	if config.Redis.Addr != "" {
		redisStore := kv.NewRedisStore(config.Redis)
		if err := redisStore.Ping(context.Background()); err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		logger.Info("Redis connected successfully", zap.String("addr", config.Redis.Addr))
		store = redisStore
	} else {
		logger.Info("No redis address configured, using in-memory session store")
		store = kv.NewMemoryStore()
	}
	defer store.Close()

	// Initialize all repositories over the startup fixtures
	repos := repository.NewRepository(
		fixture.Vehicles(),
		fixture.Categories(),
		fixture.Bookings(),
		store,
		config.Session.UserKey,
		logger,
	)

	// Restore the user snapshot left by a previous run, if any
	if user, err := repos.User.Load(context.Background()); err != nil {
		logger.Warn("Failed to load user snapshot", zap.Error(err))
	} else if user != nil {
		logger.Info("Restored user snapshot", zap.String("user_id", user.ID), zap.String("email", user.Email))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
