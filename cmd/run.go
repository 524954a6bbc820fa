package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/Acronica/Team-Maker/bot"
	"github.com/Acronica/Team-Maker/config"
	"github.com/Acronica/Team-Maker/dependencies/clock"
	"github.com/Acronica/Team-Maker/domain/engine"
	"github.com/Acronica/Team-Maker/httpapi"
	"github.com/Acronica/Team-Maker/store"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting team maker bot...")

	// Load configuration
	cfg := config.Get()

	// Initialize snapshot storage
	snapshots, err := newSnapshotStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize snapshot store: %w", err)
	}

	// Load persisted guild configs into the registry
	registry := engine.NewRegistry()
	configs, err := snapshots.Load(ctx)
	if err != nil {
		log.WithError(err).Warn("Could not load config snapshot, starting empty")
	} else {
		registry.SeedConfigs(configs)
		log.WithField("guilds", len(configs)).Info("Loaded guild configs")
	}

	// Initialize Discord bot
	log.Info("Initializing Discord bot...")
	discordBot, err := bot.New(bot.Config{
		Token:           cfg.DiscordToken,
		SetupSessionTTL: cfg.SetupSessionTTL,
		SweepInterval:   cfg.SweepInterval,
	}, registry, snapshots, clock.NewSystemClock())
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Discord bot initialized successfully")

	// Start the companion API
	apiServer := httpapi.NewServer(httpapi.Config{APIKey: cfg.APIKey, Port: cfg.APIPort}, discordBot)
	apiErr := make(chan error, 1)
	go func() {
		apiErr <- apiServer.Start()
	}()

	log.Infof("Bot is running in %s mode...", cfg.Environment)
	select {
	case err := <-apiErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	// Cleanup resources
	log.Info("Shutting down bot...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down API server: %v", err)
	}
	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	log.Info("Shutdown completed")
	return nil
}

func newSnapshotStore(cfg *config.Config) (store.SnapshotStore, error) {
	switch cfg.StorageType {
	case "redis":
		return store.NewRedisStore(cfg.RedisURL)
	case "file", "":
		return store.NewFileStore(cfg.SnapshotPath), nil
	}
	return nil, fmt.Errorf("unknown storage type %q", cfg.StorageType)
}
