package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken string

	// HTTP API configuration
	APIKey  string
	APIPort int

	// Snapshot storage configuration
	StorageType  string // "file" or "redis"
	SnapshotPath string
	RedisURL     string

	// Setup wizard configuration
	SetupSessionTTL time.Duration
	SweepInterval   time.Duration

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	mu       sync.Mutex
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		cfg, err := load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
		instance = cfg
	}
	return instance
}

// SetTestConfig replaces the global instance for tests
func SetTestConfig(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = cfg
}

// ResetConfig clears the global instance so the next Get reloads it
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
}

// NewTestConfig returns a config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		DiscordToken:    "test-token",
		APIKey:          "test-key",
		APIPort:         3000,
		StorageType:     "file",
		SnapshotPath:    "server-configs.json",
		SetupSessionTTL: 15 * time.Minute,
		SweepInterval:   time.Minute,
		Environment:     "test",
	}
}

// load loads configuration from the environment, reading a .env file
// first when one is present.
func load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		APIKey:       os.Getenv("API_KEY"),
		StorageType:  os.Getenv("STORAGE_TYPE"),
		SnapshotPath: os.Getenv("CONFIG_SNAPSHOT_PATH"),
		RedisURL:     os.Getenv("REDIS_URL"),
		Environment:  os.Getenv("ENVIRONMENT"),

		// Defaults
		APIPort:         3000,
		SetupSessionTTL: 15 * time.Minute,
		SweepInterval:   time.Minute,
	}

	if port := os.Getenv("API_PORT"); port != "" {
		parsed, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid API_PORT %q: %w", port, err)
		}
		config.APIPort = parsed
	}
	if ttl := os.Getenv("SETUP_SESSION_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid SETUP_SESSION_TTL %q: %w", ttl, err)
		}
		config.SetupSessionTTL = parsed
	}
	if tick := os.Getenv("SWEEP_INTERVAL"); tick != "" {
		parsed, err := time.ParseDuration(tick)
		if err != nil {
			return nil, fmt.Errorf("invalid SWEEP_INTERVAL %q: %w", tick, err)
		}
		config.SweepInterval = parsed
	}

	if config.StorageType == "" {
		config.StorageType = "file"
	}
	if config.SnapshotPath == "" {
		config.SnapshotPath = "server-configs.json"
	}
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.APIKey == "" {
			return nil, fmt.Errorf("API_KEY is required")
		}
		if config.StorageType == "redis" && config.RedisURL == "" {
			return nil, fmt.Errorf("REDIS_URL is required when STORAGE_TYPE is redis")
		}
	}

	return config, nil
}
