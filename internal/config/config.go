// Package config loads demo-CLI configuration from the environment.
// The engines themselves take no configuration; everything here only
// shapes the skirmish simulation.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the skirmish CLI
type Config struct {
	Skirmish SkirmishConfig
}

// SkirmishConfig shapes the demo skirmish run
type SkirmishConfig struct {
	// Seed drives every dice roll; the same seed replays the same fight
	Seed int64

	MapWidth  int
	MapHeight int

	// GoblinCount is the size of the opposing goblin band
	GoblinCount int

	// MaxRounds stops a fight that neither side can finish
	MaxRounds int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Skirmish: SkirmishConfig{
			Seed:        getEnvAsInt64OrDefault("SKIRMISH_SEED", 1),
			MapWidth:    getEnvAsIntOrDefault("SKIRMISH_MAP_WIDTH", 20),
			MapHeight:   getEnvAsIntOrDefault("SKIRMISH_MAP_HEIGHT", 12),
			GoblinCount: getEnvAsIntOrDefault("SKIRMISH_GOBLINS", 3),
			MaxRounds:   getEnvAsIntOrDefault("SKIRMISH_MAX_ROUNDS", 20),
		},
	}

	if cfg.Skirmish.MapWidth < 4 || cfg.Skirmish.MapHeight < 4 {
		return nil, fmt.Errorf("map must be at least 4x4, got %dx%d", cfg.Skirmish.MapWidth, cfg.Skirmish.MapHeight)
	}
	if cfg.Skirmish.GoblinCount < 1 {
		return nil, fmt.Errorf("SKIRMISH_GOBLINS must be positive")
	}

	return cfg, nil
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
