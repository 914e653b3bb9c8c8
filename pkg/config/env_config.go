// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// EnvironmentConfig contains runtime configuration loaded from environment
// variables. Every field has a default so a world can be created in an empty
// environment.
type EnvironmentConfig struct {
	LogLevel    string
	WorldWidth  float64
	WorldHeight float64
	GravityX    float64
	GravityY    float64
	Friction    float64
	TickRate    int
	MaxSprites  int
}

// Environment variable names and their defaults.
const (
	defaultLogLevel    = "INFO"
	defaultWorldWidth  = 2000.0
	defaultWorldHeight = 2000.0
	defaultGravityX    = 0.0
	defaultGravityY    = 0.0
	defaultFriction    = 0.0
	defaultTickRate    = 60
	defaultMaxSprites  = 4096
)

// LoadConfigFromEnv loads configuration from SPRITE_* environment variables,
// applying defaults for any that are unset. Malformed values are reported as
// errors rather than silently replaced.
func LoadConfigFromEnv() (*EnvironmentConfig, error) {
	config := &EnvironmentConfig{
		LogLevel: getEnvString("SPRITE_LOG_LEVEL", defaultLogLevel),
	}

	var err error
	if config.WorldWidth, err = getEnvFloat("SPRITE_WORLD_WIDTH", defaultWorldWidth); err != nil {
		return nil, err
	}
	if config.WorldHeight, err = getEnvFloat("SPRITE_WORLD_HEIGHT", defaultWorldHeight); err != nil {
		return nil, err
	}
	if config.GravityX, err = getEnvFloat("SPRITE_GRAVITY_X", defaultGravityX); err != nil {
		return nil, err
	}
	if config.GravityY, err = getEnvFloat("SPRITE_GRAVITY_Y", defaultGravityY); err != nil {
		return nil, err
	}
	if config.Friction, err = getEnvFloat("SPRITE_FRICTION", defaultFriction); err != nil {
		return nil, err
	}
	if config.TickRate, err = getEnvInt("SPRITE_TICK_RATE", defaultTickRate); err != nil {
		return nil, err
	}
	if config.MaxSprites, err = getEnvInt("SPRITE_MAX_SPRITES", defaultMaxSprites); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that the configuration values are usable.
func (c *EnvironmentConfig) Validate() error {
	if c.WorldWidth <= 0 {
		return fmt.Errorf("invalid world width: %v (must be positive)", c.WorldWidth)
	}
	if c.WorldHeight <= 0 {
		return fmt.Errorf("invalid world height: %v (must be positive)", c.WorldHeight)
	}
	if c.Friction < 0 || c.Friction > 1 {
		return fmt.Errorf("invalid friction: %v (must be in [0, 1])", c.Friction)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("invalid tick rate: %d (must be positive)", c.TickRate)
	}
	if c.MaxSprites <= 0 {
		return fmt.Errorf("invalid max sprites: %d (must be positive)", c.MaxSprites)
	}
	return nil
}

// getEnvString returns the environment variable value or the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvFloat parses a float environment variable, returning the default
// when unset.
func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, value, err)
	}
	return parsed, nil
}

// getEnvInt parses an integer environment variable, returning the default
// when unset.
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, value, err)
	}
	return parsed, nil
}
