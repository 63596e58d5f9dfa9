package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults used when a variable is not set
const (
	DefaultLength = 25
	DefaultHeight = 25
	DefaultLang   = "en"
)

// ErrInvalidValue is returned when an environment variable cannot be parsed
var ErrInvalidValue = errors.New("invalid configuration value")

// Config holds the application's configuration values.
type Config struct {
	Length  int    // Cells along x
	Height  int    // Cells along z
	Seed    int64  // Random seed, 0 picks one from the clock
	Lang    string // Catalog used for user-facing text
	NoColor bool   // Disable coloured output
}

// Load reads the configuration from the environment, after loading a .env
// file from the working directory if there is one.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[CONFIG] [INFO] .env file could not be loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv reads the configuration from environment variables only
func FromEnv() (Config, error) {
	var cfg Config
	var err error

	if cfg.Length, err = getEnvAsIntWithDefault("MAZE_LENGTH", DefaultLength); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = getEnvAsIntWithDefault("MAZE_HEIGHT", DefaultHeight); err != nil {
		return Config{}, err
	}

	seed, err := getEnvAsIntWithDefault("MAZE_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.Seed = int64(seed)

	if cfg.NoColor, err = getEnvAsBoolWithDefault("MAZE_NO_COLOR", false); err != nil {
		return Config{}, err
	}

	cfg.Lang = getEnvWithDefault("MAZE_LANG", DefaultLang)
	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an environment variable as an integer.
func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidValue, key, err)
	}
	return value, nil
}

// getEnvAsBoolWithDefault retrieves an environment variable as a boolean.
func getEnvAsBoolWithDefault(key string, defaultValue bool) (bool, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean: %v", ErrInvalidValue, key, err)
	}
	return value, nil
}
