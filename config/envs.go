package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultLength   = 10
	defaultWidth    = 10
	defaultLogLevel = "info"
)

// Config holds the generator's configuration values.
type Config struct {
	Length   int          // Number of maze rows
	Width    int          // Number of maze columns
	Seed     int64        // Seed for the random source, 0 means time based
	LogLevel logrus.Level // Minimum level written by the application logger
}

// Load reads the configuration from the environment.
// Values in a .env file are used for variables that are not already set.
func Load() (Config, error) {
	// Load .env file if available
	_ = godotenv.Load()

	length, err := getEnvAsIntWithDefault("MAZE_LENGTH", defaultLength)
	if err != nil {
		return Config{}, err
	}

	width, err := getEnvAsIntWithDefault("MAZE_WIDTH", defaultWidth)
	if err != nil {
		return Config{}, err
	}

	seed, err := getEnvAsIntWithDefault("MAZE_SEED", 0)
	if err != nil {
		return Config{}, err
	}

	level, err := logrus.ParseLevel(getEnvWithDefault("LOG_LEVEL", defaultLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("environment variable LOG_LEVEL: %w", err)
	}

	return Config{
		Length:   length,
		Width:    width,
		Seed:     int64(seed),
		LogLevel: level,
	}, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer or returns a default value if not set.
func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}
