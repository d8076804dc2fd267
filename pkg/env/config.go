package env

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"archindex/pkg/logger"
)

// LoadEnv loads environment variables from a .env file in the working
// directory. A missing file is not an error for the caller to act on; the
// generator runs fine on defaults.
func LoadEnv() error {
	envPath := ".env"

	if _, statErr := os.Stat(envPath); statErr != nil {
		return statErr
	}

	if err := godotenv.Load(envPath); err != nil {
		return err
	}

	logger.Debug("Environment variables loaded from %s", envPath)
	return nil
}

// GetString returns the environment variable value or a default if not set
func GetString(key string, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	return value
}

// GetInt returns the environment variable value as int or a default if not set
func GetInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		logger.Warn("Environment variable %s is not a valid integer, using default value %d instead", key, defaultValue)
		return defaultValue
	}

	return value
}

// IsBool returns whether the environment variable is set to "true" or uses the default
func IsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	enabled := value == "1" || value == "true" || value == "yes" || value == "y"
	return enabled
}
