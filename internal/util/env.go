package util

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/banana-boutique/bananaservice/pkg/logger"
)

// LoadEnv loads a .env file when one exists. Absence is not an error;
// the process then relies on the real environment.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using system environment variables")
	}
}

// GetEnv returns the value of an environment variable, or "" when unset.
func GetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return ""
	}
	return value
}

// GetEnvString returns the value of an environment variable, falling
// back to defaultValue when unset.
func GetEnvString(key string, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}

// GetEnvBool parses a boolean environment variable. Anything other than
// the literal "true" or "false" yields the default.
func GetEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	if value == "true" || value == "false" {
		return value == "true"
	}
	return defaultValue
}

// MustGetEnv returns the value of a required environment variable and
// terminates the process when it is missing or empty.
func MustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		logger.Fatal("Required environment variable not set", "key", key)
	}
	return value
}
