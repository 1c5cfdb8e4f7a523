// Package config reads client configuration from the environment, with
// optional .env file support.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/lightxeditor/lightx-go/internal/constants"
	"github.com/lightxeditor/lightx-go/pkg/api/client"
)

// Load reads a .env file from the working directory if one exists. A missing
// file is not an error.
func Load() {
	_ = godotenv.Load()
}

// GetEnv retrieves the value of an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetEnvDuration retrieves a duration environment variable, falling back on
// absence or parse failure.
func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

// GetEnvInt retrieves an integer environment variable, falling back on
// absence or parse failure.
func GetEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

// ClientOptions assembles client options from the environment on top of the
// defaults.
func ClientOptions() *client.Options {
	opts := client.DefaultOptions()
	opts.APIKey = GetEnv(constants.EnvAPIKey, "")
	opts.BaseURL = GetEnv(constants.EnvBaseURL, opts.BaseURL)
	opts.Timeout = GetEnvDuration(constants.EnvTimeout, opts.Timeout)
	opts.PollInterval = GetEnvDuration(constants.EnvPollInterval, opts.PollInterval)
	opts.MaxPollAttempts = GetEnvInt(constants.EnvMaxPollAttempts, opts.MaxPollAttempts)
	return opts
}
