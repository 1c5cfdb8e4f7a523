// Package constants provides centralized definitions of constants used throughout the application
package constants

// Environment variable names
const (
	// EnvAPIKey is the environment variable containing the LightX API key
	EnvAPIKey = "LIGHTX_API_KEY"

	// EnvBaseURL overrides the LightX API base URL
	EnvBaseURL = "LIGHTX_BASE_URL"

	// EnvLogLevel sets the logrus log level (trace..panic)
	EnvLogLevel = "LIGHTX_LOG_LEVEL"

	// EnvTimeout overrides the per-request timeout (Go duration syntax)
	EnvTimeout = "LIGHTX_TIMEOUT"

	// EnvPollInterval overrides the wait between status checks (Go duration syntax)
	EnvPollInterval = "LIGHTX_POLL_INTERVAL"

	// EnvMaxPollAttempts overrides the status-check budget per job
	EnvMaxPollAttempts = "LIGHTX_MAX_POLL_ATTEMPTS"
)
