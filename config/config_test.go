package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lightxeditor/lightx-go/internal/constants"
	"github.com/lightxeditor/lightx-go/pkg/api/client"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_CONFIG_VAR", "set")
	assert.Equal(t, "set", GetEnv("TEST_CONFIG_VAR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("TEST_CONFIG_MISSING", "fallback"))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_CONFIG_DURATION", "750ms")
	assert.Equal(t, 750*time.Millisecond, GetEnvDuration("TEST_CONFIG_DURATION", time.Second))
	assert.Equal(t, time.Second, GetEnvDuration("TEST_CONFIG_DURATION_MISSING", time.Second))

	t.Setenv("TEST_CONFIG_DURATION_BAD", "soon")
	assert.Equal(t, time.Second, GetEnvDuration("TEST_CONFIG_DURATION_BAD", time.Second))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_CONFIG_INT", "7")
	assert.Equal(t, 7, GetEnvInt("TEST_CONFIG_INT", 3))
	assert.Equal(t, 3, GetEnvInt("TEST_CONFIG_INT_MISSING", 3))

	t.Setenv("TEST_CONFIG_INT_BAD", "seven")
	assert.Equal(t, 3, GetEnvInt("TEST_CONFIG_INT_BAD", 3))
}

func TestClientOptions(t *testing.T) {
	t.Setenv(constants.EnvAPIKey, "env-key")
	t.Setenv(constants.EnvBaseURL, "http://localhost:9999")
	t.Setenv(constants.EnvTimeout, "12s")
	t.Setenv(constants.EnvPollInterval, "500ms")
	t.Setenv(constants.EnvMaxPollAttempts, "9")

	opts := ClientOptions()
	assert.Equal(t, "env-key", opts.APIKey)
	assert.Equal(t, "http://localhost:9999", opts.BaseURL)
	assert.Equal(t, 12*time.Second, opts.Timeout)
	assert.Equal(t, 500*time.Millisecond, opts.PollInterval)
	assert.Equal(t, 9, opts.MaxPollAttempts)
}

func TestClientOptionsDefaults(t *testing.T) {
	for _, key := range []string{
		constants.EnvAPIKey,
		constants.EnvBaseURL,
		constants.EnvTimeout,
		constants.EnvPollInterval,
		constants.EnvMaxPollAttempts,
	} {
		// Setenv registers restore-on-cleanup; unset afterwards so the
		// fallback path actually runs.
		t.Setenv(key, "placeholder")
		os.Unsetenv(key)
	}

	defaults := client.DefaultOptions()
	opts := ClientOptions()
	assert.Equal(t, defaults.BaseURL, opts.BaseURL)
	assert.Equal(t, defaults.PollInterval, opts.PollInterval)
	assert.Equal(t, defaults.MaxPollAttempts, opts.MaxPollAttempts)
}
