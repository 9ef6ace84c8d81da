package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(envAPIKey, "secret")
	t.Setenv(envPort, "")
	t.Setenv(envEndpoint, "")
	t.Setenv(envLogLevel, "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, defaultLogLevel, cfg.LogLevel)
	assert.Empty(t, cfg.Endpoint)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(envAPIKey, "secret")
	t.Setenv(envPort, "9000")
	t.Setenv(envEndpoint, "http://localhost:1234/")
	t.Setenv(envLogLevel, "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "http://localhost:1234/", cfg.Endpoint)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":9000", cfg.Addr())
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv(envPort, "eighty")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_MissingAPIKey(t *testing.T) {
	t.Setenv(envAPIKey, "")
	t.Setenv(envPort, "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)
}

func TestValidate_PortOutOfRange(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := &Config{APIKey: "secret", Port: port}
		assert.EqualError(t, cfg.Validate(), "port: must be between 1 and 65535")
	}
}
