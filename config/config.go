package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Environment keys read at startup
const (
	envAPIKey   = "YOUTUBE_API_KEY"
	envEndpoint = "YOUTUBE_API_ENDPOINT"
	envPort     = "PORT"
	envLogLevel = "LOG_LEVEL"
)

const (
	defaultPort     = 8080
	defaultLogLevel = "info"
	maxPort         = 65535
)

// ErrMissingAPIKey is returned by Validate when no API key is configured
var ErrMissingAPIKey = errors.New("youtube_api_key: is required")

// Config holds the process configuration, read once before serving
type Config struct {
	APIKey   string
	Endpoint string
	Port     int
	LogLevel string
}

// Load reads the configuration from the environment, applying defaults
func Load() (*Config, error) {
	cfg := &Config{
		APIKey:   os.Getenv(envAPIKey),
		Endpoint: os.Getenv(envEndpoint),
		Port:     defaultPort,
		LogLevel: defaultLogLevel,
	}

	if port := os.Getenv(envPort); port != "" {
		parsed, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("port: %q is not a number", port)
		}
		cfg.Port = parsed
	}

	if level := os.Getenv(envLogLevel); level != "" {
		cfg.LogLevel = level
	}

	return cfg, nil
}

// Validate checks the required values are present and in range
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}

	if c.Port < 1 || c.Port > maxPort {
		return fmt.Errorf("port: must be between 1 and %d", maxPort)
	}

	return nil
}

// Addr is the address the server listens on
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
