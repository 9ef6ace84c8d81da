package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tomsarry/woyt_sentiment/config"
)

func TestRun_MissingAPIKey(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "error")

	// returns before the server is started
	assert.ErrorIs(t, run(), config.ErrMissingAPIKey)
}

func TestRun_InvalidPort(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "secret")
	t.Setenv("PORT", "0")
	t.Setenv("LOG_LEVEL", "error")

	assert.EqualError(t, run(), "port: must be between 1 and 65535")
}
