package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "data/calls.xlsx", cfg.Data.CallsPath)
	assert.Equal(t, "data/emails.xlsx", cfg.Data.EmailsPath)
	assert.Equal(t, "data/marketing-2026.json", cfg.Data.MarketingPath)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DASH_PORT", "9090")
	t.Setenv("DASH_CALLS_PATH", "/srv/data/calls.xlsx")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/srv/data/calls.xlsx", cfg.Data.CallsPath)
}
