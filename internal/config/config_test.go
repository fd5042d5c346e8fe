package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "LOG_LEVEL", "SERVER_PORT", "EVENTS_PORT", "REDIS_URL", "SESSION_TTL", "BASE_PATH", "SAVE_CHANNEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 8081, cfg.EventsPort)
	assert.Equal(t, "/api/banners", cfg.BasePath)
	assert.Equal(t, 30*time.Minute, cfg.Sessions.TTL)
	assert.Empty(t, cfg.Sessions.RedisURL)
	assert.Equal(t, "banner.saved", cfg.Notify.Channel)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("RECIPE_MANIFEST", "recipes.yaml")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "redis://localhost:6379/2", cfg.Sessions.RedisURL)
	assert.Equal(t, 2*time.Hour, cfg.Sessions.TTL)
	assert.Equal(t, "recipes.yaml", cfg.Sessions.RecipeManifest)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	for _, key := range []string{"APP_ENV", "LOG_LEVEL", "SERVER_PORT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	dir := t.TempDir()
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), content, 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
}

// TestLoad_InvalidPort verifies that a malformed port is reported.
func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	cfg, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "unable to decode")
}

func TestValidateRequired(t *testing.T) {
	type withRequired struct {
		Token string `mapstructure:"TOKEN" required:"true"`
	}
	err := validateRequired(&withRequired{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required configuration: TOKEN")
	assert.NoError(t, validateRequired(&withRequired{Token: "x"}))
}
