package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults when no config file exists", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("defaults with empty config file path", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, ":8000", cfg.Server.Address)
		assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
		assert.Equal(t, 10, cfg.Gemini.TimeoutSeconds)
		assert.Contains(t, cfg.Server.AllowedOrigins, "http://localhost:3000")
		assert.Equal(t, "development", cfg.Logging.Mode)
	})

	t.Run("values from config file", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(configPath, []byte(`server:
  address: ":9000"
  allowed_origins:
    - https://tutor.example.com
logging:
  mode: production
`), 0644))

		cfg, err := Load(configPath)
		require.NoError(t, err)
		assert.Equal(t, ":9000", cfg.Server.Address)
		assert.Equal(t, []string{"https://tutor.example.com"}, cfg.Server.AllowedOrigins)
		assert.Equal(t, "production", cfg.Logging.Mode)
	})

	t.Run("environment variables override model and API key", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "test-key")
		t.Setenv("GEMINI_MODEL", "gemini-2.0-pro")
		t.Chdir(t.TempDir())

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "test-key", cfg.Gemini.APIKey)
		assert.Equal(t, "gemini-2.0-pro", cfg.Gemini.Model)
	})
}
