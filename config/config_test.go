package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
mighty:
  client: "rest"
  server_url: "http://localhost:5050"
  timeout_seconds: 15
server:
  host: "127.0.0.1"
  port: 8000
log:
  level: "debug"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "rest", cfg.Mighty.Client)
	assert.Equal(t, "http://localhost:5050", cfg.Mighty.ServerURL)
	assert.Equal(t, 15, cfg.Mighty.TimeoutSeconds)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigRejectsUnknownClient(t *testing.T) {
	path := writeConfigFile(t, `
mighty:
  client: "carrier-pigeon"
  server_url: "http://localhost:5050"
server:
  port: 8000
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRequiresServerURLForRestClient(t *testing.T) {
	path := writeConfigFile(t, `
mighty:
  client: "rest"
server:
  port: 8000
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
