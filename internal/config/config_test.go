package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBuildsDSNFromParts(t *testing.T) {
	path := writeConfig(t, `
env: development
database:
  host: db.local
  port: 3307
  user: app
  password: pw
  name: aisumm
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "app:pw@tcp(db.local:3307)/aisumm?charset=utf8mb4&parseTime=True&loc=Local", cfg.DSN)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "openai-compatible", cfg.AI.Type)
}

func TestLoadPrefersExplicitDSN(t *testing.T) {
	path := writeConfig(t, `
dsn: "root@tcp(127.0.0.1:3306)/custom"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "root@tcp(127.0.0.1:3306)/custom", cfg.DSN)
	assert.False(t, cfg.IsDev())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestExtractTimeoutDefault(t *testing.T) {
	path := writeConfig(t, `
dsn: "root@tcp(127.0.0.1:3306)/aisumm"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Extract.TimeoutSeconds)
}
