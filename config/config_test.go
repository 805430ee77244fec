package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert := assert.New(t)
	assert.Equal("info", cfg.Log.Level)
	assert.Equal("auto", cfg.Log.Format)
	assert.Equal(":8080", cfg.Server.Addr)
	assert.Equal([]string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal("C4", cfg.Defaults.Root)
	assert.Equal(4, cfg.Defaults.Size)
	assert.Equal("quartal", cfg.Defaults.Unit)
	assert.Equal("standard", cfg.Defaults.Mode)
	assert.Equal("table", cfg.Output)
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quartal.yaml")
	content := `
log:
  level: debug
  format: json
server:
  addr: 127.0.0.1:9000
defaults:
  root: Eb3
  size: 5
  unit: quintal
output: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("debug", cfg.Log.Level)
	assert.Equal("json", cfg.Log.Format)
	assert.Equal("127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal("Eb3", cfg.Defaults.Root)
	assert.Equal(5, cfg.Defaults.Size)
	assert.Equal("quintal", cfg.Defaults.Unit)
	assert.Equal("standard", cfg.Defaults.Mode)
	assert.Equal("json", cfg.Output)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("QUARTAL_LOG_LEVEL", "warn")
	t.Setenv("QUARTAL_DEFAULTS_SIZE", "3")
	t.Setenv("QUARTAL_ADDR", ":9999")

	cfg, err := unmarshal(NewViper())
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 3, cfg.Defaults.Size)
	assert.Equal(t, ":9999", cfg.Server.Addr)
}

func TestLoadHonoursConfigEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: plain\n"), 0o644))
	t.Setenv("QUARTAL_CONFIG", path)

	cfg, err := Load(NewViper())
	require.NoError(t, err)
	assert.Equal(t, "plain", cfg.Output)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Log.Level = "loud"
	cfg.Output = "midi"
	cfg.Defaults.Size = 6
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "output")
	assert.Contains(t, err.Error(), "defaults.size")
}

func TestLoadFromPathRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quartal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  size: 1\n"), 0o644))

	_, err := LoadFromPath(path)
	assert.ErrorContains(t, err, "defaults.size")
}
