package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
width: 128
height: 96
backend: headless
brightness: 60
rotate_every: 10s
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.Width)
	assert.Equal(t, "headless", cfg.Backend)
	assert.Equal(t, 60, cfg.Brightness)
	assert.Equal(t, 10*time.Second, cfg.RotateEvery.Std())
	assert.Equal(t, 30, cfg.FrameRate, "untouched fields keep defaults")
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := writeConfig(t, "backend: hologram\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid config")
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := writeConfig(t, "fetch_every: soon\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid duration")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateBoundsChecks(t *testing.T) {
	cfg := Default()
	cfg.Brightness = 150
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Width = 4
	assert.Error(t, cfg.Validate())
}
