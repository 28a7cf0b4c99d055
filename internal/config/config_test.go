package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nonexistent.yaml"))
	t.Setenv("DATABASE_URL", "")
	t.Setenv("WORKSPACE_DIR", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, ".", cfg.Paths.WorkspaceDir)
	assert.Len(t, cfg.Fetch.Cities, 8)
	assert.Equal(t, "London", cfg.Fetch.Cities[0].Name)
	assert.Len(t, cfg.Fetch.Keywords, 5)
	assert.Equal(t, 730, cfg.Fetch.Range.Days())
	assert.Equal(t, DefaultSheets, cfg.Extract.Sheets)
	assert.Equal(t, 1*time.Second, cfg.Fetch.WeatherDelay)
	assert.Equal(t, 5*time.Second, cfg.Fetch.TrendsDelay)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nonexistent.yaml"))
	t.Setenv("DATABASE_URL", "postgres://localhost/pressures")
	t.Setenv("WORKSPACE_DIR", "/srv/pressures")
	t.Setenv("FETCH_DAYS", "30")
	t.Setenv("WEATHER_FETCH_DELAY", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "postgres://localhost/pressures", cfg.Database.URL)
	assert.Equal(t, "/srv/pressures", cfg.Paths.WorkspaceDir)
	assert.Equal(t, 30, cfg.Fetch.Range.Days())
	assert.Equal(t, 250*time.Millisecond, cfg.Fetch.WeatherDelay)
}

func TestLoadFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
cities:
  - name: York
    latitude: 53.96
    longitude: -1.08
keywords:
  - norovirus
sheets:
  - Flu
days: 90
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	require.Len(t, cfg.Fetch.Cities, 1)
	assert.Equal(t, "York", cfg.Fetch.Cities[0].Name)
	assert.InDelta(t, 53.96, cfg.Fetch.Cities[0].Latitude, 1e-9)
	assert.Equal(t, []string{"norovirus"}, cfg.Fetch.Keywords)
	assert.Equal(t, []string{"Flu"}, cfg.Extract.Sheets)
	assert.Equal(t, 90, cfg.Fetch.Range.Days())
}

func TestLoadRejectsBadCity(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
cities:
  - name: Nowhere
    latitude: 120.0
    longitude: 0.0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("CONFIG_FILE", path)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "latitude out of range")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cities: [unclosed"), 0o644))
	t.Setenv("CONFIG_FILE", path)

	_, err := Load()
	require.Error(t, err)
}
