package workspace

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapCreatesDatedTree(t *testing.T) {
	root := t.TempDir()
	day := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	layout, err := Bootstrap(root, day)
	require.NoError(t, err)

	expected := []string{
		filepath.Join(root, "data", "raw", "nhs", "2025-01-15"),
		filepath.Join(root, "data", "raw", "weather", "2025-01-15"),
		filepath.Join(root, "data", "raw", "trends", "2025-01-15"),
		filepath.Join(root, "data", "processed"),
		filepath.Join(root, "data", "outputs"),
		filepath.Join(root, "logs"),
	}
	for _, dir := range expected {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}

	assert.Equal(t, expected[0], layout.NHSDir)
	assert.Equal(t, filepath.Join(root, "data", "outputs", "sitrep_long.csv"), layout.SitRepOutputPath())
	assert.Equal(t, filepath.Join(root, "data", "processed", "run_summary.txt"), layout.SummaryPath())
}

func TestBootstrapIsIdempotent(t *testing.T) {
	root := t.TempDir()
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	_, err := Bootstrap(root, day)
	require.NoError(t, err)
	_, err = Bootstrap(root, day)
	require.NoError(t, err)
}

func TestWriteDownloadInstructions(t *testing.T) {
	root := t.TempDir()
	layout, err := Bootstrap(root, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.NoError(t, layout.WriteDownloadInstructions())

	data, err := os.ReadFile(filepath.Join(layout.NHSDir, "README.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "uec-sitrep")
	assert.Contains(t, string(data), ".xlsx")
}
