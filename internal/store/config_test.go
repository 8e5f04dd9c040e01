package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 50, c.Grid.Rows)
	assert.Equal(t, 120, c.Grid.MinWidth)
	assert.Equal(t, 25, c.Grid.RowsPerPage)
	assert.Equal(t, []string{"System A", "System B", "System C"}, c.Search.SourceSystems)
	assert.True(t, c.UI.Mouse)
}

func TestLoadConfigFromFile(t *testing.T) {
	p := writeConfig(t, `
grid:
  rows: 80
  min_width: 100
  rows_per_page: 50
ui:
  mouse: false
`)
	c, err := LoadConfig(p)
	require.NoError(t, err)

	assert.Equal(t, 80, c.Grid.Rows)
	assert.Equal(t, 100, c.Grid.MinWidth)
	assert.Equal(t, 50, c.Grid.RowsPerPage)
	assert.Equal(t, 8, c.Grid.PixelsPerCell)
	assert.False(t, c.UI.Mouse)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("TRADESEARCH_ROWS", "100")
	c, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 100, c.Grid.Rows)

	t.Setenv("TRADESEARCH_ROWS", "lots")
	_, err = LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "TRADESEARCH_ROWS")
}

func TestValidate(t *testing.T) {
	p := writeConfig(t, "grid:\n  rows_per_page: 33\n")
	_, err := LoadConfig(p)
	assert.ErrorContains(t, err, "rows_per_page")

	p = writeConfig(t, "grid:\n  min_width: -4\n")
	_, err = LoadConfig(p)
	assert.ErrorContains(t, err, "min_width")

	p = writeConfig(t, "grid: [")
	_, err = LoadConfig(p)
	assert.Error(t, err)
}
