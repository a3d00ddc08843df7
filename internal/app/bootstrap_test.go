package app

import (
	"os"
	"path/filepath"
	"testing"

	"go-road-defense/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptionsDefaults(t *testing.T) {
	opts, err := LoadOptions(config.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, "meadow", opts.Level.Name)
	assert.Contains(t, opts.Data.Towers, "lantern")
}

func TestLoadOptionsFromDisk(t *testing.T) {
	dir := t.TempDir()
	level := filepath.Join(dir, "strip.yaml")
	require.NoError(t, os.WriteFile(level, []byte(`
name: strip
tiles: ["-----"]
start: {col: 0, row: 0}
end: {col: 4, row: 0}
waves:
  - groups:
      - delay: 1
        enemies: [{type: runner, count: 2}]
`), 0o644))

	s := config.DefaultSettings()
	s.LevelFile = level
	s.DataDir = dir // no data files: built-in tables
	opts, err := LoadOptions(s)
	require.NoError(t, err)
	assert.Equal(t, "strip", opts.Level.Name)
	assert.Contains(t, opts.Data.Towers, "arrow")

	g := NewGame(opts)
	assert.NoError(t, g.RouteErr)
	assert.Len(t, g.Path, 5)

	s.LevelFile = filepath.Join(dir, "missing.yaml")
	_, err = LoadOptions(s)
	assert.Error(t, err)
}
