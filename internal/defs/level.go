// internal/defs/level.go
package defs

import (
	"fmt"
	"io/fs"
	"os"

	"go-road-defense/pkg/roadmap"

	"gopkg.in/yaml.v3"
)

// CellRef is a grid cell as written in level files.
type CellRef struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// Cell converts the reference to a grid cell.
func (c CellRef) Cell() roadmap.GridCell {
	return roadmap.GridCell{Col: c.Col, Row: c.Row}
}

// TowerPlacement puts a tower from the library on a cell.
type TowerPlacement struct {
	Tower string `yaml:"tower"`
	Col   int    `yaml:"col"`
	Row   int    `yaml:"row"`
}

// LevelDefinition is a level file: tile rows, overlay markers and waves.
type LevelDefinition struct {
	Name           string           `yaml:"name"`
	Tiles          []string         `yaml:"tiles"`
	Start          CellRef          `yaml:"start"`
	End            CellRef          `yaml:"end"`
	InterWaveDelay float64          `yaml:"inter_wave_delay"` // секунды до следующей волны
	AutoStart      *bool            `yaml:"auto_start"`
	Towers         []TowerPlacement `yaml:"towers"`
	Waves          []WaveDefinition `yaml:"waves"`
}

// Grid parses the tile rows.
func (l LevelDefinition) Grid() (*roadmap.Grid, error) {
	g, err := roadmap.ParseTiles(l.Tiles)
	if err != nil {
		return nil, fmt.Errorf("level %q tiles: %w", l.Name, err)
	}
	return g, nil
}

// AutoStartEnabled reports whether waves start on their own timer. It
// defaults to true.
func (l LevelDefinition) AutoStartEnabled() bool {
	return l.AutoStart == nil || *l.AutoStart
}

// ParseLevel decodes a level document.
func ParseLevel(data []byte) (LevelDefinition, error) {
	var lvl LevelDefinition
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return lvl, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	if len(lvl.Tiles) == 0 {
		return lvl, fmt.Errorf("level %q has no tiles", lvl.Name)
	}
	if lvl.InterWaveDelay < 0 {
		lvl.InterWaveDelay = 0
	}
	return lvl, nil
}

// LoadLevel reads a level file from disk.
func LoadLevel(path string) (LevelDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LevelDefinition{}, fmt.Errorf("failed to read level file: %w", err)
	}
	return ParseLevel(data)
}

// DefaultLevel returns the embedded meadow level.
func DefaultLevel() LevelDefinition {
	data, err := fs.ReadFile(Embedded(), "levels/meadow.yaml")
	if err != nil {
		panic(err)
	}
	lvl, err := ParseLevel(data)
	if err != nil {
		panic(err)
	}
	return lvl
}
