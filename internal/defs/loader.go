// internal/defs/loader.go
package defs

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"gopkg.in/yaml.v3"
)

//go:embed data
var embedded embed.FS

// Embedded returns the built-in data directory.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// GameData bundles every static table the simulation reads.
type GameData struct {
	Stats        StatTable
	Towers       TowerLibrary
	Difficulties []Difficulty
	Drops        []DropEntry
}

func decodeFile(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return nil
}

// ParseEnemyStats decodes an enemy stats document keyed by enemy name.
// Unknown names and unusable records are skipped with a warning.
func ParseEnemyStats(data []byte) (StatTable, error) {
	var raw map[string]EnemyStats
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy stats: %w", err)
	}
	table := make(StatTable, len(raw))
	for name, s := range raw {
		t, err := ParseEnemyType(name)
		if err != nil {
			slog.Warn("skipping enemy stats", "err", err)
			continue
		}
		if !s.Valid() {
			slog.Warn("skipping enemy stats with non-positive health or speed", "type", t)
			continue
		}
		table[t] = s
	}
	return table, nil
}

// LoadGameData reads enemies.yaml, towers.yaml, difficulties.yaml and
// drops.yaml from fsys. A missing or broken file is replaced by the built-in
// table and logged; it never fails the load.
func LoadGameData(fsys fs.FS) GameData {
	gd := GameData{
		Stats:        DefaultStats(),
		Towers:       DefaultTowers(),
		Difficulties: []Difficulty{Normal},
		Drops:        DefaultDropTable(),
	}

	if data, err := fs.ReadFile(fsys, "enemies.yaml"); err != nil {
		slog.Warn("enemy stats not loaded, using defaults", "err", err)
	} else if table, err := ParseEnemyStats(data); err != nil {
		slog.Warn("enemy stats not loaded, using defaults", "err", err)
	} else {
		for t, s := range table {
			gd.Stats[t] = s
		}
	}

	var towers []TowerDefinition
	if err := decodeFile(fsys, "towers.yaml", &towers); err != nil {
		slog.Warn("tower definitions not loaded, using defaults", "err", err)
	} else {
		for _, def := range towers {
			if def.ID == "" || def.FireRate <= 0 || def.Range <= 0 {
				slog.Warn("skipping invalid tower definition", "id", def.ID)
				continue
			}
			gd.Towers[def.ID] = def
		}
	}

	var diffs []Difficulty
	if err := decodeFile(fsys, "difficulties.yaml", &diffs); err != nil {
		slog.Warn("difficulties not loaded, using normal only", "err", err)
	} else if len(diffs) > 0 {
		gd.Difficulties = diffs
	}

	var drops []DropEntry
	if err := decodeFile(fsys, "drops.yaml", &drops); err != nil {
		slog.Warn("drop table not loaded, using defaults", "err", err)
	} else if len(drops) > 0 {
		gd.Drops = drops
	}

	slog.Debug("game data loaded",
		"enemies", len(gd.Stats),
		"towers", len(gd.Towers),
		"difficulties", len(gd.Difficulties))
	return gd
}
