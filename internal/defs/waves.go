// internal/defs/waves.go
package defs

import (
	"fmt"
	"log/slog"
)

// GroupEntry is one "type x count" line of a group as written in data files.
type GroupEntry struct {
	Type  string `yaml:"type"`
	Count int    `yaml:"count"`
}

// GroupDefinition описывает группу врагов внутри волны.
type GroupDefinition struct {
	Enemies []GroupEntry `yaml:"enemies"`
	Delay   float64      `yaml:"delay"` // секунды между врагами группы
}

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Groups     []GroupDefinition `yaml:"groups"`
	GroupDelay float64           `yaml:"group_delay"` // секунды между группами
}

// SpawnCount is a validated group entry.
type SpawnCount struct {
	Type  EnemyType
	Count int
}

// GroupConfig is a validated group.
type GroupConfig struct {
	Entries []SpawnCount
	Delay   float64
}

// Flatten expands the group into the ordered spawn queue.
func (g GroupConfig) Flatten() []EnemyType {
	var queue []EnemyType
	for _, e := range g.Entries {
		for i := 0; i < e.Count; i++ {
			queue = append(queue, e.Type)
		}
	}
	return queue
}

// Size returns the number of enemies in the group.
func (g GroupConfig) Size() int {
	n := 0
	for _, e := range g.Entries {
		n += e.Count
	}
	return n
}

// WaveConfig is a validated wave.
type WaveConfig struct {
	Groups     []GroupConfig
	GroupDelay float64
}

// Size returns the number of enemies in the wave.
func (w WaveConfig) Size() int {
	n := 0
	for _, g := range w.Groups {
		n += g.Size()
	}
	return n
}

func (d GroupDefinition) validate() (GroupConfig, error) {
	if len(d.Enemies) == 0 {
		return GroupConfig{}, fmt.Errorf("group has no enemies")
	}
	if d.Delay < 0 {
		return GroupConfig{}, fmt.Errorf("negative enemy delay %v", d.Delay)
	}
	g := GroupConfig{Delay: d.Delay}
	for i, e := range d.Enemies {
		t, err := ParseEnemyType(e.Type)
		if err != nil {
			return GroupConfig{}, fmt.Errorf("entry %d: %w", i, err)
		}
		if e.Count <= 0 {
			return GroupConfig{}, fmt.Errorf("entry %d: count %d for %s", i, e.Count, t)
		}
		g.Entries = append(g.Entries, SpawnCount{Type: t, Count: e.Count})
	}
	return g, nil
}

// Validate checks one wave definition.
func (d WaveDefinition) Validate() (WaveConfig, error) {
	if len(d.Groups) == 0 {
		return WaveConfig{}, fmt.Errorf("wave has no groups")
	}
	if d.GroupDelay < 0 {
		return WaveConfig{}, fmt.Errorf("negative group delay %v", d.GroupDelay)
	}
	w := WaveConfig{GroupDelay: d.GroupDelay}
	for i, gd := range d.Groups {
		g, err := gd.validate()
		if err != nil {
			return WaveConfig{}, fmt.Errorf("group %d: %w", i, err)
		}
		w.Groups = append(w.Groups, g)
	}
	return w, nil
}

// ValidateWaves drops every malformed wave with a warning. When nothing is
// left the built-in wave set is returned so the level stays playable.
func ValidateWaves(waves []WaveDefinition) []WaveConfig {
	out := make([]WaveConfig, 0, len(waves))
	for i, wd := range waves {
		w, err := wd.Validate()
		if err != nil {
			slog.Warn("dropping malformed wave", "wave", i+1, "err", err)
			continue
		}
		out = append(out, w)
	}
	if len(out) == 0 {
		slog.Warn("no valid waves configured, using default wave set", "configured", len(waves))
		return DefaultWaves()
	}
	return out
}

func group(delay float64, entries ...SpawnCount) GroupConfig {
	return GroupConfig{Entries: entries, Delay: delay}
}

// DefaultWaves returns the built-in wave sequence.
func DefaultWaves() []WaveConfig {
	return []WaveConfig{
		{GroupDelay: 2, Groups: []GroupConfig{
			group(0.8, SpawnCount{EnemyGrunt, 5}),
		}},
		{GroupDelay: 2, Groups: []GroupConfig{
			group(0.8, SpawnCount{EnemyGrunt, 4}),
			group(0.5, SpawnCount{EnemyRunner, 4}),
		}},
		{GroupDelay: 2.5, Groups: []GroupConfig{
			group(1.0, SpawnCount{EnemyBrute, 2}, SpawnCount{EnemyRunner, 2}),
			group(0.8, SpawnCount{EnemyGrunt, 6}),
		}},
		{GroupDelay: 2, Groups: []GroupConfig{
			group(0.75, SpawnCount{EnemyShade, 4}),
			group(0.6, SpawnCount{EnemyBomber, 3}, SpawnCount{EnemyRunner, 3}),
		}},
		{GroupDelay: 3, Groups: []GroupConfig{
			group(1.0, SpawnCount{EnemyBrute, 3}, SpawnCount{EnemyRunner, 3}),
			group(1.5, SpawnCount{EnemyTroll, 1}),
		}},
	}
}
