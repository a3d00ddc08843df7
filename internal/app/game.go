// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"go-road-defense/internal/component"
	"go-road-defense/internal/config"
	"go-road-defense/internal/defs"
	"go-road-defense/internal/entity"
	"go-road-defense/internal/event"
	"go-road-defense/internal/interfaces"
	"go-road-defense/internal/system"
	"go-road-defense/internal/utils"
	"go-road-defense/pkg/roadmap"
)

// ErrTopology marks a level whose road cannot carry enemies.
var ErrTopology = errors.New("level topology")

var _ interfaces.Game = (*Game)(nil)

// Options собирает всё, что нужно для запуска уровня.
type Options struct {
	Settings config.Settings
	Data     defs.GameData
	Level    defs.LevelDefinition
}

// Game owns one instance of every simulation component and drives them in a
// fixed order each tick: environment, scheduler, simulator, towers.
type Game struct {
	Level       defs.LevelDefinition
	Grid        *roadmap.Grid
	Graph       *roadmap.Graph
	Path        roadmap.Path
	RouteErr    error // non-nil when spawning is disabled
	Scheduler   *system.WaveScheduler
	Simulator   *system.EnemySimulator
	Combat      *system.CombatSystem
	Environment *system.EnvironmentSystem
	Economy     *Economy

	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	data     defs.GameData
	schedCfg system.SchedulerConfig
	ticks    int
}

// NewGame builds a level. Configuration and topology problems are logged and
// never returned: a level without a route loads but spawns nothing.
func NewGame(opts Options) *Game {
	s := opts.Settings
	eventDispatcher := event.NewDispatcher()

	weather, err := system.ParseWeather(s.Weather)
	if err != nil {
		slog.Warn("weather fallback", "err", err)
	}
	difficulty, err := defs.FindDifficulty(opts.Data.Difficulties, s.Difficulty)
	if err != nil {
		slog.Warn("difficulty fallback", "err", err, "using", difficulty.Name)
	}

	g := &Game{
		Level:           opts.Level,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(s.Seed),
		Environment:     system.NewEnvironmentSystem(s.DayLength, s.NightLength, weather),
		Economy:         NewEconomy(s.StartingGold, s.StartingLives, s.InterestRate),
		data:            opts.Data,
	}

	g.Grid, g.Graph, g.Path, g.RouteErr = resolveRoute(opts.Level)

	tuning := system.DefaultSimulatorTuning()
	tuning.StealthWindow = s.StealthWindow
	tuning.DropChance = s.DropChance
	tuning.SynergyBonusRatio = s.SynergyBonusRatio

	g.Simulator = system.NewEnemySimulator(system.SimulatorDeps{
		Store:           entity.NewStore(),
		EventDispatcher: eventDispatcher,
		Environment:     g.Environment,
		PRNG:            g.Rng,
		Stats:           opts.Data.Stats,
		Difficulty:      difficulty,
		Drops:           opts.Data.Drops,
		Tuning:          tuning,
	}, g.Path)
	g.Combat = system.NewCombatSystem(g.Simulator)
	g.Simulator.SetLights(g.Combat)
	g.placeTowers()

	g.schedCfg = system.SchedulerConfig{
		Waves:          defs.ValidateWaves(opts.Level.Waves),
		InterWaveDelay: opts.Level.InterWaveDelay,
		AutoStart:      opts.Level.AutoStartEnabled(),
	}
	g.Scheduler = system.NewWaveScheduler(g.schedCfg, eventDispatcher)
	g.Economy.Subscribe(eventDispatcher)

	slog.Info("level loaded",
		"level", opts.Level.Name,
		"path_len", len(g.Path),
		"waves", len(g.schedCfg.Waves),
		"towers", len(g.Combat.Towers()),
		"difficulty", difficulty.Name,
		"seed", s.Seed,
	)
	return g
}

// resolveRoute builds the road graph and the enemy path for a level.
func resolveRoute(lvl defs.LevelDefinition) (*roadmap.Grid, *roadmap.Graph, roadmap.Path, error) {
	grid, err := lvl.Grid()
	if err != nil {
		slog.Error("level tiles rejected, spawning disabled", "level", lvl.Name, "err", err)
		return roadmap.NewGrid(0, 0), roadmap.BuildGraph(roadmap.NewGrid(0, 0)), nil, fmt.Errorf("%w: %w", ErrTopology, err)
	}
	graph := roadmap.BuildGraph(grid)

	start := lvl.Start.Cell()
	if !graph.HasNode(start) {
		slog.Error("start is not on the road, spawning disabled",
			"level", lvl.Name, "cell", start, "tile", grid.At(start).String())
		return grid, graph, nil, fmt.Errorf("%w: start %v: %w", ErrTopology, start, roadmap.ErrStartNotOnRoad)
	}

	end, ok := roadmap.ResolveEnd(grid, graph, lvl.End.Cell())
	if !ok {
		slog.Error("end is not on the road, spawning disabled",
			"level", lvl.Name, "cell", lvl.End.Cell(), "tile", grid.At(lvl.End.Cell()).String())
		return grid, graph, nil, fmt.Errorf("%w: end %v: %w", ErrTopology, lvl.End.Cell(), roadmap.ErrEndNotOnRoad)
	}

	path, err := roadmap.FindRoute(graph, start, end)
	if err != nil {
		slog.Error("no route between start and end, spawning disabled",
			"level", lvl.Name, "start", start, "end", end, "err", err)
		return grid, graph, nil, fmt.Errorf("%w: %w", ErrTopology, err)
	}

	// Проверка только диагностическая: путь используется как есть.
	if err := roadmap.ValidatePath(grid, path); err != nil {
		slog.Warn("path validation failed", "level", lvl.Name, "err", err)
	}
	return grid, graph, path, nil
}

func (g *Game) placeTowers() {
	for _, p := range g.Level.Towers {
		def, ok := g.data.Towers[p.Tower]
		if !ok {
			slog.Warn("unknown tower in level", "tower", p.Tower, "col", p.Col, "row", p.Row)
			continue
		}
		cell := roadmap.GridCell{Col: p.Col, Row: p.Row}
		if g.Grid.At(cell).IsRoad() {
			slog.Warn("tower placed on the road", "tower", p.Tower, "cell", cell)
		}
		g.Combat.AddTower(def, cell)
	}
}

// SpawningEnabled reports whether the level has a usable route.
func (g *Game) SpawningEnabled() bool {
	return g.RouteErr == nil
}

// Update advances the whole simulation by one tick.
func (g *Game) Update(speed float64) {
	if g.Economy.Phase != component.PhasePlaying || speed <= 0 {
		return
	}
	g.Environment.Update(speed)

	if g.SpawningEnabled() {
		for _, t := range g.Scheduler.Update(speed, g.Simulator.LiveCount()) {
			if _, err := g.Simulator.Spawn(t); err != nil {
				slog.Error("spawn failed", "type", t, "err", err)
			}
		}
	}
	g.Simulator.Update(speed)
	g.Combat.Update(speed)
	g.ticks++
}

// Reset restarts the level. Call between ticks only.
func (g *Game) Reset() {
	g.Simulator.Reset()
	g.Scheduler.Reset(g.schedCfg)
	g.Environment.Reset()
	g.Combat.ResetCooldowns()
	g.Economy.Reset()
	g.ticks = 0
	slog.Info("level reset", "level", g.Level.Name)
}

// StartNextWave skips the inter-wave wait.
func (g *Game) StartNextWave() {
	g.Scheduler.StartNextWave()
}

// SetDifficulty switches difficulty and rescales live enemies.
func (g *Game) SetDifficulty(name string) error {
	d, err := defs.FindDifficulty(g.data.Difficulties, name)
	if err != nil {
		return fmt.Errorf("set difficulty: %w", err)
	}
	g.Simulator.RefreshStats(g.data.Stats, d)
	return nil
}

// Difficulties returns the configured difficulty names.
func (g *Game) Difficulties() []string {
	names := make([]string, len(g.data.Difficulties))
	for i, d := range g.data.Difficulties {
		names[i] = d.Name
	}
	return names
}

// Ticks returns the number of processed ticks since the last reset.
func (g *Game) Ticks() int {
	return g.ticks
}

// Finished reports whether the level ended in victory or defeat.
func (g *Game) Finished() bool {
	return g.Economy.Phase != component.PhasePlaying
}

// Status returns the scheduler summary, or a route diagnostic when spawning is
// disabled.
func (g *Game) Status() system.SchedulerStatus {
	if !g.SpawningEnabled() {
		return system.SchedulerStatus{Phase: "no route: spawning disabled", NextSpawnIn: -1}
	}
	return g.Scheduler.Status()
}
