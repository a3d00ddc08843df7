// cmd/headless/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"golang.org/x/sync/errgroup"

	game "go-road-defense/internal/app"
	"go-road-defense/internal/component"
	"go-road-defense/internal/config"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configPath := flag.String("config", config.SettingsPath(), "settings file")
	levelPath := flag.String("level", "", "level file, overrides level_file from settings")
	difficulty := flag.String("difficulty", "", "difficulty name, overrides settings")
	firstSeed := flag.Int64("seed", 1, "first PRNG seed")
	runs := flag.Int("runs", 8, "number of runs with consecutive seeds")
	speed := flag.Float64("speed", 4, "speed multiplier")
	maxTicks := flag.Int("max-ticks", 1_000_000, "tick budget per run")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	game.SetupLogging(os.Stdout, settings.LogLevel)
	if *levelPath != "" {
		settings.LevelFile = *levelPath
	}
	if *difficulty != "" {
		settings.Difficulty = *difficulty
	}
	if *runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", *runs)
	}

	opts, err := game.LoadOptions(settings)
	if err != nil {
		return err
	}

	outcomes := make([]game.Outcome, *runs)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < *runs; i++ {
		i := i
		seed :=*firstSeed + int64(i)
		g.Go(func() error {
			o := opts
			o.Settings.Seed = seed
			out, err := game.Simulate(gctx, game.NewGame(o), *speed, *maxTicks)
			if err != nil {
				if errors.Is(err, game.ErrTickLimit) {
					slog.Warn("run abandoned", "seed", seed, "err", err)
					outcomes[i] = out
					return nil
				}
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			slog.Info("run finished",
				"seed", seed,
				"result", out.Phase,
				"ticks", out.Ticks,
				"gold", out.Gold,
				"lives", out.Lives,
				"kills", out.Kills,
				"leaks", out.Leaks)
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	wins := 0
	for _, out := range outcomes {
		if out.Phase == component.PhaseVictory {
			wins++
		}
	}
	slog.Info("all runs done", "level", opts.Level.Name, "runs", *runs, "victories", wins)
	return nil
}
