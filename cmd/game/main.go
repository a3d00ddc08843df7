// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	game "go-road-defense/internal/app"
	"go-road-defense/internal/config"
	"go-road-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", config.SettingsPath(), "settings file")
	levelPath := flag.String("level", "", "level file, overrides level_file from settings")
	seed := flag.Int64("seed", 0, "PRNG seed, overrides settings")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	game.SetupLogging(os.Stdout, settings.LogLevel)
	if *levelPath != "" {
		settings.LevelFile = *levelPath
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	opts, err := game.LoadOptions(settings)
	if err != nil {
		return err
	}

	face := basicfont.Face7x13
	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewGameState(sm, game.NewGame(opts), settings.StartingLives, face))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Road Defense | " + opts.Level.Name)
	ebiten.SetTPS(config.TicksPerSecond)
	return ebiten.RunGame(&AppGame{stateMachine: sm})
}
