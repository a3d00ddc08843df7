// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"log/slog"

	game "go-road-defense/internal/app"
	"go-road-defense/internal/config"
	"go-road-defense/internal/system"
	"go-road-defense/internal/ui"
	"go-road-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

var (
	waitingColor  = color.RGBA{70, 130, 180, 255}
	spawningColor = color.RGBA{220, 60, 60, 255}
	clearingColor = color.RGBA{230, 160, 40, 255}
	doneColor     = color.RGBA{120, 120, 120, 255}
)

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	game          *game.Game
	face          font.Face
	startLives    int
	renderer      *render.GridRenderer
	entities      *render.EntityRenderer
	indicator     *ui.StateIndicator
	waveIndicator *ui.WaveIndicator
	lives         *ui.LivesIndicator
	speedButton   *ui.SpeedButton
	infoPanel     *ui.InfoPanel
}

func NewGameState(sm *StateMachine, g *game.Game, startLives int, face font.Face) *GameState {
	// Создаем и заполняем структуру с цветами для рендерера
	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		GrassColor:      config.GrassColor,
		RoadColor:       config.RoadColor,
		OneWayColor:     config.OneWayColor,
		GateColor:       config.GateColor,
		EntryColor:      config.EntryColor,
		ExitColor:       config.ExitColor,
		PathColor:       config.PathColor,
		StrokeWidth:     1,
	}
	renderer := render.NewGridRenderer(g.Grid, g.Path, config.TileSize, config.ScreenWidth, config.ScreenHeight, mapColors)
	offX, offY := renderer.Offset()

	m := float32(config.HUDMargin)
	return &GameState{
		sm:            sm,
		game:          g,
		face:          face,
		startLives:    startLives,
		renderer:      renderer,
		entities:      render.NewEntityRenderer(config.TileSize, offX, offY, g.Grid.Cols, g.Grid.Rows),
		indicator:     ui.NewStateIndicator(config.ScreenWidth-m-12, m+12, 12),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, config.HUDMargin+16, face),
		lives:         ui.NewLivesIndicator(m, m+24, face),
		speedButton:   ui.NewSpeedButton(config.ScreenWidth-m-60, m+12, config.SpeedButtonSize, config.SpeedSteps, config.SpeedButtonColors),
		infoPanel:     ui.NewInfoPanel(face),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update() {
	g.infoPanel.Update(g.game.Combat)

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g, g.face))
		return
	}
	g.handleKeys()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick(ebiten.CursorPosition())
	}

	g.game.Update(g.speedButton.Speed())

	if g.game.Finished() {
		g.sm.SetState(NewEndState(g.sm, g, g.face))
	}
}

func (g *GameState) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.game.StartNextWave()
		g.indicator.HandleClick()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.game.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		env := g.game.Environment
		env.SetWeather(env.Weather().Next())
		slog.Info("weather changed", "weather", env.Weather())
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.speedButton.ToggleState()
	}

	// Сложность: 1, 2, 3 по порядку из файла
	keys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}
	names := g.game.Difficulties()
	for i, k := range keys {
		if i < len(names) && inpututil.IsKeyJustPressed(k) {
			if err := g.game.SetDifficulty(names[i]); err != nil {
				slog.Warn("difficulty not changed", "err", err)
			}
		}
	}
}

// handleClick: сначала UI, потом клетки поля.
func (g *GameState) handleClick(x, y int) {
	switch {
	case g.speedButton.IsClicked(x, y):
		g.speedButton.ToggleState()
	case g.indicator.IsClicked(x, y):
		g.game.StartNextWave()
		g.indicator.HandleClick()
	case g.infoPanel.Contains(x, y):
		// панель обрабатывает клик сама
	default:
		cell, ok := g.renderer.ScreenToCell(x, y)
		if !ok {
			g.infoPanel.Hide()
			return
		}
		for i, t := range g.game.Combat.Towers() {
			if t.Cell == cell {
				g.infoPanel.SetTarget(i)
				return
			}
		}
		g.infoPanel.Hide()
	}
}

func (g *GameState) phaseColor() color.Color {
	if g.game.Scheduler.PendingWaveFinish() {
		return clearingColor
	}
	switch g.game.Scheduler.Phase() {
	case system.WaitingNextWave:
		return waitingColor
	case system.AllWavesDone:
		return doneColor
	default:
		return spawningColor
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	g.entities.Draw(screen, render.Scene{
		Enemies:  g.game.Simulator.Snapshot(),
		Towers:   g.game.Combat.Towers(),
		Darkness: g.game.Environment.Darkness(),
	})

	st := g.game.Status()
	g.indicator.Draw(screen, g.phaseColor())
	g.waveIndicator.Draw(screen, st.Wave, st.TotalWaves)
	g.lives.Draw(screen, g.game.Economy.Lives, g.startLives)
	g.speedButton.Draw(screen)
	g.infoPanel.Draw(screen, g.game.Combat)

	next := ""
	if st.NextSpawnIn >= 0 {
		next = fmt.Sprintf(" (%.1fs)", st.NextSpawnIn)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Gold: %d  Kills: %d  %s%s", g.game.Economy.Gold, g.game.Economy.Kills, st.Phase, next),
		config.HUDMargin, config.ScreenHeight-3*config.HUDMargin)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  %s  x%g  [%s]", g.game.Simulator.Difficulty().Name, g.game.Environment.Weather(), g.speedButton.Speed(), dayNight(g.game.Environment)),
		config.HUDMargin, config.ScreenHeight-2*config.HUDMargin)
}

func dayNight(env *system.EnvironmentSystem) string {
	if env.IsNight() {
		return "night"
	}
	return "day"
}

func (g *GameState) Exit() {}
