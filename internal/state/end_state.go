// internal/state/end_state.go
package state

import (
	"fmt"
	"image/color"

	"go-road-defense/internal/component"
	"go-road-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var _ State = (*EndState)(nil)

// EndState показывает итог партии. R или пробел перезапускают уровень.
type EndState struct {
	sm   *StateMachine
	game *GameState
	face font.Face
}

func NewEndState(sm *StateMachine, gs *GameState, face font.Face) *EndState {
	return &EndState{sm: sm, game: gs, face: face}
}

func (s *EndState) Enter() {}

func (s *EndState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.game.game.Reset()
		s.sm.SetState(s.game)
	}
}

func (s *EndState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 150}, false)

	eco := s.game.game.Economy
	title := "VICTORY"
	clr := color.Color(color.RGBA{90, 220, 90, 255})
	if eco.Phase == component.PhaseDefeat {
		title = "DEFEAT"
		clr = color.RGBA{220, 60, 60, 255}
	}
	lines := []string{
		title,
		fmt.Sprintf("gold %d  lives %d  kills %d  leaks %d", eco.Gold, eco.Lives, eco.Kills, eco.Leaks),
		"press R to play again",
	}
	y := config.ScreenHeight/2 - 20
	for i, line := range lines {
		c := color.Color(color.White)
		if i == 0 {
			c = clr
		}
		bounds := text.BoundString(s.face, line)
		text.Draw(screen, line, s.face, (config.ScreenWidth-bounds.Dx())/2, y, c)
		y += 20
	}
}

func (s *EndState) Exit() {}
