// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-road-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию и рисует предыдущее состояние под затемнением.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	face          font.Face
}

func NewPauseState(sm *StateMachine, prevState State, face font.Face) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		face:          face,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)

	pauseText := "PAUSED"
	bounds := text.BoundString(s.face, pauseText)
	text.Draw(screen, pauseText, s.face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, color.White)
}

func (s *PauseState) Exit() {}
