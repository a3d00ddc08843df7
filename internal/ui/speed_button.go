// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-road-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton переключает множитель скорости игры. A zero step is drawn as
// a pause sign.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	Steps         []float64
	StateColors   []color.Color
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, steps []float64, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		Steps:       steps,
		StateColors: stateColors,
	}
}

// Speed returns the current multiplier.
func (b *SpeedButton) Speed() float64 {
	if len(b.Steps) == 0 {
		return 1
	}
	return b.Steps[b.CurrentState]
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	// Используем круг для определения попадания, так как форма сложная
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) ToggleState() {
	if len(b.Steps) == 0 {
		return
	}
	b.CurrentState = (b.CurrentState + 1) % len(b.Steps)
	b.LastClickTime = time.Now()
}

func (b *SpeedButton) color() color.Color {
	if len(b.StateColors) == 0 {
		return color.White
	}
	return b.StateColors[b.CurrentState%len(b.StateColors)]
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)
	clr := b.color()

	if b.Speed() <= 0 {
		width := size * 0.6
		height := size * 2.0
		spacing := size * 0.4
		vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, clr, false)
		vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, clr, false)
		return
	}

	// Два треугольника, как на перемотке
	height := size * 1.2
	width := size
	offset := width * 0.8
	for _, dx := range []float32{0, offset} {
		var p vector.Path
		p.MoveTo(b.X-width+dx, b.Y-height/2)
		p.LineTo(b.X+dx, b.Y)
		p.LineTo(b.X-width+dx, b.Y+height/2)
		p.Close()
		render.FillPath(screen, &p, clr)
	}
}
