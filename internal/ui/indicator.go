// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator показывает фазу планировщика волн. Clicking it starts the
// next wave early.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.Color) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *StateIndicator) IsClicked(x, y int) bool {
	dx, dy := float32(x)-i.X, float32(y)-i.Y
	return dx*dx+dy*dy <= i.Radius*i.Radius
}

func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
