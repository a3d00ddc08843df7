// internal/ui/lives_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	LivesCols          = 10
	LivesCircleRadius  = 5.0
	LivesCircleSpacing = 3.0
)

// LivesIndicator отображает жизни игрока сеткой кружков.
type LivesIndicator struct {
	X, Y float32
	face font.Face
}

func NewLivesIndicator(x, y float32, face font.Face) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y, face: face}
}

// livesColor: синий "избыток" выше половины, дальше красный.
func livesColor(j, lives, maxLives int) color.Color {
	if j >= lives {
		return color.Black
	}
	half := maxLives / 2
	if lives > half && j < lives-half {
		return color.RGBA{60, 90, 220, 255}
	}
	return color.RGBA{220, 40, 40, 255}
}

// Draw рисует сетку. Lives picked up above the start amount only show in the text.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	step := float32(LivesCircleRadius*2 + LivesCircleSpacing)
	for j := 0; j < maxLives; j++ {
		row, col := j/LivesCols, j%LivesCols
		cx := i.X + float32(col)*step + LivesCircleRadius
		cy := i.Y + float32(row)*step + LivesCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, LivesCircleRadius, livesColor(j, lives, maxLives), true)
		vector.StrokeCircle(screen, cx, cy, LivesCircleRadius, 1, color.White, true)
	}
	label := strconv.Itoa(lives) + "/" + strconv.Itoa(maxLives)
	text.Draw(screen, label, i.face, int(i.X), int(i.Y)-4, color.White)
}
