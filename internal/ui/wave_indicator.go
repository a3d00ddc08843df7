package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.Color
	LastWaveColor    color.Color
	OutlineColor     color.Color
	OutlineThickness int
	face             font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            color.RGBA{70, 130, 180, 255},
		LastWaveColor:    color.RGBA{220, 40, 40, 255},
		OutlineColor:     color.White,
		OutlineThickness: 1,
		face:             face,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране. wave is 1-based; nothing is drawn
// before the first wave.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave, totalWaves int) {
	if wave <= 0 {
		return
	}
	label := toRoman(wave)

	textColor := i.Color
	if wave == totalWaves {
		textColor = i.LastWaveColor // последняя волна
	}

	bounds := text.BoundString(i.face, label)
	x := i.X - bounds.Dx()/2
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, i.face, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.face, x, i.Y, textColor)
}
