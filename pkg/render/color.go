// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	GrassColor      color.RGBA
	RoadColor       color.RGBA
	OneWayColor     color.RGBA
	GateColor       color.RGBA
	EntryColor      color.RGBA
	ExitColor       color.RGBA
	PathColor       color.RGBA
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return ScaleColor(c, 0.5)
}

// ScaleColor multiplies the RGB channels by k, keeping alpha.
func ScaleColor(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

// WithAlpha makes an opaque color translucent. color.RGBA is premultiplied,
// so the channels are scaled as well.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	k := float64(a) / 255
	out := ScaleColor(c, k)
	out.A = a
	return out
}
