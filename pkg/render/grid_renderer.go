// pkg/render/grid_renderer.go
package render

import (
	"image/color"

	"go-road-defense/pkg/roadmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridRenderer рисует тайлы уровня и маршрут врагов. The static layer is
// rendered once into mapImage; Draw only blits it.
type GridRenderer struct {
	grid     *roadmap.Grid
	path     roadmap.Path
	tileSize float64
	offsetX  float64
	offsetY  float64
	colors   *MapColors
	mapImage *ebiten.Image // Поле для предрендеренной карты
}

// NewGridRenderer centers the grid on a screen of the given size.
func NewGridRenderer(grid *roadmap.Grid, path roadmap.Path, tileSize float64, screenWidth, screenHeight int, colors *MapColors) *GridRenderer {
	r := &GridRenderer{
		grid:     grid,
		path:     path,
		tileSize: tileSize,
		offsetX:  (float64(screenWidth) - float64(grid.Cols)*tileSize) / 2,
		offsetY:  (float64(screenHeight) - float64(grid.Rows)*tileSize) / 2,
		colors:   colors,
		mapImage: ebiten.NewImage(screenWidth, screenHeight),
	}
	r.RenderMapImage()
	return r
}

// Offset returns the screen position of the grid's top-left corner.
func (r *GridRenderer) Offset() (float64, float64) {
	return r.offsetX, r.offsetY
}

// ScreenToCell maps a cursor position to a grid cell.
func (r *GridRenderer) ScreenToCell(x, y int) (roadmap.GridCell, bool) {
	c := roadmap.CellAt(float64(x)-r.offsetX, float64(y)-r.offsetY, r.tileSize)
	return c, r.grid.InBounds(c)
}

// RenderMapImage создаёт предрендеренное изображение задника
func (r *GridRenderer) RenderMapImage() {
	r.mapImage.Clear()
	r.mapImage.Fill(r.colors.BackgroundColor)

	for row := 0; row < r.grid.Rows; row++ {
		for col := 0; col < r.grid.Cols; col++ {
			r.drawTile(r.mapImage, roadmap.GridCell{Col: col, Row: row})
		}
	}
	r.drawPath(r.mapImage)
}

func (r *GridRenderer) drawTile(dst *ebiten.Image, c roadmap.GridCell) {
	ts := float32(r.tileSize)
	x := float32(r.offsetX) + float32(c.Col)*ts
	y := float32(r.offsetY) + float32(c.Row)*ts
	vector.DrawFilledRect(dst, x, y, ts, ts, r.colors.GrassColor, false)
	vector.StrokeRect(dst, x, y, ts, ts, r.colors.StrokeWidth, DarkenColor(r.colors.GrassColor), false)

	tile := r.grid.At(c)
	switch {
	case tile == roadmap.TileGate:
		vector.DrawFilledRect(dst, x+ts*0.2, y+ts*0.2, ts*0.6, ts*0.6, r.colors.GateColor, false)
		return
	case !tile.IsRoad():
		return
	}

	roadColor := r.colors.RoadColor
	oneWay := tile >= roadmap.TileOneWayEast
	if oneWay {
		roadColor = r.colors.OneWayColor
	}

	// Полоса дороги: центр плюс рукава к каждой открытой стороне.
	w := ts * 0.5
	cx, cy := x+ts/2, y+ts/2
	vector.DrawFilledRect(dst, cx-w/2, cy-w/2, w, w, roadColor, false)
	for _, d := range roadmap.Directions {
		if !tile.CanExit(d) && !tile.CanEnter(d) {
			continue
		}
		switch d {
		case roadmap.East:
			vector.DrawFilledRect(dst, cx, cy-w/2, ts/2, w, roadColor, false)
		case roadmap.West:
			vector.DrawFilledRect(dst, x, cy-w/2, ts/2, w, roadColor, false)
		case roadmap.South:
			vector.DrawFilledRect(dst, cx-w/2, cy, w, ts/2, roadColor, false)
		case roadmap.North:
			vector.DrawFilledRect(dst, cx-w/2, y, w, ts/2, roadColor, false)
		}
	}

	if oneWay {
		for _, d := range roadmap.Directions {
			if tile.CanExit(d) {
				drawArrow(dst, cx, cy, ts*0.18, d, DarkenColor(roadColor))
			}
		}
	}
}

// drawArrow рисует треугольник, направленный в сторону d.
func drawArrow(dst *ebiten.Image, cx, cy, size float32, d roadmap.Direction, clr color.RGBA) {
	var p vector.Path
	switch d {
	case roadmap.East:
		p.MoveTo(cx+size, cy)
		p.LineTo(cx-size, cy-size)
		p.LineTo(cx-size, cy+size)
	case roadmap.West:
		p.MoveTo(cx-size, cy)
		p.LineTo(cx+size, cy-size)
		p.LineTo(cx+size, cy+size)
	case roadmap.South:
		p.MoveTo(cx, cy+size)
		p.LineTo(cx-size, cy-size)
		p.LineTo(cx+size, cy-size)
	case roadmap.North:
		p.MoveTo(cx, cy-size)
		p.LineTo(cx-size, cy+size)
		p.LineTo(cx+size, cy+size)
	}
	p.Close()
	FillPath(dst, &p, clr)
}

func (r *GridRenderer) drawPath(dst *ebiten.Image) {
	if len(r.path) == 0 {
		return
	}
	for i := 1; i < len(r.path); i++ {
		x0, y0 := r.toScreen(r.path[i-1])
		x1, y1 := r.toScreen(r.path[i])
		vector.StrokeLine(dst, x0, y0, x1, y1, 2, r.colors.PathColor, true)
	}
	sx, sy := r.toScreen(r.path[0])
	ex, ey := r.toScreen(r.path.Last())
	radius := float32(r.tileSize * 0.15)
	vector.DrawFilledCircle(dst, sx, sy, radius, r.colors.EntryColor, true)
	vector.DrawFilledCircle(dst, ex, ey, radius, r.colors.ExitColor, true)
}

func (r *GridRenderer) toScreen(c roadmap.GridCell) (float32, float32) {
	x, y := c.Center(r.tileSize)
	return float32(x + r.offsetX), float32(y + r.offsetY)
}

// Draw рисует предрендеренную карту одним вызовом.
func (r *GridRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.mapImage, nil)
}
