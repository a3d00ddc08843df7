// pkg/render/entity_renderer.go
package render

import (
	"image/color"

	"go-road-defense/internal/component"
	"go-road-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	healthBarHeight = 4
	invisibleAlpha  = 70
)

// Scene is one frame worth of simulation state.
type Scene struct {
	Enemies  []component.EnemyView
	Towers   []component.Tower
	Darkness float64 // 0 днём, 1 в полночь
}

// EntityRenderer рисует врагов, башни и освещение поверх карты.
type EntityRenderer struct {
	tileSize         float64
	offsetX, offsetY float64
	width, height    float32
}

func NewEntityRenderer(tileSize, offsetX, offsetY float64, cols, rows int) *EntityRenderer {
	return &EntityRenderer{
		tileSize: tileSize,
		offsetX:  offsetX,
		offsetY:  offsetY,
		width:    float32(float64(cols) * tileSize),
		height:   float32(float64(rows) * tileSize),
	}
}

func (r *EntityRenderer) Draw(screen *ebiten.Image, scene Scene) {
	r.drawNight(screen, scene)

	byID := make(map[uint64]component.EnemyView, len(scene.Enemies))
	for _, e := range scene.Enemies {
		byID[e.ID] = e
	}
	for _, t := range scene.Towers {
		r.drawTower(screen, t, byID)
	}
	for _, e := range scene.Enemies {
		if e.Alive {
			r.drawEnemy(screen, e)
		}
	}
}

func (r *EntityRenderer) drawNight(screen *ebiten.Image, scene Scene) {
	if scene.Darkness <= 0 {
		return
	}
	tint := config.NightTint
	vector.DrawFilledRect(screen, float32(r.offsetX), float32(r.offsetY), r.width, r.height,
		WithAlpha(color.RGBA{tint.R, tint.G, tint.B, 255}, uint8(float64(tint.A)*scene.Darkness)), false)

	light := config.LightColor
	for _, t := range scene.Towers {
		if !t.Def.Lit() {
			continue
		}
		x, y := r.toScreen(t.X, t.Y)
		radius := float32(t.Def.LightRadius * r.tileSize)
		vector.DrawFilledCircle(screen, x, y, radius,
			WithAlpha(color.RGBA{light.R, light.G, light.B, 255}, uint8(float64(light.A)*scene.Darkness)), true)
	}
}

func (r *EntityRenderer) drawTower(screen *ebiten.Image, t component.Tower, enemies map[uint64]component.EnemyView) {
	x, y := r.toScreen(t.X, t.Y)
	size := float32(r.tileSize * 0.35)

	vector.StrokeCircle(screen, x, y, float32(t.Def.Range*r.tileSize), 1, WithAlpha(config.TowerColor, 40), true)
	vector.DrawFilledCircle(screen, x, y, size+2, DarkenColor(config.TowerColor), true)
	vector.DrawFilledCircle(screen, x, y, size, config.TowerColor, true)

	if target, ok := enemies[t.TargetID]; ok && target.Alive && target.Targetable {
		tx, ty := r.toScreen(target.X, target.Y)
		vector.StrokeLine(screen, x, y, tx, ty, 1, WithAlpha(config.TowerColor, 120), true)
	}
}

func (r *EntityRenderer) drawEnemy(screen *ebiten.Image, e component.EnemyView) {
	x, y := r.toScreen(e.X, e.Y)
	radius := float32(e.Size.Radius() * r.tileSize)

	body := e.Type.Color()
	if e.Invisible {
		body = WithAlpha(body, invisibleAlpha)
	}

	switch {
	case e.Frozen:
		vector.DrawFilledCircle(screen, x, y, radius+2, config.FrozenColor, true)
	case e.Slowed:
		vector.StrokeCircle(screen, x, y, radius+2, 2, config.FrozenColor, true)
	}
	if e.Buffed {
		vector.StrokeCircle(screen, x, y, radius+4, 1, config.DropColor, true)
	}
	vector.DrawFilledCircle(screen, x, y, radius, body, true)

	if e.Invisible || e.MaxHealth <= 0 || e.Health >= e.MaxHealth {
		return
	}
	barW := radius * 2
	barY := y - radius - healthBarHeight - 2
	fill := barW * float32(e.Health) / float32(e.MaxHealth)
	vector.DrawFilledRect(screen, x-radius, barY, barW, healthBarHeight, config.HealthBackColor, false)
	vector.DrawFilledRect(screen, x-radius, barY, fill, healthBarHeight, config.HealthBarColor, false)
}

func (r *EntityRenderer) toScreen(x, y float64) (float32, float32) {
	return float32(x + r.offsetX), float32(y + r.offsetY)
}
