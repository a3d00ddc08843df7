// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"go-road-defense/internal/config"
	"go-road-defense/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 110
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
	columnSpacing  = 220
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect image.Rectangle
	Text string
}

// InfoPanel показывает выбранную башню и позволяет сменить её стратегию.
type InfoPanel struct {
	IsVisible      bool
	TargetTower    int // -1 when nothing is selected
	fontFace       font.Face
	currentY       float64
	targetY        float64
	StrategyButton Button
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(face font.Face) *InfoPanel {
	return &InfoPanel{
		TargetTower: -1,
		fontFace:    face,
		currentY:    config.ScreenHeight,
		targetY:     config.ScreenHeight,
	}
}

func (p *InfoPanel) SetTarget(tower int) {
	p.TargetTower = tower
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Contains reports whether a click lands on the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && float64(y) >= p.currentY
}

func (p *InfoPanel) Update(combat *system.CombatSystem) {
	// Анимация панели
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}

		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
			p.TargetTower = -1
		}
	}

	if !p.IsVisible || p.TargetTower < 0 {
		return
	}
	clicked := false
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		clicked = image.Pt(x, y).In(p.StrategyButton.Rect)
	}
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeyT) {
		p.cycleStrategy(combat)
	}
}

func (p *InfoPanel) cycleStrategy(combat *system.CombatSystem) {
	current, err := combat.Strategy(p.TargetTower)
	if err != nil {
		slog.Warn("strategy switch failed", "tower", p.TargetTower, "err", err)
		p.Hide()
		return
	}
	if err := combat.SetStrategy(p.TargetTower, current.Next()); err != nil {
		slog.Warn("strategy switch failed", "tower", p.TargetTower, "err", err)
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, combat *system.CombatSystem) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	towers := combat.Towers()
	if p.TargetTower < 0 || p.TargetTower >= len(towers) {
		return
	}
	t := towers[p.TargetTower]
	strategy, _ := combat.Strategy(p.TargetTower)

	x, y := panelRect.Min.X+15, panelRect.Min.Y+20
	text.Draw(screen, fmt.Sprintf("Tower: %s at %v", t.Def.ID, t.Cell), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Damage: %d (%s)", t.Def.Damage, t.Def.Attack), p.fontFace, x, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Fire Rate: %.2f/s", t.Def.FireRate), p.fontFace, x+columnSpacing, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Range: %.1f", t.Def.Range), p.fontFace, x, y, config.TextLightColor)
	if t.Def.Lit() {
		text.Draw(screen, fmt.Sprintf("Light: %.1f", t.Def.LightRadius), p.fontFace, x+columnSpacing, y, config.TextLightColor)
	}

	// Кнопка смены стратегии
	btnW, btnH := 160, 28
	p.StrategyButton.Rect = image.Rect(panelRect.Max.X-btnW-15, panelRect.Min.Y+15, panelRect.Max.X-15, panelRect.Min.Y+15+btnH)
	p.StrategyButton.Text = "Target: " + strategy.String()
	vector.DrawFilledRect(screen, float32(p.StrategyButton.Rect.Min.X), float32(p.StrategyButton.Rect.Min.Y), float32(btnW), float32(btnH), borderColor, true)
	bounds := text.BoundString(p.fontFace, p.StrategyButton.Text)
	textX := p.StrategyButton.Rect.Min.X + (btnW-bounds.Dx())/2
	textY := p.StrategyButton.Rect.Min.Y + (btnH+bounds.Dy())/2
	text.Draw(screen, p.StrategyButton.Text, p.fontFace, textX, textY, color.White)
}
