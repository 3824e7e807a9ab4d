// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"go-crown-quest/internal/app"
	"go-crown-quest/internal/config"
	"go-crown-quest/internal/unit"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	panelMargin = 8
	gaugeWidth  = 200
	gaugeHeight = 10
)

// InfoPanel — полоса состояния героя в верхней части экрана
type InfoPanel struct {
	game     *app.Game
	fontFace font.Face
}

func NewInfoPanel(g *app.Game) *InfoPanel {
	return &InfoPanel{game: g, fontFace: basicfont.Face7x13}
}

// Lines — текст панели построчно
func (p *InfoPanel) Lines() []string {
	pl := p.game.Player
	army := "no army"
	if t, ok := p.game.Lib.Unit(pl.Army.Class); ok {
		army = fmt.Sprintf("%s x%d (rating %s)", t.Label, pl.Army.Stack, ratingOf(p.game))
	}
	daysLeft := p.game.Table.MaxDays - pl.Day
	lines := []string{
		fmt.Sprintf("Day %d (%d left)   Gold %d   Level %d (%d/%d exp)", pl.Day+1, daysLeft, pl.Gold, pl.Level, pl.Exp, pl.ExpForNextLevel()),
		fmt.Sprintf("Army: %s   ATT +%d  DEF +%d  SPD +%d", army, pl.Hero.Attack, pl.Hero.Defense, pl.Hero.Speed),
	}
	var names []string
	for _, id := range pl.Items {
		if it, ok := p.game.Lib.Item(id); ok {
			names = append(names, it.Name)
		}
	}
	if len(names) > 0 {
		lines = append(lines, "Items: "+strings.Join(names, ", "))
	}
	return lines
}

// GaugeFill — заполнение шкалы дня сейчас и после показанного пути
func (p *InfoPanel) GaugeFill() (now, preview float64) {
	pl := p.game.Player
	now = pl.DayPct()
	_, cost, _ := p.game.Preview()
	if pl.DayLength <= 0 {
		return now, now
	}
	preview = min(1, now+cost/pl.DayLength)
	return now, preview
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	lines := p.Lines()
	h := float32(len(lines)*config.LineHeight + gaugeHeight + 3*panelMargin)
	vector.FillRect(screen, 0, 0, float32(config.ScreenWidth), h, config.PanelColor, false)
	for i, line := range lines {
		text.Draw(screen, line, p.fontFace, panelMargin, panelMargin+12+i*config.LineHeight, config.TextLightColor)
	}

	now, preview := p.GaugeFill()
	gx := float32(panelMargin)
	gy := float32(panelMargin + len(lines)*config.LineHeight + panelMargin)
	vector.FillRect(screen, gx, gy, gaugeWidth, gaugeHeight, config.GaugeBackColor, false)
	vector.FillRect(screen, gx, gy, float32(preview)*gaugeWidth, gaugeHeight, config.GaugePreview, false)
	vector.FillRect(screen, gx, gy, float32(now)*gaugeWidth, gaugeHeight, config.GaugeColor, false)
	vector.StrokeRect(screen, gx, gy, gaugeWidth, gaugeHeight, 1, config.PanelStroke, false)
}

// Tooltip — подсказка над событием: название и оценка отряда
type Tooltip struct {
	Label string
	Color color.Color
}

// TooltipFor собирает подсказку. Оценка красная, если враг сильнее армии героя,
// и зеленая, если слабее.
func TooltipFor(info app.HoverInfo) []Tooltip {
	out := []Tooltip{{Label: info.Label, Color: config.TextLightColor}}
	if info.Rating == "" {
		return out
	}
	c := color.Color(config.TextLightColor)
	switch info.Compare {
	case 1:
		c = config.StrongerColor
	case -1:
		c = config.WeakerColor
	}
	return append(out, Tooltip{Label: "Troop rating: " + info.Rating, Color: c})
}

// DrawTooltip рисует подсказку рядом с курсором
func (p *InfoPanel) DrawTooltip(screen *ebiten.Image, x, y int, info app.HoverInfo) {
	tips := TooltipFor(info)
	w := 0
	for _, t := range tips {
		w = max(w, len(t.Label)*config.TextCharWidth)
	}
	x += 16
	vector.FillRect(screen, float32(x-4), float32(y-4), float32(w+8), float32(len(tips)*config.LineHeight+8), config.PanelColor, false)
	for i, t := range tips {
		text.Draw(screen, t.Label, p.fontFace, x, y+12+i*config.LineHeight, t.Color)
	}
}

// ratingOf — оценка армии героя с его бонусами
func ratingOf(g *app.Game) string {
	t, ok := g.Lib.Unit(g.Player.Army.Class)
	if !ok {
		return ""
	}
	return unit.Rating(unit.NewFromTemplate(t, g.Player.Army.Stack), unit.StatContext{Hero: &g.Player.Hero})
}
