// internal/ui/button.go
package ui

import (
	"image"

	"go-crown-quest/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	buttonHeight  = 20
	buttonPadding = 8
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect     image.Rectangle
	Text     string
	Disabled bool
	OnClick  func() error
}

// NewButton создает кнопку по тексту; ширина зависит от длины подписи
func NewButton(x, y int, label string, onClick func() error) *Button {
	w := len(label)*config.TextCharWidth + 2*buttonPadding
	return &Button{
		Rect:    image.Rect(x, y, x+w, y+buttonHeight),
		Text:    label,
		OnClick: onClick,
	}
}

// Contains проверяет, попадает ли точка в кнопку
func (b *Button) Contains(p image.Point) bool {
	return p.In(b.Rect)
}

// Click нажимает кнопку. Выключенная кнопка ничего не делает.
func (b *Button) Click() (bool, error) {
	if b.Disabled || b.OnClick == nil {
		return false, nil
	}
	return true, b.OnClick()
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, hover bool) {
	bg := config.ButtonColor
	if hover && !b.Disabled {
		bg = config.ButtonHover
	}
	fg := config.TextLightColor
	if b.Disabled {
		bg = darken(bg)
		fg = darken(fg)
	}
	r := b.Rect
	vector.FillRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, config.PanelStroke, false)
	text.Draw(screen, b.Text, face, r.Min.X+buttonPadding, r.Min.Y+14, fg)
}
