// pkg/render/camera.go
package render

import (
	"go-crown-quest/internal/config"
	"go-crown-quest/pkg/hexmap"
	"go-crown-quest/pkg/utils"
)

// Camera переводит координаты карты в экранные: screen = map*Zoom + offset
type Camera struct {
	X, Y float64
	Zoom int
}

func NewCamera(zoom int) *Camera {
	return &Camera{Zoom: utils.ClampInt(zoom, config.MinZoom, config.MaxZoom)}
}

func (c *Camera) ToScreen(p hexmap.Point) (float64, float64) {
	z := float64(c.Zoom)
	return p.X*z + c.X, p.Y*z + c.Y
}

func (c *Camera) ToMap(sx, sy float64) hexmap.Point {
	z := float64(c.Zoom)
	return hexmap.Point{X: (sx - c.X) / z, Y: (sy - c.Y) / z}
}

// Pan сдвигает камеру на dx, dy экранных пикселей
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx
	c.Y += dy
}

// ZoomAt меняет масштаб на один шаг в сторону wheel. Точка карты
// под курсором остается на месте.
func (c *Camera) ZoomAt(wheel, sx, sy float64) {
	next := utils.ClampInt(c.Zoom+utils.Sign(wheel), config.MinZoom, config.MaxZoom)
	if next == c.Zoom {
		return
	}
	anchor := c.ToMap(sx, sy)
	c.Zoom = next
	z := float64(next)
	c.X = sx - anchor.X*z
	c.Y = sy - anchor.Y*z
}

// CenterOn ставит точку карты в центр экрана w x h
func (c *Camera) CenterOn(p hexmap.Point, w, h int) {
	z := float64(c.Zoom)
	c.X = float64(w)/2 - p.X*z
	c.Y = float64(h)/2 - p.Y*z
}

// HexAt — клетка под экранной точкой
func (c *Camera) HexAt(layout hexmap.Layout, sx, sy float64) (hexmap.Hex, bool) {
	return layout.PixelToHex(c.ToMap(sx, sy))
}
