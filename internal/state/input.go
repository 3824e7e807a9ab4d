// internal/state/input.go
package state

import (
	"image"

	"go-crown-quest/internal/config"
	"go-crown-quest/pkg/utils"
)

// clickTracker отличает клик от протягивания мыши: отпускание кнопки
// считается кликом, только если курсор ушел не дальше DragSlop.
type clickTracker struct {
	pressed bool
	start   image.Point
	moved   bool
}

func (c *clickTracker) Press(p image.Point) {
	c.pressed = true
	c.start = p
	c.moved = false
}

func (c *clickTracker) Move(p image.Point) {
	if !c.pressed {
		return
	}
	d := p.Sub(c.start)
	if utils.Abs(d.X) > config.DragSlop || utils.Abs(d.Y) > config.DragSlop {
		c.moved = true
	}
}

// Release возвращает true, если это был клик
func (c *clickTracker) Release() bool {
	click := c.pressed && !c.moved
	c.pressed = false
	c.moved = false
	return click
}

// panTracker считает смещение курсора между кадрами, пока кнопка зажата
type panTracker struct {
	active bool
	last   image.Point
}

// Step возвращает сдвиг камеры за кадр
func (p *panTracker) Step(down bool, cursor image.Point) image.Point {
	if !down {
		p.active = false
		return image.Point{}
	}
	if !p.active {
		p.active = true
		p.last = cursor
		return image.Point{}
	}
	d := cursor.Sub(p.last)
	p.last = cursor
	return d
}
