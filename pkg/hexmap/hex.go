// pkg/hexmap/hex.go
package hexmap

import (
	"fmt"

	"go-crown-quest/pkg/utils"
)

// Hex — клетка в offset-координатах. Нечётные ряды сдвинуты вправо на полклетки.
type Hex struct {
	X, Y int
}

func (h Hex) String() string {
	return fmt.Sprintf("%d,%d", h.X, h.Y)
}

// Смещения соседей зависят от чётности ряда
var (
	evenRowDirections = [6]Hex{
		{X: -1, Y: 0}, {X: 1, Y: 0},
		{X: -1, Y: -1}, {X: 0, Y: -1},
		{X: -1, Y: 1}, {X: 0, Y: 1},
	}
	oddRowDirections = [6]Hex{
		{X: -1, Y: 0}, {X: 1, Y: 0},
		{X: 0, Y: -1}, {X: 1, Y: -1},
		{X: 0, Y: 1}, {X: 1, Y: 1},
	}
)

// Neighbors возвращает шесть соседних клеток без проверки границ карты
func (h Hex) Neighbors() [6]Hex {
	dirs := evenRowDirections
	if h.Y&1 == 1 {
		dirs = oddRowDirections
	}
	var out [6]Hex
	for i, d := range dirs {
		out[i] = h.Add(d)
	}
	return out
}

// IsNeighbor проверяет, является ли other соседом h
func (h Hex) IsNeighbor(other Hex) bool {
	for _, n := range h.Neighbors() {
		if n == other {
			return true
		}
	}
	return false
}

// Add возвращает сумму двух гексов
func (h Hex) Add(other Hex) Hex {
	return Hex{X: h.X + other.X, Y: h.Y + other.Y}
}

// Index переводит клетку в индекс плоского массива
func (h Hex) Index(width int) int {
	return h.X + h.Y*width
}

// FromIndex — обратное к Index
func FromIndex(i, width int) Hex {
	return Hex{X: i % width, Y: i / width}
}

// InBounds проверяет, что клетка лежит внутри прямоугольника width x height
func (h Hex) InBounds(width, height int) bool {
	return h.X >= 0 && h.Y >= 0 && h.X < width && h.Y < height
}

// Distance — число шагов между клетками
func (h Hex) Distance(to Hex) int {
	aq, ar := h.axial()
	bq, br := to.axial()
	dq := aq - bq
	dr := ar - br
	return (utils.Abs(dq) + utils.Abs(dr) + utils.Abs(dq+dr)) / 2
}

func (h Hex) axial() (q, r int) {
	q = h.X - (h.Y-(h.Y&1))/2
	return q, h.Y
}
