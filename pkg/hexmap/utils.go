// pkg/hexmap/utils.go
package hexmap

import (
	"math"

	"go-crown-quest/internal/config"
)

// Point — точка в пиксельных координатах карты
type Point struct {
	X, Y float64
}

// Rect — ограничивающий прямоугольник клетки
type Rect struct {
	X, Y, W, H float64
}

// HexVertices строит шесть вершин гекса по ограничивающему прямоугольнику:
// верх, два правых угла, низ, два левых угла.
func HexVertices(r Rect) [6]Point {
	return [6]Point{
		{X: r.X + r.W/2, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H/4},
		{X: r.X + r.W, Y: r.Y + 3*r.H/4},
		{X: r.X + r.W/2, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + 3*r.H/4},
		{X: r.X, Y: r.Y + r.H/4},
	}
}

// PointInHex — проверка принадлежности точки многоугольнику методом луча (even-odd)
func PointInHex(p Point, vertices [6]Point) bool {
	inside := false
	j := len(vertices) - 1
	for i := range vertices {
		vi, vj := vertices[i], vertices[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Layout описывает размер клетки на экране
type Layout struct {
	TileW float64 // ширина клетки
	RowH  float64 // шаг между рядами
	TileH float64 // полная высота гекса
}

// DefaultLayout — квадратные клетки TileSize с шагом рядов TileRowStep
var DefaultLayout = Layout{TileW: config.TileSize, RowH: config.TileRowStep, TileH: config.TileSize}

// CellRect возвращает прямоугольник клетки в координатах карты
func (l Layout) CellRect(h Hex) Rect {
	x := float64(h.X) * l.TileW
	if h.Y&1 == 1 {
		x += l.TileW / 2
	}
	return Rect{X: x, Y: float64(h.Y) * l.RowH, W: l.TileW, H: l.TileH}
}

// CellCenter возвращает центр клетки
func (l Layout) CellCenter(h Hex) Point {
	r := l.CellRect(h)
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// PixelToHex находит клетку под точкой карты. Сначала берётся грубый кандидат
// по сетке, затем точно проверяются он и его соседи.
func (l Layout) PixelToHex(p Point) (Hex, bool) {
	tx := int(math.Floor(p.X / l.TileW))
	if tx&1 == 1 {
		tx = int(math.Floor((p.X - l.TileW/2) / l.TileW))
	}
	ty := int(math.Floor(p.Y / l.RowH))
	guess := Hex{X: tx, Y: ty}

	around := guess.Neighbors()
	candidates := append([]Hex{guess}, around[:]...)
	for _, c := range candidates {
		if PointInHex(p, HexVertices(l.CellRect(c))) {
			return c, true
		}
	}
	return Hex{}, false
}
