// pkg/hexmap/map.go
package hexmap

import "go-crown-quest/internal/config"

// Tile — клетка карты мира
type Tile struct {
	ID        int
	HasEvent  bool
	EventUsed bool
}

// HexMap — прямоугольная карта в offset-координатах с туманом войны
type HexMap struct {
	Width  int
	Height int
	Tiles  []Tile
	Fog    []bool // true — клетка скрыта
}

// NewHexMap строит карту из плоского списка id, туман покрывает всё
func NewHexMap(width, height int, ids []int) *HexMap {
	hm := &HexMap{
		Width:  width,
		Height: height,
		Tiles:  make([]Tile, width*height),
		Fog:    make([]bool, width*height),
	}
	for i := range hm.Tiles {
		if i < len(ids) {
			hm.Tiles[i].ID = ids[i]
		}
		hm.Fog[i] = true
	}
	return hm
}

func (hm *HexMap) InBounds(h Hex) bool {
	return h.InBounds(hm.Width, hm.Height)
}

// Tile возвращает клетку или nil за пределами карты
func (hm *HexMap) Tile(h Hex) *Tile {
	if !hm.InBounds(h) {
		return nil
	}
	return &hm.Tiles[h.Index(hm.Width)]
}

// Hidden — клетка под туманом. За пределами карты всё скрыто.
func (hm *HexMap) Hidden(h Hex) bool {
	if !hm.InBounds(h) {
		return true
	}
	return hm.Fog[h.Index(hm.Width)]
}

// Reveal снимает туман с квадрата радиусом r вокруг center
func (hm *HexMap) Reveal(center Hex, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			h := Hex{X: center.X + dx, Y: center.Y + dy}
			if hm.InBounds(h) {
				hm.Fog[h.Index(hm.Width)] = false
			}
		}
	}
}

// CostMap строит массив стоимостей для FindPath. Клетка с событием
// непроходима, если только она не является пунктом назначения.
func (hm *HexMap) CostMap(costOf func(id int) float64, dest Hex) []float64 {
	costs := make([]float64, len(hm.Tiles))
	for i, t := range hm.Tiles {
		cost := costOf(t.ID)
		if t.HasEvent && FromIndex(i, hm.Width) != dest {
			cost = config.ImpassableCost
		}
		costs[i] = cost
	}
	return costs
}

// ClearEvent убирает событие с клетки и заменяет ее на tileID
func (hm *HexMap) ClearEvent(index, tileID int) {
	if index < 0 || index >= len(hm.Tiles) {
		return
	}
	hm.Tiles[index].HasEvent = false
	hm.Tiles[index].ID = tileID
}

// FindPath — поиск пути по карте с учетом стоимостей клеток
func (hm *HexMap) FindPath(costOf func(id int) float64, start, end Hex) PathResult {
	return FindPath(hm.CostMap(costOf, end), hm.Width, start, end)
}
