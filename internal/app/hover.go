// internal/app/hover.go
package app

import (
	"go-crown-quest/internal/encounter"
	"go-crown-quest/internal/unit"
	"go-crown-quest/pkg/hexmap"
)

// HoverInfo — подсказка над клеткой с событием
type HoverInfo struct {
	Label  string
	Rating string
	// Compare: 1 — враг сильнее армии героя, -1 — слабее, 0 — равны или не бой
	Compare int
}

// Hover возвращает подсказку для клетки. Клетки под туманом и без событий
// подсказки не имеют.
func (g *Game) Hover(h hexmap.Hex) (HoverInfo, bool) {
	if g.Map.Hidden(h) {
		return HoverInfo{}, false
	}
	e := g.Event(h)
	if e == nil {
		return HoverInfo{}, false
	}
	info := HoverInfo{Label: e.Label}
	if e.Battle == nil {
		return info, true
	}

	enemies := g.armyUnits(e.Battle.Units)
	if len(enemies) == 0 {
		return info, true
	}
	enemy := unit.AggregateDepiction(enemies)
	info.Rating = unit.Rating(enemy, unit.StatContext{})

	own := g.armyUnits([]encounter.Army{g.Player.Army})
	if len(own) == 0 {
		return info, true
	}
	enemyRating := unit.RatingValue(enemy, unit.StatContext{})
	ownRating := unit.RatingValue(unit.AggregateDepiction(own), unit.StatContext{Hero: &g.Player.Hero})
	switch {
	case enemyRating > ownRating:
		info.Compare = 1
	case enemyRating < ownRating:
		info.Compare = -1
	}
	return info, true
}
