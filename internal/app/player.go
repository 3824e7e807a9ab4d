// internal/app/player.go
package app

import (
	"math"
	"time"

	"go-crown-quest/internal/config"
	"go-crown-quest/internal/encounter"
	"go-crown-quest/internal/unit"
	"go-crown-quest/internal/utils"
	"go-crown-quest/pkg/hexmap"
)

// Player — герой на карте мира
type Player struct {
	Pos   hexmap.Hex
	Gold  int
	Level int
	Exp   int
	Items []int
	Hero  unit.Hero
	Army  encounter.Army

	// DayGauge копится стоимостью пройденных клеток, DayLength — длина дня
	DayGauge  float64
	DayLength float64
	Day       int

	Flag *utils.LoopAnim
}

// NewPlayer создает героя по настройкам
func NewPlayer(s config.Settings) *Player {
	p := &Player{
		Pos:       hexmap.Hex{X: s.Start.X, Y: s.Start.Y},
		Gold:      s.StartingGold,
		Army:      encounter.Army{Class: s.StartingUnit.Class, Stack: s.StartingUnit.Stack},
		DayLength: s.DayGauge,
		Flag:      utils.NewLoopAnim(250*time.Millisecond, 0, 1),
	}
	p.Flag.Activate()
	return p
}

// UpdateDayGauge тратит cost из запаса дня. true — наступил новый день.
func (p *Player) UpdateDayGauge(cost float64) bool {
	p.DayGauge += cost
	if p.DayGauge < p.DayLength {
		return false
	}
	p.Day++
	p.DayGauge = math.Mod(p.DayGauge, p.DayLength)
	return true
}

// DayPct — заполненность шкалы дня от 0 до 1
func (p *Player) DayPct() float64 {
	if p.DayLength <= 0 {
		return 0
	}
	return utils.Clamp(p.DayGauge/p.DayLength, 0, 1)
}

// LastMovableIndex — индекс последней клетки пути, до которой герой дойдет
// в текущий день. costs — накопленные стоимости из hexmap.PathResult.
// Шаг, на котором шкала заполняется, еще делается.
func (p *Player) LastMovableIndex(costs []float64) int {
	if len(costs) < 2 {
		return 0
	}
	s := p.DayGauge
	for i := 1; i < len(costs); i++ {
		s += costs[i] - costs[i-1]
		if s >= p.DayLength {
			return i
		}
	}
	return len(costs) - 1
}

// ExpForNextLevel — порог опыта следующего уровня
func (p *Player) ExpForNextLevel() int {
	return (p.Level + 1) * config.LevelExpStep
}

// AddExp начисляет опыт. За каждый уровень каждая характеристика героя
// растет на 1 с вероятностью 0.75.
func (p *Player) AddExp(exp int, rng *utils.PRNGService) (levels int, before, after unit.Hero) {
	before = p.Hero
	p.Exp += exp
	for p.Exp >= p.ExpForNextLevel() {
		p.Level++
		levels++
		for _, s := range unit.HeroStats {
			if rng.Float64() > config.LevelStatChance {
				p.Hero.Add(s, 1)
			}
		}
	}
	return levels, before, p.Hero
}

// AddItem кладет предмет в сумку и применяет его бонусы
func (p *Player) AddItem(id int, stats map[string]int) {
	p.Items = append(p.Items, id)
	p.Hero.ApplyBonuses(stats, 1)
}

// RemoveItem убирает предмет и снимает бонусы. false — предмета нет.
func (p *Player) RemoveItem(id int, stats map[string]int) bool {
	for i, it := range p.Items {
		if it == id {
			p.Items = append(p.Items[:i], p.Items[i+1:]...)
			p.Hero.ApplyBonuses(stats, -1)
			return true
		}
	}
	return false
}

// HasItem проверяет наличие предмета
func (p *Player) HasItem(id int) bool {
	for _, it := range p.Items {
		if it == id {
			return true
		}
	}
	return false
}

func (p *Player) Update(dt time.Duration) {
	p.Flag.Update(dt)
}
