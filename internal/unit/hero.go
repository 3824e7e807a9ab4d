// internal/unit/hero.go
package unit

// Hero — бонусы героя к характеристикам его армии
type Hero struct {
	Attack  int
	Defense int
	Speed   int
}

// Bonus возвращает бонус к характеристике. Нулевой герой бонусов не дает.
func (h *Hero) Bonus(s Stat) int {
	if h == nil {
		return 0
	}
	switch s {
	case StatAttack:
		return h.Attack
	case StatDefense:
		return h.Defense
	case StatSpeed:
		return h.Speed
	}
	return 0
}

// Add прибавляет delta к характеристике героя
func (h *Hero) Add(s Stat, delta int) {
	switch s {
	case StatAttack:
		h.Attack += delta
	case StatDefense:
		h.Defense += delta
	case StatSpeed:
		h.Speed += delta
	}
}

// ApplyBonuses прибавляет (sign = 1) или снимает (sign = -1) бонусы предмета.
// Ключи — имена характеристик: att, def, spd.
func (h *Hero) ApplyBonuses(stats map[string]int, sign int) {
	for _, s := range HeroStats {
		h.Add(s, sign*stats[string(s)])
	}
}

// StatContext — данные для одного расчета характеристики
type StatContext struct {
	Attacker *Unit
	Victim   *Unit
	Hero     *Hero
}
