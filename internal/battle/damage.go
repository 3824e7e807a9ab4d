// internal/battle/damage.go
package battle

import (
	"math"

	"go-crown-quest/internal/unit"
	"go-crown-quest/internal/utils"
)

// RNG — источник равномерных чисел в [0, 1)
type RNG interface {
	Float64() float64
}

// Casualties — состояние отряда после удара
type Casualties struct {
	NextStack  int
	NextHealth int
}

// Destroyed — отряд уничтожен целиком
func (c Casualties) Destroyed() bool {
	return c.NextStack <= 0
}

// NextStackSize считает потери, представляя весь отряд одним пулом здоровья.
// Если остаток кратен MaxHealth, передний боец остается с полным здоровьем.
func NextStackSize(target *unit.Unit, totalDamage int) Casualties {
	mhp := target.MaxHealth
	if mhp <= 0 {
		return Casualties{}
	}
	pool := target.Health + (target.StackSize-1)*mhp
	remaining := pool - totalDamage

	next := int(math.Ceil(float64(remaining) / float64(mhp)))
	if next <= 0 {
		return Casualties{NextStack: 0, NextHealth: 0}
	}
	health := remaining % mhp
	if health == 0 {
		health = mhp
	}
	return Casualties{NextStack: next, NextHealth: health}
}

// DamageForecast — разброс урона одного бойца и размеры отряда цели
// после минимального и максимального удара
type DamageForecast struct {
	MinDamage    int
	MaxDamage    int
	MinNextStack int
	MaxNextStack int
}

// Forecast считает разброс урона attacker по target.
// Защита вычитается и из максимума, и еще раз из минимума.
func Forecast(attacker, target *unit.Unit, attackerHero, targetHero *unit.Hero) DamageForecast {
	ctx := unit.StatContext{Attacker: attacker, Victim: target}

	defCtx := ctx
	defCtx.Hero = targetHero
	def := target.GetStat(unit.StatDefense, defCtx)

	attCtx := ctx
	attCtx.Hero = attackerHero
	maxDmg := max(1, attacker.GetStat(unit.StatAttack, attCtx)-def)
	minDmg := max(1, maxDmg-int(math.Floor(float64(maxDmg)*attacker.AttackVariance))-def)

	return DamageForecast{
		MinDamage:    minDmg,
		MaxDamage:    maxDmg,
		MinNextStack: NextStackSize(target, minDmg*attacker.StackSize).NextStack,
		MaxNextStack: NextStackSize(target, maxDmg*attacker.StackSize).NextStack,
	}
}

// RollDamage выбирает урон одного бойца внутри прогноза
func RollDamage(f DamageForecast, rng RNG) int {
	v := utils.Lerp(rng.Float64(), float64(f.MinDamage), float64(f.MaxDamage))
	return int(math.Round(math.Max(1, v)))
}
