// internal/unit/depiction.go
package unit

import (
	"fmt"

	"go-crown-quest/internal/utils"
)

// AggregateDepiction сворачивает отряды одной стороны в одного представителя.
// Каждый следующий отряд целиком перезаписывает значения предыдущего,
// поэтому в результате остаются характеристики последнего.
func AggregateDepiction(units []*Unit) *Unit {
	d := New(0)
	for _, u := range units {
		d.StackSize = u.StackSize
		d.Attack = u.Attack
		d.Speed = u.Speed
		d.Defense = u.Defense
		d.MaxHealth = u.MaxHealth
		d.Health = u.Health
		d.AttackVariance = u.AttackVariance
		d.Sprite = u.Sprite
		d.Label = u.Label
	}
	return d
}

// Rating — оценка отряда вида "1.xx" по атаке и защите
func Rating(u *Unit, ctx StatContext) string {
	return fmt.Sprintf("%.2f", RatingValue(u, ctx))
}

// RatingValue — числовое значение оценки для сравнения
func RatingValue(u *Unit, ctx StatContext) float64 {
	att := u.GetStat(StatAttack, ctx) - 5
	def := u.GetStat(StatDefense, ctx)
	hp := 0
	return 1 + utils.Normalize(float64(att+def+hp+1), 1, 10, 0, 100)/100
}
