// internal/utils/math.go
package utils

import "math"

// Lerp выполняет линейную интерполяцию: t=0 -> from, t=1 -> to
func Lerp(t, from, to float64) float64 {
	return from + (to-from)*t
}

// Normalize переводит x из диапазона [a, b] в диапазон [c, d]
func Normalize(x, a, b, c, d float64) float64 {
	return c + ((x-a)*(d-c))/(b-a)
}

// RoundToNearest5 округляет до ближайшего кратного 5
func RoundToNearest5(x float64) int {
	return int(math.Round(x/5) * 5)
}

// Clamp ограничивает значение диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
