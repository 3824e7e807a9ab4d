// pkg/render/color.go
package render

import (
	"image/color"

	"go-crown-quest/internal/config"
)

// TileColor возвращает цвет клетки по id тайла
func TileColor(id int) color.RGBA {
	if c, ok := config.TileColors[id]; ok {
		return c
	}
	return config.UnknownTileColor
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// TextColorOn выбирает светлый или темный текст для фона
func TextColorOn(bg color.RGBA) color.RGBA {
	if (int(bg.R)+int(bg.G)+int(bg.B))/3 > 128 {
		return config.TextDarkColor
	}
	return config.TextLightColor
}
