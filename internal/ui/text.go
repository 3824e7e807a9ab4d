// internal/ui/text.go
package ui

import (
	"image/color"
	"strings"

	"go-crown-quest/pkg/render"
)

// Wrap разбивает текст на строки не длиннее width символов.
// Переводы строк в тексте сохраняются, пустая строка дает пустую строку.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) > width {
				out = append(out, line)
				line = w
				continue
			}
			line += " " + w
		}
		out = append(out, line)
	}
	return out
}

func darken(c color.RGBA) color.RGBA {
	return render.DarkenColor(c)
}
