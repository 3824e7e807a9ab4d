// internal/app/window.go
package app

import (
	"go-crown-quest/internal/battle"
	"go-crown-quest/internal/encounter"
	"go-crown-quest/internal/event"
)

// Window — открытое модальное окно. Пока есть хотя бы одно окно, карта не принимает ввод.
type Window struct {
	Type   encounter.DialogType
	Title  string
	Text   string
	Sprite int
	OnOk   func()

	Store  *encounter.Store
	Battle *battle.Simulation
}

// OKVisible — можно ли сейчас нажать OK
func (w *Window) OKVisible() bool {
	if w.Type == encounter.DialogBattle {
		return w.Battle != nil && w.Battle.OKVisible()
	}
	return true
}

func (g *Game) openWindow(w *Window) {
	g.windows = append(g.windows, w)
	g.logger.Debug("window opened", "type", w.Type, "title", w.Title)
	g.Dispatcher.Emit(event.DialogOpened, w.Title)
}

func (g *Game) closeWindow(w *Window) {
	for i := len(g.windows) - 1; i >= 0; i-- {
		if g.windows[i] == w {
			g.windows = append(g.windows[:i], g.windows[i+1:]...)
			g.Dispatcher.Emit(event.DialogClosed, w.Title)
			return
		}
	}
}

// TopWindow — окно, которое сейчас получает ввод, или nil
func (g *Game) TopWindow() *Window {
	if len(g.windows) == 0 {
		return nil
	}
	return g.windows[len(g.windows)-1]
}

// Windows — все открытые окна снизу вверх
func (g *Game) Windows() []*Window {
	return g.windows
}

// ConfirmDialog нажимает OK в верхнем окне. false — окна нет или OK еще недоступна.
func (g *Game) ConfirmDialog() bool {
	w := g.TopWindow()
	if w == nil {
		return false
	}
	switch w.Type {
	case encounter.DialogBattle:
		// окно закрывается в обработчике завершения боя
		return w.Battle != nil && w.Battle.Confirm()
	default:
		g.closeWindow(w)
		if w.OnOk != nil {
			w.OnOk()
		}
		return true
	}
}
