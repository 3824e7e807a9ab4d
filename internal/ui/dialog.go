// internal/ui/dialog.go
package ui

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"strings"

	"go-crown-quest/internal/app"
	"go-crown-quest/internal/battle"
	"go-crown-quest/internal/config"
	"go-crown-quest/internal/encounter"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	dialogTop     = 100
	dialogPadding = 16
	battleLogSize = 8
	buttonIndent  = "          "
)

// Row — строка окна: текст и, возможно, кнопка слева от него
type Row struct {
	Text   string
	Color  color.Color
	Button *Button
}

// DialogView рисует верхнее окно сессии и переводит ввод в вызовы app.Game
type DialogView struct {
	game   *app.Game
	face   font.Face
	copy   func(string) error
	Status string

	buttons []*Button
}

// NewDialogView создает вид окон. copy == nil — системный буфер обмена.
func NewDialogView(g *app.Game, copyFn func(string) error) *DialogView {
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	return &DialogView{game: g, face: basicfont.Face7x13, copy: copyFn}
}

func panelRect(width int, rows int) image.Rectangle {
	x0 := (config.ScreenWidth - width) / 2
	h := 2*dialogPadding + rows*config.LineHeight + buttonHeight
	return image.Rect(x0, dialogTop, x0+width, dialogTop+h)
}

func textWidth(panelWidth int) int {
	return (panelWidth - 2*dialogPadding) / config.TextCharWidth
}

// Layout раскладывает строки и кнопки верхнего окна
func (d *DialogView) Layout(w *app.Window) (image.Rectangle, []Row) {
	if w == nil {
		d.buttons = nil
		return image.Rectangle{}, nil
	}
	width := config.DialogWidth
	var rows []Row
	switch w.Type {
	case encounter.DialogStore:
		rows = d.storeRows(w)
	case encounter.DialogBattle:
		width = config.BattlePanelWidth
		rows = d.battleRows(w.Battle)
	default:
		rows = append(rows, Row{Text: w.Title, Color: config.WeakerColor})
		for _, line := range Wrap(w.Text, textWidth(width)) {
			rows = append(rows, Row{Text: line})
		}
	}
	if d.Status != "" {
		rows = append(rows, Row{Text: d.Status, Color: config.StrongerColor})
	}

	rect := panelRect(width, len(rows)+1)
	d.buttons = d.buttons[:0]
	for i := range rows {
		if rows[i].Button == nil {
			continue
		}
		y := rect.Min.Y + dialogPadding + i*config.LineHeight
		b := rows[i].Button
		b.Rect = b.Rect.Sub(b.Rect.Min).Add(image.Pt(rect.Min.X+dialogPadding, y))
		d.buttons = append(d.buttons, b)
	}
	d.buttons = append(d.buttons, d.footer(w, rect)...)
	return rect, rows
}

func (d *DialogView) footer(w *app.Window, rect image.Rectangle) []*Button {
	y := rect.Max.Y - dialogPadding - buttonHeight
	x := rect.Max.X - dialogPadding
	var out []*Button
	add := func(label string, onClick func() error) {
		b := NewButton(0, y, label, onClick)
		x -= b.Rect.Dx()
		b.Rect = b.Rect.Add(image.Pt(x, 0))
		x -= buttonPadding
		out = append(out, b)
	}

	if w.Type == encounter.DialogBattle && w.Battle != nil {
		sim := w.Battle
		if !sim.Started() {
			add("Fight", func() error {
				d.game.StartBattle()
				return nil
			})
			add("Retreat", func() error {
				d.game.RetreatBattle()
				return nil
			})
		}
		if sim.OKVisible() {
			add("OK", d.confirm)
		}
		add("Copy log (C)", d.CopyLog)
		return out
	}
	add("OK", d.confirm)
	return out
}

func (d *DialogView) confirm() error {
	d.Status = ""
	d.game.ConfirmDialog()
	return nil
}

func (d *DialogView) storeRows(w *app.Window) []Row {
	g := d.game
	store := w.Store
	rows := []Row{
		{Text: w.Title, Color: config.WeakerColor},
	}
	for _, line := range Wrap(w.Text, textWidth(config.DialogWidth)) {
		rows = append(rows, Row{Text: line})
	}
	rows = append(rows, Row{Text: fmt.Sprintf("You have %d gold", g.Player.Gold), Color: config.GaugePreview})

	if store.Items != nil || store.Recruits == nil {
		rows = append(rows, Row{Text: "BUY ITEMS"})
		for _, id := range store.Items {
			item, _ := g.Lib.Item(id)
			b := NewButton(0, 0, "Buy", func() error { return g.BuyItem(id) })
			b.Disabled = g.Player.Gold < item.Cost
			rows = append(rows, Row{Text: itemText(item.Name, item.Cost, item.Stats), Button: b})
		}
		rows = append(rows, Row{Text: "SELL ITEMS"})
		for _, id := range g.Player.Items {
			item, _ := g.Lib.Item(id)
			b := NewButton(0, 0, "Sell", func() error { return g.SellItem(id) })
			b.Disabled = id == config.StartingItem
			rows = append(rows, Row{Text: itemText(item.Name, item.SellCost, item.Stats), Button: b})
		}
	}
	if store.Recruits != nil {
		if len(store.Recruits) == 0 {
			rows = append(rows, Row{Text: "You have already recruited these units.", Color: config.StrongerColor})
		}
		for i, r := range store.Recruits {
			label := "Units"
			if t, ok := g.Lib.Unit(r.Class); ok {
				label = t.Label
			}
			b := NewButton(0, 0, "Recruit", g.Recruit)
			b.Disabled = i > 0 || g.Player.Gold < r.Cost
			rows = append(rows, Row{Text: fmt.Sprintf("%s%s (%d) - %d gold", buttonIndent, label, r.Stack, r.Cost), Button: b})
		}
	}
	return rows
}

// itemText — "Iron Sword - 100 gold  ATT: 2"; отступ оставляет место под кнопку
func itemText(name string, cost int, stats map[string]int) string {
	s := fmt.Sprintf("%s%s - %d gold", buttonIndent, name, cost)
	if st := encounter.StatsText(stats); st != "" {
		s += "  " + st
	}
	return s
}

func (d *DialogView) battleRows(sim *battle.Simulation) []Row {
	if sim == nil {
		return nil
	}
	rows := []Row{
		{Text: fmt.Sprintf("%s x%d  vs  %s x%d", sim.Left.Label, sim.Left.StackSize, sim.Right.Label, sim.Right.StackSize), Color: config.WeakerColor},
		{Text: fmt.Sprintf("Speed: %d vs %d", sim.LeftSpeed, sim.RightSpeed)},
	}
	f := sim.DamageForecast(sim.Left, sim.Right)
	rows = append(rows, Row{Text: fmt.Sprintf("Your damage: %d-%d per unit", f.MinDamage, f.MaxDamage)})

	switch {
	case !sim.Started():
		rows = append(rows, Row{Text: fmt.Sprintf("%s will go first!", sim.FirstMover().Label)})
	case sim.Conclusion() == battle.OutcomeWin:
		rows = append(rows, Row{Text: "Victory!", Color: config.WeakerColor})
	case sim.Conclusion() == battle.OutcomeLose:
		rows = append(rows, Row{Text: "Your army has been defeated.", Color: config.StrongerColor})
	default:
		rows = append(rows, Row{Text: fmt.Sprintf("Round %d", sim.Rounds())})
	}

	log := sim.Log()
	if len(log) > battleLogSize {
		log = log[len(log)-battleLogSize:]
	}
	for _, line := range log {
		for _, l := range Wrap(line, textWidth(config.BattlePanelWidth)) {
			rows = append(rows, Row{Text: l})
		}
	}
	return rows
}

// Click нажимает кнопку под точкой. true — кнопка нашлась и была активна.
func (d *DialogView) Click(p image.Point) bool {
	for _, b := range d.buttons {
		if !b.Contains(p) {
			continue
		}
		d.Status = ""
		ok, err := b.Click()
		if err != nil {
			d.report(err)
		}
		return ok
	}
	return false
}

func (d *DialogView) report(err error) {
	switch {
	case errors.Is(err, app.ErrNotEnoughGold):
		d.Status = "Not enough gold."
	default:
		d.Status = err.Error()
	}
}

// Confirm — Enter или пробел: OK, если кнопка OK сейчас видна
func (d *DialogView) Confirm() bool {
	w := d.game.TopWindow()
	if w == nil || !w.OKVisible() {
		return false
	}
	d.Status = ""
	return d.game.ConfirmDialog()
}

// CopyLog копирует журнал боя в буфер обмена
func (d *DialogView) CopyLog() error {
	w := d.game.TopWindow()
	if w == nil || w.Battle == nil {
		return nil
	}
	if err := d.copy(strings.Join(w.Battle.Log(), "\n")); err != nil {
		return fmt.Errorf("failed to copy combat log: %w", err)
	}
	d.Status = "Combat log copied."
	return nil
}

// Update обрабатывает клавиатуру и мышь. Вызывается, только когда окно открыто.
func (d *DialogView) Update() {
	w := d.game.TopWindow()
	d.Layout(w)
	if w == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		d.Confirm()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := d.CopyLog(); err != nil {
			slog.Warn("clipboard unavailable", "error", err)
			d.Status = "Clipboard is not available."
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		d.Click(image.Pt(x, y))
	}
}

// Draw рисует верхнее окно
func (d *DialogView) Draw(screen *ebiten.Image) {
	w := d.game.TopWindow()
	rect, rows := d.Layout(w)
	if w == nil {
		return
	}
	vector.FillRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), config.PanelColor, false)
	vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), config.StrokeWidth, config.PanelStroke, false)

	for i, row := range rows {
		y := rect.Min.Y + dialogPadding + i*config.LineHeight
		c := row.Color
		if c == nil {
			c = config.TextLightColor
		}
		text.Draw(screen, row.Text, d.face, rect.Min.X+dialogPadding, y+14, c)
	}

	mx, my := ebiten.CursorPosition()
	cursor := image.Pt(mx, my)
	for _, b := range d.buttons {
		b.Draw(screen, d.face, b.Contains(cursor))
	}
}
