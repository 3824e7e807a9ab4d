// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go-crown-quest/internal/audio"
	"go-crown-quest/internal/battle"
	"go-crown-quest/internal/config"
	"go-crown-quest/internal/control"
	"go-crown-quest/internal/defs"
	"go-crown-quest/internal/encounter"
	"go-crown-quest/internal/event"
	"go-crown-quest/internal/unit"
	"go-crown-quest/internal/utils"
	"go-crown-quest/pkg/hexmap"
)

var (
	ErrInputDisabled = errors.New("input disabled")
	ErrPathTooLong   = errors.New("path too long")
	ErrNoPath        = errors.New("no path")
)

// Game — одна игровая сессия: карта, герой, очередь движения, бои и окна.
type Game struct {
	Lib        *defs.Library
	Settings   config.Settings
	Map        *hexmap.HexMap
	Player     *Player
	Table      *encounter.Table
	Dispatcher *event.Dispatcher
	Sounds     audio.Player
	Rng        *utils.PRNGService

	// события на клетках карты, ключ — индекс клетки
	events map[int]*encounter.Event

	ac      *control.Controller
	battle  *battle.Simulation
	windows []*Window
	logger  *slog.Logger

	// путь предпросмотра и последний пройденный путь
	preview     hexmap.PathResult
	pathTarget  hexmap.Hex
	hasTarget   bool
	lastPath    []hexmap.Hex
	previewLast int

	startingItem int
	won, lost    bool
}

// Option настраивает Game
type Option func(*Game)

// WithSounds задает звуковой пульт
func WithSounds(p audio.Player) Option {
	return func(g *Game) { g.Sounds = p }
}

// WithDispatcher задает шину уведомлений сессии
func WithDispatcher(d *event.Dispatcher) Option {
	return func(g *Game) { g.Dispatcher = d }
}

// WithLogger задает логгер сессии
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// NewGame строит сессию по определениям и настройкам. События на карте
// создаются сразу, колоды тасуются генератором с seed из настроек.
func NewGame(lib *defs.Library, s config.Settings, opts ...Option) (*Game, error) {
	if lib == nil {
		return nil, errors.New("definitions cannot be nil")
	}
	m := lib.Map
	hm := hexmap.NewHexMap(m.Width, m.Height, m.TileIDs())
	start := hexmap.Hex{X: s.Start.X, Y: s.Start.Y}
	if !hm.InBounds(start) {
		return nil, fmt.Errorf("start %s is outside of map %q (%dx%d)", start, m.Name, m.Width, m.Height)
	}
	if _, ok := lib.Unit(s.StartingUnit.Class); !ok {
		return nil, fmt.Errorf("unknown starting unit class %d", s.StartingUnit.Class)
	}

	rng := utils.NewPRNGService(s.Seed)
	g := &Game{
		Lib:          lib,
		Settings:     s,
		Map:          hm,
		Player:       NewPlayer(s),
		Dispatcher:   event.NewDispatcher(),
		Sounds:       audio.Nop{},
		Rng:          rng,
		events:       make(map[int]*encounter.Event),
		ac:           control.NewController(),
		logger:       slog.Default(),
		startingItem: config.StartingItem,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.Table = encounter.NewTable(lib, rng)
	g.Table.MaxDays = s.MaxDays

	for _, me := range m.Events {
		h := hexmap.Hex{X: me.X, Y: me.Y}
		idx := h.Index(hm.Width)
		e, ok := g.Table.Create(g, encounter.Kind(me.Kind), me.Level, idx)
		if !ok {
			continue
		}
		g.events[idx] = e
		hm.Tiles[idx].HasEvent = true
	}
	g.logger.Info("game created", "seed", rng.Seed(), "map", m.Name, "events", len(g.events))
	return g, nil
}

// Start выдает корону, открывает клетки вокруг героя и показывает вступление
func (g *Game) Start() {
	g.AddItem(g.startingItem)
	g.Map.Reveal(g.Player.Pos, config.VisionRange)
	g.Dispatcher.Emit(event.GameStarted, g.Player.Pos)
	g.doKind(encounter.KindDayStart, 0, -1)
}

func (g *Game) doKind(kind encounter.Kind, level, tileIndex int) {
	e, ok := g.Table.Create(g, kind, level, tileIndex)
	if !ok {
		g.logger.Warn("event not created", "kind", kind)
		return
	}
	g.DoEvent(e)
}

// InputDisabled — идет движение, бой или открыто окно
func (g *Game) InputDisabled() bool {
	return g.ac.Pending() > 0 || g.battle != nil || len(g.windows) > 0
}

// Update продвигает очередь движения, бой и анимации
func (g *Game) Update(dt time.Duration) {
	g.Player.Update(dt)
	g.ac.Update(dt)
	if g.battle != nil {
		g.battle.Update(dt)
	}
}

// ClickTile — клик по клетке карты. Первый клик показывает путь,
// повторный клик по той же клетке отправляет героя в путь.
func (g *Game) ClickTile(h hexmap.Hex) error {
	if g.InputDisabled() {
		return ErrInputDisabled
	}
	if !g.Map.InBounds(h) {
		return ErrNoPath
	}
	res := g.Map.FindPath(g.Lib.TileCost, g.Player.Pos, h)
	if !res.Found() {
		g.clearPreview()
		return ErrNoPath
	}
	if res.Cost >= config.ImpassableCost {
		g.logger.Info("Path too long", "cost", res.Cost, "tile", h.String())
		g.Dispatcher.Emit(event.PathRejected, ErrPathTooLong)
		return ErrPathTooLong
	}

	if g.hasTarget && g.pathTarget == h {
		g.commitPath(res)
		return nil
	}

	g.preview = res
	g.pathTarget = h
	g.hasTarget = true
	g.previewLast = g.Player.LastMovableIndex(res.Costs)
	g.logger.Debug("path previewed", "tile", h.String(), "cost", res.Cost, "steps", len(res.Path)-1)
	g.Dispatcher.Emit(event.PathPreviewed, res.Cost)
	return nil
}

func (g *Game) clearPreview() {
	g.preview = hexmap.PathResult{}
	g.hasTarget = false
	g.previewLast = 0
}

// Preview — показанный путь, его стоимость и индекс последней клетки,
// до которой герой успеет дойти сегодня
func (g *Game) Preview() (path []hexmap.Hex, cost float64, lastMovable int) {
	if !g.hasTarget {
		return nil, 0, 0
	}
	return g.preview.Path, g.preview.Cost, g.previewLast
}

func (g *Game) commitPath(res hexmap.PathResult) {
	g.clearPreview()
	g.lastPath = res.Path
	lastI := g.Player.LastMovableIndex(res.Costs)

	var dayEvent *encounter.Event
	for i := 1; i <= lastI; i++ {
		step := res.Path[i]
		cost := res.Costs[i] - res.Costs[i-1]
		g.ac.AddFunc(config.MoveStepDuration, nil, func() {
			g.moveTo(step)
			if g.Player.UpdateDayGauge(cost) {
				dayEvent = g.newDay()
			}
		})
	}

	dest := res.Path[lastI]
	g.ac.AddFunc(config.MoveStepDuration, nil, func() {
		tileEvent := g.events[dest.Index(g.Map.Width)]
		switch {
		case dayEvent != nil && tileEvent != nil:
			if dayEvent.Dialog != nil {
				next := dayEvent.Dialog.OnOk
				dayEvent.Dialog.OnOk = func() {
					if next != nil {
						next()
					}
					if !g.Over() {
						g.DoEvent(tileEvent)
					}
				}
			}
			g.DoEvent(dayEvent)
		case dayEvent != nil:
			g.DoEvent(dayEvent)
		case tileEvent != nil:
			g.DoEvent(tileEvent)
		}
	})
}

func (g *Game) moveTo(h hexmap.Hex) {
	g.Player.Pos = h
	g.Map.Reveal(h, config.VisionRange)
	g.PlaySound(audio.HorseStep)
	g.Dispatcher.Emit(event.PlayerMoved, h)
}

func (g *Game) newDay() *encounter.Event {
	day := g.Player.Day
	g.logger.Info("new day", "day", day)
	g.Dispatcher.Emit(event.NewDay, day)
	e, ok := g.Table.Create(g, encounter.DayEventKind(day, g.Table.MaxDays), 0, -1)
	if !ok {
		return nil
	}
	return e
}

// Interact запускает событие клетки, на которой стоит герой
func (g *Game) Interact() error {
	if g.InputDisabled() {
		return ErrInputDisabled
	}
	if e := g.events[g.Player.Pos.Index(g.Map.Width)]; e != nil {
		g.DoEvent(e)
	}
	return nil
}

// DoEvent проигрывает звук события и открывает его окно или бой
func (g *Game) DoEvent(e *encounter.Event) {
	if e == nil {
		return
	}
	g.PlaySound(e.Sound)
	switch {
	case e.Battle != nil:
		g.startBattle(e)
	case e.Dialog != nil:
		d := e.Dialog
		g.openWindow(&Window{
			Type:   encounter.DialogInfo,
			Title:  d.Title,
			Text:   d.Text,
			Sprite: d.Sprite,
			OnOk:   d.OnOk,
		})
	case e.Store != nil:
		g.openWindow(&Window{
			Type:   encounter.DialogStore,
			Title:  "Vendor",
			Text:   e.Store.Text,
			Sprite: e.Store.Sprite,
			Store:  e.Store,
		})
	}
}

// Do — то же, что DoEvent; нужен событиям, которые порождают новые события
func (g *Game) Do(e *encounter.Event) { g.DoEvent(e) }

func (g *Game) armyUnits(armies []encounter.Army) []*unit.Unit {
	var out []*unit.Unit
	for _, a := range armies {
		t, ok := g.Lib.Unit(a.Class)
		if !ok {
			g.logger.Warn("unknown unit class", "class", a.Class)
			continue
		}
		out = append(out, unit.NewFromTemplate(t, a.Stack))
	}
	return out
}

func (g *Game) startBattle(e *encounter.Event) {
	left := g.armyUnits([]encounter.Army{g.Player.Army})
	right := g.armyUnits(e.Battle.Units)
	sim := battle.NewSimulation(left, right, &g.Player.Hero, g.Rng,
		battle.WithSounds(g.Sounds),
		battle.WithLogger(g.logger),
	)
	w := &Window{
		Type:   encounter.DialogBattle,
		Title:  "Battle!",
		Text:   fmt.Sprintf("%s will go first!", sim.FirstMover().Label),
		Sprite: sim.Right.Sprite,
		Battle: sim,
	}
	sim.OnCompleted = func(o battle.Outcome) {
		g.finishBattle(e, w, o)
	}
	g.battle = sim
	g.logger.Info("battle started", "tile", e.Battle.TileIndex, "left", sim.Left.StackSize, "right", sim.Right.StackSize)
	g.Dispatcher.Emit(event.BattleStarted, e.Battle.TileIndex)
	g.openWindow(w)
}

// Battle — идущий бой или nil
func (g *Game) Battle() *battle.Simulation {
	return g.battle
}

// StartBattle — кнопка Fight
func (g *Game) StartBattle() bool {
	if g.battle == nil || g.battle.Started() {
		return false
	}
	g.battle.Start()
	return true
}

// RetreatBattle — кнопка Retreat, доступна до начала боя
func (g *Game) RetreatBattle() bool {
	if g.battle == nil || g.battle.Started() {
		return false
	}
	g.battle.Retreat()
	return true
}

func (g *Game) finishBattle(e *encounter.Event, w *Window, o battle.Outcome) {
	sim := g.battle
	g.battle = nil
	g.closeWindow(w)
	g.logger.Info("battle finished", "outcome", o, "rounds", sim.Rounds())
	g.Dispatcher.Emit(event.BattleFinished, o)

	switch o {
	case battle.OutcomeWin:
		g.RemoveEventAt(e.Battle.TileIndex)
		g.Player.Army.Stack = sim.Left.StackSize
		g.PlaySound(audio.Blip)
	case battle.OutcomeRetreat:
		if n := len(g.lastPath); n >= 2 {
			g.moveTo(g.lastPath[n-2])
		}
	case battle.OutcomeLose:
		g.Player.Army.Stack = 0
		g.doKind(encounter.KindDayLoss, 0, -1)
	}
}

// Event — событие на клетке или nil
func (g *Game) Event(h hexmap.Hex) *encounter.Event {
	if !g.Map.InBounds(h) {
		return nil
	}
	return g.events[h.Index(g.Map.Width)]
}

// RemoveEventAt убирает событие, клетка становится травой
func (g *Game) RemoveEventAt(tileIndex int) {
	if _, ok := g.events[tileIndex]; !ok {
		return
	}
	delete(g.events, tileIndex)
	g.Map.ClearEvent(tileIndex, defs.GrassTileID)
}

func (g *Game) AddGold(amount int) {
	g.Player.Gold += amount
	g.Dispatcher.Emit(event.GoldChanged, g.Player.Gold)
}

func (g *Game) AddItem(itemID int) {
	item, ok := g.Lib.Item(itemID)
	if !ok {
		g.logger.Warn("unknown item", "item", itemID)
	}
	g.Player.AddItem(itemID, item.Stats)
	g.Dispatcher.Emit(event.ItemsChanged, g.Player.Items)
}

func (g *Game) AddExp(exp int) (int, unit.Hero, unit.Hero) {
	return g.Player.AddExp(exp, g.Rng)
}

func (g *Game) Day() int { return g.Player.Day }

func (g *Game) Win() {
	g.won = true
	g.logger.Info("game won", "day", g.Player.Day)
	g.Dispatcher.Emit(event.GameOver, true)
}

func (g *Game) Lose() {
	g.lost = true
	g.logger.Info("game lost", "day", g.Player.Day)
	g.Dispatcher.Emit(event.GameOver, false)
}

func (g *Game) Won() bool  { return g.won }
func (g *Game) Lost() bool { return g.lost }
func (g *Game) Over() bool { return g.won || g.lost }

func (g *Game) PlaySound(name string) {
	if name == "" {
		return
	}
	g.Sounds.Play(name)
}
