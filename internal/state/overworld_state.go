// internal/state/overworld_state.go
package state

import (
	"errors"
	"image"
	"log/slog"

	"go-crown-quest/internal/app"
	"go-crown-quest/internal/audio"
	"go-crown-quest/internal/config"
	"go-crown-quest/internal/encounter"
	"go-crown-quest/internal/event"
	"go-crown-quest/internal/ui"
	"go-crown-quest/pkg/hexmap"
	"go-crown-quest/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что OverworldState соответствует интерфейсу State
var _ State = (*OverworldState)(nil)

// OverworldState — карта мира: камера, путь героя, окна событий
type OverworldState struct {
	sm         *StateMachine
	game       *app.Game
	newSession SessionFactory

	camera    *render.Camera
	renderer  *render.HexRenderer
	dialog    *ui.DialogView
	infoPanel *ui.InfoPanel
	events    *eventLogger

	click clickTracker
	pan   panTracker
	hover *hexmap.Hex
}

func NewOverworldState(sm *StateMachine, g *app.Game, newSession SessionFactory) *OverworldState {
	return &OverworldState{
		sm:         sm,
		game:       g,
		newSession: newSession,
		camera:     render.NewCamera(config.StartZoom),
		renderer:   render.NewHexRenderer(hexmap.DefaultLayout),
		dialog:     ui.NewDialogView(g, nil),
		infoPanel:  ui.NewInfoPanel(g),
		events:     &eventLogger{logger: slog.Default()},
	}
}

func (o *OverworldState) Enter() {
	o.game.Dispatcher.SubscribeAll(o.events, loggedEvents...)
	o.camera.CenterOn(o.renderer.Layout().CellCenter(o.game.Player.Pos), config.ScreenWidth, config.ScreenHeight)
	o.game.Start()
}

func (o *OverworldState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		o.sm.Suspend(NewPauseState(o.sm, o))
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		toggleMute(o.game.Sounds)
	}

	o.game.Update(seconds(deltaTime))

	mx, my := ebiten.CursorPosition()
	cursor := image.Pt(mx, my)
	o.handleCamera(cursor)

	if o.game.TopWindow() != nil {
		o.hover = nil
		o.click.Release()
		o.dialog.Update()
		return
	}
	if o.game.Over() {
		o.sm.SetState(NewTitleState(o.sm, o.newSession))
		return
	}
	o.handleMap(cursor)
}

func (o *OverworldState) handleCamera(cursor image.Point) {
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if d := o.pan.Step(down, cursor); d != (image.Point{}) {
		o.camera.Pan(float64(d.X), float64(d.Y))
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		o.camera.ZoomAt(wy, float64(cursor.X), float64(cursor.Y))
	}
}

func (o *OverworldState) handleMap(cursor image.Point) {
	o.hover = nil
	if h, ok := o.camera.HexAt(o.renderer.Layout(), float64(cursor.X), float64(cursor.Y)); ok && o.game.Map.InBounds(h) {
		o.hover = &h
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if err := o.game.Interact(); err != nil && !errors.Is(err, app.ErrInputDisabled) {
			slog.Debug("interact failed", "error", err)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		o.click.Press(cursor)
	}
	o.click.Move(cursor)
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && o.click.Release() && o.hover != nil {
		o.clickTile(*o.hover)
	}
}

func (o *OverworldState) clickTile(h hexmap.Hex) {
	err := o.game.ClickTile(h)
	switch {
	case err == nil:
	case errors.Is(err, app.ErrInputDisabled), errors.Is(err, app.ErrNoPath):
		slog.Debug("click ignored", "tile", h, "error", err)
	case errors.Is(err, app.ErrPathTooLong):
		// уже залогировано в сессии
	default:
		slog.Warn("click failed", "tile", h, "error", err)
	}
}

// scene собирает данные кадра для рендерера
func (o *OverworldState) scene() render.Scene {
	g := o.game
	s := render.Scene{
		Map:    g.Map,
		Player: g.Player.Pos,
		FlagUp: g.Player.Flag.Index == 1,
		Hover:  o.hover,
	}
	if path, _, last := g.Preview(); len(path) > 0 {
		s.Path = path
		s.LastMovable = last
	}
	for i := range g.Map.Tiles {
		h := hexmap.FromIndex(i, g.Map.Width)
		if e := g.Event(h); e != nil && e.Kind == encounter.KindBattle {
			s.Battles = append(s.Battles, h)
		}
	}
	return s
}

func (o *OverworldState) Draw(screen *ebiten.Image) {
	o.renderer.Draw(screen, o.camera, o.scene())
	o.infoPanel.Draw(screen)

	if o.hover != nil && o.game.TopWindow() == nil {
		if info, ok := o.game.Hover(*o.hover); ok {
			mx, my := ebiten.CursorPosition()
			o.infoPanel.DrawTooltip(screen, mx, my+4, info)
		}
	}
	o.dialog.Draw(screen)
}

func (o *OverworldState) Exit() {
	for _, t := range loggedEvents {
		o.game.Dispatcher.Unsubscribe(t, o.events)
	}
}

var loggedEvents = []event.EventType{
	event.GameStarted, event.NewDay, event.PathRejected, event.BattleStarted,
	event.BattleFinished, event.GoldChanged, event.ItemsChanged, event.GameOver,
}

// eventLogger пишет уведомления сессии в лог
type eventLogger struct {
	logger *slog.Logger
}

func (l *eventLogger) OnEvent(e event.Event) {
	l.logger.Debug("game event", "type", e.Type, "data", e.Data)
}

// muter — звуковой пульт, который умеет выключать звук
type muter interface {
	ToggleMute() bool
}

// toggleMute переключает звук, если пульт это умеет
func toggleMute(p audio.Player) bool {
	m, ok := p.(muter)
	if !ok {
		return false
	}
	slog.Info("sound toggled", "muted", m.ToggleMute())
	return true
}
