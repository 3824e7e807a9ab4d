package state

import (
	"bytes"
	"errors"
	"image"
	"log/slog"
	"strings"
	"testing"
	"time"

	"go-crown-quest/internal/app"
	"go-crown-quest/internal/audio"
	"go-crown-quest/internal/config"
	"go-crown-quest/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingState struct {
	name  string
	calls *[]string
	dt    float64
}

func (r *recordingState) Enter()                    { *r.calls = append(*r.calls, r.name+".enter") }
func (r *recordingState) Update(deltaTime float64)  { r.dt += deltaTime }
func (r *recordingState) Draw(screen *ebiten.Image) {}
func (r *recordingState) Exit()                     { *r.calls = append(*r.calls, r.name+".exit") }

func TestStateMachineSetState(t *testing.T) {
	var calls []string
	sm := NewStateMachine()
	a := &recordingState{name: "a", calls: &calls}
	b := &recordingState{name: "b", calls: &calls}

	sm.Update(0.1)
	sm.SetState(a)
	sm.Update(0.5)
	sm.SetState(b)
	sm.SetState(nil)

	assert.Equal(t, []string{"a.enter", "a.exit", "b.enter", "b.exit"}, calls)
	assert.InDelta(t, 0.5, a.dt, 1e-9)
	assert.Nil(t, sm.Current())
}

func TestStateMachineSuspendResume(t *testing.T) {
	var calls []string
	sm := NewStateMachine()
	world := &recordingState{name: "world", calls: &calls}
	sm.SetState(world)

	pause := NewPauseState(sm, world)
	sm.Suspend(pause)
	assert.Same(t, pause, sm.Current())
	sm.Update(1)
	assert.Zero(t, world.dt, "paused world does not advance")

	pause.Resume()
	assert.Same(t, world, sm.Current())
	assert.Equal(t, []string{"world.enter"}, calls, "world is neither exited nor re-entered")
}

func TestSeconds(t *testing.T) {
	assert.InDelta(t, float64(60*time.Millisecond), float64(seconds(config.MaxDeltaTime)), float64(time.Microsecond))
	assert.Zero(t, seconds(0))
}

func TestClickTracker(t *testing.T) {
	var c clickTracker
	assert.False(t, c.Release(), "release without press")

	c.Press(image.Pt(100, 100))
	c.Move(image.Pt(100+config.DragSlop, 100-config.DragSlop))
	assert.True(t, c.Release())

	c.Press(image.Pt(100, 100))
	c.Move(image.Pt(100+config.DragSlop+1, 100))
	c.Move(image.Pt(100, 100))
	assert.False(t, c.Release(), "drag beyond the slop is not a click")
}

func TestPanTracker(t *testing.T) {
	var p panTracker
	assert.Equal(t, image.Point{}, p.Step(false, image.Pt(5, 5)))
	assert.Equal(t, image.Point{}, p.Step(true, image.Pt(5, 5)))
	assert.Equal(t, image.Pt(3, -2), p.Step(true, image.Pt(8, 3)))
	assert.Equal(t, image.Pt(1, 1), p.Step(true, image.Pt(9, 4)))
	assert.Equal(t, image.Point{}, p.Step(false, image.Pt(50, 50)))
	assert.Equal(t, image.Point{}, p.Step(true, image.Pt(60, 60)), "new drag starts from the cursor")
}

func TestTitleStateReportsSessionError(t *testing.T) {
	sm := NewStateMachine()
	title := NewTitleState(sm, func() (*app.Game, error) {
		return nil, errors.New("bad map")
	})
	sm.SetState(title)

	require.False(t, title.StartGame())
	assert.Same(t, title, sm.Current())
	assert.Contains(t, title.message, "bad map")
}

func TestEventLogger(t *testing.T) {
	var buf bytes.Buffer
	d := event.NewDispatcher()
	l := &eventLogger{logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}
	d.SubscribeAll(l, loggedEvents...)

	d.Emit(event.NewDay, 2)
	d.Emit(event.PlayerMoved, nil)
	assert.Equal(t, 1, strings.Count(buf.String(), "game event"))
	assert.Contains(t, buf.String(), "type=NewDay")

	for _, et := range loggedEvents {
		d.Unsubscribe(et, l)
	}
	d.Emit(event.NewDay, 3)
	assert.Equal(t, 1, strings.Count(buf.String(), "game event"))
}

func TestToggleMute(t *testing.T) {
	var played []string
	b := audio.NewBoard(false, func(name string) { played = append(played, name) })

	require.True(t, toggleMute(b))
	b.Play(audio.Blip)
	assert.Empty(t, played)

	require.True(t, toggleMute(b))
	b.Play(audio.Blip)
	assert.Equal(t, []string{audio.Blip}, played)

	assert.False(t, toggleMute(audio.Nop{}))
	assert.False(t, toggleMute(&audio.Recorder{}))
}
