package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchToSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(NewDay, a)
	d.SubscribeAll(b, NewDay, GoldChanged)

	d.Emit(NewDay, 2)
	d.Emit(GoldChanged, 150)
	d.Emit(GameOver, true)

	assert.Len(t, a.got, 1)
	assert.Equal(t, 2, a.got[0].Data)
	assert.Len(t, b.got, 2)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(PlayerMoved, a)
	d.Subscribe(PlayerMoved, b)
	d.Unsubscribe(PlayerMoved, a)

	d.Emit(PlayerMoved, nil)
	assert.Empty(t, a.got)
	assert.Len(t, b.got, 1)
}

func TestListenerFuncAndNilDispatcher(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(BattleStarted, ListenerFunc(func(Event) { calls++ }))
	d.Emit(BattleStarted, 7)
	assert.Equal(t, 1, calls)

	var none *Dispatcher
	assert.NotPanics(t, func() { none.Emit(BattleStarted, 7) })
}

func TestSubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	late := &recorder{}
	d.Subscribe(DialogOpened, ListenerFunc(func(Event) {
		d.Subscribe(DialogOpened, late)
	}))
	d.Emit(DialogOpened, "a")
	assert.Empty(t, late.got)
	d.Emit(DialogOpened, "b")
	assert.Len(t, late.got, 1)
}
