package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoardIgnoresUnknown(t *testing.T) {
	var sunk []string
	b := NewBoard(false, func(n string) { sunk = append(sunk, n) })

	assert.NotPanics(t, func() { b.Play("no_such_sound") })
	b.Play(Attack)
	b.Play(Attack)

	assert.Equal(t, 2, b.Count(Attack))
	assert.Zero(t, b.Count("no_such_sound"))
	assert.Equal(t, []string{Attack, Attack}, sunk)
}

func TestBoardMuted(t *testing.T) {
	called := false
	b := NewBoard(true, func(string) { called = true })
	b.Play(Gold)
	assert.False(t, called)
	assert.Equal(t, 1, b.Count(Gold))

	assert.False(t, b.ToggleMute())
	b.Play(Gold)
	assert.True(t, called)

	assert.True(t, b.ToggleMute())
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	var p Player = r
	p.Play(Blip)
	p.Play(Lose)
	p.Play(Blip)
	assert.Equal(t, 2, r.Count(Blip))
	assert.Equal(t, []string{Blip, Lose, Blip}, r.Played)
	Nop{}.Play(Blip)
}
