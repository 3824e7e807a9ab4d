package unit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-crown-quest/internal/defs"
)

func militia() defs.UnitDefinition {
	return defs.UnitDefinition{
		Class: 0, Label: "Militia", Sprite: 20,
		Attack: 5, AttackVariance: 0.5, Defense: 0, Health: 10, MaxHealth: 10, Speed: 1,
	}
}

func TestNewFromTemplate(t *testing.T) {
	u := NewFromTemplate(militia(), 50)
	assert.Equal(t, 50, u.StackSize)
	assert.Equal(t, "Militia", u.Label)
	assert.Equal(t, 5, u.Attack)
	assert.Equal(t, 10, u.Health)
	assert.Equal(t, 10, u.MaxHealth)
	assert.Equal(t, 1, u.Speed)
	assert.Equal(t, 0.5, u.AttackVariance)
	assert.True(t, u.Visible)
	assert.False(t, u.Defeated)
}

func TestGetStat(t *testing.T) {
	u := NewFromTemplate(militia(), 1)
	hero := &Hero{Attack: 2, Defense: -3, Speed: 4}

	tests := []struct {
		name string
		stat Stat
		ctx  StatContext
		want int
	}{
		{"no hero", StatAttack, StatContext{}, 5},
		{"hero attack", StatAttack, StatContext{Hero: hero}, 7},
		{"negative clamps to zero", StatDefense, StatContext{Hero: hero}, 0},
		{"hero speed", StatSpeed, StatContext{Hero: hero}, 5},
		{"hp ignores hero", StatHealth, StatContext{Hero: hero}, 10},
		{"unknown stat", Stat("mana"), StatContext{Hero: hero}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, u.GetStat(tt.stat, tt.ctx))
		})
	}
}

func TestHeroApplyBonuses(t *testing.T) {
	h := &Hero{}
	h.ApplyBonuses(map[string]int{"att": 2, "spd": 2, "def": 2}, 1)
	h.ApplyBonuses(map[string]int{"att": 1}, 1)
	assert.Equal(t, Hero{Attack: 3, Defense: 2, Speed: 2}, *h)

	h.ApplyBonuses(map[string]int{"att": 2, "spd": 2, "def": 2}, -1)
	assert.Equal(t, Hero{Attack: 1}, *h)

	var none *Hero
	assert.Zero(t, none.Bonus(StatAttack))
}

func TestAggregateDepictionLastWins(t *testing.T) {
	first := NewFromTemplate(militia(), 50)
	second := NewFromTemplate(defs.UnitDefinition{
		Class: 1, Label: "Footmen", Sprite: 21,
		Attack: 7, AttackVariance: 0.5, Defense: 5, Health: 25, MaxHealth: 25, Speed: 1,
	}, 12)

	d := AggregateDepiction([]*Unit{first, second})
	assert.Equal(t, 12, d.StackSize)
	assert.Equal(t, 7, d.Attack)
	assert.Equal(t, 5, d.Defense)
	assert.Equal(t, 25, d.MaxHealth)
	assert.Equal(t, "Footmen", d.Label)
	assert.Equal(t, 21, d.Sprite)

	empty := AggregateDepiction(nil)
	assert.Zero(t, empty.StackSize)
}

func TestRating(t *testing.T) {
	u := NewFromTemplate(militia(), 10)
	// att-5 = 0, def 0 -> normalize(1, 1..10) = 0
	assert.Equal(t, "1.00", Rating(u, StatContext{}))

	// att 7-5 + def 5 + 1 = 8 -> 77.78
	u.Attack, u.Defense = 7, 5
	assert.Equal(t, "1.78", Rating(u, StatContext{}))

	// hero lifts it further
	assert.Equal(t, "1.89", Rating(u, StatContext{Hero: &Hero{Attack: 1}}))
	assert.Greater(t, RatingValue(u, StatContext{Hero: &Hero{Attack: 1}}), RatingValue(u, StatContext{}))
}

func TestFlickerHidesUnit(t *testing.T) {
	u := NewFromTemplate(militia(), 1)
	u.Anim.Flicker.Activate()
	u.Update(0)
	assert.False(t, u.Visible, "frame 0 of flicker is hidden")

	u.Update(100 * time.Millisecond)
	assert.True(t, u.Visible)

	u.Update(200 * time.Millisecond)
	require.False(t, u.Anim.Flicker.Active)
	u.Update(0)
	assert.True(t, u.Visible)
}

func TestBumpOffset(t *testing.T) {
	u := NewFromTemplate(militia(), 1)
	assert.Zero(t, u.BumpOffset())
	u.Anim.HBump.Activate()
	assert.Equal(t, -4.0, u.BumpOffset())
	u.Owner = OwnerCPU
	assert.Equal(t, 4.0, u.BumpOffset())
}
