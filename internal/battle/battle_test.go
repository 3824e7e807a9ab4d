package battle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-crown-quest/internal/audio"
	"go-crown-quest/internal/defs"
	"go-crown-quest/internal/unit"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func stack(label string, att, def, hp, spd, size int) *unit.Unit {
	return unit.NewFromTemplate(defs.UnitDefinition{
		Label: label, Attack: att, AttackVariance: 0.5,
		Defense: def, Health: hp, MaxHealth: hp, Speed: spd,
	}, size)
}

func runUntilConcluded(t *testing.T, s *Simulation, limit int) {
	t.Helper()
	s.Start()
	for i := 0; i < limit && !s.Concluded(); i++ {
		s.Update(22 * time.Millisecond)
	}
	require.True(t, s.Concluded(), "battle did not conclude in %d ticks", limit)
}

func TestNextStackSize(t *testing.T) {
	tests := []struct {
		name       string
		health     int
		size       int
		damage     int
		wantStack  int
		wantHealth int
	}{
		{"exact multiple keeps front member at full health", 10, 16, 140, 2, 10},
		{"exact multiple from a full stack of 20", 10, 20, 140, 6, 10},
		{"partial", 10, 20, 35, 17, 5},
		{"wounded front member", 5, 3, 5, 2, 10},
		{"no damage", 7, 4, 0, 4, 7},
		{"exact wipe", 10, 3, 30, 0, 0},
		{"overkill", 10, 3, 500, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := stack("T", 5, 0, 10, 1, tt.size)
			target.Health = tt.health
			c := NextStackSize(target, tt.damage)
			assert.Equal(t, tt.wantStack, c.NextStack)
			assert.Equal(t, tt.wantHealth, c.NextHealth)
			assert.Equal(t, tt.wantStack == 0, c.Destroyed())
		})
	}
}

func TestForecastSubtractsDefenseTwiceFromMinimum(t *testing.T) {
	attacker := stack("A", 5, 0, 10, 1, 10)

	f := Forecast(attacker, stack("T", 5, 0, 10, 1, 10), nil, nil)
	assert.Equal(t, 5, f.MaxDamage)
	assert.Equal(t, 3, f.MinDamage)

	f = Forecast(attacker, stack("T", 5, 2, 10, 1, 10), nil, nil)
	assert.Equal(t, 3, f.MaxDamage)
	assert.Equal(t, 1, f.MinDamage)

	// атака меньше защиты: урон не падает ниже 1
	f = Forecast(attacker, stack("T", 5, 9, 10, 1, 10), nil, nil)
	assert.Equal(t, 1, f.MaxDamage)
	assert.Equal(t, 1, f.MinDamage)

	// герои сторон
	f = Forecast(attacker, stack("T", 5, 2, 10, 1, 10), &unit.Hero{Attack: 3}, &unit.Hero{Defense: 1})
	assert.Equal(t, 5, f.MaxDamage)
	assert.Equal(t, 1, f.MinDamage)
}

func TestForecastNextStacks(t *testing.T) {
	attacker := stack("A", 5, 0, 10, 1, 10)
	target := stack("T", 5, 0, 10, 1, 20)
	f := Forecast(attacker, target, nil, nil)
	// 30 и 50 урона по пулу 200
	assert.Equal(t, 17, f.MinNextStack)
	assert.Equal(t, 15, f.MaxNextStack)
}

func TestRollDamage(t *testing.T) {
	f := DamageForecast{MinDamage: 3, MaxDamage: 5}
	assert.Equal(t, 3, RollDamage(f, fixedRand(0)))
	assert.Equal(t, 4, RollDamage(f, fixedRand(0.5)))
	assert.Equal(t, 5, RollDamage(f, fixedRand(0.999)))
}

func TestTurnOrder(t *testing.T) {
	tests := []struct {
		name      string
		leftSpd   int
		rightSpd  int
		hero      *unit.Hero
		leftFirst bool
	}{
		{"tie favors left", 3, 3, nil, true},
		{"faster right", 1, 5, nil, false},
		{"faster left", 7, 2, nil, true},
		{"hero speed lifts left", 1, 4, &unit.Hero{Speed: 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSimulation(
				[]*unit.Unit{stack("L", 5, 0, 10, tt.leftSpd, 10)},
				[]*unit.Unit{stack("R", 5, 0, 10, tt.rightSpd, 10)},
				tt.hero, fixedRand(0.5),
			)
			assert.Equal(t, tt.leftFirst, s.FirstMover() == s.Left)
		})
	}
}

func TestRightSideIgnoresHeroForSpeed(t *testing.T) {
	s := NewSimulation(
		[]*unit.Unit{stack("L", 5, 0, 10, 1, 10)},
		[]*unit.Unit{stack("R", 5, 0, 10, 2, 10)},
		nil, fixedRand(0.5), WithRightHero(&unit.Hero{Speed: 10}),
	)
	assert.Equal(t, 2, s.RightSpeed)
}

func TestDepictionLabels(t *testing.T) {
	s := NewSimulation(
		[]*unit.Unit{stack("Militia", 5, 0, 10, 1, 10)},
		[]*unit.Unit{stack("Goblins", 4, 1, 6, 1, 10)},
		nil, fixedRand(0.5),
	)
	assert.Equal(t, "Hero's Army", s.Left.Label)
	assert.Equal(t, "Goblins", s.Right.Label)
	assert.Equal(t, unit.OwnerCPU, s.Right.Owner)
}

func TestBattleWin(t *testing.T) {
	rec := &audio.Recorder{}
	s := NewSimulation(
		[]*unit.Unit{stack("Militia", 5, 0, 10, 1, 50)},
		[]*unit.Unit{stack("Goblins", 4, 1, 6, 1, 1)},
		nil, fixedRand(0.5), WithSounds(rec),
	)
	runUntilConcluded(t, s, 200)

	assert.Equal(t, OutcomeWin, s.Conclusion())
	assert.True(t, s.OKVisible())
	require.Len(t, s.Attacks(), 1, "right side was destroyed before its turn")
	assert.True(t, s.Right.Defeated)
	assert.False(t, s.Right.Visible)
	assert.Equal(t, 50, s.Left.StackSize)

	require.Len(t, s.Log(), 3)
	assert.Equal(t, "Hero's Army attacks Goblins for 150 damage, defeating 1 units.", s.Log()[0])
	assert.Equal(t, " --> min damage was 50 (defeating 1)", s.Log()[1])
	assert.Equal(t, " --> max damage was 200 (defeating 1)", s.Log()[2])

	assert.Equal(t, 1, rec.Count(audio.Attack))
	assert.Equal(t, 1, rec.Count(audio.FlickerEnemy))
	assert.Equal(t, 1, rec.Count(audio.BattleWin))
}

func TestBattleLoseStopsBeforeDefeatedSideActs(t *testing.T) {
	rec := &audio.Recorder{}
	s := NewSimulation(
		[]*unit.Unit{stack("Militia", 5, 0, 10, 1, 1)},
		[]*unit.Unit{stack("Skulls", 15, 3, 25, 20, 50)},
		nil, fixedRand(0.5), WithSounds(rec),
	)
	runUntilConcluded(t, s, 200)

	assert.Equal(t, OutcomeLose, s.Conclusion())
	require.Len(t, s.Attacks(), 1)
	assert.Same(t, s.Right, s.Attacks()[0].Attacker)
	assert.Equal(t, 0, s.Left.StackSize)
	assert.True(t, s.Left.Defeated)
	assert.Equal(t, 1, rec.Count(audio.Lose))
}

func TestConclusionIsSticky(t *testing.T) {
	rec := &audio.Recorder{}
	s := NewSimulation(
		[]*unit.Unit{stack("Militia", 5, 0, 10, 1, 50)},
		[]*unit.Unit{stack("Goblins", 4, 1, 6, 1, 1)},
		nil, fixedRand(0.5), WithSounds(rec),
	)
	runUntilConcluded(t, s, 200)

	// даже если правая сторона вдруг ожила, итог не меняется
	s.Left.StackSize = 0
	for i := 0; i < 5; i++ {
		assert.True(t, s.CheckCompletion())
		s.Update(300 * time.Millisecond)
	}
	assert.Equal(t, OutcomeWin, s.Conclusion())
	assert.Equal(t, 1, rec.Count(audio.BattleWin))
	assert.Zero(t, rec.Count(audio.Lose))
}

func TestActionTiming(t *testing.T) {
	s := NewSimulation(
		[]*unit.Unit{stack("Militia", 5, 0, 10, 1, 50)},
		[]*unit.Unit{stack("Footmen", 7, 5, 25, 1, 50)},
		nil, fixedRand(0.5),
	)
	s.Update(time.Second)
	assert.Zero(t, s.Rounds(), "nothing happens before Start")

	s.Start()
	s.Update(0)
	assert.Equal(t, 1, s.Rounds())
	s.Update(0)
	assert.True(t, s.Left.Anim.HBump.Active, "attacker bumps while winding up")

	s.Update(299 * time.Millisecond)
	assert.Empty(t, s.Attacks())

	s.Update(1 * time.Millisecond)
	require.Len(t, s.Attacks(), 1)
	assert.False(t, s.Left.Anim.HBump.Active)

	// второй шаг хода левой стороны, затем ход правой
	s.Update(300 * time.Millisecond)
	assert.Len(t, s.Attacks(), 1)
	s.Update(300 * time.Millisecond)
	require.Len(t, s.Attacks(), 2)
	assert.Same(t, s.Right, s.Attacks()[1].Attacker)
	assert.Equal(t, 1, s.Rounds(), "a new round never starts while controls drain")
}

func TestRetreatDropsPendingControls(t *testing.T) {
	var got []Outcome
	s := NewSimulation(
		[]*unit.Unit{stack("Militia", 5, 0, 10, 1, 50)},
		[]*unit.Unit{stack("Footmen", 7, 5, 25, 1, 50)},
		nil, fixedRand(0.5),
	)
	s.OnCompleted = func(o Outcome) { got = append(got, o) }
	s.Start()
	s.Update(0)
	s.Update(0)

	s.Retreat()
	for i := 0; i < 20; i++ {
		s.Update(300 * time.Millisecond)
	}
	assert.Empty(t, s.Attacks())
	assert.Equal(t, []Outcome{OutcomeRetreat}, got)
	assert.False(t, s.Confirm())

	s.Retreat()
	assert.Len(t, got, 1)
}

func TestConfirm(t *testing.T) {
	var got Outcome
	s := NewSimulation(
		[]*unit.Unit{stack("Militia", 5, 0, 10, 1, 50)},
		[]*unit.Unit{stack("Goblins", 4, 1, 6, 1, 1)},
		nil, fixedRand(0.5),
	)
	s.OnCompleted = func(o Outcome) { got = o }
	assert.False(t, s.Confirm(), "OK is hidden until the battle ends")

	runUntilConcluded(t, s, 200)
	assert.True(t, s.Confirm())
	assert.Equal(t, OutcomeWin, got)
	assert.False(t, s.Confirm())
}

func TestLongBattleConservesStacks(t *testing.T) {
	s := NewSimulation(
		[]*unit.Unit{stack("Militia", 5, 0, 10, 1, 50)},
		[]*unit.Unit{stack("Footmen", 7, 5, 25, 1, 20)},
		nil, fixedRand(0.3),
	)
	runUntilConcluded(t, s, 5000)
	for _, a := range s.Attacks() {
		assert.GreaterOrEqual(t, a.Target.StackSize, 0)
		assert.GreaterOrEqual(t, a.Defeated, 0)
	}
	assert.True(t, s.Left.StackSize == 0 || s.Right.StackSize == 0)
}
