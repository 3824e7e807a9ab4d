// internal/battle/simulation.go
package battle

import (
	"fmt"
	"log/slog"
	"time"

	"go-crown-quest/internal/audio"
	"go-crown-quest/internal/config"
	"go-crown-quest/internal/control"
	"go-crown-quest/internal/unit"
)

// Outcome — итог боя с точки зрения игрока
type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomeWin     Outcome = "win"
	OutcomeLose    Outcome = "lose"
	OutcomeRetreat Outcome = "retreat"
)

const (
	heroArmyLabel  = "Hero's Army"
	heroArmySprite = 4
)

// AttackResult описывает один разрешенный удар
type AttackResult struct {
	Attacker    *unit.Unit
	Target      *unit.Unit
	Damage      int // на одного бойца
	TotalDamage int
	Defeated    int // погибших бойцов цели
	Forecast    DamageForecast
	Destroyed   bool
}

// Simulation — бой двух представителей сторон.
// Ходы проигрываются через очередь отложенных действий.
type Simulation struct {
	Left      *unit.Unit
	Right     *unit.Unit
	LeftHero  *unit.Hero
	RightHero *unit.Hero

	LeftSpeed  int
	RightSpeed int

	// OnCompleted вызывается из Confirm и Retreat
	OnCompleted func(Outcome)

	ac         *control.Controller
	rng        RNG
	sounds     audio.Player
	logger     *slog.Logger
	conclusion Outcome
	started    bool
	severed    bool
	rounds     int
	log        []string
	attacks    []AttackResult
}

// Option настраивает Simulation
type Option func(*Simulation)

// WithSounds задает звуковой пульт
func WithSounds(p audio.Player) Option {
	return func(s *Simulation) { s.sounds = p }
}

// WithRightHero задает героя правой стороны
func WithRightHero(h *unit.Hero) Option {
	return func(s *Simulation) { s.RightHero = h }
}

// WithLogger задает логгер для боевого журнала
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulation) { s.logger = l }
}

// NewSimulation сворачивает стороны в представителей и фиксирует скорости.
// Скорость левой стороны учитывает героя, правой — нет.
func NewSimulation(left, right []*unit.Unit, leftHero *unit.Hero, rng RNG, opts ...Option) *Simulation {
	s := &Simulation{
		LeftHero: leftHero,
		ac:       control.NewController(),
		rng:      rng,
		sounds:   audio.Nop{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Left = unit.AggregateDepiction(left)
	s.Left.Sprite = heroArmySprite
	s.Left.Label = heroArmyLabel
	s.Left.Owner = unit.OwnerPlayer

	s.Right = unit.AggregateDepiction(right)
	s.Right.Owner = unit.OwnerCPU

	s.LeftSpeed = s.Left.GetStat(unit.StatSpeed, unit.StatContext{Hero: s.LeftHero})
	s.RightSpeed = s.Right.GetStat(unit.StatSpeed, unit.StatContext{})
	return s
}

// Start запускает бой. Повторный вызов ничего не делает.
func (s *Simulation) Start() {
	s.started = true
}

func (s *Simulation) Started() bool { return s.started }

// Conclusion — текущий итог, OutcomeNone пока бой идет
func (s *Simulation) Conclusion() Outcome { return s.conclusion }

// Concluded — бой закончен победой или поражением
func (s *Simulation) Concluded() bool { return s.conclusion != OutcomeNone }

// OKVisible — можно показывать кнопку OK
func (s *Simulation) OKVisible() bool { return s.Concluded() }

// Rounds — сколько раундов было начато
func (s *Simulation) Rounds() int { return s.rounds }

// Log возвращает строки боевого журнала
func (s *Simulation) Log() []string { return s.log }

// Attacks возвращает все разрешенные удары по порядку
func (s *Simulation) Attacks() []AttackResult { return s.attacks }

// Busy — в очереди есть текущее действие
func (s *Simulation) Busy() bool { return s.ac.Busy() }

// CurrentAction возвращает прогресс текущего действия или -1
func (s *Simulation) CurrentAction() float64 {
	if c := s.ac.Current(); c != nil {
		return c.Pct()
	}
	return -1
}

// FirstMover — сторона, которая ходит первой. При равенстве — левая.
func (s *Simulation) FirstMover() *unit.Unit {
	if s.LeftSpeed >= s.RightSpeed {
		return s.Left
	}
	return s.Right
}

func (s *Simulation) turnOrder() []*unit.Unit {
	if s.LeftSpeed >= s.RightSpeed {
		return []*unit.Unit{s.Left, s.Right}
	}
	return []*unit.Unit{s.Right, s.Left}
}

func (s *Simulation) heroFor(u *unit.Unit) *unit.Hero {
	if u == s.Left {
		return s.LeftHero
	}
	return s.RightHero
}

func (s *Simulation) opponent(u *unit.Unit) *unit.Unit {
	if u == s.Left {
		return s.Right
	}
	return s.Left
}

// DamageForecast — прогноз урона attacker по target с учетом героев сторон
func (s *Simulation) DamageForecast(attacker, target *unit.Unit) DamageForecast {
	return Forecast(attacker, target, s.heroFor(attacker), s.heroFor(target))
}

// AttackUnit бросает урон, применяет потери к target и пишет журнал
func (s *Simulation) AttackUnit(attacker, target *unit.Unit) AttackResult {
	f := s.DamageForecast(attacker, target)
	dmg := RollDamage(f, s.rng)
	total := dmg * attacker.StackSize
	c := NextStackSize(target, total)

	res := AttackResult{
		Attacker:    attacker,
		Target:      target,
		Damage:      dmg,
		TotalDamage: total,
		Defeated:    target.StackSize - c.NextStack,
		Forecast:    f,
		Destroyed:   c.Destroyed(),
	}

	s.logCombat(fmt.Sprintf("%s attacks %s for %d damage, defeating %d units.",
		attacker.Label, target.Label, total, res.Defeated))
	s.logCombat(fmt.Sprintf(" --> min damage was %d (defeating %d)",
		f.MinDamage*attacker.StackSize, target.StackSize-f.MinNextStack))
	s.logCombat(fmt.Sprintf(" --> max damage was %d (defeating %d)",
		f.MaxDamage*attacker.StackSize, target.StackSize-f.MaxNextStack))

	target.Health = c.NextHealth
	target.StackSize = c.NextStack
	s.attacks = append(s.attacks, res)
	return res
}

func (s *Simulation) logCombat(line string) {
	s.log = append(s.log, line)
	s.logger.Debug("combat", "line", line)
}

// CheckCompletion проверяет конец боя. Итог, раз установленный, не меняется,
// и звуки победы и поражения звучат один раз.
func (s *Simulation) CheckCompletion() bool {
	if s.conclusion != OutcomeNone {
		return true
	}
	if s.Left.StackSize == 0 {
		s.conclusion = OutcomeLose
		s.Left.Visible = false
		s.sounds.Play(audio.Lose)
		return true
	}
	if s.Right.StackSize == 0 {
		s.conclusion = OutcomeWin
		s.Right.Visible = false
		s.sounds.Play(audio.BattleWin)
		return true
	}
	return false
}

// doRound ставит в очередь ходы обоих представителей
func (s *Simulation) doRound() {
	if s.CheckCompletion() || s.ac.Busy() {
		return
	}
	s.rounds++
	order := s.turnOrder()
	turn := 0

	var doTurn func()
	doTurn = func() {
		if turn >= len(order) {
			return
		}
		attacker := order[turn]
		target := s.opponent(attacker)
		turn++

		s.ac.AddFunc(config.BattleActionDuration,
			func() {
				attacker.Anim.HBump.Activate()
			},
			func() {
				s.AttackUnit(attacker, target)
				s.sounds.Play(audio.Attack)
				if target.StackSize == 0 {
					s.sounds.Play(audio.FlickerEnemy)
					target.Anim.Flicker.Activate()
				}
				attacker.Anim.HBump.Deactivate()
			},
		)
		s.ac.AddFunc(config.BattleActionDuration,
			nil,
			func() {
				if target.StackSize == 0 {
					target.Anim.Flicker.Deactivate()
					target.Defeated = true
				}
				if !s.CheckCompletion() {
					doTurn()
				}
			},
		)
	}
	doTurn()
}

// Update продвигает анимации и очередь; новый раунд начинается,
// только когда очередь пуста.
func (s *Simulation) Update(dt time.Duration) {
	if s.severed {
		return
	}
	s.Left.Update(dt)
	s.Right.Update(dt)
	s.ac.Update(dt)
	if s.started && !s.ac.Busy() {
		s.doRound()
	}
	// Итоговая видимость проигравшего не зависит от анимации
	if s.conclusion == OutcomeLose {
		s.Left.Visible = false
	}
	if s.conclusion == OutcomeWin {
		s.Right.Visible = false
	}
}

// Confirm — нажатие OK после окончания боя
func (s *Simulation) Confirm() bool {
	if !s.Concluded() || s.severed {
		return false
	}
	s.severed = true
	if s.OnCompleted != nil {
		s.OnCompleted(s.conclusion)
	}
	return true
}

// Retreat прерывает бой: оставшиеся действия выбрасываются и не выполнятся
func (s *Simulation) Retreat() {
	if s.severed {
		return
	}
	s.severed = true
	s.ac.Clear()
	if s.OnCompleted != nil {
		s.OnCompleted(OutcomeRetreat)
	}
}

// Severed — бой закрыт (OK или отступление)
func (s *Simulation) Severed() bool { return s.severed }
