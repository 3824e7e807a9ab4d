// internal/unit/unit.go
package unit

import (
	"time"

	"go-crown-quest/internal/defs"
	"go-crown-quest/internal/utils"
)

// Stat — имя характеристики отряда
type Stat string

const (
	StatAttack    Stat = "att"
	StatDefense   Stat = "def"
	StatHealth    Stat = "hp"
	StatMaxHealth Stat = "mhp"
	StatSpeed     Stat = "spd"
)

// HeroStats — характеристики, которые получают бонус от героя
var HeroStats = []Stat{StatAttack, StatDefense, StatSpeed}

// Owner — сторона, которой принадлежит отряд
type Owner string

const (
	OwnerPlayer Owner = "player"
	OwnerCPU    Owner = "cpu"
)

// AnimState — анимации отряда в бою
type AnimState struct {
	VBump   *utils.LoopAnim
	HBump   *utils.LoopAnim
	Flicker *utils.LoopAnim
}

func newAnimState() AnimState {
	return AnimState{
		VBump:   utils.NewLoopAnim(50*time.Millisecond, 100*time.Millisecond, 1),
		HBump:   utils.NewLoopAnim(75*time.Millisecond, 225*time.Millisecond, 1),
		Flicker: utils.NewLoopAnim(100*time.Millisecond, 300*time.Millisecond, 1),
	}
}

// Unit — отряд одинаковых бойцов. Здоровье хранится только у переднего бойца,
// остальные считаются целыми.
type Unit struct {
	Class  int
	Label  string
	Sprite int
	Owner  Owner

	StackSize      int
	Attack         int
	Defense        int
	Health         int
	MaxHealth      int
	Speed          int
	AttackVariance float64

	Visible  bool
	Defeated bool
	Anim     AnimState
}

// New создает отряд с базовыми значениями
func New(class int) *Unit {
	return &Unit{
		Class:     class,
		Label:     "Footman",
		Sprite:    20,
		Owner:     OwnerPlayer,
		Attack:    1,
		Defense:   1,
		Health:    1,
		MaxHealth: 1,
		Speed:     1,
		Visible:   true,
		Anim:      newAnimState(),
	}
}

// NewFromTemplate копирует шаблон на свежий отряд размером stackSize
func NewFromTemplate(t defs.UnitDefinition, stackSize int) *Unit {
	u := New(t.Class)
	u.StackSize = stackSize
	u.Label = t.Label
	u.Sprite = t.Sprite
	u.Attack = t.Attack
	u.AttackVariance = t.AttackVariance
	u.Defense = t.Defense
	u.Health = t.Health
	u.MaxHealth = t.MaxHealth
	if t.Speed > 0 {
		u.Speed = t.Speed
	}
	return u
}

// Base возвращает значение характеристики без бонусов
func (u *Unit) Base(s Stat) int {
	switch s {
	case StatAttack:
		return u.Attack
	case StatDefense:
		return u.Defense
	case StatHealth:
		return u.Health
	case StatMaxHealth:
		return u.MaxHealth
	case StatSpeed:
		return u.Speed
	}
	return 0
}

// GetStat считает итоговую характеристику: max(0, база + бонус героя + ситуативный бонус)
func (u *Unit) GetStat(s Stat, ctx StatContext) int {
	v := u.Base(s) + ctx.Hero.Bonus(s) + u.situationalBonus(s, ctx)
	return max(0, v)
}

// situationalBonus зарезервирован под бонусы класса против класса
func (u *Unit) situationalBonus(Stat, StatContext) int {
	return 0
}

// Alive — в отряде остались бойцы
func (u *Unit) Alive() bool {
	return u.StackSize > 0
}

// Update продвигает анимации и видимость
func (u *Unit) Update(dt time.Duration) {
	u.Anim.VBump.Update(dt)
	u.Anim.HBump.Update(dt)
	u.Anim.Flicker.Update(dt)
	if u.Anim.Flicker.Active {
		u.Visible = u.Anim.Flicker.Index != 0
	} else {
		u.Visible = true
	}
}

// BumpOffset — смещение спрайта по X во время анимации атаки
func (u *Unit) BumpOffset() float64 {
	if !u.Anim.HBump.Active || u.Anim.HBump.Index != 0 {
		return 0
	}
	if u.Owner == OwnerCPU {
		return 4
	}
	return -4
}

// Drawable — отряд нужно рисовать
func (u *Unit) Drawable() bool {
	return u.Visible && !u.Defeated
}
