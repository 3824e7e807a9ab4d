// internal/audio/audio.go
package audio

import (
	"log/slog"
	"sync"
)

// Имена звуков
const (
	Attack       = "attack"
	BattleWin    = "battle_win"
	Lose         = "lose"
	Blip         = "blip"
	Gold         = "gold"
	Exp          = "exp"
	GainLevel    = "gain_level"
	FlickerEnemy = "flicker_enemy"
	Fight        = "fight"
	ReadyToFight = "ready_to_fight"
	NewTurn      = "new_turn"
	HorseStep    = "horse_step"
	VisitVillage = "visit_village"
	Item         = "item"
)

// Vocabulary — все известные звуки
var Vocabulary = []string{
	Attack, BattleWin, Lose, Blip, Gold, Exp, GainLevel, FlickerEnemy,
	Fight, ReadyToFight, NewTurn, HorseStep, VisitVillage, Item,
}

// Player проигрывает звук по имени. Неизвестное имя — не ошибка.
type Player interface {
	Play(name string)
}

// Nop ничего не проигрывает
type Nop struct{}

func (Nop) Play(string) {}

// Board — звуковой пульт: знает словарь звуков, пишет их в лог
// и передает известные звуки в Sink, если он задан.
type Board struct {
	mu     sync.Mutex
	known  map[string]bool
	counts map[string]int
	muted  bool
	sink   func(name string)
}

// NewBoard создает пульт. sink может быть nil.
func NewBoard(muted bool, sink func(name string)) *Board {
	known := make(map[string]bool, len(Vocabulary))
	for _, n := range Vocabulary {
		known[n] = true
	}
	return &Board{
		known:  known,
		counts: make(map[string]int),
		muted:  muted,
		sink:   sink,
	}
}

func (b *Board) Play(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.known[name] {
		slog.Debug("unknown sound", "sound", name)
		return
	}
	b.counts[name]++
	if b.muted {
		return
	}
	slog.Debug("play sound", "sound", name)
	if b.sink != nil {
		b.sink(name)
	}
}

// Count — сколько раз звук был запрошен
func (b *Board) Count(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts[name]
}

// ToggleMute переключает звук и возвращает новое состояние
func (b *Board) ToggleMute() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.muted = !b.muted
	return b.muted
}

// Recorder запоминает проигранные звуки по порядку. Удобен в тестах.
type Recorder struct {
	Played []string
}

func (r *Recorder) Play(name string) {
	r.Played = append(r.Played, name)
}

// Count — сколько раз звучал name
func (r *Recorder) Count(name string) int {
	n := 0
	for _, p := range r.Played {
		if p == name {
			n++
		}
	}
	return n
}
