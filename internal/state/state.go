// internal/state/state.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Suspend ставит overlay поверх текущего состояния. Текущее состояние
// не получает Exit и продолжает жить до Resume.
func (sm *StateMachine) Suspend(overlay State) {
	sm.current = overlay
	overlay.Enter()
}

// Resume закрывает overlay и возвращает prev без повторного Enter
func (sm *StateMachine) Resume(prev State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = prev
}

// Current — текущее состояние или nil
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// seconds переводит шаг кадра в time.Duration для игровой логики
func seconds(deltaTime float64) time.Duration {
	return time.Duration(deltaTime * float64(time.Second))
}
