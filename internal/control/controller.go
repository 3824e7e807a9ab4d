// internal/control/controller.go
package control

import (
	"time"

	"go-crown-quest/internal/utils"
)

// Control — отложенное действие: Init вызывается, когда действие становится
// текущим, Commit — когда истекает его таймер.
type Control struct {
	Init   func()
	Commit func()
	timer  *utils.Timer
}

// New создает действие длительностью d. Любой из колбэков может быть nil.
func New(d time.Duration, init, commit func()) *Control {
	return &Control{Init: init, Commit: commit, timer: utils.NewTimer(d)}
}

// Pct — прогресс текущего действия
func (c *Control) Pct() float64 {
	return c.timer.Pct()
}

// Controller выполняет действия строго по очереди, не более одного за раз.
type Controller struct {
	queue   []*Control
	current *Control
}

func NewController() *Controller {
	return &Controller{}
}

// Add ставит действие в конец очереди
func (ac *Controller) Add(c *Control) {
	ac.queue = append(ac.queue, c)
}

// AddFunc — сокращение для Add(New(...))
func (ac *Controller) AddFunc(d time.Duration, init, commit func()) {
	ac.Add(New(d, init, commit))
}

// Current возвращает текущее действие или nil
func (ac *Controller) Current() *Control {
	return ac.current
}

// Busy — есть текущее действие
func (ac *Controller) Busy() bool {
	return ac.current != nil
}

// Pending — число действий в очереди, включая текущее
func (ac *Controller) Pending() int {
	return len(ac.queue)
}

// Clear сбрасывает очередь без вызова колбэков
func (ac *Controller) Clear() {
	ac.queue = nil
	ac.current = nil
}

// Update продвигает текущее действие. Завершение текущего и запуск
// следующего происходят в одном и том же тике.
func (ac *Controller) Update(dt time.Duration) {
	if ac.current != nil {
		ac.current.timer.Update(dt)
		if ac.current.timer.Done() {
			done := ac.current
			ac.queue = ac.queue[1:]
			ac.current = nil
			if done.Commit != nil {
				done.Commit()
			}
		}
	}
	if ac.current == nil && len(ac.queue) > 0 {
		next := ac.queue[0]
		ac.current = next
		if next.Init != nil {
			next.Init()
		}
		next.timer.Start()
	}
}
