// internal/utils/anim.go
package utils

import "time"

// LoopAnim циклически перебирает кадры 0..MaxIndex с шагом frame
// и выключается сам, когда истекает total. total == 0 — бесконечная анимация.
type LoopAnim struct {
	Index    int
	MaxIndex int
	Active   bool

	frame *Timer
	total *Timer
}

func NewLoopAnim(frame, total time.Duration, maxIndex int) *LoopAnim {
	return &LoopAnim{
		MaxIndex: maxIndex,
		frame:    NewTimer(frame),
		total:    NewTimer(total),
	}
}

// Activate запускает анимацию с первого кадра
func (a *LoopAnim) Activate() {
	a.Active = true
	a.Index = 0
	a.frame.Start()
	a.total.Start()
}

func (a *LoopAnim) Deactivate() {
	a.Active = false
}

func (a *LoopAnim) Update(dt time.Duration) {
	if !a.Active {
		return
	}
	a.frame.Update(dt)
	a.total.Update(dt)
	if a.frame.Done() {
		a.Index = (a.Index + 1) % (a.MaxIndex + 1)
		a.frame.Start()
	}
	if a.total.Duration > 0 && a.total.Done() {
		a.Deactivate()
	}
}
