// internal/utils/timer.go
package utils

import "time"

// Timer отсчитывает время от Start до Duration. До вызова Start таймер
// стоит на месте и не считается завершённым.
type Timer struct {
	Duration time.Duration
	elapsed  time.Duration
	started  bool
}

// NewTimer создает остановленный таймер
func NewTimer(d time.Duration) *Timer {
	return &Timer{Duration: d}
}

// Start запускает таймер с нуля
func (t *Timer) Start() {
	t.elapsed = 0
	t.started = true
}

// Stop возвращает таймер в исходное состояние
func (t *Timer) Stop() {
	t.elapsed = 0
	t.started = false
}

func (t *Timer) Started() bool { return t.started }

func (t *Timer) Elapsed() time.Duration { return t.elapsed }

// SetElapsed выставляет прошедшее время вручную (используется для переноса остатка)
func (t *Timer) SetElapsed(d time.Duration) {
	t.elapsed = d
}

// Update продвигает запущенный таймер на dt
func (t *Timer) Update(dt time.Duration) {
	if t.started {
		t.elapsed += dt
	}
}

// Done — таймер запущен и отработал
func (t *Timer) Done() bool {
	return t.started && t.elapsed >= t.Duration
}

// Pct возвращает долю прошедшего времени в [0, 1]
func (t *Timer) Pct() float64 {
	if !t.started {
		return 0
	}
	if t.Duration <= 0 {
		return 1
	}
	return Clamp(float64(t.elapsed)/float64(t.Duration), 0, 1)
}
