// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-crown-quest/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

var pauseShade = color.RGBA{0, 0, 0, 128}

// PauseState останавливает сессию: время не идет, предыдущее состояние
// рисуется под затемнением.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{stateMachine: sm, previousState: prevState}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.Resume()
	}
}

// Resume возвращает предыдущее состояние без повторного Enter
func (s *PauseState) Resume() {
	s.stateMachine.Resume(s.previousState)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.FillRect(screen, 0, 0, float32(config.ScreenWidth), float32(config.ScreenHeight), pauseShade, false)

	pauseText := "PAUSED"
	x := (config.ScreenWidth - len(pauseText)*config.TextCharWidth) / 2
	text.Draw(screen, pauseText, basicfont.Face7x13, x, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
