// internal/state/title_state.go
package state

import (
	"log/slog"

	"go-crown-quest/internal/app"
	"go-crown-quest/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// SessionFactory создает новую игровую сессию
type SessionFactory func() (*app.Game, error)

// TitleState — заставка. Enter или пробел начинает новую игру.
type TitleState struct {
	sm         *StateMachine
	newSession SessionFactory
	fontFace   font.Face
	message    string
}

func NewTitleState(sm *StateMachine, newSession SessionFactory) *TitleState {
	return &TitleState{sm: sm, newSession: newSession, fontFace: basicfont.Face7x13}
}

func (t *TitleState) Enter() {}

func (t *TitleState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		t.StartGame()
	}
}

// StartGame создает сессию и переходит на карту мира
func (t *TitleState) StartGame() bool {
	g, err := t.newSession()
	if err != nil {
		slog.Error("failed to start game", "error", err)
		t.message = "Could not start a new game: " + err.Error()
		return false
	}
	t.sm.SetState(NewOverworldState(t.sm, g, t.newSession))
	return true
}

func (t *TitleState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	lines := []string{"CROWN QUEST", "", "Bring the Crown of Light to the castle", "before the days run out.", "", "Press Enter to start", "", "P pauses, M toggles sound"}
	if t.message != "" {
		lines = append(lines, "", t.message)
	}
	y := config.ScreenHeight/2 - len(lines)*config.LineHeight/2
	for i, line := range lines {
		x := (config.ScreenWidth - len(line)*config.TextCharWidth) / 2
		text.Draw(screen, line, t.fontFace, x, y+i*config.LineHeight, config.TextLightColor)
	}
}

func (t *TitleState) Exit() {}
