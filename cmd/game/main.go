// cmd/game/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-crown-quest/internal/app"
	"go-crown-quest/internal/audio"
	"go-crown-quest/internal/config"
	"go-crown-quest/internal/defs"
	"go-crown-quest/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	ctx            context.Context
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if err := a.ctx.Err(); err != nil {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("game exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	settings, err := config.LoadSettings(config.SettingsPath())
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	level, err := config.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	lib, err := defs.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("loading definitions: %w", err)
	}
	if settings.Map != "" {
		if err := lib.LoadMapFile(settings.Map); err != nil {
			return err
		}
		settings.Start = config.Point{X: lib.Map.Start.X, Y: lib.Map.Start.Y}
	}

	sounds := audio.NewBoard(settings.Mute, nil)
	newSession := func() (*app.Game, error) {
		s := settings
		if s.Seed == 0 {
			s.Seed = time.Now().UnixNano()
		}
		return app.NewGame(lib, s, app.WithSounds(sounds), app.WithLogger(logger))
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewTitleState(sm, newSession))
	game := &AppGame{
		ctx:            ctx,
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Crown Quest")
	ebiten.SetTPS(settings.TPS())
	logger.Info("starting client", "tps", settings.TPS(), "seed", settings.Seed, "map", lib.Map.Name)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
