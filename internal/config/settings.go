// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SettingsEnv — переменная окружения с путем к файлу настроек
const SettingsEnv = "GAME_CONFIG"

// DefaultSettingsPath — файл настроек по умолчанию
const DefaultSettingsPath = "game.yaml"

// Point — координаты клетки в файле настроек
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// UnitStack — класс отряда и его размер
type UnitStack struct {
	Class int `yaml:"class"`
	Stack int `yaml:"stack"`
}

// Settings — настройки запуска, читаются из YAML
type Settings struct {
	Seed         int64     `yaml:"seed"`
	LogLevel     string    `yaml:"log_level"`
	TickMS       int       `yaml:"tick_ms"`
	Map          string    `yaml:"map"` // путь к YAML карты; пусто — вшитая карта
	Start        Point     `yaml:"start"`
	StartingGold int       `yaml:"starting_gold"`
	StartingUnit UnitStack `yaml:"starting_unit"`
	DayGauge     float64   `yaml:"day_gauge"`
	MaxDays      int       `yaml:"max_days"`
	Mute         bool      `yaml:"mute"`
}

// DefaultSettings — значения, с которыми игра запускается без файла
func DefaultSettings() Settings {
	return Settings{
		Seed:         0,
		LogLevel:     "info",
		TickMS:       int(TickDuration.Milliseconds()),
		Map:          "",
		Start:        Point{X: StartX, Y: StartY},
		StartingGold: StartingGold,
		StartingUnit: UnitStack{Class: StartingUnit, Stack: StartingStack},
		DayGauge:     DayGaugeCost,
		MaxDays:      MaxDays,
	}
}

// SettingsPath выбирает путь: GAME_CONFIG, если задана, иначе значение по умолчанию
func SettingsPath() string {
	if p := os.Getenv(SettingsEnv); p != "" {
		return p
	}
	return DefaultSettingsPath
}

// LoadSettings читает настройки. Отсутствующий файл — не ошибка: берутся значения по умолчанию.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("settings file not found, using defaults", "path", path)
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return s, nil
}

// Validate проверяет значения, которые сломают игровой цикл
func (s Settings) Validate() error {
	if s.TickMS <= 0 {
		return fmt.Errorf("tick_ms must be positive, got %d", s.TickMS)
	}
	if s.DayGauge <= 0 {
		return fmt.Errorf("day_gauge must be positive, got %v", s.DayGauge)
	}
	if s.MaxDays <= 0 {
		return fmt.Errorf("max_days must be positive, got %d", s.MaxDays)
	}
	if s.StartingUnit.Stack < 0 {
		return fmt.Errorf("starting_unit.stack must not be negative")
	}
	if _, err := ParseLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel переводит log_level в slog.Level
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log_level %q", s)
}

// TPS — тиков в секунду для ebiten.SetTPS
func (s Settings) TPS() int {
	return max(1, 1000/s.TickMS)
}
