// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	TileSize    = 16 // ширина клетки в пикселях карты
	TileRowStep = 12 // шаг рядов гексов
	MinZoom     = 1
	MaxZoom     = 10
	StartZoom   = 4
	DragSlop    = 10 // сдвиг мыши, после которого клик считается перетаскиванием

	ImpassableCost = 100.0
	VisionRange    = 3
	MaxDays        = 13
	DayGaugeCost   = 20.0

	BattleActionDuration = 300 * time.Millisecond
	MoveStepDuration     = 50 * time.Millisecond
	TickDuration         = 22 * time.Millisecond

	StartingGold     = 100
	StartingItem     = 0 // Crown of Light
	StartingUnit     = 0 // Militia
	StartingStack    = 50
	StartX, StartY   = 5, 9
	LevelExpStep     = 125
	LevelStatChance  = 0.25 // бросок выше этого значения дает +1
	BattlePanelWidth = 640
	DialogWidth      = 520
	TextCharWidth    = 7
	LineHeight       = 16
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	FogColor        = color.RGBA{8, 8, 12, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	PanelColor      = color.RGBA{40, 40, 52, 240}
	PanelStroke     = color.RGBA{200, 200, 210, 255}
	ButtonColor     = color.RGBA{70, 100, 120, 255}
	ButtonHover     = color.RGBA{90, 130, 150, 255}
	PathColor       = color.RGBA{60, 200, 60, 255}
	PathReachColor  = color.RGBA{255, 255, 255, 255}
	PathFarColor    = color.RGBA{0, 0, 0, 255}
	BattleMarkColor = color.RGBA{255, 50, 50, 255}
	PlayerColor     = color.RGBA{50, 100, 255, 255}
	StrongerColor   = color.RGBA{255, 51, 51, 255}
	WeakerColor     = color.RGBA{51, 255, 51, 255}
	GaugeBackColor  = color.RGBA{0, 0, 0, 255}
	GaugeColor      = color.RGBA{128, 128, 128, 255}
	GaugePreview    = color.RGBA{255, 255, 255, 255}
	StrokeWidth     = float32(2.0)

	// TileColors — цвет клетки по id тайла
	TileColors = map[int]color.RGBA{
		1:  {86, 160, 60, 255},   // grass
		2:  {30, 90, 40, 255},    // trees
		3:  {120, 170, 70, 255},  // bush
		4:  {120, 110, 100, 255}, // mountain
		9:  {190, 160, 110, 255}, // road
		10: {220, 180, 40, 255},  // chest
		11: {200, 80, 200, 255},  // present
		12: {230, 230, 240, 255}, // castle
		17: {170, 110, 60, 255},  // village
		18: {140, 140, 170, 255}, // tower
		19: {70, 130, 200, 255},  // well
		20: {90, 90, 100, 255},   // castle wall
		25: {100, 60, 160, 255},  // obelisk
	}
	UnknownTileColor = color.RGBA{255, 0, 255, 255}
)
