// internal/event/types.go
package event

const (
	GameStarted    EventType = "GameStarted"    // Новая сессия
	PlayerMoved    EventType = "PlayerMoved"    // Герой сделал шаг, Data — hexmap.Hex
	PathPreviewed  EventType = "PathPreviewed"  // Показан путь, Data — стоимость
	PathRejected   EventType = "PathRejected"   // Путь слишком длинный, Data — error
	NewDay         EventType = "NewDay"         // Data — номер дня
	DialogOpened   EventType = "DialogOpened"   // Data — заголовок окна
	DialogClosed   EventType = "DialogClosed"   // Data — заголовок окна
	BattleStarted  EventType = "BattleStarted"  // Data — индекс клетки боя
	BattleFinished EventType = "BattleFinished" // Data — battle.Outcome
	GoldChanged    EventType = "GoldChanged"    // Data — текущее золото
	ItemsChanged   EventType = "ItemsChanged"
	GameOver       EventType = "GameOver" // Data — true при победе
)
