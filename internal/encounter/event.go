// internal/encounter/event.go
package encounter

import "go-crown-quest/internal/defs"

// Kind — тип события на карте или события смены дня
type Kind string

const (
	KindBattle   Kind = "battle"
	KindChest    Kind = "chest"
	KindPresent  Kind = "present"
	KindCastle   Kind = "castle"
	KindVillage  Kind = "village"
	KindTower    Kind = "tower"
	KindWell     Kind = "well" // клетка колодца события не создает
	KindObelisk  Kind = "obelisk"
	KindDay1     Kind = "day1"
	KindDayN     Kind = "day_n"
	KindDay13    Kind = "day13"
	KindDayLoss  Kind = "day_loss"
	KindDayStart Kind = "day_start"
)

// DialogType — вид модального окна
type DialogType string

const (
	DialogInfo   DialogType = "info"
	DialogStore  DialogType = "store"
	DialogBattle DialogType = "battle"
)

// Dialog — информационное окно с кнопкой OK
type Dialog struct {
	Type   DialogType
	Title  string
	Text   string
	Sprite int
	OnOk   func()
}

// Store — лавка деревни или башни найма
type Store struct {
	Text     string
	Sprite   int
	Items    []int
	Recruits []defs.RecruitOffer
}

// Army — класс отряда и его размер
type Army struct {
	Class int
	Stack int
}

// Battle — вражеские отряды на клетке TileIndex
type Battle struct {
	Units     []Army
	TileIndex int
}

// Event — то, что происходит при входе на клетку или в начале дня.
// Заполнено не больше одного из Dialog, Store, Battle.
type Event struct {
	Kind      Kind
	Label     string
	Sound     string
	Level     int
	TileIndex int
	Dialog    *Dialog
	Store     *Store
	Battle    *Battle
}
