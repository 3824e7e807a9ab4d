// internal/defs/types.go
package defs

// TileDefinition описывает тип клетки карты
type TileDefinition struct {
	ID   int     `yaml:"id"`
	Name string  `yaml:"name"`
	Cost float64 `yaml:"cost"`
}

// UnitDefinition — шаблон отряда
type UnitDefinition struct {
	Class          int     `yaml:"class"`
	Label          string  `yaml:"label"`
	Sprite         int     `yaml:"sprite"`
	Attack         int     `yaml:"attack"`
	AttackVariance float64 `yaml:"attack_variance"`
	Defense        int     `yaml:"defense"`
	Health         int     `yaml:"health"`
	MaxHealth      int     `yaml:"-"`
	Speed          int     `yaml:"speed"`
}

// ItemDefinition — предмет героя. Ключи Stats: att, def, spd.
type ItemDefinition struct {
	ID       int            `yaml:"-"`
	Name     string         `yaml:"name"`
	Cost     int            `yaml:"cost"`
	SellCost int            `yaml:"sell_cost"`
	Copies   int            `yaml:"copies"`
	Stats    map[string]int `yaml:"stats"`
}

// RecruitOffer — предложение найма в башне
type RecruitOffer struct {
	Level int `yaml:"level"`
	Class int `yaml:"class"`
	Stack int `yaml:"stack"`
	Cost  int `yaml:"cost"`
}

// EncounterEntry — запись колоды вражеских отрядов
type EncounterEntry struct {
	Level  int `yaml:"level"`
	Class  int `yaml:"class"`
	Min    int `yaml:"min"`
	Max    int `yaml:"max"`
	Copies int `yaml:"copies"`
}

// MapEvent — событие, привязанное к клетке карты
type MapEvent struct {
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Kind  string `yaml:"kind"`
	Level int    `yaml:"level"`
}

// MapDefinition — раскладка карты мира
type MapDefinition struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Start  struct {
		X int `yaml:"x"`
		Y int `yaml:"y"`
	} `yaml:"start"`
	Tiles  [][]int    `yaml:"tiles"`
	Events []MapEvent `yaml:"events"`
}

// TileIDs плоским массивом в порядке x + y*width
func (m MapDefinition) TileIDs() []int {
	out := make([]int, 0, m.Width*m.Height)
	for _, row := range m.Tiles {
		out = append(out, row...)
	}
	return out
}
