// internal/defs/loader.go
package defs

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"go-crown-quest/internal/config"
)

//go:embed data/*.yaml
var dataFS embed.FS

// GrassTileID — клетка, на которую заменяется отработанное событие
const GrassTileID = 1

// Library хранит все загруженные определения
type Library struct {
	Tiles      map[int]TileDefinition
	Units      map[int]UnitDefinition
	Items      map[int]ItemDefinition
	StoreItems []int // предметы для деревень
	GiftItems  []int // предметы для подарков
	Recruits   []RecruitOffer
	Encounters []EncounterEntry
	Map        MapDefinition
}

// LoadEmbedded загружает определения, вшитые в бинарник
func LoadEmbedded() (*Library, error) {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded definitions: %w", err)
	}
	return Load(sub)
}

// Load читает tiles.yaml, units.yaml, items.yaml, tables.yaml и map.yaml из fsys
func Load(fsys fs.FS) (*Library, error) {
	lib := &Library{}
	if err := lib.loadTiles(fsys); err != nil {
		return nil, err
	}
	if err := lib.loadUnits(fsys); err != nil {
		return nil, err
	}
	if err := lib.loadItems(fsys); err != nil {
		return nil, err
	}
	if err := lib.loadTables(fsys); err != nil {
		return nil, err
	}
	if err := lib.loadMap(fsys); err != nil {
		return nil, err
	}
	slog.Debug("definitions loaded",
		"tiles", len(lib.Tiles),
		"units", len(lib.Units),
		"items", len(lib.Items),
		"encounters", len(lib.Encounters),
	)
	return lib, nil
}

func readYAML(fsys fs.FS, name string, out any) error {
	file, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(file, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return nil
}

func (l *Library) loadTiles(fsys fs.FS) error {
	var tiles []TileDefinition
	if err := readYAML(fsys, "tiles.yaml", &tiles); err != nil {
		return err
	}
	l.Tiles = make(map[int]TileDefinition, len(tiles))
	for _, t := range tiles {
		l.Tiles[t.ID] = t
	}
	return nil
}

func (l *Library) loadUnits(fsys fs.FS) error {
	var raw struct {
		Defaults UnitDefinition `yaml:"defaults"`
		Units    []yaml.Node    `yaml:"units"`
	}
	if err := readYAML(fsys, "units.yaml", &raw); err != nil {
		return err
	}
	l.Units = make(map[int]UnitDefinition, len(raw.Units))
	for _, node := range raw.Units {
		// поля, которых нет в записи, остаются из defaults
		def := raw.Defaults
		if err := node.Decode(&def); err != nil {
			return fmt.Errorf("failed to decode unit at line %d: %w", node.Line, err)
		}
		def.MaxHealth = def.Health
		l.Units[def.Class] = def
	}
	return nil
}

func (l *Library) loadItems(fsys fs.FS) error {
	var raw struct {
		Starting  []ItemDefinition `yaml:"starting"`
		World     []ItemDefinition `yaml:"world"`
		GiftsOnly []ItemDefinition `yaml:"gifts_only"`
	}
	if err := readYAML(fsys, "items.yaml", &raw); err != nil {
		return err
	}
	l.Items = make(map[int]ItemDefinition)
	add := func(def ItemDefinition) int {
		def.ID = len(l.Items)
		l.Items[def.ID] = def
		return def.ID
	}
	for _, def := range raw.Starting {
		add(def)
	}

	// Экземпляры идут «волнами»: сначала по одному каждого, затем вторые копии
	maxCopies := 0
	for _, def := range raw.World {
		maxCopies = max(maxCopies, def.Copies, 1)
	}
	for c := 0; c < maxCopies; c++ {
		for _, def := range raw.World {
			if c < max(def.Copies, 1) {
				id := add(def)
				l.StoreItems = append(l.StoreItems, id)
				l.GiftItems = append(l.GiftItems, id)
			}
		}
	}
	for _, def := range raw.GiftsOnly {
		l.GiftItems = append(l.GiftItems, add(def))
	}
	return nil
}

func (l *Library) loadTables(fsys fs.FS) error {
	var raw struct {
		Recruits   []RecruitOffer   `yaml:"recruits"`
		Encounters []EncounterEntry `yaml:"encounters"`
	}
	if err := readYAML(fsys, "tables.yaml", &raw); err != nil {
		return err
	}
	l.Recruits = raw.Recruits
	l.Encounters = raw.Encounters
	return nil
}

func (l *Library) loadMap(fsys fs.FS) error {
	var m MapDefinition
	if err := readYAML(fsys, "map.yaml", &m); err != nil {
		return err
	}
	if err := m.validate(); err != nil {
		return err
	}
	l.Map = m
	return nil
}

// LoadMapFile заменяет вшитую карту картой из файла
func (l *Library) LoadMapFile(path string) error {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	var m MapDefinition
	if err := readYAML(os.DirFS(dir), name, &m); err != nil {
		return err
	}
	if err := m.validate(); err != nil {
		return err
	}
	slog.Info("map loaded", "path", path, "name", m.Name, "events", len(m.Events))
	l.Map = m
	return nil
}

func (m MapDefinition) validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("map %q: bad size %dx%d", m.Name, m.Width, m.Height)
	}
	if len(m.Tiles) != m.Height {
		return fmt.Errorf("map %q: expected %d rows, got %d", m.Name, m.Height, len(m.Tiles))
	}
	for y, row := range m.Tiles {
		if len(row) != m.Width {
			return fmt.Errorf("map %q: row %d has %d tiles, expected %d", m.Name, y, len(row), m.Width)
		}
	}
	for _, e := range m.Events {
		if e.X < 0 || e.Y < 0 || e.X >= m.Width || e.Y >= m.Height {
			return fmt.Errorf("map %q: event %s at %d,%d is off the map", m.Name, e.Kind, e.X, e.Y)
		}
	}
	return nil
}

// TileCost возвращает стоимость прохода; для неизвестного id — непроходимо
func (l *Library) TileCost(id int) float64 {
	if t, ok := l.Tiles[id]; ok {
		return t.Cost
	}
	return config.ImpassableCost
}

// Unit ищет шаблон отряда по классу
func (l *Library) Unit(class int) (UnitDefinition, bool) {
	u, ok := l.Units[class]
	return u, ok
}

// Item ищет предмет по id
func (l *Library) Item(id int) (ItemDefinition, bool) {
	it, ok := l.Items[id]
	return it, ok
}
