package defs

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-crown-quest/internal/config"
)

func TestLoadEmbedded(t *testing.T) {
	lib, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Len(t, lib.Units, 14)
	assert.Len(t, lib.Items, 29)
	assert.Len(t, lib.StoreItems, 26)
	assert.Len(t, lib.GiftItems, 28)
	assert.Equal(t, 32, lib.Map.Width)
	assert.Equal(t, 20, lib.Map.Height)
	assert.Len(t, lib.Map.TileIDs(), 32*20)
}

func TestUnitDefaults(t *testing.T) {
	lib, err := LoadEmbedded()
	require.NoError(t, err)

	militia, ok := lib.Unit(0)
	require.True(t, ok)
	assert.Equal(t, "Militia", militia.Label)
	assert.Equal(t, 5, militia.Attack)
	assert.Equal(t, 0.5, militia.AttackVariance)
	assert.Equal(t, 0, militia.Defense)
	assert.Equal(t, 10, militia.Health)
	assert.Equal(t, 10, militia.MaxHealth)
	assert.Equal(t, 1, militia.Speed)

	beasts, ok := lib.Unit(11)
	require.True(t, ok)
	assert.Equal(t, 300, beasts.MaxHealth)
	assert.Equal(t, 5, beasts.Speed)
	assert.Equal(t, 0.5, beasts.AttackVariance)

	_, ok = lib.Unit(99)
	assert.False(t, ok)
}

func TestItemOrdering(t *testing.T) {
	lib, err := LoadEmbedded()
	require.NoError(t, err)

	crown, ok := lib.Item(0)
	require.True(t, ok)
	assert.Equal(t, "Crown of Light", crown.Name)
	assert.NotContains(t, lib.StoreItems, 0)
	assert.NotContains(t, lib.GiftItems, 0)

	first, _ := lib.Item(1)
	second, _ := lib.Item(14)
	assert.Equal(t, "Bronze Sword", first.Name)
	assert.Equal(t, "Bronze Sword", second.Name)
	assert.Equal(t, map[string]int{"att": 1}, first.Stats)

	stash, _ := lib.Item(28)
	assert.Equal(t, "Big Supply Stash", stash.Name)
	assert.Equal(t, 100, stash.SellCost)
}

func TestTileCost(t *testing.T) {
	lib, err := LoadEmbedded()
	require.NoError(t, err)

	tests := []struct {
		id   int
		want float64
	}{
		{1, 1},
		{2, config.ImpassableCost},
		{3, 2},
		{9, 0.5},
		{20, config.ImpassableCost},
		{25, 1},
		{777, config.ImpassableCost},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, lib.TileCost(tt.id), "tile %d", tt.id)
	}
}

func TestLoadRejectsRaggedMap(t *testing.T) {
	fsys := fstest.MapFS{
		"tiles.yaml":  {Data: []byte("- {id: 1, name: grass, cost: 1}\n")},
		"units.yaml":  {Data: []byte("defaults: {attack: 5}\nunits: []\n")},
		"items.yaml":  {Data: []byte("starting: []\n")},
		"tables.yaml": {Data: []byte("recruits: []\n")},
		"map.yaml":    {Data: []byte("name: bad\nwidth: 2\nheight: 2\ntiles:\n  - [1, 1]\n  - [1]\n")},
	}
	_, err := Load(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tiles.yaml")
}

func TestLoadMapFile(t *testing.T) {
	lib, err := LoadEmbedded()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tiny.yaml")
	body := "name: tiny\nwidth: 3\nheight: 2\nstart: {x: 0, y: 0}\n" +
		"tiles:\n  - [1, 9, 12]\n  - [1, 1, 1]\n" +
		"events:\n  - {x: 2, y: 0, kind: castle, level: 1}\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	require.NoError(t, lib.LoadMapFile(path))
	assert.Equal(t, "tiny", lib.Map.Name)
	assert.Equal(t, []int{1, 9, 12, 1, 1, 1}, lib.Map.TileIDs())
	require.Len(t, lib.Map.Events, 1)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("name: bad\nwidth: 1\nheight: 1\ntiles:\n  - [1]\nevents:\n  - {x: 5, y: 0, kind: chest}\n"), 0o644))
	err = lib.LoadMapFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "off the map")
	assert.Equal(t, "tiny", lib.Map.Name, "failed load keeps the previous map")

	assert.Error(t, lib.LoadMapFile(filepath.Join(t.TempDir(), "missing.yaml")))
}
