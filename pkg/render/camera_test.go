package render

import (
	"testing"

	"go-crown-quest/internal/config"
	"go-crown-quest/pkg/hexmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(3)
	c.Pan(40, -12)
	sx, sy := c.ToScreen(hexmap.Point{X: 10, Y: 20})
	assert.Equal(t, 70.0, sx)
	assert.Equal(t, 48.0, sy)
	assert.Equal(t, hexmap.Point{X: 10, Y: 20}, c.ToMap(sx, sy))
}

func TestCameraZoomClamps(t *testing.T) {
	c := NewCamera(0)
	assert.Equal(t, config.MinZoom, c.Zoom)
	c.ZoomAt(-1, 0, 0)
	assert.Equal(t, config.MinZoom, c.Zoom)

	c = NewCamera(config.MaxZoom)
	c.ZoomAt(3, 0, 0)
	assert.Equal(t, config.MaxZoom, c.Zoom, "one step per wheel event and never past the limit")
}

func TestCameraZoomKeepsAnchor(t *testing.T) {
	c := NewCamera(2)
	c.Pan(100, 50)
	before := c.ToMap(300, 200)
	c.ZoomAt(1, 300, 200)
	assert.Equal(t, 3, c.Zoom)
	assert.InDelta(t, before.X, c.ToMap(300, 200).X, 1e-9)
	assert.InDelta(t, before.Y, c.ToMap(300, 200).Y, 1e-9)
}

func TestCameraHexAt(t *testing.T) {
	layout := hexmap.DefaultLayout
	c := NewCamera(4)
	c.CenterOn(layout.CellCenter(hexmap.Hex{X: 5, Y: 9}), config.ScreenWidth, config.ScreenHeight)

	h, ok := c.HexAt(layout, config.ScreenWidth/2, config.ScreenHeight/2)
	require.True(t, ok)
	assert.Equal(t, hexmap.Hex{X: 5, Y: 9}, h)

	for _, want := range []hexmap.Hex{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 7, Y: 1}} {
		sx, sy := c.ToScreen(layout.CellCenter(want))
		got, ok := c.HexAt(layout, sx, sy)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestTileColor(t *testing.T) {
	assert.Equal(t, config.TileColors[1], TileColor(1))
	assert.Equal(t, config.UnknownTileColor, TileColor(999))
	assert.Equal(t, config.TextDarkColor, TextColorOn(config.TileColors[12]))
	assert.Equal(t, config.TextLightColor, TextColorOn(config.FogColor))
}
