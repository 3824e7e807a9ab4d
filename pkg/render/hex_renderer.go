// pkg/render/hex_renderer.go
package render

import (
	"image/color"

	"go-crown-quest/internal/config"
	"go-crown-quest/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Scene — всё, что нужно для кадра карты мира
type Scene struct {
	Map         *hexmap.HexMap
	Player      hexmap.Hex
	FlagUp      bool
	Path        []hexmap.Hex
	LastMovable int
	Battles     []hexmap.Hex
	Hover       *hexmap.Hex
}

type HexRenderer struct {
	layout   hexmap.Layout
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	fontFace font.Face
}

func NewHexRenderer(layout hexmap.Layout) *HexRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &HexRenderer{
		layout:   layout,
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 18),
		fillIs:   make([]uint16, 0, 18),
		fontFace: basicfont.Face7x13,
	}
}

func (r *HexRenderer) Layout() hexmap.Layout { return r.layout }

// Draw рисует клетки, туман, путь и героя
func (r *HexRenderer) Draw(screen *ebiten.Image, cam *Camera, s Scene) {
	screen.Fill(config.BackgroundColor)
	if s.Map == nil {
		return
	}
	bounds := screen.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	for i, tile := range s.Map.Tiles {
		cell := hexmap.FromIndex(i, s.Map.Width)
		if !r.visible(cam, cell, w, h) {
			continue
		}
		fill := TileColor(tile.ID)
		if s.Map.Fog[i] {
			fill = config.FogColor
		}
		r.drawHexFill(screen, cam, cell, fill)
	}

	for _, b := range s.Battles {
		if !s.Map.Hidden(b) {
			r.drawDot(screen, cam, b, 0.3, config.BattleMarkColor)
		}
	}

	// клетки пути после LastMovable герой сегодня не пройдет
	for i, p := range s.Path {
		if i == 0 {
			continue
		}
		c := config.PathReachColor
		if i > s.LastMovable {
			c = config.PathFarColor
		}
		r.drawDot(screen, cam, p, 0.15, c)
	}

	if s.Hover != nil && s.Map.InBounds(*s.Hover) {
		r.drawHexOutline(screen, cam, *s.Hover, config.PathColor)
	}

	r.drawPlayer(screen, cam, s.Player, s.FlagUp)
}

func (r *HexRenderer) visible(cam *Camera, cell hexmap.Hex, w, h float64) bool {
	rect := r.layout.CellRect(cell)
	x0, y0 := cam.ToScreen(hexmap.Point{X: rect.X, Y: rect.Y})
	x1, y1 := cam.ToScreen(hexmap.Point{X: rect.X + rect.W, Y: rect.Y + rect.H})
	return x1 >= 0 && y1 >= 0 && x0 <= w && y0 <= h
}

func (r *HexRenderer) hexPath(cam *Camera, cell hexmap.Hex) *vector.Path {
	path := &vector.Path{}
	for i, v := range hexmap.HexVertices(r.layout.CellRect(cell)) {
		x, y := cam.ToScreen(v)
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()
	return path
}

func (r *HexRenderer) drawHexFill(target *ebiten.Image, cam *Camera, cell hexmap.Hex, fillColor color.RGBA) {
	path := r.hexPath(cam, cell)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(fillColor.R) / 255
		r.fillVs[i].ColorG = float32(fillColor.G) / 255
		r.fillVs[i].ColorB = float32(fillColor.B) / 255
		r.fillVs[i].ColorA = float32(fillColor.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) drawHexOutline(target *ebiten.Image, cam *Camera, cell hexmap.Hex, c color.RGBA) {
	verts := hexmap.HexVertices(r.layout.CellRect(cell))
	for i := range verts {
		a, b := verts[i], verts[(i+1)%len(verts)]
		ax, ay := cam.ToScreen(a)
		bx, by := cam.ToScreen(b)
		vector.StrokeLine(target, float32(ax), float32(ay), float32(bx), float32(by), config.StrokeWidth, c, true)
	}
}

// drawDot — круг в центре клетки, радиус в долях ширины клетки
func (r *HexRenderer) drawDot(target *ebiten.Image, cam *Camera, cell hexmap.Hex, radius float64, c color.RGBA) {
	x, y := cam.ToScreen(r.layout.CellCenter(cell))
	rad := radius * r.layout.TileW * float64(cam.Zoom)
	vector.FillCircle(target, float32(x), float32(y), float32(rad), c, true)
}

func (r *HexRenderer) drawPlayer(target *ebiten.Image, cam *Camera, cell hexmap.Hex, flagUp bool) {
	z := float64(cam.Zoom)
	x, y := cam.ToScreen(r.layout.CellCenter(cell))
	vector.FillCircle(target, float32(x), float32(y), float32(0.3*r.layout.TileW*z), config.PlayerColor, true)

	// флажок над героем
	poleTop := y - 0.9*r.layout.TileH*z
	vector.StrokeLine(target, float32(x), float32(y), float32(x), float32(poleTop), float32(z), config.TextLightColor, true)
	flagY := poleTop
	if flagUp {
		flagY -= z
	}
	vector.FillRect(target, float32(x), float32(flagY), float32(5*z), float32(3*z), config.StrongerColor, true)
}

// DrawLabel — подпись с подложкой у экранной точки
func (r *HexRenderer) DrawLabel(target *ebiten.Image, x, y int, label string, fg color.Color) {
	b := text.BoundString(r.fontFace, label)
	vector.FillRect(target, float32(x-2), float32(y+b.Min.Y-2), float32(b.Dx()+4), float32(b.Dy()+4), config.PanelColor, false)
	text.Draw(target, label, r.fontFace, x, y, fg)
}
