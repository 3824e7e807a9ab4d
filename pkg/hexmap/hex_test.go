package hexmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-crown-quest/internal/config"
)

func TestNeighbors(t *testing.T) {
	tests := []struct {
		name string
		cell Hex
		want []Hex
	}{
		{"even row", Hex{X: 2, Y: 4}, []Hex{{1, 4}, {1, 3}, {2, 3}, {3, 4}, {2, 5}, {1, 5}}},
		{"odd row", Hex{X: 3, Y: 5}, []Hex{{2, 5}, {3, 4}, {4, 4}, {4, 5}, {4, 6}, {3, 6}}},
		{"origin", Hex{X: 0, Y: 0}, []Hex{{-1, 0}, {1, 0}, {-1, -1}, {0, -1}, {-1, 1}, {0, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cell.Neighbors()
			assert.ElementsMatch(t, tt.want, got[:])
		})
	}
}

func TestNeighborSymmetry(t *testing.T) {
	for y := -3; y < 8; y++ {
		for x := -3; x < 8; x++ {
			c := Hex{X: x, Y: y}
			for _, n := range c.Neighbors() {
				assert.True(t, n.IsNeighbor(c), "%v is a neighbor of %v but not vice versa", n, c)
				assert.Equal(t, 1, c.Distance(n))
			}
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	for i := 0; i < 40; i++ {
		assert.Equal(t, i, FromIndex(i, 8).Index(8))
	}
}

func TestPointInHex(t *testing.T) {
	v := HexVertices(Rect{X: 0, Y: 0, W: 16, H: 16})
	assert.True(t, PointInHex(Point{X: 8, Y: 8}, v))
	assert.True(t, PointInHex(Point{X: 1, Y: 8}, v))
	assert.False(t, PointInHex(Point{X: 1, Y: 1}, v), "top-left corner is outside the hex")
	assert.False(t, PointInHex(Point{X: 15, Y: 15}, v))
	assert.False(t, PointInHex(Point{X: 20, Y: 8}, v))
}

func TestPixelToHex(t *testing.T) {
	l := DefaultLayout
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			h := Hex{X: x, Y: y}
			got, ok := l.PixelToHex(l.CellCenter(h))
			require.True(t, ok, "center of %v", h)
			assert.Equal(t, h, got)
		}
	}
}

func parseCosts(rows ...[]float64) []float64 {
	var out []float64
	for _, r := range rows {
		out = append(out, r...)
	}
	return out
}

func TestFindPathSimple(t *testing.T) {
	costs := parseCosts(
		[]float64{1, 1, 1, 2},
		[]float64{1, 5, 1, 3},
		[]float64{4, 2, 1, 1},
	)
	res := FindPath(costs, 4, Hex{0, 0}, Hex{3, 0})
	assert.Equal(t, 4.0, res.Cost)
	assert.Equal(t, []Hex{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, res.Path)
	assert.Equal(t, []float64{0, 1, 2, 4}, res.Costs)
	assert.True(t, res.Found())
}

func TestFindPathAroundExpensiveRow(t *testing.T) {
	costs := parseCosts(
		[]float64{1, 1, 1, 1},
		[]float64{9, 7, 5, 1},
		[]float64{1, 1, 1, 1},
	)
	res := FindPath(costs, 4, Hex{0, 0}, Hex{0, 2})
	assert.Equal(t, 8.0, res.Cost)
	assert.Equal(t, []Hex{
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}, {3, 2}, {2, 2}, {1, 2}, {0, 2},
	}, res.Path)
}

func TestFindPathCostsMatchCells(t *testing.T) {
	costs := parseCosts(
		[]float64{1, 2, 0.5, 1, 1},
		[]float64{2, 100, 0.5, 3, 1},
		[]float64{1, 1, 2, 0.5, 1},
		[]float64{1, 100, 1, 1, 2},
	)
	res := FindPath(costs, 5, Hex{0, 0}, Hex{4, 3})
	require.True(t, res.Found())
	sum := 0.0
	for i, h := range res.Path[1:] {
		sum += costs[h.Index(5)]
		assert.Equal(t, sum, res.Costs[i+1])
		assert.True(t, res.Path[i].IsNeighbor(h))
	}
	assert.Equal(t, sum, res.Cost)
}

func TestFindPathNoPath(t *testing.T) {
	costs := []float64{1, 1, 1, 1}

	same := FindPath(costs, 2, Hex{1, 1}, Hex{1, 1})
	assert.Empty(t, same.Path)
	assert.True(t, math.IsInf(same.Cost, 1))
	assert.False(t, same.Found())

	out := FindPath(costs, 2, Hex{0, 0}, Hex{5, 5})
	assert.Empty(t, out.Path)
	assert.True(t, math.IsInf(out.Cost, 1))

	assert.False(t, FindPath(nil, 0, Hex{}, Hex{1, 0}).Found())
}

func TestFindPathCrossesImpassableAsLastResort(t *testing.T) {
	// стена из 100 — путь есть, но его стоимость выдает непроходимость
	costs := parseCosts(
		[]float64{1, 100, 1},
		[]float64{1, 100, 1},
		[]float64{1, 100, 1},
	)
	res := FindPath(costs, 3, Hex{0, 0}, Hex{2, 0})
	require.True(t, res.Found())
	assert.GreaterOrEqual(t, res.Cost, config.ImpassableCost)
}
