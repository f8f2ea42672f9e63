package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestGrid() *Grid {
	g := NewGrid(50, []string{"stone", "grass"})
	for x := 0; x < 5; x++ {
		g.Set(Tile{Type: "grass", Variant: 1, Pos: Point{X: x, Y: 4}})
	}
	g.Set(Tile{Type: "stone", Pos: Point{X: 4, Y: 3}})
	g.Set(Tile{Type: "decor", Pos: Point{X: 1, Y: 3}})
	g.Set(Tile{Type: "spawners", Variant: 0, Pos: Point{X: 0, Y: 3}})
	g.Set(Tile{Type: "spawners", Variant: 2, Pos: Point{X: 3, Y: 3}})
	g.Set(Tile{Type: "spawners", Variant: 2, Pos: Point{X: 2, Y: 1}})
	return g
}

func TestNewGrid_Defaults(t *testing.T) {
	g := NewGrid(0, nil)
	assert.Equal(t, 50, g.TileSize)
	assert.Equal(t, 2, g.Radius())
	assert.Equal(t, 0, g.Len())

	_, _, ok := g.Bounds()
	assert.False(t, ok)
}

func TestGrid_SetReplaces(t *testing.T) {
	g := NewGrid(50, nil)
	g.Set(Tile{Type: "grass", Pos: Point{X: 1, Y: 1}})
	g.Set(Tile{Type: "stone", Variant: 3, Pos: Point{X: 1, Y: 1}})

	assert.Equal(t, 1, g.Len())
	tile, ok := g.Tile(Point{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, "stone", tile.Type)
	assert.Equal(t, 3, tile.Variant)

	g.Remove(Point{X: 1, Y: 1})
	assert.Equal(t, 0, g.Len())
}

func TestRequiredRadius(t *testing.T) {
	tests := []struct {
		name      string
		tileSize  int
		maxExtent float64
		maxStep   float64
		want      int
	}{
		{"small body", 50, 50, 10, 2},
		{"exact fit", 50, 90, 10, 2},
		{"boss", 50, 200, 105, 7},
		{"never below one", 50, 0, 0, 1},
		{"invalid tile size", 0, 50, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequiredRadius(tt.tileSize, tt.maxExtent, tt.maxStep))
		})
	}
}

func TestGrid_TilesAround(t *testing.T) {
	g := createTestGrid()

	t.Run("radius bounds the window", func(t *testing.T) {
		g.SetRadius(1)
		tiles := g.TilesAround(Vec{X: 25, Y: 175})
		// window covers columns -1..1 and rows 2..4
		assert.Len(t, tiles, 4)
	})

	t.Run("radius clamps to one", func(t *testing.T) {
		g.SetRadius(0)
		assert.Equal(t, 1, g.Radius())
	})

	t.Run("wide window sees everything", func(t *testing.T) {
		g.SetRadius(5)
		assert.Len(t, g.TilesAround(Vec{X: 100, Y: 100}), g.Len())
	})
}

func TestGrid_PhysicsRectsAround(t *testing.T) {
	g := createTestGrid()
	g.SetRadius(1)

	rects := g.PhysicsRectsAround(Vec{X: 225, Y: 175})

	// columns 3..5, rows 2..4: grass at (3,4), (4,4) and stone at (4,3)
	assert.ElementsMatch(t, []Rect{
		{X: 150, Y: 200, W: 50, H: 50},
		{X: 200, Y: 200, W: 50, H: 50},
		{X: 200, Y: 150, W: 50, H: 50},
	}, rects)
}

func TestGrid_SolidCheck(t *testing.T) {
	g := createTestGrid()

	tile, ok := g.SolidCheck(Vec{X: 210, Y: 160})
	require.True(t, ok)
	assert.Equal(t, "stone", tile.Type)

	_, ok = g.SolidCheck(Vec{X: 60, Y: 160})
	assert.False(t, ok, "decor is not solid")

	_, ok = g.SolidCheck(Vec{X: 1000, Y: 1000})
	assert.False(t, ok)
}

func TestGrid_Extract(t *testing.T) {
	g := createTestGrid()
	g.OffGrid = []OffGridTile{
		{Type: "spawners", Variant: 2, Pos: Vec{X: 260, Y: 20}},
		{Type: "decor", Variant: 0, Pos: Vec{X: 10, Y: 10}},
	}
	before := g.Len()

	got := g.Extract([]TileKind{{Type: "spawners", Variant: 2}, {Type: "spawners", Variant: 0}})

	require.Len(t, got, 4)
	assert.Equal(t, Point{X: 5, Y: 0}, got[0].Pos, "off-grid tile at its containing tile")
	assert.Equal(t, Point{X: 2, Y: 1}, got[1].Pos)
	assert.Equal(t, Point{X: 0, Y: 3}, got[2].Pos)
	assert.Equal(t, 0, got[2].Variant)
	assert.Equal(t, Point{X: 3, Y: 3}, got[3].Pos)

	assert.Equal(t, before-3, g.Len())
	require.Len(t, g.OffGrid, 1)
	assert.Equal(t, "decor", g.OffGrid[0].Type)

	assert.Empty(t, g.Extract([]TileKind{{Type: "spawners", Variant: 2}}), "second extract finds nothing")
}

func TestGrid_Bounds(t *testing.T) {
	g := createTestGrid()
	g.Set(Tile{Type: "stone", Pos: Point{X: -2, Y: 7}})

	lo, hi, ok := g.Bounds()

	require.True(t, ok)
	assert.Equal(t, Point{X: -2, Y: 1}, lo)
	assert.Equal(t, Point{X: 4, Y: 7}, hi)
}
