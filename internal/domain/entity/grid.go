package entity

import (
	"math"
	"sort"
)

// Tile is a single grid-aligned tile
type Tile struct {
	Type    string
	Variant int
	Pos     Point // tile units
}

// OffGridTile is a decorative tile placed at a pixel position.
// Off-grid tiles never take part in physics.
type OffGridTile struct {
	Type    string
	Variant int
	Pos     Vec
}

// Grid is the sparse tile storage of a level.
//
// The grid is read-only while the simulation runs; only level loading and
// the editor mutate it.
type Grid struct {
	TileSize int
	OffGrid  []OffGridTile

	tiles  map[Point]Tile
	solid  map[string]struct{}
	radius int
}

// NewGrid creates an empty grid.
// solidTypes lists the tile types that take part in collision.
func NewGrid(tileSize int, solidTypes []string) *Grid {
	if tileSize <= 0 {
		tileSize = 50
	}
	solid := make(map[string]struct{}, len(solidTypes))
	for _, t := range solidTypes {
		solid[t] = struct{}{}
	}
	return &Grid{
		TileSize: tileSize,
		tiles:    make(map[Point]Tile),
		solid:    solid,
		radius:   2,
	}
}

// RequiredRadius returns the neighbor window radius (in tiles) needed so that
// every tile a body of maxExtent pixels moving maxStep pixels per tick could
// overlap is inside the window.
func RequiredRadius(tileSize int, maxExtent, maxStep float64) int {
	if tileSize <= 0 {
		return 1
	}
	r := int(math.Ceil((maxExtent + math.Abs(maxStep)) / float64(tileSize)))
	if r < 1 {
		r = 1
	}
	return r
}

// SetRadius sets the neighbor window radius in tiles
func (g *Grid) SetRadius(r int) {
	if r < 1 {
		r = 1
	}
	g.radius = r
}

// Radius returns the neighbor window radius in tiles
func (g *Grid) Radius() int {
	return g.radius
}

// Set places a tile at its own position, replacing any tile already there
func (g *Grid) Set(t Tile) {
	g.tiles[t.Pos] = t
}

// Remove deletes the tile at p
func (g *Grid) Remove(p Point) {
	delete(g.tiles, p)
}

// Tile returns the tile at p
func (g *Grid) Tile(p Point) (Tile, bool) {
	t, ok := g.tiles[p]
	return t, ok
}

// Len returns the number of grid tiles
func (g *Grid) Len() int {
	return len(g.tiles)
}

// Tiles returns every grid tile. Order is unspecified.
func (g *Grid) Tiles() []Tile {
	out := make([]Tile, 0, len(g.tiles))
	for _, t := range g.tiles {
		out = append(out, t)
	}
	return out
}

// IsSolid reports whether the tile type takes part in collision
func (g *Grid) IsSolid(tileType string) bool {
	_, ok := g.solid[tileType]
	return ok
}

// TilesAround returns all tiles inside the neighbor window centered on the
// tile containing pos. Order is unspecified.
func (g *Grid) TilesAround(pos Vec) []Tile {
	center := TileAt(pos, g.TileSize)
	r := g.radius
	tiles := make([]Tile, 0, 8)
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if t, ok := g.tiles[Point{X: center.X + dx, Y: center.Y + dy}]; ok {
				tiles = append(tiles, t)
			}
		}
	}
	return tiles
}

// PhysicsRectsAround returns the pixel rects of the solid tiles around pos
func (g *Grid) PhysicsRectsAround(pos Vec) []Rect {
	ts := float64(g.TileSize)
	var rects []Rect
	for _, t := range g.TilesAround(pos) {
		if !g.IsSolid(t.Type) {
			continue
		}
		rects = append(rects, Rect{X: float64(t.Pos.X) * ts, Y: float64(t.Pos.Y) * ts, W: ts, H: ts})
	}
	return rects
}

// SolidCheck returns the tile containing pos if it is solid
func (g *Grid) SolidCheck(pos Vec) (Tile, bool) {
	t, ok := g.tiles[TileAt(pos, g.TileSize)]
	if !ok || !g.IsSolid(t.Type) {
		return Tile{}, false
	}
	return t, true
}

// Extract removes and returns every tile whose (type, variant) pair is listed,
// ordered top-to-bottom then left-to-right. Off-grid tiles are searched as
// well and returned with their tile position derived from the pixel position.
func (g *Grid) Extract(pairs []TileKind) []Tile {
	want := make(map[TileKind]struct{}, len(pairs))
	for _, p := range pairs {
		want[p] = struct{}{}
	}

	var out []Tile
	kept := g.OffGrid[:0]
	for _, t := range g.OffGrid {
		if _, ok := want[TileKind{Type: t.Type, Variant: t.Variant}]; ok {
			out = append(out, Tile{Type: t.Type, Variant: t.Variant, Pos: TileAt(t.Pos, g.TileSize)})
			continue
		}
		kept = append(kept, t)
	}
	g.OffGrid = kept

	for p, t := range g.tiles {
		if _, ok := want[TileKind{Type: t.Type, Variant: t.Variant}]; ok {
			out = append(out, t)
			delete(g.tiles, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Pos.Y != b.Pos.Y {
			return a.Pos.Y < b.Pos.Y
		}
		if a.Pos.X != b.Pos.X {
			return a.Pos.X < b.Pos.X
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.Variant < b.Variant
	})
	return out
}

// TileKind identifies a tile by type and variant
type TileKind struct {
	Type    string
	Variant int
}

// Bounds returns the smallest tile-unit box containing every grid tile.
// ok is false for an empty grid.
func (g *Grid) Bounds() (min, max Point, ok bool) {
	for p := range g.tiles {
		if !ok {
			min, max, ok = p, p, true
			continue
		}
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max, ok
}
