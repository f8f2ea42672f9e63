package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EntityID is a unique identifier for an entity.
// IDs are handed out in spawn order and never recycled.
type EntityID uint32

// Vec is a 2D vector in pixel units
type Vec struct {
	X, Y float64
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner (pixel units)
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the X coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the Y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal centre
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical centre
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports whether two rects share any interior area.
// Touching edges do not count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Inflate grows the rect by dx on the left and right and dy on the top and bottom
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, W: r.W + 2*dx, H: r.H + 2*dy}
}

// Point is an integer coordinate in tile units
type Point struct {
	X, Y int
}

// Key returns the persisted "x;y" form of the point
func (p Point) Key() string {
	return strconv.Itoa(p.X) + ";" + strconv.Itoa(p.Y)
}

// ParseKey parses an "x;y" tile key
func ParseKey(key string) (Point, error) {
	xs, ys, ok := strings.Cut(key, ";")
	if !ok {
		return Point{}, fmt.Errorf("tile key %q: missing ';'", key)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Point{}, fmt.Errorf("tile key %q: %w", key, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Point{}, fmt.Errorf("tile key %q: %w", key, err)
	}
	return Point{X: x, Y: y}, nil
}

// TileAt returns the tile coordinate containing the pixel position.
// Negative coordinates floor toward negative infinity.
func TileAt(pos Vec, tileSize int) Point {
	ts := float64(tileSize)
	return Point{
		X: int(math.Floor(pos.X / ts)),
		Y: int(math.Floor(pos.Y / ts)),
	}
}
