package system

import (
	"math"

	"github.com/younwookim/hero/internal/domain/entity"
	"github.com/younwookim/hero/internal/infrastructure/config"
)

// Physics moves entities through the grid, one axis at a time
type Physics struct {
	world config.WorldConfig
	grid  *entity.Grid
}

// NewPhysics creates a new physics system
func NewPhysics(world config.WorldConfig, grid *entity.Grid) *Physics {
	return &Physics{
		world: world,
		grid:  grid,
	}
}

// Move resolves one tick of movement for e.
//
// The movement is the persisted velocity plus the requested move. X is scaled
// by the entity's speed and resolved fully before Y. Every overlapping solid
// tile clamps the box; the last one wins.
func (p *Physics) Move(e *entity.Entity, move entity.Vec) {
	m := e.Vel.Add(move)
	e.Collisions = entity.Collisions{}

	// X axis
	e.Pos.X += m.X * e.Speed
	box := e.Rect()
	for _, r := range p.grid.PhysicsRectsAround(e.Pos) {
		if !box.Overlaps(r) {
			continue
		}
		if m.X >= 0 {
			box.X = r.X - box.W
			e.Collisions.Right = true
		} else {
			box.X = r.Right()
			e.Collisions.Left = true
		}
		e.Pos.X = box.X
	}

	// Y axis
	e.Pos.Y += m.Y
	box = e.Rect()
	for _, r := range p.grid.PhysicsRectsAround(e.Pos) {
		if !box.Overlaps(r) {
			continue
		}
		if m.Y >= 0 {
			box.Y = r.Y - box.H
			e.Collisions.Down = true
		} else {
			box.Y = r.Bottom()
			e.Collisions.Up = true
		}
		e.Pos.Y = box.Y
	}

	// Facing is frozen while stunned
	if e.HitStun == 0 {
		if m.X > 0 {
			e.Flip = false
		} else if m.X < 0 {
			e.Flip = true
		}
	}

	p.applyGravity(e)

	if e.Collisions.Down {
		e.AirTime = 0
		p.applyFriction(e)
	} else {
		e.AirTime++
	}
}

// applyGravity accelerates e downward and resets vertical velocity on contact
func (p *Physics) applyGravity(e *entity.Entity) {
	e.Vel.Y = math.Min(p.world.MaxFallSpeed, e.Vel.Y+p.world.Gravity)
	if e.Collisions.Down || e.Collisions.Up {
		e.Vel.Y = 0
	}
}

// applyFriction decays horizontal velocity toward zero
func (p *Physics) applyFriction(e *entity.Entity) {
	f := p.world.Friction
	switch {
	case e.Vel.X > f:
		e.Vel.X -= f
	case e.Vel.X < -f:
		e.Vel.X += f
	default:
		e.Vel.X = 0
	}
}
