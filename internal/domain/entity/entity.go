package entity

// Collisions records which sides of an entity touched solid tiles during the
// last resolved move. Flags are cleared at the start of every move.
type Collisions struct {
	Up, Down, Left, Right bool
}

// Entity is the single record shared by every archetype.
// Behavior differs per Archetype; the data layout does not.
type Entity struct {
	ID        EntityID
	Archetype Archetype

	Pos   Vec // top-left corner, pixels
	Size  Vec
	Vel   Vec // persisted velocity; X is in speed units, Y in pixels
	Speed float64

	Health    int
	MaxHealth int
	Damage    int
	Knockback float64
	Value     int

	// Player resources
	Mana  float64
	Jumps int

	Flip       bool // facing left
	Action     Action
	Anim       Animation
	Collisions Collisions
	Move       float64 // horizontal movement requested this tick

	// Tick counters
	HitStun         int
	Cooldown        int
	Windup          int
	DeathTimer      int
	Walk            int
	SpecialCooldown int
	SpawnTimer      int
	DashTimer       int
	Pickup          int
	Countdown       int
	AirTime         int

	Triggered    bool
	DoubleJumped bool
	Dying        bool

	anims   map[Action]AnimationSpec
	removed bool
}

// New creates an entity of the given archetype at pos.
// The entity starts idle with full health.
func New(id EntityID, a Archetype, pos Vec, spec ArchetypeSpec) *Entity {
	e := &Entity{
		ID:        id,
		Archetype: a,
		Pos:       pos,
		Size:      spec.Size,
		Speed:     spec.Speed,
		Health:    spec.MaxHealth,
		MaxHealth: spec.MaxHealth,
		Damage:    spec.Damage,
		Knockback: spec.Knockback,
		Value:     spec.Value,
		Action:    ActionIdle,
		anims:     spec.Animations,
	}
	if e.Speed == 0 {
		e.Speed = 1
	}
	e.Anim = NewAnimation(spec.Animations[ActionIdle])
	return e
}

// Rect returns the bounding box at the current position
func (e *Entity) Rect() Rect {
	return Rect{X: e.Pos.X, Y: e.Pos.Y, W: e.Size.X, H: e.Size.Y}
}

// Center returns the centre of the bounding box
func (e *Entity) Center() Vec {
	return Vec{X: e.Pos.X + e.Size.X/2, Y: e.Pos.Y + e.Size.Y/2}
}

// Facing returns +1 when facing right and -1 when facing left
func (e *Entity) Facing() float64 {
	if e.Flip {
		return -1
	}
	return 1
}

// Airborne reports whether the entity has been off the ground for more than one tick.
// A resting body alternates between touching and not touching the ground, so a
// single tick without a bottom collision does not count.
func (e *Entity) Airborne() bool {
	return e.AirTime > 1
}

// SetAction switches the current action. The animation restarts only when
// the action actually changes.
func (e *Entity) SetAction(a Action) {
	if e.Action == a {
		return
	}
	e.Action = a
	e.Anim = NewAnimation(e.anims[a])
}

// Remove asks the owning session to drop the entity after the current pass
func (e *Entity) Remove() {
	e.removed = true
}

// Removed reports whether removal was requested
func (e *Entity) Removed() bool {
	return e.removed
}
