package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownArchetype is returned for an archetype tag that is not defined
	ErrUnknownArchetype = errors.New("unknown archetype")
	// ErrUnknownAction is returned for an action tag that is not defined
	ErrUnknownAction = errors.New("unknown action")
	// ErrMissingAction is returned when an archetype does not declare an action it needs
	ErrMissingAction = errors.New("missing action")
	// ErrMissingArchetype is returned when a catalog lacks an archetype
	ErrMissingArchetype = errors.New("missing archetype")
)

// Archetype is an entity's behavioral/visual category
type Archetype int

const (
	Player Archetype = iota
	Goblin
	Slime
	Bomber
	Bomb
	Sword
	Coin
	Orb
	SavePoint
	Spike
	SpikeFall
	Minotaur
	Vase
	Waterfall

	archetypeCount
)

var archetypeNames = [archetypeCount]string{
	Player:    "player",
	Goblin:    "goblin",
	Slime:     "slime",
	Bomber:    "bomber",
	Bomb:      "bomb",
	Sword:     "sword",
	Coin:      "coin",
	Orb:       "orb",
	SavePoint: "save",
	Spike:     "spike",
	SpikeFall: "spike_fall",
	Minotaur:  "minotaur",
	Vase:      "vase",
	Waterfall: "waterfall",
}

// String returns the content tag of the archetype
func (a Archetype) String() string {
	if a < 0 || a >= archetypeCount {
		return "unknown"
	}
	return archetypeNames[a]
}

// Archetypes returns every archetype in declaration order
func Archetypes() []Archetype {
	out := make([]Archetype, archetypeCount)
	for i := range out {
		out[i] = Archetype(i)
	}
	return out
}

// ParseArchetype returns the archetype for a content tag
func ParseArchetype(tag string) (Archetype, error) {
	for i, name := range archetypeNames {
		if name == tag {
			return Archetype(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownArchetype, tag)
}

// IsEnemy reports whether the archetype can be hit by the player's sword
func (a Archetype) IsEnemy() bool {
	switch a {
	case Goblin, Slime, Bomber, Minotaur, Vase:
		return true
	}
	return false
}

// Action is the current discrete animation/behavior label of an entity
type Action int

const (
	ActionIdle Action = iota
	ActionRun
	ActionJumpUp
	ActionJumpDown
	ActionJumpDouble
	ActionHit
	ActionDeath
	ActionAttack
	ActionSpawn
	ActionFlash
	ActionSave
	ActionPickup
	ActionBreak
	ActionExplode

	actionCount
)

var actionNames = [actionCount]string{
	ActionIdle:       "idle",
	ActionRun:        "run",
	ActionJumpUp:     "jump_up",
	ActionJumpDown:   "jump_down",
	ActionJumpDouble: "jump_double",
	ActionHit:        "hit",
	ActionDeath:      "death",
	ActionAttack:     "attack",
	ActionSpawn:      "spawn",
	ActionFlash:      "flash",
	ActionSave:       "save",
	ActionPickup:     "pickup",
	ActionBreak:      "break",
	ActionExplode:    "explode",
}

// String returns the content tag of the action
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction returns the action for a content tag
func ParseAction(tag string) (Action, error) {
	for i, name := range actionNames {
		if name == tag {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, tag)
}

// requiredActions lists the full action set each archetype must declare
var requiredActions = [archetypeCount][]Action{
	Player: {ActionIdle, ActionRun, ActionJumpUp, ActionJumpDown, ActionJumpDouble,
		ActionHit, ActionDeath, ActionAttack, ActionSpawn, ActionFlash},
	Goblin:    {ActionIdle, ActionRun, ActionHit, ActionAttack, ActionDeath},
	Slime:     {ActionIdle, ActionRun, ActionHit, ActionDeath},
	Bomber:    {ActionIdle, ActionRun, ActionHit, ActionAttack, ActionDeath},
	Bomb:      {ActionIdle, ActionExplode},
	Sword:     {ActionIdle},
	Coin:      {ActionIdle, ActionPickup},
	Orb:       {ActionIdle, ActionPickup},
	SavePoint: {ActionIdle, ActionSave},
	Spike:     {ActionIdle, ActionAttack},
	SpikeFall: {ActionIdle, ActionAttack},
	Minotaur:  {ActionIdle, ActionRun, ActionHit, ActionAttack, ActionDeath},
	Vase:      {ActionIdle, ActionBreak},
	Waterfall: {ActionIdle},
}

// RequiredActions returns the actions an archetype must declare
func RequiredActions(a Archetype) []Action {
	if a < 0 || a >= archetypeCount {
		return nil
	}
	return requiredActions[a]
}

// AnimationSpec describes one animation of an archetype
type AnimationSpec struct {
	Frames   int  // number of frames
	Duration int  // ticks per frame
	Loop     bool // wrap instead of freezing on the last frame
}

// Ticks returns the total play length in ticks
func (s AnimationSpec) Ticks() int {
	return s.Frames * s.Duration
}

// ArchetypeSpec is the static per-archetype data
type ArchetypeSpec struct {
	Size      Vec
	Speed     float64
	MaxHealth int
	Damage    int
	Knockback float64
	Value     int // coin value or loot worth
	Cooldown  int // attack cooldown in ticks
	Windup    int // attack windup in ticks

	DeathTicks int // death countdown length
	LootAt     int // death countdown value at which loot spawns (0 = no loot)

	Animations map[Action]AnimationSpec
}

// Catalog maps every archetype to its static data
type Catalog map[Archetype]ArchetypeSpec

// Validate checks that every archetype is present and declares its full action set.
// A failure here is a content error and must stop loading.
func (c Catalog) Validate() error {
	var errs []error
	for _, a := range Archetypes() {
		spec, ok := c[a]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingArchetype, a))
			continue
		}
		for _, act := range RequiredActions(a) {
			anim, ok := spec.Animations[act]
			if !ok {
				errs = append(errs, fmt.Errorf("%w: %s/%s", ErrMissingAction, a, act))
				continue
			}
			if anim.Frames <= 0 || anim.Duration <= 0 {
				errs = append(errs, fmt.Errorf("%s/%s: frames and duration must be positive", a, act))
			}
		}
		if spec.Size.X <= 0 || spec.Size.Y <= 0 {
			errs = append(errs, fmt.Errorf("%s: size must be positive", a))
		}
		if spec.LootAt < 0 || (spec.LootAt > 0 && spec.LootAt >= spec.DeathTicks) {
			errs = append(errs, fmt.Errorf("%s: loot_at %d is outside the death countdown of %d ticks", a, spec.LootAt, spec.DeathTicks))
		}
	}
	return errors.Join(errs...)
}

// MaxExtent returns the largest width or height of any archetype
func (c Catalog) MaxExtent() float64 {
	var m float64
	for _, spec := range c {
		m = max(m, spec.Size.X, spec.Size.Y)
	}
	return m
}
