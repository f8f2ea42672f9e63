package system

import (
	"math"

	"github.com/younwookim/hero/internal/domain/entity"
)

// behave runs the archetype policy of a live, unstunned entity
func (s *Session) behave(e *entity.Entity) {
	switch e.Archetype {
	case entity.Goblin:
		s.updateGuard(e)
	case entity.Minotaur:
		s.charge(e)
		s.updateGuard(e)
	case entity.Slime:
		s.updateSlime(e)
	case entity.Bomber:
		s.updateBomber(e)
	case entity.Bomb:
		s.updateBomb(e)
	case entity.Spike:
		s.updateSpike(e)
	case entity.SpikeFall:
		s.updateSpikeFall(e)
	case entity.Vase:
		s.moveBody(e, 0)
	case entity.SavePoint:
		s.updateSavePoint(e)
	case entity.Coin, entity.Orb:
		s.updatePickup(e)
	}
}

// isStatic reports whether the archetype stays where it was placed
func isStatic(a entity.Archetype) bool {
	switch a {
	case entity.Spike, entity.SavePoint, entity.Waterfall, entity.Sword:
		return true
	}
	return false
}

// isInert reports whether hits leave the entity where it is
func isInert(a entity.Archetype) bool {
	return a == entity.Vase || isStatic(a)
}

// moveBody moves e by move and turns it around when a walk runs into a wall
func (s *Session) moveBody(e *entity.Entity, move float64) {
	e.Move = move
	s.physics.Move(e, entity.Vec{X: move})
	if e.Walk > 0 && ((e.Collisions.Right && !e.Flip) || (e.Collisions.Left && e.Flip)) {
		e.Flip = !e.Flip
	}
}

// patrol returns this tick's horizontal move.
// Idle patrollers start a walk burst at random; walking ones probe the ground
// one step ahead at foot level and turn around at ledges without moving.
func (s *Session) patrol(e *entity.Entity) float64 {
	pc := s.cfg.Patrol
	if e.Walk == 0 {
		if pc.Chance > 0 && s.rng.Intn(pc.Chance) == 0 {
			e.Walk = randint(s.rng, pc.WalkMin, pc.WalkMax)
		}
		return 0
	}

	e.Walk--
	probe := entity.Vec{
		X: e.Center().X + e.Facing()*(e.Size.X/2+1),
		Y: e.Pos.Y + e.Size.Y + 1,
	}
	if _, ok := s.grid.SolidCheck(probe); ok {
		return e.Facing()
	}
	e.Flip = !e.Flip
	return 0
}

// guardRect is the body extended toward the facing side by the guard reach
func (s *Session) guardRect(e *entity.Entity) entity.Rect {
	r := e.Rect()
	reach := s.cfg.Combat.GuardReach
	r.W += reach
	if e.Flip {
		r.X -= reach
	}
	return r
}

// updateGuard is the melee guard: when the player enters the guard rect and
// the cooldown has elapsed, the guard anchors itself and strikes after a windup.
func (s *Session) updateGuard(e *entity.Entity) {
	spec := s.catalog[e.Archetype]

	if e.Windup > 0 {
		e.Vel.X = 0
		e.Windup--
		if e.Windup == 0 {
			if s.touchesPlayer(s.guardRect(e)) {
				s.HitFrom(e, s.player, e.Damage, e.Knockback)
			}
			e.Cooldown = spec.Cooldown
		}
		s.moveBody(e, 0)
		return
	}

	if e.Cooldown == 0 && s.touchesPlayer(s.guardRect(e)) {
		e.Vel.X = 0
		e.Walk = 0
		if spec.Windup <= 0 {
			s.HitFrom(e, s.player, e.Damage, e.Knockback)
			e.Cooldown = spec.Cooldown
		} else {
			e.Windup = spec.Windup
		}
		s.moveBody(e, 0)
		return
	}

	s.moveBody(e, s.patrol(e))
}

// charge turns the boss toward a nearby player and starts a long walk
func (s *Session) charge(e *entity.Entity) {
	mc := s.cfg.Hazards.Minotaur
	if e.SpecialCooldown > 0 || e.Windup > 0 || s.player.Dying {
		return
	}
	dx := s.player.Center().X - e.Center().X
	if math.Abs(dx) > mc.AggroRange {
		return
	}
	e.Flip = dx < 0
	e.Walk = mc.ChargeTicks
	e.SpecialCooldown = mc.ChargeCooldown
}

// updateSlime hurts the player on body contact, gated by its own cooldown
func (s *Session) updateSlime(e *entity.Entity) {
	if e.Cooldown == 0 && s.touchesPlayer(e.Rect()) {
		s.HitFrom(e, s.player, e.Damage, e.Knockback)
		e.Cooldown = s.catalog[e.Archetype].Cooldown
	}
	s.moveBody(e, s.patrol(e))
}

// updateBomber throws a bomb at the player whenever its cooldown allows
func (s *Session) updateBomber(e *entity.Entity) {
	spec := s.catalog[e.Archetype]

	if e.Windup > 0 {
		e.Vel.X = 0
		e.Windup--
		if e.Windup == 0 {
			s.throwBomb(e)
			e.Cooldown = spec.Cooldown
		}
		s.moveBody(e, 0)
		return
	}

	if e.Cooldown == 0 && !s.player.Dying && s.inThrowRange(e) {
		e.Walk = 0
		e.Flip = s.player.Center().X < e.Center().X
		if spec.Windup <= 0 {
			s.throwBomb(e)
			e.Cooldown = spec.Cooldown
		} else {
			e.Windup = spec.Windup
		}
		s.moveBody(e, 0)
		return
	}

	s.moveBody(e, s.patrol(e))
}

func (s *Session) inThrowRange(e *entity.Entity) bool {
	a, b := e.Center(), s.player.Center()
	return math.Hypot(b.X-a.X, b.Y-a.Y) <= s.cfg.Hazards.ThrowRange
}

// throwBomb spawns a bomb above e aimed at where the player is now.
// The launch velocity lands the bomb on the target after the configured
// flight time when the fall clamp is not reached.
func (s *Session) throwBomb(e *entity.Entity) *entity.Entity {
	size := s.catalog[entity.Bomb].Size
	start := entity.Vec{X: e.Center().X - size.X/2, Y: e.Pos.Y - size.Y}
	pc := s.player.Center()
	target := entity.Vec{X: pc.X - size.X/2, Y: pc.Y - size.Y/2}

	b := s.Spawn(entity.Bomb, start)
	b.Vel = BallisticVelocity(start, target, s.cfg.Hazards.Bomb.FlightTicks, b.Speed, s.cfg.World.Gravity)
	return b
}

// BallisticVelocity returns the launch velocity that carries a body from
// start to target in ticks ticks. Horizontal velocity is in speed units.
func BallisticVelocity(start, target entity.Vec, ticks int, speed, gravity float64) entity.Vec {
	if ticks <= 0 {
		ticks = 1
	}
	if speed == 0 {
		speed = 1
	}
	t := float64(ticks)
	return entity.Vec{
		X: (target.X - start.X) / (t * speed),
		Y: (target.Y - start.Y - gravity*t*(t-1)/2) / t,
	}
}

// updateBomb flies until it first lands, then runs its fuse:
// explode visual, blast check, removal.
func (s *Session) updateBomb(e *entity.Entity) {
	bc := s.cfg.Hazards.Bomb
	s.moveBody(e, 0)

	if !e.Triggered {
		if e.Collisions.Down {
			e.Triggered = true
			e.Vel.X = 0
			e.Countdown = bc.Fuse
		}
		return
	}

	e.Countdown--
	switch e.Countdown {
	case bc.ExplodeAt:
		s.audio.Play(SoundExplosion)
	case bc.DamageAt:
		blast := e.Rect().Inflate(bc.BlastRadius, bc.BlastRadius)
		if s.touchesPlayer(blast) {
			s.HitFrom(e, s.player, e.Damage, e.Knockback)
		}
	}
	if e.Countdown <= 0 {
		e.Remove()
	}
}
