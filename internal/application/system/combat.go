package system

import (
	"math"

	"github.com/younwookim/hero/internal/domain/entity"
)

// Hit applies damage and a knockback arc to target.
// The horizontal knockback is signed by the caller; the vertical component
// is always upward. Dying entities ignore hits and inert ones take no knockback.
func (s *Session) Hit(target *entity.Entity, damage int, knockback float64) {
	if target.Dying || target.Removed() {
		return
	}
	s.audio.Play(SoundHit)

	if !isInert(target.Archetype) {
		target.Vel.X += knockback
		target.Vel.Y += -math.Abs(knockback) / 2
	}
	target.Health -= damage
	target.HitStun = s.cfg.Combat.HitStun

	if target.Health <= 0 {
		s.kill(target)
	}
}

// HitFrom hits target with knockback pointing away from attacker
func (s *Session) HitFrom(attacker, target *entity.Entity, damage int, knockback float64) {
	s.Hit(target, damage, KnockbackFrom(attacker, target, knockback))
}

// KnockbackFrom signs k so that it pushes target away from attacker.
// When the centres line up, target is pushed against its facing.
func KnockbackFrom(attacker, target *entity.Entity, k float64) float64 {
	k = math.Abs(k)
	ax, tx := attacker.Center().X, target.Center().X
	switch {
	case ax > tx:
		return -k
	case ax < tx:
		return k
	}
	return -target.Facing() * k
}

// kill starts the death countdown
func (s *Session) kill(e *entity.Entity) {
	if e.Dying {
		return
	}
	e.Health = min(e.Health, 0)
	e.Dying = true
	e.Windup = 0
	e.Walk = 0
	e.DeathTimer = s.catalog[e.Archetype].DeathTicks
	if e.DeathTimer <= 0 {
		s.finishDeath(e)
	}
}

// updateDying runs one tick of the death countdown
func (s *Session) updateDying(e *entity.Entity) {
	e.DeathTimer--
	if lootAt := s.catalog[e.Archetype].LootAt; lootAt > 0 && e.DeathTimer == lootAt {
		s.dropLoot(e)
	}
	if e.DeathTimer <= 0 {
		s.finishDeath(e)
	}
}

func (s *Session) finishDeath(e *entity.Entity) {
	if e == s.player {
		s.over = true
		return
	}
	e.Remove()
}

// dropLoot spawns the death loot at the centre of e.
// A vase rolls its coin and potion before the coin rolls its own bonus.
func (s *Session) dropLoot(e *entity.Entity) {
	if e.Archetype == entity.Vase {
		loot := s.cfg.Loot
		coin := randint(s.rng, 1, 10) <= loot.VaseCoinThreshold
		if randint(s.rng, 1, 10) <= loot.VasePotionThreshold {
			s.wallet.Potions++
		}
		if coin {
			s.spawnCentered(entity.Coin, e)
		}
		return
	}
	s.spawnCentered(entity.Coin, e)
}

// spawnCentered spawns an archetype centred on e
func (s *Session) spawnCentered(a entity.Archetype, e *entity.Entity) *entity.Entity {
	size := s.catalog[a].Size
	c := e.Center()
	return s.Spawn(a, entity.Vec{X: c.X - size.X/2, Y: c.Y - size.Y/2})
}

// rollCoinBonus rolls the bonus orb and potion of a new coin
func (s *Session) rollCoinBonus(coin *entity.Entity) {
	loot := s.cfg.Loot
	if randint(s.rng, 1, 10) <= loot.OrbThreshold {
		s.spawnCentered(entity.Orb, coin)
	}
	if randint(s.rng, 1, 10) <= loot.PotionThreshold {
		s.wallet.Potions++
	}
}

// swingSword tests a one-frame sword hitbox in front of the player against
// every enemy. The hitbox is not simulated afterward.
func (s *Session) swingSword(p *entity.Entity) {
	spec := s.catalog[entity.Sword]
	pos := entity.Vec{X: p.Pos.X + p.Size.X, Y: p.Pos.Y}
	if p.Flip {
		pos.X = p.Pos.X - spec.Size.X
	}
	s.nextID++
	sword := entity.New(s.nextID, entity.Sword, pos, spec)
	sword.Flip = p.Flip
	s.swing, s.swingTick = sword, s.tick

	s.audio.Play(SoundSword)
	box := sword.Rect()
	for _, e := range s.entities {
		if e.Removed() || e.Dying || !e.Archetype.IsEnemy() {
			continue
		}
		if box.Overlaps(e.Rect()) {
			s.HitFrom(p, e, p.Damage, p.Knockback)
		}
	}
}

// touchesPlayer reports whether r overlaps a living player
func (s *Session) touchesPlayer(r entity.Rect) bool {
	return !s.player.Dying && r.Overlaps(s.player.Rect())
}
