package system

import (
	"math"

	"github.com/younwookim/hero/internal/domain/entity"
)

// updateSpike arms while the player is within its window and hurts on contact
func (s *Session) updateSpike(e *entity.Entity) {
	e.Triggered = math.Abs(s.player.Center().X-e.Center().X) <= s.cfg.Hazards.Spike.Window
	if e.Triggered && e.Cooldown == 0 && s.touchesPlayer(e.Rect()) {
		s.HitFrom(e, s.player, e.Damage, e.Knockback)
		e.Cooldown = s.catalog[e.Archetype].Cooldown
	}
}

// updateSpikeFall hangs until the player passes below, then falls.
// It breaks on landing or on hitting the player.
func (s *Session) updateSpikeFall(e *entity.Entity) {
	if !e.Triggered {
		p := s.player
		below := p.Pos.Y >= e.Pos.Y+e.Size.Y
		if !below || math.Abs(p.Center().X-e.Center().X) > s.cfg.Hazards.SpikeFall.Window {
			return
		}
		e.Triggered = true
	}

	s.moveBody(e, 0)
	if s.touchesPlayer(e.Rect()) {
		s.HitFrom(e, s.player, e.Damage, e.Knockback)
		e.Remove()
		return
	}
	if e.Collisions.Down {
		e.Remove()
	}
}

// updateSavePoint completes the level the first time the player reaches it
func (s *Session) updateSavePoint(e *entity.Entity) {
	if !s.touchesPlayer(e.Rect()) || e.Triggered {
		return
	}
	e.Triggered = true
	s.complete = true
	s.wallet.Earn(s.cfg.Loot.SaveBonus)
	s.audio.Play(SoundEnd)
}

// updatePickup credits a coin or orb after the player has overlapped it for
// the full pickup countdown. Losing contact resets the countdown.
func (s *Session) updatePickup(e *entity.Entity) {
	s.moveBody(e, 0)
	if !s.touchesPlayer(e.Rect()) {
		e.Pickup = 0
		return
	}
	e.Pickup++
	if e.Pickup < s.cfg.Loot.PickupTicks {
		return
	}

	switch e.Archetype {
	case entity.Coin:
		s.wallet.Earn(e.Value)
	case entity.Orb:
		s.heal(s.player, s.cfg.Loot.OrbHeal)
	}
	s.audio.Play(SoundCoin)
	e.Remove()
}
