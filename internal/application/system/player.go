package system

import (
	"math"

	"github.com/younwookim/hero/internal/domain/entity"
)

// updatePlayer runs one tick for the player.
// Input is ignored while the spawn animation plays.
func (s *Session) updatePlayer(in Input) {
	p := s.player
	pc := s.cfg.Player
	tickTimers(p)

	if p.Dying {
		p.Move = 0
		s.physics.Move(p, entity.Vec{})
		s.updateDying(p)
		s.animate(p)
		return
	}

	p.Mana = math.Min(pc.MaxMana, p.Mana+pc.ManaRegen)

	move := 0.0
	if p.SpawnTimer == 0 {
		move = float64(in.MoveX)
		if in.Jump {
			s.jump(p)
		}
		if in.Dash {
			s.dash(p)
		}
		if in.Attack {
			s.attack(p)
		}
		if in.Regen {
			s.drinkPotion(p)
		}
	}

	if p.DashTimer > 0 {
		p.DashTimer--
		if p.DashTimer == 0 {
			p.Vel.X = 0
		} else {
			p.Vel.X = math.Copysign(pc.DashSpeed, p.Vel.X)
		}
	}
	if p.Windup > 0 {
		p.Windup--
	}

	p.Move = move
	s.physics.Move(p, entity.Vec{X: move})

	if p.Collisions.Down {
		p.Jumps = pc.MaxJumps
		p.DoubleJumped = false
	}
	if move != 0 && !p.Airborne() && pc.FootstepTicks > 0 && s.tick%pc.FootstepTicks == 0 {
		s.audio.Play(SoundGrass)
	}
	if p.Pos.Y > s.floor {
		s.kill(p)
	}

	s.animate(p)
}

// jump spends one jump. The second jump of a landing is a double jump.
func (s *Session) jump(p *entity.Entity) {
	if p.Jumps <= 0 {
		return
	}
	if p.Jumps < s.cfg.Player.MaxJumps {
		p.DoubleJumped = true
	}
	p.Jumps--
	p.Vel.Y = -s.cfg.Player.JumpForce
	s.audio.Play(SoundJump)
}

// dash spends the full mana bar on a burst of horizontal speed
func (s *Session) dash(p *entity.Entity) {
	pc := s.cfg.Player
	if p.DashTimer > 0 || p.Mana < pc.MaxMana {
		return
	}
	p.Mana = 0
	p.DashTimer = pc.DashTicks
	p.Vel.X = p.Facing() * pc.DashSpeed
}

// attack swings the sword when the cooldown has elapsed
func (s *Session) attack(p *entity.Entity) {
	if p.Cooldown > 0 {
		return
	}
	spec := s.catalog[entity.Player]
	p.Cooldown = spec.Cooldown
	p.Windup = spec.Windup
	s.swingSword(p)
}

// drinkPotion spends one potion to heal the player
func (s *Session) drinkPotion(p *entity.Entity) {
	if s.wallet.Potions <= 0 || p.Health >= p.MaxHealth {
		return
	}
	s.wallet.Potions--
	s.heal(p, s.cfg.Player.PotionHeal)
}

func (s *Session) heal(e *entity.Entity, n int) {
	e.Health = min(e.MaxHealth, e.Health+n)
}
