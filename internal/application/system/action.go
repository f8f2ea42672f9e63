package system

import "github.com/younwookim/hero/internal/domain/entity"

// rule maps a condition to an action. A nil condition always matches.
type rule struct {
	action entity.Action
	when   func(s *Session, e *entity.Entity) bool
}

// Rules are evaluated top to bottom every tick; the first match wins.
var cascades = map[entity.Archetype][]rule{
	entity.Player: {
		{entity.ActionSpawn, func(_ *Session, e *entity.Entity) bool { return e.SpawnTimer > 0 }},
		{entity.ActionDeath, dying},
		{entity.ActionJumpDouble, func(_ *Session, e *entity.Entity) bool {
			return e.Airborne() && e.DoubleJumped && e.Vel.Y < 0
		}},
		{entity.ActionJumpUp, func(_ *Session, e *entity.Entity) bool { return e.Airborne() && e.Vel.Y < 0 }},
		{entity.ActionJumpDown, func(_ *Session, e *entity.Entity) bool { return e.AirTime > 10 && e.Vel.Y > 0 }},
		{entity.ActionHit, stunned},
		{entity.ActionRun, moving},
		{entity.ActionFlash, func(_ *Session, e *entity.Entity) bool { return e.DashTimer != 0 && e.Vel.X != 0 }},
		{entity.ActionAttack, windingUp},
		{entity.ActionIdle, nil},
	},
	entity.Goblin:   guardCascade,
	entity.Minotaur: guardCascade,
	entity.Bomber:   guardCascade,
	entity.Slime: {
		{entity.ActionDeath, dying},
		{entity.ActionHit, stunned},
		{entity.ActionRun, moving},
		{entity.ActionIdle, nil},
	},
	entity.Bomb: {
		{entity.ActionExplode, func(s *Session, e *entity.Entity) bool {
			return e.Triggered && e.Countdown <= s.cfg.Hazards.Bomb.ExplodeAt
		}},
		{entity.ActionIdle, nil},
	},
	entity.Coin:      pickupCascade,
	entity.Orb:       pickupCascade,
	entity.SavePoint: {{entity.ActionSave, triggered}, {entity.ActionIdle, nil}},
	entity.Spike:     {{entity.ActionAttack, triggered}, {entity.ActionIdle, nil}},
	entity.SpikeFall: {{entity.ActionAttack, triggered}, {entity.ActionIdle, nil}},
	entity.Vase:      {{entity.ActionBreak, dying}, {entity.ActionIdle, nil}},
}

var guardCascade = []rule{
	{entity.ActionDeath, dying},
	{entity.ActionHit, stunned},
	{entity.ActionAttack, windingUp},
	{entity.ActionRun, moving},
	{entity.ActionIdle, nil},
}

var pickupCascade = []rule{
	{entity.ActionPickup, func(_ *Session, e *entity.Entity) bool { return e.Pickup > 0 }},
	{entity.ActionIdle, nil},
}

func dying(_ *Session, e *entity.Entity) bool     { return e.Dying }
func stunned(_ *Session, e *entity.Entity) bool   { return e.HitStun > 0 }
func moving(_ *Session, e *entity.Entity) bool    { return e.Move != 0 }
func windingUp(_ *Session, e *entity.Entity) bool { return e.Windup > 0 }
func triggered(_ *Session, e *entity.Entity) bool { return e.Triggered }

// nextAction evaluates the archetype's cascade for e
func (s *Session) nextAction(e *entity.Entity) entity.Action {
	for _, r := range cascades[e.Archetype] {
		if r.when == nil || r.when(s, e) {
			return r.action
		}
	}
	return entity.ActionIdle
}
