package system

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/hero/internal/domain/entity"
)

func TestNextAction_Player(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *entity.Entity)
		want  entity.Action
	}{
		{"idle", func(e *entity.Entity) {}, entity.ActionIdle},
		{"spawn wins over everything", func(e *entity.Entity) {
			e.SpawnTimer = 1
			e.Dying = true
		}, entity.ActionSpawn},
		{"death", func(e *entity.Entity) {
			e.Dying = true
			e.AirTime = 5
			e.Vel.Y = -3
		}, entity.ActionDeath},
		{"double jump", func(e *entity.Entity) {
			e.AirTime = 2
			e.DoubleJumped = true
			e.Vel.Y = -1
		}, entity.ActionJumpDouble},
		{"jump up", func(e *entity.Entity) {
			e.AirTime = 2
			e.Vel.Y = -1
		}, entity.ActionJumpUp},
		{"rising on the first airborne tick is not a jump", func(e *entity.Entity) {
			e.AirTime = 1
			e.Vel.Y = -1
		}, entity.ActionIdle},
		{"jump down after a long fall", func(e *entity.Entity) {
			e.AirTime = 11
			e.Vel.Y = 4
		}, entity.ActionJumpDown},
		{"short fall is not jump down", func(e *entity.Entity) {
			e.AirTime = 10
			e.Vel.Y = 4
			e.Move = 1
		}, entity.ActionRun},
		{"hit beats run", func(e *entity.Entity) {
			e.HitStun = 3
			e.Move = 1
		}, entity.ActionHit},
		{"run beats flash", func(e *entity.Entity) {
			e.Move = -1
			e.DashTimer = 2
			e.Vel.X = -3
		}, entity.ActionRun},
		{"flash", func(e *entity.Entity) {
			e.DashTimer = 2
			e.Vel.X = 3
		}, entity.ActionFlash},
		{"dash without velocity", func(e *entity.Entity) {
			e.DashTimer = 2
		}, entity.ActionIdle},
		{"attack", func(e *entity.Entity) {
			e.Windup = 1
		}, entity.ActionAttack},
	}

	s := createTestSession(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := entity.New(99, entity.Player, entity.Vec{}, s.catalog[entity.Player])
			tt.setup(e)
			assert.Equal(t, tt.want, s.nextAction(e))
		})
	}
}

func TestNextAction_Enemies(t *testing.T) {
	tests := []struct {
		name      string
		archetype entity.Archetype
		setup     func(e *entity.Entity)
		want      entity.Action
	}{
		{"goblin idle", entity.Goblin, func(e *entity.Entity) {}, entity.ActionIdle},
		{"goblin death beats hit", entity.Goblin, func(e *entity.Entity) {
			e.Dying = true
			e.HitStun = 3
		}, entity.ActionDeath},
		{"goblin hit beats attack", entity.Goblin, func(e *entity.Entity) {
			e.HitStun = 3
			e.Windup = 2
		}, entity.ActionHit},
		{"goblin attack beats run", entity.Goblin, func(e *entity.Entity) {
			e.Windup = 2
			e.Move = 1
		}, entity.ActionAttack},
		{"bomber run", entity.Bomber, func(e *entity.Entity) { e.Move = -1 }, entity.ActionRun},
		{"slime ignores windup", entity.Slime, func(e *entity.Entity) { e.Windup = 3 }, entity.ActionIdle},
		{"vase break", entity.Vase, func(e *entity.Entity) { e.Dying = true }, entity.ActionBreak},
		{"untriggered bomb", entity.Bomb, func(e *entity.Entity) { e.Countdown = 5 }, entity.ActionIdle},
		{"bomb before explosion", entity.Bomb, func(e *entity.Entity) {
			e.Triggered = true
			e.Countdown = 21
		}, entity.ActionIdle},
		{"bomb explode", entity.Bomb, func(e *entity.Entity) {
			e.Triggered = true
			e.Countdown = 20
		}, entity.ActionExplode},
		{"coin pickup", entity.Coin, func(e *entity.Entity) { e.Pickup = 1 }, entity.ActionPickup},
		{"save", entity.SavePoint, func(e *entity.Entity) { e.Triggered = true }, entity.ActionSave},
		{"spike armed", entity.Spike, func(e *entity.Entity) { e.Triggered = true }, entity.ActionAttack},
		{"waterfall", entity.Waterfall, func(e *entity.Entity) { e.Triggered = true }, entity.ActionIdle},
	}

	s := createTestSession(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := entity.New(99, tt.archetype, entity.Vec{}, s.catalog[tt.archetype])
			tt.setup(e)
			assert.Equal(t, tt.want, s.nextAction(e))
		})
	}
}

func TestCascades_OnlyUseRequiredActions(t *testing.T) {
	for a, rules := range cascades {
		required := entity.RequiredActions(a)
		for _, r := range rules {
			assert.True(t, slices.Contains(required, r.action), "%s cascade uses %s", a, r.action)
		}
		last := rules[len(rules)-1]
		assert.Nil(t, last.when, "%s cascade must end with an unconditional rule", a)
	}
}
