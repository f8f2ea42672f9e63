package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/younwookim/hero/internal/domain/entity"
	"github.com/younwookim/hero/internal/infrastructure/config"
)

func createTestConfig() *config.PhysicsConfig {
	return &config.PhysicsConfig{
		World: config.WorldConfig{
			TileSize:     50,
			Gravity:      1,
			MaxFallSpeed: 10,
			Friction:     1,
			SolidTiles:   []string{"stone"},
			FallMargin:   500,
		},
		Player: config.PlayerConfig{
			JumpForce:     12,
			MaxJumps:      2,
			DashSpeed:     3,
			DashTicks:     5,
			MaxMana:       100,
			ManaRegen:     1,
			PotionHeal:    30,
			FootstepTicks: 4,
		},
		Combat: config.CombatConfig{HitStun: 10, GuardReach: 20},
		Patrol: config.PatrolConfig{Chance: 100, WalkMin: 30, WalkMax: 120},
		Hazards: config.HazardConfig{
			Bomb:       config.BombConfig{FlightTicks: 20, Fuse: 30, ExplodeAt: 20, DamageAt: 15, BlastRadius: 30},
			ThrowRange: 400,
			Spike:      config.TriggerConfig{Window: 100},
			SpikeFall:  config.TriggerConfig{Window: 60},
			Minotaur:   config.MinotaurConfig{AggroRange: 300, ChargeCooldown: 100, ChargeTicks: 40},
		},
		Loot: config.LootConfig{
			OrbThreshold:        4,
			PotionThreshold:     2,
			VaseCoinThreshold:   7,
			VasePotionThreshold: 3,
			PickupTicks:         5,
			OrbHeal:             20,
			SaveBonus:           10,
		},
	}
}

func createTestCatalog() entity.Catalog {
	c := entity.Catalog{}
	for _, a := range entity.Archetypes() {
		spec := entity.ArchetypeSpec{
			Size:       entity.Vec{X: 50, Y: 50},
			Speed:      1,
			MaxHealth:  50,
			Damage:     10,
			Knockback:  2,
			Value:      1,
			Cooldown:   30,
			Windup:     5,
			DeathTicks: 20,
			LootAt:     10,
			Animations: map[entity.Action]entity.AnimationSpec{},
		}
		for _, act := range entity.RequiredActions(a) {
			loop := act == entity.ActionIdle || act == entity.ActionRun
			spec.Animations[act] = entity.AnimationSpec{Frames: 2, Duration: 2, Loop: loop}
		}
		c[a] = spec
	}

	player := c[entity.Player]
	player.MaxHealth = 100
	player.Speed = 5
	player.Damage = 25
	player.Knockback = 3
	player.LootAt = 0
	c[entity.Player] = player

	minotaur := c[entity.Minotaur]
	minotaur.Size = entity.Vec{X: 200, Y: 200}
	minotaur.MaxHealth = 500
	c[entity.Minotaur] = minotaur

	bomb := c[entity.Bomb]
	bomb.Size = entity.Vec{X: 20, Y: 20}
	bomb.Damage = 20
	c[entity.Bomb] = bomb

	for _, a := range []entity.Archetype{entity.Coin, entity.Orb} {
		spec := c[a]
		spec.Size = entity.Vec{X: 30, Y: 30}
		c[a] = spec
	}

	vase := c[entity.Vase]
	vase.MaxHealth = 1
	c[entity.Vase] = vase

	return c
}

// scriptedRand returns its values in order, then n-1 forever
type scriptedRand struct {
	values []int
	calls  int
}

func (r *scriptedRand) Intn(n int) int {
	defer func() { r.calls++ }()
	if r.calls < len(r.values) {
		return min(r.values[r.calls], n-1)
	}
	return n - 1
}

type recordingAudio struct {
	played []Sound
}

func (a *recordingAudio) Play(s Sound) {
	a.played = append(a.played, s)
}

func (a *recordingAudio) count(s Sound) int {
	n := 0
	for _, p := range a.played {
		if p == s {
			n++
		}
	}
	return n
}

// createFloorGrid builds a stone floor on row y from column x0 to x1
func createFloorGrid(x0, x1, y int) *entity.Grid {
	g := entity.NewGrid(50, []string{"stone"})
	for x := x0; x <= x1; x++ {
		g.Set(entity.Tile{Type: "stone", Pos: entity.Point{X: x, Y: y}})
	}
	return g
}

type testSession struct {
	*Session
	audio *recordingAudio
	rng   *scriptedRand
}

// createTestSession returns a session on a floor spanning columns 0..25 of row 5
// (top edge at y=250) with the player standing at x=0.
func createTestSession(t *testing.T, values ...int) *testSession {
	t.Helper()
	return createTestSessionWith(t, createTestConfig(), createFloorGrid(0, 25, 5), values...)
}

func createTestSessionWith(t *testing.T, cfg *config.PhysicsConfig, grid *entity.Grid, values ...int) *testSession {
	t.Helper()
	audio := &recordingAudio{}
	rng := &scriptedRand{values: values}
	s := NewSession(cfg, createTestCatalog(), grid, Deps{Audio: audio, Rand: rng})
	require.NotNil(t, s)
	s.Player().Pos = entity.Vec{X: 0, Y: 200}
	return &testSession{Session: s, audio: audio, rng: rng}
}

// place spawns an entity and admits it to the live collection immediately
func (ts *testSession) place(a entity.Archetype, x, y float64) *entity.Entity {
	e := ts.Spawn(a, entity.Vec{X: x, Y: y})
	ts.flush()
	return e
}

func (ts *testSession) steps(n int, in Input) {
	for i := 0; i < n; i++ {
		ts.Step(in)
	}
}

func (ts *testSession) countLive(a entity.Archetype) int {
	n := 0
	for _, e := range ts.Entities() {
		if e.Archetype == a && !e.Removed() {
			n++
		}
	}
	return n
}

func (ts *testSession) alive(e *entity.Entity) bool {
	for _, live := range ts.Entities() {
		if live == e {
			return true
		}
	}
	return false
}
