package system

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/hero/internal/domain/entity"
)

func TestNewSession_NilDeps(t *testing.T) {
	s := NewSession(createTestConfig(), createTestCatalog(), nil, Deps{})
	require.NotNil(t, s)

	assert.Equal(t, 0, s.Grid().Len())
	assert.Empty(t, s.Entities())
	assert.Equal(t, 100, s.Player().Health)
	assert.Equal(t, 100.0, s.Player().Mana)
	assert.Equal(t, 2, s.Player().Jumps)
	assert.NotNil(t, s.Wallet())

	// No tiles means no lethal floor
	s.Player().Pos = entity.Vec{X: 0, Y: 100000}
	s.Step(Input{})
	assert.False(t, s.Player().Dying)
}

func TestNewSession_PlaysSpawnSound(t *testing.T) {
	s := createTestSession(t)
	assert.Equal(t, 1, s.audio.count(SoundSpawn))
}

func TestNewSession_RadiusCoversLargestBody(t *testing.T) {
	s := createTestSession(t)
	// 200px boss plus the fastest step over 50px tiles
	assert.GreaterOrEqual(t, s.Grid().Radius(), 5)
	assert.GreaterOrEqual(t, float64(s.Grid().Radius()*50), 200+s.maxStep())
}

func TestSpawn_JoinsAfterThePass(t *testing.T) {
	s := createTestSession(t)
	s.Player().Pos = entity.Vec{X: 1000, Y: 200}

	g := s.Spawn(entity.Goblin, entity.Vec{X: 300, Y: 100})
	assert.False(t, s.alive(g))

	s.Step(Input{})
	require.True(t, s.alive(g))
	assert.Equal(t, 0.0, g.Vel.Y, "not updated on the tick it joined")

	s.Step(Input{})
	assert.Equal(t, 1.0, g.Vel.Y)
}

func TestSpawn_RemovedBeforeJoining(t *testing.T) {
	s := createTestSession(t)
	g := s.Spawn(entity.Goblin, entity.Vec{X: 300, Y: 200})
	g.Remove()

	s.Step(Input{})
	assert.False(t, s.alive(g))
	assert.Empty(t, s.Entities())
}

func TestSpawn_IDsIncreaseInUpdateOrder(t *testing.T) {
	s := createTestSession(t)
	s.place(entity.Slime, 300, 200)
	s.place(entity.Goblin, 500, 200)
	s.place(entity.Vase, 700, 200)

	var last entity.EntityID
	for _, e := range s.Entities() {
		assert.Greater(t, e.ID, last)
		last = e.ID
	}
	assert.Greater(t, last, s.Player().ID)
}

func TestStep_RemovalCompactsCollection(t *testing.T) {
	s := createTestSession(t)
	a := s.place(entity.Slime, 300, 200)
	b := s.place(entity.Goblin, 500, 200)
	c := s.place(entity.Vase, 700, 200)

	b.Remove()
	s.Step(Input{})

	assert.Equal(t, []*entity.Entity{a, c}, s.Entities())
	assert.Equal(t, 1, s.Tick())
}

func TestSession_HealthNeverRisesAboveMax(t *testing.T) {
	s := createTestSessionWith(t, createTestConfig(), createFloorGrid(0, 25, 5))
	s.Session.rng = rand.New(rand.NewSource(7))
	s.Wallet().Potions = 50
	s.place(entity.Slime, 200, 200)
	s.place(entity.Goblin, 500, 200)
	s.place(entity.Bomber, 800, 200)
	s.place(entity.Coin, 400, 220)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 600 && !s.Over(); i++ {
		in := Input{
			MoveX:  rng.Intn(3) - 1,
			Jump:   rng.Intn(8) == 0,
			Attack: rng.Intn(4) == 0,
			Regen:  rng.Intn(10) == 0,
		}
		s.Step(in)

		p := s.Player()
		require.LessOrEqual(t, p.Health, p.MaxHealth)
		for _, e := range s.Entities() {
			require.LessOrEqual(t, e.Health, e.MaxHealth, "%s", e.Archetype)
		}
		hud := s.HUD()
		require.GreaterOrEqual(t, hud.Health, 0)
		require.LessOrEqual(t, hud.Mana, hud.MaxMana)
	}
}

func TestWallet(t *testing.T) {
	w := &Wallet{Coins: 5}

	w.Earn(3)
	w.Earn(2)
	assert.Equal(t, 10, w.Coins)
	assert.Equal(t, 5, w.Earned)

	w.Rollback()
	assert.Equal(t, 5, w.Coins)
	assert.Equal(t, 0, w.Earned)

	w.Earn(4)
	w.Commit()
	w.Rollback()
	assert.Equal(t, 9, w.Coins)
}

func TestHUD(t *testing.T) {
	s := createTestSession(t)
	s.Wallet().Coins = 12
	s.Wallet().Potions = 3
	s.Player().Health = -5

	assert.Equal(t, HUD{
		Health:    0,
		MaxHealth: 100,
		Mana:      100,
		MaxMana:   100,
		Coins:     12,
		Potions:   3,
	}, s.HUD())

	_, ok := s.Boss()
	assert.False(t, ok)
}
