package system

import (
	"log"
	"math"
	"math/rand"

	"github.com/younwookim/hero/internal/domain/entity"
	"github.com/younwookim/hero/internal/infrastructure/config"
)

// Wallet holds the player's currency across levels
type Wallet struct {
	Coins   int `json:"coin"`
	Potions int `json:"potions"`
	Earned  int `json:"-"` // coins earned in the current level
}

// Earn credits coins earned in the current level
func (w *Wallet) Earn(n int) {
	w.Coins += n
	w.Earned += n
}

// Rollback takes back the coins earned in the current level
func (w *Wallet) Rollback() {
	w.Coins -= w.Earned
	w.Earned = 0
}

// Commit keeps the coins earned in the current level
func (w *Wallet) Commit() {
	w.Earned = 0
}

// Deps are the collaborators a session talks to
type Deps struct {
	Audio  Audio
	Rand   Rand
	Wallet *Wallet
}

// Session owns one level run: the grid, the player and every live entity.
//
// Each tick the player updates first, then the live entities in spawn order.
// Entities spawned during a tick join the collection after the pass; removal
// requests are compacted after the pass.
type Session struct {
	cfg     *config.PhysicsConfig
	catalog entity.Catalog
	grid    *entity.Grid
	physics *Physics
	audio   Audio
	rng     Rand
	wallet  *Wallet

	player   *entity.Entity
	entities []*entity.Entity
	pending  []*entity.Entity
	nextID   entity.EntityID

	tick      int
	floor     float64 // lethal fall line
	swing     *entity.Entity
	swingTick int
	complete  bool
	over      bool
}

// NewSession creates a session on grid and spawns the level's entities from
// its spawner tiles. A nil grid starts an empty level; a nil Rand uses a
// fixed seed.
func NewSession(cfg *config.PhysicsConfig, catalog entity.Catalog, grid *entity.Grid, deps Deps) *Session {
	if grid == nil {
		grid = entity.NewGrid(cfg.World.TileSize, cfg.World.SolidTiles)
	}
	if deps.Audio == nil {
		deps.Audio = silentAudio{}
	}
	if deps.Wallet == nil {
		deps.Wallet = &Wallet{}
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(1))
	}

	s := &Session{
		cfg:     cfg,
		catalog: catalog,
		grid:    grid,
		physics: NewPhysics(cfg.World, grid),
		audio:   deps.Audio,
		rng:     deps.Rand,
		wallet:  deps.Wallet,
	}
	grid.SetRadius(entity.RequiredRadius(grid.TileSize, catalog.MaxExtent(), s.maxStep()))

	s.nextID++
	s.player = entity.New(s.nextID, entity.Player, entity.Vec{}, catalog[entity.Player])
	s.player.SpawnTimer = cfg.Player.SpawnTicks
	s.player.Mana = cfg.Player.MaxMana
	s.player.Jumps = cfg.Player.MaxJumps
	if s.player.SpawnTimer > 0 {
		s.player.SetAction(entity.ActionSpawn)
	}

	s.populate()
	s.floor = s.lethalFloor()
	s.audio.Play(SoundSpawn)
	return s
}

// maxStep bounds the distance any body can travel on one axis in one tick
func (s *Session) maxStep() float64 {
	var speed, knock float64
	for _, spec := range s.catalog {
		speed = max(speed, spec.Speed)
		knock = max(knock, spec.Knockback)
	}
	bomb := s.cfg.Hazards.Bomb
	throw := 0.0
	if bomb.FlightTicks > 0 {
		throw = s.cfg.Hazards.ThrowRange / float64(bomb.FlightTicks)
	}
	horizontal := speed * (1 + max(s.cfg.Player.DashSpeed, knock, throw))
	return max(horizontal, s.cfg.World.MaxFallSpeed, s.cfg.Player.JumpForce)
}

func (s *Session) lethalFloor() float64 {
	_, hi, ok := s.grid.Bounds()
	if !ok {
		return math.Inf(1)
	}
	return float64((hi.Y+1)*s.grid.TileSize) + s.cfg.World.FallMargin
}

// Spawn creates an entity and queues it for the live collection.
// It joins after the current pass and first updates on the next tick.
func (s *Session) Spawn(a entity.Archetype, pos entity.Vec) *entity.Entity {
	spec, ok := s.catalog[a]
	if !ok {
		log.Printf("spawn: no archetype data for %s", a)
	}
	s.nextID++
	e := entity.New(s.nextID, a, pos, spec)
	s.pending = append(s.pending, e)

	if a == entity.Coin {
		s.rollCoinBonus(e)
	}
	return e
}

// Step advances the simulation by one tick
func (s *Session) Step(in Input) {
	if s.over {
		return
	}
	s.tick++

	s.updatePlayer(in)
	for _, e := range s.entities {
		if e.Removed() {
			continue
		}
		s.update(e)
	}
	s.flush()
}

// flush compacts removed entities and admits pending spawns
func (s *Session) flush() {
	live := s.entities[:0]
	for _, e := range s.entities {
		if !e.Removed() {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(s.entities); i++ {
		s.entities[i] = nil
	}
	for _, e := range s.pending {
		if !e.Removed() {
			live = append(live, e)
		}
	}
	s.entities = live
	s.pending = s.pending[:0]
}

// update runs one tick for a non-player entity
func (s *Session) update(e *entity.Entity) {
	tickTimers(e)
	switch {
	case e.Dying:
		if !isStatic(e.Archetype) {
			e.Move = 0
			s.physics.Move(e, entity.Vec{})
		}
		s.updateDying(e)
	case e.HitStun > 0 && !isStatic(e.Archetype):
		e.Move = 0
		s.physics.Move(e, entity.Vec{})
	default:
		s.behave(e)
	}
	s.animate(e)
}

// animate picks the action for this tick and advances its animation
func (s *Session) animate(e *entity.Entity) {
	e.SetAction(s.nextAction(e))
	e.Anim.Advance()
}

func tickTimers(e *entity.Entity) {
	for _, t := range []*int{&e.HitStun, &e.Cooldown, &e.SpecialCooldown, &e.SpawnTimer} {
		if *t > 0 {
			*t--
		}
	}
}

// Player returns the player entity
func (s *Session) Player() *entity.Entity { return s.player }

// Entities returns the live entities in update order, excluding the player
func (s *Session) Entities() []*entity.Entity { return s.entities }

// Grid returns the level grid
func (s *Session) Grid() *entity.Grid { return s.grid }

// Wallet returns the player's wallet
func (s *Session) Wallet() *Wallet { return s.wallet }

// Tick returns the number of ticks simulated so far
func (s *Session) Tick() int { return s.tick }

// Complete reports whether the level's save point was reached
func (s *Session) Complete() bool { return s.complete }

// Over reports whether the player's death sequence has finished
func (s *Session) Over() bool { return s.over }

// Swing returns the sword hitbox created this tick, if any
func (s *Session) Swing() (*entity.Entity, bool) {
	if s.swing == nil || s.swingTick != s.tick {
		return nil, false
	}
	return s.swing, true
}

// HUD is the read model for the heads-up display
type HUD struct {
	Health    int
	MaxHealth int
	Mana      float64
	MaxMana   float64
	Coins     int
	Potions   int
}

// HUD returns the current HUD values
func (s *Session) HUD() HUD {
	return HUD{
		Health:    max(s.player.Health, 0),
		MaxHealth: s.player.MaxHealth,
		Mana:      s.player.Mana,
		MaxMana:   s.cfg.Player.MaxMana,
		Coins:     s.wallet.Coins,
		Potions:   s.wallet.Potions,
	}
}

// BossBar is the read model for a boss health bar
type BossBar struct {
	Health    int
	MaxHealth int
}

// Boss returns the health of the first living boss
func (s *Session) Boss() (BossBar, bool) {
	for _, e := range s.entities {
		if e.Archetype == entity.Minotaur && !e.Removed() {
			return BossBar{Health: max(e.Health, 0), MaxHealth: e.MaxHealth}, true
		}
	}
	return BossBar{}, false
}
