package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display DisplayConfig `json:"display"`
	World   WorldConfig   `json:"world"`
	Player  PlayerConfig  `json:"player"`
	Combat  CombatConfig  `json:"combat"`
	Patrol  PatrolConfig  `json:"patrol"`
	Hazards HazardConfig  `json:"hazards"`
	Loot    LootConfig    `json:"loot"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// WorldConfig holds the grid and gravity tunables
type WorldConfig struct {
	TileSize     int      `json:"tileSize"`
	Gravity      float64  `json:"gravity"`      // added to vertical velocity every tick
	MaxFallSpeed float64  `json:"maxFallSpeed"` // vertical velocity clamp
	Friction     float64  `json:"friction"`     // horizontal velocity decay per grounded tick
	SolidTiles   []string `json:"solidTiles"`
	FallMargin   float64  `json:"fallMargin"` // pixels below the lowest tile row that count as a fall death
}

type PlayerConfig struct {
	JumpForce     float64 `json:"jumpForce"`
	MaxJumps      int     `json:"maxJumps"`
	DashSpeed     float64 `json:"dashSpeed"`
	DashTicks     int     `json:"dashTicks"`
	MaxMana       float64 `json:"maxMana"`
	ManaRegen     float64 `json:"manaRegen"`
	PotionHeal    int     `json:"potionHeal"`
	SpawnTicks    int     `json:"spawnTicks"`
	FootstepTicks int     `json:"footstepTicks"`
}

type CombatConfig struct {
	HitStun    int     `json:"hitStun"`
	GuardReach float64 `json:"guardReach"` // how far a melee guard rect extends past the body
}

// PatrolConfig drives the random walk bursts of patrolling enemies
type PatrolConfig struct {
	Chance  int `json:"chance"` // one in Chance per tick
	WalkMin int `json:"walkMin"`
	WalkMax int `json:"walkMax"`
}

type HazardConfig struct {
	Bomb       BombConfig     `json:"bomb"`
	ThrowRange float64        `json:"throwRange"`
	Spike      TriggerConfig  `json:"spike"`
	SpikeFall  TriggerConfig  `json:"spikeFall"`
	Minotaur   MinotaurConfig `json:"minotaur"`
}

// BombConfig is the scripted bomb timeline. The countdown starts at Fuse on landing.
type BombConfig struct {
	FlightTicks int     `json:"flightTicks"`
	Fuse        int     `json:"fuse"`
	ExplodeAt   int     `json:"explodeAt"`
	DamageAt    int     `json:"damageAt"`
	BlastRadius float64 `json:"blastRadius"`
}

type TriggerConfig struct {
	Window float64 `json:"window"`
}

type MinotaurConfig struct {
	AggroRange     float64 `json:"aggroRange"`
	ChargeCooldown int     `json:"chargeCooldown"`
	ChargeTicks    int     `json:"chargeTicks"`
}

// LootConfig thresholds are compared against a 1..10 roll
type LootConfig struct {
	OrbThreshold        int `json:"orbThreshold"`
	PotionThreshold     int `json:"potionThreshold"`
	VaseCoinThreshold   int `json:"vaseCoinThreshold"`
	VasePotionThreshold int `json:"vasePotionThreshold"`
	PickupTicks         int `json:"pickupTicks"`
	OrbHeal             int `json:"orbHeal"`
	SaveBonus           int `json:"saveBonus"`
}
