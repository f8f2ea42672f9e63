package system

// Input is the resolved player intent for one tick.
// MoveX is -1, 0 or +1; the remaining fields are one-shot triggers.
type Input struct {
	MoveX  int  `json:"moveX,omitempty"`
	Jump   bool `json:"jump,omitempty"`
	Dash   bool `json:"dash,omitempty"`
	Attack bool `json:"attack,omitempty"`
	Regen  bool `json:"regen,omitempty"`
}

// Idle reports whether the input carries no intent at all
func (in Input) Idle() bool {
	return in == Input{}
}

// Sound identifies a fire-and-forget sound effect
type Sound string

const (
	SoundJump      Sound = "jump"
	SoundExplosion Sound = "explosion"
	SoundSword     Sound = "sword"
	SoundHit       Sound = "hit"
	SoundSpawn     Sound = "spawn"
	SoundCoin      Sound = "coin"
	SoundEnd       Sound = "end"
	SoundGrass     Sound = "grass"
)

// Sounds lists every sound the simulation can request
var Sounds = []Sound{SoundJump, SoundExplosion, SoundSword, SoundHit, SoundSpawn, SoundCoin, SoundEnd, SoundGrass}

// Audio plays sound effects. Play must not block.
type Audio interface {
	Play(Sound)
}

type silentAudio struct{}

func (silentAudio) Play(Sound) {}

// Rand is the randomness source of a session; *rand.Rand satisfies it
type Rand interface {
	Intn(n int) int
}

// randint returns a uniform integer in [lo, hi]
func randint(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
