package state

// GameState represents the current state of a level run
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateLevelComplete
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateLevelComplete:
		return "LevelComplete"
	default:
		return "Unknown"
	}
}

// Simulating reports whether the world advances in this state
func (s GameState) Simulating() bool {
	return s == StatePlaying
}

// Settle returns the state a playing run moves to after a tick.
// Death takes priority over reaching the save point on the same tick.
func Settle(s GameState, over, complete bool) GameState {
	if s != StatePlaying {
		return s
	}
	switch {
	case over:
		return StateGameOver
	case complete:
		return StateLevelComplete
	}
	return s
}

// TogglePause switches between playing and paused; other states are kept
func TogglePause(s GameState) GameState {
	switch s {
	case StatePlaying:
		return StatePaused
	case StatePaused:
		return StatePlaying
	}
	return s
}
