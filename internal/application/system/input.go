package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem turns keyboard state into per-tick player intent
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// KeyState is the raw key state the input is resolved from
type KeyState struct {
	Left, Right bool
	Jump        bool // pressed this tick
	Dash        bool
	Attack      bool
	Regen       bool
}

// GetInput reads the current keyboard state
func (s *InputSystem) GetInput() Input {
	return Resolve(KeyState{
		Left:   ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:  ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:   inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Dash:   inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft),
		Attack: inpututil.IsKeyJustPressed(ebiten.KeyJ) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Regen:  inpututil.IsKeyJustPressed(ebiten.KeyR),
	})
}

// Resolve composes opposing direction keys into a single -1/0/+1 intent
func Resolve(k KeyState) Input {
	in := Input{
		Jump:   k.Jump,
		Dash:   k.Dash,
		Attack: k.Attack,
		Regen:  k.Regen,
	}
	if k.Right {
		in.MoveX++
	}
	if k.Left {
		in.MoveX--
	}
	return in
}
