package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/hero/internal/application/system"
)

// holdTicks is how long a direction stays held after its last key event.
// Terminals report no key releases, only auto-repeat.
const holdTicks = 12

// command is a non-gameplay key
type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdPause
	cmdRetry
	cmdNext
)

// keyState turns terminal key events into per-tick player intent
type keyState struct {
	left, right int // ticks left before the direction counts as released
	pending     system.Input
}

// press records a key event and returns the command it maps to, if any
func (k *keyState) press(ev *tcell.EventKey) command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyEnter:
		return cmdNext
	case tcell.KeyLeft:
		k.left, k.right = holdTicks, 0
		return cmdNone
	case tcell.KeyRight:
		k.right, k.left = holdTicks, 0
		return cmdNone
	case tcell.KeyUp:
		k.pending.Jump = true
		return cmdNone
	case tcell.KeyRune:
	default:
		return cmdNone
	}

	switch ev.Rune() {
	case 'a', 'A':
		k.left, k.right = holdTicks, 0
	case 'd', 'D':
		k.right, k.left = holdTicks, 0
	case 'w', 'W', ' ':
		k.pending.Jump = true
	case 'k', 'K':
		k.pending.Dash = true
	case 'j', 'J':
		k.pending.Attack = true
	case 'r', 'R':
		k.pending.Regen = true
	case 'p', 'P':
		return cmdPause
	case 'z', 'Z':
		return cmdRetry
	case 'q', 'Q':
		return cmdQuit
	}
	return cmdNone
}

// next returns the intent for this tick, consuming one-shot triggers and
// decaying held directions
func (k *keyState) next() system.Input {
	in := system.Resolve(system.KeyState{
		Left:   k.left > 0,
		Right:  k.right > 0,
		Jump:   k.pending.Jump,
		Dash:   k.pending.Dash,
		Attack: k.pending.Attack,
		Regen:  k.pending.Regen,
	})
	k.pending = system.Input{}
	if k.left > 0 {
		k.left--
	}
	if k.right > 0 {
		k.right--
	}
	return in
}

// reset drops every held key and pending trigger
func (k *keyState) reset() {
	*k = keyState{}
}
