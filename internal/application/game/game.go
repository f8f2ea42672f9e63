// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/hero/internal/application/scene"
	"github.com/younwookim/hero/internal/infrastructure/config"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	display config.DisplayConfig
	dt      float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, display config.DisplayConfig) *Game {
	if display.Framerate <= 0 {
		display.Framerate = 60
	}
	if display.Scale <= 0 {
		display.Scale = 1
	}
	g := &Game{
		current: initialScene,
		display: display,
		dt:      1.0 / float64(display.Framerate),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.display.ScreenWidth, g.display.ScreenHeight
}

// Run opens the window and blocks until the game ends.
// The simulation ticks once per ebiten update at the configured framerate.
func (g *Game) Run(title string) error {
	ebiten.SetWindowSize(g.display.ScreenWidth*g.display.Scale, g.display.ScreenHeight*g.display.Scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(g.display.Framerate)

	err := ebiten.RunGame(g)
	g.current.OnExit()
	return err
}
