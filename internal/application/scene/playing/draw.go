package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/younwookim/hero/internal/application/state"
	"github.com/younwookim/hero/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG       = colornames.Midnightblue
	colorSolid    = colornames.Slategray
	colorDecor    = colornames.Darkolivegreen
	colorOffGrid  = colornames.Darkgreen
	colorSwing    = color.RGBA{255, 255, 255, 120}
	colorFlash    = colornames.White
	colorHealthBG = color.RGBA{60, 60, 60, 255}
	colorHealthFG = colornames.Limegreen
	colorMana     = colornames.Deepskyblue
	colorBoss     = colornames.Darkred
)

var archetypeColors = map[entity.Archetype]color.RGBA{
	entity.Player:    colornames.Lightgreen,
	entity.Goblin:    colornames.Indianred,
	entity.Slime:     colornames.Mediumseagreen,
	entity.Bomber:    colornames.Orange,
	entity.Bomb:      colornames.Orangered,
	entity.Coin:      colornames.Gold,
	entity.Orb:       colornames.Cyan,
	entity.SavePoint: colornames.Violet,
	entity.Spike:     colornames.Silver,
	entity.SpikeFall: colornames.Lightgray,
	entity.Minotaur:  colornames.Maroon,
	entity.Vase:      colornames.Peru,
	entity.Waterfall: colornames.Steelblue,
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.camX, p.camY

	p.drawTiles(screen, camX, camY)
	for _, e := range p.session.Entities() {
		p.drawEntity(screen, e, camX, camY)
	}
	p.drawEntity(screen, p.session.Player(), camX, camY)
	if swing, ok := p.session.Swing(); ok {
		r := swing.Rect()
		ebitenutil.DrawRect(screen, r.X-camX, r.Y-camY, r.W, r.H, colorSwing)
	}

	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case state.StateGameOver:
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 180}, "GAME OVER\n\nPress Z to retry")
	case state.StateLevelComplete:
		p.drawOverlay(screen, color.RGBA{0, 60, 0, 180},
			fmt.Sprintf("LEVEL %d COMPLETE\n\nCoins: %d\n\nPress Enter to continue", p.level, p.wallet.Coins))
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY float64) {
	grid := p.session.Grid()
	ts := float64(grid.TileSize)
	view := entity.Rect{X: camX - ts, Y: camY - ts, W: float64(p.screenW) + ts, H: float64(p.screenH) + ts}

	for _, t := range grid.Tiles() {
		x, y := float64(t.Pos.X)*ts, float64(t.Pos.Y)*ts
		if !view.Overlaps(entity.Rect{X: x, Y: y, W: ts, H: ts}) {
			continue
		}
		c := colorDecor
		if grid.IsSolid(t.Type) {
			c = colorSolid
		}
		ebitenutil.DrawRect(screen, x-camX, y-camY, ts, ts, c)
	}

	for _, t := range grid.OffGrid {
		ebitenutil.DrawRect(screen, t.Pos.X-camX, t.Pos.Y-camY, ts/2, ts/2, colorOffGrid)
	}
}

func (p *Playing) drawEntity(screen *ebiten.Image, e *entity.Entity, camX, camY float64) {
	if e.Removed() {
		return
	}
	var c color.Color = archetypeColors[e.Archetype]
	if e.HitStun > 0 && e.HitStun%2 == 0 {
		c = colorFlash
	}

	r := e.Rect()
	ebitenutil.DrawRect(screen, r.X-camX, r.Y-camY, r.W, r.H, c)

	// Facing marker
	mx := r.Right() - 2
	if e.Flip {
		mx = r.X
	}
	ebitenutil.DrawRect(screen, mx-camX, r.Y-camY+2, 2, 2, colorBG)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	hud := p.session.HUD()

	barX, barY, barW, barH := 10.0, 10.0, 100.0, 8.0
	p.drawBar(screen, barX, barY, barW, barH, float64(hud.Health), float64(hud.MaxHealth), colorHealthFG)
	p.drawBar(screen, barX, barY+barH+4, barW, barH/2, hud.Mana, hud.MaxMana, colorMana)

	text := fmt.Sprintf("Coins: %d  Potions: %d  Level: %d", hud.Coins, hud.Potions, p.level)
	ebitenutil.DebugPrintAt(screen, text, int(barX), int(barY+2*barH+4))

	if boss, ok := p.session.Boss(); ok {
		w := float64(p.screenW) / 2
		p.drawBar(screen, (float64(p.screenW)-w)/2, float64(p.screenH)-20, w, 8, float64(boss.Health), float64(boss.MaxHealth), colorBoss)
	}

	help := "A/D: Move | W: Jump | Shift: Dash | J: Attack | R: Potion | ESC: Pause"
	ebitenutil.DebugPrintAt(screen, help, 10, p.screenH-36)
}

func (p *Playing) drawBar(screen *ebiten.Image, x, y, w, h, value, maxValue float64, fg color.Color) {
	ebitenutil.DrawRect(screen, x, y, w, h, colorHealthBG)
	if maxValue <= 0 {
		return
	}
	ratio := min(max(value/maxValue, 0), 1)
	ebitenutil.DrawRect(screen, x, y, w*ratio, h, fg)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.Color, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}
