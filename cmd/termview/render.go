package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/hero/internal/application/state"
	"github.com/younwookim/hero/internal/application/system"
	"github.com/younwookim/hero/internal/domain/entity"
)

// One terminal cell covers cellW x cellH world pixels
const (
	cellW = 10.0
	cellH = 20.0
)

type glyph struct {
	r     rune
	color tcell.Color
}

var glyphs = map[entity.Archetype]glyph{
	entity.Player:    {'@', tcell.ColorLightGreen},
	entity.Goblin:    {'g', tcell.ColorIndianRed},
	entity.Slime:     {'s', tcell.ColorMediumSeaGreen},
	entity.Bomber:    {'b', tcell.ColorOrange},
	entity.Bomb:      {'*', tcell.ColorOrangeRed},
	entity.Sword:     {'/', tcell.ColorWhite},
	entity.Coin:      {'$', tcell.ColorGold},
	entity.Orb:       {'o', tcell.ColorAqua},
	entity.SavePoint: {'S', tcell.ColorViolet},
	entity.Spike:     {'^', tcell.ColorSilver},
	entity.SpikeFall: {'v', tcell.ColorLightGray},
	entity.Minotaur:  {'M', tcell.ColorMaroon},
	entity.Vase:      {'u', tcell.ColorPeru},
	entity.Waterfall: {'~', tcell.ColorSteelBlue},
}

var (
	styleSolid = tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	styleDecor = tcell.StyleDefault.Foreground(tcell.ColorDarkOliveGreen)
	styleHUD   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// view maps world pixels to terminal cells, centered on a point
type view struct {
	originX, originY float64 // world position of cell (0, 0)
	w, h             int
}

func newView(center entity.Vec, w, h int) view {
	return view{
		originX: center.X - float64(w)/2*cellW,
		originY: center.Y - float64(h)/2*cellH,
		w:       w,
		h:       h,
	}
}

func (v view) cell(x, y float64) (int, int) {
	return int(math.Floor((x - v.originX) / cellW)), int(math.Floor((y - v.originY) / cellH))
}

func (v view) contains(cx, cy int) bool {
	return cx >= 0 && cy >= 1 && cx < v.w && cy < v.h // row 0 is the HUD
}

// render draws the session into the screen buffer
func render(screen tcell.Screen, s *system.Session, st state.GameState, level int) {
	screen.Clear()
	w, h := screen.Size()
	v := newView(s.Player().Center(), w, h)

	drawTiles(screen, v, s.Grid())
	for _, e := range s.Entities() {
		drawEntity(screen, v, e)
	}
	if swing, ok := s.Swing(); ok {
		drawEntity(screen, v, swing)
	}
	drawEntity(screen, v, s.Player())

	hud := s.HUD()
	line := fmt.Sprintf("L%d HP %d/%d MP %.0f/%.0f $%d potions %d",
		level, hud.Health, hud.MaxHealth, hud.Mana, hud.MaxMana, hud.Coins, hud.Potions)
	if boss, ok := s.Boss(); ok {
		line += fmt.Sprintf("  BOSS %d/%d", boss.Health, boss.MaxHealth)
	}
	switch st {
	case state.StatePaused:
		line += "  [PAUSED p]"
	case state.StateGameOver:
		line += "  [GAME OVER z]"
	case state.StateLevelComplete:
		line += "  [COMPLETE enter]"
	}
	drawText(screen, 0, 0, line, styleHUD)
}

func drawTiles(screen tcell.Screen, v view, grid *entity.Grid) {
	ts := float64(grid.TileSize)
	for _, t := range grid.Tiles() {
		style, r := styleDecor, '░'
		if grid.IsSolid(t.Type) {
			style, r = styleSolid, '█'
		}
		x0, y0 := v.cell(float64(t.Pos.X)*ts, float64(t.Pos.Y)*ts)
		x1, y1 := v.cell(float64(t.Pos.X+1)*ts-1, float64(t.Pos.Y+1)*ts-1)
		for cy := y0; cy <= y1; cy++ {
			for cx := x0; cx <= x1; cx++ {
				if v.contains(cx, cy) {
					screen.SetContent(cx, cy, r, nil, style)
				}
			}
		}
	}
}

func drawEntity(screen tcell.Screen, v view, e *entity.Entity) {
	if e.Removed() {
		return
	}
	g, ok := glyphs[e.Archetype]
	if !ok {
		g = glyph{'?', tcell.ColorRed}
	}
	style := tcell.StyleDefault.Foreground(g.color)
	if e.HitStun > 0 {
		style = style.Reverse(true)
	}
	c := e.Center()
	cx, cy := v.cell(c.X, c.Y)
	if v.contains(cx, cy) {
		screen.SetContent(cx, cy, g.r, nil, style)
	}
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
