package system

import (
	"errors"
	"log"

	"github.com/younwookim/hero/internal/domain/entity"
	"github.com/younwookim/hero/internal/infrastructure/config"
)

const (
	spawnerTile = "spawners"
	bossTile    = "boss"
)

// spawnerArchetypes maps spawner tile variants to the archetype they place.
// Variant 0 is the player start.
var spawnerArchetypes = map[int]entity.Archetype{
	1: entity.Bomber,
	2: entity.Goblin,
	3: entity.Slime,
	4: entity.SavePoint,
	5: entity.Waterfall,
	6: entity.Spike,
	7: entity.SpikeFall,
	8: entity.Vase,
}

// LevelSource reads map files by number
type LevelSource interface {
	LoadLevel(n int) (*config.LevelConfig, error)
}

// LoadLevel reads map n. A map that is missing or cannot be parsed yields a
// nil config, which loads as an empty grid. found is false only when the map
// does not exist; other failures are logged.
func LoadLevel(src LevelSource, n int) (cfg *config.LevelConfig, found bool) {
	cfg, err := src.LoadLevel(n)
	switch {
	case errors.Is(err, config.ErrLevelNotFound):
		return nil, false
	case err != nil:
		log.Printf("level %d: %v, starting with an empty grid", n, err)
		return nil, true
	}
	return cfg, true
}

// LoadGrid converts a LevelConfig into a Grid.
// Tiles are placed at their own pos; a key that disagrees with it is logged.
// A nil config gives a nil grid, which sessions treat as empty.
func LoadGrid(cfg *config.LevelConfig, world config.WorldConfig) *entity.Grid {
	if cfg == nil {
		return nil
	}
	tileSize := cfg.TileSize
	if tileSize <= 0 {
		tileSize = world.TileSize
	}
	grid := entity.NewGrid(tileSize, world.SolidTiles)

	for key, tc := range cfg.Tilemap {
		pos := entity.Point{X: tc.Pos[0], Y: tc.Pos[1]}
		if key != pos.Key() {
			log.Printf("level: tile key %q does not match pos %s, using pos", key, pos.Key())
		}
		grid.Set(entity.Tile{Type: tc.Type, Variant: tc.Variant, Pos: pos})
	}
	for _, oc := range cfg.Offgrid {
		grid.OffGrid = append(grid.OffGrid, entity.OffGridTile{
			Type:    oc.Type,
			Variant: oc.Variant,
			Pos:     entity.Vec{X: oc.Pos[0], Y: oc.Pos[1]},
		})
	}
	return grid
}

// spawnerKinds lists every spawner and boss tile kind present in the grid
func spawnerKinds(g *entity.Grid) []entity.TileKind {
	seen := make(map[entity.TileKind]struct{})
	add := func(k entity.TileKind) {
		if k.Type == spawnerTile || k.Type == bossTile {
			seen[k] = struct{}{}
		}
	}
	for _, t := range g.Tiles() {
		add(entity.TileKind{Type: t.Type, Variant: t.Variant})
	}
	for _, t := range g.OffGrid {
		add(entity.TileKind{Type: t.Type, Variant: t.Variant})
	}

	kinds := make([]entity.TileKind, 0, len(seen))
	for k := range seen {
		kinds = append(kinds, k)
	}
	return kinds
}

// populate removes the spawner tiles from the grid and turns them into entities.
// Unknown spawners are logged and skipped.
func (s *Session) populate() {
	ts := float64(s.grid.TileSize)
	for _, t := range s.grid.Extract(spawnerKinds(s.grid)) {
		pos := entity.Vec{X: float64(t.Pos.X) * ts, Y: float64(t.Pos.Y) * ts}

		switch {
		case t.Type == bossTile && t.Variant == 0:
			s.Spawn(entity.Minotaur, pos)
		case t.Type == spawnerTile && t.Variant == 0:
			s.player.Pos = pos
		case t.Type == spawnerTile:
			a, ok := spawnerArchetypes[t.Variant]
			if !ok {
				log.Printf("level: unknown spawner variant %d at %s, skipping", t.Variant, t.Pos.Key())
				continue
			}
			s.Spawn(a, pos)
		default:
			log.Printf("level: unknown %s variant %d at %s, skipping", t.Type, t.Variant, t.Pos.Key())
		}
	}
	s.flush()
}
