package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/younwookim/hero/internal/application/replay"
	"github.com/younwookim/hero/internal/application/system"
	"github.com/younwookim/hero/internal/infrastructure/config"
)

// Summary is the outcome of a headless replay
type Summary struct {
	Level    int
	Ticks    int
	Over     bool
	Complete bool
	Health   int
	Coins    int
	Potions  int
	PlayerX  float64
	PlayerY  float64
}

func (s Summary) String() string {
	outcome := "running"
	switch {
	case s.Over:
		outcome = "game over"
	case s.Complete:
		outcome = "level complete"
	}
	return fmt.Sprintf("level %d: %s after %d ticks, health %d, coins %d, potions %d, player at (%.1f, %.1f)",
		s.Level, outcome, s.Ticks, s.Health, s.Coins, s.Potions, s.PlayerX, s.PlayerY)
}

// RunReplay re-simulates a recording on its level.
// It stops at the last frame or when the run ends, as the live game does.
func RunReplay(loader *config.Loader, cfg *config.GameConfig, data *replay.ReplayData) Summary {
	levelCfg, found := system.LoadLevel(loader, data.Level)
	if !found {
		log.Printf("Replay level %d not found, replaying on an empty grid", data.Level)
	}

	r := replay.NewReplayer(*data)
	s := system.NewSession(cfg.Physics, cfg.Catalog, system.LoadGrid(levelCfg, cfg.Physics.World), system.Deps{
		Rand:   rand.New(rand.NewSource(r.Seed())),
		Wallet: r.Wallet(),
	})

	for !s.Over() && !s.Complete() {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		s.Step(in)
	}

	hud := s.HUD()
	pos := s.Player().Pos
	return Summary{
		Level:    r.Level(),
		Ticks:    s.Tick(),
		Over:     s.Over(),
		Complete: s.Complete(),
		Health:   hud.Health,
		Coins:    hud.Coins,
		Potions:  hud.Potions,
		PlayerX:  pos.X,
		PlayerY:  pos.Y,
	}
}

// RunReplayFile loads a recording and re-simulates it
func RunReplayFile(loader *config.Loader, cfg *config.GameConfig, path string) (Summary, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return Summary{}, err
	}
	return RunReplay(loader, cfg, data), nil
}
