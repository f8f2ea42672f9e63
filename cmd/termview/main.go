// Command termview plays the simulation in a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"

	"github.com/younwookim/hero/cmd/game/configs"
	"github.com/younwookim/hero/internal/application/state"
	"github.com/younwookim/hero/internal/application/system"
	"github.com/younwookim/hero/internal/infrastructure/config"
	"github.com/younwookim/hero/internal/infrastructure/sound"
)

// app runs one terminal game
type app struct {
	screen tcell.Screen
	loader *config.Loader
	config *config.GameConfig
	audio  system.Audio

	level   int
	seed    int64
	wallet  *system.Wallet
	session *system.Session
	state   state.GameState
	keys    keyState
}

func newApp(screen tcell.Screen, loader *config.Loader, cfg *config.GameConfig, audio system.Audio, level int, seed int64) *app {
	a := &app{
		screen: screen,
		loader: loader,
		config: cfg,
		audio:  audio,
		level:  level,
		seed:   seed,
		wallet: &system.Wallet{},
	}
	if !a.start() {
		log.Printf("Level %d not found, starting with an empty grid", level)
	}
	return a
}

// start builds a session for the current level. It reports false when the
// map does not exist; the session then runs on an empty grid.
func (a *app) start() bool {
	levelCfg, found := system.LoadLevel(a.loader, a.level)
	a.session = system.NewSession(a.config.Physics, a.config.Catalog, system.LoadGrid(levelCfg, a.config.Physics.World), system.Deps{
		Audio:  a.audio,
		Rand:   rand.New(rand.NewSource(a.seed)),
		Wallet: a.wallet,
	})
	a.state = state.StatePlaying
	a.keys.reset()
	return found
}

// handle applies a terminal event. It returns false when the game should end.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch a.keys.press(ev) {
		case cmdQuit:
			return false
		case cmdPause:
			a.state = state.TogglePause(a.state)
		case cmdRetry:
			if a.state == state.StateGameOver {
				a.wallet.Rollback()
				a.start()
			}
		case cmdNext:
			if a.state == state.StateLevelComplete {
				a.level++
				return a.start()
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// tick advances the simulation while playing
func (a *app) tick() {
	if !a.state.Simulating() {
		return
	}
	a.session.Step(a.keys.next())
	a.state = state.Settle(a.state, a.session.Over(), a.session.Complete())
	if a.state == state.StateLevelComplete {
		a.wallet.Commit()
	}
}

func (a *app) draw() {
	render(a.screen, a.session, a.state, a.level)
	a.screen.Show()
}

func (a *app) run(fps int) {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handle(ev) {
				return
			}
		case <-ticker.C:
			a.tick()
			a.draw()
		}
	}
}

func main() {
	configDir := flag.String("config", "", "Load configs from a directory (default: embedded)")
	levelFlag := flag.Int("level", 1, "Level to play")
	seedFlag := flag.Int64("seed", 0, "Random seed (default: time based)")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	loader := config.NewFSLoader(configs.FS, "configs")
	if *configDir != "" {
		loader = config.NewLoader(*configDir)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var audio system.Audio
	if !*mute {
		tones := sound.NewTones(beep.SampleRate(44100))
		if err := tones.Init(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		}
		defer tones.Close()
		audio = tones
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	a := newApp(screen, loader, cfg, audio, *levelFlag, seed)
	a.run(cfg.Physics.Display.Framerate)
	screen.Fini()
}
