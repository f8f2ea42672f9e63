// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/hero/internal/application/scene"
	"github.com/younwookim/hero/internal/application/state"
	"github.com/younwookim/hero/internal/application/system"
	"github.com/younwookim/hero/internal/domain/entity"
	"github.com/younwookim/hero/internal/infrastructure/config"
	"github.com/younwookim/hero/internal/infrastructure/save"
)

// cameraLag is how many ticks the camera takes to close the gap to the player
const cameraLag = 30

// Options configure a Playing scene
type Options struct {
	Loader  *config.Loader
	Config  *config.GameConfig
	Level   int
	Audio   system.Audio    // nil plays nothing
	Store   *save.Store     // nil disables progress saving
	Watcher *config.Watcher // nil disables hot reload
	Seed    int64           // 0 picks a time-based seed per run

	RecordPath string // empty disables recording
}

// controls are the scene-level keys read each tick
type controls struct {
	pause      bool
	retry      bool
	next       bool
	saveReplay bool
}

// Playing is the main gameplay scene
type Playing struct {
	loader   *config.Loader
	config   *config.GameConfig
	levelCfg *config.LevelConfig
	level    int

	session     *system.Session
	state       state.GameState
	inputSystem *system.InputSystem
	audio       system.Audio
	wallet      *system.Wallet

	store    *save.Store
	progress *save.Game
	watcher  *config.Watcher

	screenW int
	screenH int
	camX    float64
	camY    float64

	// Deterministic RNG
	fixedSeed int64
	seed      int64

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a Playing scene on opts.Level
func New(opts Options) (*Playing, error) {
	if opts.Loader == nil || opts.Config == nil {
		return nil, errors.New("playing: loader and config are required")
	}
	if opts.Level <= 0 {
		opts.Level = 1
	}

	p := &Playing{
		loader:         opts.Loader,
		config:         opts.Config,
		level:          opts.Level,
		state:          state.StatePlaying,
		inputSystem:    system.NewInputSystem(),
		audio:          opts.Audio,
		wallet:         &system.Wallet{},
		store:          opts.Store,
		watcher:        opts.Watcher,
		screenW:        opts.Config.Physics.Display.ScreenWidth,
		screenH:        opts.Config.Physics.Display.ScreenHeight,
		fixedSeed:      opts.Seed,
		recordFilename: opts.RecordPath,
	}

	if p.store != nil {
		p.progress = p.store.Load()
		p.wallet.Coins = p.progress.Coin
		p.wallet.Potions = p.progress.Potions
	}

	levelCfg, found := system.LoadLevel(p.loader, p.level)
	if !found {
		log.Printf("Level %d not found, starting with an empty grid", p.level)
	}
	p.levelCfg = levelCfg
	p.startRun()

	return p, nil
}

// startRun builds a fresh session for the current level with a new seed
func (p *Playing) startRun() {
	p.seed = p.fixedSeed
	if p.seed == 0 {
		p.seed = time.Now().UnixNano()
	}

	grid := system.LoadGrid(p.levelCfg, p.config.Physics.World)
	p.session = system.NewSession(p.config.Physics, p.config.Catalog, grid, system.Deps{
		Audio:  p.audio,
		Rand:   rand.New(rand.NewSource(p.seed)),
		Wallet: p.wallet,
	})
	p.state = state.StatePlaying
	p.centerCamera()

	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.seed, p.level, *p.wallet)
		log.Printf("Recording level %d (seed: %d)", p.level, p.seed)
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	c := controls{
		pause:      inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		retry:      inpututil.IsKeyJustPressed(ebiten.KeyZ) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		next:       inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		saveReplay: inpututil.IsKeyJustPressed(ebiten.KeyF5),
	}
	var in system.Input
	if p.state == state.StatePlaying {
		in = p.inputSystem.GetInput()
	}
	return p.update(c, in)
}

func (p *Playing) update(c controls, in system.Input) (scene.Scene, error) {
	p.pollWatcher()

	switch p.state {
	case state.StatePlaying:
		if c.pause {
			p.state = state.TogglePause(p.state)
			return nil, nil
		}
		if c.saveReplay {
			p.saveRecording()
		}
		p.step(in)
	case state.StatePaused:
		if c.pause {
			p.state = state.TogglePause(p.state)
		}
	case state.StateGameOver:
		if c.retry {
			p.retry()
		}
	case state.StateLevelComplete:
		if c.next {
			return nil, p.advance()
		}
	}

	return nil, nil // nil = stay on this scene
}

// step simulates one tick and settles the run state
func (p *Playing) step(in system.Input) {
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}
	p.session.Step(in)
	p.follow()

	p.state = state.Settle(p.state, p.session.Over(), p.session.Complete())
	switch p.state {
	case state.StateGameOver:
		p.saveRecording()
	case state.StateLevelComplete:
		p.completeLevel()
	}
}

// completeLevel keeps the coins earned and unlocks the next map
func (p *Playing) completeLevel() {
	p.wallet.Commit()
	p.saveRecording()

	if p.store == nil {
		return
	}
	p.progress.Unlock(p.level + 1)
	p.progress.Coin = p.wallet.Coins
	p.progress.Potions = p.wallet.Potions
	if err := p.store.Save(p.progress); err != nil {
		log.Printf("Failed to save progress: %v", err)
	}
}

// retry replays the current level, taking back the coins earned in it
func (p *Playing) retry() {
	p.wallet.Rollback()
	p.startRun()
}

// advance moves to the next level. Running out of levels ends the game.
func (p *Playing) advance() error {
	next := p.level + 1
	levelCfg, found := system.LoadLevel(p.loader, next)
	if !found {
		log.Printf("Level %d complete, no more levels", p.level)
		return scene.ErrQuit
	}

	p.level = next
	p.levelCfg = levelCfg
	p.startRun()
	return nil
}

// pollWatcher applies at most one pending config change without blocking
func (p *Playing) pollWatcher() {
	if p.watcher == nil {
		return
	}
	select {
	case path, ok := <-p.watcher.Events:
		if !ok {
			p.watcher = nil
			return
		}
		p.reload(path)
	case err, ok := <-p.watcher.Errors:
		if ok {
			log.Printf("config watcher: %v", err)
		}
	default:
	}
}

// reload re-reads every config and restarts the level. A broken edit keeps the old config.
func (p *Playing) reload(path string) {
	cfg, err := p.loader.LoadAll()
	if err != nil {
		log.Printf("Reload of %s failed, keeping current config: %v", path, err)
		return
	}
	levelCfg, err := p.loader.LoadLevel(p.level)
	if err != nil {
		log.Printf("Reload of %s failed, keeping current config: %v", path, err)
		return
	}

	p.config = cfg
	p.levelCfg = levelCfg
	p.wallet.Rollback()
	p.startRun()
	log.Printf("Config reloaded (%s), level %d restarted", path, p.level)
}

// follow eases the camera toward the player and keeps it inside the level
func (p *Playing) follow() {
	target := p.cameraTarget()
	p.camX += (target.X - p.camX) / cameraLag
	p.camY += (target.Y - p.camY) / cameraLag
	p.clampCamera()
}

func (p *Playing) centerCamera() {
	target := p.cameraTarget()
	p.camX, p.camY = target.X, target.Y
	p.clampCamera()
}

func (p *Playing) cameraTarget() entity.Vec {
	c := p.session.Player().Center()
	return entity.Vec{X: c.X - float64(p.screenW)/2, Y: c.Y - float64(p.screenH)/2}
}

// clampCamera keeps the view inside the tile bounds when the level is larger than the screen
func (p *Playing) clampCamera() {
	grid := p.session.Grid()
	lo, hi, ok := grid.Bounds()
	if !ok {
		return
	}
	ts := float64(grid.TileSize)
	minX, minY := float64(lo.X)*ts, float64(lo.Y)*ts
	maxX := float64(hi.X+1)*ts - float64(p.screenW)
	maxY := float64(hi.Y+1)*ts - float64(p.screenH)
	if maxX > minX {
		p.camX = math.Max(minX, math.Min(p.camX, maxX))
	}
	if maxY > minY {
		p.camY = math.Max(minY, math.Min(p.camY, maxY))
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// State returns the current run state
func (p *Playing) State() state.GameState {
	return p.state
}

// Session returns the running simulation
func (p *Playing) Session() *system.Session {
	return p.session
}

// Level returns the current level number
func (p *Playing) Level() int {
	return p.level
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.watcher != nil {
		_ = p.watcher.Close()
	}
}
