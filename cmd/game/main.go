package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/hero/cmd/game/configs"
	"github.com/younwookim/hero/internal/application/game"
	"github.com/younwookim/hero/internal/application/scene"
	"github.com/younwookim/hero/internal/application/scene/playing"
	"github.com/younwookim/hero/internal/infrastructure/config"
	"github.com/younwookim/hero/internal/infrastructure/save"
	"github.com/younwookim/hero/internal/infrastructure/sound"
)

const sampleRate = 44100

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Load configs from a directory and hot reload them (default: embedded)")
	levelFlag := flag.Int("level", 0, "Start on this level (default: continue from the save file)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Re-simulate a recording headlessly and print a summary")
	saveFlag := flag.String("save", filepath.Join("save_game", "save.json"), "Progress file")
	sfxFlag := flag.String("sfx", "", "Directory holding sfx/<name>.wav clips (default: synthesized tones)")
	flag.Parse()

	loader := newLoader(*configDir)
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		summary, err := RunReplayFile(loader, cfg, *replayFlag)
		if err != nil {
			log.Fatalf("Failed to replay: %v", err)
		}
		fmt.Println(summary)
		return
	}

	store := save.NewStore(*saveFlag, loader.LevelCount())
	level := *levelFlag
	if level <= 0 {
		level = store.Load().Continue()
	}

	var watcher *config.Watcher
	if *configDir != "" {
		dir := loader.BasePath()
		watcher, err = config.NewWatcher(dir, filepath.Join(dir, "maps"))
		if err != nil {
			log.Printf("Hot reload disabled: %v", err)
		}
	}

	var sfx fs.FS
	if *sfxFlag != "" {
		sfx = os.DirFS(*sfxFlag)
	}

	p, err := playing.New(playing.Options{
		Loader:     loader,
		Config:     cfg,
		Level:      level,
		Audio:      sound.NewEbiten(audio.NewContext(sampleRate), sfx),
		Store:      store,
		Watcher:    watcher,
		RecordPath: *recordFlag,
	})
	if err != nil {
		log.Fatalf("Failed to start level %d: %v", level, err)
	}

	g := game.New(p, cfg.Physics.Display)
	if err := g.Run("The Hero"); err != nil && !errors.Is(err, scene.ErrQuit) {
		log.Fatal(err)
	}
}

// newLoader reads configs from dir, or from the embedded defaults when dir is empty
func newLoader(dir string) *config.Loader {
	if dir != "" {
		return config.NewLoader(dir)
	}
	return config.NewFSLoader(configs.FS, "configs")
}
