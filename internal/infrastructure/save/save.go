// Package save persists campaign progress between runs.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
)

// Game is the persisted progress: unlocked maps and the wallet
type Game struct {
	Maps    map[string]bool `json:"maps"`
	Coin    int             `json:"coin"`
	Potions int             `json:"potions"`
}

// NewGame returns fresh progress with only the first of levels maps unlocked
func NewGame(levels int) *Game {
	g := &Game{Maps: make(map[string]bool, levels)}
	for n := 1; n <= levels; n++ {
		g.Maps[strconv.Itoa(n)] = n == 1
	}
	return g
}

// Unlock marks map n as playable
func (g *Game) Unlock(n int) {
	if g.Maps == nil {
		g.Maps = make(map[string]bool)
	}
	g.Maps[strconv.Itoa(n)] = true
}

// Unlocked reports whether map n is playable. Map 1 always is.
func (g *Game) Unlocked(n int) bool {
	return n == 1 || g.Maps[strconv.Itoa(n)]
}

// Continue returns the last map of the unbroken unlocked run starting at 1
func (g *Game) Continue() int {
	n := 1
	for g.Unlocked(n + 1) {
		n++
	}
	return n
}

// Store reads and writes progress as a JSON file
type Store struct {
	path   string
	levels int
}

// NewStore creates a store for the file at path.
// levels is the number of maps a new game knows about.
func NewStore(path string, levels int) *Store {
	return &Store{path: path, levels: levels}
}

// Path returns the save file location
func (s *Store) Path() string {
	return s.path
}

// Load reads the save file. A missing or unreadable file yields a new game.
func (s *Store) Load() *Game {
	g, err := s.read()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("save: %v, starting a new game", err)
		}
		return NewGame(s.levels)
	}
	return g
}

func (s *Store) read() (*Game, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read save: %w", err)
	}
	var g Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("failed to decode save: %w", err)
	}
	if g.Maps == nil {
		return nil, fmt.Errorf("failed to decode save: no maps")
	}
	return &g, nil
}

// Save writes g to the save file, creating its directory if needed
func (s *Store) Save(g *Game) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create save dir: %w", err)
		}
	}

	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(g); err != nil {
		return fmt.Errorf("failed to encode save: %w", err)
	}
	return nil
}
