package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/hero/internal/domain/entity"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics *PhysicsConfig
	Catalog entity.Catalog
}

// Loader loads game configuration using the fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	var cfg PhysicsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}

	return &cfg, nil
}

// LoadArchetypes loads archetypes.yaml
func (l *Loader) LoadArchetypes() (ArchetypesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "archetypes.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read archetypes.yaml: %w", err)
	}

	var cfg ArchetypesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse archetypes.yaml: %w", err)
	}

	return cfg, nil
}

// LoadLevel loads maps/map{n}.json
func (l *Loader) LoadLevel(n int) (*LevelConfig, error) {
	path := "maps/map" + strconv.Itoa(n) + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrLevelNotFound, path)
		}
		return nil, fmt.Errorf("failed to read level %d: %w", n, err)
	}

	var cfg LevelConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %d: %w", n, err)
	}

	return &cfg, nil
}

// LevelCount returns how many consecutive maps exist starting at map1
func (l *Loader) LevelCount() int {
	n := 0
	for {
		if _, err := fs.Stat(l.fsys, "maps/map"+strconv.Itoa(n+1)+".json"); err != nil {
			return n
		}
		n++
	}
}

// LoadAll loads physics and the validated archetype catalog
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	archetypes, err := l.LoadArchetypes()
	if err != nil {
		return nil, err
	}

	catalog, err := archetypes.Catalog()
	if err != nil {
		return nil, fmt.Errorf("invalid archetypes.yaml: %w", err)
	}

	return &GameConfig{
		Physics: physics,
		Catalog: catalog,
	}, nil
}
