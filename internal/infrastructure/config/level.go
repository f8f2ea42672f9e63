package config

import "errors"

// ErrLevelNotFound is returned when a map file does not exist
var ErrLevelNotFound = errors.New("level not found")

// LevelConfig is the root config for maps/map{N}.json
type LevelConfig struct {
	Tilemap  map[string]TileConfig `json:"tilemap"`
	TileSize int                   `json:"tile_size"`
	Offgrid  []OffGridConfig       `json:"offgrid"`
}

// TileConfig is a grid tile entry; Pos is in tile units
type TileConfig struct {
	Type    string `json:"type"`
	Variant int    `json:"variant"`
	Pos     [2]int `json:"pos"`
}

// OffGridConfig is a decorative tile; Pos is in pixels
type OffGridConfig struct {
	Type    string     `json:"type"`
	Variant int        `json:"variant"`
	Pos     [2]float64 `json:"pos"`
}
