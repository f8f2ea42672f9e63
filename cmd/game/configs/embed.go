// Package configs embeds the default game configuration
package configs

import "embed"

// FS holds physics.json, archetypes.yaml and the level maps
//
//go:embed physics.json archetypes.yaml maps/*.json
var FS embed.FS
