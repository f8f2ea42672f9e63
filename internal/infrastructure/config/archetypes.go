package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/hero/internal/domain/entity"
)

// ArchetypesConfig is the root of archetypes.yaml, keyed by archetype tag
type ArchetypesConfig map[string]ArchetypeConfig

type ArchetypeConfig struct {
	Size       SizeConfig                 `yaml:"size"`
	Speed      float64                    `yaml:"speed"`
	Health     int                        `yaml:"health"`
	Damage     int                        `yaml:"damage"`
	Knockback  float64                    `yaml:"knockback"`
	Value      int                        `yaml:"value"`
	Cooldown   int                        `yaml:"cooldown"`
	Windup     int                        `yaml:"windup"`
	DeathTicks int                        `yaml:"death_ticks"`
	LootAt     int                        `yaml:"loot_at"`
	Animations map[string]AnimationConfig `yaml:"animations"`
}

type SizeConfig struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type AnimationConfig struct {
	Frames   int  `yaml:"frames"`
	Duration int  `yaml:"duration"`
	Loop     bool `yaml:"loop"`
}

// Catalog converts the YAML table into a validated entity.Catalog.
// Unknown tags and missing actions are reported together.
func (c ArchetypesConfig) Catalog() (entity.Catalog, error) {
	catalog := make(entity.Catalog, len(c))
	var errs []error
	for tag, ac := range c {
		a, err := entity.ParseArchetype(tag)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		spec := entity.ArchetypeSpec{
			Size:       entity.Vec{X: ac.Size.W, Y: ac.Size.H},
			Speed:      ac.Speed,
			MaxHealth:  ac.Health,
			Damage:     ac.Damage,
			Knockback:  ac.Knockback,
			Value:      ac.Value,
			Cooldown:   ac.Cooldown,
			Windup:     ac.Windup,
			DeathTicks: ac.DeathTicks,
			LootAt:     ac.LootAt,
			Animations: make(map[entity.Action]entity.AnimationSpec, len(ac.Animations)),
		}
		for name, anim := range ac.Animations {
			act, err := entity.ParseAction(name)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", tag, err))
				continue
			}
			spec.Animations[act] = entity.AnimationSpec{
				Frames:   anim.Frames,
				Duration: anim.Duration,
				Loop:     anim.Loop,
			}
		}
		catalog[a] = spec
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}
