// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"garden-defense/internal/config"
	"garden-defense/internal/types"
)

// file is the on-disk layout: lists keyed by id.
type file struct {
	Projectiles []ProjectileDefinition `yaml:"projectiles"`
	Markers     []MarkerDefinition     `yaml:"markers"`
	Plants      []PlantDefinition      `yaml:"plants"`
	Zombies     []ZombieDefinition     `yaml:"zombies"`
	Scenario    ScenarioDefinition     `yaml:"scenario"`
}

// Library holds all loaded definitions, keyed by their ID.
type Library struct {
	Projectiles map[string]ProjectileDefinition
	Markers     map[string]MarkerDefinition
	Plants      map[string]PlantDefinition
	Zombies     map[string]ZombieDefinition
	Scenario    ScenarioDefinition
}

// LoadDefinitions reads a YAML definitions file and validates it.
func LoadDefinitions(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	lib, err := ParseDefinitions(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Defs: loaded %d plants, %d zombies, %d projectiles from %s",
		len(lib.Plants), len(lib.Zombies), len(lib.Projectiles), path)
	return lib, nil
}

// Default parses the built-in scenario.
func Default() (*Library, error) {
	return ParseDefinitions([]byte(DefaultYAML))
}

// ParseDefinitions decodes definitions from YAML, fills defaults and validates.
func ParseDefinitions(data []byte) (*Library, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse definitions: %w", err)
	}

	lib := &Library{
		Projectiles: make(map[string]ProjectileDefinition),
		Markers:     make(map[string]MarkerDefinition),
		Plants:      make(map[string]PlantDefinition),
		Zombies:     make(map[string]ZombieDefinition),
		Scenario:    f.Scenario,
	}

	var errs []error
	for _, def := range f.Projectiles {
		if _, dup := lib.Projectiles[def.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate projectile id %q", def.ID))
			continue
		}
		lib.Projectiles[def.ID] = applyProjectileDefaults(def)
	}
	for _, def := range f.Markers {
		if _, dup := lib.Markers[def.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate marker id %q", def.ID))
			continue
		}
		if def.Lifetime <= 0 {
			def.Lifetime = config.ImpactMarkerLifetime
		}
		lib.Markers[def.ID] = def
	}
	for _, def := range f.Plants {
		if _, dup := lib.Plants[def.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate plant id %q", def.ID))
			continue
		}
		lib.Plants[def.ID] = applyPlantDefaults(def)
	}
	for _, def := range f.Zombies {
		if _, dup := lib.Zombies[def.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate zombie id %q", def.ID))
			continue
		}
		lib.Zombies[def.ID] = applyZombieDefaults(def)
	}
	applyScenarioDefaults(&lib.Scenario)

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid definitions: %w", errors.Join(errs...))
	}
	if err := lib.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definitions: %w", err)
	}
	return lib, nil
}

// HasPrefab сообщает, можно ли заспавнить префаб с таким идентификатором.
func (l *Library) HasPrefab(id types.PrefabID) bool {
	if _, ok := l.Projectiles[string(id)]; ok {
		return true
	}
	_, ok := l.Markers[string(id)]
	return ok
}

// Validate checks structural consistency. Plant firing parameters are not
// checked here: a misconfigured plant is reported at setup and left inert.
func (l *Library) Validate() error {
	var errs []error

	for id, p := range l.Projectiles {
		if id == "" {
			errs = append(errs, errors.New("projectile with empty id"))
		}
		if p.Mass <= 0 {
			errs = append(errs, fmt.Errorf("projectile %q: mass must be positive, got %.2f", id, p.Mass))
		}
		if p.Radius <= 0 {
			errs = append(errs, fmt.Errorf("projectile %q: radius must be positive, got %.2f", id, p.Radius))
		}
	}

	for id, p := range l.Plants {
		if id == "" {
			errs = append(errs, errors.New("plant with empty id"))
		}
		if _, err := types.ParseFaction(p.TargetFaction); err != nil {
			errs = append(errs, fmt.Errorf("plant %q: %w", id, err))
		}
		if p.DetectionRange < 0 {
			errs = append(errs, fmt.Errorf("plant %q: detection range must not be negative", id))
		}
	}

	for id, z := range l.Zombies {
		if id == "" {
			errs = append(errs, errors.New("zombie with empty id"))
		}
		if z.Health <= 0 {
			errs = append(errs, fmt.Errorf("zombie %q: health must be positive, got %d", id, z.Health))
		}
		if z.DamageToTake < 0 {
			errs = append(errs, fmt.Errorf("zombie %q: damage_to_take must not be negative, got %d", id, z.DamageToTake))
		}
		if _, err := z.WanderStrategy(); err != nil {
			errs = append(errs, err)
		}
		if z.ImpactMarker != "" && !l.HasPrefab(types.PrefabID(z.ImpactMarker)) {
			errs = append(errs, fmt.Errorf("zombie %q: unknown impact marker %q", id, z.ImpactMarker))
		}
	}

	s := l.Scenario
	if s.MapRadius <= 0 {
		errs = append(errs, fmt.Errorf("scenario: map radius must be positive, got %d", s.MapRadius))
	}
	if s.ObstacleThreshold < 0 || s.ObstacleThreshold > 1 {
		errs = append(errs, fmt.Errorf("scenario: obstacle threshold must be in [0, 1], got %.2f", s.ObstacleThreshold))
	}
	for i, p := range s.Plants {
		if _, ok := l.Plants[p.Def]; !ok {
			errs = append(errs, fmt.Errorf("scenario plant #%d: unknown plant %q", i, p.Def))
		}
	}
	for i, z := range s.Zombies {
		if _, ok := l.Zombies[z.Def]; !ok {
			errs = append(errs, fmt.Errorf("scenario zombie #%d: unknown zombie %q", i, z.Def))
		}
	}
	for i, h := range s.Hordes {
		if h.Count < 0 {
			errs = append(errs, fmt.Errorf("scenario horde #%d: negative count", i))
		}
		if h.Count > 0 && len(h.Mix) == 0 {
			errs = append(errs, fmt.Errorf("scenario horde #%d: empty mix", i))
		}
		for _, m := range h.Mix {
			if _, ok := l.Zombies[m.Def]; !ok {
				errs = append(errs, fmt.Errorf("scenario horde #%d: unknown zombie %q", i, m.Def))
			}
			if m.Weight < 0 {
				errs = append(errs, fmt.Errorf("scenario horde #%d: negative weight for %q", i, m.Def))
			}
		}
	}

	return errors.Join(errs...)
}

func applyProjectileDefaults(p ProjectileDefinition) ProjectileDefinition {
	if p.Lifetime <= 0 {
		p.Lifetime = config.ProjectileLifetime
	}
	return p
}

func applyPlantDefaults(p PlantDefinition) PlantDefinition {
	if p.DetectionRange == 0 {
		p.DetectionRange = config.DetectionRange
	}
	if p.TargetFaction == "" {
		p.TargetFaction = types.FactionZombie.String()
	}
	if p.LaunchForce == 0 {
		p.LaunchForce = config.LaunchForce
	}
	if p.RetargetInterval <= 0 {
		p.RetargetInterval = config.RetargetInterval
	}
	if p.Visuals.Color.A == 0 {
		p.Visuals.Color = config.PlantColor
	}
	if p.Visuals.Radius <= 0 {
		p.Visuals.Radius = 0.7
	}
	return p
}

func applyZombieDefaults(z ZombieDefinition) ZombieDefinition {
	if z.Health == 0 {
		z.Health = config.ZombieHealth
	}
	if z.DamageToTake == 0 {
		z.DamageToTake = config.DamageToTake
	}
	if z.Speed <= 0 {
		z.Speed = config.ZombieSpeed
	}
	if z.ColliderRadius <= 0 {
		z.ColliderRadius = config.ZombieColliderRadius
	}
	if z.ColliderHeight <= 0 {
		z.ColliderHeight = config.ZombieCenterHeight
	}
	if z.StoppingDistance <= 0 {
		z.StoppingDistance = config.StoppingDistance
	}
	if z.WanderRadius <= 0 {
		z.WanderRadius = config.WanderRadius
	}
	if z.WanderTimer <= 0 {
		z.WanderTimer = config.WanderTimer
	}
	if z.Visuals.Color.A == 0 {
		z.Visuals.Color = config.ZombieColor
	}
	if z.Visuals.Radius <= 0 {
		z.Visuals.Radius = z.ColliderRadius
	}
	return z
}

func applyScenarioDefaults(s *ScenarioDefinition) {
	if s.MapRadius == 0 {
		s.MapRadius = config.MapRadius
	}
	if s.HexSize <= 0 {
		s.HexSize = config.HexSize
	}
	if s.ObstacleThreshold == 0 {
		s.ObstacleThreshold = config.ObstacleThreshold
	}
}
