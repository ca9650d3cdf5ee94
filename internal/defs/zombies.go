// internal/defs/zombies.go
package defs

import (
	"fmt"

	"garden-defense/internal/component"
	"garden-defense/internal/utils"
)

// ZombieDefinition holds all the static data for a specific type of zombie.
type ZombieDefinition struct {
	ID               string        `yaml:"id"`
	Name             string        `yaml:"name"`
	Health           int           `yaml:"health"`
	DamageToTake     int           `yaml:"damage_to_take"`
	Speed            float64       `yaml:"speed"`
	ColliderRadius   float64       `yaml:"collider_radius"`
	ColliderHeight   float64       `yaml:"collider_height"`
	StoppingDistance float64       `yaml:"stopping_distance"`
	Strategy         string        `yaml:"strategy"` // "wander" or "goal"
	WanderRadius     float64       `yaml:"wander_radius"`
	WanderTimer      float64       `yaml:"wander_timer"`
	ImpactMarker     string        `yaml:"impact_marker"`
	RagdollParts     []RagdollPart `yaml:"ragdoll_parts"`
	Visuals          Visuals       `yaml:"visuals"`
}

// RagdollPart is one sub-body of the zombie, offset from the entity root.
type RagdollPart struct {
	Name   string     `yaml:"name"`
	Offset utils.Vec3 `yaml:"offset"`
}

// WanderStrategy maps the strategy tag onto the component enum.
func (z ZombieDefinition) WanderStrategy() (component.WanderStrategy, error) {
	switch z.Strategy {
	case "", "wander":
		return component.StrategyWander, nil
	case "goal":
		return component.StrategyGoal, nil
	default:
		return component.StrategyWander, fmt.Errorf("zombie %q: unknown strategy %q", z.ID, z.Strategy)
	}
}
