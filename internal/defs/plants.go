// internal/defs/plants.go
package defs

import "garden-defense/internal/utils"

// PlantDefinition holds all the static data for a specific type of plant.
// Fire rate and fire point are deliberately not defaulted: a plant with a
// missing or non-positive value is reported at setup and stays inert.
type PlantDefinition struct {
	ID               string      `yaml:"id"`
	Name             string      `yaml:"name"`
	DetectionRange   float64     `yaml:"detection_range"`
	FireRate         float64     `yaml:"fire_rate"` // Shots per second
	TargetFaction    string      `yaml:"target_faction"`
	Projectile       string      `yaml:"projectile"`
	FirePoint        *utils.Vec3 `yaml:"fire_point"`
	LaunchForce      float64     `yaml:"launch_force"`
	RetargetInterval float64     `yaml:"retarget_interval"`
	Visuals          Visuals     `yaml:"visuals"`
}

// ProjectileDefinition describes a spawnable projectile prefab.
type ProjectileDefinition struct {
	ID           string  `yaml:"id"`
	Mass         float64 `yaml:"mass"`
	Radius       float64 `yaml:"radius"`
	GravityScale float64 `yaml:"gravity_scale"`
	Lifetime     float64 `yaml:"lifetime"`
}

// MarkerDefinition describes a cosmetic impact marker prefab.
type MarkerDefinition struct {
	ID       string  `yaml:"id"`
	Lifetime float64 `yaml:"lifetime"`
}
