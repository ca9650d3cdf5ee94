// internal/defs/types.go
package defs

import (
	"image/color"

	"garden-defense/internal/utils"
)

// Visuals contains parameters for the top-down view.
type Visuals struct {
	Color  color.RGBA `yaml:"color"`
	Radius float64    `yaml:"radius"`
}

// Placement puts one entity of definition Def at Position.
type Placement struct {
	Def      string     `yaml:"def"`
	Position utils.Vec3 `yaml:"position"`
}
