// internal/defs/scenario.go
package defs

import "garden-defense/internal/utils"

// ScenarioDefinition описывает стартовое состояние мира.
type ScenarioDefinition struct {
	Seed              int64             `yaml:"seed"`
	MapRadius         int               `yaml:"map_radius"`
	HexSize           float64           `yaml:"hex_size"`
	ObstacleThreshold float64           `yaml:"obstacle_threshold"`
	Goal              utils.Vec3        `yaml:"goal"` // общая цель зомби, задаётся один раз
	Plants            []Placement       `yaml:"plants"`
	Zombies           []Placement       `yaml:"zombies"`
	Hordes            []HordeDefinition `yaml:"hordes"`
}

// HordeDefinition описывает группу зомби, разбросанных вокруг точки.
type HordeDefinition struct {
	Count  int        `yaml:"count"`
	Center utils.Vec3 `yaml:"center"`
	Spread float64    `yaml:"spread"` // радиус разброса по земле
	Mix    []MixEntry `yaml:"mix"`
}

// MixEntry - вес одного типа зомби в орде.
type MixEntry struct {
	Def    string `yaml:"def"`
	Weight int    `yaml:"weight"`
}

// Weights converts the mix for utils.PRNGService.ChooseWeighted.
func (h HordeDefinition) Weights() []utils.Weighted {
	weights := make([]utils.Weighted, 0, len(h.Mix))
	for _, m := range h.Mix {
		weights = append(weights, utils.Weighted{ID: m.Def, Weight: m.Weight})
	}
	return weights
}
