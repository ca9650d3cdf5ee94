// internal/app/spawn.go
package app

import (
	"fmt"
	"math"

	"garden-defense/internal/component"
	"garden-defense/internal/defs"
	"garden-defense/internal/interfaces"
	"garden-defense/internal/types"
	"garden-defense/internal/utils"
	"garden-defense/internal/world"
)

// PlacePlant создаёт растение по определению. Некорректные параметры стрельбы
// не мешают размещению: такое растение станет инертным при Setup.
func (g *Game) PlacePlant(defID string, position utils.Vec3) (types.EntityID, error) {
	def, ok := g.Library.Plants[defID]
	if !ok {
		return 0, fmt.Errorf("unknown plant %q", defID)
	}
	faction, err := types.ParseFaction(def.TargetFaction)
	if err != nil {
		return 0, fmt.Errorf("plant %q: %w", defID, err)
	}

	id := g.ECS.NewEntity()
	g.ECS.Transforms[id] = &component.Transform{Position: position}
	g.ECS.Factions[id] = types.FactionPlant
	g.ECS.Plants[id] = &component.Plant{DefID: defID}

	var firePoint *utils.Vec3
	if def.FirePoint != nil {
		fp := *def.FirePoint
		firePoint = &fp
	}
	g.ECS.Combats[id] = &component.Combat{
		DetectionRange:   def.DetectionRange,
		TargetFaction:    faction,
		FireRate:         def.FireRate,
		LaunchForce:      def.LaunchForce,
		ProjectilePrefab: types.PrefabID(def.Projectile),
		FirePoint:        firePoint,
		RetargetInterval: def.RetargetInterval,
	}
	return id, nil
}

// PlaceZombie создаёт зомби по определению в ближайшей к position точке
// навигационной поверхности.
func (g *Game) PlaceZombie(defID string, position utils.Vec3) (types.EntityID, error) {
	def, ok := g.Library.Zombies[defID]
	if !ok {
		return 0, fmt.Errorf("unknown zombie %q", defID)
	}
	strategy, err := def.WanderStrategy()
	if err != nil {
		return 0, err
	}
	snapped, ok := g.NavMesh.SampleNearestNavigable(position, math.Max(def.WanderRadius, 2*g.NavMesh.Map.HexSize))
	if !ok {
		return 0, fmt.Errorf("zombie %q: no navigable point near (%.1f, %.1f)", defID, position.X, position.Z)
	}

	id := g.ECS.NewEntity()
	g.ECS.Transforms[id] = &component.Transform{Position: snapped, Yaw: utils.YawTowards(snapped, g.Goal)}
	g.ECS.Factions[id] = types.FactionZombie
	g.ECS.Zombies[id] = &component.Zombie{
		DefID:        defID,
		DamageToTake: def.DamageToTake,
		ImpactMarker: types.PrefabID(def.ImpactMarker),
	}
	g.ECS.Healths[id] = &component.Health{Value: def.Health, Max: def.Health, State: component.Active}
	g.ECS.Locomotions[id] = &component.Locomotion{Speed: def.Speed, Enabled: true}
	g.ECS.Colliders[id] = &component.Collider{Radius: def.ColliderRadius, Height: def.ColliderHeight, Enabled: true}
	g.ECS.Wanders[id] = &component.Wander{
		Strategy: strategy,
		Radius:   def.WanderRadius,
		Interval: def.WanderTimer,
	}

	bodies := make([]interfaces.PhysicsBody, 0, len(def.RagdollParts))
	for _, part := range def.RagdollParts {
		bodies = append(bodies, world.NewRagdollBody(part.Name, part.Offset))
	}
	g.ECS.Ragdolls[id] = &component.Ragdoll{Bodies: bodies}

	g.NavMesh.Register(id, def.StoppingDistance)
	return id, nil
}

// SpawnHorde разбрасывает Count зомби вокруг центра орды, выбирая тип по весам.
func (g *Game) SpawnHorde(h defs.HordeDefinition) error {
	weights := h.Weights()
	for i := 0; i < h.Count; i++ {
		defID := g.Rng.ChooseWeighted(weights)
		offset := g.Rng.InsideUnitSphere().Flat().Scale(h.Spread)
		if _, err := g.PlaceZombie(defID, h.Center.Add(offset)); err != nil {
			return err
		}
	}
	return nil
}
