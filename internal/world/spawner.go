// internal/world/spawner.go
package world

import (
	"log"

	"garden-defense/internal/component"
	"garden-defense/internal/defs"
	"garden-defense/internal/entity"
	"garden-defense/internal/types"
	"garden-defense/internal/utils"
)

// Spawner создаёт снаряды и отметки попаданий по определениям из библиотеки.
type Spawner struct {
	ecs *entity.ECS
	lib *defs.Library
}

func NewSpawner(ecs *entity.ECS, lib *defs.Library) *Spawner {
	return &Spawner{ecs: ecs, lib: lib}
}

// Has сообщает, известен ли префаб.
func (s *Spawner) Has(prefab types.PrefabID) bool {
	return s.lib.HasPrefab(prefab)
}

// Spawn возвращает 0, если префаб неизвестен.
func (s *Spawner) Spawn(prefab types.PrefabID, position utils.Vec3, yaw float64) types.EntityID {
	if def, ok := s.lib.Projectiles[string(prefab)]; ok {
		id := s.ecs.NewEntity()
		s.ecs.Transforms[id] = &component.Transform{Position: position, Yaw: yaw}
		s.ecs.Velocities[id] = &component.Velocity{}
		s.ecs.Factions[id] = types.FactionProjectile
		s.ecs.Projectiles[id] = &component.Projectile{
			Radius:       def.Radius,
			Mass:         def.Mass,
			GravityScale: def.GravityScale,
			Lifetime:     def.Lifetime,
		}
		return id
	}
	if def, ok := s.lib.Markers[string(prefab)]; ok {
		id := s.ecs.NewEntity()
		s.ecs.Transforms[id] = &component.Transform{Position: position, Yaw: yaw}
		s.ecs.ImpactMarkers[id] = &component.ImpactMarker{
			Countdown: component.Countdown{Timer: def.Lifetime, Duration: def.Lifetime},
		}
		return id
	}
	log.Printf("Spawner: unknown prefab %q", prefab)
	return 0
}
