// internal/entity/ecs.go
package entity

import (
	"sort"

	"garden-defense/internal/component"
	"garden-defense/internal/types"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Transforms    map[types.EntityID]*component.Transform
	Velocities    map[types.EntityID]*component.Velocity
	Factions      map[types.EntityID]types.Faction
	Healths       map[types.EntityID]*component.Health
	Combats       map[types.EntityID]*component.Combat
	Plants        map[types.EntityID]*component.Plant
	Zombies       map[types.EntityID]*component.Zombie
	Projectiles   map[types.EntityID]*component.Projectile
	Locomotions   map[types.EntityID]*component.Locomotion
	Colliders     map[types.EntityID]*component.Collider
	Wanders       map[types.EntityID]*component.Wander
	Ragdolls      map[types.EntityID]*component.Ragdoll
	DamageFlashes map[types.EntityID]*component.DamageFlash
	ImpactMarkers map[types.EntityID]*component.ImpactMarker
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Transforms:    make(map[types.EntityID]*component.Transform),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Factions:      make(map[types.EntityID]types.Faction),
		Healths:       make(map[types.EntityID]*component.Health),
		Combats:       make(map[types.EntityID]*component.Combat),
		Plants:        make(map[types.EntityID]*component.Plant),
		Zombies:       make(map[types.EntityID]*component.Zombie),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Locomotions:   make(map[types.EntityID]*component.Locomotion),
		Colliders:     make(map[types.EntityID]*component.Collider),
		Wanders:       make(map[types.EntityID]*component.Wander),
		Ragdolls:      make(map[types.EntityID]*component.Ragdoll),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		ImpactMarkers: make(map[types.EntityID]*component.ImpactMarker),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Exists сообщает, жива ли сущность в мире. Все слабые ссылки проверяются через неё.
func (ecs *ECS) Exists(id types.EntityID) bool {
	if id == 0 {
		return false
	}
	_, ok := ecs.Transforms[id]
	return ok
}

// RemoveEntity удаляет сущность из всех хранилищ компонентов.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Transforms, id)
	delete(ecs.Velocities, id)
	delete(ecs.Factions, id)
	delete(ecs.Healths, id)
	delete(ecs.Combats, id)
	delete(ecs.Plants, id)
	delete(ecs.Zombies, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Locomotions, id)
	delete(ecs.Colliders, id)
	delete(ecs.Wanders, id)
	delete(ecs.Ragdolls, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.ImpactMarkers, id)
}

// SortedIDs returns the keys of a component store in ascending order so that
// systems visit entities deterministically for a given seed.
func SortedIDs[T any](store map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(store))
	for id := range store {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
