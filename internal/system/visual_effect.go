package system

import (
	"garden-defense/internal/component"
	"garden-defense/internal/entity"
	"garden-defense/internal/types"
)

// VisualEffectSystem отсчитывает косметические эффекты: вспышка урона снимается
// с сущности, отметка попадания удаляется вместе со своей сущностью.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

func (s *VisualEffectSystem) Update(deltaTime float64) {
	for _, id := range expired(s.ecs.DamageFlashes, deltaTime, func(f *component.DamageFlash) *component.Countdown { return &f.Countdown }) {
		delete(s.ecs.DamageFlashes, id)
	}
	for _, id := range expired(s.ecs.ImpactMarkers, deltaTime, func(m *component.ImpactMarker) *component.Countdown { return &m.Countdown }) {
		s.ecs.RemoveEntity(id)
	}
}

// expired уменьшает таймеры и возвращает сущности, у которых время вышло.
func expired[T any](store map[types.EntityID]*T, deltaTime float64, countdown func(*T) *component.Countdown) []types.EntityID {
	var done []types.EntityID
	for _, id := range entity.SortedIDs(store) {
		c := countdown(store[id])
		c.Timer -= deltaTime
		if c.Timer <= 0 {
			done = append(done, id)
		}
	}
	return done
}
