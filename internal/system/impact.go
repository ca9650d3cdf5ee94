// internal/system/impact.go
package system

import (
	"garden-defense/internal/component"
	"garden-defense/internal/entity"
	"garden-defense/internal/event"
	"garden-defense/internal/interfaces"
	"garden-defense/internal/types"
	"garden-defense/internal/utils"
)

// ImpactSystem обрабатывает столкновения снарядов с сущностями.
type ImpactSystem struct {
	ecs     *entity.ECS
	spawner interfaces.Spawner
	health  *HealthSystem
}

func NewImpactSystem(ecs *entity.ECS, spawner interfaces.Spawner, health *HealthSystem, eventDispatcher *event.Dispatcher) *ImpactSystem {
	s := &ImpactSystem{ecs: ecs, spawner: spawner, health: health}
	eventDispatcher.Subscribe(event.Collision, s)
	return s
}

func (s *ImpactSystem) OnEvent(e event.Event) {
	if e.Type != event.Collision {
		return
	}
	if data, ok := e.Data.(event.CollisionData); ok {
		s.HandleCollision(data.Self, data.Other, data.Contact)
	}
}

// HandleCollision обрабатывает попадание снаряда other в сущность self.
// Порядок фиксирован: снаряд уничтожается, затем в точке контакта появляется
// отметка, затем наносится урон и проверяется смерть.
func (s *ImpactSystem) HandleCollision(self, other types.EntityID, contact utils.Vec3) {
	if _, isProjectile := s.ecs.Projectiles[other]; !isProjectile {
		return
	}
	s.ecs.RemoveEntity(other)

	zombie, isZombie := s.ecs.Zombies[self]
	health, hasHealth := s.ecs.Healths[self]
	if !isZombie || !hasHealth || health.State == component.Dead {
		return
	}

	if zombie.ImpactMarker != "" {
		s.spawner.Spawn(zombie.ImpactMarker, contact, 0)
	}
	s.health.Damage(self, zombie.DamageToTake)
}
