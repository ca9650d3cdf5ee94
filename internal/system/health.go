// internal/system/health.go
package system

import (
	"log"

	"garden-defense/internal/component"
	"garden-defense/internal/config"
	"garden-defense/internal/entity"
	"garden-defense/internal/event"
	"garden-defense/internal/interfaces"
	"garden-defense/internal/types"
)

// ApplyDamage вычитает amount из здоровья и сообщает, произошёл ли на этом
// вызове переход Active → Dead. В состоянии Dead вызов ничего не меняет.
// Отрицательный урон считается нулевым: здоровье никогда не растёт.
func ApplyDamage(h *component.Health, amount int) bool {
	if h == nil || h.State == component.Dead {
		return false
	}
	if amount < 0 {
		amount = 0
	}
	h.Value -= amount
	if h.Value <= 0 {
		h.Value = 0
		h.State = component.Dead
		return true
	}
	return false
}

// ResetHealth is the external reset: full health, back to Active.
func ResetHealth(h *component.Health) {
	h.Value = h.Max
	h.State = component.Active
}

// HealthSystem применяет урон и переводит погибших в рэгдолл.
type HealthSystem struct {
	ecs             *entity.ECS
	nav             interfaces.Navigation
	eventDispatcher *event.Dispatcher
}

func NewHealthSystem(ecs *entity.ECS, nav interfaces.Navigation, eventDispatcher *event.Dispatcher) *HealthSystem {
	return &HealthSystem{ecs: ecs, nav: nav, eventDispatcher: eventDispatcher}
}

// Damage наносит урон сущности и, если она погибла, выключает её.
func (s *HealthSystem) Damage(id types.EntityID, amount int) {
	health, ok := s.ecs.Healths[id]
	if !ok || health.State == component.Dead {
		return
	}
	died := ApplyDamage(health, amount)

	s.ecs.DamageFlashes[id] = &component.DamageFlash{Countdown: component.Countdown{
		Timer:    config.DamageFlashDuration,
		Duration: config.DamageFlashDuration,
	}}
	s.eventDispatcher.Dispatch(event.Event{Type: event.ZombieHit, Data: event.HitData{
		Target:     id,
		Damage:     amount,
		HealthLeft: health.Value,
	}})

	if died {
		s.kill(id)
	}
}

// kill выключает передвижение и коллайдер движения и отдаёт все части тела физике.
func (s *HealthSystem) kill(id types.EntityID) {
	if loc, ok := s.ecs.Locomotions[id]; ok {
		loc.Enabled = false
	}
	s.nav.Stop(id)
	if collider, ok := s.ecs.Colliders[id]; ok {
		collider.Enabled = false
	}
	if ragdoll, ok := s.ecs.Ragdolls[id]; ok {
		for _, body := range ragdoll.Bodies {
			body.SetSimulated(true)
		}
	}
	delete(s.ecs.DamageFlashes, id)

	log.Printf("HealthSystem: entity %d died at t=%.2f", id, s.ecs.GameTime)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ZombieKilled, Data: id})
}

// Revive returns a dead entity to Active with full health and re-enables its
// movement and collider. Ragdoll bodies go back to kinematic.
func (s *HealthSystem) Revive(id types.EntityID) {
	health, ok := s.ecs.Healths[id]
	if !ok {
		return
	}
	ResetHealth(health)
	if loc, ok := s.ecs.Locomotions[id]; ok {
		loc.Enabled = true
	}
	if collider, ok := s.ecs.Colliders[id]; ok {
		collider.Enabled = true
	}
	if ragdoll, ok := s.ecs.Ragdolls[id]; ok {
		for _, body := range ragdoll.Bodies {
			body.SetSimulated(false)
		}
	}
}
