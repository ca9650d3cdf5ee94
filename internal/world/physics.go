// internal/world/physics.go
package world

import (
	"math"

	"garden-defense/internal/config"
	"garden-defense/internal/entity"
	"garden-defense/internal/event"
	"garden-defense/internal/types"
	"garden-defense/internal/utils"
)

// Physics ведёт снаряды по баллистике, ищет их пересечения с коллайдерами и
// досчитывает падение рэгдоллов.
type Physics struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	Gravity         float64
}

func NewPhysics(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *Physics {
	return &Physics{ecs: ecs, eventDispatcher: eventDispatcher, Gravity: config.Gravity}
}

// ApplyImpulse переводит силу в изменение скорости как AddForce за один
// физический шаг: Δv = direction * magnitude * ForceTimestep / mass.
func (p *Physics) ApplyImpulse(id types.EntityID, direction utils.Vec3, magnitude float64) {
	vel, ok := p.ecs.Velocities[id]
	if !ok {
		return
	}
	mass := 1.0
	if proj, ok := p.ecs.Projectiles[id]; ok && proj.Mass > 0 {
		mass = proj.Mass
	}
	vel.Linear = vel.Linear.Add(direction.Scale(magnitude * config.ForceTimestep / mass))
}

func (p *Physics) Step(deltaTime float64) {
	for _, id := range entity.SortedIDs(p.ecs.Projectiles) {
		proj := p.ecs.Projectiles[id]
		tr, okT := p.ecs.Transforms[id]
		vel, okV := p.ecs.Velocities[id]
		if !okT || !okV {
			continue
		}

		vel.Linear.Y -= p.Gravity * proj.GravityScale * deltaTime
		from := tr.Position
		to := from.Add(vel.Linear.Scale(deltaTime))
		tr.Position = to
		proj.Lifetime -= deltaTime

		if target, contact, hit := p.sweep(id, from, to, proj.Radius, proj.Owner); hit {
			p.eventDispatcher.Dispatch(event.Event{Type: event.Collision, Data: event.CollisionData{
				Self:    target,
				Other:   id,
				Contact: contact,
			}})
			if !p.ecs.Exists(id) {
				continue
			}
		}

		if proj.Lifetime <= 0 || to.Y < 0 || to.Flat().Length() > config.ArenaLimit {
			p.ecs.RemoveEntity(id)
		}
	}

	for _, id := range entity.SortedIDs(p.ecs.Ragdolls) {
		for _, body := range p.ecs.Ragdolls[id].Bodies {
			if settler, ok := body.(*RagdollBody); ok {
				settler.Settle(deltaTime)
			}
		}
	}
}

// sweep находит первый включённый коллайдер, который задевает отрезок from→to.
// Владелец снаряда пропускается.
func (p *Physics) sweep(projID types.EntityID, from, to utils.Vec3, radius float64, owner types.EntityID) (types.EntityID, utils.Vec3, bool) {
	var (
		hitID   types.EntityID
		contact utils.Vec3
		bestT   = math.Inf(1)
	)
	segment := to.Sub(from)
	lengthSq := segment.LengthSq()
	for _, id := range entity.SortedIDs(p.ecs.Colliders) {
		if id == projID || id == owner {
			continue
		}
		collider := p.ecs.Colliders[id]
		if !collider.Enabled {
			continue
		}
		tr, ok := p.ecs.Transforms[id]
		if !ok {
			continue
		}
		center := tr.Position.Add(utils.Vec3{Y: collider.Height})

		t := 0.0
		if lengthSq > 0 {
			rel := center.Sub(from)
			t = (rel.X*segment.X + rel.Y*segment.Y + rel.Z*segment.Z) / lengthSq
			t = math.Max(0, math.Min(1, t))
		}
		closest := from.Add(segment.Scale(t))
		if utils.Distance(closest, center) > collider.Radius+radius {
			continue
		}
		if t < bestT {
			bestT = t
			hitID = id
			contact = center.Add(closest.Sub(center).Normalize().Scale(collider.Radius))
		}
	}
	return hitID, contact, hitID != 0
}
