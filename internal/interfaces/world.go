package interfaces

import (
	"garden-defense/internal/types"
	"garden-defense/internal/utils"
)

// Sighting is one entity reported by a spatial query.
type Sighting struct {
	ID       types.EntityID
	Faction  types.Faction
	Position utils.Vec3
}

// WorldQuery answers read-only spatial queries. Implementations must be safe
// to call repeatedly within a tick.
type WorldQuery interface {
	QueryNearby(position utils.Vec3, radius float64) []Sighting
}

// Navigation is the pathfinding service that moves agents over the navigable surface.
type Navigation interface {
	// SampleNearestNavigable snaps point to the surface; false if nothing is within maxDistance.
	SampleNearestNavigable(point utils.Vec3, maxDistance float64) (utils.Vec3, bool)
	SetDestination(agent types.EntityID, position utils.Vec3)
	// RemainingDistance is zero for an agent without a destination.
	RemainingDistance(agent types.EntityID) float64
	StoppingDistance(agent types.EntityID) float64
	Stop(agent types.EntityID)
}

// Spawner creates entities from prefabs.
type Spawner interface {
	Spawn(prefab types.PrefabID, position utils.Vec3, yaw float64) types.EntityID
}

// ImpulseSink applies instantaneous impulses to physics bodies.
type ImpulseSink interface {
	ApplyImpulse(id types.EntityID, direction utils.Vec3, magnitude float64)
}

// PhysicsBody is one ragdoll sub-body. Simulated bodies are driven by physics
// instead of animation (kinematic flag off).
type PhysicsBody interface {
	SetSimulated(simulated bool)
	Simulated() bool
}
