// internal/system/wander.go
package system

import (
	"garden-defense/internal/component"
	"garden-defense/internal/entity"
	"garden-defense/internal/event"
	"garden-defense/internal/interfaces"
	"garden-defense/internal/types"
	"garden-defense/internal/utils"
)

// RandomSource supplies the random offsets used for wander destinations.
type RandomSource interface {
	InsideUnitSphere() utils.Vec3
}

// WanderResult describes what one wander step did.
type WanderResult struct {
	Requested   bool
	Destination utils.Vec3
	Snapped     bool // false: no navigable point in range, previous destination kept
}

// StepWander advances the wander timer and, when it reaches the interval or the
// agent has arrived, requests a new random destination. The timer resets on
// every request whether or not the candidate could be snapped to the surface.
// Goal-seeking agents never reselect.
func StepWander(w *component.Wander, deltaTime float64, agent types.EntityID, position utils.Vec3, nav interfaces.Navigation, rng RandomSource) WanderResult {
	if w.Strategy == component.StrategyGoal {
		return WanderResult{}
	}
	w.Timer += deltaTime
	arrived := nav.RemainingDistance(agent) <= nav.StoppingDistance(agent)
	if w.Timer+timerEpsilon < w.Interval && !arrived {
		return WanderResult{}
	}
	w.Timer = 0

	candidate := position.Add(rng.InsideUnitSphere().Scale(w.Radius))
	result := WanderResult{Requested: true}
	if dest, ok := nav.SampleNearestNavigable(candidate, w.Radius); ok {
		nav.SetDestination(agent, dest)
		result.Destination = dest
		result.Snapped = true
	}
	return result
}

// AssignGoal sends a goal-seeking agent to the shared goal. Called once at spawn.
func AssignGoal(w *component.Wander, agent types.EntityID, goal utils.Vec3, nav interfaces.Navigation) bool {
	if w.Strategy != component.StrategyGoal {
		return false
	}
	nav.SetDestination(agent, goal)
	return true
}

// WanderSystem ведёт зомби по навигационной поверхности.
type WanderSystem struct {
	ecs             *entity.ECS
	nav             interfaces.Navigation
	rng             RandomSource
	eventDispatcher *event.Dispatcher
}

func NewWanderSystem(ecs *entity.ECS, nav interfaces.Navigation, rng RandomSource, eventDispatcher *event.Dispatcher) *WanderSystem {
	return &WanderSystem{ecs: ecs, nav: nav, rng: rng, eventDispatcher: eventDispatcher}
}

// Init назначает общую цель всем зомби, которые идут к ней.
func (s *WanderSystem) Init(goal utils.Vec3) {
	for _, id := range entity.SortedIDs(s.ecs.Wanders) {
		if AssignGoal(s.ecs.Wanders[id], id, goal, s.nav) {
			s.eventDispatcher.Dispatch(event.Event{Type: event.DestinationRequested, Data: event.DestinationData{
				Agent:       id,
				Destination: goal,
				Snapped:     true,
			}})
		}
	}
}

func (s *WanderSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Wanders) {
		if health, ok := s.ecs.Healths[id]; ok && health.State == component.Dead {
			continue
		}
		if loc, ok := s.ecs.Locomotions[id]; ok && !loc.Enabled {
			continue
		}
		tr, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		result := StepWander(s.ecs.Wanders[id], deltaTime, id, tr.Position, s.nav, s.rng)
		if result.Requested {
			s.eventDispatcher.Dispatch(event.Event{Type: event.DestinationRequested, Data: event.DestinationData{
				Agent:       id,
				Destination: result.Destination,
				Snapped:     result.Snapped,
			}})
		}
	}
}
