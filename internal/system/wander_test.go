package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garden-defense/internal/component"
	"garden-defense/internal/entity"
	"garden-defense/internal/event"
	"garden-defense/internal/types"
	"garden-defense/internal/utils"
)

func TestStepWanderWaitsForInterval(t *testing.T) {
	w := &component.Wander{Radius: 15, Interval: 5}
	nav := newFakeNav()
	rng := fixedRng{point: utils.Vec3{X: 0.5}}

	// 19 тиков по 0.25 = 4.75 с: запросов нет
	for i := 0; i < 19; i++ {
		res := StepWander(w, 0.25, 1, utils.Vec3{}, nav, rng)
		assert.False(t, res.Requested, "tick %d", i)
	}
	assert.Zero(t, nav.samples)

	res := StepWander(w, 0.25, 1, utils.Vec3{}, nav, rng)
	require.True(t, res.Requested)
	assert.True(t, res.Snapped)
	assert.Equal(t, utils.Vec3{X: 7.5}, res.Destination)
	assert.Equal(t, []utils.Vec3{{X: 7.5}}, nav.destinations[1])
	assert.Equal(t, 0.0, w.Timer)
}

func TestStepWanderEveryFiveSeconds(t *testing.T) {
	w := &component.Wander{Radius: 15, Interval: 5}
	nav := newFakeNav()
	rng := fixedRng{point: utils.Vec3{Z: -1}}

	var at []float64
	for tick := 1; tick <= 60; tick++ {
		if StepWander(w, 0.25, 1, utils.Vec3{}, nav, rng).Requested {
			at = append(at, float64(tick)*0.25)
		}
	}
	assert.Equal(t, []float64{5, 10, 15}, at)
}

// Интервал, не кратный двоичному шагу: ошибка суммирования dt не должна
// сдвигать запрос на лишний тик.
func TestStepWanderIntervalIsExactForInexactSteps(t *testing.T) {
	tests := []struct {
		name      string
		dt        float64
		ticks     int
		wantTicks []int
	}{
		{name: "dt 0.1", dt: 0.1, ticks: 160, wantTicks: []int{50, 100, 150}},
		{name: "dt 1/60", dt: 1.0 / 60, ticks: 910, wantTicks: []int{300, 600, 900}},
		{name: "dt 0.02", dt: 0.02, ticks: 760, wantTicks: []int{250, 500, 750}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &component.Wander{Radius: 15, Interval: 5}
			nav := newFakeNav()
			var got []int
			for tick := 1; tick <= tt.ticks; tick++ {
				if StepWander(w, tt.dt, 1, utils.Vec3{}, nav, fixedRng{}).Requested {
					got = append(got, tick)
				}
			}
			assert.Equal(t, tt.wantTicks, got)
		})
	}
}

func TestStepWanderOnArrival(t *testing.T) {
	w := &component.Wander{Radius: 15, Interval: 5}
	nav := newFakeNav()
	nav.remaining = 0.4
	res := StepWander(w, 0.25, 1, utils.Vec3{}, nav, fixedRng{})
	assert.True(t, res.Requested)
	assert.Equal(t, 0.0, w.Timer)
}

func TestStepWanderMissKeepsDestination(t *testing.T) {
	w := &component.Wander{Radius: 15, Interval: 5, Timer: 4.9}
	nav := newFakeNav()
	nav.snapOK = false

	res := StepWander(w, 0.25, 1, utils.Vec3{}, nav, fixedRng{point: utils.Vec3{X: 1}})

	assert.True(t, res.Requested)
	assert.False(t, res.Snapped)
	assert.Empty(t, nav.destinations[1])
	assert.Equal(t, 0.0, w.Timer, "timer resets on a miss too")
}

func TestGoalSeekerNeverReselects(t *testing.T) {
	w := &component.Wander{Strategy: component.StrategyGoal, Radius: 15, Interval: 5}
	nav := newFakeNav()
	goal := utils.Vec3{X: -10, Z: 4}

	require.True(t, AssignGoal(w, 3, goal, nav))
	nav.remaining = 0
	for i := 0; i < 100; i++ {
		assert.False(t, StepWander(w, 0.25, 3, utils.Vec3{}, nav, fixedRng{}).Requested)
	}
	assert.Equal(t, []utils.Vec3{goal}, nav.destinations[3])

	wanderer := &component.Wander{Strategy: component.StrategyWander}
	assert.False(t, AssignGoal(wanderer, 4, goal, nav))
}

func TestWanderSystemSkipsDead(t *testing.T) {
	ecs := entity.NewECS()
	alive, _ := newZombie(ecs, 0)
	dead, _ := newZombie(ecs, 0)
	for _, id := range []types.EntityID{alive, dead} {
		ecs.Transforms[id] = &component.Transform{}
		ecs.Wanders[id] = &component.Wander{Radius: 15, Interval: 5}
	}
	ecs.Healths[dead].State = component.Dead
	ecs.Locomotions[dead].Enabled = false

	nav := newFakeNav()
	d := event.NewDispatcher()
	rec := record(d, event.DestinationRequested)
	sys := NewWanderSystem(ecs, nav, fixedRng{point: utils.Vec3{X: 1}}, d)

	for i := 0; i < 20; i++ {
		sys.Update(0.25)
	}

	assert.Len(t, nav.destinations[alive], 1)
	assert.Empty(t, nav.destinations[dead])
	assert.Equal(t, 1, rec.count(event.DestinationRequested))
}

func TestWanderSystemInitAssignsGoalOnce(t *testing.T) {
	ecs := entity.NewECS()
	seeker := ecs.NewEntity()
	ecs.Transforms[seeker] = &component.Transform{}
	ecs.Wanders[seeker] = &component.Wander{Strategy: component.StrategyGoal, Interval: 5}
	nav := newFakeNav()
	d := event.NewDispatcher()
	rec := record(d, event.DestinationRequested)
	sys := NewWanderSystem(ecs, nav, fixedRng{}, d)

	goal := utils.Vec3{Z: -16}
	sys.Init(goal)
	for i := 0; i < 40; i++ {
		sys.Update(0.25)
	}

	assert.Equal(t, []utils.Vec3{goal}, nav.destinations[seeker])
	assert.Equal(t, 1, rec.count(event.DestinationRequested))
}
