package system

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garden-defense/internal/component"
	"garden-defense/internal/entity"
	"garden-defense/internal/event"
	"garden-defense/internal/types"
	"garden-defense/internal/utils"
)

func TestTickFireEmitsAndResetsCooldown(t *testing.T) {
	target := utils.Vec3{X: 3, Y: 1, Z: 4}
	cooldown, cmd, err := TickFire(0.25, &target, 0, 2, utils.Vec3{Y: 1}, 1000)
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.Equal(t, 0.5, cooldown)
	assert.Equal(t, 1000.0, cmd.Magnitude)
	assert.InDelta(t, 0.6, cmd.Direction.X, 1e-9)
	assert.InDelta(t, 0.0, cmd.Direction.Y, 1e-9)
	assert.InDelta(t, 0.8, cmd.Direction.Z, 1e-9)
	assert.InDelta(t, 1.0, cmd.Direction.Length(), 1e-9)
}

func TestTickFireHoldsWhileCoolingDown(t *testing.T) {
	target := utils.Vec3{X: 1}
	for _, cooldown := range []float64{0.3, 0.5, 0.9} {
		next, cmd, err := TickFire(0.25, &target, cooldown, 1, utils.Vec3{}, 10)
		require.NoError(t, err)
		assert.Nil(t, cmd, "cooldown %.2f", cooldown)
		assert.InDelta(t, cooldown-0.25, next, 1e-12)
	}
}

func TestTickFireFiresWhenCooldownRunsOutThisTick(t *testing.T) {
	target := utils.Vec3{X: 1}
	next, cmd, err := TickFire(0.25, &target, 0.25, 1, utils.Vec3{}, 10)
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.Equal(t, 1.0, next)
}

func TestTickFireCooldownNeverExceedsPeriod(t *testing.T) {
	next, cmd, err := TickFire(0.25, nil, 3, 1, utils.Vec3{}, 10)
	require.NoError(t, err)
	assert.Nil(t, cmd)
	assert.Equal(t, 1.0, next)
}

func TestTickFireWithoutTargetDecaysToZero(t *testing.T) {
	cooldown := 0.5
	for i := 0; i < 4; i++ {
		var cmd *FireCommand
		var err error
		cooldown, cmd, err = TickFire(0.25, nil, cooldown, 1, utils.Vec3{}, 10)
		require.NoError(t, err)
		assert.Nil(t, cmd)
	}
	assert.Equal(t, 0.0, cooldown)
}

func TestTickFireRejectsNonPositiveRate(t *testing.T) {
	target := utils.Vec3{X: 1}
	for _, rate := range []float64{0, -1} {
		_, cmd, err := TickFire(0.25, &target, 0, rate, utils.Vec3{}, 10)
		assert.Nil(t, cmd)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	}
}

// Цель есть с первого тика: выстрел на тике 0, дальше ровно через период,
// округлённый вверх до целого числа тиков.
func TestTickFireShotTicks(t *testing.T) {
	tests := []struct {
		name      string
		rate      float64
		dt        float64
		ticks     int
		wantTicks []int
	}{
		{name: "rate 1, dt 0.25", rate: 1, dt: 0.25, ticks: 12, wantTicks: []int{0, 4, 8}},
		{name: "rate 1, dt 0.1", rate: 1, dt: 0.1, ticks: 36, wantTicks: []int{0, 10, 20, 30}},
		{name: "rate 1, dt 1/60", rate: 1, dt: 1.0 / 60, ticks: 150, wantTicks: []int{0, 60, 120}},
		{name: "rate 0.8, dt 0.25", rate: 0.8, dt: 0.25, ticks: 12, wantTicks: []int{0, 5, 10}},
		{name: "rate 3, dt 0.25", rate: 3, dt: 0.25, ticks: 6, wantTicks: []int{0, 2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := utils.Vec3{Z: 5}
			cooldown := 0.0
			var shots []int
			for tick := 0; tick < tt.ticks; tick++ {
				next, cmd, err := TickFire(tt.dt, &target, cooldown, tt.rate, utils.Vec3{}, 1000)
				require.NoError(t, err)
				if cmd != nil {
					shots = append(shots, tick)
					assert.Equal(t, 1/tt.rate, next)
				}
				cooldown = next
			}
			assert.Equal(t, tt.wantTicks, shots)
		})
	}
}

func TestFaceTargetIsYawOnly(t *testing.T) {
	self := utils.Vec3{}
	assert.InDelta(t, 0, FaceTarget(self, utils.Vec3{Z: 5, Y: 10}), 1e-9)
	assert.InDelta(t, math.Pi/2, FaceTarget(self, utils.Vec3{X: 5, Y: -3}), 1e-9)
}

func TestValidateCombat(t *testing.T) {
	fp := utils.Vec3{Y: 1}
	known := func(p types.PrefabID) bool { return p == "pea" }

	ok := &component.Combat{FireRate: 1, ProjectilePrefab: "pea", FirePoint: &fp}
	assert.NoError(t, ValidateCombat(ok, known))

	bad := &component.Combat{FireRate: 0, ProjectilePrefab: "rock"}
	err := ValidateCombat(bad, known)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "fire rate")
	assert.Contains(t, err.Error(), `"rock" is unknown`)
	assert.Contains(t, err.Error(), "fire point is missing")
}

func newCombatWorld(t *testing.T) (*entity.ECS, types.EntityID, types.EntityID) {
	t.Helper()
	ecs := entity.NewECS()
	plant := ecs.NewEntity()
	fp := utils.Vec3{Y: 1, Z: 0.5}
	ecs.Transforms[plant] = &component.Transform{}
	ecs.Combats[plant] = &component.Combat{
		DetectionRange:   15,
		TargetFaction:    types.FactionZombie,
		FireRate:         1,
		LaunchForce:      1000,
		ProjectilePrefab: "pea",
		FirePoint:        &fp,
	}
	zombie := ecs.NewEntity()
	ecs.Transforms[zombie] = &component.Transform{Position: utils.Vec3{X: 5}}
	ecs.Healths[zombie] = &component.Health{Value: 100, Max: 100}
	ecs.Colliders[zombie] = &component.Collider{Radius: 0.6, Height: 1, Enabled: true}
	return ecs, plant, zombie
}

func TestCombatSystemFiresAtTarget(t *testing.T) {
	ecs, plant, zombie := newCombatWorld(t)
	ecs.Combats[plant].TargetID = zombie
	spawner := &fakeSpawner{}
	impulses := &fakeImpulses{}
	d := event.NewDispatcher()
	rec := record(d, event.ProjectileFired)
	sys := NewCombatSystem(ecs, spawner, impulses, d)

	sys.Update(0.25)

	require.Len(t, spawner.calls, 1)
	require.Len(t, impulses.calls, 1)
	assert.Equal(t, types.PrefabID("pea"), spawner.calls[0].prefab)
	assert.Equal(t, spawner.calls[0].id, impulses.calls[0].id)
	assert.Equal(t, 1000.0, impulses.calls[0].magnitude)

	// Растение повернулось к цели по горизонтали, точка выстрела повернулась вместе с ним
	assert.InDelta(t, math.Pi/2, ecs.Transforms[plant].Yaw, 1e-9)
	assert.InDelta(t, 0.5, spawner.calls[0].position.X, 1e-9)
	assert.InDelta(t, 1.0, spawner.calls[0].position.Y, 1e-9)

	// Прицел в центр коллайдера: высота совпадает с точкой выстрела, направление горизонтально
	dir := impulses.calls[0].direction
	assert.InDelta(t, 1.0, dir.X, 1e-9)
	assert.InDelta(t, 0.0, dir.Y, 1e-9)

	assert.Equal(t, 1, rec.count(event.ProjectileFired))
	assert.Equal(t, 1.0, ecs.Combats[plant].FireCooldown)

	// Пока идёт перезарядка, выстрелов нет
	sys.Update(0.25)
	assert.Len(t, spawner.calls, 1)
}

func TestCombatSystemDropsDeadOrMissingTarget(t *testing.T) {
	ecs, plant, zombie := newCombatWorld(t)
	ecs.Combats[plant].TargetID = zombie
	ecs.Healths[zombie].State = component.Dead
	spawner := &fakeSpawner{}
	sys := NewCombatSystem(ecs, spawner, &fakeImpulses{}, event.NewDispatcher())

	sys.Update(0.25)
	assert.Empty(t, spawner.calls)
	assert.Zero(t, ecs.Combats[plant].TargetID)

	ecs.Combats[plant].TargetID = 999
	sys.Update(0.25)
	assert.Empty(t, spawner.calls)
	assert.Zero(t, ecs.Combats[plant].TargetID)
}

func TestCombatSystemSetupMakesMisconfiguredPlantInert(t *testing.T) {
	ecs, plant, zombie := newCombatWorld(t)
	ecs.Combats[plant].FireRate = 0
	ecs.Combats[plant].TargetID = zombie
	d := event.NewDispatcher()
	rec := record(d, event.ConfigInvalid)
	spawner := &fakeSpawner{}
	sys := NewCombatSystem(ecs, spawner, &fakeImpulses{}, d)

	sys.Setup(func(types.PrefabID) bool { return true })
	sys.Setup(func(types.PrefabID) bool { return true })
	for i := 0; i < 4; i++ {
		sys.Update(0.25)
	}

	assert.True(t, ecs.Combats[plant].Inert)
	assert.Equal(t, 1, rec.count(event.ConfigInvalid), "reported once")
	assert.Empty(t, spawner.calls)

	data, ok := rec.events[0].Data.(event.ConfigInvalidData)
	require.True(t, ok)
	assert.Equal(t, plant, data.Entity)
	assert.ErrorIs(t, data.Err, ErrInvalidConfiguration)
}
