package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garden-defense/internal/component"
	"garden-defense/internal/entity"
	"garden-defense/internal/interfaces"
	"garden-defense/internal/types"
	"garden-defense/internal/utils"
)

func zombieAt(id types.EntityID, x, z float64) interfaces.Sighting {
	return interfaces.Sighting{ID: id, Faction: types.FactionZombie, Position: utils.Vec3{X: x, Z: z}}
}

func TestRefreshTarget(t *testing.T) {
	tests := []struct {
		name      string
		sightings []interfaces.Sighting
		wantID    types.EntityID
		wantFound bool
	}{
		{
			name:      "empty world",
			sightings: nil,
		},
		{
			name:      "nearest of several",
			sightings: []interfaces.Sighting{zombieAt(1, 10, 0), zombieAt(2, 0, 3), zombieAt(3, -7, 0)},
			wantID:    2,
			wantFound: true,
		},
		{
			name: "other factions are ignored",
			sightings: []interfaces.Sighting{
				{ID: 9, Faction: types.FactionPlant, Position: utils.Vec3{X: 1}},
				{ID: 8, Faction: types.FactionCorpse, Position: utils.Vec3{X: 0.5}},
				zombieAt(4, 6, 0),
			},
			wantID:    4,
			wantFound: true,
		},
		{
			name:      "tie keeps the first",
			sightings: []interfaces.Sighting{zombieAt(5, 4, 0), zombieAt(6, -4, 0)},
			wantID:    5,
			wantFound: true,
		},
		{
			name:      "beyond detection range",
			sightings: []interfaces.Sighting{zombieAt(7, 16, 0)},
		},
		{
			name:      "exactly at detection range",
			sightings: []interfaces.Sighting{zombieAt(8, 15, 0)},
			wantID:    8,
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := &fakeWorld{sightings: tt.sightings}
			id, found := RefreshTarget(utils.Vec3{}, 15, types.FactionZombie, world)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

// Ни одна подходящая сущность в радиусе не ближе выбранной.
func TestRefreshTargetIsMinimal(t *testing.T) {
	rng := utils.NewPRNGService(7)
	self := utils.Vec3{X: 1, Z: -2}
	for round := 0; round < 50; round++ {
		var sightings []interfaces.Sighting
		for i := 0; i < 12; i++ {
			p := rng.InsideUnitSphere().Flat().Scale(25)
			faction := types.FactionZombie
			if rng.Intn(3) == 0 {
				faction = types.FactionPlant
			}
			sightings = append(sightings, interfaces.Sighting{ID: types.EntityID(i + 1), Faction: faction, Position: p})
		}

		id, found := RefreshTarget(self, 15, types.FactionZombie, &fakeWorld{sightings: sightings})
		if !found {
			for _, s := range sightings {
				if s.Faction == types.FactionZombie {
					assert.Greater(t, utils.Distance(self, s.Position), 15.0)
				}
			}
			continue
		}

		var chosen interfaces.Sighting
		for _, s := range sightings {
			if s.ID == id {
				chosen = s
			}
		}
		best := utils.Distance(self, chosen.Position)
		assert.LessOrEqual(t, best, 15.0)
		for _, s := range sightings {
			if s.Faction != types.FactionZombie {
				continue
			}
			if d := utils.Distance(self, s.Position); d <= 15 {
				assert.GreaterOrEqual(t, d, best)
			}
		}
	}
}

func TestTargetingSystemCadence(t *testing.T) {
	ecs := entity.NewECS()
	plant := ecs.NewEntity()
	ecs.Transforms[plant] = &component.Transform{}
	ecs.Combats[plant] = &component.Combat{
		DetectionRange:   15,
		TargetFaction:    types.FactionZombie,
		RetargetInterval: 0.5,
	}
	world := &fakeWorld{sightings: []interfaces.Sighting{zombieAt(42, 3, 0)}}
	sys := NewTargetingSystem(ecs, world)

	// Поиск на t=0, 0.5, 1.0 при шаге 0.25: три вызова за пять тиков
	for i := 0; i < 5; i++ {
		sys.Update(0.25)
	}
	assert.Equal(t, 3, world.calls)
	assert.Equal(t, types.EntityID(42), ecs.Combats[plant].TargetID)

	// Цель ушла из выдачи: после следующего поиска ссылка сбрасывается
	world.sightings = nil
	sys.Update(0.25)
	sys.Update(0.25)
	require.Equal(t, 4, world.calls)
	assert.Equal(t, types.EntityID(0), ecs.Combats[plant].TargetID)
}

func TestTargetingSystemCadenceWithInexactStep(t *testing.T) {
	ecs := entity.NewECS()
	plant := ecs.NewEntity()
	ecs.Transforms[plant] = &component.Transform{}
	ecs.Combats[plant] = &component.Combat{
		DetectionRange:   15,
		TargetFaction:    types.FactionZombie,
		RetargetInterval: 0.5,
	}
	world := &fakeWorld{sightings: []interfaces.Sighting{zombieAt(42, 3, 0)}}
	sys := NewTargetingSystem(ecs, world)

	// шаг 0.1: поиск на тиках 0, 5, 10, 15
	for tick := 0; tick < 16; tick++ {
		sys.Update(0.1)
	}
	assert.Equal(t, 4, world.calls)
}

func TestTargetingSystemSkipsInertPlants(t *testing.T) {
	ecs := entity.NewECS()
	plant := ecs.NewEntity()
	ecs.Transforms[plant] = &component.Transform{}
	ecs.Combats[plant] = &component.Combat{DetectionRange: 15, TargetFaction: types.FactionZombie, Inert: true}
	world := &fakeWorld{sightings: []interfaces.Sighting{zombieAt(2, 1, 0)}}

	NewTargetingSystem(ecs, world).Update(0.25)

	assert.Zero(t, world.calls)
	assert.Zero(t, ecs.Combats[plant].TargetID)
}
