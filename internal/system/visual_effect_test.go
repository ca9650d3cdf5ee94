package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"garden-defense/internal/component"
	"garden-defense/internal/entity"
)

func TestVisualEffectSystemExpiresFlashesAndMarkers(t *testing.T) {
	ecs := entity.NewECS()
	zombie := ecs.NewEntity()
	ecs.Transforms[zombie] = &component.Transform{}
	ecs.DamageFlashes[zombie] = &component.DamageFlash{Countdown: component.Countdown{Timer: 0.25, Duration: 0.25}}
	marker := ecs.NewEntity()
	ecs.Transforms[marker] = &component.Transform{}
	ecs.ImpactMarkers[marker] = &component.ImpactMarker{Countdown: component.Countdown{Timer: 0.5, Duration: 0.5}}
	sys := NewVisualEffectSystem(ecs)

	sys.Update(0.25)
	assert.NotContains(t, ecs.DamageFlashes, zombie)
	assert.True(t, ecs.Exists(marker))

	sys.Update(0.25)
	assert.False(t, ecs.Exists(marker))
	assert.True(t, ecs.Exists(zombie), "flash expiry keeps the entity")
}

func TestCountdownRemaining(t *testing.T) {
	assert.InDelta(t, 0.5, component.Countdown{Timer: 0.3, Duration: 0.6}.Remaining(), 1e-12)
	assert.Equal(t, 0.0, component.Countdown{Timer: -0.1, Duration: 0.6}.Remaining())
	assert.Equal(t, 0.0, component.Countdown{Timer: 1}.Remaining())
}
