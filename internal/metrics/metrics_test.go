package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garden-defense/internal/event"
	"garden-defense/internal/types"
)

func TestCollectorCountsEvents(t *testing.T) {
	d := event.NewDispatcher()
	c := NewCollector()
	c.Subscribe(d)

	d.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.FiredData{}})
	d.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.FiredData{}})
	d.Dispatch(event.Event{Type: event.ZombieHit, Data: event.HitData{Damage: 25}})
	d.Dispatch(event.Event{Type: event.ZombieKilled, Data: types.EntityID(1)})
	d.Dispatch(event.Event{Type: event.DestinationRequested, Data: event.DestinationData{Snapped: true}})
	d.Dispatch(event.Event{Type: event.DestinationRequested, Data: event.DestinationData{Snapped: false}})
	d.Dispatch(event.Event{Type: event.ConfigInvalid, Data: event.ConfigInvalidData{Err: errors.New("bad")}})
	c.ObserveTime(12.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.ProjectilesFired))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Impacts))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Kills))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.DestinationRequests.WithLabelValues("snapped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.DestinationRequests.WithLabelValues("missed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.InvalidConfiguration))
	assert.Equal(t, 12.5, testutil.ToFloat64(c.SimTime))
}

func TestCollectorsDoNotShareRegistry(t *testing.T) {
	a, b := NewCollector(), NewCollector()
	a.ProjectilesFired.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.ProjectilesFired))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.ProjectilesFired))
	assert.NotSame(t, a.Registry(), b.Registry())
}

func TestHandlerServesMetrics(t *testing.T) {
	c := NewCollector()
	c.Kills.Inc()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), "garden_zombies_killed_total 1")
}
