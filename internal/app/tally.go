// internal/app/tally.go
package app

import "garden-defense/internal/event"

// Tally считает события текущего прогона для итоговой сводки.
type Tally struct {
	Shots               int
	Hits                int
	Kills               int
	DestinationRequests int
	SnapMisses          int
	InertPlants         int
}

func (t *Tally) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(t, event.ProjectileFired, event.ZombieHit, event.ZombieKilled,
		event.DestinationRequested, event.ConfigInvalid)
}

func (t *Tally) OnEvent(e event.Event) {
	switch e.Type {
	case event.ProjectileFired:
		t.Shots++
	case event.ZombieHit:
		t.Hits++
	case event.ZombieKilled:
		t.Kills++
	case event.DestinationRequested:
		t.DestinationRequests++
		if data, ok := e.Data.(event.DestinationData); ok && !data.Snapped {
			t.SnapMisses++
		}
	case event.ConfigInvalid:
		t.InertPlants++
	}
}
