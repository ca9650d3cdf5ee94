package system

import (
	"garden-defense/internal/event"
	"garden-defense/internal/interfaces"
	"garden-defense/internal/types"
	"garden-defense/internal/utils"
)

// fakeWorld возвращает заранее заданную выдачу и считает вызовы.
type fakeWorld struct {
	sightings []interfaces.Sighting
	calls     int
}

func (w *fakeWorld) QueryNearby(position utils.Vec3, radius float64) []interfaces.Sighting {
	w.calls++
	return w.sightings
}

type fakeNav struct {
	remaining    float64
	stopping     float64
	snapOK       bool
	destinations map[types.EntityID][]utils.Vec3
	stopped      []types.EntityID
	samples      int
}

func newFakeNav() *fakeNav {
	return &fakeNav{
		remaining:    100,
		stopping:     0.5,
		snapOK:       true,
		destinations: make(map[types.EntityID][]utils.Vec3),
	}
}

func (n *fakeNav) SampleNearestNavigable(point utils.Vec3, maxDistance float64) (utils.Vec3, bool) {
	n.samples++
	if !n.snapOK {
		return utils.Vec3{}, false
	}
	return point.Flat(), true
}

func (n *fakeNav) SetDestination(agent types.EntityID, position utils.Vec3) {
	n.destinations[agent] = append(n.destinations[agent], position)
}

func (n *fakeNav) RemainingDistance(agent types.EntityID) float64 { return n.remaining }
func (n *fakeNav) StoppingDistance(agent types.EntityID) float64  { return n.stopping }
func (n *fakeNav) Stop(agent types.EntityID)                     { n.stopped = append(n.stopped, agent) }

type fixedRng struct {
	point utils.Vec3
}

func (r fixedRng) InsideUnitSphere() utils.Vec3 { return r.point }

type spawnCall struct {
	prefab   types.PrefabID
	position utils.Vec3
	id       types.EntityID
}

// fakeSpawner выдаёт идентификаторы, не пересекающиеся с ECS тестов.
type fakeSpawner struct {
	next  types.EntityID
	calls []spawnCall
	log   *[]string
}

func (s *fakeSpawner) Spawn(prefab types.PrefabID, position utils.Vec3, yaw float64) types.EntityID {
	if s.next == 0 {
		s.next = 1000
	}
	s.next++
	s.calls = append(s.calls, spawnCall{prefab: prefab, position: position, id: s.next})
	if s.log != nil {
		*s.log = append(*s.log, "spawn:"+string(prefab))
	}
	return s.next
}

type impulseCall struct {
	id        types.EntityID
	direction utils.Vec3
	magnitude float64
}

type fakeImpulses struct {
	calls []impulseCall
}

func (f *fakeImpulses) ApplyImpulse(id types.EntityID, direction utils.Vec3, magnitude float64) {
	f.calls = append(f.calls, impulseCall{id: id, direction: direction, magnitude: magnitude})
}

type fakeBody struct {
	simulated bool
	toggles   int
}

func (b *fakeBody) SetSimulated(simulated bool) {
	b.simulated = simulated
	b.toggles++
}

func (b *fakeBody) Simulated() bool { return b.simulated }

// recorder запоминает события в порядке доставки.
type recorder struct {
	events []event.Event
	log    *[]string
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
	if r.log != nil {
		*r.log = append(*r.log, string(e.Type))
	}
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func record(d *event.Dispatcher, kinds ...event.EventType) *recorder {
	r := &recorder{}
	d.SubscribeAll(r, kinds...)
	return r
}
