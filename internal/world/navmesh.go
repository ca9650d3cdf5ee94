// internal/world/navmesh.go
package world

import (
	"log"
	"math"

	"github.com/aquilax/go-perlin"

	"garden-defense/internal/config"
	"garden-defense/internal/entity"
	"garden-defense/internal/types"
	"garden-defense/internal/utils"
	"garden-defense/pkg/hexmap"
)

type navAgent struct {
	waypoints []utils.Vec3 // оставшиеся точки маршрута; последняя - сама цель
	stopping  float64
}

// NavMesh - навигационная поверхность из проходимых гексов в плоскости XZ.
// Маршруты строятся A* по гексам и заканчиваются точно в запрошенной точке.
type NavMesh struct {
	ecs    *entity.ECS
	Map    *hexmap.HexMap
	agents map[types.EntityID]*navAgent
}

func NewNavMesh(ecs *entity.ECS, hm *hexmap.HexMap) *NavMesh {
	return &NavMesh{
		ecs:    ecs,
		Map:    hm,
		agents: make(map[types.EntityID]*navAgent),
	}
}

// GenerateSurface строит карту радиуса radius и расставляет препятствия по шуму
// Перлина. Вокруг точек keep препятствий нет, и все проходимые гексы связны с keep[0].
func GenerateSurface(radius int, hexSize float64, seed int64, threshold float64, keep []utils.Vec3) *hexmap.HexMap {
	hm := hexmap.NewHexMap(radius, hexSize)
	anchors := make([]hexmap.Hex, 0, len(keep))
	for _, p := range keep {
		anchors = append(anchors, hexmap.FromPlane(p.X, p.Z, hexSize))
	}
	hm.ScatterObstacles(hexmap.ObstacleOptions{
		Noise:      perlin.NewPerlin(config.NoiseAlpha, config.NoiseBeta, config.NoiseOctaves, seed),
		Scale:      config.NoiseScale,
		Threshold:  threshold,
		Keep:       anchors,
		KeepRadius: config.ObstacleClearRadiusHex,
	})
	return hm
}

// Register делает сущность агентом навигации.
func (n *NavMesh) Register(id types.EntityID, stoppingDistance float64) {
	n.agents[id] = &navAgent{stopping: stoppingDistance}
}

func (n *NavMesh) Unregister(id types.EntityID) {
	delete(n.agents, id)
}

// HexAt возвращает гекс под точкой мира.
func (n *NavMesh) HexAt(p utils.Vec3) hexmap.Hex {
	return hexmap.FromPlane(p.X, p.Z, n.Map.HexSize)
}

// HexCenter возвращает центр гекса на уровне земли.
func (n *NavMesh) HexCenter(h hexmap.Hex) utils.Vec3 {
	x, z := h.ToPlane(n.Map.HexSize)
	return utils.Vec3{X: x, Z: z}
}

// IsNavigable сообщает, лежит ли точка на проходимом гексе.
func (n *NavMesh) IsNavigable(p utils.Vec3) bool {
	return n.Map.IsPassable(n.HexAt(p))
}

// SampleNearestNavigable проецирует точку на поверхность. Точка над проходимым
// гексом опускается на землю, иначе берётся ближайший центр проходимого гекса.
func (n *NavMesh) SampleNearestNavigable(point utils.Vec3, maxDistance float64) (utils.Vec3, bool) {
	if maxDistance < 0 {
		return utils.Vec3{}, false
	}
	ground := point.Flat()
	if n.IsNavigable(point) && math.Abs(point.Y) <= maxDistance {
		return ground, true
	}

	origin := n.HexAt(point)
	maxRing := int(math.Ceil(maxDistance/n.Map.HexSize)) + 1
	best := utils.Vec3{}
	bestDistance := math.Inf(1)
	for radius := 0; radius <= maxRing; radius++ {
		for _, h := range origin.Ring(radius) {
			if !n.Map.IsPassable(h) {
				continue
			}
			center := n.HexCenter(h)
			d := utils.Distance(point, center)
			if d <= maxDistance && d < bestDistance {
				best = center
				bestDistance = d
			}
		}
	}
	if math.IsInf(bestDistance, 1) {
		return utils.Vec3{}, false
	}
	return best, true
}

// SetDestination прокладывает маршрут к position. Если A* не находит пути,
// агент идёт по прямой.
func (n *NavMesh) SetDestination(id types.EntityID, position utils.Vec3) {
	agent, ok := n.agents[id]
	if !ok {
		log.Printf("NavMesh: entity %d is not a navigation agent", id)
		return
	}
	tr, ok := n.ecs.Transforms[id]
	if !ok {
		return
	}
	target := position.Flat()

	path := hexmap.AStar(n.HexAt(tr.Position), n.HexAt(target), n.Map)
	waypoints := make([]utils.Vec3, 0, len(path)+1)
	if len(path) > 2 {
		for _, h := range path[1 : len(path)-1] {
			waypoints = append(waypoints, n.HexCenter(h))
		}
	}
	agent.waypoints = append(waypoints, target)
}

// RemainingDistance - длина оставшегося маршрута; без цели 0.
func (n *NavMesh) RemainingDistance(id types.EntityID) float64 {
	agent, ok := n.agents[id]
	if !ok || len(agent.waypoints) == 0 {
		return 0
	}
	tr, ok := n.ecs.Transforms[id]
	if !ok {
		return 0
	}
	prev := tr.Position.Flat()
	total := 0.0
	for _, wp := range agent.waypoints {
		total += utils.Distance(prev, wp)
		prev = wp
	}
	return total
}

func (n *NavMesh) StoppingDistance(id types.EntityID) float64 {
	if agent, ok := n.agents[id]; ok {
		return agent.stopping
	}
	return 0
}

// Stop сбрасывает маршрут агента.
func (n *NavMesh) Stop(id types.EntityID) {
	if agent, ok := n.agents[id]; ok {
		agent.waypoints = nil
	}
}

// Destination возвращает конечную точку маршрута, если она есть.
func (n *NavMesh) Destination(id types.EntityID) (utils.Vec3, bool) {
	agent, ok := n.agents[id]
	if !ok || len(agent.waypoints) == 0 {
		return utils.Vec3{}, false
	}
	return agent.waypoints[len(agent.waypoints)-1], true
}

// Waypoints возвращает копию оставшегося маршрута.
func (n *NavMesh) Waypoints(id types.EntityID) []utils.Vec3 {
	agent, ok := n.agents[id]
	if !ok {
		return nil
	}
	return append([]utils.Vec3(nil), agent.waypoints...)
}

// Advance двигает агентов с включённым передвижением вдоль маршрутов.
// Агент останавливается, когда до цели остаётся не больше дистанции остановки.
func (n *NavMesh) Advance(deltaTime float64) {
	for _, id := range entity.SortedIDs(n.agents) {
		agent := n.agents[id]
		loc, ok := n.ecs.Locomotions[id]
		if !ok || !loc.Enabled || len(agent.waypoints) == 0 {
			continue
		}
		tr, ok := n.ecs.Transforms[id]
		if !ok {
			continue
		}
		if n.RemainingDistance(id) <= agent.stopping {
			continue
		}

		step := loc.Speed * deltaTime
		for step > 0 && len(agent.waypoints) > 0 {
			next := agent.waypoints[0]
			toNext := next.Sub(tr.Position.Flat())
			d := toNext.Length()
			if d > 0 {
				tr.Yaw = utils.YawTowards(tr.Position, next)
			}
			if d > step {
				tr.Position = tr.Position.Add(toNext.Scale(step / d))
				break
			}
			tr.Position = utils.Vec3{X: next.X, Y: tr.Position.Y, Z: next.Z}
			step -= d
			if len(agent.waypoints) == 1 {
				// конечная точка остаётся в маршруте, RemainingDistance станет 0
				break
			}
			agent.waypoints = agent.waypoints[1:]
		}
	}
}
