// internal/world/query.go
package world

import (
	"garden-defense/internal/component"
	"garden-defense/internal/entity"
	"garden-defense/internal/interfaces"
	"garden-defense/internal/types"
	"garden-defense/internal/utils"
)

// Query отвечает на пространственные запросы по ECS полным перебором.
// Погибшие сущности видны как трупы, снаряды не видны вовсе.
type Query struct {
	ecs *entity.ECS
}

func NewQuery(ecs *entity.ECS) *Query {
	return &Query{ecs: ecs}
}

func (q *Query) QueryNearby(position utils.Vec3, radius float64) []interfaces.Sighting {
	var result []interfaces.Sighting
	for _, id := range entity.SortedIDs(q.ecs.Factions) {
		faction := q.ecs.Factions[id]
		if faction == types.FactionProjectile || faction == types.FactionNone {
			continue
		}
		tr, ok := q.ecs.Transforms[id]
		if !ok {
			continue
		}
		if utils.Distance(position, tr.Position) > radius {
			continue
		}
		if health, ok := q.ecs.Healths[id]; ok && health.State == component.Dead {
			faction = types.FactionCorpse
		}
		result = append(result, interfaces.Sighting{ID: id, Faction: faction, Position: tr.Position})
	}
	return result
}
