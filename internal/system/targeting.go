// internal/system/targeting.go
package system

import (
	"math"

	"garden-defense/internal/component"
	"garden-defense/internal/config"
	"garden-defense/internal/entity"
	"garden-defense/internal/interfaces"
	"garden-defense/internal/types"
	"garden-defense/internal/utils"
)

// RefreshTarget возвращает ближайшую сущность фракции faction в радиусе radius
// от selfPos. При равных расстояниях побеждает первая из выдачи запроса.
// Если подходящих сущностей нет, возвращает (0, false) - это не ошибка,
// поиск просто повторится в следующем цикле.
func RefreshTarget(selfPos utils.Vec3, radius float64, faction types.Faction, world interfaces.WorldQuery) (types.EntityID, bool) {
	var nearest types.EntityID
	found := false
	shortest := math.Inf(1)
	for _, s := range world.QueryNearby(selfPos, radius) {
		if s.Faction != faction {
			continue
		}
		distance := utils.Distance(selfPos, s.Position)
		if distance > radius {
			continue
		}
		if distance < shortest {
			shortest = distance
			nearest = s.ID
			found = true
		}
	}
	return nearest, found
}

// TargetingSystem обновляет текущие цели растений с фиксированной частотой,
// не зависящей от частоты кадров, чтобы ограничить стоимость запросов.
type TargetingSystem struct {
	ecs   *entity.ECS
	world interfaces.WorldQuery
}

func NewTargetingSystem(ecs *entity.ECS, world interfaces.WorldQuery) *TargetingSystem {
	return &TargetingSystem{ecs: ecs, world: world}
}

// Update запускает поиск цели, когда таймер растения истёк. Первый поиск
// происходит на первом же тике, следующие через RetargetInterval.
func (s *TargetingSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Combats) {
		combat := s.ecs.Combats[id]
		if combat.Inert {
			continue
		}
		if combat.RetargetTimer <= timerEpsilon {
			s.retarget(id, combat)
			interval := combat.RetargetInterval
			if interval <= 0 {
				interval = config.RetargetInterval
			}
			combat.RetargetTimer += interval
			if combat.RetargetTimer <= 0 {
				combat.RetargetTimer = interval
			}
		}
		combat.RetargetTimer -= deltaTime
	}
}

func (s *TargetingSystem) retarget(id types.EntityID, combat *component.Combat) {
	tr, ok := s.ecs.Transforms[id]
	if !ok {
		return
	}
	target, found := RefreshTarget(tr.Position, combat.DetectionRange, combat.TargetFaction, s.world)
	if !found {
		target = 0
	}
	combat.TargetID = target
}
