package component

import (
	"garden-defense/internal/types"
	"garden-defense/internal/utils"
)

// LifeState - состояние жизни сущности.
type LifeState int

const (
	Active LifeState = iota
	Dead
)

func (s LifeState) String() string {
	if s == Dead {
		return "Dead"
	}
	return "Active"
}

// Health - компонент здоровья. Значение лежит в [0, Max]; Value <= 0 означает Dead.
type Health struct {
	Value int
	Max   int
	State LifeState
}

// Combat - компонент для растений, управляющий поиском цели и стрельбой
type Combat struct {
	DetectionRange   float64
	TargetFaction    types.Faction
	FireRate         float64 // Скорострельность (выстрелов в секунду)
	FireCooldown     float64 // Оставшееся время до следующего выстрела
	LaunchForce      float64
	ProjectilePrefab types.PrefabID
	FirePoint        *utils.Vec3 // смещение точки выстрела относительно растения; nil - не задано
	RetargetInterval float64
	RetargetTimer    float64        // время до следующего поиска цели
	TargetID         types.EntityID // слабая ссылка; 0 - цели нет
	Inert            bool           // конфигурация некорректна, растение не действует
}
