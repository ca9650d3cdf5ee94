// internal/event/types.go
package event

import (
	"garden-defense/internal/types"
	"garden-defense/internal/utils"
)

const (
	ProjectileFired      EventType = "ProjectileFired"      // Растение выстрелило
	Collision            EventType = "Collision"            // Два коллайдера пересеклись
	ZombieHit            EventType = "ZombieHit"            // Зомби получил урон
	ZombieKilled         EventType = "ZombieKilled"         // Зомби перешёл в рэгдолл
	DestinationRequested EventType = "DestinationRequested" // Запрошена новая точка назначения
	ConfigInvalid        EventType = "ConfigInvalid"        // Поведение стало инертным из-за конфигурации
)

// FiredData - данные события ProjectileFired.
type FiredData struct {
	Shooter    types.EntityID
	Projectile types.EntityID
	Target     types.EntityID
	Direction  utils.Vec3
}

// CollisionData - пара (self, other) и точка контакта.
type CollisionData struct {
	Self    types.EntityID
	Other   types.EntityID
	Contact utils.Vec3
}

// HitData - данные события ZombieHit.
type HitData struct {
	Target     types.EntityID
	Damage     int
	HealthLeft int
}

// DestinationData - данные события DestinationRequested.
type DestinationData struct {
	Agent       types.EntityID
	Destination utils.Vec3
	Snapped     bool // false - навигационной точки рядом нет, прежняя цель сохранена
}

// ConfigInvalidData - данные события ConfigInvalid.
type ConfigInvalidData struct {
	Entity types.EntityID
	Err    error
}
