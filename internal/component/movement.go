// component/movement.go
package component

import "garden-defense/internal/utils"

// Transform - позиция сущности и её поворот вокруг вертикальной оси.
type Transform struct {
	Position utils.Vec3
	Yaw      float64
}

// Velocity - линейная скорость тел, которые ведёт физика (снаряды).
type Velocity struct {
	Linear utils.Vec3
}

// Locomotion - передвижение по навигационной поверхности.
type Locomotion struct {
	Speed   float64
	Enabled bool // выключается при смерти
}

// Collider - сферический коллайдер движения.
type Collider struct {
	Radius  float64
	Height  float64 // высота центра сферы над позицией сущности
	Enabled bool
}
