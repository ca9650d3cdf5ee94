// internal/component/projectile.go
package component

import "garden-defense/internal/types"

// Projectile представляет летящий снаряд.
type Projectile struct {
	Owner        types.EntityID
	Radius       float64
	Mass         float64
	GravityScale float64
	Lifetime     float64 // оставшееся время жизни
}
