package component

import "garden-defense/internal/types"

// Plant marks a stationary shooter.
type Plant struct {
	DefID string
}

// Zombie представляет вражескую сущность.
type Zombie struct {
	DefID        string
	DamageToTake int            // урон от одного попадания снаряда
	ImpactMarker types.PrefabID // префаб отметки попадания; пусто - без отметки
}
