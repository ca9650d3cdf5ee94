// internal/world/ragdoll.go
package world

import (
	"garden-defense/internal/config"
	"garden-defense/internal/utils"
)

// RagdollBody - одна часть тела. Пока она кинематическая, её держит анимация
// (смещение равно Rest); после включения симуляции часть падает на землю.
type RagdollBody struct {
	Part      string
	Rest      utils.Vec3
	Offset    utils.Vec3
	Velocity  utils.Vec3
	simulated bool
}

func NewRagdollBody(part string, rest utils.Vec3) *RagdollBody {
	return &RagdollBody{Part: part, Rest: rest, Offset: rest}
}

func (b *RagdollBody) SetSimulated(simulated bool) {
	if b.simulated == simulated {
		return
	}
	b.simulated = simulated
	if simulated {
		// части валятся наружу от оси тела
		b.Velocity = b.Rest.Flat().Scale(2)
		return
	}
	b.Offset = b.Rest
	b.Velocity = utils.Vec3{}
}

func (b *RagdollBody) Simulated() bool {
	return b.simulated
}

// Settle продвигает падение части на deltaTime.
func (b *RagdollBody) Settle(deltaTime float64) {
	if !b.simulated {
		return
	}
	b.Velocity.Y -= config.Gravity * deltaTime
	b.Offset = b.Offset.Add(b.Velocity.Scale(deltaTime))
	if b.Offset.Y <= 0 {
		b.Offset.Y = 0
		b.Velocity = b.Velocity.Flat().Scale(config.RagdollSettleDamping)
	}
}
