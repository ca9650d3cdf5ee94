package component

import "garden-defense/internal/interfaces"

// Ragdoll lists the sub-bodies that go limp when the entity dies.
// The count and layout are opaque to the systems that toggle them.
type Ragdoll struct {
	Bodies []interfaces.PhysicsBody
}
