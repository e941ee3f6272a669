package components

import (
	"diorama/internal/engine"
	"diorama/internal/physics"
)

// ColliderBounds returns the world AABB of whichever collision shape g carries.
// Character controllers count as shapes so they can be found by overlap queries.
func ColliderBounds(g *engine.GameObject) (physics.AABB, bool) {
	if box := engine.GetComponent[*BoxCollider](g); box != nil {
		return box.GetAABB(), true
	}
	if sphere := engine.GetComponent[*SphereCollider](g); sphere != nil {
		return sphere.GetAABB(), true
	}
	if cc := engine.GetComponent[*CharacterController](g); cc != nil {
		return cc.Bounds(), true
	}
	return physics.AABB{}, false
}

// HasCollider reports whether ColliderBounds would succeed for g.
func HasCollider(g *engine.GameObject) bool {
	_, ok := ColliderBounds(g)
	return ok
}
