package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastResult is the nearest collider hit of a world raycast. It lives in
// engine so components can raycast without importing physics.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// WorldAccess is what a Scene knows about the world running it. Character
// controllers sweep against GetCollidableObjects; drag platforms reach their
// registry through the same value.
type WorldAccess interface {
	// GetCollidableObjects lists every active object with a collision shape,
	// children included.
	GetCollidableObjects() []*GameObject
	// SpawnObject adds g to the scene and starts it.
	SpawnObject(g *GameObject)
	// Destroy notifies Destroyable components, then removes g and its children.
	Destroy(g *GameObject)
	Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastResult, bool)
}
