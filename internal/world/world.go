package world

import (
	"diorama/internal/components"
	"diorama/internal/drag"
	"diorama/internal/engine"
	"diorama/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// World is the context a scene runs in. It owns the drag registry, the input
// shared by every drag controller, and the gate that blocks dragging.
type World struct {
	Scene    *engine.Scene
	Registry *drag.Registry
	Tuning   drag.Tuning
	Input    *drag.Input
	Gate     *drag.Gate
	Gravity  rl.Vector3

	logger *zap.Logger
}

func New(tuning drag.Tuning, logger *zap.Logger) *World {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &World{
		Scene:    engine.NewScene("Main"),
		Registry: drag.NewRegistry(logger.Named("registry")),
		Tuning:   tuning,
		Input:    &drag.Input{},
		Gate:     &drag.Gate{},
		Gravity:  rl.Vector3{Y: -20},
		logger:   logger,
	}
	w.Scene.World = w
	return w
}

// DragRegistry implements drag.Host.
func (w *World) DragRegistry() *drag.Registry {
	return w.Registry
}

// Logger is the world's logger, for components created on its behalf.
func (w *World) Logger() *zap.Logger {
	return w.logger
}

// Start starts every object, children included.
func (w *World) Start() {
	w.Scene.Start()
}

// Step advances one frame: components first (drag controllers move
// platforms and their riders), then gravity for free bodies.
func (w *World) Step(deltaTime float32) {
	w.Scene.Update(deltaTime)
	w.integrate(deltaTime)
}

// Walk visits g and every descendant, depth first.
func Walk(g *engine.GameObject, fn func(*engine.GameObject)) {
	fn(g)
	for _, child := range g.Children {
		Walk(child, fn)
	}
}

func (w *World) each(fn func(*engine.GameObject)) {
	for _, g := range w.Scene.GameObjects {
		Walk(g, fn)
	}
}

// GetCollidableObjects returns every active object carrying a collision
// shape, children included.
func (w *World) GetCollidableObjects() []*engine.GameObject {
	var result []*engine.GameObject
	w.each(func(g *engine.GameObject) {
		if g.Active && components.HasCollider(g) {
			result = append(result, g)
		}
	})
	return result
}

// SpawnObject adds g to the scene and starts it.
func (w *World) SpawnObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	g.Start()
}

// Destroy notifies g's components, and its children's, then removes it.
func (w *World) Destroy(g *engine.GameObject) {
	Walk(g, func(obj *engine.GameObject) {
		for _, c := range obj.Components() {
			if d, ok := c.(engine.Destroyable); ok {
				d.OnDestroy()
			}
		}
	})
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	w.Scene.RemoveGameObject(g)
	w.logger.Debug("object destroyed", zap.String("name", g.Name), zap.Uint64("uid", g.UID))
}

// Raycast returns the nearest collider hit along direction.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	var best engine.RaycastResult
	found := false
	for _, g := range w.GetCollidableObjects() {
		var hit physics.RaycastHit
		var ok bool
		if sphere := engine.GetComponent[*components.SphereCollider](g); sphere != nil {
			hit, ok = physics.RaycastSphere(origin, direction, sphere.GetCenter(), sphere.Radius, maxDistance)
		} else if bounds, has := components.ColliderBounds(g); has {
			hit, ok = physics.RaycastAABB(origin, direction, bounds, maxDistance)
		}
		if ok && (!found || hit.Distance < best.Distance) {
			best = engine.RaycastResult{GameObject: g, Point: hit.Point, Normal: hit.Normal, Distance: hit.Distance}
			found = true
		}
	}
	return best, found
}
