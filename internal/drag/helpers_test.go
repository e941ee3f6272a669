package drag

import (
	"diorama/internal/components"
	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fakeHost is a minimal world: one scene, one registry, every collider is
// collidable.
type fakeHost struct {
	scene    *engine.Scene
	registry *Registry
}

func newFakeHost() *fakeHost {
	h := &fakeHost{scene: engine.NewScene("test"), registry: NewRegistry(nil)}
	h.scene.World = h
	return h
}

func (h *fakeHost) add(g *engine.GameObject) *engine.GameObject {
	h.scene.AddGameObject(g)
	g.Start()
	return g
}

func (h *fakeHost) GetCollidableObjects() []*engine.GameObject {
	var out []*engine.GameObject
	var walk func(g *engine.GameObject)
	walk = func(g *engine.GameObject) {
		if components.HasCollider(g) {
			out = append(out, g)
		}
		for _, child := range g.Children {
			walk(child)
		}
	}
	for _, g := range h.scene.GameObjects {
		walk(g)
	}
	return out
}

func (h *fakeHost) SpawnObject(g *engine.GameObject) { h.add(g) }
func (h *fakeHost) Destroy(g *engine.GameObject)     { h.scene.RemoveGameObject(g) }
func (h *fakeHost) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	return engine.RaycastResult{}, false
}
func (h *fakeHost) DragRegistry() *Registry { return h.registry }

func vec(x, y, z float32) rl.Vector3 {
	return rl.Vector3{X: x, Y: y, Z: z}
}

// box creates an object with a box collider at pos.
func box(name string, pos, size rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(components.NewBoxCollider(size))
	return g
}

// rig is a world with scripted VR and desktop inputs shared by every
// controller in it.
type rig struct {
	host    *fakeHost
	gate    *Gate
	vr      *FixedPointer
	desk    *FixedPointer
	trigger float32
	button  float32
	input   *Input
	tuning  Tuning
}

func newRig() *rig {
	r := &rig{
		host:   newFakeHost(),
		gate:   &Gate{},
		vr:     &FixedPointer{},
		desk:   &FixedPointer{},
		tuning: DefaultTuning(),
	}
	// Snap straight to the target so positions are exact per frame
	r.tuning.SmoothingRate = 1000
	r.input = &Input{
		VRPointer:      r.vr,
		VRTrigger:      SignalFunc(func() float32 { return r.trigger }),
		DesktopPointer: r.desk,
		DesktopButton:  SignalFunc(func() float32 { return r.button }),
	}
	return r
}

func (r *rig) platform(name string, axis Axis, pos, size rl.Vector3, rangeHalf, padding float32) *Controller {
	g := box(name, pos, size)
	d := NewDraggable(axis, rangeHalf)
	d.Padding = padding
	g.AddComponent(d)
	c := NewController(r.input, r.gate, r.tuning, nil)
	g.AddComponent(c)
	r.host.add(g)
	return c
}

// aimDesktop points the mouse ray straight into the screen at (x, y).
func (r *rig) aimDesktop(x, y float32) {
	r.desk.Aim(vec(x, y, 10), vec(x, y, 0))
}

func (r *rig) aimVR(x, y float32) {
	r.vr.Aim(vec(x, y, 10), vec(x, y, 0))
}

func (r *rig) step() {
	r.host.scene.Update(1.0 / 60)
}
