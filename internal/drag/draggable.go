package drag

import (
	"fmt"

	"diorama/internal/components"
	"diorama/internal/engine"
	"diorama/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Draggable", func() engine.Serializable {
		return NewDraggable(Horizontal, 5)
	})
}

// Host is the world context a Draggable lives in. It owns the registry that
// collision resolution reads and the collidable set that rider probes search.
type Host interface {
	engine.WorldAccess
	DragRegistry() *Registry
}

// DefaultPadding is the collision padding used when none is configured.
const DefaultPadding = 0.05

// Draggable is a platform that may be picked up and moved along one axis.
// Its allowed range is captured relative to its position at Start, or taken
// verbatim from Min/Max when UseExplicitRange is set.
type Draggable struct {
	engine.BaseComponent

	Axis             Axis
	Range            float32
	UseExplicitRange bool
	Min, Max         float32
	Padding          float32

	// Blocked suppresses picking and ends any drag in progress.
	Blocked bool

	StateChanged engine.EventWithArg[StateChange]

	registry *Registry
	origin   rl.Vector3
	target   float32
	state    State
	started  bool
}

func NewDraggable(axis Axis, rangeHalf float32) *Draggable {
	return &Draggable{
		Axis:    axis,
		Range:   rangeHalf,
		Padding: DefaultPadding,
	}
}

// Validate checks the configuration before the platform goes live.
func (d *Draggable) Validate() error {
	if d.Axis != Horizontal && d.Axis != Vertical {
		return fmt.Errorf("%w: %d", ErrInvalidAxis, int(d.Axis))
	}
	if d.UseExplicitRange {
		if d.Min > d.Max {
			return fmt.Errorf("%w: min %.3f > max %.3f", ErrInvalidRange, d.Min, d.Max)
		}
	} else if d.Range < 0 {
		return fmt.Errorf("%w: negative range %.3f", ErrInvalidRange, d.Range)
	}
	if d.Padding < 0 {
		return fmt.Errorf("%w: negative padding %.3f", ErrInvalidRange, d.Padding)
	}
	return nil
}

// Start captures the origin and joins the host's registry, if any.
func (d *Draggable) Start() {
	g := d.GetGameObject()
	if g == nil || d.started {
		return
	}
	d.started = true
	d.origin = g.WorldPosition()
	d.target = d.Axis.Of(d.origin)

	if d.registry == nil && g.Scene != nil {
		if host, ok := g.Scene.World.(Host); ok {
			d.Activate(host.DragRegistry())
		}
	}
}

// Activate registers the platform with reg. Calling it again with the same
// registry is a no-op; a different registry replaces the old one.
func (d *Draggable) Activate(reg *Registry) {
	if reg == nil {
		return
	}
	if !d.started {
		d.started = true
		d.origin = d.GetGameObject().WorldPosition()
		d.target = d.Axis.Of(d.origin)
	}
	if d.registry != nil && d.registry != reg {
		d.registry.Unregister(d)
	}
	d.registry = reg
	reg.Register(d)
}

// Deactivate leaves the registry; the platform stops being an obstacle and
// stops responding to input until reactivated.
func (d *Draggable) Deactivate() {
	if d.registry == nil {
		return
	}
	d.registry.Unregister(d)
	d.setState(Idle)
}

// OnDestroy implements engine.Destroyable. Listeners are dropped with the
// platform.
func (d *Draggable) OnDestroy() {
	d.Deactivate()
	d.registry = nil
	d.StateChanged.RemoveAllListeners()
}

// Live reports whether the platform is registered and its object active.
func (d *Draggable) Live() bool {
	g := d.GetGameObject()
	return g != nil && g.Active && d.registry != nil && d.registry.Contains(d)
}

func (d *Draggable) Registry() *Registry {
	return d.registry
}

func (d *Draggable) State() State {
	return d.state
}

func (d *Draggable) setState(s State) {
	if d.state == s {
		return
	}
	change := StateChange{Draggable: d, From: d.state, To: s}
	d.state = s
	d.StateChanged.Invoke(change)
}

// Origin is the world position captured when the platform went live.
func (d *Draggable) Origin() rl.Vector3 {
	return d.origin
}

// Position is the current coordinate along the movable axis.
func (d *Draggable) Position() float32 {
	return d.Axis.Of(d.GetGameObject().WorldPosition())
}

// Target is the last smoothed position the platform was driven to.
func (d *Draggable) Target() float32 {
	return d.target
}

// AllowedRange returns the inclusive bounds of Position.
func (d *Draggable) AllowedRange() (float32, float32) {
	if d.UseExplicitRange {
		return d.Min, d.Max
	}
	o := d.Axis.Of(d.origin)
	return o - d.Range, o + d.Range
}

// ClampToRange limits s to AllowedRange.
func (d *Draggable) ClampToRange(s float32) float32 {
	lo, hi := d.AllowedRange()
	if s < lo {
		return lo
	}
	if s > hi {
		return hi
	}
	return s
}

// MoveTo places the platform at s along its axis, leaving the other
// coordinates untouched, and returns the world-space displacement.
func (d *Draggable) MoveTo(s float32) rl.Vector3 {
	g := d.GetGameObject()
	delta := d.Axis.Vector(s - d.Position())
	d.target = s
	if delta != (rl.Vector3{}) {
		g.Translate(delta)
	}
	return delta
}

// Bounds merges every box collider on the platform and its children. A
// platform without any collision shape is treated as a unit cube at its
// position so overlap tests stay well defined.
func (d *Draggable) Bounds() physics.AABB {
	g := d.GetGameObject()
	var bounds physics.AABB
	found := false
	for _, box := range engine.GetComponentsInChildren[*components.BoxCollider](g) {
		if !box.GetGameObject().Active {
			continue
		}
		b := box.GetAABB()
		if !found {
			bounds = b
			found = true
			continue
		}
		bounds = bounds.Merge(b)
	}
	if !found || bounds.IsDegenerate() {
		return physics.NewAABBFromCenter(g.WorldPosition(), rl.Vector3{X: 1, Y: 1, Z: 1})
	}
	return bounds
}

// BoundsAt is Bounds shifted so the platform sits at s.
func (d *Draggable) BoundsAt(s float32) physics.AABB {
	return d.Bounds().Translate(d.Axis.Vector(s - d.Position()))
}

// IsPointedAt casts ray against the platform's own colliders, children
// included, and returns the nearest hit within maxDistance.
func (d *Draggable) IsPointedAt(ray rl.Ray, maxDistance float32) (bool, rl.Vector3) {
	best := maxDistance
	var point rl.Vector3
	hit := false
	for _, box := range engine.GetComponentsInChildren[*components.BoxCollider](d.GetGameObject()) {
		if !box.GetGameObject().Active {
			continue
		}
		h, ok := physics.RaycastAABB(ray.Position, ray.Direction, box.GetAABB(), best)
		if ok && (!hit || h.Distance < best) {
			best = h.Distance
			point = h.Point
			hit = true
		}
	}
	return hit, point
}

// ProjectPointerToAxis intersects ray with the plane through the platform
// whose normal is the fixed axis, and returns the hit's coordinate along the
// movable axis. When the ray misses the plane, the ray origin's coordinate
// is used instead.
func (d *Draggable) ProjectPointerToAxis(ray rl.Ray) float32 {
	pos := d.GetGameObject().WorldPosition()
	pt, ok := physics.RayPlaneIntersect(ray.Position, ray.Direction, pos, d.Axis.PlaneNormal())
	if !ok {
		return d.Axis.Of(ray.Position)
	}
	return d.Axis.Of(pt)
}

// TypeName implements engine.Serializable
func (d *Draggable) TypeName() string {
	return "Draggable"
}

// Serialize implements engine.Serializable
func (d *Draggable) Serialize() map[string]any {
	data := map[string]any{
		"type":    "Draggable",
		"axis":    d.Axis.String(),
		"padding": d.Padding,
	}
	if d.UseExplicitRange {
		data["min"] = d.Min
		data["max"] = d.Max
	} else {
		data["range"] = d.Range
	}
	if d.Blocked {
		data["blocked"] = true
	}
	return data
}

// Deserialize implements engine.Serializable. An unknown axis name leaves the
// axis unchanged.
func (d *Draggable) Deserialize(data map[string]any) {
	if s, ok := data["axis"].(string); ok {
		if a, err := ParseAxis(s); err == nil {
			d.Axis = a
		}
	}
	if v, ok := engine.Float32(data, "range"); ok {
		d.Range = v
	}
	lo, hasMin := engine.Float32(data, "min")
	hi, hasMax := engine.Float32(data, "max")
	if hasMin && hasMax {
		d.UseExplicitRange = true
		d.Min, d.Max = lo, hi
	}
	if v, ok := engine.Float32(data, "padding"); ok {
		d.Padding = v
	}
	if b, ok := data["blocked"].(bool); ok {
		d.Blocked = b
	}
}

func (d *Draggable) String() string {
	name := "<detached>"
	if g := d.GetGameObject(); g != nil {
		name = g.Name
	}
	return fmt.Sprintf("%s(%s)", name, d.Axis)
}
