package drag

import (
	"diorama/internal/components"
	"diorama/internal/engine"
	"diorama/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// BodyKind is how a rider is moved when its platform moves.
type BodyKind int

const (
	TransformBody BodyKind = iota
	CharacterBody
	DynamicBody
	KinematicBody
	Body2DBody
)

func (k BodyKind) String() string {
	switch k {
	case CharacterBody:
		return "character"
	case DynamicBody:
		return "dynamic"
	case KinematicBody:
		return "kinematic"
	case Body2DBody:
		return "body2d"
	}
	return "transform"
}

// MovableBody is a rider resolved to the one way it should be moved.
type MovableBody interface {
	Object() *engine.GameObject
	Kind() BodyKind
	ApplyDelta(delta rl.Vector3)
}

// characterRider sweeps through the world so it keeps colliding while carried.
type characterRider struct {
	cc *components.CharacterController
}

func (r characterRider) Object() *engine.GameObject { return r.cc.GetGameObject() }
func (r characterRider) Kind() BodyKind             { return CharacterBody }
func (r characterRider) ApplyDelta(d rl.Vector3)    { r.cc.Move(d) }

// rigidbodyRider moves position directly so the body's own velocity-driven
// motion is left alone.
type rigidbodyRider struct{ rb *components.Rigidbody }

func (r rigidbodyRider) Object() *engine.GameObject { return r.rb.GetGameObject() }
func (r rigidbodyRider) ApplyDelta(d rl.Vector3)    { r.rb.MovePosition(d) }
func (r rigidbodyRider) Kind() BodyKind {
	if r.rb.IsKinematic {
		return KinematicBody
	}
	return DynamicBody
}

type body2DRider struct{ body *components.Body2D }

func (r body2DRider) Object() *engine.GameObject { return r.body.GetGameObject() }
func (r body2DRider) Kind() BodyKind             { return Body2DBody }
func (r body2DRider) ApplyDelta(d rl.Vector3)    { r.body.Translate(d.X, d.Y) }

type transformRider struct{ g *engine.GameObject }

func (r transformRider) Object() *engine.GameObject { return r.g }
func (r transformRider) Kind() BodyKind             { return TransformBody }
func (r transformRider) ApplyDelta(d rl.Vector3)    { r.g.Translate(d) }

// ResolveBody picks the movement strategy for an object found by a probe.
// The nearest ancestor carrying a body component owns the motion; an object
// with none moves its top-most ancestor that is not shared with stop (the
// platform), so children of a rider travel with it.
func ResolveBody(g *engine.GameObject, stop *engine.GameObject) MovableBody {
	for obj := g; obj != nil; obj = obj.Parent {
		if cc := engine.GetComponent[*components.CharacterController](obj); cc != nil {
			return characterRider{cc}
		}
		if rb := engine.GetComponent[*components.Rigidbody](obj); rb != nil {
			return rigidbodyRider{rb}
		}
		if body := engine.GetComponent[*components.Body2D](obj); body != nil {
			return body2DRider{body}
		}
	}
	root := g
	for root.Parent != nil && (stop == nil || !stop.IsDescendantOf(root.Parent)) {
		root = root.Parent
	}
	return transformRider{root}
}

// BodyQuery lists the objects that probes may find.
type BodyQuery interface {
	GetCollidableObjects() []*engine.GameObject
}

// Carrier moves whatever rests on a platform by the platform's displacement.
type Carrier struct {
	world BodyQuery

	// ProbeHeight is how far above the top face riders are searched for.
	ProbeHeight float32
	// ProbeMargin widens the probe sideways and in depth to catch riders
	// hanging over an edge.
	ProbeMargin float32
	// ProbeSkin lets riders sunk slightly into the top face still count.
	ProbeSkin float32

	logger *zap.Logger
}

func NewCarrier(world BodyQuery, tuning Tuning, logger *zap.Logger) *Carrier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Carrier{
		world:       world,
		ProbeHeight: tuning.ProbeHeight,
		ProbeMargin: tuning.ProbeMargin,
		ProbeSkin:   tuning.ProbeSkin,
		logger:      logger,
	}
}

// Probe returns the band just above a platform's top face, given the
// platform's bounds before it moved.
func (c *Carrier) Probe(top physics.AABB) physics.AABB {
	return physics.AABB{
		Min: rl.Vector3{X: top.Min.X - c.ProbeMargin, Y: top.Max.Y - c.ProbeSkin, Z: top.Min.Z - c.ProbeMargin},
		Max: rl.Vector3{X: top.Max.X + c.ProbeMargin, Y: top.Max.Y + c.ProbeHeight, Z: top.Max.Z + c.ProbeMargin},
	}
}

// Riders finds the bodies resting on a platform whose bounds were before.
// Each body appears once, however many of its colliders touch the probe.
func (c *Carrier) Riders(mover *Draggable, before physics.AABB) []MovableBody {
	if c.world == nil {
		return nil
	}
	platform := mover.GetGameObject()
	probe := c.Probe(before)

	seen := make(map[*engine.GameObject]bool)
	var riders []MovableBody
	for _, obj := range c.world.GetCollidableObjects() {
		if !obj.Active || obj.IsDescendantOf(platform) {
			continue
		}
		bounds, ok := components.ColliderBounds(obj)
		if !ok || !bounds.Intersects(probe) {
			continue
		}
		// Resting means the feet are inside the band, not merely beside it
		if bounds.Min.Y < probe.Min.Y || bounds.Min.Y > probe.Max.Y {
			continue
		}

		body := ResolveBody(obj, platform)
		owner := body.Object()
		if seen[owner] || owner.IsDescendantOf(platform) || platform.IsDescendantOf(owner) {
			continue
		}
		if engine.GetComponent[*Draggable](owner) != nil {
			continue
		}
		seen[owner] = true
		riders = append(riders, body)
	}
	return riders
}

// Carry applies delta to every rider of mover and returns how many moved.
// before is the platform's bounds prior to its own move this frame. Zero
// motion skips the probe entirely.
func (c *Carrier) Carry(mover *Draggable, before physics.AABB, delta rl.Vector3) int {
	if delta == (rl.Vector3{}) {
		return 0
	}
	riders := c.Riders(mover, before)
	for _, r := range riders {
		r.ApplyDelta(delta)
	}
	if len(riders) > 0 {
		c.logger.Debug("carried riders",
			zap.Stringer("platform", mover),
			zap.Int("riders", len(riders)),
			zap.Float32("dx", delta.X),
			zap.Float32("dy", delta.Y),
		)
	}
	return len(riders)
}
