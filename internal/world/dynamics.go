package world

import (
	"diorama/internal/components"
	"diorama/internal/engine"
	"diorama/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// integrate applies gravity to free bodies and pushes them out of whatever
// they land in. Dynamic rigidbodies fall in 3D; 2D bodies fall on the XY
// plane and never change depth. Character controllers run their own gravity
// and kinematic bodies are only moved by scripts.
func (w *World) integrate(deltaTime float32) {
	colliders := w.GetCollidableObjects()
	w.each(func(g *engine.GameObject) {
		if !g.Active {
			return
		}
		if rb := engine.GetComponent[*components.Rigidbody](g); rb != nil {
			w.integrateRigidbody(g, rb, colliders, deltaTime)
			return
		}
		if body := engine.GetComponent[*components.Body2D](g); body != nil {
			w.integrateBody2D(g, body, colliders, deltaTime)
		}
	})
}

func (w *World) integrateRigidbody(g *engine.GameObject, rb *components.Rigidbody, colliders []*engine.GameObject, deltaTime float32) {
	if rb.IsKinematic || rb.IsSleeping {
		return
	}
	if rb.UseGravity {
		rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(w.Gravity, deltaTime))
	}
	g.Translate(rl.Vector3Scale(rb.Velocity, deltaTime))

	for _, other := range colliders {
		self, static, ok := contact(g, other)
		if !ok {
			continue
		}
		pushOut := self.Resolve(static)
		g.Translate(pushOut)

		pushLen := rl.Vector3Length(pushOut)
		if pushLen < 0.0001 {
			continue
		}
		normal := rl.Vector3Scale(pushOut, 1/pushLen)

		velAlongNormal := rl.Vector3DotProduct(rb.Velocity, normal)
		if velAlongNormal < 0 {
			// Cancel the approach, bounce back a share of it
			reflect := rl.Vector3Scale(normal, -(1+rb.Bounciness)*velAlongNormal)
			rb.Velocity = rl.Vector3Add(rb.Velocity, reflect)

			rb.Velocity.X *= (1 - rb.Friction)
			rb.Velocity.Z *= (1 - rb.Friction)
		}
	}

	rb.TrySleep(deltaTime)
}

func (w *World) integrateBody2D(g *engine.GameObject, body *components.Body2D, colliders []*engine.GameObject, deltaTime float32) {
	if body.Kinematic {
		return
	}
	body.Velocity.Y += w.Gravity.Y * body.GravityScale * deltaTime
	body.Translate(body.Velocity.X*deltaTime, body.Velocity.Y*deltaTime)

	for _, other := range colliders {
		self, static, ok := contact(g, other)
		if !ok {
			continue
		}
		pushOut := self.ResolveXY(static)
		body.Translate(pushOut.X, pushOut.Y)
		if pushOut.Y > 0 && body.Velocity.Y < 0 {
			body.Velocity.Y = 0
		}
		if pushOut.Y < 0 && body.Velocity.Y > 0 {
			body.Velocity.Y = 0
		}
		if pushOut.X != 0 {
			body.Velocity.X = 0
		}
	}
}

// contact returns the overlapping boxes of g and other. Bodies never collide
// with themselves, their own hierarchy, character controllers, or other free
// bodies.
func contact(g, other *engine.GameObject) (physics.AABB, physics.AABB, bool) {
	var none physics.AABB
	if other.IsDescendantOf(g) || g.IsDescendantOf(other) {
		return none, none, false
	}
	if engine.GetComponent[*components.CharacterController](other) != nil {
		return none, none, false
	}
	if rb := engine.GetComponent[*components.Rigidbody](other); rb != nil && !rb.IsKinematic {
		return none, none, false
	}
	if body := engine.GetComponent[*components.Body2D](other); body != nil && !body.Kinematic {
		return none, none, false
	}

	self, ok := components.ColliderBounds(g)
	if !ok {
		return none, none, false
	}
	static, ok := components.ColliderBounds(other)
	if !ok || !self.Overlaps(static) {
		return none, none, false
	}
	return self, static, true
}
