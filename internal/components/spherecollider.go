package components

import (
	"diorama/internal/engine"
	"diorama/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("SphereCollider", func() engine.Serializable {
		return NewSphereCollider(0.5)
	})
}

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

// GetAABB returns the box enclosing the sphere.
func (s *SphereCollider) GetAABB() physics.AABB {
	d := s.Radius * 2
	return physics.NewAABBFromCenter(s.GetCenter(), rl.Vector3{X: d, Y: d, Z: d})
}

func (s *SphereCollider) TypeName() string {
	return "SphereCollider"
}

func (s *SphereCollider) Serialize() map[string]any {
	return map[string]any{
		"type":   "SphereCollider",
		"radius": s.Radius,
	}
}

func (s *SphereCollider) Deserialize(data map[string]any) {
	if v, ok := engine.Float32(data, "radius"); ok {
		s.Radius = v
	}
	if v, ok := engine.Vector3(data, "offset"); ok {
		s.Offset = rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
	}
}
