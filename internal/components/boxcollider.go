package components

import (
	"diorama/internal/engine"
	"diorama/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("BoxCollider", func() engine.Serializable {
		return NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	})
}

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	scale := g.WorldScale()
	offset := rl.Vector3{X: b.Offset.X * scale.X, Y: b.Offset.Y * scale.Y, Z: b.Offset.Z * scale.Z}
	return rl.Vector3Add(g.WorldPosition(), offset)
}

// GetWorldSize returns the collider size scaled by the object's world scale
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	scale := b.GetGameObject().WorldScale()
	return rl.Vector3{X: b.Size.X * scale.X, Y: b.Size.Y * scale.Y, Z: b.Size.Z * scale.Z}
}

// GetAABB returns the world-space box. Rotation is ignored; platforms and
// riders are axis aligned.
func (b *BoxCollider) GetAABB() physics.AABB {
	return physics.NewAABBFromCenter(b.GetCenter(), b.GetWorldSize())
}

func (b *BoxCollider) TypeName() string {
	return "BoxCollider"
}

func (b *BoxCollider) Serialize() map[string]any {
	return map[string]any{
		"type":   "BoxCollider",
		"size":   [3]float32{b.Size.X, b.Size.Y, b.Size.Z},
		"offset": [3]float32{b.Offset.X, b.Offset.Y, b.Offset.Z},
	}
}

func (b *BoxCollider) Deserialize(data map[string]any) {
	if v, ok := engine.Vector3(data, "size"); ok {
		b.Size = rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
	}
	if v, ok := engine.Vector3(data, "offset"); ok {
		b.Offset = rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
	}
}
