package components

import (
	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Body2D", func() engine.Serializable {
		return NewBody2D()
	})
}

// Body2D is a body that lives on the world's XY plane, the flat miniature
// world projected on the screen. Its depth coordinate never changes.
type Body2D struct {
	engine.BaseComponent
	Velocity     rl.Vector2
	GravityScale float32
	Kinematic    bool // kinematic 2D bodies are only moved by scripts
}

func NewBody2D() *Body2D {
	return &Body2D{GravityScale: 1}
}

// Translate moves the body on its plane, dropping any depth component.
func (b *Body2D) Translate(dx, dy float32) {
	g := b.GetGameObject()
	if g == nil {
		return
	}
	g.Translate(rl.Vector3{X: dx, Y: dy})
}

func (b *Body2D) TypeName() string {
	return "Body2D"
}

func (b *Body2D) Serialize() map[string]any {
	return map[string]any{
		"type":         "Body2D",
		"gravityScale": b.GravityScale,
		"kinematic":    b.Kinematic,
	}
}

func (b *Body2D) Deserialize(data map[string]any) {
	if v, ok := engine.Float32(data, "gravityScale"); ok {
		b.GravityScale = v
	}
	if v, ok := data["kinematic"].(bool); ok {
		b.Kinematic = v
	}
}
