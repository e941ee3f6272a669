package components

import (
	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Camera", func() engine.Serializable {
		return NewCamera()
	})
}

type Camera struct {
	engine.BaseComponent
	FOV        float32
	Near       float32
	Far        float32
	Projection rl.CameraProjection
	IsMain     bool // If true, this is the active game camera
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        45.0,
		Near:       0.1,
		Far:        1000.0,
		Projection: rl.CameraPerspective,
		IsMain:     false,
	}
}

// TypeName implements engine.Serializable
func (c *Camera) TypeName() string {
	return "Camera"
}

// Serialize implements engine.Serializable
func (c *Camera) Serialize() map[string]any {
	return map[string]any{
		"type":   "Camera",
		"fov":    c.FOV,
		"near":   c.Near,
		"far":    c.Far,
		"isMain": c.IsMain,
	}
}

// Deserialize implements engine.Serializable
func (c *Camera) Deserialize(data map[string]any) {
	if f, ok := engine.Float32(data, "fov"); ok {
		c.FOV = f
	}
	if n, ok := engine.Float32(data, "near"); ok {
		c.Near = n
	}
	if f, ok := engine.Float32(data, "far"); ok {
		c.Far = f
	}
	if m, ok := data["isMain"].(bool); ok {
		c.IsMain = m
	}
}

// GetRaylibCamera builds a raylib camera looking along the object's forward axis.
func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.WorldPosition()
	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, g.Forward()),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}

// FindMainCamera returns the first active camera flagged IsMain in the scene.
func FindMainCamera(scene *engine.Scene) *Camera {
	if scene == nil {
		return nil
	}
	for _, g := range scene.GameObjects {
		if !g.Active {
			continue
		}
		if cam := engine.GetComponent[*Camera](g); cam != nil && cam.IsMain {
			return cam
		}
	}
	return nil
}
