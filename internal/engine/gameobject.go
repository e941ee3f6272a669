package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// RotationMatrix builds the rotation from Euler degrees, X then Y then Z.
func (t Transform) RotationMatrix() rl.Matrix {
	return eulerMatrix(t.Rotation)
}

func eulerMatrix(rot rl.Vector3) rl.Matrix {
	rotX := rl.MatrixRotateX(rot.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(rot.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(rot.Z * rl.Deg2rad)
	return rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
}

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of concrete type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// FindComponent is GetComponent for interface types that need not embed Component.
func FindComponent[T any](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// GetComponentsInChildren collects every T on g and its descendants, depth first.
func GetComponentsInChildren[T Component](g *GameObject) []T {
	var result []T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			result = append(result, typed)
		}
	}
	for _, child := range g.Children {
		result = append(result, GetComponentsInChildren[T](child)...)
	}
	return result
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	g.started = true
	for _, c := range g.components {
		c.Start()
	}
	for _, child := range g.Children {
		child.Start()
	}
}

// Update runs the components, then the active children. An inactive object
// skips its whole subtree.
func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
	if len(g.Children) == 0 {
		return
	}
	children := make([]*GameObject, len(g.Children))
	copy(children, g.Children)
	for _, child := range children {
		child.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// Root walks up the hierarchy to the top-most ancestor.
func (g *GameObject) Root() *GameObject {
	root := g
	for root.Parent != nil {
		root = root.Parent
	}
	return root
}

// IsDescendantOf reports whether g is ancestor or sits somewhere below it.
func (g *GameObject) IsDescendantOf(ancestor *GameObject) bool {
	for obj := g; obj != nil; obj = obj.Parent {
		if obj == ancestor {
			return true
		}
	}
	return false
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentScale := g.Parent.WorldScale()

	// Scale local position by parent's world scale
	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}

	rotated := rl.Vector3Transform(scaled, eulerMatrix(g.Parent.WorldRotation()))
	return rl.Vector3Add(parentPos, rotated)
}

// SetWorldPosition moves g so that its world position equals pos.
func (g *GameObject) SetWorldPosition(pos rl.Vector3) {
	g.Translate(rl.Vector3Subtract(pos, g.WorldPosition()))
}

// Translate shifts g by a world-space delta, converting into the parent's space.
func (g *GameObject) Translate(delta rl.Vector3) {
	if g.Parent == nil {
		g.Transform.Position = rl.Vector3Add(g.Transform.Position, delta)
		return
	}
	inv := rl.MatrixTranspose(eulerMatrix(g.Parent.WorldRotation()))
	local := rl.Vector3Transform(delta, inv)
	ps := g.Parent.WorldScale()
	if ps.X != 0 {
		local.X /= ps.X
	}
	if ps.Y != 0 {
		local.Y /= ps.Y
	}
	if ps.Z != 0 {
		local.Z /= ps.Z
	}
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, local)
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}

// Forward is the world-space -Z axis of the object (raylib convention).
func (g *GameObject) Forward() rl.Vector3 {
	return rl.Vector3Transform(rl.Vector3{X: 0, Y: 0, Z: -1}, eulerMatrix(g.WorldRotation()))
}

// Right is the world-space +X axis of the object.
func (g *GameObject) Right() rl.Vector3 {
	return rl.Vector3Transform(rl.Vector3{X: 1, Y: 0, Z: 0}, eulerMatrix(g.WorldRotation()))
}
