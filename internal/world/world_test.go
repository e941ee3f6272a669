package world

import (
	"os"
	"path/filepath"
	"testing"

	"diorama/internal/components"
	"diorama/internal/drag"
	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-3

func newTestWorld() *World {
	tuning := drag.DefaultTuning()
	tuning.SmoothingRate = 1000
	return New(tuning, nil)
}

func boxObject(name string, pos, size rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(components.NewBoxCollider(size))
	return g
}

func TestWorldIsDragHost(t *testing.T) {
	w := newTestWorld()
	var _ drag.Host = w

	g := boxObject("p", rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})
	d := drag.NewDraggable(drag.Horizontal, 2)
	g.AddComponent(d)
	w.SpawnObject(g)

	assert.True(t, d.Live())
	assert.Equal(t, 1, w.Registry.Len())

	w.Destroy(g)
	assert.False(t, d.Live())
	assert.Equal(t, 0, w.Registry.Len())
	assert.Nil(t, w.Scene.FindByUID(g.UID))
}

func TestGetCollidableObjects(t *testing.T) {
	w := newTestWorld()
	parent := engine.NewGameObject("rig")
	child := boxObject("child", rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})
	parent.AddChild(child)
	hidden := boxObject("hidden", rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})
	hidden.Active = false
	w.SpawnObject(parent)
	w.SpawnObject(hidden)

	assert.Equal(t, []*engine.GameObject{child}, w.GetCollidableObjects())
}

func TestRaycastNearest(t *testing.T) {
	w := newTestWorld()
	near := boxObject("near", rl.Vector3{Z: 2}, rl.Vector3{X: 1, Y: 1, Z: 1})
	far := boxObject("far", rl.Vector3{Z: -2}, rl.Vector3{X: 1, Y: 1, Z: 1})
	w.SpawnObject(far)
	w.SpawnObject(near)

	hit, ok := w.Raycast(rl.Vector3{Z: 10}, rl.Vector3{Z: -1}, 100)
	require.True(t, ok)
	assert.Same(t, near, hit.GameObject)
	assert.InDelta(t, 7.5, hit.Distance, eps)
	assert.Equal(t, rl.Vector3{Z: 1}, hit.Normal)

	_, ok = w.Raycast(rl.Vector3{X: 5, Z: 10}, rl.Vector3{Z: -1}, 100)
	assert.False(t, ok)
}

func TestStepDropsRigidbodyOntoFloor(t *testing.T) {
	w := newTestWorld()
	w.SpawnObject(boxObject("floor", rl.Vector3{}, rl.Vector3{X: 10, Y: 1, Z: 10}))

	crate := boxObject("crate", rl.Vector3{Y: 3}, rl.Vector3{X: 1, Y: 1, Z: 1})
	rb := components.NewRigidbody()
	crate.AddComponent(rb)
	w.SpawnObject(crate)

	for range 120 {
		w.Step(1.0 / 60)
	}

	assert.InDelta(t, 1, crate.WorldPosition().Y, 0.05)
	assert.InDelta(t, 0, crate.WorldPosition().X, eps)
	assert.True(t, rb.IsSleeping)
}

func TestStepBody2DKeepsDepth(t *testing.T) {
	w := newTestWorld()
	w.SpawnObject(boxObject("floor", rl.Vector3{}, rl.Vector3{X: 10, Y: 1, Z: 10}))

	sprite := boxObject("sprite", rl.Vector3{Y: 3, Z: 0.45}, rl.Vector3{X: 1, Y: 1, Z: 1})
	body := components.NewBody2D()
	sprite.AddComponent(body)
	w.SpawnObject(sprite)

	for range 120 {
		w.Step(1.0 / 60)
	}

	pos := sprite.WorldPosition()
	assert.InDelta(t, 1, pos.Y, 0.05)
	assert.InDelta(t, 0.45, pos.Z, eps)
	assert.Zero(t, body.Velocity.Y)
}

func TestKinematicBodiesDoNotFall(t *testing.T) {
	w := newTestWorld()
	g := boxObject("cart", rl.Vector3{Y: 3}, rl.Vector3{X: 1, Y: 1, Z: 1})
	rb := components.NewRigidbody()
	rb.IsKinematic = true
	g.AddComponent(rb)
	w.SpawnObject(g)

	w.Step(0.5)
	assert.Equal(t, float32(3), g.WorldPosition().Y)
}

const demoScene = `{
  "objects": [
    {
      "name": "Floor",
      "position": [0, -3, 0],
      "components": [
        {"type": "BoxCollider", "size": [20, 1, 4]},
        {"type": "BoxRenderer", "size": [20, 1, 4], "color": "DarkGray"}
      ]
    },
    {
      "name": "Slider",
      "position": [0, 0, 0],
      "components": [
        {"type": "BoxCollider", "size": [4, 1, 2]},
        {"type": "BoxRenderer", "size": [4, 1, 2], "color": "SkyBlue"},
        {"type": "Draggable", "axis": "horizontal", "range": 5}
      ],
      "children": [
        {"name": "Keel", "position": [1.5, -0.75, 0], "components": [{"type": "BoxCollider", "size": [1, 0.5, 2]}]}
      ]
    },
    {
      "name": "Lift",
      "position": [6, 0, 0],
      "components": [
        {"type": "BoxCollider", "size": [2, 1, 2]},
        {"type": "Draggable", "axis": "vertical", "min": -1, "max": 4, "padding": 0.2}
      ]
    },
    {
      "name": "Crate",
      "position": [-1, 1, 0],
      "components": [
        {"type": "BoxCollider", "size": [1, 1, 1]},
        {"type": "Rigidbody"},
        {"type": "Mystery"}
      ]
    }
  ]
}`

func writeScene(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestLoadScene(t *testing.T) {
	w := newTestWorld()
	require.NoError(t, w.LoadScene(writeScene(t, demoScene)))
	w.Start()

	require.Len(t, w.Scene.GameObjects, 4)
	assert.Equal(t, 2, w.Registry.Len())

	slider := w.Scene.FindByName("Slider")
	require.NotNil(t, slider)
	d := engine.GetComponent[*drag.Draggable](slider)
	require.NotNil(t, d)
	assert.Equal(t, w.Tuning.Padding, d.Padding)
	assert.NotNil(t, engine.GetComponent[*drag.Controller](slider))

	// Bounds include the child keel
	assert.InDelta(t, -1, d.Bounds().Min.Y, eps)
	assert.InDelta(t, 0.5, d.Bounds().Max.Y, eps)

	lift := engine.GetComponent[*drag.Draggable](w.Scene.FindByName("Lift"))
	require.NotNil(t, lift)
	assert.Equal(t, drag.Vertical, lift.Axis)
	assert.Equal(t, float32(0.2), lift.Padding)
	lo, hi := lift.AllowedRange()
	assert.Equal(t, float32(-1), lo)
	assert.Equal(t, float32(4), hi)

	keel := slider.Children[0]
	assert.Same(t, keel, w.Scene.FindByUID(keel.UID))
}

func TestLoadSceneErrors(t *testing.T) {
	w := newTestWorld()

	err := w.LoadScene(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.Error(t, w.LoadScene(writeScene(t, "{not json")))

	bad := `{"objects": [{"name": "Bad", "components": [{"type": "Draggable", "range": -2}]}]}`
	err = w.LoadScene(writeScene(t, bad))
	assert.ErrorIs(t, err, drag.ErrInvalidRange)
	assert.Empty(t, w.Scene.GameObjects)
}

func TestSaveSceneRoundTrip(t *testing.T) {
	w := newTestWorld()
	require.NoError(t, w.LoadScene(writeScene(t, demoScene)))

	out := filepath.Join(t.TempDir(), "saved.json")
	require.NoError(t, w.SaveScene(out))

	reloaded := newTestWorld()
	require.NoError(t, reloaded.LoadScene(out))
	reloaded.Start()

	assert.Len(t, reloaded.Scene.GameObjects, 4)
	assert.Equal(t, 2, reloaded.Registry.Len())
	lift := engine.GetComponent[*drag.Draggable](reloaded.Scene.FindByName("Lift"))
	require.NotNil(t, lift)
	assert.True(t, lift.UseExplicitRange)
	assert.Len(t, reloaded.Scene.FindByName("Slider").Children, 1)
}

func TestDragCarriesRiderThroughWorld(t *testing.T) {
	w := newTestWorld()
	require.NoError(t, w.LoadScene(writeScene(t, demoScene)))
	w.Start()

	pointer := &drag.FixedPointer{}
	var button float32
	w.Input.DesktopPointer = pointer
	w.Input.DesktopButton = drag.SignalFunc(func() float32 { return button })

	// Let the crate settle on the slider
	for range 60 {
		w.Step(1.0 / 60)
	}
	crate := w.Scene.FindByName("Crate")
	require.InDelta(t, 1, crate.WorldPosition().Y, 0.05)

	pointer.Aim(rl.Vector3{Z: 10}, rl.Vector3{})
	button = 1
	w.Step(1.0 / 60)
	slider := engine.GetComponent[*drag.Draggable](w.Scene.FindByName("Slider"))
	require.Equal(t, drag.Dragging, slider.State())

	pointer.Aim(rl.Vector3{X: -2, Z: 10}, rl.Vector3{X: -2})
	w.Step(1.0 / 60)

	assert.InDelta(t, -2, slider.Position(), eps)
	assert.InDelta(t, -3, crate.WorldPosition().X, eps)
}

const nestedScene = `{
  "objects": [
    {
      "name": "Rig",
      "position": [5, 0, 0],
      "components": [],
      "children": [
        {
          "name": "Deck",
          "components": [
            {"type": "BoxCollider", "size": [2, 1, 2]},
            {"type": "Draggable", "axis": "horizontal", "range": 4}
          ]
        }
      ]
    }
  ]
}`

func TestDragNestedPlatform(t *testing.T) {
	w := newTestWorld()
	require.NoError(t, w.LoadScene(writeScene(t, nestedScene)))
	w.Start()

	pointer := &drag.FixedPointer{}
	var button float32
	w.Input.DesktopPointer = pointer
	w.Input.DesktopButton = drag.SignalFunc(func() float32 { return button })

	deck := engine.GetComponent[*drag.Draggable](w.Scene.FindByName("Deck"))
	require.NotNil(t, deck)
	require.True(t, deck.Live())

	pointer.Aim(rl.Vector3{X: 5, Z: 10}, rl.Vector3{X: 5})
	button = 1
	w.Step(1.0 / 60)
	require.Equal(t, drag.Dragging, deck.State())

	pointer.Aim(rl.Vector3{X: 7, Z: 10}, rl.Vector3{X: 7})
	w.Step(1.0 / 60)
	assert.InDelta(t, 7, deck.Position(), eps)

	button = 0
	w.Step(1.0 / 60)
	assert.Equal(t, drag.Idle, deck.State())
}

func TestLoadSceneRejectsSecondDraggable(t *testing.T) {
	w := newTestWorld()
	src := `{"objects": [{"name": "Twin", "components": [
		{"type": "Draggable", "axis": "horizontal", "range": 2},
		{"type": "Draggable", "axis": "vertical", "range": 2}
	]}]}`

	err := w.LoadScene(writeScene(t, src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than one Draggable")
	assert.Empty(t, w.Scene.GameObjects)
}

func TestShippedAssetsLoad(t *testing.T) {
	tuning, err := drag.LoadTuning(filepath.Join("..", "..", "assets", "config", "drag.yaml"))
	require.NoError(t, err)
	assert.Equal(t, drag.DefaultTuning(), tuning)

	w := New(tuning, nil)
	require.NoError(t, w.LoadScene(filepath.Join("..", "..", "assets", "scenes", "demo.json")))
	w.Start()

	assert.Equal(t, 2, len(w.Registry.Family(drag.Horizontal)))
	assert.Equal(t, 1, len(w.Registry.Family(drag.Vertical)))
	assert.NotNil(t, components.FindMainCamera(w.Scene))
	assert.Len(t, w.Scene.FindByTag("platform"), 3)
}
