package game

import (
	"diorama/internal/drag"
	"diorama/internal/engine"
	"diorama/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HandName is the scene object that stands in for a tracked VR controller.
const HandName = "VRHand"

const maxHandPitch = 89

// Hand is a keyboard-steered stand-in for a tracked controller: arrows aim,
// PageUp/PageDown raise and lower it, V is the trigger.
type Hand struct {
	Object    *engine.GameObject
	TurnSpeed float32 // degrees/sec
	LiftSpeed float32 // units/sec

	pointer *drag.VRPointer
}

// FindOrCreateHand returns the scene's VRHand, spawning one in front of the
// diorama when the scene does not define it.
func FindOrCreateHand(w *world.World) *Hand {
	obj := findByName(w.Scene, HandName)
	if obj == nil {
		obj = engine.NewGameObject(HandName)
		obj.Transform.Position = rl.Vector3{X: 0, Y: 3, Z: 12}
		obj.Transform.Rotation = rl.Vector3{X: -5}
		w.SpawnObject(obj)
	}
	return &Hand{Object: obj, TurnSpeed: 60, LiftSpeed: 3}
}

func findByName(scene *engine.Scene, name string) *engine.GameObject {
	var found *engine.GameObject
	for _, g := range scene.GameObjects {
		world.Walk(g, func(o *engine.GameObject) {
			if found == nil && o.Name == name {
				found = o
			}
		})
	}
	return found
}

// Pointer returns the VR pointer that follows this hand.
func (h *Hand) Pointer(scene *engine.Scene, aimPitch float32) *drag.VRPointer {
	if h.pointer == nil {
		h.pointer = &drag.VRPointer{Scene: scene, AimPitch: aimPitch}
		h.pointer.Controller.Set(h.Object)
	}
	return h.pointer
}

// Toggle simulates the controller losing and regaining tracking.
func (h *Hand) Toggle() {
	h.Object.Active = !h.Object.Active
}

func (h *Hand) Update(deltaTime float32) {
	if !rl.IsWindowReady() {
		return
	}
	var yaw, pitch, lift float32
	if rl.IsKeyDown(rl.KeyLeft) {
		yaw++
	}
	if rl.IsKeyDown(rl.KeyRight) {
		yaw--
	}
	if rl.IsKeyDown(rl.KeyUp) {
		pitch++
	}
	if rl.IsKeyDown(rl.KeyDown) {
		pitch--
	}
	if rl.IsKeyDown(rl.KeyPageUp) {
		lift++
	}
	if rl.IsKeyDown(rl.KeyPageDown) {
		lift--
	}
	h.Steer(yaw, pitch, lift, deltaTime)
}

// Steer turns and lifts the hand by the given input directions, each in
// [-1, 1]. Pitch stays short of straight up or down.
func (h *Hand) Steer(yaw, pitch, lift, deltaTime float32) {
	rot := &h.Object.Transform.Rotation
	rot.Y += yaw * h.TurnSpeed * deltaTime
	rot.X = rl.Clamp(rot.X+pitch*h.TurnSpeed*deltaTime, -maxHandPitch, maxHandPitch)
	h.Object.Transform.Position.Y += lift * h.LiftSpeed * deltaTime
}

// Draw renders the hand and its aim beam. Must run inside BeginMode3D.
func (h *Hand) Draw(debug bool) {
	if !h.Object.Active {
		return
	}
	pos := h.Object.WorldPosition()
	rl.DrawSphere(pos, 0.15, rl.Purple)
	if h.pointer == nil {
		return
	}
	ray, ok := h.pointer.TryGetRay()
	if !ok {
		return
	}
	length := float32(3)
	if debug {
		length = 30
	}
	rl.DrawLine3D(ray.Position, rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, length)), rl.Violet)
}
