package drag

import (
	"diorama/internal/components"
	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PointerSource yields the world-space ray of an aiming device. ok is false
// when the device is unavailable this frame.
type PointerSource interface {
	TryGetRay() (ray rl.Ray, ok bool)
}

// VRPointer aims along a tracked controller's forward axis. Physical
// controllers point a little off their modelled forward, so the forward vector
// is pitched by AimPitch degrees around the controller's local right axis.
type VRPointer struct {
	Scene      *engine.Scene
	Controller engine.GameObjectRef
	AimPitch   float32
}

func (p *VRPointer) TryGetRay() (rl.Ray, bool) {
	ctrl := p.Controller.Get(p.Scene)
	if ctrl == nil || !ctrl.Active {
		return rl.Ray{}, false
	}
	dir := ctrl.Forward()
	if p.AimPitch != 0 {
		q := rl.QuaternionFromAxisAngle(ctrl.Right(), p.AimPitch*rl.Deg2rad)
		dir = rl.Vector3RotateByQuaternion(dir, q)
	}
	return rl.Ray{Position: ctrl.WorldPosition(), Direction: rl.Vector3Normalize(dir)}, true
}

// CameraProvider returns the camera that screen pointers are unprojected
// through, or false when none is active.
type CameraProvider func() (rl.Camera3D, bool)

// ScreenPosition returns the pointer's position in screen pixels, or false
// when there is no pointer device.
type ScreenPosition func() (rl.Vector2, bool)

// DesktopPointer casts a ray from the active camera through the mouse.
type DesktopPointer struct {
	Camera CameraProvider
	Mouse  ScreenPosition
}

func (p *DesktopPointer) TryGetRay() (rl.Ray, bool) {
	if p.Camera == nil || p.Mouse == nil {
		return rl.Ray{}, false
	}
	cam, ok := p.Camera()
	if !ok {
		return rl.Ray{}, false
	}
	pos, ok := p.Mouse()
	if !ok {
		return rl.Ray{}, false
	}
	return rl.GetScreenToWorldRay(pos, cam), true
}

// MainCamera returns a CameraProvider over the scene's main camera.
func MainCamera(scene *engine.Scene) CameraProvider {
	return func() (rl.Camera3D, bool) {
		cam := components.FindMainCamera(scene)
		if cam == nil {
			return rl.Camera3D{}, false
		}
		return cam.GetRaylibCamera(), true
	}
}

// RaylibMouse reads the mouse from the raylib window.
func RaylibMouse() (rl.Vector2, bool) {
	if !rl.IsWindowReady() || !rl.IsCursorOnScreen() {
		return rl.Vector2{}, false
	}
	return rl.GetMousePosition(), true
}

// FixedPointer is a scripted ray, useful for automation and tests.
type FixedPointer struct {
	Ray       rl.Ray
	Available bool
}

func (p *FixedPointer) TryGetRay() (rl.Ray, bool) {
	if p == nil || !p.Available {
		return rl.Ray{}, false
	}
	return p.Ray, true
}

// Aim points the fixed pointer from origin toward target.
func (p *FixedPointer) Aim(origin, target rl.Vector3) {
	p.Ray = rl.Ray{Position: origin, Direction: rl.Vector3Normalize(rl.Vector3Subtract(target, origin))}
	p.Available = true
}
