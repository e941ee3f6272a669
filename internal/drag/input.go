package drag

import rl "github.com/gen2brain/raylib-go/raylib"

// Default activation thresholds. A signal must rise above PressThreshold to
// count as held and fall below ReleaseThreshold to count as let go, so a
// trigger resting near one value does not chatter.
const (
	DefaultPressThreshold   = 0.3
	DefaultReleaseThreshold = 0.15
)

// SignalSource is an analog activation input in [0, 1]: a VR grip or
// trigger, or a digital button reported as 0 or 1.
type SignalSource interface {
	Value() float32
}

type SignalFunc func() float32

func (f SignalFunc) Value() float32 {
	if f == nil {
		return 0
	}
	return f()
}

// Constant is a fixed signal, e.g. Constant(1) for a held button.
type Constant float32

func (c Constant) Value() float32 {
	return float32(c)
}

// MouseButton reports a raylib mouse button as a 0/1 signal.
func MouseButton(button rl.MouseButton) SignalFunc {
	return func() float32 {
		if rl.IsWindowReady() && rl.IsMouseButtonDown(button) {
			return 1
		}
		return 0
	}
}

// KeyAxis reports a keyboard key as a 0/1 signal.
func KeyAxis(key int32) SignalFunc {
	return func() float32 {
		if rl.IsWindowReady() && rl.IsKeyDown(key) {
			return 1
		}
		return 0
	}
}

// Button turns an analog signal into a debounced held state with hysteresis.
type Button struct {
	PressThreshold   float32
	ReleaseThreshold float32

	down bool
}

func NewButton(press, release float32) Button {
	return Button{PressThreshold: press, ReleaseThreshold: release}
}

// Sample feeds one frame's value and returns the held state.
func (b *Button) Sample(value float32) bool {
	if b.down {
		if value < b.ReleaseThreshold {
			b.down = false
		}
	} else if value > b.PressThreshold {
		b.down = true
	}
	return b.down
}

func (b *Button) Down() bool {
	return b.down
}

// Device identifies which input path produced a ray or a press.
type Device int

const (
	NoDevice Device = iota
	VRDevice
	DesktopDevice
)

func (d Device) String() string {
	switch d {
	case VRDevice:
		return "vr"
	case DesktopDevice:
		return "desktop"
	}
	return "none"
}

// other is the alternate input path.
func (d Device) other() Device {
	switch d {
	case VRDevice:
		return DesktopDevice
	case DesktopDevice:
		return VRDevice
	}
	return NoDevice
}

// Input bundles both live input paths. Either side may be nil. Hover tests the
// VR path first; a press grabs with the device that pressed.
type Input struct {
	VRPointer      PointerSource
	VRTrigger      SignalSource
	DesktopPointer PointerSource
	DesktopButton  SignalSource
}

func (in *Input) ray(device Device) (rl.Ray, bool) {
	if in == nil {
		return rl.Ray{}, false
	}
	var src PointerSource
	switch device {
	case VRDevice:
		src = in.VRPointer
	case DesktopDevice:
		src = in.DesktopPointer
	}
	if src == nil {
		return rl.Ray{}, false
	}
	return src.TryGetRay()
}

func signal(s SignalSource) float32 {
	if s == nil {
		return 0
	}
	return s.Value()
}

// Gate is shared by every controller in a world. It carries the global
// "block dragging" flag (set while another action such as shooting is
// active) and makes sure a single platform is dragged at a time.
type Gate struct {
	suppressed bool
	owner      *Controller
}

func (g *Gate) SetSuppressed(v bool) {
	if g != nil {
		g.suppressed = v
	}
}

func (g *Gate) Suppressed() bool {
	return g != nil && g.suppressed
}

// Owner returns the controller currently dragging, if any.
func (g *Gate) Owner() *Controller {
	if g == nil {
		return nil
	}
	return g.owner
}

func (g *Gate) claim(c *Controller) bool {
	if g == nil {
		return true
	}
	if g.owner != nil && g.owner != c {
		return false
	}
	g.owner = c
	return true
}

func (g *Gate) release(c *Controller) {
	if g != nil && g.owner == c {
		g.owner = nil
	}
}
