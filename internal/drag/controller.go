package drag

import (
	"diorama/internal/components"
	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Controller drives the Draggable on its object from live input: it picks
// the platform with the pointer, follows the pointer along the platform's
// axis while the activation button is held, resolves collisions against the
// other platforms, carries riders, and tints the platform by state.
type Controller struct {
	engine.BaseComponent

	Input    *Input
	Gate     *Gate
	Tuning   Tuning
	Feedback Feedback

	logger    *zap.Logger
	draggable *Draggable
	resolver  *Resolver
	carrier   *Carrier

	vrButton    Button
	deskButton  Button
	vrWasDown   bool
	deskWasDown bool

	offset    float32
	grabbedBy Device
	session   uuid.UUID
	rayLost   bool
	elapsed   float32
}

func NewController(input *Input, gate *Gate, tuning Tuning, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		Input:      input,
		Gate:       gate,
		Tuning:     tuning,
		Feedback:   tuning.FeedbackStyle(),
		logger:     logger,
		vrButton:   NewButton(tuning.PressThreshold, tuning.ReleaseThreshold),
		deskButton: NewButton(tuning.PressThreshold, tuning.ReleaseThreshold),
	}
}

// Attach adds a controller to g, which must already carry a Draggable.
func Attach(g *engine.GameObject, input *Input, gate *Gate, tuning Tuning, logger *zap.Logger) *Controller {
	c := NewController(input, gate, tuning, logger)
	g.AddComponent(c)
	return c
}

// Start binds to the host world's registry and collidables.
func (c *Controller) Start() {
	g := c.GetGameObject()
	if g == nil || g.Scene == nil {
		return
	}
	if host, ok := g.Scene.World.(Host); ok {
		c.Bind(host.DragRegistry(), host)
	}
}

// Bind wires the controller to a registry and a collidable query directly.
func (c *Controller) Bind(reg *Registry, bodies BodyQuery) {
	if c.draggable == nil {
		c.draggable = engine.GetComponent[*Draggable](c.GetGameObject())
	}
	c.resolver = NewResolver(reg, c.logger)
	c.carrier = NewCarrier(bodies, c.Tuning, c.logger)
}

func (c *Controller) Draggable() *Draggable {
	return c.draggable
}

// Session identifies the current drag; it is uuid.Nil when not dragging.
func (c *Controller) Session() uuid.UUID {
	return c.session
}

// GrabbedBy is the device that started the current drag.
func (c *Controller) GrabbedBy() Device {
	return c.grabbedBy
}

func (c *Controller) Update(deltaTime float32) {
	d := c.draggable
	if d == nil || c.resolver == nil {
		return
	}
	c.elapsed += deltaTime

	var vr, desk float32
	if c.Input != nil {
		vr = signal(c.Input.VRTrigger)
		desk = signal(c.Input.DesktopButton)
	}
	vrDown := c.vrButton.Sample(vr)
	deskDown := c.deskButton.Sample(desk)
	var pressed pressEdges
	pressed[VRDevice] = vrDown && !c.vrWasDown
	pressed[DesktopDevice] = deskDown && !c.deskWasDown
	c.vrWasDown, c.deskWasDown = vrDown, deskDown
	down := vrDown || deskDown

	if c.dragging() {
		switch {
		case !down:
			c.release("button released")
		case d.Blocked || c.Gate.Suppressed():
			c.release("blocked")
		case !d.Live() || d.State() != Dragging:
			c.release("deactivated")
		default:
			c.drag(deltaTime)
		}
	} else {
		c.hover(pressed)
	}

	c.applyFeedback()
}

func (c *Controller) dragging() bool {
	return c.session != uuid.Nil
}

// pressEdges records which devices' buttons went down this frame.
type pressEdges [DesktopDevice + 1]bool

func (c *Controller) hover(pressed pressEdges) {
	d := c.draggable
	if !d.Live() || d.Blocked || c.Gate.Suppressed() {
		d.setState(Idle)
		return
	}
	if c.pick() == NoDevice {
		d.setState(Idle)
		return
	}
	d.setState(Hovered)

	// VR wins when both buttons go down in the same frame
	for _, device := range [...]Device{VRDevice, DesktopDevice} {
		if !pressed[device] {
			continue
		}
		if ray, ok := c.grabRay(device); ok && c.Gate.claim(c) {
			c.grab(device, ray)
			return
		}
	}
}

// pick returns the first device whose ray hits the platform, VR first.
func (c *Controller) pick() Device {
	for _, device := range [...]Device{VRDevice, DesktopDevice} {
		ray, ok := c.Input.ray(device)
		if !ok {
			continue
		}
		if hit, _ := c.draggable.IsPointedAt(ray, c.Tuning.MaxPickDistance); hit {
			return device
		}
	}
	return NoDevice
}

// grabRay is the pressing device's ray when it hits the platform. The other
// device's ray is used only when the pressing device has no ray at all.
func (c *Controller) grabRay(device Device) (rl.Ray, bool) {
	ray, ok := c.Input.ray(device)
	if !ok {
		ray, ok = c.Input.ray(device.other())
	}
	if !ok {
		return rl.Ray{}, false
	}
	hit, _ := c.draggable.IsPointedAt(ray, c.Tuning.MaxPickDistance)
	return ray, hit
}

func (c *Controller) grab(device Device, ray rl.Ray) {
	d := c.draggable
	pos := d.Position()
	c.offset = d.ProjectPointerToAxis(ray) - pos
	c.grabbedBy = device
	c.session = uuid.New()
	c.rayLost = false
	d.target = pos
	d.setState(Dragging)

	c.logger.Info("drag started",
		zap.String("session", c.session.String()),
		zap.Stringer("platform", d),
		zap.Stringer("device", device),
		zap.Float32("position", pos),
	)
}

func (c *Controller) release(reason string) {
	d := c.draggable
	c.Gate.release(c)
	d.setState(Idle)

	c.logger.Info("drag ended",
		zap.String("session", c.session.String()),
		zap.Stringer("platform", d),
		zap.String("reason", reason),
		zap.Float32("position", d.Position()),
	)
	c.session = uuid.Nil
	c.grabbedBy = NoDevice
	c.offset = 0
}

// dragRay prefers the device that grabbed and falls back to the other one.
func (c *Controller) dragRay() (rl.Ray, bool) {
	if ray, ok := c.Input.ray(c.grabbedBy); ok {
		return ray, true
	}
	return c.Input.ray(c.grabbedBy.other())
}

func (c *Controller) drag(deltaTime float32) {
	d := c.draggable
	current := d.Position()

	// Without any pointer the platform holds still until one comes back
	desired := current
	if ray, ok := c.dragRay(); ok {
		if c.rayLost {
			c.logger.Debug("pointer restored", zap.String("session", c.session.String()))
			c.rayLost = false
		}
		desired = d.ProjectPointerToAxis(ray) - c.offset
	} else if !c.rayLost {
		c.logger.Debug("pointer lost, holding position", zap.String("session", c.session.String()))
		c.rayLost = true
	}

	desired = d.ClampToRange(desired)
	desired = c.resolver.Clamp(d, desired)

	step := min(1, c.Tuning.SmoothingRate*deltaTime)
	next := d.ClampToRange(current + (desired-current)*step)

	before := d.Bounds()
	delta := d.MoveTo(next)
	c.carrier.Carry(d, before, delta)
}

func (c *Controller) applyFeedback() {
	r := engine.GetComponent[*components.BoxRenderer](c.GetGameObject())
	if r == nil {
		return
	}
	r.SetTint(c.Feedback.Color(c.draggable.State(), c.elapsed))
}

// OnDestroy implements engine.Destroyable.
func (c *Controller) OnDestroy() {
	if c.draggable != nil && c.dragging() {
		c.release("destroyed")
	}
}
