package drag

import (
	"testing"

	"diorama/internal/components"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func TestControllerGrabAndClampToRange(t *testing.T) {
	r := newRig()
	c := r.platform("a", Horizontal, vec(0, 0, 0), vec(2, 1, 1), 5, 0.1)
	d := c.Draggable()

	r.aimDesktop(0, 0)
	r.button = 1
	r.step()
	require.Equal(t, Dragging, d.State())
	assert.Equal(t, DesktopDevice, c.GrabbedBy())
	assert.NotEqual(t, uuid.Nil, c.Session())
	assert.Same(t, c, r.gate.Owner())

	r.aimDesktop(20, 0)
	r.step()
	assert.InDelta(t, 5, d.Position(), eps)

	pos := d.GetGameObject().WorldPosition()
	assert.InDelta(t, 0, pos.Y, eps)
	assert.InDelta(t, 0, pos.Z, eps)
}

func TestControllerKeepsGrabOffset(t *testing.T) {
	r := newRig()
	c := r.platform("a", Horizontal, vec(0, 0, 0), vec(2, 1, 1), 5, 0.1)

	r.aimDesktop(0.5, 0)
	r.button = 1
	r.step()
	r.aimDesktop(2.5, 0)
	r.step()

	assert.InDelta(t, 2, c.Draggable().Position(), eps)
}

func TestControllerStopsAtNeighbour(t *testing.T) {
	r := newRig()
	a := r.platform("a", Horizontal, vec(0, 0, 0), vec(2, 1, 1), 5, 0.1)
	r.platform("b", Horizontal, vec(3, 0, 0), vec(2, 1, 1), 5, 0.1)

	r.aimDesktop(0, 0)
	r.button = 1
	r.step()
	r.aimDesktop(10, 0)
	r.step()
	assert.InDelta(t, 0.9, a.Draggable().Position(), eps)

	// Pushing further does not creep into the neighbour
	r.step()
	r.step()
	assert.InDelta(t, 0.9, a.Draggable().Position(), eps)

	// Moving away is never blocked
	r.aimDesktop(-10, 0)
	r.step()
	assert.InDelta(t, -5, a.Draggable().Position(), eps)
}

func TestControllerStopsAtOtherAxisFamily(t *testing.T) {
	r := newRig()
	a := r.platform("a", Horizontal, vec(0, 0, 0), vec(2, 1, 1), 5, 0.1)
	r.platform("v", Vertical, vec(3, 0, 0), vec(2, 1, 1), 5, 0.1)

	r.aimDesktop(0, 0)
	r.button = 1
	r.step()
	r.aimDesktop(10, 0)
	r.step()

	assert.InDelta(t, 0.9, a.Draggable().Position(), eps)
}

func TestControllerRelease(t *testing.T) {
	r := newRig()
	c := r.platform("a", Horizontal, vec(0, 0, 0), vec(2, 1, 1), 5, 0.1)
	d := c.Draggable()

	var changes []StateChange
	d.StateChanged.AddListener(func(ch StateChange) { changes = append(changes, ch) })

	r.aimDesktop(0, 0)
	r.button = 1
	r.step()
	r.aimDesktop(2, 0)
	r.step()

	r.button = 0
	r.aimDesktop(50, 0)
	r.step()
	assert.Equal(t, Idle, d.State())
	assert.Equal(t, uuid.Nil, c.Session())
	assert.Equal(t, NoDevice, c.GrabbedBy())
	assert.Nil(t, r.gate.Owner())
	assert.InDelta(t, 2, d.Position(), eps)

	// Releasing twice changes nothing
	r.step()
	r.step()
	require.Len(t, changes, 3)
	assert.Equal(t, Hovered, changes[0].To)
	assert.Equal(t, Dragging, changes[1].To)
	assert.Equal(t, Idle, changes[2].To)
	assert.Equal(t, Dragging, changes[2].From)
}

func TestControllerHoverNeedsPressEdge(t *testing.T) {
	r := newRig()
	c := r.platform("a", Horizontal, vec(0, 0, 0), vec(2, 1, 1), 5, 0.1)
	d := c.Draggable()

	r.aimDesktop(50, 0)
	r.button = 1
	r.step()
	assert.Equal(t, Idle, d.State())

	// Sweeping onto the platform with the button already held only hovers
	r.aimDesktop(0, 0)
	r.step()
	assert.Equal(t, Hovered, d.State())

	r.button = 0
	r.step()
	r.button = 1
	r.step()
	assert.Equal(t, Dragging, d.State())
}

func TestControllerPrefersVR(t *testing.T) {
	r := newRig()
	c := r.platform("a", Horizontal, vec(0, 0, 0), vec(2, 1, 1), 5, 0.1)

	r.aimVR(0, 0)
	r.aimDesktop(0, 0)
	r.trigger = 0.8
	r.step()

	require.Equal(t, Dragging, c.Draggable().State())
	assert.Equal(t, VRDevice, c.GrabbedBy())
}

func TestControllerGrabsWithPressingDevice(t *testing.T) {
	r := newRig()
	c := r.platform("a", Horizontal, vec(0, 0, 0), vec(2, 1, 1), 5, 0.1)

	// Both rays hit but only the mouse button goes down
	r.aimVR(0, 0)
	r.aimDesktop(0, 0)
	r.button = 1
	r.step()
	require.Equal(t, Dragging, c.Draggable().State())
	assert.Equal(t, DesktopDevice, c.GrabbedBy())

	r.aimDesktop(3, 0)
	r.step()
	assert.InDelta(t, 3, c.Draggable().Position(), eps)
}

func TestControllerSimultaneousPressPrefersVR(t *testing.T) {
	r := newRig()
	c := r.platform("a", Horizontal, vec(0, 0, 0), vec(2, 1, 1), 5, 0.1)

	r.aimVR(0, 0)
	r.aimDesktop(0, 0)
	r.trigger = 1
	r.button = 1
	r.step()
	assert.Equal(t, VRDevice, c.GrabbedBy())
}

func TestControllerSecondDevicePressWhileFirstHeld(t *testing.T) {
	r := newRig()
	c := r.platform("a", Horizontal, vec(0, 0, 0), vec(2, 1, 1), 5, 0.1)

	// Trigger goes down off the platform, then the mouse presses on it
	r.aimVR(40, 0)
	r.aimDesktop(0, 0)
	r.trigger = 1
	r.step()
	require.Equal(t, Hovered, c.Draggable().State())

	r.button = 1
	r.step()
	require.Equal(t, Dragging, c.Draggable().State())
	assert.Equal(t, DesktopDevice, c.GrabbedBy())
}

func TestControllerFallsBackToDesktop(t *testing.T) {
	t.Run("vr unavailable", func(t *testing.T) {
		r := newRig()
		c := r.platform("a", Horizontal, vec(0, 0, 0), vec(2, 1, 1), 5, 0.1)
		r.aimDesktop(0, 0)
		r.button = 1
		r.step()
		assert.Equal(t, DesktopDevice, c.GrabbedBy())
	})

	t.Run("trigger without a vr ray uses the mouse ray", func(t *testing.T) {
		r := newRig()
		c := r.platform("a", Horizontal, vec(0, 0, 0), vec(2, 1, 1), 5, 0.1)
		r.aimDesktop(0, 0)
		r.trigger = 1
		r.step()
		require.Equal(t, Dragging, c.Draggable().State())
		assert.Equal(t, VRDevice, c.GrabbedBy())

		r.aimDesktop(2, 0)
		r.step()
		assert.InDelta(t, 2, c.Draggable().Position(), eps)
	})

	t.Run("trigger with vr pointing elsewhere does not grab", func(t *testing.T) {
		r := newRig()
		c := r.platform("a", Horizontal, vec(0, 0, 0), vec(2, 1, 1), 5, 0.1)
		r.aimVR(40, 0)
		r.aimDesktop(0, 0)
		r.trigger = 1
		r.step()
		assert.Equal(t, Hovered, c.Draggable().State())
		assert.Equal(t, NoDevice, c.GrabbedBy())
		assert.Nil(t, r.gate.Owner())
	})

	t.Run("no device at all", func(t *testing.T) {
		r := newRig()
		c := r.platform("a", Horizontal, vec(0, 0, 0), vec(2, 1, 1), 5, 0.1)
		r.button = 1
		r.step()
		assert.Equal(t, Idle, c.Draggable().State())
	})
}

func TestControllerFollowsGrabbingDevice(t *testing.T) {
	r := newRig()
	c := r.platform("a", Horizontal, vec(0, 0, 0), vec(2, 1, 1), 5, 0.1)

	r.aimVR(0, 0)
	r.trigger = 1
	r.step()

	r.aimVR(1, 0)
	r.aimDesktop(3, 0)
	r.step()
	assert.InDelta(t, 1, c.Draggable().Position(), eps)

	// Losing the grabbing device hands over to the other one
	r.vr.Available = false
	r.step()
	assert.InDelta(t, 3, c.Draggable().Position(), eps)
	assert.Equal(t, Dragging, c.Draggable().State())
}

func TestControllerFreezesWithoutRay(t *testing.T) {
	r := newRig()
	c := r.platform("a", Horizontal, vec(0, 0, 0), vec(2, 1, 1), 5, 0.1)

	r.aimDesktop(0, 0)
	r.button = 1
	r.step()
	r.aimDesktop(2, 0)
	r.step()

	r.desk.Available = false
	r.step()
	r.step()
	assert.Equal(t, Dragging, c.Draggable().State())
	assert.InDelta(t, 2, c.Draggable().Position(), eps)

	r.aimDesktop(4, 0)
	r.step()
	assert.InDelta(t, 4, c.Draggable().Position(), eps)
}

func TestControllerSmoothsTowardPointer(t *testing.T) {
	r := newRig()
	r.tuning.SmoothingRate = 6
	c := r.platform("a", Horizontal, vec(0, 0, 0), vec(2, 1, 1), 5, 0.1)

	r.aimDesktop(0, 0)
	r.button = 1
	r.step()
	r.aimDesktop(4, 0)
	r.step()

	// One frame at 60 Hz closes a tenth of the gap
	assert.InDelta(t, 0.4, c.Draggable().Position(), eps)
	assert.InDelta(t, 0.4, c.Draggable().Target(), eps)
}

func TestControllerBlocked(t *testing.T) {
	t.Run("blocked platform cannot be grabbed", func(t *testing.T) {
		r := newRig()
		c := r.platform("a", Horizontal, vec(0, 0, 0), vec(2, 1, 1), 5, 0.1)
		c.Draggable().Blocked = true
		r.aimDesktop(0, 0)
		r.button = 1
		r.step()
		assert.Equal(t, Idle, c.Draggable().State())
	})

	t.Run("blocking ends a drag", func(t *testing.T) {
		r := newRig()
		c := r.platform("a", Horizontal, vec(0, 0, 0), vec(2, 1, 1), 5, 0.1)
		r.aimDesktop(0, 0)
		r.button = 1
		r.step()
		c.Draggable().Blocked = true
		r.step()
		assert.Equal(t, Idle, c.Draggable().State())
		assert.Nil(t, r.gate.Owner())
	})

	t.Run("suppressed gate ends a drag", func(t *testing.T) {
		r := newRig()
		c := r.platform("a", Horizontal, vec(0, 0, 0), vec(2, 1, 1), 5, 0.1)
		r.aimDesktop(0, 0)
		r.button = 1
		r.step()
		r.gate.SetSuppressed(true)
		r.step()
		assert.Equal(t, Idle, c.Draggable().State())

		r.button = 0
		r.step()
		r.button = 1
		r.step()
		assert.Equal(t, Idle, c.Draggable().State())
	})
}

func TestControllerOneDragAtATime(t *testing.T) {
	r := newRig()
	a := r.platform("a", Horizontal, vec(0, 0, 0), vec(2, 1, 1), 5, 0.1)
	b := r.platform("b", Horizontal, vec(0, 4, 0), vec(2, 1, 1), 5, 0.1)

	r.aimDesktop(0, 0)
	r.aimVR(0, 4)
	r.button = 1
	r.step()

	assert.Equal(t, Dragging, a.Draggable().State())
	assert.Equal(t, Hovered, b.Draggable().State())
	assert.Same(t, a, r.gate.Owner())
}

func TestControllerReleasesDeactivatedPlatform(t *testing.T) {
	r := newRig()
	c := r.platform("a", Horizontal, vec(0, 0, 0), vec(2, 1, 1), 5, 0.1)
	r.aimDesktop(0, 0)
	r.button = 1
	r.step()

	c.Draggable().Deactivate()
	r.step()

	assert.Equal(t, Idle, c.Draggable().State())
	assert.Nil(t, r.gate.Owner())
	assert.Equal(t, uuid.Nil, c.Session())
}

func TestControllerCarriesRiders(t *testing.T) {
	t.Run("horizontal", func(t *testing.T) {
		r := newRig()
		c := r.platform("a", Horizontal, vec(0, 0, 0), vec(4, 1, 1), 5, 0.1)
		crate := r.host.add(box("crate", vec(0, 1, 0), vec(1, 1, 1)))

		r.aimDesktop(0, 0)
		r.button = 1
		r.step()
		r.aimDesktop(1, 0)
		r.step()
		r.aimDesktop(3, 0)
		r.step()

		assert.InDelta(t, 3, c.Draggable().Position(), eps)
		assert.InDelta(t, 3, crate.WorldPosition().X, eps)
		assert.InDelta(t, 1, crate.WorldPosition().Y, eps)
	})

	t.Run("vertical", func(t *testing.T) {
		r := newRig()
		c := r.platform("lift", Vertical, vec(0, 0, 0), vec(4, 1, 1), 5, 0.1)
		crate := r.host.add(box("crate", vec(1, 1, 0), vec(1, 1, 1)))

		r.aimDesktop(0, 0)
		r.button = 1
		r.step()
		r.aimDesktop(0, 3)
		r.step()

		assert.InDelta(t, 3, c.Draggable().Position(), eps)
		assert.InDelta(t, 4, crate.WorldPosition().Y, eps)
		assert.InDelta(t, 1, crate.WorldPosition().X, eps)
	})
}

func TestControllerTintsRenderer(t *testing.T) {
	r := newRig()
	c := r.platform("a", Horizontal, vec(0, 0, 0), vec(2, 1, 1), 5, 0.1)
	renderer := components.NewBoxRenderer(vec(2, 1, 1), components.LookupColor("Gray"))
	c.GetGameObject().AddComponent(renderer)

	r.aimDesktop(0, 0)
	r.button = 1
	r.step()

	assert.Equal(t, c.Feedback.Drag, renderer.CurrentColor())
}
