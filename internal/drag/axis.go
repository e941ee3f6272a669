// Package drag implements pointer-driven platforms that slide along a single
// axis, stay inside their range, refuse to overlap one another, and carry
// whatever stands on top of them.
package drag

import (
	"errors"
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrInvalidAxis  = errors.New("drag: invalid axis")
	ErrInvalidRange = errors.New("drag: invalid range")
)

// Axis is the single degree of freedom a platform may move along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Axes lists every axis family in registry scan order.
var Axes = [...]Axis{Horizontal, Vertical}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "x", "":
		return Horizontal, nil
	case "vertical", "y":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("%w: %q", ErrInvalidAxis, s)
}

// Direction is the world-space unit vector of the movable axis.
func (a Axis) Direction() rl.Vector3 {
	if a == Vertical {
		return rl.Vector3{Y: 1}
	}
	return rl.Vector3{X: 1}
}

// PlaneNormal is the fixed axis: the screen's depth. Pointer rays are
// projected onto the plane with this normal through the platform.
func (a Axis) PlaneNormal() rl.Vector3 {
	return rl.Vector3{Z: 1}
}

// Of extracts the coordinate of v along the axis.
func (a Axis) Of(v rl.Vector3) float32 {
	if a == Vertical {
		return v.Y
	}
	return v.X
}

// Vector scales the axis direction by s.
func (a Axis) Vector(s float32) rl.Vector3 {
	return rl.Vector3Scale(a.Direction(), s)
}

// Orthogonal returns the other axis family.
func (a Axis) Orthogonal() Axis {
	if a == Vertical {
		return Horizontal
	}
	return Vertical
}

// State is where a platform sits in the pick-and-drag cycle.
type State int

const (
	Idle State = iota
	Hovered
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Hovered:
		return "hovered"
	case Dragging:
		return "dragging"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// StateChange is delivered to Draggable.StateChanged listeners.
type StateChange struct {
	Draggable *Draggable
	From, To  State
}
