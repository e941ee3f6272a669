package drag

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Feedback colors a platform by its drag state. Idle and hovered platforms
// pulse between Base and Highlight, hovered ones faster and brighter, so the
// player can tell what is grabbable. A dragged platform is a solid Drag color.
type Feedback struct {
	Base      rl.Color
	Highlight rl.Color
	Drag      rl.Color

	IdleFrequency  float32 // Hz
	IdleIntensity  float32 // 0..1 share of Highlight at the pulse peak
	HoverFrequency float32
	HoverIntensity float32
}

func DefaultFeedback() Feedback {
	return Feedback{
		Base:           rl.SkyBlue,
		Highlight:      rl.White,
		Drag:           rl.Gold,
		IdleFrequency:  0.5,
		IdleIntensity:  0.25,
		HoverFrequency: 2,
		HoverIntensity: 0.7,
	}
}

// Color returns the tint for state at time t seconds.
func (f Feedback) Color(state State, t float32) rl.Color {
	switch state {
	case Dragging:
		return f.Drag
	case Hovered:
		return lerpColor(f.Base, f.Highlight, pulse(f.HoverFrequency, t)*f.HoverIntensity)
	default:
		return lerpColor(f.Base, f.Highlight, pulse(f.IdleFrequency, t)*f.IdleIntensity)
	}
}

// pulse is a sine wave remapped to [0, 1].
func pulse(freq, t float32) float32 {
	return 0.5 + 0.5*float32(math.Sin(2*math.Pi*float64(freq*t)))
}

func lerpColor(a, b rl.Color, t float32) rl.Color {
	t = min(max(t, 0), 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t + 0.5)
	}
	return rl.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
