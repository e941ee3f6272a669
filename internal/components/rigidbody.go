package components

import (
	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Rigidbody", func() engine.Serializable {
		return NewRigidbody()
	})
}

// Sleep thresholds
const (
	SleepVelocityThreshold = 0.3 // units/sec - below this, object might sleep
	SleepTimeThreshold     = 0.3 // seconds of low velocity before sleeping
)

type Rigidbody struct {
	engine.BaseComponent
	Velocity    rl.Vector3
	Mass        float32
	Bounciness  float32 // 0 = no bounce, 1 = perfect bounce
	Friction    float32 // 0 = ice, 1 = stops immediately
	UseGravity  bool
	IsKinematic bool // moves but doesn't get pushed by physics

	// Sleep state - sleeping objects skip physics simulation
	IsSleeping bool
	sleepTimer float32 // time spent below velocity threshold
	CanSleep   bool    // whether this object can sleep (default true)
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Velocity:    rl.Vector3{},
		Mass:        1.0,
		Bounciness:  0.0,
		Friction:    0.1,
		UseGravity:  true,
		IsKinematic: false,
		CanSleep:    true,
	}
}

// MovePosition shifts the body by delta without touching its velocity, so its
// own integration keeps running undisturbed. Wakes a sleeping body.
func (r *Rigidbody) MovePosition(delta rl.Vector3) {
	g := r.GetGameObject()
	if g == nil {
		return
	}
	g.Translate(delta)
	r.Wake()
}

// Wake forces the rigidbody out of sleep state
func (r *Rigidbody) Wake() {
	r.IsSleeping = false
	r.sleepTimer = 0
}

// TrySleep checks if the rigidbody should go to sleep based on velocity
func (r *Rigidbody) TrySleep(deltaTime float32) {
	if !r.CanSleep || r.IsSleeping {
		return
	}

	if rl.Vector3Length(r.Velocity) < SleepVelocityThreshold {
		r.sleepTimer += deltaTime
		if r.sleepTimer >= SleepTimeThreshold {
			r.IsSleeping = true
			r.Velocity = rl.Vector3{}
		}
	} else {
		r.sleepTimer = 0
	}
}

// TypeName implements engine.Serializable
func (r *Rigidbody) TypeName() string {
	return "Rigidbody"
}

// Serialize implements engine.Serializable
func (r *Rigidbody) Serialize() map[string]any {
	return map[string]any{
		"type":        "Rigidbody",
		"mass":        r.Mass,
		"bounciness":  r.Bounciness,
		"friction":    r.Friction,
		"useGravity":  r.UseGravity,
		"isKinematic": r.IsKinematic,
	}
}

// Deserialize implements engine.Serializable
func (r *Rigidbody) Deserialize(data map[string]any) {
	if m, ok := engine.Float32(data, "mass"); ok {
		r.Mass = m
	}
	if b, ok := engine.Float32(data, "bounciness"); ok {
		r.Bounciness = b
	}
	if f, ok := engine.Float32(data, "friction"); ok {
		r.Friction = f
	}
	if g, ok := data["useGravity"].(bool); ok {
		r.UseGravity = g
	}
	if k, ok := data["isKinematic"].(bool); ok {
		r.IsKinematic = k
	}
}
