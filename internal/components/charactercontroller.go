package components

import (
	"diorama/internal/engine"
	"diorama/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("CharacterController", func() engine.Serializable {
		return NewCharacterController()
	})
}

// CharacterController handles character movement with collision detection,
// gravity, and stair stepping. The object's position is the center of its box.
type CharacterController struct {
	engine.BaseComponent

	// Configuration
	Height     float32 // Total height of the box
	Radius     float32 // Half-width of the character
	StepHeight float32 // Max height of steps to climb

	// Gravity
	UseGravity bool
	Gravity    float32 // Gravity strength (positive = down)

	// Horizontal speed applied every frame by Update
	WalkVelocity rl.Vector3

	// Runtime state (not serialized)
	velocity   rl.Vector3
	isGrounded bool
}

// TypeName implements engine.Serializable
func (c *CharacterController) TypeName() string {
	return "CharacterController"
}

// NewCharacterController creates a new character controller with defaults
func NewCharacterController() *CharacterController {
	return &CharacterController{
		Height:     1.8,
		Radius:     0.4,
		StepHeight: 0.4,
		UseGravity: true,
		Gravity:    20.0,
	}
}

// Serialize implements engine.Serializable
func (c *CharacterController) Serialize() map[string]any {
	return map[string]any{
		"type":       "CharacterController",
		"height":     c.Height,
		"radius":     c.Radius,
		"stepHeight": c.StepHeight,
		"useGravity": c.UseGravity,
		"gravity":    c.Gravity,
	}
}

// Deserialize implements engine.Serializable
func (c *CharacterController) Deserialize(data map[string]any) {
	if v, ok := engine.Float32(data, "height"); ok {
		c.Height = v
	}
	if v, ok := engine.Float32(data, "radius"); ok {
		c.Radius = v
	}
	if v, ok := engine.Float32(data, "stepHeight"); ok {
		c.StepHeight = v
	}
	if v, ok := data["useGravity"].(bool); ok {
		c.UseGravity = v
	}
	if v, ok := engine.Float32(data, "gravity"); ok {
		c.Gravity = v
	}
}

func (c *CharacterController) Update(deltaTime float32) {
	c.SimpleMove(c.WalkVelocity, deltaTime)
}

// Bounds returns the character's world-space box.
func (c *CharacterController) Bounds() physics.AABB {
	pos := c.GetGameObject().WorldPosition()
	return physics.NewAABBFromCenter(pos, rl.Vector3{X: c.Radius * 2, Y: c.Height, Z: c.Radius * 2})
}

// Move moves the character by the given motion vector, handling collisions and steps
// Returns the actual displacement after collision resolution
func (c *CharacterController) Move(motion rl.Vector3) rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}

	// Get collidable objects from the scene's world
	var colliders []*engine.GameObject
	if g.Scene != nil && g.Scene.World != nil {
		colliders = g.Scene.World.GetCollidableObjects()
	}

	if len(colliders) == 0 {
		g.Translate(motion)
		return motion
	}

	originalPos := g.WorldPosition()

	// Try to move horizontally first
	horizontalMotion := rl.Vector3{X: motion.X, Y: 0, Z: motion.Z}
	if horizontalMotion.X != 0 || horizontalMotion.Z != 0 {
		c.moveWithCollision(g, horizontalMotion, colliders)
	}

	// Then move vertically
	verticalMotion := rl.Vector3{X: 0, Y: motion.Y, Z: 0}
	if verticalMotion.Y != 0 {
		c.moveWithCollision(g, verticalMotion, colliders)
	}

	return rl.Vector3Subtract(g.WorldPosition(), originalPos)
}

// moveWithCollision attempts to move and handles collision/stepping
func (c *CharacterController) moveWithCollision(g *engine.GameObject, motion rl.Vector3, colliders []*engine.GameObject) {
	g.Translate(motion)
	char := c.Bounds()

	for _, other := range colliders {
		if other.IsDescendantOf(g) || g.IsDescendantOf(other) {
			continue
		}

		// Don't collide with other kinematic movers (players, other characters)
		if rb := engine.GetComponent[*Rigidbody](other); rb != nil && rb.IsKinematic {
			continue
		}
		if engine.GetComponent[*CharacterController](other) != nil {
			continue
		}

		static, ok := ColliderBounds(other)
		if !ok || !char.Overlaps(static) {
			continue
		}

		pushOut := char.Resolve(static)

		// Check if this is a step we can climb
		isHorizontalCollision := (pushOut.X != 0 || pushOut.Z != 0) && pushOut.Y == 0
		if isHorizontalCollision && motion.Y == 0 {
			stepHeight := static.Max.Y - char.Min.Y
			if stepHeight > 0 && stepHeight <= c.StepHeight {
				stepped := char.Translate(rl.Vector3{Y: stepHeight + 0.01})
				if !stepped.Overlaps(static) {
					g.Translate(rl.Vector3{Y: stepHeight + 0.01})
					c.isGrounded = true
					char = c.Bounds()
					continue
				}
			}
		}

		g.Translate(pushOut)
		char = c.Bounds()

		if pushOut.Y > 0 {
			c.isGrounded = true
			if c.velocity.Y < 0 {
				c.velocity.Y = 0
			}
		}
		if pushOut.Y < 0 && c.velocity.Y > 0 {
			c.velocity.Y = 0
		}
	}
}

// SimpleMove moves the character with gravity applied automatically
func (c *CharacterController) SimpleMove(speed rl.Vector3, deltaTime float32) {
	// Apply gravity (only if not grounded, or if we have upward velocity like a jump)
	if c.UseGravity {
		if !c.isGrounded || c.velocity.Y > 0 {
			c.velocity.Y -= c.Gravity * deltaTime
		} else {
			// Grounded and not jumping - keep small downward velocity to detect ground
			c.velocity.Y = -0.1
		}
	}

	motion := rl.Vector3{
		X: speed.X * deltaTime,
		Y: c.velocity.Y * deltaTime,
		Z: speed.Z * deltaTime,
	}

	// Reset grounded before move (will be set if we land)
	c.isGrounded = false

	c.Move(motion)
}

// IsGrounded returns whether the character is on the ground
func (c *CharacterController) IsGrounded() bool {
	return c.isGrounded
}

// SetGrounded manually sets the grounded state
func (c *CharacterController) SetGrounded(grounded bool) {
	c.isGrounded = grounded
}

// GetVelocity returns the current velocity
func (c *CharacterController) GetVelocity() rl.Vector3 {
	return c.velocity
}

// SetVelocityY sets the vertical velocity (for jumping)
func (c *CharacterController) SetVelocityY(vy float32) {
	c.velocity.Y = vy
}
