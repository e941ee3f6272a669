package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: abs(size.X) / 2, Y: abs(size.Y) / 2, Z: abs(size.Z) / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

// IsDegenerate reports a box with no extent on any axis.
func (a AABB) IsDegenerate() bool {
	s := a.Size()
	return s.X <= 0 && s.Y <= 0 && s.Z <= 0
}

// Merge returns the smallest box containing both a and b.
func (a AABB) Merge(b AABB) AABB {
	return AABB{
		Min: rl.Vector3{X: min(a.Min.X, b.Min.X), Y: min(a.Min.Y, b.Min.Y), Z: min(a.Min.Z, b.Min.Z)},
		Max: rl.Vector3{X: max(a.Max.X, b.Max.X), Y: max(a.Max.Y, b.Max.Y), Z: max(a.Max.Z, b.Max.Z)},
	}
}

// Expand grows the box by pad on every side.
func (a AABB) Expand(pad float32) AABB {
	p := rl.Vector3{X: pad, Y: pad, Z: pad}
	return AABB{Min: rl.Vector3Subtract(a.Min, p), Max: rl.Vector3Add(a.Max, p)}
}

func (a AABB) Translate(delta rl.Vector3) AABB {
	return AABB{Min: rl.Vector3Add(a.Min, delta), Max: rl.Vector3Add(a.Max, delta)}
}

// Intersects is inclusive: touching faces count as intersecting.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Overlaps is strict: boxes that only share a face do not overlap.
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y &&
		a.Min.Z < b.Max.Z && a.Max.Z > b.Min.Z
}

// Resolve returns the minimum translation vector to push 'a' out of 'b'.
// Returns zero vector if no overlap.
func (a AABB) Resolve(b AABB) rl.Vector3 {
	if !a.Overlaps(b) {
		return rl.Vector3Zero()
	}

	// Penetration depth in each direction
	dx1 := b.Max.X - a.Min.X // push a in +X
	dx2 := a.Max.X - b.Min.X // push a in -X
	dy1 := b.Max.Y - a.Min.Y // push a in +Y
	dy2 := a.Max.Y - b.Min.Y // push a in -Y
	dz1 := b.Max.Z - a.Min.Z // push a in +Z
	dz2 := a.Max.Z - b.Min.Z // push a in -Z

	// The axis with minimum penetration is the push-out direction
	least := dx1
	result := rl.Vector3{X: dx1}

	if dx2 < least {
		least = dx2
		result = rl.Vector3{X: -dx2}
	}
	if dy1 < least {
		least = dy1
		result = rl.Vector3{Y: dy1}
	}
	if dy2 < least {
		least = dy2
		result = rl.Vector3{Y: -dy2}
	}
	if dz1 < least {
		least = dz1
		result = rl.Vector3{Z: dz1}
	}
	if dz2 < least {
		result = rl.Vector3{Z: -dz2}
	}

	return result
}

// ResolveXY is Resolve restricted to the X and Y axes, for bodies that live
// on the XY plane.
func (a AABB) ResolveXY(b AABB) rl.Vector3 {
	if !a.Overlaps(b) {
		return rl.Vector3Zero()
	}
	candidates := [...]rl.Vector3{
		{X: b.Max.X - a.Min.X},
		{X: -(a.Max.X - b.Min.X)},
		{Y: b.Max.Y - a.Min.Y},
		{Y: -(a.Max.Y - b.Min.Y)},
	}
	result := candidates[0]
	for _, c := range candidates[1:] {
		if abs(c.X)+abs(c.Y) < abs(result.X)+abs(result.Y) {
			result = c
		}
	}
	return result
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
