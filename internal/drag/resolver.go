package drag

import (
	"diorama/internal/physics"

	"go.uber.org/zap"
)

// Resolver keeps platforms from interpenetrating. It reads obstacle positions
// fresh on every call; nothing is cached between frames.
type Resolver struct {
	registry *Registry
	logger   *zap.Logger
}

func NewResolver(registry *Registry, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{registry: registry, logger: logger}
}

// Clamp limits a move of mover from its current position toward desired so
// that its bounds, padded along the axis of motion, never overlap another
// live platform of either axis family. Moving in the positive direction the
// leading face stops at the obstacle's near face minus padding; the negative
// direction is symmetric. With several obstacles the most restrictive stop
// wins. The result is never behind the current position, and desired is
// returned unchanged when nothing is in the way.
//
// The box tested is the sweep from the current to the desired position, so a
// single large step cannot tunnel through a thin obstacle.
func (r *Resolver) Clamp(mover *Draggable, desired float32) float32 {
	current := mover.Position()
	if desired == current || r.registry == nil {
		return desired
	}

	axis := mover.Axis
	pad := mover.Padding
	box := mover.Bounds()
	moverCenter := axis.Of(box.Center())
	positive := desired > current

	swept := box.Merge(box.Translate(axis.Vector(desired - current)))
	swept = expandAlong(swept, axis, pad)

	allowed := desired
	for _, other := range r.registry.All() {
		if other == mover || !other.Live() {
			continue
		}
		obstacle := other.Bounds()
		if !swept.Overlaps(obstacle) {
			continue
		}

		// Obstacles behind the motion never hold the mover back
		center := axis.Of(obstacle.Center())
		if positive {
			if center <= moverCenter {
				continue
			}
			lead := axis.Of(box.Max) - current
			stop := max(axis.Of(obstacle.Min)-pad-lead, current)
			if stop < allowed {
				allowed = stop
				r.logger.Debug("clamped against obstacle",
					zap.Stringer("mover", mover),
					zap.Stringer("obstacle", other),
					zap.Float32("desired", desired),
					zap.Float32("allowed", allowed),
				)
			}
		} else {
			if center >= moverCenter {
				continue
			}
			trail := current - axis.Of(box.Min)
			stop := min(axis.Of(obstacle.Max)+pad+trail, current)
			if stop > allowed {
				allowed = stop
				r.logger.Debug("clamped against obstacle",
					zap.Stringer("mover", mover),
					zap.Stringer("obstacle", other),
					zap.Float32("desired", desired),
					zap.Float32("allowed", allowed),
				)
			}
		}
	}
	return allowed
}

// expandAlong pads a box only along axis. Lateral contact, such as one
// platform resting on another, is not a collision for a one-dimensional move.
func expandAlong(b physics.AABB, axis Axis, pad float32) physics.AABB {
	v := axis.Vector(pad)
	b.Min.X -= v.X
	b.Min.Y -= v.Y
	b.Max.X += v.X
	b.Max.Y += v.Y
	return b
}
