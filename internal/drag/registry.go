package drag

import (
	"go.uber.org/zap"
)

// Registry is the set of live platforms in one world, grouped by axis
// family. It is owned by the world context rather than being global, so
// independent worlds (and tests) never see each other's platforms.
//
// The registry is only mutated when platforms activate or deactivate, never
// while the per-frame loop is reading it.
type Registry struct {
	families map[Axis][]*Draggable
	logger   *zap.Logger
}

func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		families: make(map[Axis][]*Draggable, len(Axes)),
		logger:   logger,
	}
}

// Register adds d to its axis family. Returns false if already present.
func (r *Registry) Register(d *Draggable) bool {
	if d == nil || r.Contains(d) {
		return false
	}
	r.families[d.Axis] = append(r.families[d.Axis], d)
	r.logger.Debug("draggable registered",
		zap.Stringer("draggable", d),
		zap.Stringer("axis", d.Axis),
		zap.Int("live", r.Len()),
	)
	return true
}

// Unregister removes d. Returns false if it was not registered.
func (r *Registry) Unregister(d *Draggable) bool {
	for axis, family := range r.families {
		for i, other := range family {
			if other != d {
				continue
			}
			r.families[axis] = append(family[:i:i], family[i+1:]...)
			r.logger.Debug("draggable unregistered",
				zap.Stringer("draggable", d),
				zap.Int("live", r.Len()),
			)
			return true
		}
	}
	return false
}

func (r *Registry) Contains(d *Draggable) bool {
	for _, family := range r.families {
		for _, other := range family {
			if other == d {
				return true
			}
		}
	}
	return false
}

// Family returns a copy of one axis family in registration order.
func (r *Registry) Family(axis Axis) []*Draggable {
	family := r.families[axis]
	out := make([]*Draggable, len(family))
	copy(out, family)
	return out
}

// All returns every live platform: the horizontal family first, then the
// vertical one. This is the scan order for picking and obstacle tests.
func (r *Registry) All() []*Draggable {
	out := make([]*Draggable, 0, r.Len())
	for _, axis := range Axes {
		out = append(out, r.families[axis]...)
	}
	return out
}

func (r *Registry) Len() int {
	n := 0
	for _, family := range r.families {
		n += len(family)
	}
	return n
}
