package engine

// GameObjectRef is a serializable reference to a GameObject by UID. Components
// that point at other objects (a controller transform, a camera rig) hold one
// of these and resolve it each time they need the target, so a destroyed
// target simply resolves to nil.
type GameObjectRef struct {
	UID uint64 // 0 = none
}

// Get resolves the reference. Returns nil if the reference is empty or the
// GameObject is no longer in the scene.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid reports whether the reference points at something. It does not
// check that the GameObject still exists.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

// Set points the reference at g. Pass nil to clear it.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}
