package engine

// GameObjectRef is a weak reference to a GameObject by UID. Resolving it after
// the object has been removed from the scene yields nil rather than a dangling
// pointer, so long-lived records (entanglement pairs, waypoints) can hold one
// without owning the node.
type GameObjectRef struct {
	UID uint64 // 0 = none
}

// Ref captures a weak reference to g.
func Ref(g *GameObject) GameObjectRef {
	if g == nil {
		return GameObjectRef{}
	}
	return GameObjectRef{UID: g.UID}
}

// Get resolves the reference, nil if empty or the object no longer exists.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}
