package props

import (
	"fmt"

	"go.uber.org/zap"

	"qscientist/internal/engine"
)

// Registry owns the authoritative prop collections per category. It indexes by
// id only; node lifetime belongs to the scene.
type Registry struct {
	props   map[string]*Prop
	byKind  map[Kind][]*Prop
	nextSeq map[Kind]int
	log     *zap.Logger

	// Fired when a prop reaches Completed through ApplyProgress.
	OnCompleted engine.EventWithArg[*Prop]
}

func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		props:   make(map[string]*Prop),
		byKind:  make(map[Kind][]*Prop),
		nextSeq: make(map[Kind]int),
		log:     log,
	}
}

// Create registers a new prop bound to a scene node and returns its id. Ids
// are sequential within a category ("computer-1", "crystal-3", ...).
func (r *Registry) Create(kind Kind, node *engine.GameObject) string {
	r.nextSeq[kind]++
	id := fmt.Sprintf("%s-%d", kind, r.nextSeq[kind])

	p := &Prop{
		ID:    id,
		Kind:  kind,
		State: Idle,
		Node:  node,
	}
	r.props[id] = p
	r.byKind[kind] = append(r.byKind[kind], p)

	r.log.Debug("prop created", zap.String("id", id), zap.Stringer("kind", kind))
	return id
}

func (r *Registry) Get(id string) (*Prop, bool) {
	p, ok := r.props[id]
	return p, ok
}

// ByKind returns the props of one category in creation order.
func (r *Registry) ByKind(kind Kind) []*Prop {
	return r.byKind[kind]
}

// All visits every prop. Iteration order is per-category creation order.
func (r *Registry) All(visit func(*Prop)) {
	for kind := Computer; kind <= DarkMatterContainer; kind++ {
		for _, p := range r.byKind[kind] {
			visit(p)
		}
	}
}

// ActiveInKind returns the category's Active prop, if any. The registry
// maintains the single-active invariant through ApplyProgress/SetState misuse
// being impossible: state changes go through the interaction controller.
func (r *Registry) ActiveInKind(kind Kind) *Prop {
	for _, p := range r.byKind[kind] {
		if p.State == Active {
			return p
		}
	}
	return nil
}

// FindByNode maps a render-graph node back to its prop, nil when the node is
// not interactive. Used by ray picking.
func (r *Registry) FindByNode(uid uint64) *Prop {
	for _, p := range r.props {
		if p.Node != nil && p.Node.UID == uid {
			return p
		}
	}
	return nil
}

// ApplyProgress adds delta to a prop's progress, clamped to [0,1]. Reaching
// 1.0 transitions the prop to Completed and fires OnCompleted. Calls against a
// terminal prop are rejected rather than clamped away.
func (r *Registry) ApplyProgress(id string, delta float32) Result {
	p, ok := r.props[id]
	if !ok {
		return ResultNotFound
	}
	switch p.State {
	case Completed:
		return ResultAlreadyCompleted
	case Entangled:
		return ResultAlreadyEntangled
	}

	p.Progress += delta
	if p.Progress < 0 {
		p.Progress = 0
	}
	if p.Progress >= 1 {
		p.Progress = 1
		p.State = Completed
		r.log.Info("prop completed", zap.String("id", id))
		r.OnCompleted.Invoke(p)
		return ResultCompleted
	}
	return ResultAdvanced
}

// Remove drops the prop from all indices. The scene node is untouched; the
// caller disposes it through the scene if needed.
func (r *Registry) Remove(id string) {
	p, ok := r.props[id]
	if !ok {
		return
	}
	delete(r.props, id)
	list := r.byKind[p.Kind]
	for i, q := range list {
		if q == p {
			r.byKind[p.Kind] = append(list[:i], list[i+1:]...)
			break
		}
	}
}

// Clear empties every index. Called on session teardown so no dangling node
// references survive a level change.
func (r *Registry) Clear() {
	r.props = make(map[string]*Prop)
	r.byKind = make(map[Kind][]*Prop)
	r.nextSeq = make(map[Kind]int)
	r.OnCompleted.RemoveAllListeners()
}

// Count returns the number of registered props.
func (r *Registry) Count() int {
	return len(r.props)
}
