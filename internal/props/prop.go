package props

import (
	"qscientist/internal/engine"
)

// Kind identifies the category of an interactive prop. Every kind tracks its
// own active-interaction slot; interactions in different categories never
// cancel each other.
type Kind int

const (
	Computer Kind = iota
	Accelerator
	EntanglementNode
	TimeCrystal
	DarkMatterContainer
)

func (k Kind) String() string {
	switch k {
	case Computer:
		return "computer"
	case Accelerator:
		return "accelerator"
	case EntanglementNode:
		return "node"
	case TimeCrystal:
		return "crystal"
	case DarkMatterContainer:
		return "container"
	}
	return "unknown"
}

// ParseKind maps a level-file kind name back to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k := Computer; k <= DarkMatterContainer; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return Computer, false
}

// State is the per-prop interaction state. Completed and Entangled are
// terminal; only EntanglementNode ever reaches Entangled.
type State int

const (
	Idle State = iota
	Active
	Completed
	Entangled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Completed:
		return "completed"
	case Entangled:
		return "entangled"
	}
	return "unknown"
}

// Prop is the typed side table entry for one interactive world object. Domain
// state lives here, never on the render-graph node; the node reference is
// non-owning and exists for position/visual access only.
type Prop struct {
	ID       string
	Kind     Kind
	Progress float32
	State    State
	Node     *engine.GameObject
	PairID   string // set once the prop joins an entanglement pair
}
