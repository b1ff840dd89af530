package props

import (
	"github.com/google/uuid"

	"qscientist/internal/engine"
)

// Pair links exactly two entangled node props for the rest of the session.
// Pairing is irreversible; the node references are weak and resolve to nil if
// the scene drops the nodes.
type Pair struct {
	ID           string
	A, B         string // prop ids, always distinct
	NodeA, NodeB engine.GameObjectRef
	Strength     float32
}

// PairSet tracks all pairs formed this session and enforces that a node joins
// at most one pair.
type PairSet struct {
	pairs  []*Pair
	byProp map[string]*Pair
}

func NewPairSet() *PairSet {
	return &PairSet{
		byProp: make(map[string]*Pair),
	}
}

// strengthStep is the per-node contribution to entanglement strength.
const strengthStep = 0.2

// Form creates the pair for a and b and marks both Entangled. Both props must
// be distinct entanglement nodes not already in a pair; violations return nil.
func (s *PairSet) Form(a, b *Prop) *Pair {
	if a == nil || b == nil || a == b {
		return nil
	}
	if a.Kind != EntanglementNode || b.Kind != EntanglementNode {
		return nil
	}
	if _, taken := s.byProp[a.ID]; taken {
		return nil
	}
	if _, taken := s.byProp[b.ID]; taken {
		return nil
	}

	strength := float32(len(s.byProp)+2) * strengthStep
	if strength > 1 {
		strength = 1
	}

	p := &Pair{
		ID:       uuid.NewString(),
		A:        a.ID,
		B:        b.ID,
		NodeA:    engine.Ref(a.Node),
		NodeB:    engine.Ref(b.Node),
		Strength: strength,
	}
	s.pairs = append(s.pairs, p)
	s.byProp[a.ID] = p
	s.byProp[b.ID] = p

	a.State = Entangled
	a.PairID = p.ID
	b.State = Entangled
	b.PairID = p.ID
	return p
}

// PairOf returns the pair a prop belongs to, nil when unpaired.
func (s *PairSet) PairOf(propID string) *Pair {
	return s.byProp[propID]
}

func (s *PairSet) Pairs() []*Pair {
	return s.pairs
}

// EntangledNodeCount returns how many nodes have been entangled so far.
func (s *PairSet) EntangledNodeCount() int {
	return len(s.byProp)
}
