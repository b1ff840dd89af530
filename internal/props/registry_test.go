package props

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qscientist/internal/engine"
)

func newTestRegistry() (*Registry, *engine.Scene) {
	return NewRegistry(nil), engine.NewScene("test")
}

func addNode(scene *engine.Scene, name string) *engine.GameObject {
	node := engine.NewGameObject(name)
	scene.AddGameObject(node)
	return node
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	reg, scene := newTestRegistry()

	id1 := reg.Create(Computer, addNode(scene, "c1"))
	id2 := reg.Create(Computer, addNode(scene, "c2"))
	id3 := reg.Create(TimeCrystal, addNode(scene, "k1"))

	assert.Equal(t, "computer-1", id1)
	assert.Equal(t, "computer-2", id2)
	assert.Equal(t, "crystal-1", id3)

	p, ok := reg.Get(id1)
	require.True(t, ok)
	assert.Equal(t, Idle, p.State)
	assert.Zero(t, p.Progress)
}

func TestApplyProgressClamps(t *testing.T) {
	reg, scene := newTestRegistry()
	id := reg.Create(Accelerator, addNode(scene, "a1"))

	// Huge negative deltas clamp to zero.
	assert.Equal(t, ResultAdvanced, reg.ApplyProgress(id, -5))
	p, _ := reg.Get(id)
	assert.Zero(t, p.Progress)

	// Overshoot clamps to 1 and completes exactly once.
	assert.Equal(t, ResultCompleted, reg.ApplyProgress(id, 7.5))
	assert.Equal(t, float32(1), p.Progress)
	assert.Equal(t, Completed, p.State)
}

func TestCompletedPropRejectsFurtherProgress(t *testing.T) {
	reg, scene := newTestRegistry()
	id := reg.Create(Computer, addNode(scene, "c1"))

	completions := 0
	reg.OnCompleted.AddListener(func(*Prop) { completions++ })

	require.Equal(t, ResultCompleted, reg.ApplyProgress(id, 1))
	assert.Equal(t, ResultAlreadyCompleted, reg.ApplyProgress(id, 0.5))

	p, _ := reg.Get(id)
	assert.Equal(t, float32(1), p.Progress)
	assert.Equal(t, Completed, p.State)
	assert.Equal(t, 1, completions)
}

func TestApplyProgressUnknownID(t *testing.T) {
	reg, _ := newTestRegistry()
	assert.Equal(t, ResultNotFound, reg.ApplyProgress("computer-99", 0.1))
}

func TestRemoveDropsAllIndices(t *testing.T) {
	reg, scene := newTestRegistry()
	id := reg.Create(DarkMatterContainer, addNode(scene, "d1"))

	reg.Remove(id)

	_, ok := reg.Get(id)
	assert.False(t, ok)
	assert.Empty(t, reg.ByKind(DarkMatterContainer))
	assert.Zero(t, reg.Count())
}

func TestPairFormationIsExactlyTwo(t *testing.T) {
	reg, scene := newTestRegistry()
	set := NewPairSet()

	a, _ := reg.Get(reg.Create(EntanglementNode, addNode(scene, "n1")))
	b, _ := reg.Get(reg.Create(EntanglementNode, addNode(scene, "n2")))
	c, _ := reg.Get(reg.Create(EntanglementNode, addNode(scene, "n3")))

	pair := set.Form(a, b)
	require.NotNil(t, pair)
	assert.NotEqual(t, pair.A, pair.B)
	assert.Equal(t, Entangled, a.State)
	assert.Equal(t, Entangled, b.State)
	assert.InDelta(t, 0.4, pair.Strength, 1e-6)

	// A node never joins a second pair.
	assert.Nil(t, set.Form(a, c))
	assert.Same(t, pair, set.PairOf(a.ID))
}

func TestPairStrengthCaps(t *testing.T) {
	reg, scene := newTestRegistry()
	set := NewPairSet()

	var last *Pair
	for i := 0; i < 4; i++ {
		a, _ := reg.Get(reg.Create(EntanglementNode, addNode(scene, "na")))
		b, _ := reg.Get(reg.Create(EntanglementNode, addNode(scene, "nb")))
		last = set.Form(a, b)
		require.NotNil(t, last)
	}

	// 8 nodes entangled: 8 * 0.2 caps at 1.
	assert.Equal(t, float32(1), last.Strength)
	assert.Equal(t, 8, set.EntangledNodeCount())
}

func TestSelfAndWrongKindPairsRejected(t *testing.T) {
	reg, scene := newTestRegistry()
	set := NewPairSet()

	n, _ := reg.Get(reg.Create(EntanglementNode, addNode(scene, "n1")))
	crystal, _ := reg.Get(reg.Create(TimeCrystal, addNode(scene, "k1")))

	assert.Nil(t, set.Form(n, n))
	assert.Nil(t, set.Form(n, crystal))
	assert.Equal(t, Idle, n.State)
}
