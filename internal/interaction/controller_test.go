package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qscientist/internal/engine"
	"qscientist/internal/props"
)

type fixture struct {
	scene *engine.Scene
	reg   *props.Registry
	pairs *props.PairSet
	ctrl  *Controller
}

func newFixture() *fixture {
	f := &fixture{
		scene: engine.NewScene("test"),
		reg:   props.NewRegistry(nil),
		pairs: props.NewPairSet(),
	}
	f.ctrl = NewController(f.reg, f.pairs, nil)
	return f
}

func (f *fixture) create(kind props.Kind, name string) string {
	node := engine.NewGameObject(name)
	f.scene.AddGameObject(node)
	return f.reg.Create(kind, node)
}

func TestHackingRunToCompletion(t *testing.T) {
	f := newFixture()
	id := f.create(props.Computer, "terminal")
	f.ctrl.SetStep(props.Computer, 0.25)

	var completed []string
	f.ctrl.OnComplete.AddListener(func(p *props.Prop) { completed = append(completed, p.ID) })

	require.Equal(t, props.ResultStarted, f.ctrl.Select(id))

	for i := 0; i < 3; i++ {
		assert.Equal(t, props.ResultAdvanced, f.ctrl.Advance(props.Computer))
	}
	assert.Equal(t, props.ResultCompleted, f.ctrl.Advance(props.Computer))

	p, _ := f.reg.Get(id)
	assert.Equal(t, float32(1), p.Progress)
	assert.Equal(t, props.Completed, p.State)
	assert.Equal(t, []string{id}, completed)

	// Fifth advance is a no-op: the slot is already empty.
	assert.Equal(t, props.ResultNoActiveInteraction, f.ctrl.Advance(props.Computer))
	assert.Equal(t, float32(1), p.Progress)
}

func TestSingleActivePerCategory(t *testing.T) {
	f := newFixture()
	a := f.create(props.Computer, "terminal-a")
	b := f.create(props.Computer, "terminal-b")

	var cancelled []string
	f.ctrl.OnCancel.AddListener(func(p *props.Prop) { cancelled = append(cancelled, p.ID) })

	f.ctrl.Select(a)
	f.ctrl.Advance(props.Computer)
	require.Equal(t, props.ResultStarted, f.ctrl.Select(b))

	pa, _ := f.reg.Get(a)
	pb, _ := f.reg.Get(b)
	assert.Equal(t, props.Idle, pa.State)
	assert.Zero(t, pa.Progress, "cancel must reset progress")
	assert.Equal(t, props.Active, pb.State)
	assert.Equal(t, []string{a}, cancelled)
}

func TestIndependentCategorySlots(t *testing.T) {
	f := newFixture()
	comp := f.create(props.Computer, "terminal")
	acc := f.create(props.Accelerator, "ring")

	f.ctrl.Select(comp)
	f.ctrl.Select(acc)

	// Selecting in another category must not cancel the first.
	pc, _ := f.reg.Get(comp)
	assert.Equal(t, props.Active, pc.State)
	assert.Equal(t, comp, f.ctrl.Active(props.Computer))
	assert.Equal(t, acc, f.ctrl.Active(props.Accelerator))
}

func TestReselectingActivePropIsRejected(t *testing.T) {
	f := newFixture()
	id := f.create(props.Computer, "terminal")

	var rejections []Rejection
	f.ctrl.OnRejected.AddListener(func(r Rejection) { rejections = append(rejections, r) })

	f.ctrl.Select(id)
	assert.Equal(t, props.ResultAlreadyActive, f.ctrl.Select(id))
	require.Len(t, rejections, 1)
	assert.Equal(t, props.ResultAlreadyActive, rejections[0].Result)
}

func TestCompletedPropIsInert(t *testing.T) {
	f := newFixture()
	id := f.create(props.Accelerator, "ring")

	f.ctrl.Select(id)
	for f.ctrl.Advance(props.Accelerator) == props.ResultAdvanced {
	}

	assert.Equal(t, props.ResultAlreadyCompleted, f.ctrl.Select(id))
	p, _ := f.reg.Get(id)
	assert.Equal(t, props.Completed, p.State)
}

func TestCancelEmptySlotIsNoOp(t *testing.T) {
	f := newFixture()
	assert.Equal(t, props.ResultNoActiveInteraction, f.ctrl.Cancel(props.Computer))
}

func TestCrystalCollectsOnSelect(t *testing.T) {
	f := newFixture()
	id := f.create(props.TimeCrystal, "crystal")

	var completed int
	f.ctrl.OnComplete.AddListener(func(*props.Prop) { completed++ })

	assert.Equal(t, props.ResultCompleted, f.ctrl.Select(id))
	p, _ := f.reg.Get(id)
	assert.Equal(t, props.Completed, p.State)
	assert.Equal(t, 1, completed)

	// Collecting twice is rejected, not re-completed.
	assert.Equal(t, props.ResultAlreadyCompleted, f.ctrl.Select(id))
	assert.Equal(t, 1, completed)
}

func TestEntanglementPairsTwoMostRecent(t *testing.T) {
	f := newFixture()
	a := f.create(props.EntanglementNode, "node-a")
	b := f.create(props.EntanglementNode, "node-b")

	var started []string
	var pairs []*props.Pair
	f.ctrl.OnStart.AddListener(func(p *props.Prop) { started = append(started, p.ID) })
	f.ctrl.OnEntanglement.AddListener(func(p *props.Pair) { pairs = append(pairs, p) })

	assert.Equal(t, props.ResultQueuedForEntanglement, f.ctrl.Select(a))
	assert.Equal(t, []string{a}, started)
	assert.Empty(t, pairs)

	assert.Equal(t, props.ResultCompleted, f.ctrl.Select(b))
	require.Len(t, pairs, 1)
	assert.InDelta(t, 0.4, pairs[0].Strength, 1e-6)

	pa, _ := f.reg.Get(a)
	pb, _ := f.reg.Get(b)
	assert.Equal(t, props.Entangled, pa.State)
	assert.Equal(t, props.Entangled, pb.State)
}

func TestEntangledNodeRejectsReselection(t *testing.T) {
	f := newFixture()
	a := f.create(props.EntanglementNode, "node-a")
	b := f.create(props.EntanglementNode, "node-b")

	f.ctrl.Select(a)
	f.ctrl.Select(b)

	var rejections []Rejection
	f.ctrl.OnRejected.AddListener(func(r Rejection) { rejections = append(rejections, r) })

	assert.Equal(t, props.ResultAlreadyEntangled, f.ctrl.Select(a))
	require.Len(t, rejections, 1)
	assert.Equal(t, a, rejections[0].PropID)
}

func TestEntanglementCancelResetsQueue(t *testing.T) {
	f := newFixture()
	a := f.create(props.EntanglementNode, "node-a")

	f.ctrl.Select(a)
	assert.Equal(t, props.ResultCancelled, f.ctrl.Cancel(props.EntanglementNode))

	pa, _ := f.reg.Get(a)
	assert.Equal(t, props.Idle, pa.State)

	// The node can be selected again after a cancel.
	assert.Equal(t, props.ResultQueuedForEntanglement, f.ctrl.Select(a))
}

func TestSelectUnknownProp(t *testing.T) {
	f := newFixture()
	assert.Equal(t, props.ResultNotFound, f.ctrl.Select("computer-42"))
}
