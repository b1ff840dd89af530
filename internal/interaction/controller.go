package interaction

import (
	"go.uber.org/zap"

	"qscientist/internal/engine"
	"qscientist/internal/props"
)

// Default per-advance progress steps. Hacking a computer is slow, spinning up
// an accelerator is chunky, dark-matter analysis sits in between.
const (
	StepHacking      = 0.1
	StepAcceleration = 0.2
	StepAnalysis     = 0.15
)

// Controller resolves selections into at most one active interaction per
// category and advances its progress. Entanglement nodes bypass the slot and
// go through a FIFO selection queue instead.
type Controller struct {
	reg   *props.Registry
	pairs *props.PairSet
	log   *zap.Logger

	slots map[props.Kind]string // active prop id per category
	queue []string              // entanglement selection order
	steps map[props.Kind]float32

	OnStart        engine.EventWithArg[*props.Prop]
	OnProgress     engine.EventWithArg[*props.Prop]
	OnComplete     engine.EventWithArg[*props.Prop]
	OnCancel       engine.EventWithArg[*props.Prop]
	OnEntanglement engine.EventWithArg[*props.Pair]
	OnRejected     engine.EventWithArg[Rejection]
}

// Rejection is the informational callback payload for a refused interaction.
// Non-blocking: the caller's state is unchanged.
type Rejection struct {
	PropID string
	Result props.Result
}

func NewController(reg *props.Registry, pairs *props.PairSet, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		reg:   reg,
		pairs: pairs,
		log:   log,
		slots: make(map[props.Kind]string),
		steps: map[props.Kind]float32{
			props.Computer:            StepHacking,
			props.Accelerator:         StepAcceleration,
			props.DarkMatterContainer: StepAnalysis,
		},
	}
}

// SetStep overrides the per-advance step for one category.
func (c *Controller) SetStep(kind props.Kind, step float32) {
	c.steps[kind] = step
}

// Active returns the id of the category's active interaction, "" if none.
func (c *Controller) Active(kind props.Kind) string {
	return c.slots[kind]
}

// Select begins (or queues) an interaction with the given prop. Selecting a
// different prop while one is active in the same category cancels the old one
// first; other categories are untouched.
func (c *Controller) Select(id string) props.Result {
	p, ok := c.reg.Get(id)
	if !ok {
		return c.reject(id, props.ResultNotFound)
	}

	switch p.State {
	case props.Completed:
		return c.reject(id, props.ResultAlreadyCompleted)
	case props.Entangled:
		return c.reject(id, props.ResultAlreadyEntangled)
	}

	if p.Kind == props.EntanglementNode {
		return c.selectNode(p)
	}

	if current := c.slots[p.Kind]; current == id {
		return c.reject(id, props.ResultAlreadyActive)
	} else if current != "" {
		c.cancelProp(current)
	}

	p.State = props.Active
	c.slots[p.Kind] = id
	c.log.Info("interaction started", zap.String("id", id), zap.Stringer("kind", p.Kind))
	c.OnStart.Invoke(p)

	// Crystals collect on touch, no advance loop.
	if p.Kind == props.TimeCrystal {
		return c.finish(p)
	}
	return props.ResultStarted
}

// selectNode pushes onto the entanglement queue; the two most recent
// selections pair up.
func (c *Controller) selectNode(p *props.Prop) props.Result {
	for _, queued := range c.queue {
		if queued == p.ID {
			return c.reject(p.ID, props.ResultAlreadyActive)
		}
	}

	p.State = props.Active
	c.queue = append(c.queue, p.ID)
	c.OnStart.Invoke(p)

	if len(c.queue) < 2 {
		return props.ResultQueuedForEntanglement
	}

	aID := c.queue[len(c.queue)-2]
	bID := c.queue[len(c.queue)-1]
	c.queue = c.queue[:len(c.queue)-2]

	a, _ := c.reg.Get(aID)
	b, _ := c.reg.Get(bID)
	pair := c.pairs.Form(a, b)
	if pair == nil {
		// Should not happen: queue membership already excludes paired nodes.
		return c.reject(p.ID, props.ResultAlreadyEntangled)
	}

	c.log.Info("entanglement pair formed",
		zap.String("pair", pair.ID),
		zap.String("a", pair.A),
		zap.String("b", pair.B),
		zap.Float32("strength", pair.Strength))
	c.OnEntanglement.Invoke(pair)
	return props.ResultCompleted
}

// Advance pushes the category's active interaction forward by its fixed step.
func (c *Controller) Advance(kind props.Kind) props.Result {
	id := c.slots[kind]
	if id == "" {
		return c.reject("", props.ResultNoActiveInteraction)
	}

	step, ok := c.steps[kind]
	if !ok {
		return c.reject(id, props.ResultNoActiveInteraction)
	}

	res := c.reg.ApplyProgress(id, step)
	p, _ := c.reg.Get(id)
	switch res {
	case props.ResultCompleted:
		delete(c.slots, kind)
		c.OnComplete.Invoke(p)
	case props.ResultAdvanced:
		c.OnProgress.Invoke(p)
	default:
		return c.reject(id, res)
	}
	return res
}

// Cancel aborts the category's active interaction, resetting its progress.
// For entanglement it resets every still-queued node. No-op on an empty slot.
func (c *Controller) Cancel(kind props.Kind) props.Result {
	if kind == props.EntanglementNode {
		if len(c.queue) == 0 {
			return props.ResultNoActiveInteraction
		}
		for _, id := range c.queue {
			c.cancelProp(id)
		}
		c.queue = c.queue[:0]
		return props.ResultCancelled
	}

	id := c.slots[kind]
	if id == "" {
		return props.ResultNoActiveInteraction
	}
	c.cancelProp(id)
	return props.ResultCancelled
}

func (c *Controller) cancelProp(id string) {
	p, ok := c.reg.Get(id)
	if !ok {
		for kind, slotID := range c.slots {
			if slotID == id {
				delete(c.slots, kind)
			}
		}
		return
	}
	p.Progress = 0
	p.State = props.Idle
	delete(c.slots, p.Kind)
	c.log.Info("interaction cancelled", zap.String("id", id))
	c.OnCancel.Invoke(p)
}

func (c *Controller) finish(p *props.Prop) props.Result {
	res := c.reg.ApplyProgress(p.ID, 1)
	delete(c.slots, p.Kind)
	if res == props.ResultCompleted {
		c.OnComplete.Invoke(p)
	}
	return res
}

func (c *Controller) reject(id string, res props.Result) props.Result {
	c.log.Debug("interaction rejected", zap.String("id", id), zap.Stringer("result", res))
	c.OnRejected.Invoke(Rejection{PropID: id, Result: res})
	return res
}

// Reset clears slots and the entanglement queue without touching prop state.
// Used on level teardown after the registry itself is cleared.
func (c *Controller) Reset() {
	c.slots = make(map[props.Kind]string)
	c.queue = c.queue[:0]
}
