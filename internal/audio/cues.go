package audio

import (
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Cues maps game events to loaded sources. Missing sound files leave the
// corresponding cue silent rather than failing the session.
type Cues struct {
	mgr *Manager

	start    uint64
	complete uint64
	cancel   uint64
	entangle uint64
	hums     []uint64

	hasStart    bool
	hasComplete bool
	hasCancel   bool
	hasEntangle bool
}

// LoadCues pulls the interaction cue set from dir (start.wav, complete.wav,
// cancel.wav, entangle.wav).
func LoadCues(mgr *Manager, dir string) *Cues {
	c := &Cues{mgr: mgr}
	c.start, c.hasStart = mgr.Load(filepath.Join(dir, "start.wav"))
	c.complete, c.hasComplete = mgr.Load(filepath.Join(dir, "complete.wav"))
	c.cancel, c.hasCancel = mgr.Load(filepath.Join(dir, "cancel.wav"))
	c.entangle, c.hasEntangle = mgr.Load(filepath.Join(dir, "entangle.wav"))

	// Event cues track the prop position only loosely; play them flat.
	for _, id := range []uint64{c.start, c.complete, c.cancel, c.entangle} {
		mgr.SetSourceSpatial(id, false)
	}
	return c
}

func (c *Cues) playAt(id uint64, ok bool, pos rl.Vector3) {
	if !ok {
		return
	}
	c.mgr.SetSourcePosition(id, pos)
	c.mgr.Play(id)
}

func (c *Cues) Start(pos rl.Vector3)    { c.playAt(c.start, c.hasStart, pos) }
func (c *Cues) Complete(pos rl.Vector3) { c.playAt(c.complete, c.hasComplete, pos) }
func (c *Cues) Cancel(pos rl.Vector3)   { c.playAt(c.cancel, c.hasCancel, pos) }
func (c *Cues) Entangle(pos rl.Vector3) { c.playAt(c.entangle, c.hasEntangle, pos) }

// AddPortalHum places a looping spatial hum at a portal end.
func (c *Cues) AddPortalHum(dir string, pos rl.Vector3) {
	id, ok := c.mgr.Load(filepath.Join(dir, "portal_hum.wav"))
	if !ok {
		return
	}
	c.mgr.SetSourceLoop(id, true)
	c.mgr.SetSourceMaxDistance(id, 14)
	c.mgr.SetSourcePosition(id, pos)
	c.mgr.Play(id)
	c.hums = append(c.hums, id)
}
