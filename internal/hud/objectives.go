package hud

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"qscientist/internal/engine"
	"qscientist/internal/level"
)

// Tracker keeps the ordered mission checklist. Objectives complete when
// enough props of their target kind finish; the active objective's waypoint
// is surfaced for the minimap.
type Tracker struct {
	log   *zap.Logger
	items []*Item

	// OnSetWaypoint fires when the active objective (and so the guidance
	// marker) changes. A nil payload clears the marker.
	OnSetWaypoint engine.EventWithArg[*rl.Vector3]
	// OnObjectiveComplete fires once per completed objective.
	OnObjectiveComplete engine.EventWithArg[*Item]
}

type Item struct {
	ID       string
	Text     string
	Kind     string // prop kind that advances this objective
	Needed   int
	Count    int
	Done     bool
	Waypoint *rl.Vector3
}

func NewTracker(objectives []level.Objective, log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	t := &Tracker{log: log}
	for _, o := range objectives {
		needed := o.Count
		if needed <= 0 {
			needed = 1
		}
		item := &Item{
			ID:     o.ID,
			Text:   o.Text,
			Kind:   o.TargetKind,
			Needed: needed,
		}
		if o.Waypoint != nil {
			item.Waypoint = &rl.Vector3{X: o.Waypoint.X, Y: o.Waypoint.Y, Z: o.Waypoint.Z}
		}
		t.items = append(t.items, item)
	}
	return t
}

// Activate fires the initial waypoint for the first open objective.
func (t *Tracker) Activate() {
	t.OnSetWaypoint.Invoke(t.activeWaypoint())
}

// NotifyCompleted records one finished prop of the given kind and advances
// matching objectives.
func (t *Tracker) NotifyCompleted(kind string) {
	prevActive := t.active()
	for _, item := range t.items {
		if item.Done || item.Kind != kind {
			continue
		}
		item.Count++
		if item.Count >= item.Needed {
			item.Done = true
			t.log.Info("objective complete", zap.String("id", item.ID))
			t.OnObjectiveComplete.Invoke(item)
		}
	}
	if t.active() != prevActive {
		t.OnSetWaypoint.Invoke(t.activeWaypoint())
	}
}

// active returns the first unfinished objective, nil when all are done.
func (t *Tracker) active() *Item {
	for _, item := range t.items {
		if !item.Done {
			return item
		}
	}
	return nil
}

func (t *Tracker) activeWaypoint() *rl.Vector3 {
	if a := t.active(); a != nil {
		return a.Waypoint
	}
	return nil
}

// AllDone reports mission completion.
func (t *Tracker) AllDone() bool {
	return t.active() == nil
}

func (t *Tracker) Items() []*Item {
	return t.items
}

// Draw renders the checklist under the mission panel.
func (t *Tracker) Draw() {
	y := int32(62)
	for _, item := range t.items {
		mark := "[ ]"
		color := rl.NewColor(170, 190, 210, 255)
		if item.Done {
			mark = "[x]"
			color = rl.NewColor(110, 220, 130, 255)
		}
		line := fmt.Sprintf("%s %s", mark, item.Text)
		if item.Needed > 1 && !item.Done {
			line = fmt.Sprintf("%s (%d/%d)", line, item.Count, item.Needed)
		}
		rl.DrawText(line, 20, y, 15, color)
		y += 20
	}
}
