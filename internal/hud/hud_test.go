package hud

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qscientist/internal/effects"
	"qscientist/internal/engine"
	"qscientist/internal/level"
)

func TestTrackerAdvancesAndCompletes(t *testing.T) {
	tracker := NewTracker([]level.Objective{
		{ID: "obj-1", Text: "Hack two consoles", TargetKind: "computer", Count: 2},
		{ID: "obj-2", Text: "Collect the crystal", TargetKind: "crystal"},
	}, nil)

	var completed []string
	tracker.OnObjectiveComplete.AddListener(func(item *Item) {
		completed = append(completed, item.ID)
	})

	tracker.NotifyCompleted("computer")
	assert.Empty(t, completed)
	assert.False(t, tracker.Items()[0].Done)

	tracker.NotifyCompleted("computer")
	require.Equal(t, []string{"obj-1"}, completed)
	assert.True(t, tracker.Items()[0].Done)
	assert.False(t, tracker.AllDone())

	tracker.NotifyCompleted("crystal")
	assert.Equal(t, []string{"obj-1", "obj-2"}, completed)
	assert.True(t, tracker.AllDone())
}

func TestTrackerIgnoresUnrelatedKinds(t *testing.T) {
	tracker := NewTracker([]level.Objective{
		{ID: "obj-1", Text: "Hack", TargetKind: "computer"},
	}, nil)

	tracker.NotifyCompleted("accelerator")
	assert.False(t, tracker.Items()[0].Done)
}

func TestTrackerWaypointFollowsActiveObjective(t *testing.T) {
	tracker := NewTracker([]level.Objective{
		{ID: "obj-1", Text: "first", TargetKind: "computer", Waypoint: &level.Vec3{X: 1}},
		{ID: "obj-2", Text: "second", TargetKind: "crystal", Waypoint: &level.Vec3{X: 9}},
	}, nil)

	var waypoints []*rl.Vector3
	tracker.OnSetWaypoint.AddListener(func(w *rl.Vector3) {
		waypoints = append(waypoints, w)
	})

	tracker.Activate()
	require.Len(t, waypoints, 1)
	assert.Equal(t, float32(1), waypoints[0].X)

	tracker.NotifyCompleted("computer")
	require.Len(t, waypoints, 2)
	assert.Equal(t, float32(9), waypoints[1].X)

	tracker.NotifyCompleted("crystal")
	require.Len(t, waypoints, 3)
	assert.Nil(t, waypoints[2])
}

func TestToastFadesOutAndDropsNode(t *testing.T) {
	scene := engine.NewScene("test")
	tweens := &effects.TweenRunner{}
	h := New(scene, tweens, nil)

	h.Toast("pair formed")
	require.Len(t, h.toasts, 1)

	// Hold phase: toast survives.
	tweens.Update(toastLifetime - 0.1)
	assert.Len(t, h.toasts, 1)

	// Cross into the fade, then run it out.
	tweens.Update(0.2)
	tweens.Update(toastFade)
	assert.Empty(t, h.toasts)
}

func TestToastCapEvictsOldest(t *testing.T) {
	scene := engine.NewScene("test")
	tweens := &effects.TweenRunner{}
	h := New(scene, tweens, nil)

	for i := 0; i < maxToasts+2; i++ {
		h.Toast("message")
	}
	assert.Len(t, h.toasts, maxToasts)
}

func TestProgressBarVisibility(t *testing.T) {
	scene := engine.NewScene("test")
	h := New(scene, &effects.TweenRunner{}, nil)

	assert.False(t, h.progressObj.Active)
	h.ShowProgress("hacking computer-1", 0.4)
	assert.True(t, h.progressObj.Active)
	assert.InDelta(t, 0.4, h.progressBar.GetPercent(), 1e-6)

	h.HideProgress()
	assert.False(t, h.progressObj.Active)
}
