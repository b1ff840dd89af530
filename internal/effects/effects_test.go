package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/perf"
)

func unitBox() Box {
	return Box{
		Min: rl.Vector3{X: -5, Y: 0, Z: -5},
		Max: rl.Vector3{X: 5, Y: 5, Z: 5},
	}
}

func TestEmitterStaysInBounds(t *testing.T) {
	e := NewEmitter(EmitterConfig{
		Count:    64,
		Bounds:   unitBox(),
		MinSpeed: 5,
		MaxSpeed: 20,
		MinSize:  0.05,
		MaxSize:  0.1,
	})

	for i := 0; i < 200; i++ {
		e.Update(0.05)
	}

	b := unitBox()
	slack := float32(1.5) // one frame of travel before the wrap catches it
	for _, p := range e.Positions() {
		assert.GreaterOrEqual(t, p.X, b.Min.X-slack)
		assert.LessOrEqual(t, p.X, b.Max.X+slack)
		assert.GreaterOrEqual(t, p.Y, b.Min.Y-slack)
		assert.LessOrEqual(t, p.Y, b.Max.Y+slack)
	}
}

func TestEmitterDisposeIdempotent(t *testing.T) {
	e := NewEmitter(EmitterConfig{Count: 16, Bounds: unitBox()})

	e.Dispose()
	require.NotPanics(t, e.Dispose)
	assert.Zero(t, e.Count())

	// Stale update after dispose is a no-op.
	require.NotPanics(t, func() { e.Update(0.016) })
	assert.True(t, e.Disposed())
}

func TestManagerDisposeIdempotent(t *testing.T) {
	managers := []Manager{
		NewAmbientField(perf.TierLow, 30),
		NewBackground(perf.TierLow),
		NewBridges(),
		NewRadiationField(perf.TierLow),
		NewDilationField(perf.TierLow),
		NewTunnels(perf.TierLow),
		NewPortals(perf.TierLow),
		NewCursorTrail(perf.TierLow),
		NewTransitions(),
	}

	for _, m := range managers {
		m.Dispose()
		require.NotPanics(t, m.Dispose)
		require.NotPanics(t, func() { m.Update(0.016) })
	}
}

func TestZoneFieldCollectionsEmptyAfterDispose(t *testing.T) {
	f := NewRadiationField(perf.TierLow)
	f.AddZone(Zone{ID: "rad-1", Radius: 5, Intensity: 0.1})
	require.Len(t, f.Zones(), 1)

	f.Dispose()
	assert.Empty(t, f.Zones())

	// AddZone after dispose must not resurrect the manager.
	f.AddZone(Zone{ID: "rad-2", Radius: 3, Intensity: 0.2})
	assert.Empty(t, f.Zones())
}

func TestZoneGeometry(t *testing.T) {
	z := Zone{Center: rl.Vector3{}, Radius: 5, Intensity: 0.1}

	assert.True(t, z.Contains(rl.Vector3{X: 3}))
	assert.False(t, z.Contains(rl.Vector3{X: 6}))
	assert.InDelta(t, 0.0, z.NormalizedDistance(rl.Vector3{}), 1e-6)
	assert.InDelta(t, 0.6, z.NormalizedDistance(rl.Vector3{X: 3}), 1e-6)
}

func TestSetFanOut(t *testing.T) {
	var s Set
	a := NewBridges()
	b := NewTransitions()
	s.Add(a)
	s.Add(b)

	s.Update(0.016)
	s.Dispose()

	assert.Zero(t, s.Len())
	require.NotPanics(t, func() { s.Update(0.016) })
}

func TestTweenCompletes(t *testing.T) {
	var r TweenRunner
	var progress float32
	finished := false
	r.Start(NewTween(1.0, func(t float32) { progress = t }, func() { finished = true }))

	r.Update(0.5)
	assert.InDelta(t, 0.5, progress, 1e-6)
	assert.False(t, finished)

	r.Update(0.6)
	assert.Equal(t, float32(1), progress)
	assert.True(t, finished)
	assert.Zero(t, r.Len())
}

func TestTweenCancelSkipsOnDone(t *testing.T) {
	var r TweenRunner
	finished := false
	tw := r.Start(NewTween(1.0, nil, func() { finished = true }))

	r.Update(0.5)
	tw.Cancel()
	r.Update(1.0)

	assert.False(t, finished, "cancelled tween must not fire onDone")
	assert.Zero(t, r.Len())
}

func TestCancelAllOnDispose(t *testing.T) {
	var r TweenRunner
	fired := 0
	r.Start(NewTween(1.0, nil, func() { fired++ }))
	r.Start(NewTween(2.0, nil, func() { fired++ }))

	r.CancelAll()
	r.Update(5.0)

	assert.Zero(t, fired)
	assert.Zero(t, r.Len())
}

func TestParseTransitionKind(t *testing.T) {
	k, err := ParseTransitionKind("quantum")
	require.NoError(t, err)
	assert.Equal(t, TransitionQuantum, k)

	_, err = ParseTransitionKind("hyperspace")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTransition)
}

func TestTransitionMidpointRunsAtFullOpacity(t *testing.T) {
	tr := NewTransitions()
	var alphaAtSwap float32 = -1
	tr.Play(TransitionCollapse, 1.0, func() { alphaAtSwap = tr.alpha })

	tr.Update(0.5)
	require.InDelta(t, 1.0, float64(alphaAtSwap), 1e-6)
	assert.True(t, tr.Active())

	tr.Update(0.5)
	assert.False(t, tr.Active())
	assert.InDelta(t, 0.0, float64(tr.alpha), 1e-6)
}

func TestCursorTrailExpires(t *testing.T) {
	c := NewCursorTrail(perf.TierHigh)
	c.Push(rl.Vector3{})
	c.Update(0.3)
	require.Len(t, c.points, 1)
	c.Update(0.4)
	assert.Empty(t, c.points)
}

func TestPortalEndNear(t *testing.T) {
	pair := PortalPair{A: rl.Vector3{X: -10}, B: rl.Vector3{X: 10}}
	near, far := pair.EndNear(rl.Vector3{X: -8})
	assert.Equal(t, pair.A, near)
	assert.Equal(t, pair.B, far)
}
