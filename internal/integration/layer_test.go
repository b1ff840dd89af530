package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/effects"
	"qscientist/internal/perf"
)

func newTestLayer() *Layer {
	return NewLayer(Config{
		Radiation: effects.NewRadiationField(perf.TierLow),
		Dilation:  effects.NewDilationField(perf.TierLow),
		Tunnels:   effects.NewTunnels(perf.TierLow),
		Portals:   effects.NewPortals(perf.TierLow),
	}, nil)
}

func TestExposureAccumulatesAtZoneCenter(t *testing.T) {
	l := newTestLayer()
	l.radiation.AddZone(effects.Zone{ID: "rad-1", Radius: 5, Intensity: 0.1})

	// dt=1s at the center: +damageRate.
	l.Update(1.0, rl.Vector3{})
	assert.InDelta(t, 0.1, l.State().RadiationExposure, 1e-5)

	// Another two seconds: 0.3 total.
	l.Update(2.0, rl.Vector3{})
	assert.InDelta(t, 0.3, l.State().RadiationExposure, 1e-5)
}

func TestExposureDecaysOutsideZones(t *testing.T) {
	l := newTestLayer()
	l.radiation.AddZone(effects.Zone{ID: "rad-1", Radius: 5, Intensity: 0.1})

	l.Update(2.0, rl.Vector3{})
	require.InDelta(t, 0.2, l.State().RadiationExposure, 1e-5)

	// 4 s outside at 0.05/s recovery drains it fully, never below zero.
	outside := rl.Vector3{X: 100}
	l.Update(4.0, outside)
	assert.InDelta(t, 0.0, l.State().RadiationExposure, 1e-5)
	l.Update(10.0, outside)
	assert.GreaterOrEqual(t, l.State().RadiationExposure, float32(0))
}

func TestExposureSumsOverlappingZonesAndClamps(t *testing.T) {
	l := newTestLayer()
	l.radiation.AddZone(effects.Zone{ID: "rad-1", Radius: 5, Intensity: 0.3})
	l.radiation.AddZone(effects.Zone{ID: "rad-2", Radius: 5, Intensity: 0.4})

	// Both centers at origin: contributions sum (0.7/s).
	l.Update(1.0, rl.Vector3{})
	assert.InDelta(t, 0.7, l.State().RadiationExposure, 1e-5)

	// Clamped at 1 no matter how long we stay.
	l.Update(30.0, rl.Vector3{})
	assert.Equal(t, float32(1), l.State().RadiationExposure)
}

func TestExposureScalesWithDistance(t *testing.T) {
	l := newTestLayer()
	l.radiation.AddZone(effects.Zone{ID: "rad-1", Radius: 10, Intensity: 0.1})

	// Halfway out: (1-0.5) * 0.1 * 1s.
	l.Update(1.0, rl.Vector3{X: 5})
	assert.InDelta(t, 0.05, l.State().RadiationExposure, 1e-5)
}

func TestDilationTakesMaxNotSum(t *testing.T) {
	l := newTestLayer()
	l.dilation.AddZone(effects.Zone{ID: "dil-1", Radius: 8, Intensity: 0.8})
	l.dilation.AddZone(effects.Zone{ID: "dil-2", Radius: 8, Intensity: 0.5})

	l.Update(0.016, rl.Vector3{})
	// Strongest zone wins: 1-0.8 = 0.2, exactly at the floor.
	assert.Equal(t, float32(DilationFloor), l.State().TimeDilationFactor)
}

func TestDilationFloor(t *testing.T) {
	l := newTestLayer()
	l.dilation.AddZone(effects.Zone{ID: "dil-1", Radius: 8, Intensity: 0.95})

	l.Update(0.016, rl.Vector3{})
	assert.Equal(t, float32(DilationFloor), l.State().TimeDilationFactor)

	// Leaving the zone restores normal speed.
	l.Update(0.016, rl.Vector3{X: 50})
	assert.Equal(t, float32(1), l.State().TimeDilationFactor)
}

func TestTunnelProximityEdgeTriggered(t *testing.T) {
	l := newTestLayer()
	l.tunnels.Add(effects.Tunnel{ID: "tun-1", Position: rl.Vector3{X: 10}, ActivationRadius: 3})

	var fired []string
	l.OnTunnelProximity.AddListener(func(id string) { fired = append(fired, id) })

	far := rl.Vector3{X: 50}
	near := rl.Vector3{X: 9}

	l.Update(0.016, far)
	assert.Empty(t, fired)

	// Entering fires once; staying fires nothing more.
	l.Update(0.016, near)
	l.Update(0.016, near)
	l.Update(0.016, near)
	require.Equal(t, []string{"tun-1"}, fired)

	// Leaving fires the empty id once.
	l.Update(0.016, far)
	assert.Equal(t, []string{"tun-1", ""}, fired)
}

func TestNearestTunnelWins(t *testing.T) {
	l := newTestLayer()
	l.tunnels.Add(effects.Tunnel{ID: "tun-a", Position: rl.Vector3{X: 4}, ActivationRadius: 6})
	l.tunnels.Add(effects.Tunnel{ID: "tun-b", Position: rl.Vector3{X: -2}, ActivationRadius: 6})

	l.Update(0.016, rl.Vector3{})
	assert.Equal(t, "tun-b", l.State().NearTunnelID)
}

func TestPortalProximityUsesNearestEnd(t *testing.T) {
	l := newTestLayer()
	l.portals.Add(effects.PortalPair{ID: "por-1", A: rl.Vector3{X: -20}, B: rl.Vector3{X: 20}, ActivationRadius: 2})

	var fired []string
	l.OnPortalProximity.AddListener(func(id string) { fired = append(fired, id) })

	l.Update(0.016, rl.Vector3{X: 19})
	assert.Equal(t, []string{"por-1"}, fired)
	assert.Equal(t, "por-1", l.State().NearPortalID)
}

func TestExposureCallbackQuietWhenUnchanged(t *testing.T) {
	l := newTestLayer()

	count := 0
	l.OnRadiationExposureChange.AddListener(func(float32) { count++ })

	// No zones, exposure pinned at zero: no callbacks at all.
	for i := 0; i < 10; i++ {
		l.Update(0.5, rl.Vector3{})
	}
	assert.Zero(t, count)
}

func TestLayerDisposeIdempotent(t *testing.T) {
	l := newTestLayer()
	l.Dispose()
	require.NotPanics(t, l.Dispose)
	require.NotPanics(t, func() { l.Update(0.016, rl.Vector3{}) })
}
