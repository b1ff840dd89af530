// Package integration composes the effect managers with the prop registry and
// derives per-frame player state. Data flow is one-directional: input mutates
// props, the layer derives aggregate state, overlays render it. Nothing reads
// back from the HUD.
package integration

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"qscientist/internal/effects"
	"qscientist/internal/engine"
)

// DerivedState is recomputed every frame from the player position. Fully
// transient; the previous frame's copy exists only for change detection.
type DerivedState struct {
	RadiationExposure  float32
	TimeDilationFactor float32
	NearTunnelID       string // "" = none in range
	NearPortalID       string
}

const (
	// DefaultRecoveryRate is exposure lost per second outside all zones.
	DefaultRecoveryRate = 0.05
	// DilationFloor keeps motion from halting entirely inside a zone.
	DilationFloor = 0.2
	// exposureEpsilon suppresses callback chatter from float noise.
	exposureEpsilon = 1e-4
)

// Layer owns the effect manager set and the zone/transit lists it scans.
type Layer struct {
	set       effects.Set
	radiation *effects.ZoneField
	dilation  *effects.ZoneField
	tunnels   *effects.Tunnels
	portals   *effects.Portals
	log       *zap.Logger

	RecoveryRate float32

	state DerivedState
	prev  DerivedState

	// Host game logic subscribes here. Every event is edge-triggered: it
	// fires on change, never repeatedly for an unchanged value.
	OnRadiationExposureChange engine.EventWithArg[float32]
	OnTimeDilation            engine.EventWithArg[float32]
	OnTunnelProximity         engine.EventWithArg[string]
	OnPortalProximity         engine.EventWithArg[string]

	disposed bool
}

// Config carries the zone-bearing managers the layer scans each frame. All
// fields are required.
type Config struct {
	Radiation *effects.ZoneField
	Dilation  *effects.ZoneField
	Tunnels   *effects.Tunnels
	Portals   *effects.Portals
}

func NewLayer(cfg Config, log *zap.Logger) *Layer {
	if log == nil {
		log = zap.NewNop()
	}
	l := &Layer{
		radiation:    cfg.Radiation,
		dilation:     cfg.Dilation,
		tunnels:      cfg.Tunnels,
		portals:      cfg.Portals,
		log:          log,
		RecoveryRate: DefaultRecoveryRate,
	}
	l.state.TimeDilationFactor = 1
	l.prev.TimeDilationFactor = 1
	l.set.Add(cfg.Radiation)
	l.set.Add(cfg.Dilation)
	l.set.Add(cfg.Tunnels)
	l.set.Add(cfg.Portals)
	return l
}

// Register adds a further effect manager to the per-frame update fan-out.
func (l *Layer) Register(m effects.Manager) {
	l.set.Add(m)
}

// Draw renders every drawing manager into the 3D view.
func (l *Layer) Draw(camera rl.Camera3D) {
	if l.disposed {
		return
	}
	l.set.Draw(camera)
}

// State returns the most recent derived player state.
func (l *Layer) State() DerivedState {
	return l.state
}

// Update runs one frame: effect managers first (their zone lists must be
// current), then the derived-state recomputation, then edge-triggered
// callbacks.
func (l *Layer) Update(dt float32, playerPos rl.Vector3) {
	if l.disposed {
		return
	}

	l.set.Update(dt)

	l.prev = l.state
	l.state.RadiationExposure = l.stepExposure(dt, playerPos)
	l.state.TimeDilationFactor = l.deriveDilation(playerPos)
	l.state.NearTunnelID = nearestTunnel(l.tunnels.All(), playerPos)
	l.state.NearPortalID = nearestPortal(l.portals.All(), playerPos)

	l.fireChanges()
}

// stepExposure accumulates contributions from every occupied radiation zone
// (overlaps sum), or decays at the recovery rate when outside all of them.
// Result clamped to [0,1].
func (l *Layer) stepExposure(dt float32, playerPos rl.Vector3) float32 {
	exposure := l.state.RadiationExposure
	inside := false
	for _, z := range l.radiation.Zones() {
		nd := z.NormalizedDistance(playerPos)
		if nd > 1 {
			continue
		}
		inside = true
		exposure += (1 - nd) * z.Intensity * dt
	}
	if !inside {
		exposure -= l.RecoveryRate * dt
	}
	if exposure < 0 {
		exposure = 0
	}
	if exposure > 1 {
		exposure = 1
	}
	return exposure
}

// deriveDilation takes the strongest occupied dilation zone, not a sum, and
// clamps the resulting factor to the floor.
func (l *Layer) deriveDilation(playerPos rl.Vector3) float32 {
	var strongest float32
	for _, z := range l.dilation.Zones() {
		if z.Contains(playerPos) && z.Intensity > strongest {
			strongest = z.Intensity
		}
	}
	factor := 1 - strongest
	if factor < DilationFloor {
		factor = DilationFloor
	}
	return factor
}

func nearestTunnel(tunnels []effects.Tunnel, p rl.Vector3) string {
	id := ""
	best := float32(0)
	for _, t := range tunnels {
		d := rl.Vector3Distance(t.Position, p)
		if d > t.ActivationRadius {
			continue
		}
		if id == "" || d < best {
			id = t.ID
			best = d
		}
	}
	return id
}

func nearestPortal(pairs []effects.PortalPair, p rl.Vector3) string {
	id := ""
	best := float32(0)
	for _, pair := range pairs {
		near, _ := pair.EndNear(p)
		d := rl.Vector3Distance(near, p)
		if d > pair.ActivationRadius {
			continue
		}
		if id == "" || d < best {
			id = pair.ID
			best = d
		}
	}
	return id
}

func (l *Layer) fireChanges() {
	if abs(l.state.RadiationExposure-l.prev.RadiationExposure) > exposureEpsilon {
		l.OnRadiationExposureChange.Invoke(l.state.RadiationExposure)
	}
	if l.state.TimeDilationFactor != l.prev.TimeDilationFactor {
		l.OnTimeDilation.Invoke(l.state.TimeDilationFactor)
	}
	if l.state.NearTunnelID != l.prev.NearTunnelID {
		l.log.Debug("tunnel proximity changed", zap.String("id", l.state.NearTunnelID))
		l.OnTunnelProximity.Invoke(l.state.NearTunnelID)
	}
	if l.state.NearPortalID != l.prev.NearPortalID {
		l.OnPortalProximity.Invoke(l.state.NearPortalID)
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// Dispose tears down every registered manager. Idempotent.
func (l *Layer) Dispose() {
	if l.disposed {
		return
	}
	l.disposed = true
	l.set.Dispose()
	l.OnRadiationExposureChange.RemoveAllListeners()
	l.OnTimeDilation.RemoveAllListeners()
	l.OnTunnelProximity.RemoveAllListeners()
	l.OnPortalProximity.RemoveAllListeners()
}
