package effects

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/perf"
)

// Zone is a spherical spatial region checked against the player each frame.
// Intensity means damage rate for radiation zones and slowdown strength for
// dilation zones.
type Zone struct {
	ID        string
	Center    rl.Vector3
	Radius    float32
	Intensity float32
}

func (z Zone) Contains(p rl.Vector3) bool {
	return rl.Vector3Distance(z.Center, p) <= z.Radius
}

// NormalizedDistance is 0 at the center, 1 at the rim, >1 outside.
func (z Zone) NormalizedDistance(p rl.Vector3) float32 {
	if z.Radius <= 0 {
		return 1
	}
	return rl.Vector3Distance(z.Center, p) / z.Radius
}

const zoneGlowBaseline = 120

// ZoneField is the shared shape of the radiation and dilation managers: a
// zone list plus one glow emitter per zone.
type ZoneField struct {
	zones    []Zone
	glows    []*Emitter
	tint     []rl.Color
	tier     perf.Tier
	disposed bool
}

func newZoneField(tier perf.Tier, tint []rl.Color) *ZoneField {
	return &ZoneField{tier: tier, tint: tint}
}

// NewRadiationField builds the manager for radiation zones (green haze).
func NewRadiationField(tier perf.Tier) *ZoneField {
	return newZoneField(tier, []rl.Color{
		rl.NewColor(80, 220, 100, 160),
		rl.NewColor(140, 255, 120, 120),
	})
}

// NewDilationField builds the manager for time-dilation zones (violet haze).
func NewDilationField(tier perf.Tier) *ZoneField {
	return newZoneField(tier, []rl.Color{
		rl.NewColor(150, 90, 240, 150),
		rl.NewColor(90, 120, 255, 110),
	})
}

// AddZone registers a zone and allocates its glow particles.
func (f *ZoneField) AddZone(z Zone) {
	if f.disposed {
		return
	}
	f.zones = append(f.zones, z)
	half := z.Radius
	f.glows = append(f.glows, NewEmitter(EmitterConfig{
		Count: perf.Budget(f.tier, zoneGlowBaseline),
		Bounds: Box{
			Min: rl.Vector3{X: z.Center.X - half, Y: z.Center.Y - half, Z: z.Center.Z - half},
			Max: rl.Vector3{X: z.Center.X + half, Y: z.Center.Y + half, Z: z.Center.Z + half},
		},
		MinSpeed:  0.1,
		MaxSpeed:  0.5,
		MinSize:   0.04,
		MaxSize:   0.12,
		Colors:    f.tint,
		PhaseWave: 0.03,
	}))
}

// Zones returns the live zone list; the integration layer scans it each frame.
func (f *ZoneField) Zones() []Zone {
	return f.zones
}

func (f *ZoneField) Update(dt float32) {
	if f.disposed {
		return
	}
	for _, g := range f.glows {
		g.Update(dt)
	}
}

func (f *ZoneField) Draw(camera rl.Camera3D) {
	if f.disposed {
		return
	}
	for _, g := range f.glows {
		g.Draw(camera)
	}
}

func (f *ZoneField) Dispose() {
	if f.disposed {
		return
	}
	f.disposed = true
	for _, g := range f.glows {
		g.Dispose()
	}
	f.glows = nil
	f.zones = nil
}
