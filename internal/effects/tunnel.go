package effects

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/perf"
)

// Tunnel is an interactive transit object. Entering its activation radius is
// detected by the integration layer's proximity scan.
type Tunnel struct {
	ID               string
	Position         rl.Vector3
	ActivationRadius float32
	Destination      rl.Vector3
}

const tunnelSwirlBaseline = 200

// Tunnels owns the quantum tunnel mouths and their swirl particles.
type Tunnels struct {
	tunnels  []Tunnel
	swirls   []*Emitter
	angles   []float32
	tier     perf.Tier
	disposed bool
}

func NewTunnels(tier perf.Tier) *Tunnels {
	return &Tunnels{tier: tier}
}

func (t *Tunnels) Add(tn Tunnel) {
	if t.disposed {
		return
	}
	if tn.ActivationRadius <= 0 {
		tn.ActivationRadius = 2.5
	}
	t.tunnels = append(t.tunnels, tn)
	r := tn.ActivationRadius
	t.swirls = append(t.swirls, NewEmitter(EmitterConfig{
		Count: perf.Budget(t.tier, tunnelSwirlBaseline),
		Bounds: Box{
			Min: rl.Vector3{X: tn.Position.X - r, Y: tn.Position.Y, Z: tn.Position.Z - r},
			Max: rl.Vector3{X: tn.Position.X + r, Y: tn.Position.Y + 3, Z: tn.Position.Z + r},
		},
		MinSpeed:  0.4,
		MaxSpeed:  1.2,
		MinSize:   0.05,
		MaxSize:   0.14,
		Colors:    []rl.Color{rl.NewColor(60, 230, 220, 180), rl.NewColor(120, 255, 255, 120)},
		PhaseWave: 0.04,
	}))
	t.angles = append(t.angles, 0)
}

// All returns the tunnel list for proximity scans.
func (t *Tunnels) All() []Tunnel {
	return t.tunnels
}

// Find returns the tunnel with the given id.
func (t *Tunnels) Find(id string) (Tunnel, bool) {
	for _, tn := range t.tunnels {
		if tn.ID == id {
			return tn, true
		}
	}
	return Tunnel{}, false
}

func (t *Tunnels) Update(dt float32) {
	if t.disposed {
		return
	}
	for i := range t.angles {
		t.angles[i] += dt * 90
		if t.angles[i] > 360 {
			t.angles[i] -= 360
		}
	}
	for _, s := range t.swirls {
		s.Update(dt)
	}
}

func (t *Tunnels) Draw(camera rl.Camera3D) {
	if t.disposed {
		return
	}
	for i, tn := range t.tunnels {
		// Rotating ring of markers around the mouth.
		for k := 0; k < 8; k++ {
			a := float64(t.angles[i])*math.Pi/180 + float64(k)*math.Pi/4
			p := rl.Vector3{
				X: tn.Position.X + float32(math.Cos(a))*tn.ActivationRadius,
				Y: tn.Position.Y + 0.2,
				Z: tn.Position.Z + float32(math.Sin(a))*tn.ActivationRadius,
			}
			rl.DrawSphereEx(p, 0.1, 4, 4, rl.NewColor(80, 240, 230, 220))
		}
		t.swirls[i].Draw(camera)
	}
}

func (t *Tunnels) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	for _, s := range t.swirls {
		s.Dispose()
	}
	t.swirls = nil
	t.tunnels = nil
	t.angles = nil
}
