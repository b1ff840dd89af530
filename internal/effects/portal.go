package effects

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/perf"
)

// PortalPair links two gates; stepping into either within its activation
// radius transits to the opposite end.
type PortalPair struct {
	ID               string
	A, B             rl.Vector3
	ActivationRadius float32
}

// EndNear returns the pair end closest to p and the opposite end.
func (pp PortalPair) EndNear(p rl.Vector3) (near, far rl.Vector3) {
	if rl.Vector3Distance(pp.A, p) <= rl.Vector3Distance(pp.B, p) {
		return pp.A, pp.B
	}
	return pp.B, pp.A
}

const portalHaloBaseline = 160

// Portals owns the paired gates and their halo particles.
type Portals struct {
	pairs    []PortalPair
	halos    []*Emitter // two per pair, A then B
	spin     float32
	tier     perf.Tier
	disposed bool
}

func NewPortals(tier perf.Tier) *Portals {
	return &Portals{tier: tier}
}

func (p *Portals) Add(pair PortalPair) {
	if p.disposed {
		return
	}
	if pair.ActivationRadius <= 0 {
		pair.ActivationRadius = 2.0
	}
	p.pairs = append(p.pairs, pair)
	p.halos = append(p.halos, p.halo(pair.A, pair.ActivationRadius), p.halo(pair.B, pair.ActivationRadius))
}

func (p *Portals) halo(center rl.Vector3, r float32) *Emitter {
	return NewEmitter(EmitterConfig{
		Count: perf.Budget(p.tier, portalHaloBaseline),
		Bounds: Box{
			Min: rl.Vector3{X: center.X - r, Y: center.Y, Z: center.Z - r},
			Max: rl.Vector3{X: center.X + r, Y: center.Y + 4, Z: center.Z + r},
		},
		MinSpeed:  0.3,
		MaxSpeed:  1.0,
		MinSize:   0.05,
		MaxSize:   0.12,
		Colors:    []rl.Color{rl.NewColor(255, 150, 60, 200), rl.NewColor(255, 220, 120, 140)},
		PhaseWave: 0.05,
	})
}

// All returns the pair list for proximity scans.
func (p *Portals) All() []PortalPair {
	return p.pairs
}

func (p *Portals) Find(id string) (PortalPair, bool) {
	for _, pair := range p.pairs {
		if pair.ID == id {
			return pair, true
		}
	}
	return PortalPair{}, false
}

func (p *Portals) Update(dt float32) {
	if p.disposed {
		return
	}
	p.spin += dt * 120
	if p.spin > 360 {
		p.spin -= 360
	}
	for _, h := range p.halos {
		h.Update(dt)
	}
}

func (p *Portals) Draw(camera rl.Camera3D) {
	if p.disposed {
		return
	}
	for i, pair := range p.pairs {
		p.drawGate(pair.A, pair.ActivationRadius)
		p.drawGate(pair.B, pair.ActivationRadius)
		p.halos[i*2].Draw(camera)
		p.halos[i*2+1].Draw(camera)
	}
}

func (p *Portals) drawGate(center rl.Vector3, r float32) {
	for k := 0; k < 10; k++ {
		a := float64(p.spin)*math.Pi/180 + float64(k)*math.Pi/5
		pos := rl.Vector3{
			X: center.X + float32(math.Cos(a))*r*0.8,
			Y: center.Y + 1.5 + float32(math.Sin(a))*1.2,
			Z: center.Z,
		}
		rl.DrawSphereEx(pos, 0.12, 4, 4, rl.Orange)
	}
}

func (p *Portals) Dispose() {
	if p.disposed {
		return
	}
	p.disposed = true
	for _, h := range p.halos {
		h.Dispose()
	}
	p.halos = nil
	p.pairs = nil
}
