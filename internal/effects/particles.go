package effects

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Box is an axis-aligned emitter volume. Particles leaving it wrap to the
// opposite face so the volume stays uniformly filled.
type Box struct {
	Min, Max rl.Vector3
}

func (b Box) size() rl.Vector3 {
	return rl.Vector3Subtract(b.Max, b.Min)
}

func (b Box) randomPoint() rl.Vector3 {
	s := b.size()
	return rl.Vector3{
		X: b.Min.X + rand.Float32()*s.X,
		Y: b.Min.Y + rand.Float32()*s.Y,
		Z: b.Min.Z + rand.Float32()*s.Z,
	}
}

// EmitterConfig describes one particle population. Count is the tier-scaled
// budget; the emitter never allocates past it.
type EmitterConfig struct {
	Count     int
	Bounds    Box
	MinSpeed  float32
	MaxSpeed  float32
	MinSize   float32
	MaxSize   float32
	Colors    []rl.Color
	PhaseWave float32 // amplitude of the per-particle phase oscillation, 0 = off
}

// Emitter owns flat per-particle buffers and integrates them independently:
// no particle ever reads another, so the update is a straight pass.
type Emitter struct {
	positions  []rl.Vector3
	velocities []rl.Vector3
	colors     []rl.Color
	sizes      []float32
	phases     []float32
	bounds     Box
	phaseWave  float32
	time       float32
	disposed   bool
}

func NewEmitter(cfg EmitterConfig) *Emitter {
	n := cfg.Count
	if n < 0 {
		n = 0
	}
	e := &Emitter{
		positions:  make([]rl.Vector3, n),
		velocities: make([]rl.Vector3, n),
		colors:     make([]rl.Color, n),
		sizes:      make([]float32, n),
		phases:     make([]float32, n),
		bounds:     cfg.Bounds,
		phaseWave:  cfg.PhaseWave,
	}
	for i := 0; i < n; i++ {
		e.positions[i] = cfg.Bounds.randomPoint()
		e.velocities[i] = randomVelocity(cfg.MinSpeed, cfg.MaxSpeed)
		e.sizes[i] = cfg.MinSize + rand.Float32()*(cfg.MaxSize-cfg.MinSize)
		e.phases[i] = rand.Float32() * 2 * math.Pi
		if len(cfg.Colors) > 0 {
			e.colors[i] = cfg.Colors[rand.Intn(len(cfg.Colors))]
		} else {
			e.colors[i] = rl.White
		}
	}
	return e
}

func randomVelocity(minSpeed, maxSpeed float32) rl.Vector3 {
	speed := minSpeed + rand.Float32()*(maxSpeed-minSpeed)
	theta := rand.Float64() * 2 * math.Pi
	phi := math.Acos(2*rand.Float64() - 1)
	return rl.Vector3{
		X: float32(math.Sin(phi)*math.Cos(theta)) * speed,
		Y: float32(math.Cos(phi)) * speed,
		Z: float32(math.Sin(phi)*math.Sin(theta)) * speed,
	}
}

func (e *Emitter) Update(dt float32) {
	if e.disposed {
		return
	}
	e.time += dt
	size := e.bounds.size()
	for i := range e.positions {
		p := &e.positions[i]
		v := e.velocities[i]
		p.X += v.X * dt
		p.Y += v.Y * dt
		p.Z += v.Z * dt
		wrap(&p.X, e.bounds.Min.X, e.bounds.Max.X, size.X)
		wrap(&p.Y, e.bounds.Min.Y, e.bounds.Max.Y, size.Y)
		wrap(&p.Z, e.bounds.Min.Z, e.bounds.Max.Z, size.Z)
	}
}

func wrap(v *float32, min, max, size float32) {
	if size <= 0 {
		return
	}
	if *v < min {
		*v += size
	} else if *v > max {
		*v -= size
	}
}

// Draw renders each particle as a camera-facing point sprite. The phase wave
// modulates size for the shimmering quantum look.
func (e *Emitter) Draw(camera rl.Camera3D) {
	if e.disposed {
		return
	}
	for i := range e.positions {
		size := e.sizes[i]
		if e.phaseWave > 0 {
			size += e.phaseWave * float32(math.Sin(float64(e.time*2+e.phases[i])))
			if size < 0.01 {
				size = 0.01
			}
		}
		rl.DrawSphereEx(e.positions[i], size, 4, 4, e.colors[i])
	}
}

// Dispose releases the buffers. Idempotent; Update/Draw afterwards are no-ops.
func (e *Emitter) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.positions = nil
	e.velocities = nil
	e.colors = nil
	e.sizes = nil
	e.phases = nil
}

func (e *Emitter) Count() int {
	return len(e.positions)
}

func (e *Emitter) Disposed() bool {
	return e.disposed
}

// Positions exposes the live buffer for tests and the stress harness.
func (e *Emitter) Positions() []rl.Vector3 {
	return e.positions
}
