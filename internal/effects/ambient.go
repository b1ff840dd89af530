package effects

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/perf"
)

const ambientBaseline = 1600

// AmbientField is the free-floating quantum dust filling the level volume.
type AmbientField struct {
	emitter  *Emitter
	extent   float32
	disposed bool
}

func NewAmbientField(tier perf.Tier, extent float32) *AmbientField {
	colors := []rl.Color{
		rl.NewColor(120, 200, 255, 90),
		rl.NewColor(200, 160, 255, 70),
		rl.NewColor(255, 255, 255, 50),
	}
	wave := float32(0)
	if perf.HyperEffects(tier) {
		wave = 0.05
	}
	return &AmbientField{
		extent: extent,
		emitter: NewEmitter(EmitterConfig{
			Count: perf.Budget(tier, ambientBaseline),
			Bounds: Box{
				Min: rl.Vector3{X: -extent, Y: 0, Z: -extent},
				Max: rl.Vector3{X: extent, Y: extent / 2, Z: extent},
			},
			MinSpeed:  0.05,
			MaxSpeed:  0.3,
			MinSize:   0.02,
			MaxSize:   0.08,
			Colors:    colors,
			PhaseWave: wave,
		}),
	}
}

func (a *AmbientField) Update(dt float32) {
	if a.disposed {
		return
	}
	a.emitter.Update(dt)
}

func (a *AmbientField) Draw(camera rl.Camera3D) {
	if a.disposed {
		return
	}
	a.emitter.Draw(camera)
}

func (a *AmbientField) Dispose() {
	if a.disposed {
		return
	}
	a.disposed = true
	a.emitter.Dispose()
	a.emitter = nil
}
