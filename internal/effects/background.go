package effects

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/perf"
)

const starBaseline = 800

// Background is the slowly rotating star shell drawn far behind the level.
type Background struct {
	directions []rl.Vector3 // unit vectors from the camera
	sizes      []float32
	colors     []rl.Color
	rotation   float32
	disposed   bool
}

func NewBackground(tier perf.Tier) *Background {
	n := perf.Budget(tier, starBaseline)
	b := &Background{
		directions: make([]rl.Vector3, n),
		sizes:      make([]float32, n),
		colors:     make([]rl.Color, n),
	}
	for i := 0; i < n; i++ {
		theta := rand.Float64() * 2 * math.Pi
		phi := math.Acos(2*rand.Float64() - 1)
		b.directions[i] = rl.Vector3{
			X: float32(math.Sin(phi) * math.Cos(theta)),
			Y: float32(math.Cos(phi)),
			Z: float32(math.Sin(phi) * math.Sin(theta)),
		}
		b.sizes[i] = 0.1 + rand.Float32()*0.25
		shade := uint8(150 + rand.Intn(106))
		b.colors[i] = rl.NewColor(shade, shade, 255, 255)
	}
	return b
}

func (b *Background) Update(dt float32) {
	if b.disposed {
		return
	}
	b.rotation += dt * 0.5 // degrees per second, barely perceptible
	if b.rotation > 360 {
		b.rotation -= 360
	}
}

const starShellRadius = 180.0

func (b *Background) Draw(camera rl.Camera3D) {
	if b.disposed {
		return
	}
	rot := rl.MatrixRotateY(b.rotation * math.Pi / 180)
	for i := range b.directions {
		dir := rl.Vector3Transform(b.directions[i], rot)
		pos := rl.Vector3Add(camera.Position, rl.Vector3Scale(dir, starShellRadius))
		rl.DrawSphereEx(pos, b.sizes[i], 4, 4, b.colors[i])
	}
}

func (b *Background) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.directions = nil
	b.sizes = nil
	b.colors = nil
}
