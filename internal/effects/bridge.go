package effects

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Bridge is a hard-light walkway between two anchors. Purely visual; the
// walkable surface comes from the level's floor list.
type Bridge struct {
	ID    string
	From  rl.Vector3
	To    rl.Vector3
	Width float32
	pulse float32
}

// Bridges animates a translucent pulse running along each bridge span.
type Bridges struct {
	bridges  []*Bridge
	time     float32
	disposed bool
}

func NewBridges() *Bridges {
	return &Bridges{}
}

func (b *Bridges) Add(id string, from, to rl.Vector3, width float32) {
	if b.disposed {
		return
	}
	if width <= 0 {
		width = 1.5
	}
	b.bridges = append(b.bridges, &Bridge{ID: id, From: from, To: to, Width: width})
}

func (b *Bridges) Update(dt float32) {
	if b.disposed {
		return
	}
	b.time += dt
	for i, br := range b.bridges {
		br.pulse = 0.5 + 0.5*float32(math.Sin(float64(b.time*2)+float64(i)))
	}
}

func (b *Bridges) Draw(camera rl.Camera3D) {
	if b.disposed {
		return
	}
	for _, br := range b.bridges {
		base := rl.NewColor(90, 200, 255, uint8(70+br.pulse*90))
		mid := rl.Vector3Scale(rl.Vector3Add(br.From, br.To), 0.5)
		length := rl.Vector3Distance(br.From, br.To)
		rl.DrawCube(mid, br.Width, 0.08, length, base)
		rl.DrawLine3D(br.From, br.To, rl.SkyBlue)
	}
}

func (b *Bridges) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.bridges = nil
}
