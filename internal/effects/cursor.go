package effects

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/perf"
)

const trailBaseline = 48

// CursorTrail leaves a fading ribbon behind the 3D selection cursor.
type CursorTrail struct {
	points   []rl.Vector3
	ages     []float32
	capacity int
	lifetime float32
	disposed bool
}

func NewCursorTrail(tier perf.Tier) *CursorTrail {
	return &CursorTrail{
		capacity: perf.Budget(tier, trailBaseline),
		lifetime: 0.6,
	}
}

// Push records the cursor's current world position.
func (c *CursorTrail) Push(p rl.Vector3) {
	if c.disposed || c.capacity == 0 {
		return
	}
	c.points = append(c.points, p)
	c.ages = append(c.ages, 0)
	if len(c.points) > c.capacity {
		c.points = c.points[1:]
		c.ages = c.ages[1:]
	}
}

func (c *CursorTrail) Update(dt float32) {
	if c.disposed {
		return
	}
	keep := 0
	for i := range c.points {
		c.ages[i] += dt
		if c.ages[i] < c.lifetime {
			c.points[keep] = c.points[i]
			c.ages[keep] = c.ages[i]
			keep++
		}
	}
	c.points = c.points[:keep]
	c.ages = c.ages[:keep]
}

func (c *CursorTrail) Draw(camera rl.Camera3D) {
	if c.disposed {
		return
	}
	for i, p := range c.points {
		fade := 1 - c.ages[i]/c.lifetime
		alpha := uint8(fade * 180)
		rl.DrawSphereEx(p, 0.05+0.05*fade, 4, 4, rl.NewColor(180, 240, 255, alpha))
	}
}

func (c *CursorTrail) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.points = nil
	c.ages = nil
}
