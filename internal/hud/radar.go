package hud

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/level"
)

// Radar is a sweep-style overlay showing anomaly bearings. Blips light up as
// the sweep arm passes them and decay until the next revolution.
type Radar struct {
	anomalies []level.Anomaly

	Range      float32 // world units
	Radius     float32 // pixels
	Margin     float32
	SweepSpeed float32 // degrees per second

	angle   float32
	lastHit map[string]float32 // anomaly id -> sweep angle at last pass
	Visible bool
}

func NewRadar(anomalies []level.Anomaly) *Radar {
	return &Radar{
		anomalies:  anomalies,
		Range:      40,
		Radius:     70,
		Margin:     16,
		SweepSpeed: 120,
		lastHit:    make(map[string]float32),
		Visible:    true,
	}
}

func (r *Radar) Update(dt float32) {
	r.angle += r.SweepSpeed * dt
	for r.angle >= 360 {
		r.angle -= 360
	}
}

func (r *Radar) center() rl.Vector2 {
	return rl.Vector2{
		X: float32(rl.GetScreenWidth()) - r.Radius - r.Margin,
		Y: r.Margin + 180 + 16 + r.Radius, // below the minimap
	}
}

func (r *Radar) Draw(player rl.Vector3) {
	if !r.Visible {
		return
	}
	c := r.center()

	rl.DrawCircleV(c, r.Radius, rl.NewColor(8, 18, 14, 200))
	rl.DrawCircleLinesV(c, r.Radius, rl.NewColor(60, 140, 90, 255))
	rl.DrawCircleLinesV(c, r.Radius*0.5, rl.NewColor(40, 90, 60, 255))

	// Sweep arm
	rad := float64(r.angle) * math.Pi / 180
	arm := rl.Vector2{X: float32(math.Cos(rad)), Y: float32(math.Sin(rad))}
	rl.DrawLineEx(c, rl.Vector2Add(c, rl.Vector2Scale(arm, r.Radius)), 2, rl.NewColor(90, 220, 130, 200))

	for _, a := range r.anomalies {
		dx := a.Position.X - player.X
		dz := a.Position.Z - player.Z
		dist := float32(math.Sqrt(float64(dx*dx + dz*dz)))
		if dist > r.Range {
			continue
		}

		bearing := float32(math.Atan2(float64(dz), float64(dx)) * 180 / math.Pi)
		if bearing < 0 {
			bearing += 360
		}

		// Refresh the blip when the arm crosses its bearing.
		if angleDelta(r.angle, bearing) < 4 {
			r.lastHit[a.ID] = r.angle
		}

		age := angleDelta(r.angle, r.lastHit[a.ID]) / 360
		alpha := uint8((1 - age) * 255)

		frac := dist / r.Range
		brad := float64(bearing) * math.Pi / 180
		pt := rl.Vector2{
			X: c.X + float32(math.Cos(brad))*frac*r.Radius,
			Y: c.Y + float32(math.Sin(brad))*frac*r.Radius,
		}
		rl.DrawCircleV(pt, 3, rl.NewColor(120, 255, 160, alpha))
	}
}

// angleDelta is the forward distance from the arm to the bearing, in [0,360).
func angleDelta(from, to float32) float32 {
	d := from - to
	for d < 0 {
		d += 360
	}
	for d >= 360 {
		d -= 360
	}
	return d
}
