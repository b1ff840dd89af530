package hud

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/level"
	"qscientist/internal/props"
)

// Minimap is a top-down overlay in the top-right corner. World XZ maps to
// screen XY, centered on the player.
type Minimap struct {
	lvl *level.Level
	reg *props.Registry

	Size   float32 // square side in pixels
	Scale  float32 // pixels per world unit
	Margin float32

	Visible bool
}

func NewMinimap(lvl *level.Level, reg *props.Registry) *Minimap {
	return &Minimap{
		lvl:     lvl,
		reg:     reg,
		Size:    180,
		Scale:   3,
		Margin:  16,
		Visible: true,
	}
}

func (m *Minimap) origin() rl.Vector2 {
	return rl.Vector2{
		X: float32(rl.GetScreenWidth()) - m.Size - m.Margin,
		Y: m.Margin,
	}
}

// project maps a world point into minimap pixels, relative to the player.
func (m *Minimap) project(world rl.Vector3, player rl.Vector3) (rl.Vector2, bool) {
	o := m.origin()
	half := m.Size / 2
	dx := (world.X - player.X) * m.Scale
	dz := (world.Z - player.Z) * m.Scale
	if dx < -half || dx > half || dz < -half || dz > half {
		return rl.Vector2{}, false
	}
	return rl.Vector2{X: o.X + half + dx, Y: o.Y + half + dz}, true
}

func (m *Minimap) Draw(player rl.Vector3, yaw float32, waypoint *rl.Vector3) {
	if !m.Visible {
		return
	}
	o := rl.Rectangle{X: m.origin().X, Y: m.origin().Y, Width: m.Size, Height: m.Size}
	rl.DrawRectangleRec(o, rl.NewColor(10, 14, 24, 200))
	rl.DrawRectangleLinesEx(o, 1, rl.NewColor(70, 90, 140, 255))

	rl.BeginScissorMode(int32(o.X), int32(o.Y), int32(o.Width), int32(o.Height))

	for _, w := range m.lvl.Walls {
		center := rl.Vector3{X: w.Position.X, Y: 0, Z: w.Position.Z}
		if pt, ok := m.project(center, player); ok {
			rl.DrawRectangle(
				int32(pt.X-w.Size.X*m.Scale/2), int32(pt.Y-w.Size.Z*m.Scale/2),
				int32(w.Size.X*m.Scale), int32(w.Size.Z*m.Scale),
				rl.NewColor(90, 110, 150, 255))
		}
	}

	for _, poi := range m.lvl.POIs {
		world := rl.Vector3{X: poi.Position.X, Z: poi.Position.Z}
		if pt, ok := m.project(world, player); ok {
			rl.DrawCircleV(pt, 2, rl.NewColor(150, 170, 190, 255))
		}
	}

	m.reg.All(func(p *props.Prop) {
		if p.Node == nil {
			return
		}
		if pt, ok := m.project(p.Node.WorldPosition(), player); ok {
			rl.DrawCircleV(pt, 3, minimapPropColor(p))
		}
	})

	if waypoint != nil {
		if pt, ok := m.project(*waypoint, player); ok {
			rl.DrawCircleLinesV(pt, 5, rl.Gold)
			rl.DrawCircleV(pt, 2, rl.Gold)
		}
	}

	// Player arrow pointing along the look yaw.
	center := rl.Vector2{X: o.X + m.Size/2, Y: o.Y + m.Size/2}
	rad := float64(yaw) * math.Pi / 180
	dir := rl.Vector2{X: float32(math.Cos(rad)), Y: float32(math.Sin(rad))}
	tip := rl.Vector2Add(center, rl.Vector2Scale(dir, 7))
	left := rl.Vector2Add(center, rl.Vector2Scale(rl.Vector2{X: -dir.Y, Y: dir.X}, 4))
	right := rl.Vector2Add(center, rl.Vector2Scale(rl.Vector2{X: dir.Y, Y: -dir.X}, 4))
	rl.DrawTriangle(tip, left, right, rl.NewColor(120, 230, 230, 255))

	rl.EndScissorMode()
}

func minimapPropColor(p *props.Prop) rl.Color {
	switch p.State {
	case props.Completed:
		return rl.NewColor(235, 200, 90, 255)
	case props.Entangled:
		return rl.NewColor(190, 110, 255, 255)
	case props.Active:
		return rl.White
	}
	return rl.NewColor(90, 170, 255, 255)
}
