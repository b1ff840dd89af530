package components

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/engine"
	"qscientist/internal/props"
)

// PropGlow tints a prop's model by its interaction state and pulses while a
// scientist is working on it. Hover adds a brighter rim regardless of state.
type PropGlow struct {
	engine.BaseComponent
	Prop      *props.Prop
	BaseColor rl.Color
	Hovered   bool
	time      float32
}

func NewPropGlow(p *props.Prop, base rl.Color) *PropGlow {
	return &PropGlow{Prop: p, BaseColor: base}
}

func (pg *PropGlow) Update(deltaTime float32) {
	g := pg.GetGameObject()
	if g == nil || pg.Prop == nil {
		return
	}
	pg.time += deltaTime

	renderer := engine.GetComponent[*ModelRenderer](g)
	if renderer == nil {
		return
	}
	renderer.SetColor(pg.stateColor())
}

func (pg *PropGlow) stateColor() rl.Color {
	c := pg.BaseColor
	switch pg.Prop.State {
	case props.Active:
		// Pulse between the base color and white while work is in progress.
		pulse := float32(0.5 + 0.5*math.Sin(float64(pg.time)*6))
		c = lerpColor(c, rl.White, 0.3+0.4*pulse)
	case props.Completed:
		c = rl.NewColor(235, 200, 90, 255)
	case props.Entangled:
		c = rl.NewColor(190, 110, 255, 255)
	}
	if pg.Hovered {
		c = lerpColor(c, rl.White, 0.35)
	}
	return c
}

func lerpColor(a, b rl.Color, t float32) rl.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return rl.NewColor(
		uint8(float32(a.R)+(float32(b.R)-float32(a.R))*t),
		uint8(float32(a.G)+(float32(b.G)-float32(a.G))*t),
		uint8(float32(a.B)+(float32(b.B)-float32(a.B))*t),
		uint8(float32(a.A)+(float32(b.A)-float32(a.A))*t),
	)
}

// PropHover bobs and spins a prop around its spawn point. Used for the time
// crystals so they read as pickups.
type PropHover struct {
	engine.BaseComponent
	BasePosition rl.Vector3
	BobHeight    float32
	BobSpeed     float32
	SpinSpeed    float32
	Phase        float32
	time         float32
}

func NewPropHover(basePos rl.Vector3, phase float32) *PropHover {
	return &PropHover{
		BasePosition: basePos,
		BobHeight:    0.25,
		BobSpeed:     2.0,
		SpinSpeed:    45.0,
		Phase:        phase,
	}
}

func (ph *PropHover) Update(deltaTime float32) {
	g := ph.GetGameObject()
	if g == nil {
		return
	}
	ph.time += deltaTime

	bob := float32(math.Sin(float64(ph.time*ph.BobSpeed+ph.Phase))) * ph.BobHeight
	g.Transform.Position = rl.Vector3{
		X: ph.BasePosition.X,
		Y: ph.BasePosition.Y + bob,
		Z: ph.BasePosition.Z,
	}

	g.Transform.Rotation.Y += ph.SpinSpeed * deltaTime
	if g.Transform.Rotation.Y > 360 {
		g.Transform.Rotation.Y -= 360
	}
}
