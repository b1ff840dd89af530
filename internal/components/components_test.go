package components

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/engine"
	"qscientist/internal/props"
)

func TestRectTransformPointAnchor(t *testing.T) {
	rt := NewRectTransform()
	rt.SetAnchorPreset(AnchorTopLeft)
	rt.AnchoredPosition = rl.Vector2{X: 10, Y: 20}
	rt.SizeDelta = rl.Vector2{X: 200, Y: 50}

	rt.CalculateRect(rl.Rectangle{Width: 800, Height: 600})
	r := rt.GetScreenRect()
	if r.X != 10 || r.Y != 20 || r.Width != 200 || r.Height != 50 {
		t.Errorf("unexpected rect %+v", r)
	}
}

func TestRectTransformStretchInsets(t *testing.T) {
	rt := NewRectTransform()
	rt.SetAnchorPreset(AnchorStretchAll)
	rt.AnchoredPosition = rl.Vector2{X: 8, Y: 8}
	rt.SizeDelta = rl.Vector2{X: -16, Y: -16}

	rt.CalculateRect(rl.Rectangle{Width: 800, Height: 600})
	r := rt.GetScreenRect()
	if r.X != 8 || r.Y != 8 || r.Width != 784 || r.Height != 584 {
		t.Errorf("unexpected rect %+v", r)
	}
}

func TestProgressBarPercentClamps(t *testing.T) {
	pb := NewUIProgressBar()
	pb.Value = 2
	if pb.GetPercent() != 1 {
		t.Errorf("percent %v, want 1", pb.GetPercent())
	}
	pb.Value = -1
	if pb.GetPercent() != 0 {
		t.Errorf("percent %v, want 0", pb.GetPercent())
	}
	pb.MaxValue = 0
	if pb.GetPercent() != 0 {
		t.Error("zero max should report empty")
	}
}

func TestPropGlowStateColors(t *testing.T) {
	p := &props.Prop{Kind: props.Computer, State: props.Idle}
	base := rl.NewColor(40, 120, 220, 255)
	glow := NewPropGlow(p, base)

	if glow.stateColor() != base {
		t.Error("idle prop should keep its base color")
	}

	p.State = props.Completed
	done := glow.stateColor()
	if done == base {
		t.Error("completed prop should be tinted")
	}

	glow.Hovered = true
	hovered := glow.stateColor()
	if hovered == done {
		t.Error("hover should brighten the tint")
	}
}

func TestPropHoverBobsAroundBase(t *testing.T) {
	obj := engine.NewGameObject("crystal")
	hover := NewPropHover(rl.Vector3{X: 1, Y: 2, Z: 3}, 0)
	obj.AddComponent(hover)

	hover.Update(0.25)
	pos := obj.Transform.Position
	if pos.X != 1 || pos.Z != 3 {
		t.Errorf("bob must only move Y, got %+v", pos)
	}
	if pos.Y < 2-hover.BobHeight || pos.Y > 2+hover.BobHeight {
		t.Errorf("Y %v outside bob range", pos.Y)
	}
	if obj.Transform.Rotation.Y == 0 {
		t.Error("expected spin")
	}
}
