package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/engine"
)

// UIPanel is a simple background panel/container
type UIPanel struct {
	engine.BaseComponent

	Color rl.Color

	BorderColor  rl.Color
	BorderWidth  int32
	BorderRadius float32 // Rounded corners (0 = sharp)
}

func NewUIPanel() *UIPanel {
	return &UIPanel{
		Color:       rl.NewColor(16, 20, 34, 200),
		BorderColor: rl.NewColor(70, 90, 140, 255),
		BorderWidth: 1,
	}
}

func (p *UIPanel) DrawUI(rect rl.Rectangle) {
	if p.BorderRadius > 0 {
		rl.DrawRectangleRounded(rect, p.BorderRadius/rect.Height, 8, p.Color)
		if p.BorderWidth > 0 {
			rl.DrawRectangleRoundedLinesEx(rect, p.BorderRadius/rect.Height, 8, float32(p.BorderWidth), p.BorderColor)
		}
	} else {
		rl.DrawRectangleRec(rect, p.Color)
		if p.BorderWidth > 0 {
			rl.DrawRectangleLinesEx(rect, float32(p.BorderWidth), p.BorderColor)
		}
	}
}
