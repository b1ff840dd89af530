package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/engine"
)

// UIProgressBar displays a fill-based indicator (interaction progress, exposure)
type UIProgressBar struct {
	engine.BaseComponent

	Value    float32
	MaxValue float32

	BackgroundColor rl.Color
	FillColor       rl.Color
	BorderColor     rl.Color

	BorderWidth int32

	FillFromRight bool
}

func NewUIProgressBar() *UIProgressBar {
	return &UIProgressBar{
		MaxValue:        1,
		BackgroundColor: rl.NewColor(30, 34, 48, 255),
		FillColor:       rl.NewColor(80, 200, 120, 255),
		BorderColor:     rl.NewColor(70, 90, 140, 255),
		BorderWidth:     1,
	}
}

// GetPercent returns the fill percentage (0-1)
func (pb *UIProgressBar) GetPercent() float32 {
	if pb.MaxValue <= 0 {
		return 0
	}
	p := pb.Value / pb.MaxValue
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// SetPercent sets value based on percentage (0-1)
func (pb *UIProgressBar) SetPercent(percent float32) {
	pb.Value = percent * pb.MaxValue
}

func (pb *UIProgressBar) DrawUI(rect rl.Rectangle) {
	rl.DrawRectangleRec(rect, pb.BackgroundColor)

	percent := pb.GetPercent()
	fillWidth := rect.Width * percent

	var fillRect rl.Rectangle
	if pb.FillFromRight {
		fillRect = rl.Rectangle{
			X:      rect.X + rect.Width - fillWidth,
			Y:      rect.Y,
			Width:  fillWidth,
			Height: rect.Height,
		}
	} else {
		fillRect = rl.Rectangle{
			X:      rect.X,
			Y:      rect.Y,
			Width:  fillWidth,
			Height: rect.Height,
		}
	}

	if fillWidth > 0 {
		rl.DrawRectangleRec(fillRect, pb.FillColor)
	}

	if pb.BorderWidth > 0 {
		rl.DrawRectangleLinesEx(rect, float32(pb.BorderWidth), pb.BorderColor)
	}
}
