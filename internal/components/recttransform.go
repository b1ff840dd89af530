package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/engine"
)

// Anchor presets for common UI layouts
type AnchorPreset int

const (
	AnchorTopLeft AnchorPreset = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorMiddleLeft
	AnchorMiddleCenter
	AnchorMiddleRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
	AnchorStretchAll
)

// RectTransform positions UI elements in screen space with anchoring support.
// Anchors define relative position to the parent rect; offsets define the
// actual size/position relative to those anchors.
type RectTransform struct {
	engine.BaseComponent

	// Anchor points (0-1 range, relative to parent).
	// AnchorMin is top-left, AnchorMax is bottom-right.
	AnchorMin rl.Vector2
	AnchorMax rl.Vector2

	// Pivot point within the element (0-1 range)
	Pivot rl.Vector2

	// Position offset from anchor, in pixels. When anchors are the same
	// point this is position relative to the anchor; when they differ it
	// is inset from the edges.
	AnchoredPosition rl.Vector2

	// Size of the element (when anchors are the same point)
	SizeDelta rl.Vector2

	// Computed screen rectangle (updated each frame)
	screenRect rl.Rectangle
}

func NewRectTransform() *RectTransform {
	return &RectTransform{
		AnchorMin:        rl.Vector2{X: 0.5, Y: 0.5},
		AnchorMax:        rl.Vector2{X: 0.5, Y: 0.5},
		Pivot:            rl.Vector2{X: 0.5, Y: 0.5},
		AnchoredPosition: rl.Vector2{},
		SizeDelta:        rl.Vector2{X: 100, Y: 30},
	}
}

// SetAnchorPreset configures anchors using common presets
func (rt *RectTransform) SetAnchorPreset(preset AnchorPreset) {
	switch preset {
	case AnchorTopLeft:
		rt.AnchorMin = rl.Vector2{X: 0, Y: 0}
		rt.AnchorMax = rl.Vector2{X: 0, Y: 0}
		rt.Pivot = rl.Vector2{X: 0, Y: 0}
	case AnchorTopCenter:
		rt.AnchorMin = rl.Vector2{X: 0.5, Y: 0}
		rt.AnchorMax = rl.Vector2{X: 0.5, Y: 0}
		rt.Pivot = rl.Vector2{X: 0.5, Y: 0}
	case AnchorTopRight:
		rt.AnchorMin = rl.Vector2{X: 1, Y: 0}
		rt.AnchorMax = rl.Vector2{X: 1, Y: 0}
		rt.Pivot = rl.Vector2{X: 1, Y: 0}
	case AnchorMiddleLeft:
		rt.AnchorMin = rl.Vector2{X: 0, Y: 0.5}
		rt.AnchorMax = rl.Vector2{X: 0, Y: 0.5}
		rt.Pivot = rl.Vector2{X: 0, Y: 0.5}
	case AnchorMiddleCenter:
		rt.AnchorMin = rl.Vector2{X: 0.5, Y: 0.5}
		rt.AnchorMax = rl.Vector2{X: 0.5, Y: 0.5}
		rt.Pivot = rl.Vector2{X: 0.5, Y: 0.5}
	case AnchorMiddleRight:
		rt.AnchorMin = rl.Vector2{X: 1, Y: 0.5}
		rt.AnchorMax = rl.Vector2{X: 1, Y: 0.5}
		rt.Pivot = rl.Vector2{X: 1, Y: 0.5}
	case AnchorBottomLeft:
		rt.AnchorMin = rl.Vector2{X: 0, Y: 1}
		rt.AnchorMax = rl.Vector2{X: 0, Y: 1}
		rt.Pivot = rl.Vector2{X: 0, Y: 1}
	case AnchorBottomCenter:
		rt.AnchorMin = rl.Vector2{X: 0.5, Y: 1}
		rt.AnchorMax = rl.Vector2{X: 0.5, Y: 1}
		rt.Pivot = rl.Vector2{X: 0.5, Y: 1}
	case AnchorBottomRight:
		rt.AnchorMin = rl.Vector2{X: 1, Y: 1}
		rt.AnchorMax = rl.Vector2{X: 1, Y: 1}
		rt.Pivot = rl.Vector2{X: 1, Y: 1}
	case AnchorStretchAll:
		rt.AnchorMin = rl.Vector2{X: 0, Y: 0}
		rt.AnchorMax = rl.Vector2{X: 1, Y: 1}
		rt.Pivot = rl.Vector2{X: 0.5, Y: 0.5}
	}
}

// GetScreenRect returns the computed screen-space rectangle
func (rt *RectTransform) GetScreenRect() rl.Rectangle {
	return rt.screenRect
}

// CalculateRect computes screen position based on parent rect and anchors
func (rt *RectTransform) CalculateRect(parentRect rl.Rectangle) {
	anchorMinX := parentRect.X + parentRect.Width*rt.AnchorMin.X
	anchorMinY := parentRect.Y + parentRect.Height*rt.AnchorMin.Y
	anchorMaxX := parentRect.X + parentRect.Width*rt.AnchorMax.X
	anchorMaxY := parentRect.Y + parentRect.Height*rt.AnchorMax.Y

	var x, y, width, height float32

	if rt.AnchorMin.X == rt.AnchorMax.X && rt.AnchorMin.Y == rt.AnchorMax.Y {
		// Point anchor - position relative to anchor point
		width = rt.SizeDelta.X
		height = rt.SizeDelta.Y
		x = anchorMinX + rt.AnchoredPosition.X - width*rt.Pivot.X
		y = anchorMinY + rt.AnchoredPosition.Y - height*rt.Pivot.Y
	} else {
		// Stretched anchors - SizeDelta acts as insets
		x = anchorMinX + rt.AnchoredPosition.X
		y = anchorMinY + rt.AnchoredPosition.Y
		width = (anchorMaxX - anchorMinX) + rt.SizeDelta.X
		height = (anchorMaxY - anchorMinY) + rt.SizeDelta.Y
	}

	rt.screenRect = rl.Rectangle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

// ContainsPoint checks if a screen point is inside this rect
func (rt *RectTransform) ContainsPoint(point rl.Vector2) bool {
	return rl.CheckCollisionPointRec(point, rt.screenRect)
}
