package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/engine"
)

// UIDrawer is implemented by widgets drawable inside a canvas rect.
type UIDrawer interface {
	DrawUI(rect rl.Rectangle)
}

// UICanvas is the root container for UI elements. Attach to a GameObject and
// add widget children; the canvas handles layout calculation and draw order.
type UICanvas struct {
	engine.BaseComponent

	SortOrder int // Higher values render on top
}

func NewUICanvas() *UICanvas {
	return &UICanvas{}
}

// Draw renders all UI elements under this canvas
func (c *UICanvas) Draw() {
	g := c.GetGameObject()
	if g == nil {
		return
	}

	screenRect := rl.Rectangle{
		Width:  float32(rl.GetScreenWidth()),
		Height: float32(rl.GetScreenHeight()),
	}

	c.drawUIElement(g, screenRect)
}

// drawUIElement recursively draws a UI element and its children
func (c *UICanvas) drawUIElement(g *engine.GameObject, parentRect rl.Rectangle) {
	if g == nil || !g.Active {
		return
	}

	rt := engine.GetComponent[*RectTransform](g)
	currentRect := parentRect

	if rt != nil {
		rt.CalculateRect(parentRect)
		currentRect = rt.GetScreenRect()
	}

	for _, comp := range g.Components() {
		if drawer, ok := comp.(UIDrawer); ok {
			drawer.DrawUI(currentRect)
		}
	}

	for _, child := range g.Children {
		c.drawUIElement(child, currentRect)
	}
}
