package hud

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/integration"
	"qscientist/internal/perf"
)

// DebugPanel is the raygui settings window, toggled with F3. It exposes the
// overlay switches and the live-tunable hazard rates.
type DebugPanel struct {
	hud     *HUD
	minimap *Minimap
	radar   *Radar
	layer   *integration.Layer
	tier    perf.Tier

	Open bool

	// Frame timings in milliseconds, pushed by the caller each frame.
	UpdateMs float64
	ShadowMs float64
	DrawMs   float64
}

func NewDebugPanel(h *HUD, m *Minimap, r *Radar, layer *integration.Layer, tier perf.Tier) *DebugPanel {
	return &DebugPanel{hud: h, minimap: m, radar: r, layer: layer, tier: tier}
}

func (d *DebugPanel) Toggle() {
	d.Open = !d.Open
}

func (d *DebugPanel) Draw() {
	if !d.Open {
		return
	}

	bounds := rl.Rectangle{X: 20, Y: 120, Width: 280, Height: 260}
	if gui.WindowBox(bounds, "Diagnostics") {
		d.Open = false
		return
	}

	x := bounds.X + 12
	y := bounds.Y + 34
	row := func() rl.Rectangle {
		r := rl.Rectangle{X: x, Y: y, Width: bounds.Width - 24, Height: 20}
		y += 28
		return r
	}

	d.hud.Visible = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16}, "HUD overlay", d.hud.Visible)
	y += 28
	d.minimap.Visible = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16}, "Minimap", d.minimap.Visible)
	y += 28
	d.radar.Visible = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16}, "Anomaly radar", d.radar.Visible)
	y += 28

	gui.Label(row(), "Exposure recovery /s")
	d.layer.RecoveryRate = gui.Slider(row(), "", fmt.Sprintf("%.2f", d.layer.RecoveryRate), d.layer.RecoveryRate, 0, 0.5)

	state := d.layer.State()
	gui.Label(row(), fmt.Sprintf("tier: %s   budget x%d", d.tier, perf.Budget(d.tier, 100)))
	gui.Label(row(), fmt.Sprintf("%d fps   exposure %.2f   dilation %.2f",
		rl.GetFPS(), state.RadiationExposure, state.TimeDilationFactor))
	gui.Label(row(), fmt.Sprintf("update %.2fms   shadow %.2fms   draw %.2fms",
		d.UpdateMs, d.ShadowMs, d.DrawMs))
}
