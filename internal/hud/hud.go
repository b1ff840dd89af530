// Package hud draws the holographic overlay: mission panel, hazard readouts,
// interaction progress, toasts, minimap and anomaly radar. The HUD is a pure
// sink; it never feeds state back into the simulation.
package hud

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"qscientist/internal/components"
	"qscientist/internal/effects"
	"qscientist/internal/engine"
)

// HUD owns the canvas object holding the overlay widget tree. Values are
// pushed in by the session each frame; tweens animate the toast fades.
type HUD struct {
	log    *zap.Logger
	root   *engine.GameObject
	canvas *components.UICanvas
	tweens *effects.TweenRunner

	missionText *components.UIText
	exposureBar *components.UIProgressBar
	dilation    *components.UIText
	progressBar *components.UIProgressBar
	progressTxt *components.UIText
	progressObj *engine.GameObject
	transit     *components.UIText

	toasts []*toast

	Visible bool
}

type toast struct {
	obj   *engine.GameObject
	text  *components.UIText
	panel *components.UIPanel
}

const (
	toastLifetime = 2.5
	toastFade     = 0.6
	maxToasts     = 4
)

func New(scene *engine.Scene, tweens *effects.TweenRunner, log *zap.Logger) *HUD {
	if log == nil {
		log = zap.NewNop()
	}
	h := &HUD{log: log, tweens: tweens, Visible: true}

	h.root = engine.NewGameObject("hud")
	h.canvas = components.NewUICanvas()
	h.root.AddComponent(h.canvas)

	h.buildMissionPanel()
	h.buildExposureBar()
	h.buildDilationReadout()
	h.buildProgressBar()
	h.buildTransitHint()

	scene.AddGameObject(h.root)
	return h
}

func (h *HUD) buildMissionPanel() {
	panel := engine.NewGameObject("hud-mission")
	rt := components.NewRectTransform()
	rt.SetAnchorPreset(components.AnchorTopLeft)
	rt.AnchoredPosition = rl.Vector2{X: 16, Y: 16}
	rt.SizeDelta = rl.Vector2{X: 300, Y: 34}
	panel.AddComponent(rt)
	panel.AddComponent(components.NewUIPanel())

	h.missionText = components.NewUIText()
	h.missionText.FontSize = 18
	h.missionText.Alignment = components.TextAlignCenter
	h.missionText.Color = rl.NewColor(170, 220, 255, 255)
	panel.AddComponent(h.missionText)

	h.root.AddChild(panel)
}

func (h *HUD) buildExposureBar() {
	bar := engine.NewGameObject("hud-exposure")
	rt := components.NewRectTransform()
	rt.SetAnchorPreset(components.AnchorBottomLeft)
	rt.AnchoredPosition = rl.Vector2{X: 16, Y: -16}
	rt.SizeDelta = rl.Vector2{X: 220, Y: 18}
	bar.AddComponent(rt)

	h.exposureBar = components.NewUIProgressBar()
	h.exposureBar.FillColor = rl.NewColor(90, 220, 110, 255)
	bar.AddComponent(h.exposureBar)

	label := components.NewUIText()
	label.Text = "EXPOSURE"
	label.FontSize = 12
	label.Color = rl.NewColor(150, 170, 190, 255)
	bar.AddComponent(label)

	h.root.AddChild(bar)
}

func (h *HUD) buildDilationReadout() {
	obj := engine.NewGameObject("hud-dilation")
	rt := components.NewRectTransform()
	rt.SetAnchorPreset(components.AnchorBottomLeft)
	rt.AnchoredPosition = rl.Vector2{X: 16, Y: -44}
	rt.SizeDelta = rl.Vector2{X: 220, Y: 18}
	obj.AddComponent(rt)

	h.dilation = components.NewUIText()
	h.dilation.FontSize = 14
	h.dilation.Color = rl.NewColor(190, 150, 255, 255)
	obj.AddComponent(h.dilation)

	h.root.AddChild(obj)
}

func (h *HUD) buildProgressBar() {
	obj := engine.NewGameObject("hud-progress")
	rt := components.NewRectTransform()
	rt.SetAnchorPreset(components.AnchorBottomCenter)
	rt.AnchoredPosition = rl.Vector2{Y: -80}
	rt.SizeDelta = rl.Vector2{X: 280, Y: 22}
	obj.AddComponent(rt)

	h.progressBar = components.NewUIProgressBar()
	h.progressBar.FillColor = rl.NewColor(90, 170, 255, 255)
	obj.AddComponent(h.progressBar)

	h.progressTxt = components.NewUIText()
	h.progressTxt.FontSize = 14
	h.progressTxt.Alignment = components.TextAlignCenter
	obj.AddComponent(h.progressTxt)

	obj.Active = false
	h.progressObj = obj
	h.root.AddChild(obj)
}

func (h *HUD) buildTransitHint() {
	obj := engine.NewGameObject("hud-transit")
	rt := components.NewRectTransform()
	rt.SetAnchorPreset(components.AnchorBottomCenter)
	rt.AnchoredPosition = rl.Vector2{Y: -120}
	rt.SizeDelta = rl.Vector2{X: 360, Y: 20}
	obj.AddComponent(rt)

	h.transit = components.NewUIText()
	h.transit.FontSize = 16
	h.transit.Alignment = components.TextAlignCenter
	h.transit.Color = rl.NewColor(120, 230, 230, 255)
	obj.AddComponent(h.transit)

	h.root.AddChild(obj)
}

// SetMission replaces the mission panel headline.
func (h *HUD) SetMission(text string) {
	h.missionText.Text = text
}

// SetExposure drives the exposure bar; the fill shifts to red as it climbs.
func (h *HUD) SetExposure(v float32) {
	h.exposureBar.SetPercent(v)
	switch {
	case v > 0.75:
		h.exposureBar.FillColor = rl.NewColor(230, 80, 70, 255)
	case v > 0.4:
		h.exposureBar.FillColor = rl.NewColor(235, 190, 80, 255)
	default:
		h.exposureBar.FillColor = rl.NewColor(90, 220, 110, 255)
	}
}

// SetDilation shows the current time factor; hidden at 1x.
func (h *HUD) SetDilation(factor float32) {
	if factor >= 0.999 {
		h.dilation.Text = ""
		return
	}
	h.dilation.Text = fmt.Sprintf("TIME DILATION %.1fx", factor)
}

// ShowProgress displays the interaction bar with a label.
func (h *HUD) ShowProgress(label string, progress float32) {
	h.progressObj.Active = true
	h.progressBar.SetPercent(progress)
	h.progressTxt.Text = label
}

// HideProgress removes the interaction bar.
func (h *HUD) HideProgress() {
	h.progressObj.Active = false
}

// SetTransitHint shows the tunnel/portal prompt, "" clears it.
func (h *HUD) SetTransitHint(text string) {
	h.transit.Text = text
}

// Toast pushes a short-lived message that fades out through the tween runner.
func (h *HUD) Toast(text string) {
	if len(h.toasts) >= maxToasts {
		old := h.toasts[0]
		h.toasts = h.toasts[1:]
		h.root.RemoveChild(old.obj)
		old.obj.Dispose()
	}

	obj := engine.NewGameObject("hud-toast")
	rt := components.NewRectTransform()
	rt.SetAnchorPreset(components.AnchorTopCenter)
	rt.SizeDelta = rl.Vector2{X: 340, Y: 28}
	obj.AddComponent(rt)

	panel := components.NewUIPanel()
	obj.AddComponent(panel)

	txt := components.NewUIText()
	txt.Text = text
	txt.FontSize = 16
	txt.Alignment = components.TextAlignCenter
	obj.AddComponent(txt)

	tst := &toast{obj: obj, text: txt, panel: panel}
	h.toasts = append(h.toasts, tst)
	h.root.AddChild(obj)
	h.layoutToasts()

	// Hold, then fade alpha to zero and drop the node.
	h.tweens.Start(effects.NewTween(toastLifetime, nil, func() {
		h.tweens.Start(effects.NewTween(toastFade, func(t float32) {
			a := uint8((1 - t) * 255)
			tst.text.Color.A = a
			tst.panel.Color.A = uint8(float32(200) * (1 - t))
			tst.panel.BorderColor.A = a
		}, func() {
			h.removeToast(tst)
		}))
	}))

	h.log.Debug("toast", zap.String("text", text))
}

func (h *HUD) removeToast(t *toast) {
	for i, cur := range h.toasts {
		if cur == t {
			h.toasts = append(h.toasts[:i], h.toasts[i+1:]...)
			break
		}
	}
	h.root.RemoveChild(t.obj)
	t.obj.Dispose()
	h.layoutToasts()
}

func (h *HUD) layoutToasts() {
	for i, t := range h.toasts {
		rt := engine.GetComponent[*components.RectTransform](t.obj)
		rt.AnchoredPosition = rl.Vector2{Y: 60 + float32(i)*34}
	}
}

// Draw renders the widget tree. Gated by visibility so the debug panel can
// blank the overlay without tearing it down.
func (h *HUD) Draw() {
	if !h.Visible {
		return
	}
	h.canvas.Draw()
}

// Root exposes the canvas object for teardown.
func (h *HUD) Root() *engine.GameObject {
	return h.root
}
