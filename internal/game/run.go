package game

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/props"
)

// Run owns the frame loop until the window closes.
func (s *Session) Run() {
	for !rl.WindowShouldClose() {
		s.Step(rl.GetFrameTime())
		s.Draw()
	}
}

// Step advances one frame. Player movement runs at dilated time; effect
// managers and the HUD keep wall-clock time so overlays stay readable.
func (s *Session) Step(dt float32) {
	updateStart := time.Now()

	camera := s.playerCamera()
	if !s.Debug.Open {
		s.handleInput(camera)
	} else if rl.IsKeyPressed(rl.KeyF3) {
		s.Debug.Toggle()
		rl.DisableCursor()
	}

	if fps := s.playerFPS(); fps != nil {
		fps.TimeScale = s.Layer.State().TimeDilationFactor
		fps.Frozen = s.Debug.Open
	}

	s.World.Update(dt)
	s.Layer.Update(dt, s.Player.Transform.Position)
	s.Transitions.Update(dt)
	s.Tweens.Update(dt)
	s.Radar.Update(dt)

	s.Cursor.Push(cursorAnchor(camera))

	s.pushDerivedState()
	s.updateAudio(camera)

	s.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
	s.Debug.UpdateMs = s.updateMs
	s.Debug.ShadowMs = s.shadowMs
	s.Debug.DrawMs = s.drawMs
}

// cursorAnchor is where the cursor trail particles spawn: just ahead of the
// camera along the view ray.
func cursorAnchor(camera rl.Camera3D) rl.Vector3 {
	look := rl.Vector3Normalize(rl.Vector3Subtract(camera.Target, camera.Position))
	return rl.Vector3Add(camera.Position, rl.Vector3Scale(look, 2.5))
}

// pushDerivedState copies the frame's derived values into the HUD.
func (s *Session) pushDerivedState() {
	state := s.Layer.State()
	s.HUD.SetExposure(state.RadiationExposure)
	s.HUD.SetDilation(state.TimeDilationFactor)

	if active := s.activeInteraction(); active != nil {
		s.HUD.ShowProgress(fmt.Sprintf("%s %.0f%%", active.ID, active.Progress*100), active.Progress)
	} else {
		s.HUD.HideProgress()
	}
}

func (s *Session) activeInteraction() *props.Prop {
	for kind := props.Computer; kind <= props.DarkMatterContainer; kind++ {
		if id := s.Controller.Active(kind); id != "" {
			if p, ok := s.Registry.Get(id); ok && p.Kind != props.EntanglementNode {
				return p
			}
		}
	}
	return nil
}

func (s *Session) updateAudio(camera rl.Camera3D) {
	if s.Audio == nil {
		return
	}
	forward := rl.Vector3Subtract(camera.Target, camera.Position)
	s.Audio.SetListener(camera.Position, forward, camera.Up)
	s.Audio.Update()
}

// Draw renders the shadow pass, the lit 3D view with effects, then the
// overlay stack.
func (s *Session) Draw() {
	camera := s.playerCamera()

	shadowStart := time.Now()
	s.World.DrawShadowMap()
	s.shadowMs = float64(time.Since(shadowStart).Microseconds()) / 1000.0

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(8, 10, 20, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	s.World.DrawWithShadows(camera)
	s.Layer.Draw(camera)
	s.drawEntanglementBeams()
	s.drawWaypoint()
	rl.EndMode3D()
	s.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	s.drawOverlay()
	rl.EndDrawing()
}

// drawEntanglementBeams links each entangled pair with a line, brightness
// tracking the pair strength. Refs resolve to nil once a node leaves the scene.
func (s *Session) drawEntanglementBeams() {
	for _, pair := range s.Pairs.Pairs() {
		a := pair.NodeA.Get(s.World.Scene)
		b := pair.NodeB.Get(s.World.Scene)
		if a == nil || b == nil {
			continue
		}
		alpha := uint8(90 + pair.Strength*165)
		rl.DrawLine3D(a.WorldPosition(), b.WorldPosition(), rl.NewColor(190, 110, 255, alpha))
	}
}

func (s *Session) drawWaypoint() {
	if s.waypoint == nil {
		return
	}
	rl.DrawCylinderWires(*s.waypoint, 0.4, 0.4, 6, 8, rl.Gold)
}

func (s *Session) drawOverlay() {
	s.HUD.Draw()
	if s.HUD.Visible {
		s.Tracker.Draw()
		s.drawCrosshair()
	}

	fps := s.playerFPS()
	yaw := float32(0)
	if fps != nil {
		yaw = fps.Yaw
	}
	s.Minimap.Draw(s.Player.Transform.Position, yaw, s.waypoint)
	s.Radar.Draw(s.Player.Transform.Position)

	s.Debug.Draw()

	s.Transitions.DrawOverlay(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
}

func (s *Session) drawCrosshair() {
	cx := int32(rl.GetScreenWidth()) / 2
	cy := int32(rl.GetScreenHeight()) / 2
	color := rl.NewColor(200, 220, 240, 180)
	if s.hovered != nil {
		color = rl.White
	}
	rl.DrawLine(cx-6, cy, cx+6, cy, color)
	rl.DrawLine(cx, cy-6, cx, cy+6, color)

	if s.hovered != nil {
		rl.DrawText(s.hovered.ID, cx+12, cy+8, 14, color)
	}
}
