package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/components"
	"qscientist/internal/effects"
	"qscientist/internal/props"
)

// handleInput resolves one frame of player input: hover pick, selection,
// advance/cancel keys, transit activation and overlay toggles.
func (s *Session) handleInput(camera rl.Camera3D) {
	s.updateHover(camera)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && s.hovered != nil {
		s.Controller.Select(s.hovered.ID)
	}

	// F advances whichever category the player is looking at; with nothing
	// hovered it falls back to any category with an active interaction.
	if rl.IsKeyPressed(rl.KeyF) {
		if s.hovered != nil {
			s.Controller.Advance(s.hovered.Kind)
		} else {
			s.advanceAnyActive()
		}
	}

	if rl.IsKeyPressed(rl.KeyC) {
		s.cancelAll()
	}

	if rl.IsKeyPressed(rl.KeyE) {
		s.activateTransit()
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		s.Minimap.Visible = !s.Minimap.Visible
	}
	if rl.IsKeyPressed(rl.KeyH) {
		s.HUD.Visible = !s.HUD.Visible
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		s.Debug.Toggle()
		if s.Debug.Open {
			rl.EnableCursor()
		} else {
			rl.DisableCursor()
		}
	}
}

// updateHover repicks under the crosshair and moves the highlight.
func (s *Session) updateHover(camera rl.Camera3D) {
	look := rl.Vector3Subtract(camera.Target, camera.Position)
	picked := s.Picker.Pick(camera.Position, look)

	if picked == s.hovered {
		return
	}
	s.setHoverGlow(s.hovered, false)
	s.setHoverGlow(picked, true)
	s.hovered = picked
}

func (s *Session) setHoverGlow(p *props.Prop, on bool) {
	if p == nil || p.Node == nil {
		return
	}
	if glow := componentGlow(p); glow != nil {
		glow.Hovered = on
	}
}

func (s *Session) advanceAnyActive() {
	for kind := props.Computer; kind <= props.DarkMatterContainer; kind++ {
		if s.Controller.Active(kind) != "" {
			s.Controller.Advance(kind)
			return
		}
	}
}

func (s *Session) cancelAll() {
	for kind := props.Computer; kind <= props.DarkMatterContainer; kind++ {
		s.Controller.Cancel(kind)
	}
}

// activateTransit teleports through the nearest tunnel or portal, wrapped in
// the matching screen transition.
func (s *Session) activateTransit() {
	state := s.Layer.State()

	if state.NearTunnelID != "" {
		if t, ok := s.Tunnels.Find(state.NearTunnelID); ok {
			dest := t.Destination
			s.Transitions.Play(effects.TransitionTunnel, 0.8, func() {
				s.teleport(dest)
			})
		}
		return
	}

	if state.NearPortalID != "" {
		if p, ok := s.Portals.Find(state.NearPortalID); ok {
			_, far := p.EndNear(s.Player.Transform.Position)
			s.Transitions.Play(effects.TransitionQuantum, 0.6, func() {
				s.teleport(far)
			})
		}
	}
}

func (s *Session) teleport(dest rl.Vector3) {
	fps := s.playerFPS()
	eye := float32(1.7)
	if fps != nil {
		eye = fps.EyeHeight
		fps.Velocity = rl.Vector3{}
	}
	s.Player.Transform.Position = rl.Vector3{X: dest.X, Y: dest.Y + eye, Z: dest.Z}
}

func componentGlow(p *props.Prop) *components.PropGlow {
	for _, c := range p.Node.Components() {
		if glow, ok := c.(*components.PropGlow); ok {
			return glow
		}
	}
	return nil
}
