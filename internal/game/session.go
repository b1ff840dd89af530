// Package game wires every subsystem into a playable session and runs the
// per-frame loop.
package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"qscientist/internal/audio"
	"qscientist/internal/components"
	"qscientist/internal/effects"
	"qscientist/internal/engine"
	"qscientist/internal/hud"
	"qscientist/internal/integration"
	"qscientist/internal/interaction"
	"qscientist/internal/level"
	"qscientist/internal/perf"
	"qscientist/internal/props"
	"qscientist/internal/world"
)

// Session is the dependency-injection context: every subsystem is constructed
// here and handed its collaborators explicitly. No globals.
type Session struct {
	ID   string
	log  *zap.Logger
	tier perf.Tier
	lvl  *level.Level

	World      *world.World
	Player     *engine.GameObject
	Registry   *props.Registry
	Pairs      *props.PairSet
	Controller *interaction.Controller
	Picker     *interaction.Picker
	Layer      *integration.Layer

	Tunnels     *effects.Tunnels
	Portals     *effects.Portals
	Cursor      *effects.CursorTrail
	Transitions *effects.Transitions
	Tweens      *effects.TweenRunner

	HUD     *hud.HUD
	Minimap *hud.Minimap
	Radar   *hud.Radar
	Tracker *hud.Tracker
	Debug   *hud.DebugPanel

	Audio *audio.Manager
	Cues  *audio.Cues

	hovered  *props.Prop
	waypoint *rl.Vector3

	updateMs float64
	shadowMs float64
	drawMs   float64

	// soundDir holds the cue files; empty disables audio loading.
	SoundDir string
}

// NewSession builds the full object graph for one level. The raylib window
// must exist before this runs. An empty soundDir disables the audio cues.
func NewSession(lvl *level.Level, tier perf.Tier, soundDir string, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		ID:       uuid.NewString(),
		log:      log,
		tier:     tier,
		lvl:      lvl,
		SoundDir: soundDir,
	}

	s.World = world.New(log)
	s.World.Initialize()
	s.Player = s.World.BuildLevel(lvl, s.registry())

	s.Pairs = props.NewPairSet()
	s.Controller = interaction.NewController(s.Registry, s.Pairs, log)
	s.Picker = interaction.NewPicker(s.Registry, s.World)

	s.buildEffects()
	s.buildOverlay()
	s.buildAudio()
	s.wireEvents()

	s.World.Scene.Start()
	s.Tracker.Activate()

	log.Info("session ready",
		zap.String("session", s.ID),
		zap.String("level", lvl.Name),
		zap.Stringer("tier", tier))
	return s
}

func (s *Session) registry() *props.Registry {
	if s.Registry == nil {
		s.Registry = props.NewRegistry(s.log)
	}
	return s.Registry
}

func (s *Session) buildEffects() {
	radiation := effects.NewRadiationField(s.tier)
	for _, z := range s.lvl.Radiation {
		radiation.AddZone(effects.Zone{ID: z.ID, Center: lvec(z.Center), Radius: z.Radius, Intensity: z.Intensity})
	}
	dilation := effects.NewDilationField(s.tier)
	for _, z := range s.lvl.Dilation {
		dilation.AddZone(effects.Zone{ID: z.ID, Center: lvec(z.Center), Radius: z.Radius, Intensity: z.Intensity})
	}

	s.Tunnels = effects.NewTunnels(s.tier)
	for _, t := range s.lvl.Tunnels {
		s.Tunnels.Add(effects.Tunnel{
			ID:               t.ID,
			Position:         lvec(t.Position),
			Destination:      lvec(t.Destination),
			ActivationRadius: t.ActivationRadius,
		})
	}
	s.Portals = effects.NewPortals(s.tier)
	for _, p := range s.lvl.Portals {
		s.Portals.Add(effects.PortalPair{
			ID:               p.ID,
			A:                lvec(p.A),
			B:                lvec(p.B),
			ActivationRadius: p.ActivationRadius,
		})
	}

	s.Layer = integration.NewLayer(integration.Config{
		Radiation: radiation,
		Dilation:  dilation,
		Tunnels:   s.Tunnels,
		Portals:   s.Portals,
	}, s.log)

	s.Layer.Register(effects.NewAmbientField(s.tier, s.World.FloorSize))
	s.Layer.Register(effects.NewBackground(s.tier))

	bridges := effects.NewBridges()
	for i, b := range s.lvl.Bridges {
		bridges.Add(fmt.Sprintf("bridge-%d", i+1), lvec(b.Start), lvec(b.End), b.Width)
	}
	s.Layer.Register(bridges)

	s.Cursor = effects.NewCursorTrail(s.tier)
	s.Layer.Register(s.Cursor)

	s.Transitions = effects.NewTransitions()
	s.Tweens = &effects.TweenRunner{}
}

func (s *Session) buildOverlay() {
	s.HUD = hud.New(s.World.Scene, s.Tweens, s.log)
	s.HUD.SetMission(s.lvl.Name)
	s.Minimap = hud.NewMinimap(s.lvl, s.Registry)
	s.Radar = hud.NewRadar(s.lvl.Anomalies)
	s.Tracker = hud.NewTracker(s.lvl.Objectives, s.log)
	s.Debug = hud.NewDebugPanel(s.HUD, s.Minimap, s.Radar, s.Layer, s.tier)
}

func (s *Session) buildAudio() {
	s.Audio = audio.NewManager(s.log)
	if s.SoundDir == "" {
		return
	}
	s.Cues = audio.LoadCues(s.Audio, s.SoundDir)
	for _, p := range s.Portals.All() {
		s.Cues.AddPortalHum(s.SoundDir, p.A)
		s.Cues.AddPortalHum(s.SoundDir, p.B)
	}
}

// wireEvents subscribes the HUD, audio and objective tracker to the
// controller and integration layer.
func (s *Session) wireEvents() {
	s.Controller.OnStart.AddListener(func(p *props.Prop) {
		s.cueAt(p, s.Cues.Start)
	})
	s.Controller.OnComplete.AddListener(func(p *props.Prop) {
		s.HUD.Toast(p.ID + " complete")
		s.Tracker.NotifyCompleted(p.Kind.String())
		s.cueAt(p, s.Cues.Complete)
	})
	s.Controller.OnCancel.AddListener(func(p *props.Prop) {
		s.cueAt(p, s.Cues.Cancel)
	})
	s.Controller.OnEntanglement.AddListener(func(pair *props.Pair) {
		s.HUD.Toast("entangled " + pair.A + " + " + pair.B)
		s.Tracker.NotifyCompleted(props.EntanglementNode.String())
		if a, ok := s.Registry.Get(pair.A); ok {
			s.cueAt(a, s.Cues.Entangle)
		}
	})
	s.Controller.OnRejected.AddListener(func(r interaction.Rejection) {
		if r.Result == props.ResultNoActiveInteraction {
			return
		}
		s.HUD.Toast(r.Result.String())
	})

	s.Layer.OnTunnelProximity.AddListener(func(id string) {
		if id == "" {
			s.HUD.SetTransitHint("")
			return
		}
		s.HUD.SetTransitHint("[E] enter tunnel " + id)
	})
	s.Layer.OnPortalProximity.AddListener(func(id string) {
		if id == "" {
			return
		}
		s.HUD.SetTransitHint("[E] step through portal " + id)
	})

	s.Tracker.OnSetWaypoint.AddListener(func(w *rl.Vector3) {
		s.waypoint = w
	})
	s.Tracker.OnObjectiveComplete.AddListener(func(item *hud.Item) {
		s.HUD.Toast("objective: " + item.Text)
		if s.Tracker.AllDone() {
			s.HUD.SetMission(s.lvl.Name + " - all objectives complete")
		}
	})
}

func (s *Session) cueAt(p *props.Prop, play func(rl.Vector3)) {
	if s.Cues == nil || p == nil || p.Node == nil {
		return
	}
	play(p.Node.WorldPosition())
}

// Dispose tears the session down in reverse construction order. Idempotent
// through each subsystem's own guard.
func (s *Session) Dispose() {
	s.Tweens.CancelAll()
	s.Transitions.Dispose()
	s.Layer.Dispose()
	s.Controller.Reset()
	s.Registry.Clear()
	if s.Audio != nil {
		s.Audio.Close()
	}
	s.World.Unload()
}

func lvec(v level.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func (s *Session) playerFPS() *components.FPSController {
	return engine.GetComponent[*components.FPSController](s.Player)
}

func (s *Session) playerCamera() rl.Camera3D {
	cam := engine.GetComponent[*components.Camera](s.Player)
	if cam == nil {
		return rl.Camera3D{Fovy: 60, Projection: rl.CameraPerspective, Up: rl.Vector3{Y: 1}}
	}
	return cam.Raylib()
}
