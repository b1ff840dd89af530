package world

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"qscientist/internal/components"
	"qscientist/internal/engine"
	"qscientist/internal/level"
	"qscientist/internal/physics"
	"qscientist/internal/props"
)

// BuildLevel turns the level records into scene nodes, registry entries and
// static collision geometry. Returns the player object.
func (w *World) BuildLevel(lvl *level.Level, reg *props.Registry) *engine.GameObject {
	for _, f := range lvl.Floors {
		w.spawnFloor(f)
	}
	for _, wall := range lvl.Walls {
		w.spawnWall(wall)
	}
	for _, b := range lvl.Bridges {
		w.spawnBridge(b)
	}
	for i, p := range lvl.Props {
		w.spawnProp(p, float32(i), reg)
	}

	player := w.spawnPlayer(lvl.PlayerSpawn)

	w.log.Info("level built",
		zap.String("level", lvl.Name),
		zap.Int("walls", len(lvl.Walls)),
		zap.Int("props", reg.Count()))
	return player
}

func vec3(v level.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func (w *World) spawnFloor(f level.Floor) {
	g := engine.NewGameObject("floor")
	g.Transform.Position = vec3(f.Position)

	model := rl.LoadModelFromMesh(rl.GenMeshPlane(f.Width, f.Depth, 1, 1))
	renderer := components.NewModelRenderer(model, rl.NewColor(46, 52, 70, 255))
	renderer.SetShader(w.Shader)
	g.AddComponent(renderer)

	w.Scene.AddGameObject(g)
}

func (w *World) spawnWall(wall level.Wall) {
	g := engine.NewGameObject("wall")
	g.Transform.Position = vec3(wall.Position)
	size := vec3(wall.Size)

	model := rl.LoadModelFromMesh(rl.GenMeshCube(size.X, size.Y, size.Z))
	renderer := components.NewModelRenderer(model, rl.NewColor(70, 80, 104, 255))
	renderer.SetShader(w.Shader)
	g.AddComponent(renderer)
	g.AddComponent(components.NewBoxCollider(size))

	w.Scene.AddGameObject(g)
	w.Physics.AddWall(physics.NewAABBFromCenter(g.Transform.Position, size))
}

// spawnBridge lays a thin walkable slab between two points.
func (w *World) spawnBridge(b level.Bridge) {
	start := vec3(b.Start)
	end := vec3(b.End)
	width := b.Width
	if width <= 0 {
		width = 2
	}

	center := rl.Vector3Scale(rl.Vector3Add(start, end), 0.5)
	span := rl.Vector3Subtract(end, start)
	length := rl.Vector3Length(span)

	g := engine.NewGameObject("bridge")
	g.Transform.Position = center
	g.Transform.Rotation.Y = float32(math.Atan2(float64(-span.Z), float64(span.X)) * 180 / math.Pi)

	model := rl.LoadModelFromMesh(rl.GenMeshCube(length, 0.3, width))
	renderer := components.NewModelRenderer(model, rl.NewColor(56, 70, 96, 255))
	renderer.SetShader(w.Shader)
	g.AddComponent(renderer)

	w.Scene.AddGameObject(g)
}

func (w *World) spawnProp(p level.Prop, phase float32, reg *props.Registry) {
	kind, ok := props.ParseKind(p.Kind)
	if !ok {
		w.log.Warn("skipping prop of unknown kind", zap.String("kind", p.Kind))
		return
	}

	name := p.Label
	if name == "" {
		name = p.Kind
	}
	g := engine.NewGameObject(name)
	g.Tags = []string{"prop"}
	g.Transform.Position = vec3(p.Position)

	model, base := propModel(kind)
	renderer := components.NewModelRenderer(model, base)
	renderer.SetShader(w.Shader)
	g.AddComponent(renderer)

	switch kind {
	case props.EntanglementNode, props.TimeCrystal:
		g.AddComponent(components.NewSphereCollider(0.8))
	default:
		g.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1.2, Y: 1.6, Z: 1.2}))
	}

	id := reg.Create(kind, g)
	prop, _ := reg.Get(id)
	g.AddComponent(components.NewPropGlow(prop, base))
	if kind == props.TimeCrystal {
		g.AddComponent(components.NewPropHover(g.Transform.Position, phase))
	}

	w.SpawnObject(g)
}

// propModel builds the placeholder mesh and base tint for one prop category.
func propModel(kind props.Kind) (rl.Model, rl.Color) {
	switch kind {
	case props.Computer:
		return rl.LoadModelFromMesh(rl.GenMeshCube(1.0, 1.4, 0.8)), rl.NewColor(60, 140, 230, 255)
	case props.Accelerator:
		return rl.LoadModelFromMesh(rl.GenMeshCylinder(0.7, 1.6, 12)), rl.NewColor(235, 140, 60, 255)
	case props.EntanglementNode:
		return rl.LoadModelFromMesh(rl.GenMeshSphere(0.6, 16, 16)), rl.NewColor(150, 90, 235, 255)
	case props.TimeCrystal:
		return rl.LoadModelFromMesh(rl.GenMeshCone(0.4, 1.0, 6)), rl.NewColor(90, 230, 230, 255)
	default: // dark matter container
		return rl.LoadModelFromMesh(rl.GenMeshCube(1.1, 1.1, 1.1)), rl.NewColor(90, 90, 110, 255)
	}
}

func (w *World) spawnPlayer(spawn level.Vec3) *engine.GameObject {
	player := engine.NewGameObject("player")
	player.Transform.Position = vec3(spawn)

	fps := components.NewFPSController()
	fps.World = w.Physics
	player.AddComponent(fps)
	player.AddComponent(components.NewCamera())

	w.Scene.AddGameObject(player)
	return player
}
