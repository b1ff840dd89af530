// Package world owns the render graph: it turns level data into scene nodes,
// runs the lighting/shadow passes and gives components world-level operations
// through engine.WorldAccess.
package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"qscientist/internal/components"
	"qscientist/internal/engine"
	"qscientist/internal/physics"
)

const ShadowMapResolution = 2048

const (
	ShadowNear float32 = 1.0
	ShadowFar  float32 = 150.0
)

type World struct {
	Scene   *engine.Scene
	Physics *physics.World
	log     *zap.Logger

	Shader      rl.Shader
	ShadowMap   rl.RenderTexture2D
	LightDir    rl.Vector3
	LightCamera rl.Camera3D
	MatLightVP  rl.Matrix

	FloorSize float32

	unloaded bool
}

func New(log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		Scene:     engine.NewScene("facility"),
		Physics:   physics.NewWorld(),
		log:       log,
		FloorSize: 80,
	}
}

// Initialize loads the lighting shader and shadow map. Must run after the
// raylib window exists.
func (w *World) Initialize() {
	w.Shader = rl.LoadShader("assets/shaders/lighting.vs", "assets/shaders/lighting.fs")
	w.ShadowMap = loadShadowmapRenderTexture(ShadowMapResolution, ShadowMapResolution)

	w.LightDir = rl.Vector3Normalize(rl.Vector3{X: 0.35, Y: -1.0, Z: -0.35})
	w.LightCamera = rl.Camera3D{
		Position:   rl.Vector3Scale(w.LightDir, -50.0),
		Target:     rl.Vector3Zero(),
		Up:         lightCameraUp(w.LightDir),
		Fovy:       w.FloorSize + 20,
		Projection: rl.CameraOrthographic,
	}

	lightDirLoc := rl.GetShaderLocation(w.Shader, "lightDir")
	rl.SetShaderValue(w.Shader, lightDirLoc, []float32{w.LightDir.X, w.LightDir.Y, w.LightDir.Z}, rl.ShaderUniformVec3)

	lightColorLoc := rl.GetShaderLocation(w.Shader, "lightColor")
	rl.SetShaderValue(w.Shader, lightColorLoc, []float32{0.9, 0.95, 1.0, 1.0}, rl.ShaderUniformVec4)

	ambientLoc := rl.GetShaderLocation(w.Shader, "ambient")
	rl.SetShaderValue(w.Shader, ambientLoc, []float32{0.12, 0.12, 0.16, 1.0}, rl.ShaderUniformVec4)
}

// SpawnObject adds a node to the scene and indexes it for picking when it
// carries a collider.
func (w *World) SpawnObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	if hasShape(g) {
		w.Physics.AddPickable(g)
	}
}

// Destroy removes a node from the scene and the picking index.
func (w *World) Destroy(g *engine.GameObject) {
	w.Physics.RemovePickable(g)
	w.Scene.RemoveGameObject(g)
}

func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	return w.Physics.Raycast(origin, direction, maxDistance)
}

func hasShape(g *engine.GameObject) bool {
	for _, c := range g.Components() {
		switch c.(type) {
		case physics.BoxShape, physics.SphereShape:
			return true
		}
	}
	return false
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

func lightCameraUp(lightDir rl.Vector3) rl.Vector3 {
	if lightDir.Y < -0.9 || lightDir.Y > 0.9 {
		return rl.Vector3{Z: 1}
	}
	return rl.Vector3{Y: 1}
}

// Unload releases GPU resources and disposes the scene. Idempotent.
func (w *World) Unload() {
	if w.unloaded {
		return
	}
	w.unloaded = true
	rl.UnloadShader(w.Shader)
	rl.UnloadRenderTexture(w.ShadowMap)
	w.Scene.Clear()
	w.Physics.Clear()
}

func loadShadowmapRenderTexture(width, height int32) rl.RenderTexture2D {
	target := rl.RenderTexture2D{}

	target.ID = rl.LoadFramebuffer()
	target.Texture.Width = width
	target.Texture.Height = height

	if target.ID > 0 {
		rl.EnableFramebuffer(target.ID)

		target.Depth.ID = rl.LoadTextureDepth(width, height, false)
		target.Depth.Width = width
		target.Depth.Height = height
		target.Depth.Format = 19
		target.Depth.Mipmaps = 1

		rl.FramebufferAttach(target.ID, target.Depth.ID, rl.AttachmentDepth, rl.AttachmentTexture2d, 0)

		rl.DisableFramebuffer()
	}

	return target
}

// DrawShadowMap renders the depth-only pass from the light's view.
func (w *World) DrawShadowMap() {
	rl.BeginTextureMode(w.ShadowMap)
	rl.ClearBackground(rl.White)

	rl.BeginMode3D(w.LightCamera)

	halfSize := w.LightCamera.Fovy / 2.0
	shadowProj := rl.MatrixOrtho(
		-halfSize, halfSize,
		-halfSize, halfSize,
		ShadowNear, ShadowFar,
	)
	rl.SetMatrixProjection(shadowProj)

	lightView := rl.GetMatrixModelview()
	lightProj := rl.GetMatrixProjection()

	rl.SetCullFace(0)
	w.drawScene(nil)
	rl.SetCullFace(1)

	rl.EndMode3D()
	rl.EndTextureMode()

	rl.Viewport(0, 0, int32(rl.GetRenderWidth()), int32(rl.GetRenderHeight()))

	w.MatLightVP = rl.MatrixMultiply(lightView, lightProj)
}

// DrawWithShadows renders the lit pass. Must run inside BeginMode3D with the
// player camera; culling uses that camera's frustum.
func (w *World) DrawWithShadows(camera rl.Camera3D) {
	viewPosLoc := rl.GetShaderLocation(w.Shader, "viewPos")
	rl.SetShaderValue(w.Shader, viewPosLoc, []float32{camera.Position.X, camera.Position.Y, camera.Position.Z}, rl.ShaderUniformVec3)

	lightVPLoc := rl.GetShaderLocation(w.Shader, "matLightVP")
	rl.SetShaderValueMatrix(w.Shader, lightVPLoc, w.MatLightVP)

	shadowMapLoc := rl.GetShaderLocation(w.Shader, "shadowMap")
	rl.EnableShader(w.Shader.ID)

	textureSlot := int32(10)
	rl.ActiveTextureSlot(textureSlot)
	rl.EnableTexture(w.ShadowMap.Depth.ID)
	rl.SetUniform(shadowMapLoc, []int32{textureSlot}, int32(rl.ShaderUniformInt), 1)

	frustum := ExtractFrustum(camera)
	w.drawScene(&frustum)
}

// drawScene renders every ModelRenderer, culled against the frustum when one
// is given (the shadow pass draws everything).
func (w *World) drawScene(frustum *Frustum) {
	for _, g := range w.Scene.GameObjects {
		renderer := engine.GetComponent[*components.ModelRenderer](g)
		if renderer == nil {
			continue
		}
		if frustum != nil && !frustum.ContainsSphere(g.WorldPosition(), cullRadius(g)) {
			continue
		}
		renderer.Draw()
	}
}

// cullRadius is a conservative bounding sphere from the node's scale.
func cullRadius(g *engine.GameObject) float32 {
	s := g.WorldScale()
	r := s.X
	if s.Y > r {
		r = s.Y
	}
	if s.Z > r {
		r = s.Z
	}
	return r * 6
}
