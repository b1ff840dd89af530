package components

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/engine"
	"qscientist/internal/physics"
)

type FPSController struct {
	engine.BaseComponent
	Yaw          float32
	Pitch        float32
	MoveSpeed    float32
	LookSpeed    float32
	Velocity     rl.Vector3
	Gravity      float32
	JumpStrength float32
	Grounded     bool
	EyeHeight    float32
	BodySize     rl.Vector3

	// World is the static level geometry; nil disables wall collision.
	World *physics.World

	// TimeScale slows the controller without affecting look input.
	TimeScale float32

	// Frozen parks the controller while a cursor-driven overlay is open.
	Frozen bool
}

func NewFPSController() *FPSController {
	return &FPSController{
		Yaw:          -135.0,
		Pitch:        -10.0,
		MoveSpeed:    8.0,
		LookSpeed:    0.1,
		Gravity:      20.0,
		JumpStrength: 8.0,
		EyeHeight:    1.7,
		BodySize:     rl.Vector3{X: 0.6, Y: 1.7, Z: 0.6},
		TimeScale:    1.0,
	}
}

func (f *FPSController) Update(deltaTime float32) {
	g := f.GetGameObject()
	if g == nil || f.Frozen {
		return
	}

	// Mouse look
	mouseDelta := rl.GetMouseDelta()
	f.Yaw += mouseDelta.X * f.LookSpeed
	f.Pitch -= mouseDelta.Y * f.LookSpeed

	// Clamp pitch
	if f.Pitch > 89 {
		f.Pitch = 89
	}
	if f.Pitch < -89 {
		f.Pitch = -89
	}

	// Calculate movement vectors (horizontal plane only)
	forward, right := f.getDirections()

	var moveDir rl.Vector3
	if rl.IsKeyDown(rl.KeyW) {
		moveDir.X += forward.X
		moveDir.Z += forward.Z
	}
	if rl.IsKeyDown(rl.KeyS) {
		moveDir.X -= forward.X
		moveDir.Z -= forward.Z
	}
	if rl.IsKeyDown(rl.KeyA) {
		moveDir.X += right.X
		moveDir.Z += right.Z
	}
	if rl.IsKeyDown(rl.KeyD) {
		moveDir.X -= right.X
		moveDir.Z -= right.Z
	}

	// Normalize diagonal movement
	moveLen := float32(math.Sqrt(float64(moveDir.X*moveDir.X + moveDir.Z*moveDir.Z)))
	if moveLen > 0 {
		moveDir.X /= moveLen
		moveDir.Z /= moveLen
	}

	f.Velocity.X = moveDir.X * f.MoveSpeed
	f.Velocity.Z = moveDir.Z * f.MoveSpeed

	// Jump
	if rl.IsKeyPressed(rl.KeySpace) && f.Grounded {
		f.Velocity.Y = f.JumpStrength
		f.Grounded = false
	}

	if !f.Grounded {
		f.Velocity.Y -= f.Gravity * deltaTime
	}

	scaled := deltaTime * f.TimeScale
	g.Transform.Position.X += f.Velocity.X * scaled
	g.Transform.Position.Y += f.Velocity.Y * scaled
	g.Transform.Position.Z += f.Velocity.Z * scaled

	f.resolveCollisions(g)
}

// resolveCollisions snaps the body to the floor and pushes it out of walls.
func (f *FPSController) resolveCollisions(g *engine.GameObject) {
	if g.Transform.Position.Y < f.EyeHeight {
		g.Transform.Position.Y = f.EyeHeight
		f.Velocity.Y = 0
		f.Grounded = true
	}

	if f.World == nil {
		return
	}
	feet := rl.Vector3{
		X: g.Transform.Position.X,
		Y: g.Transform.Position.Y - f.EyeHeight + f.BodySize.Y/2,
		Z: g.Transform.Position.Z,
	}
	body := physics.NewAABBFromCenter(feet, f.BodySize)
	mtv := f.World.ResolveBody(body)
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, mtv)
	if mtv.Y > 0 {
		f.Velocity.Y = 0
		f.Grounded = true
	}
}

func (f *FPSController) getDirections() (forward, right rl.Vector3) {
	yawRad := float64(f.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Y: 0,
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Y: 0,
		Z: float32(-math.Cos(yawRad)),
	}
	return
}

func (f *FPSController) GetLookDirection() rl.Vector3 {
	yawRad := float64(f.Yaw) * math.Pi / 180
	pitchRad := float64(f.Pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}
