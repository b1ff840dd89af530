package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/engine"
)

type Camera struct {
	engine.BaseComponent
	FOV        float32
	Near       float32
	Far        float32
	Projection rl.CameraProjection
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        60.0,
		Near:       0.1,
		Far:        1000.0,
		Projection: rl.CameraPerspective,
	}
}

// Raylib returns the rl camera for the current frame, following the owning
// object's position and the attached look provider's direction.
func (c *Camera) Raylib() rl.Camera3D {
	g := c.GetGameObject()
	pos := g.WorldPosition()
	target := rl.Vector3Add(pos, rl.Vector3{Z: 1})

	if look := engine.GetComponent[*FPSController](g); look != nil {
		target = rl.Vector3Add(pos, look.GetLookDirection())
	}

	return rl.Camera3D{
		Position:   pos,
		Target:     target,
		Up:         rl.Vector3{Y: 1},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
