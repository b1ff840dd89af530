package interaction

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/engine"
	"qscientist/internal/props"
)

// PickRange is how far a selection ray reaches into the world.
const PickRange = 12.0

// Picker resolves a pointer ray to the nearest interactive prop.
type Picker struct {
	reg   *props.Registry
	world engine.WorldAccess
}

func NewPicker(reg *props.Registry, world engine.WorldAccess) *Picker {
	return &Picker{reg: reg, world: world}
}

// Pick casts a ray and returns the nearest intersected prop, nil when the ray
// hits nothing interactive within range.
func (pk *Picker) Pick(origin, direction rl.Vector3) *props.Prop {
	hit, ok := pk.world.Raycast(origin, direction, PickRange)
	if !ok || hit.GameObject == nil {
		return nil
	}
	return pk.reg.FindByNode(hit.GameObject.UID)
}

// PickScreen casts from the camera through a screen position.
func (pk *Picker) PickScreen(pos rl.Vector2, camera rl.Camera3D) *props.Prop {
	ray := rl.GetScreenToWorldRay(pos, camera)
	return pk.Pick(ray.Position, ray.Direction)
}
