package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/engine"
	"qscientist/internal/physics"
)

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

func (b *BoxCollider) GetAABB() physics.AABB {
	g := b.GetGameObject()
	center := rl.Vector3Add(g.WorldPosition(), b.Offset)
	return physics.NewAABBFromCenter(center, b.Size)
}

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{Radius: radius}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

func (s *SphereCollider) GetRadius() float32 {
	return s.Radius
}
