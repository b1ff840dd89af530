package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/engine"
)

type boxComponent struct {
	engine.BaseComponent
	box AABB
}

func (b *boxComponent) GetAABB() AABB { return b.box }

type sphereComponent struct {
	engine.BaseComponent
	center rl.Vector3
	radius float32
}

func (s *sphereComponent) GetCenter() rl.Vector3 { return s.center }
func (s *sphereComponent) GetRadius() float32    { return s.radius }

func pickable(box AABB) *engine.GameObject {
	obj := engine.NewGameObject("box")
	obj.AddComponent(&boxComponent{box: box})
	return obj
}

func TestRaycastHitsNearestBox(t *testing.T) {
	w := NewWorld()
	near := pickable(NewAABBFromCenter(rl.Vector3{X: 5}, rl.Vector3{X: 2, Y: 2, Z: 2}))
	far := pickable(NewAABBFromCenter(rl.Vector3{X: 15}, rl.Vector3{X: 2, Y: 2, Z: 2}))
	w.AddPickable(far)
	w.AddPickable(near)

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{X: 1}, 100)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.GameObject != near {
		t.Error("expected the nearer object")
	}
	if hit.Distance < 3.9 || hit.Distance > 4.1 {
		t.Errorf("distance %v, want ~4", hit.Distance)
	}
	if hit.Normal.X != -1 {
		t.Errorf("normal %v, want -X face", hit.Normal)
	}
}

func TestRaycastMissOutOfRange(t *testing.T) {
	w := NewWorld()
	w.AddPickable(pickable(NewAABBFromCenter(rl.Vector3{X: 50}, rl.Vector3{X: 2, Y: 2, Z: 2})))

	if _, ok := w.Raycast(rl.Vector3{}, rl.Vector3{X: 1}, 10); ok {
		t.Error("hit beyond max distance")
	}
}

func TestRaycastSkipsDisposedObjects(t *testing.T) {
	w := NewWorld()
	obj := pickable(NewAABBFromCenter(rl.Vector3{X: 5}, rl.Vector3{X: 2, Y: 2, Z: 2}))
	w.AddPickable(obj)
	obj.Dispose()

	if _, ok := w.Raycast(rl.Vector3{}, rl.Vector3{X: 1}, 100); ok {
		t.Error("raycast hit a disposed object")
	}
}

func TestRaycastSphere(t *testing.T) {
	w := NewWorld()
	obj := engine.NewGameObject("sphere")
	obj.AddComponent(&sphereComponent{center: rl.Vector3{X: 10}, radius: 1})
	w.AddPickable(obj)

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{X: 1}, 100)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Distance < 8.9 || hit.Distance > 9.1 {
		t.Errorf("distance %v, want ~9", hit.Distance)
	}
}

func TestResolveBodyPushesOutOfWalls(t *testing.T) {
	w := NewWorld()
	w.AddWall(NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 10, Y: 10, Z: 10}))

	body := NewAABBFromCenter(rl.Vector3{X: 4.5}, rl.Vector3{X: 2, Y: 2, Z: 2})
	mtv := w.ResolveBody(body)
	if mtv.X <= 0 {
		t.Errorf("expected +X push, got %v", mtv)
	}

	clear := NewAABBFromCenter(rl.Vector3{X: 20}, rl.Vector3{X: 2, Y: 2, Z: 2})
	if v := w.ResolveBody(clear); v != rl.Vector3Zero() {
		t.Errorf("expected no correction, got %v", v)
	}
}

func TestAABBResolvePicksSmallestAxis(t *testing.T) {
	a := NewAABBFromCenter(rl.Vector3{X: 0.9}, rl.Vector3{X: 2, Y: 2, Z: 2})
	b := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})

	mtv := a.Resolve(b)
	if mtv.X <= 0 || mtv.Y != 0 || mtv.Z != 0 {
		t.Errorf("expected +X minimum translation, got %v", mtv)
	}
}
