package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/engine"
)

// BoxShape is implemented by box collider components.
type BoxShape interface {
	GetAABB() AABB
}

// SphereShape is implemented by sphere collider components.
type SphereShape interface {
	GetCenter() rl.Vector3
	GetRadius() float32
}

// World indexes the pickable scene objects and the static level geometry.
// References are non-owning; Remove must be called when the scene drops a node.
type World struct {
	Pickables []*engine.GameObject
	Walls     []AABB
}

func NewWorld() *World {
	return &World{}
}

func (w *World) AddPickable(g *engine.GameObject) {
	w.Pickables = append(w.Pickables, g)
}

func (w *World) RemovePickable(g *engine.GameObject) {
	for i, obj := range w.Pickables {
		if obj == g {
			w.Pickables = append(w.Pickables[:i], w.Pickables[i+1:]...)
			return
		}
	}
}

func (w *World) AddWall(box AABB) {
	w.Walls = append(w.Walls, box)
}

// Clear drops every index; called on level teardown.
func (w *World) Clear() {
	w.Pickables = nil
	w.Walls = nil
}

// ResolveBody pushes a moving body's AABB out of every wall it penetrates and
// returns the total correction applied.
func (w *World) ResolveBody(body AABB) rl.Vector3 {
	total := rl.Vector3Zero()
	for _, wall := range w.Walls {
		mtv := body.Resolve(wall)
		body.Min = rl.Vector3Add(body.Min, mtv)
		body.Max = rl.Vector3Add(body.Max, mtv)
		total = rl.Vector3Add(total, mtv)
	}
	return total
}

// Raycast checks every pickable object's colliders and returns the closest hit.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	direction = rl.Vector3Normalize(direction)
	var closest engine.RaycastResult
	closest.Distance = maxDistance
	hit := false

	for _, obj := range w.Pickables {
		if obj.Disposed() || !obj.Active {
			continue
		}
		for _, c := range obj.Components() {
			if box, ok := c.(BoxShape); ok {
				if info, ok := raycastBox(origin, direction, box.GetAABB(), maxDistance); ok && info.Distance < closest.Distance {
					closest = info
					closest.GameObject = obj
					hit = true
				}
			}
			if sphere, ok := c.(SphereShape); ok {
				if info, ok := raycastSphere(origin, direction, sphere.GetCenter(), sphere.GetRadius(), maxDistance); ok && info.Distance < closest.Distance {
					closest = info
					closest.GameObject = obj
					hit = true
				}
			}
		}
	}

	return closest, hit
}

func raycastBox(origin, direction rl.Vector3, box AABB, maxDistance float32) (engine.RaycastResult, bool) {
	var tmin, tmax float32

	// X slab
	if direction.X != 0 {
		t1 := (box.Min.X - origin.X) / direction.X
		t2 := (box.Max.X - origin.X) / direction.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = t1
		tmax = t2
	} else if origin.X < box.Min.X || origin.X > box.Max.X {
		return engine.RaycastResult{}, false
	} else {
		tmin = -1e30
		tmax = 1e30
	}

	// Y slab
	if direction.Y != 0 {
		t1 := (box.Min.Y - origin.Y) / direction.Y
		t2 := (box.Max.Y - origin.Y) / direction.Y
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Y < box.Min.Y || origin.Y > box.Max.Y {
		return engine.RaycastResult{}, false
	}

	if tmin > tmax {
		return engine.RaycastResult{}, false
	}

	// Z slab
	if direction.Z != 0 {
		t1 := (box.Min.Z - origin.Z) / direction.Z
		t2 := (box.Max.Z - origin.Z) / direction.Z
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Z < box.Min.Z || origin.Z > box.Max.Z {
		return engine.RaycastResult{}, false
	}

	if tmin > tmax || tmax < 0 || tmin > maxDistance {
		return engine.RaycastResult{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return engine.RaycastResult{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Normal from whichever face the hit point sits on.
	var normal rl.Vector3
	epsilon := float32(0.001)
	switch {
	case absf(point.X-box.Min.X) < epsilon:
		normal = rl.Vector3{X: -1}
	case absf(point.X-box.Max.X) < epsilon:
		normal = rl.Vector3{X: 1}
	case absf(point.Y-box.Min.Y) < epsilon:
		normal = rl.Vector3{Y: -1}
	case absf(point.Y-box.Max.Y) < epsilon:
		normal = rl.Vector3{Y: 1}
	case absf(point.Z-box.Min.Z) < epsilon:
		normal = rl.Vector3{Z: -1}
	default:
		normal = rl.Vector3{Z: 1}
	}

	return engine.RaycastResult{Point: point, Normal: normal, Distance: t}, true
}

func raycastSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (engine.RaycastResult, bool) {
	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return engine.RaycastResult{}, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 {
		t = (-b + float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return engine.RaycastResult{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return engine.RaycastResult{Point: point, Normal: normal, Distance: t}, true
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
