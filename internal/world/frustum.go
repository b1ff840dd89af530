package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum is the 6 planes of a view frustum, used to cull scene nodes.
type Frustum struct {
	planes [6]plane // left, right, bottom, top, near, far
}

// plane in ax + by + cz + d = 0 form
type plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum pulls the planes out of the camera's view-projection matrix
// (Gribb/Hartmann).
func ExtractFrustum(camera rl.Camera3D) Frustum {
	view := rl.GetCameraMatrix(camera)

	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, 0.1, 1000.0)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, 0.1, 1000.0)
	}

	vp := rl.MatrixMultiply(view, proj)

	var f Frustum
	f.planes[0] = normalizePlane(plane{ // left: row4 + row1
		normal:   rl.Vector3{X: vp.M3 + vp.M0, Y: vp.M7 + vp.M4, Z: vp.M11 + vp.M8},
		distance: vp.M15 + vp.M12,
	})
	f.planes[1] = normalizePlane(plane{ // right: row4 - row1
		normal:   rl.Vector3{X: vp.M3 - vp.M0, Y: vp.M7 - vp.M4, Z: vp.M11 - vp.M8},
		distance: vp.M15 - vp.M12,
	})
	f.planes[2] = normalizePlane(plane{ // bottom: row4 + row2
		normal:   rl.Vector3{X: vp.M3 + vp.M1, Y: vp.M7 + vp.M5, Z: vp.M11 + vp.M9},
		distance: vp.M15 + vp.M13,
	})
	f.planes[3] = normalizePlane(plane{ // top: row4 - row2
		normal:   rl.Vector3{X: vp.M3 - vp.M1, Y: vp.M7 - vp.M5, Z: vp.M11 - vp.M9},
		distance: vp.M15 - vp.M13,
	})
	f.planes[4] = normalizePlane(plane{ // near: row4 + row3
		normal:   rl.Vector3{X: vp.M3 + vp.M2, Y: vp.M7 + vp.M6, Z: vp.M11 + vp.M10},
		distance: vp.M15 + vp.M14,
	})
	f.planes[5] = normalizePlane(plane{ // far: row4 - row3
		normal:   rl.Vector3{X: vp.M3 - vp.M2, Y: vp.M7 - vp.M6, Z: vp.M11 - vp.M10},
		distance: vp.M15 - vp.M14,
	})

	return f
}

func normalizePlane(p plane) plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsSphere reports whether the sphere is inside or intersects the
// frustum.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := 0; i < 6; i++ {
		dist := rl.Vector3DotProduct(f.planes[i].normal, center) + f.planes[i].distance
		if dist < -radius {
			return false
		}
	}
	return true
}

func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	for i := 0; i < 6; i++ {
		dist := rl.Vector3DotProduct(f.planes[i].normal, point) + f.planes[i].distance
		if dist < 0 {
			return false
		}
	}
	return true
}
