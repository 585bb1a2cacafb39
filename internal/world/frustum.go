package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Clip distances used when culling. They match raylib's default 3D
// projection.
const (
	cullNear float32 = 0.1
	cullFar  float32 = 1000.0
)

// Frustum is the view volume as six inward-facing planes: left, right,
// bottom, top, near, far.
type Frustum [6]Plane

// Plane is the set of points p with Normal·p + D = 0. Points with a
// positive signed distance are on the inside.
type Plane struct {
	Normal rl.Vector3
	D      float32
}

// SignedDistance is the distance from the plane to p, positive inside.
func (p Plane) SignedDistance(pt rl.Vector3) float32 {
	return rl.Vector3DotProduct(p.Normal, pt) + p.D
}

// ExtractFrustum builds the view volume of a perspective camera for the
// given width/height aspect. The planes come from the combined
// view-projection matrix (Gribb/Hartmann).
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	if aspect <= 0 {
		aspect = 1
	}
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)
	proj := rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, cullNear, cullFar)
	m := rl.MatrixMultiply(view, proj)

	// Matrix fields are column-major; row i is (Mi, Mi+4, Mi+8, Mi+12).
	row := [4]rl.Vector4{
		{X: m.M0, Y: m.M4, Z: m.M8, W: m.M12},
		{X: m.M1, Y: m.M5, Z: m.M9, W: m.M13},
		{X: m.M2, Y: m.M6, Z: m.M10, W: m.M14},
		{X: m.M3, Y: m.M7, Z: m.M11, W: m.M15},
	}

	var f Frustum
	for axis := 0; axis < 3; axis++ {
		f[2*axis] = normalizedPlane(addRows(row[3], row[axis], 1))
		f[2*axis+1] = normalizedPlane(addRows(row[3], row[axis], -1))
	}
	return f
}

func addRows(a, b rl.Vector4, sign float32) rl.Vector4 {
	return rl.Vector4{X: a.X + sign*b.X, Y: a.Y + sign*b.Y, Z: a.Z + sign*b.Z, W: a.W + sign*b.W}
}

func normalizedPlane(v rl.Vector4) Plane {
	n := rl.Vector3{X: v.X, Y: v.Y, Z: v.Z}
	length := rl.Vector3Length(n)
	if length == 0 {
		return Plane{Normal: n, D: v.W}
	}
	return Plane{Normal: rl.Vector3Scale(n, 1/length), D: v.W / length}
}

// ContainsSphere reports whether a sphere touches the view volume.
// A non-positive radius marks something that is never culled.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	if radius <= 0 {
		return true
	}
	for _, p := range f {
		if p.SignedDistance(center) < -radius {
			return false
		}
	}
	return true
}

func (f *Frustum) ContainsPoint(pt rl.Vector3) bool {
	for _, p := range f {
		if p.SignedDistance(pt) < 0 {
			return false
		}
	}
	return true
}
