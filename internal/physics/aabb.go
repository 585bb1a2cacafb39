package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: math32.Abs(size.X) / 2, Y: math32.Abs(size.Y) / 2, Z: math32.Abs(size.Z) / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// Place returns an AABB when the placement has no turn and an OBB otherwise.
func (a AABB) Place(p Placement) Shape {
	if p.Yaw == 0 {
		return NewAABBFromCenter(p.point(a.Center()), rl.Vector3Scale(a.Size(), p.scale()))
	}
	return NewOBB(a.Center(), a.Size(), 0).Place(p)
}

// Raycast intersects the ray with the box using the slab method.
// A ray starting inside the box hits the face it exits through.
func (a AABB) Raycast(ray rl.Ray, maxDistance float32) (RaycastHit, bool) {
	origin, direction := ray.Position, ray.Direction
	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)

	slab := func(o, d, lo, hi float32) bool {
		if d == 0 {
			return o >= lo && o <= hi
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math32.Max(tmin, t1)
		tmax = math32.Min(tmax, t2)
		return tmin <= tmax
	}

	if !slab(origin.X, direction.X, a.Min.X, a.Max.X) ||
		!slab(origin.Y, direction.Y, a.Min.Y, a.Max.Y) ||
		!slab(origin.Z, direction.Z, a.Min.Z, a.Max.Z) {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return RaycastHit{Point: point, Normal: a.faceNormal(point), Distance: t}, true
}

// faceNormal picks the face the point lies on.
func (a AABB) faceNormal(point rl.Vector3) rl.Vector3 {
	const epsilon = 0.001
	switch {
	case math32.Abs(point.X-a.Min.X) < epsilon:
		return rl.Vector3{X: -1}
	case math32.Abs(point.X-a.Max.X) < epsilon:
		return rl.Vector3{X: 1}
	case math32.Abs(point.Y-a.Min.Y) < epsilon:
		return rl.Vector3{Y: -1}
	case math32.Abs(point.Y-a.Max.Y) < epsilon:
		return rl.Vector3{Y: 1}
	case math32.Abs(point.Z-a.Min.Z) < epsilon:
		return rl.Vector3{Z: -1}
	default:
		return rl.Vector3{Z: 1}
	}
}
