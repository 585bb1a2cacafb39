package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates a box turned by yaw radians about +Y.
func NewOBB(center, size rl.Vector3, yaw float32) OBB {
	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: math32.Abs(size.X) / 2, Y: math32.Abs(size.Y) / 2, Z: math32.Abs(size.Z) / 2},
		Axes: [3]rl.Vector3{
			rotateY(rl.Vector3{X: 1}, yaw),
			{Y: 1},
			rotateY(rl.Vector3{Z: 1}, yaw),
		},
	}
}

func (o OBB) Place(p Placement) Shape {
	s := p.scale()
	return OBB{
		Center:   p.point(o.Center),
		HalfSize: rl.Vector3Scale(o.HalfSize, s),
		Axes: [3]rl.Vector3{
			rotateY(o.Axes[0], p.Yaw),
			rotateY(o.Axes[1], p.Yaw),
			rotateY(o.Axes[2], p.Yaw),
		},
	}
}

// Raycast runs the slab test along each of the box's own axes.
func (o OBB) Raycast(ray rl.Ray, maxDistance float32) (RaycastHit, bool) {
	delta := rl.Vector3Subtract(o.Center, ray.Position)
	half := [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z}
	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)
	var nearAxis, farAxis int
	var nearSign, farSign float32 = -1, 1

	for i, axis := range o.Axes {
		e := rl.Vector3DotProduct(axis, delta)
		f := rl.Vector3DotProduct(axis, ray.Direction)
		if math32.Abs(f) < 1e-7 {
			if -e-half[i] > 0 || -e+half[i] < 0 {
				return RaycastHit{}, false
			}
			continue
		}
		t1 := (e - half[i]) / f
		t2 := (e + half[i]) / f
		// Entering through the face whose normal opposes the ray.
		s1, s2 := float32(-1), float32(1)
		if t1 > t2 {
			t1, t2 = t2, t1
			s1, s2 = s2, s1
		}
		if t1 > tmin {
			tmin, nearAxis, nearSign = t1, i, s1
		}
		if t2 < tmax {
			tmax, farAxis, farSign = t2, i, s2
		}
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	t, axis, sign := tmin, nearAxis, nearSign
	if t < 0 {
		t, axis, sign = tmax, farAxis, farSign
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	return RaycastHit{
		Point:    rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t)),
		Normal:   rl.Vector3Scale(o.Axes[axis], sign),
		Distance: t,
	}, true
}

// ClosestPoint returns the point of the box nearest to p.
func (o OBB) ClosestPoint(p rl.Vector3) rl.Vector3 {
	local := rl.Vector3Subtract(p, o.Center)
	half := [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z}
	result := o.Center
	for i, axis := range o.Axes {
		d := rl.Vector3DotProduct(local, axis)
		d = math32.Max(-half[i], math32.Min(half[i], d))
		result = rl.Vector3Add(result, rl.Vector3Scale(axis, d))
	}
	return result
}
