// Package physics answers ray queries against the simple shapes that make
// up product displays.
package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Shape is anything a ray can hit.
type Shape interface {
	Raycast(ray rl.Ray, maxDistance float32) (RaycastHit, bool)
	// Place maps a shape defined in local space into the world.
	Place(p Placement) Shape
}

// Placement is a uniform scale, a turn about +Y and a translation,
// applied in that order.
type Placement struct {
	Position rl.Vector3
	Scale    float32
	Yaw      float32
}

func (p Placement) point(v rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(rotateY(rl.Vector3Scale(v, p.scale()), p.Yaw), p.Position)
}

func (p Placement) scale() float32 {
	if p.Scale == 0 {
		return 1
	}
	return p.Scale
}

// rotateY turns v about +Y by angle. Positive angles turn -Z toward -X.
func rotateY(v rl.Vector3, angle float32) rl.Vector3 {
	if angle == 0 {
		return v
	}
	s, c := math32.Sincos(angle)
	return rl.Vector3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

// Body is a group of shapes hit-tested as one target.
type Body []Shape

// Raycast returns the closest hit among the body's shapes.
func (b Body) Raycast(ray rl.Ray, maxDistance float32) (RaycastHit, bool) {
	_, hit, ok := Nearest(ray, maxDistance, b)
	return hit, ok
}

func (b Body) Place(p Placement) Shape {
	out := make(Body, len(b))
	for i, s := range b {
		out[i] = s.Place(p)
	}
	return out
}

// Nearest casts ray against every shape and returns the index and hit of
// the closest one within maxDistance. Ties keep the earlier shape.
func Nearest(ray rl.Ray, maxDistance float32, shapes []Shape) (int, RaycastHit, bool) {
	ray.Direction = rl.Vector3Normalize(ray.Direction)
	var closest RaycastHit
	closest.Distance = maxDistance
	index := -1

	for i, s := range shapes {
		if s == nil {
			continue
		}
		if hit, ok := s.Raycast(ray, maxDistance); ok && (index < 0 || hit.Distance < closest.Distance) {
			closest = hit
			index = i
		}
	}
	return index, closest, index >= 0
}
