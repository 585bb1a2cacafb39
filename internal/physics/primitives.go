package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Sphere struct {
	Center rl.Vector3
	Radius float32
}

func (s Sphere) Place(p Placement) Shape {
	return Sphere{Center: p.point(s.Center), Radius: s.Radius * p.scale()}
}

func (s Sphere) Raycast(ray rl.Ray, maxDistance float32) (RaycastHit, bool) {
	origin, direction := ray.Position, ray.Direction
	oc := rl.Vector3Subtract(origin, s.Center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 || a == 0 {
		return RaycastHit{}, false
	}

	sq := math32.Sqrt(discriminant)
	t := (-b - sq) / (2 * a)
	if t < 0 {
		t = (-b + sq) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, s.Center))
	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

// Cylinder stands upright on Base, which is the center of its bottom cap.
type Cylinder struct {
	Base   rl.Vector3
	Radius float32
	Height float32
}

func (c Cylinder) Place(p Placement) Shape {
	s := p.scale()
	return Cylinder{Base: p.point(c.Base), Radius: c.Radius * s, Height: c.Height * s}
}

// Raycast tests the side wall and both caps and keeps the nearest
// non-negative hit. A ray starting inside hits the surface it exits through.
func (c Cylinder) Raycast(ray rl.Ray, maxDistance float32) (RaycastHit, bool) {
	o, d := ray.Position, ray.Direction
	ox, oz := o.X-c.Base.X, o.Z-c.Base.Z
	bottom, top := c.Base.Y, c.Base.Y+c.Height
	r2 := c.Radius * c.Radius

	best := RaycastHit{Distance: maxDistance}
	found := false
	consider := func(t float32, normal rl.Vector3) {
		if t < 0 || t > maxDistance || (found && t >= best.Distance) {
			return
		}
		best = RaycastHit{
			Point:    rl.Vector3Add(o, rl.Vector3Scale(d, t)),
			Normal:   normal,
			Distance: t,
		}
		found = true
	}

	// Side wall
	a := d.X*d.X + d.Z*d.Z
	if a > 1e-12 {
		b := 2 * (ox*d.X + oz*d.Z)
		cc := ox*ox + oz*oz - r2
		if disc := b*b - 4*a*cc; disc >= 0 {
			sq := math32.Sqrt(disc)
			for _, t := range [2]float32{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
				y := o.Y + d.Y*t
				if y < bottom || y > top {
					continue
				}
				x, z := ox+d.X*t, oz+d.Z*t
				n := math32.Hypot(x, z)
				if n == 0 {
					continue
				}
				consider(t, rl.Vector3{X: x / n, Z: z / n})
			}
		}
	}

	// Caps
	if d.Y != 0 {
		for _, lid := range [2]struct {
			y      float32
			normal rl.Vector3
		}{{bottom, rl.Vector3{Y: -1}}, {top, rl.Vector3{Y: 1}}} {
			t := (lid.y - o.Y) / d.Y
			x, z := ox+d.X*t, oz+d.Z*t
			if x*x+z*z <= r2 {
				consider(t, lid.normal)
			}
		}
	}

	return best, found
}
