package components

import (
	"showroom/internal/catalog"
	"showroom/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type PartShape int

const (
	PartBox PartShape = iota
	PartCylinder
	PartSphere
)

// Part is one primitive of a product model, positioned relative to the
// display's origin.
type Part struct {
	Shape  PartShape
	Center rl.Vector3
	Size   rl.Vector3 // boxes
	Radius float32    // cylinders and spheres
	Height float32    // cylinders
	Color  rl.Color
	// Screen parts glow while the display is hovered.
	Screen bool
}

func (p Part) Collider() physics.Shape {
	switch p.Shape {
	case PartCylinder:
		return physics.Cylinder{
			Base:   rl.Vector3{X: p.Center.X, Y: p.Center.Y - p.Height/2, Z: p.Center.Z},
			Radius: p.Radius,
			Height: p.Height,
		}
	case PartSphere:
		return physics.Sphere{Center: p.Center, Radius: p.Radius}
	default:
		return physics.NewAABBFromCenter(p.Center, p.Size)
	}
}

// Draw renders the part in the current model matrix.
func (p Part) Draw(hovered bool) {
	color := p.Color
	if p.Screen && hovered {
		color = screenGlow
	}
	switch p.Shape {
	case PartCylinder:
		base := rl.Vector3{X: p.Center.X, Y: p.Center.Y - p.Height/2, Z: p.Center.Z}
		rl.DrawCylinder(base, p.Radius, p.Radius, p.Height, 24, color)
	case PartSphere:
		rl.DrawSphere(p.Center, p.Radius, color)
	default:
		rl.DrawCubeV(p.Center, p.Size, color)
		rl.DrawCubeWiresV(p.Center, p.Size, rl.Fade(rl.Black, 0.25))
	}
}

var (
	graphite   = rl.NewColor(44, 44, 52, 255)
	silver     = rl.NewColor(200, 202, 208, 255)
	black      = rl.NewColor(12, 12, 18, 255)
	white      = rl.NewColor(245, 245, 247, 255)
	titanium   = rl.NewColor(142, 138, 130, 255)
	orange     = rl.NewColor(255, 106, 0, 255)
	screenDark = rl.NewColor(26, 26, 46, 255)
	screenGlow = rl.NewColor(52, 120, 190, 255)
)

// BoxPart, CylinderPart and SpherePart build parts centered on center.
func BoxPart(center, size rl.Vector3, color rl.Color) Part {
	return Part{Shape: PartBox, Center: center, Size: size, Color: color}
}

func CylinderPart(center rl.Vector3, radius, height float32, color rl.Color) Part {
	return Part{Shape: PartCylinder, Center: center, Radius: radius, Height: height, Color: color}
}

func SpherePart(center rl.Vector3, radius float32, color rl.Color) Part {
	return Part{Shape: PartSphere, Center: center, Radius: radius, Color: color}
}

var (
	box      = BoxPart
	cylinder = CylinderPart
	sphere   = SpherePart
)

func screen(center, size rl.Vector3) Part {
	p := box(center, size, screenDark)
	p.Screen = true
	return p
}

func v3(x, y, z float32) rl.Vector3 { return rl.Vector3{X: x, Y: y, Z: z} }

var models = map[catalog.Kind][]Part{
	catalog.KindPhone: {
		box(v3(0, 0, 0), v3(0.4, 0.8, 0.05), titanium),
		screen(v3(0, 0, 0.03), v3(0.35, 0.7, 0.01)),
		box(v3(-0.1, 0.28, -0.035), v3(0.15, 0.15, 0.02), graphite),
	},
	catalog.KindLaptop: {
		box(v3(0, -0.2, 0), v3(1.2, 0.05, 0.8), silver),
		box(v3(0, 0.175, -0.385), v3(1.15, 0.75, 0.03), silver),
		screen(v3(0, 0.175, -0.365), v3(1.05, 0.65, 0.01)),
	},
	catalog.KindEarbuds: {
		box(v3(0, 0, 0), v3(0.6, 0.25, 0.5), white),
		sphere(v3(-0.12, 0.2, 0), 0.06, white),
		sphere(v3(0.12, 0.2, 0), 0.06, white),
	},
	catalog.KindTablet: {
		box(v3(0, 0, 0), v3(0.8, 1.1, 0.06), graphite),
		screen(v3(0, 0, 0.035), v3(0.75, 1.05, 0.01)),
	},
	catalog.KindWatch: {
		box(v3(0, 0, 0), v3(0.35, 0.4, 0.08), titanium),
		screen(v3(0, 0, 0.045), v3(0.3, 0.35, 0.01)),
		box(v3(0, 0.27, 0), v3(0.15, 0.15, 0.02), orange),
		box(v3(0, -0.27, 0), v3(0.15, 0.15, 0.02), orange),
		cylinder(v3(0.19, 0.05, 0), 0.02, 0.03, orange),
	},
	catalog.KindDesktop: {
		box(v3(0, 0, 0), v3(0.8, 0.4, 0.8), silver),
		cylinder(v3(0, -0.205, 0), 0.35, 0.01, graphite),
	},
	catalog.KindMonitor: {
		cylinder(v3(0, -0.6, 0), 0.3, 0.05, silver),
		cylinder(v3(0, -0.3, 0), 0.03, 0.6, silver),
		box(v3(0, 0.1, 0), v3(1.2, 0.8, 0.05), silver),
		screen(v3(0, 0.1, 0.03), v3(1.15, 0.75, 0.01)),
	},
	catalog.KindTower: {
		box(v3(0, 0, 0), v3(0.5, 1.2, 0.6), silver),
		cylinder(v3(0, 0.45, 0.305), 0.03, 0.01, graphite),
	},
	catalog.KindGeneric: {
		box(v3(0, 0, 0), v3(0.5, 0.5, 0.5), graphite),
	},
}

// Model returns the parts for kind, falling back to the generic cube.
func Model(kind catalog.Kind) []Part {
	if parts, ok := models[kind]; ok {
		return parts
	}
	return models[catalog.KindGeneric]
}
