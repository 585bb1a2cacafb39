package world

import (
	"fmt"

	"showroom/internal/components"
	"showroom/internal/engine"
	"showroom/internal/movement"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// displayRadius bounds a product display (platform included) at scale 1.
const displayRadius = 1.6

const (
	hallWallMargin  = 2
	hallWallHeight  = 6
	hallLampHeight  = 5.5
	hallPedestalH   = 1
	fieldWallMargin = 1
	fieldWallHeight = 4
)

var (
	hallFloor    = rl.NewColor(248, 249, 250, 255)
	hallWall     = rl.NewColor(241, 243, 244, 255)
	hallPedestal = rl.NewColor(233, 236, 239, 255)
	hallLamp     = rl.NewColor(255, 255, 255, 255)
	hallSign     = rl.NewColor(44, 62, 80, 255)
	fieldFloor   = rl.NewColor(74, 222, 128, 255)
	fieldWall    = rl.NewColor(107, 114, 128, 255)

	fieldPalette = []rl.Color{
		rl.NewColor(239, 68, 68, 255),
		rl.NewColor(59, 130, 246, 255),
		rl.NewColor(139, 92, 246, 255),
		rl.NewColor(245, 158, 11, 255),
		rl.NewColor(236, 72, 153, 255),
		rl.NewColor(6, 182, 212, 255),
	}
)

func (w *World) addScenery(name string, pos rl.Vector3, s *Scenery) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Tags = []string{TagScenery}
	g.Transform.Position = pos
	g.AddComponent(s)
	w.Scene.AddGameObject(g)
	return g
}

// floorAndWalls lays a floor slab under the whole room and a wall on the
// given sides, margin units outside the movement bounds.
func (w *World) floorAndWalls(b movement.Bounds, margin, height float32, floor, wall rl.Color, sides ...side) {
	minX, maxX := b.MinX-margin, b.MaxX+margin
	minZ, maxZ := b.MinZ-margin, b.MaxZ+margin
	cx, cz := (minX+maxX)/2, (minZ+maxZ)/2
	width, depth := maxX-minX, maxZ-minZ

	// Unbounded: the floor is visible from everywhere.
	w.addScenery("Floor", rl.Vector3{X: cx, Z: cz},
		NewScenery(0, components.BoxPart(rl.Vector3{Y: -0.05}, rl.Vector3{X: width, Y: 0.1, Z: depth}, floor)))

	for _, s := range sides {
		var pos, size rl.Vector3
		switch s {
		case sideBack:
			pos, size = rl.Vector3{X: cx, Z: minZ}, rl.Vector3{X: width, Y: height, Z: 0.2}
		case sideFront:
			pos, size = rl.Vector3{X: cx, Z: maxZ}, rl.Vector3{X: width, Y: height, Z: 0.2}
		case sideLeft:
			pos, size = rl.Vector3{X: minX, Z: cz}, rl.Vector3{X: 0.2, Y: height, Z: depth}
		case sideRight:
			pos, size = rl.Vector3{X: maxX, Z: cz}, rl.Vector3{X: 0.2, Y: height, Z: depth}
		}
		pos.Y = height / 2
		radius := math32.Sqrt(size.X*size.X+size.Y*size.Y+size.Z*size.Z) / 2
		w.addScenery(s.String()+" Wall", pos, NewScenery(radius, components.BoxPart(rl.Vector3{}, size, wall)))
	}
}

type side int

const (
	sideBack side = iota
	sideFront
	sideLeft
	sideRight
)

func (s side) String() string {
	switch s {
	case sideBack:
		return "Back"
	case sideFront:
		return "Front"
	case sideLeft:
		return "Left"
	default:
		return "Right"
	}
}

// buildHall creates the product hall: an open-fronted room with ceiling
// lamps, a sign over the back wall and a pedestal on every obstacle.
func (w *World) buildHall() {
	b := w.Preset.Bounds
	w.floorAndWalls(b, hallWallMargin, hallWallHeight, hallFloor, hallWall, sideBack, sideLeft, sideRight)

	backZ := b.MinZ - hallWallMargin
	cx := (b.MinX + b.MaxX) / 2
	for i, x := range []float32{cx - 8, cx + 8, cx} {
		z := backZ + 7
		if i == 2 {
			z = (b.MinZ + b.MaxZ) / 2
		}
		lamp := NewScenery(0.5, components.CylinderPart(rl.Vector3{}, 0.4, 0.3, hallLamp))
		w.addScenery(fmt.Sprintf("Lamp %d", i+1), rl.Vector3{X: x, Y: hallLampHeight, Z: z}, lamp)
	}
	w.addScenery("Sign", rl.Vector3{X: cx, Y: 4, Z: backZ + 0.2},
		NewScenery(4.1, components.BoxPart(rl.Vector3{}, rl.Vector3{X: 8, Y: 1, Z: 0.1}, hallSign)))

	for i, o := range w.Preset.Obstacles {
		r := o.Radius * 0.8
		p := NewScenery(r+hallPedestalH, components.CylinderPart(rl.Vector3{}, r, hallPedestalH, hallPedestal))
		w.addScenery(fmt.Sprintf("Pedestal %d", i+1), rl.Vector3{X: o.X, Y: hallPedestalH / 2, Z: o.Z}, p)
	}
}

// buildField creates the open test field: a walled square with one
// primitive per obstacle. The second obstacle is a bobbing sphere, the third
// a cylinder and the rest cubes.
func (w *World) buildField() {
	b := w.Preset.Bounds
	w.floorAndWalls(b, fieldWallMargin, fieldWallHeight, fieldFloor, fieldWall,
		sideBack, sideFront, sideLeft, sideRight)

	for i, o := range w.Preset.Obstacles {
		color := fieldPalette[i%len(fieldPalette)]
		name := fmt.Sprintf("Obstacle %d", i+1)
		switch i {
		case 1:
			r := o.Radius / 2
			s := NewScenery(r, components.SpherePart(rl.Vector3{}, r, color))
			s.Bob = 0.5
			w.addScenery(name, rl.Vector3{X: o.X, Y: 2, Z: o.Z}, s)
		case 2:
			r := o.Radius / 2
			s := NewScenery(1+r, components.CylinderPart(rl.Vector3{}, r, 2, color))
			w.addScenery(name, rl.Vector3{X: o.X, Y: 1, Z: o.Z}, s)
		default:
			edge := o.Radius
			s := NewScenery(edge, components.BoxPart(rl.Vector3{}, rl.Vector3{X: edge, Y: edge, Z: edge}, color))
			w.addScenery(name, rl.Vector3{X: o.X, Y: edge / 2, Z: o.Z}, s)
		}
	}
}
