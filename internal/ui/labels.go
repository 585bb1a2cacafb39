package ui

import (
	"showroom/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	labelHeight   = 1.2 // above the display origin, world units
	labelMaxRange = 18  // beyond this the label is not drawn
)

// LabelAnchor is the world point a display's floating name sits at.
func LabelAnchor(d *components.ProductDisplay) rl.Vector3 {
	p := d.Position()
	p.Y += labelHeight * d.Scale()
	return p
}

// InLabelRange reports whether a label at anchor is close enough to the
// eye and in front of it.
func InLabelRange(cam rl.Camera3D, anchor rl.Vector3) bool {
	toAnchor := rl.Vector3Subtract(anchor, cam.Position)
	if rl.Vector3Length(toAnchor) > labelMaxRange {
		return false
	}
	forward := rl.Vector3Subtract(cam.Target, cam.Position)
	return rl.Vector3DotProduct(toAnchor, forward) > 0
}

// DrawDisplayLabels writes each nearby product name above its display.
func DrawDisplayLabels(cam rl.Camera3D, displays []*components.ProductDisplay) {
	for _, d := range displays {
		anchor := LabelAnchor(d)
		if !InLabelRange(cam, anchor) {
			continue
		}
		pos := rl.GetWorldToScreen(anchor, cam)
		name := d.Product().Name
		width := float32(rl.MeasureText(name, 16)) + 12
		rect := rl.Rectangle{X: pos.X - width/2, Y: pos.Y - 12, Width: width, Height: 24}

		bg := colorHudBg
		if d.IsHovered() {
			bg = rl.NewColor(22, 101, 52, 220)
		}
		Panel{Color: bg, Radius: 6}.Draw(rect)
		Text(rect, name, 16, rl.White, AlignCenter)
	}
}
