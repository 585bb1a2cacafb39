package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Anchor places a rect relative to a parent, in the manner of a UI
// rect transform. Min and Max are fractions of the parent; when they are
// equal, Size is the rect size and Pivot picks which point of the rect sits
// on the anchor. When they differ, the rect stretches and Size insets it.
type Anchor struct {
	Min, Max rl.Vector2
	Pivot    rl.Vector2
	Offset   rl.Vector2
	Size     rl.Vector2
}

var (
	topLeft      = rl.Vector2{X: 0, Y: 0}
	topRight     = rl.Vector2{X: 1, Y: 0}
	middleCenter = rl.Vector2{X: 0.5, Y: 0.5}
	bottomCenter = rl.Vector2{X: 0.5, Y: 1}
)

// At anchors a fixed-size rect to one point of the parent.
func At(point rl.Vector2, offset, size rl.Vector2) Anchor {
	return Anchor{Min: point, Max: point, Pivot: point, Offset: offset, Size: size}
}

func (a Anchor) Rect(parent rl.Rectangle) rl.Rectangle {
	minX := parent.X + parent.Width*a.Min.X
	minY := parent.Y + parent.Height*a.Min.Y
	maxX := parent.X + parent.Width*a.Max.X
	maxY := parent.Y + parent.Height*a.Max.Y

	if a.Min == a.Max {
		return rl.Rectangle{
			X:      minX + a.Offset.X - a.Size.X*a.Pivot.X,
			Y:      minY + a.Offset.Y - a.Size.Y*a.Pivot.Y,
			Width:  a.Size.X,
			Height: a.Size.Y,
		}
	}
	return rl.Rectangle{
		X:      minX + a.Offset.X,
		Y:      minY + a.Offset.Y,
		Width:  maxX - minX + a.Size.X,
		Height: maxY - minY + a.Size.Y,
	}
}

func screenRect(w, h float32) rl.Rectangle {
	return rl.Rectangle{Width: w, Height: h}
}

// inset shrinks r by pad on every side.
func inset(r rl.Rectangle, pad float32) rl.Rectangle {
	return rl.Rectangle{X: r.X + pad, Y: r.Y + pad, Width: r.Width - 2*pad, Height: r.Height - 2*pad}
}

// splitRows cuts a row of the given height off the top of r and returns it
// along with the remainder.
func splitRows(r rl.Rectangle, height float32) (row, rest rl.Rectangle) {
	row = rl.Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: height}
	rest = rl.Rectangle{X: r.X, Y: r.Y + height, Width: r.Width, Height: r.Height - height}
	return row, rest
}
