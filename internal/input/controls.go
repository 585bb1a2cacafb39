package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HoldButton is an on-screen control that holds its action while the
// pointer is down on it. Releasing or sliding off the button lets go.
type HoldButton struct {
	Action Action
	Label  string
	Bounds rl.Rectangle
	held   bool
}

func (b *HoldButton) Held() bool {
	return b.held
}

// HandleInput updates the hold state from the pointer and forwards
// transitions to target.
func (b *HoldButton) HandleInput(pointer rl.Vector2, down bool, target Presser) {
	inside := rl.CheckCollisionPointRec(pointer, b.Bounds)
	switch {
	case !b.held && down && inside:
		b.held = true
		target.Press(b.Action)
	case b.held && (!down || !inside):
		b.held = false
		target.Release(b.Action)
	}
}

// Cancel lets go of the button without checking the pointer.
func (b *HoldButton) Cancel(target Presser) {
	if b.held {
		b.held = false
		target.Release(b.Action)
	}
}

// ControlPad is two four-way clusters: movement at the bottom left and
// look at the bottom right.
type ControlPad struct {
	Buttons []*HoldButton
	Size    float32
	Margin  float32
}

func NewControlPad(size, margin float32) *ControlPad {
	p := &ControlPad{Size: size, Margin: margin}
	for _, a := range Actions() {
		p.Buttons = append(p.Buttons, &HoldButton{Action: a, Label: padLabels[a]})
	}
	return p
}

var padLabels = [actionCount]string{
	Forward: "W", Backward: "S", Left: "A", Right: "D",
	LookUp: "^", LookDown: "v", LookLeft: "<", LookRight: ">",
}

// cluster offsets in button units from the cluster's top-left corner
var clusterOffsets = [4]rl.Vector2{
	{X: 1, Y: 0}, // up
	{X: 1, Y: 2}, // down
	{X: 0, Y: 1}, // left
	{X: 2, Y: 1}, // right
}

// Layout positions the buttons for a screen of the given size.
func (p *ControlPad) Layout(screenW, screenH float32) {
	span := p.Size * 3
	leftOrigin := rl.Vector2{X: p.Margin, Y: screenH - p.Margin - span}
	rightOrigin := rl.Vector2{X: screenW - p.Margin - span, Y: screenH - p.Margin - span}
	for i, b := range p.Buttons {
		origin := leftOrigin
		if b.Action.IsLook() {
			origin = rightOrigin
		}
		off := clusterOffsets[i%4]
		b.Bounds = rl.Rectangle{
			X:      origin.X + off.X*p.Size,
			Y:      origin.Y + off.Y*p.Size,
			Width:  p.Size - 4,
			Height: p.Size - 4,
		}
	}
}

// Update feeds the pointer to every button.
func (p *ControlPad) Update(pointer rl.Vector2, down bool, target Presser) {
	for _, b := range p.Buttons {
		b.HandleInput(pointer, down, target)
	}
}

// ReleaseAll cancels every held button.
func (p *ControlPad) ReleaseAll(target Presser) {
	for _, b := range p.Buttons {
		b.Cancel(target)
	}
}

func (p *ControlPad) Contains(pt rl.Vector2) bool {
	for _, b := range p.Buttons {
		if rl.CheckCollisionPointRec(pt, b.Bounds) {
			return true
		}
	}
	return false
}
