package ui

import (
	"showroom/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PadColor picks the fill for an on-screen button.
func PadColor(held bool) rl.Color {
	if held {
		return colorPadHeld
	}
	return colorPadIdle
}

// DrawControlPad renders the movement and look clusters. Hidden while the
// popup is open since presses are ignored then.
func DrawControlPad(pad *input.ControlPad, open bool) {
	if pad == nil || open {
		return
	}
	for _, b := range pad.Buttons {
		Panel{Color: PadColor(b.Held()), BorderColor: colorPadBorder, BorderWidth: 1, Radius: 8}.Draw(b.Bounds)
		Text(b.Bounds, b.Label, 20, rl.White, AlignCenter)
	}
}
