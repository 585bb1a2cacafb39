package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// FocusCapture is a PointerCapture that can also tell whether the window
// still has focus, so a lost focus can end the capture.
type FocusCapture interface {
	PointerCapture
	Focused() bool
}

// Poller converts raylib's polled input into discrete Events once per frame.
type Poller struct {
	keys    []int32
	capture FocusCapture
	// OverUI reports whether a free-cursor click hit an on-screen control.
	OverUI func(rl.Vector2) bool
}

func NewPoller(keys Keyboard, capture FocusCapture) *Poller {
	return &Poller{keys: keys.Keys(), capture: capture}
}

func (p *Poller) Poll(ev *Events) {
	for _, k := range p.keys {
		if rl.IsKeyPressed(k) {
			ev.KeyDown.Invoke(k)
		}
		if rl.IsKeyReleased(k) {
			ev.KeyUp.Invoke(k)
		}
	}

	if p.capture.Captured() {
		if !p.capture.Focused() {
			p.capture.Release()
			ev.CaptureLost.Invoke()
		} else if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
			ev.MouseMove.Invoke(d)
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		overUI := !p.capture.Captured() && p.OverUI != nil && p.OverUI(pos)
		ev.Click.Invoke(Click{Position: pos, OverUI: overUI})
	}
}
