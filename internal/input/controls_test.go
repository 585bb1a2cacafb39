package input

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type recorder struct {
	held map[Action]bool
}

func (r *recorder) Press(a Action)   { r.held[a] = true }
func (r *recorder) Release(a Action) { r.held[a] = false }

func center(r rl.Rectangle) rl.Vector2 {
	return rl.Vector2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

func TestHoldButton(t *testing.T) {
	rec := &recorder{held: map[Action]bool{}}
	b := &HoldButton{Action: Forward, Bounds: rl.Rectangle{X: 0, Y: 0, Width: 10, Height: 10}}

	b.HandleInput(rl.Vector2{X: 5, Y: 5}, false, rec)
	if b.Held() {
		t.Error("hover without press should not hold")
	}

	b.HandleInput(rl.Vector2{X: 5, Y: 5}, true, rec)
	if !b.Held() || !rec.held[Forward] {
		t.Fatal("press should hold")
	}

	b.HandleInput(rl.Vector2{X: 50, Y: 5}, true, rec)
	if b.Held() || rec.held[Forward] {
		t.Error("leaving the button should release")
	}

	b.HandleInput(rl.Vector2{X: 5, Y: 5}, true, rec)
	b.HandleInput(rl.Vector2{X: 5, Y: 5}, false, rec)
	if b.Held() || rec.held[Forward] {
		t.Error("pointer up should release")
	}
}

func TestControlPadLayout(t *testing.T) {
	p := NewControlPad(60, 20)
	p.Layout(1280, 720)

	if len(p.Buttons) != 8 {
		t.Fatalf("Expected 8 buttons, got %d", len(p.Buttons))
	}
	for _, b := range p.Buttons {
		if b.Bounds.X < 0 || b.Bounds.X+b.Bounds.Width > 1280 || b.Bounds.Y+b.Bounds.Height > 720 {
			t.Errorf("button %v off screen: %+v", b.Action, b.Bounds)
		}
		if b.Action.IsLook() && b.Bounds.X < 640 {
			t.Errorf("look button %v should be on the right", b.Action)
		}
		if !b.Action.IsLook() && b.Bounds.X > 640 {
			t.Errorf("move button %v should be on the left", b.Action)
		}
	}

	rec := &recorder{held: map[Action]bool{}}
	target := p.Buttons[LookLeft]
	p.Update(center(target.Bounds), true, rec)
	if !rec.held[LookLeft] {
		t.Error("pressing the look-left button should press LookLeft")
	}
	if !p.Contains(center(target.Bounds)) || p.Contains(rl.Vector2{X: 640, Y: 100}) {
		t.Error("Contains mismatch")
	}

	p.ReleaseAll(rec)
	if rec.held[LookLeft] {
		t.Error("ReleaseAll should let go")
	}
}
