package input

import (
	"errors"
	"testing"
)

func newTestCapture(focused *bool) (*CursorCapture, *int) {
	locks := 0
	c := &CursorCapture{
		focused: func() bool { return *focused },
		lock:    func() { locks++ },
		unlock:  func() { locks-- },
	}
	return c, &locks
}

func TestCursorCapture(t *testing.T) {
	focused := false
	c, locks := newTestCapture(&focused)

	if err := c.Request(); !errors.Is(err, ErrCaptureDenied) {
		t.Errorf("Request() unfocused = %v, want ErrCaptureDenied", err)
	}
	if c.Captured() {
		t.Error("denied request must not capture")
	}

	focused = true
	if err := c.Request(); err != nil {
		t.Fatalf("Request() = %v", err)
	}
	if !c.Captured() || *locks != 1 {
		t.Error("Expected cursor to be locked")
	}
	if err := c.Request(); !errors.Is(err, ErrCaptureHeld) {
		t.Errorf("second Request() = %v, want ErrCaptureHeld", err)
	}

	c.Release()
	c.Release()
	if c.Captured() || *locks != 0 {
		t.Errorf("Release should unlock exactly once, locks = %d", *locks)
	}
}
