package input

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrCaptureDenied = errors.New("pointer capture denied: window not focused")
	ErrCaptureHeld   = errors.New("pointer capture already held")
)

// PointerCapture grants relative pointer movement to the scene.
type PointerCapture interface {
	Request() error
	Release()
	Captured() bool
}

// CursorCapture implements PointerCapture by hiding and locking the
// raylib cursor.
type CursorCapture struct {
	captured bool
	focused  func() bool
	lock     func()
	unlock   func()
}

func NewCursorCapture() *CursorCapture {
	return &CursorCapture{
		focused: rl.IsWindowFocused,
		lock:    rl.DisableCursor,
		unlock:  rl.EnableCursor,
	}
}

func (c *CursorCapture) Request() error {
	if c.captured {
		return ErrCaptureHeld
	}
	if !c.focused() {
		return ErrCaptureDenied
	}
	c.lock()
	c.captured = true
	return nil
}

func (c *CursorCapture) Release() {
	if !c.captured {
		return
	}
	c.unlock()
	c.captured = false
}

func (c *CursorCapture) Captured() bool {
	return c.captured
}

// Focused reports whether the window currently has input focus.
func (c *CursorCapture) Focused() bool {
	return c.focused()
}
