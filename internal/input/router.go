package input

import (
	"log/slog"

	"showroom/internal/engine"
	"showroom/internal/selection"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Click is a primary-button press. OverUI is set when the press landed on
// an on-screen control or the popup, which absorbs it.
type Click struct {
	Position rl.Vector2
	OverUI   bool
}

// Events is the per-frame event surface produced by a Poller.
type Events struct {
	KeyDown     engine.EventWithArg[int32]
	KeyUp       engine.EventWithArg[int32]
	MouseMove   engine.EventWithArg[rl.Vector2]
	Click       engine.EventWithArg[Click]
	CaptureLost engine.Event
}

// Picker promotes whatever the crosshair is on to the selection.
// It reports whether a product was selected.
type Picker interface {
	Click() bool
}

// Presser is anything that accepts action press and release, such as
// the Router for the on-screen control pad.
type Presser interface {
	Press(a Action)
	Release(a Action)
}

type RouterDeps struct {
	State   *State
	Look    *LookAnimator
	Mouse   *MouseLook
	Capture PointerCapture
	Store   *selection.Store
	Keys    Keyboard
	Picker  Picker
	// SettleDelay is how long after the popup closes the mouse look is zeroed.
	SettleDelay float32
	Logger      *slog.Logger
}

// Router applies input events to the input state, honoring the popup:
// while a product is selected, presses and pointer movement are ignored.
type Router struct {
	RouterDeps
	scope   engine.Scope
	wasOpen bool
}

func NewRouter(deps RouterDeps) *Router {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Router{RouterDeps: deps, wasOpen: deps.Store.IsOpen()}
}

// Attach subscribes the router to ev and to selection changes.
// Detach releases every subscription taken here.
func (r *Router) Attach(ev *Events) {
	r.scope.Add(ev.KeyDown.Subscribe(r.keyDown))
	r.scope.Add(ev.KeyUp.Subscribe(r.keyUp))
	r.scope.Add(ev.MouseMove.Subscribe(r.mouseMove))
	r.scope.Add(ev.Click.Subscribe(r.click))
	r.scope.Add(ev.CaptureLost.Subscribe(r.captureLost))
	r.scope.Add(r.Store.Changed.Subscribe(r.selectionChanged))
}

func (r *Router) Detach() {
	r.scope.Close()
}

// Press sets the action's flag unless a popup is open.
func (r *Router) Press(a Action) {
	if r.Store.IsOpen() || !a.Valid() {
		return
	}
	r.State.Set(a, true)
	if a.IsLook() {
		r.Look.Start()
	}
}

// Release clears the action's flag. Releases are never gated so a key
// held across popup open does not stay stuck.
func (r *Router) Release(a Action) {
	r.State.Set(a, false)
	if !r.State.AnyLook() {
		r.Look.Stop()
	}
}

func (r *Router) keyDown(key int32) {
	if key == r.Keys.Close {
		r.escape()
		return
	}
	if a, ok := r.Keys.Action(key); ok {
		r.Press(a)
	}
}

func (r *Router) keyUp(key int32) {
	if a, ok := r.Keys.Action(key); ok {
		r.Release(a)
	}
}

func (r *Router) escape() {
	if r.Store.IsOpen() {
		r.Store.Close()
		return
	}
	if r.Capture.Captured() {
		r.Capture.Release()
		r.captureLost()
	}
}

func (r *Router) mouseMove(d rl.Vector2) {
	if !r.Capture.Captured() || r.Store.IsOpen() {
		return
	}
	r.Mouse.Apply(d.X, d.Y)
}

func (r *Router) click(c Click) {
	if r.Store.IsOpen() || c.OverUI {
		return
	}
	if r.Picker != nil && r.Picker.Click() {
		return
	}
	if err := r.Capture.Request(); err != nil {
		r.Logger.Debug("pointer capture unavailable", "err", err)
		return
	}
	r.Logger.Debug("pointer captured")
}

func (r *Router) captureLost() {
	if r.Store.IsOpen() {
		return
	}
	r.Mouse.Reset()
}

func (r *Router) selectionChanged(snap selection.Snapshot) {
	open := snap.Open()
	switch {
	case open && !r.wasOpen:
		r.State.ReleaseAll()
		r.Look.Stop()
		r.Capture.Release()
	case !open && r.wasOpen:
		r.Mouse.ScheduleReset(r.SettleDelay)
	}
	r.wasOpen = open
}
