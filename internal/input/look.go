package input

import (
	"showroom/internal/camera"
	"showroom/internal/movement"
)

// LookAnimator integrates held look keys into State.LookRotation at a fixed
// angular rate. It only runs between Start and Stop.
type LookAnimator struct {
	Rate       float32 // radians per second
	PitchLimit float32
	running    bool
}

func NewLookAnimator(rate, pitchLimit float32) *LookAnimator {
	return &LookAnimator{Rate: rate, PitchLimit: pitchLimit}
}

func (a *LookAnimator) Start()        { a.running = true }
func (a *LookAnimator) Stop()         { a.running = false }
func (a *LookAnimator) Running() bool { return a.running }

// Tick advances the look rotation by dt seconds. It returns false without
// touching s when the animator is stopped.
func (a *LookAnimator) Tick(dt float32, s *State) bool {
	if !a.running || dt <= 0 {
		return false
	}
	step := a.Rate * dt
	r := s.LookRotation
	if s.Held(LookUp) {
		r.Pitch += step
	}
	if s.Held(LookDown) {
		r.Pitch -= step
	}
	if s.Held(LookLeft) {
		r.Yaw += step
	}
	if s.Held(LookRight) {
		r.Yaw -= step
	}
	r.Pitch = camera.ClampPitch(r.Pitch, a.PitchLimit)
	s.LookRotation = r
	return true
}

// MouseLook accumulates pointer deltas into a yaw/pitch pair while the
// pointer is captured.
type MouseLook struct {
	Sensitivity float32 // radians per pixel
	PitchLimit  float32

	look         movement.Look
	resetPending bool
	resetIn      float32
}

func NewMouseLook(sensitivity, pitchLimit float32) *MouseLook {
	return &MouseLook{Sensitivity: sensitivity, PitchLimit: pitchLimit}
}

// Apply adds a pointer movement. Moving right turns right and moving
// down looks down.
func (m *MouseLook) Apply(dx, dy float32) {
	m.look.Yaw -= dx * m.Sensitivity
	m.look.Pitch = camera.ClampPitch(m.look.Pitch-dy*m.Sensitivity, m.PitchLimit)
}

func (m *MouseLook) Look() movement.Look {
	return m.look
}

// Reset zeroes the accumulated angles and cancels a scheduled reset.
func (m *MouseLook) Reset() {
	m.look = movement.Look{}
	m.resetPending = false
	m.resetIn = 0
}

// ScheduleReset zeroes the angles once delay seconds of Tick have passed.
// Scheduling again restarts the countdown.
func (m *MouseLook) ScheduleReset(delay float32) {
	m.resetPending = true
	m.resetIn = delay
}

func (m *MouseLook) ResetPending() bool {
	return m.resetPending
}

func (m *MouseLook) Tick(dt float32) {
	if !m.resetPending {
		return
	}
	m.resetIn -= dt
	if m.resetIn <= 0 {
		m.Reset()
	}
}
