package input

import (
	"testing"

	"github.com/chewxy/math32"
)

func approx(a, b float32) bool {
	return math32.Abs(a-b) < 1e-4
}

func TestLookAnimatorOnlyRunsWhenStarted(t *testing.T) {
	a := NewLookAnimator(3, math32.Pi/2)
	var s State
	s.Set(LookLeft, true)

	if a.Tick(1.0/60, &s) {
		t.Error("stopped animator should not tick")
	}
	if s.LookRotation.Yaw != 0 {
		t.Error("stopped animator changed the rotation")
	}

	a.Start()
	if !a.Tick(1.0/60, &s) {
		t.Error("started animator should tick")
	}
	if !approx(s.LookRotation.Yaw, 0.05) {
		t.Errorf("Expected yaw 0.05 after one 60 Hz frame, got %f", s.LookRotation.Yaw)
	}
}

func TestLookAnimatorDirections(t *testing.T) {
	a := NewLookAnimator(3, math32.Pi/2)
	a.Start()
	var s State
	s.Set(LookRight, true)
	s.Set(LookDown, true)
	a.Tick(0.1, &s)

	if !approx(s.LookRotation.Yaw, -0.3) || !approx(s.LookRotation.Pitch, -0.3) {
		t.Errorf("rotation = %+v, want yaw -0.3 pitch -0.3", s.LookRotation)
	}

	s.Set(LookLeft, true)
	s.Set(LookUp, true)
	before := s.LookRotation
	a.Tick(0.1, &s)
	if s.LookRotation != before {
		t.Error("opposing look keys should cancel")
	}
}

func TestLookAnimatorClampsPitch(t *testing.T) {
	a := NewLookAnimator(3, math32.Pi/2)
	a.Start()
	var s State
	s.Set(LookUp, true)
	for i := 0; i < 120; i++ {
		a.Tick(1.0/60, &s)
	}
	if s.LookRotation.Pitch > math32.Pi/2+1e-6 {
		t.Errorf("pitch %f exceeds limit", s.LookRotation.Pitch)
	}
	if !approx(s.LookRotation.Pitch, math32.Pi/2) {
		t.Errorf("pitch should rest at the limit, got %f", s.LookRotation.Pitch)
	}
}

func TestMouseLookApply(t *testing.T) {
	m := NewMouseLook(0.002, math32.Pi/3)
	m.Apply(100, 50)

	got := m.Look()
	if !approx(got.Yaw, -0.2) || !approx(got.Pitch, -0.1) {
		t.Errorf("Look() = %+v, want yaw -0.2 pitch -0.1", got)
	}

	m.Apply(0, -10000)
	if !approx(m.Look().Pitch, math32.Pi/3) {
		t.Errorf("pitch should clamp to pi/3, got %f", m.Look().Pitch)
	}
}

func TestMouseLookScheduledReset(t *testing.T) {
	m := NewMouseLook(0.002, math32.Pi/2)
	m.Apply(100, 0)
	m.ScheduleReset(0.1)

	m.Tick(0.05)
	if m.Look().Yaw == 0 {
		t.Error("reset fired before the settle delay")
	}
	if !m.ResetPending() {
		t.Error("reset should still be pending")
	}

	m.Tick(0.06)
	if m.Look().Yaw != 0 || m.ResetPending() {
		t.Errorf("reset should have fired, look = %+v", m.Look())
	}
}

func TestMouseLookResetCancelsSchedule(t *testing.T) {
	m := NewMouseLook(0.002, math32.Pi/2)
	m.ScheduleReset(0.1)
	m.Reset()
	m.Apply(10, 0)
	m.Tick(1)
	if m.Look().Yaw == 0 {
		t.Error("cancelled reset should not fire")
	}
}
