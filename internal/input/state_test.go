package input

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestStateFlags(t *testing.T) {
	var s State
	s.Set(Forward, true)
	s.Set(LookLeft, true)

	if !s.Held(Forward) || !s.Held(LookLeft) {
		t.Fatal("Expected flags to be held")
	}
	if !s.AnyLook() || !s.AnyHeld() {
		t.Error("AnyLook/AnyHeld should be true")
	}
	in := s.Intent()
	if !in.Forward || in.Backward || in.Left || in.Right {
		t.Errorf("Intent() = %+v", in)
	}

	s.LookRotation.Yaw = 1
	s.ReleaseAll()
	if s.AnyHeld() {
		t.Error("ReleaseAll should clear every flag")
	}
	if s.LookRotation.Yaw != 1 {
		t.Error("ReleaseAll should keep the look rotation")
	}
}

func TestStateIgnoresInvalidAction(t *testing.T) {
	var s State
	s.Set(Action(42), true)
	if s.AnyHeld() || s.Held(Action(42)) {
		t.Error("invalid actions must be ignored")
	}
	if Action(42).String() != "unknown" {
		t.Error("invalid action name")
	}
}

func TestActions(t *testing.T) {
	all := Actions()
	if len(all) != 8 {
		t.Fatalf("Expected 8 actions, got %d", len(all))
	}
	looks := 0
	for _, a := range all {
		if a.IsLook() {
			looks++
		}
	}
	if looks != 4 {
		t.Errorf("Expected 4 look actions, got %d", looks)
	}
}

func TestDefaultKeyboard(t *testing.T) {
	k := DefaultKeyboard()
	tests := []struct {
		key  int32
		want Action
	}{
		{rl.KeyW, Forward},
		{rl.KeyS, Backward},
		{rl.KeyA, Left},
		{rl.KeyD, Right},
		{rl.KeyUp, LookUp},
		{rl.KeyDown, LookDown},
		{rl.KeyLeft, LookLeft},
		{rl.KeyRight, LookRight},
	}
	for _, tt := range tests {
		got, ok := k.Action(tt.key)
		if !ok || got != tt.want {
			t.Errorf("Action(%d) = %v, %v; want %v", tt.key, got, ok, tt.want)
		}
	}
	if _, ok := k.Action(rl.KeyEscape); ok {
		t.Error("Escape should not map to an action")
	}

	keys := k.Keys()
	if len(keys) != 9 {
		t.Fatalf("Expected 9 watched keys, got %d", len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Error("Keys() should be sorted and unique")
		}
	}
}

func TestKeyboardBind(t *testing.T) {
	var k Keyboard
	k.Bind(rl.KeyZ, Forward)
	if a, ok := k.Action(rl.KeyZ); !ok || a != Forward {
		t.Error("Bind on zero Keyboard should work")
	}
}
