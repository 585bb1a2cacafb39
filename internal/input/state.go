// Package input turns key, pointer and on-screen button activity into the
// movement and look state read by the player controller.
package input

import "showroom/internal/movement"

// Action is one of the eight directional controls.
type Action int

const (
	Forward Action = iota
	Backward
	Left
	Right
	LookUp
	LookDown
	LookLeft
	LookRight
	actionCount
)

var actionNames = [actionCount]string{
	"forward", "backward", "left", "right",
	"look-up", "look-down", "look-left", "look-right",
}

func (a Action) String() string {
	if !a.Valid() {
		return "unknown"
	}
	return actionNames[a]
}

func (a Action) Valid() bool {
	return a >= Forward && a < actionCount
}

// IsLook reports whether the action rotates the view rather than moving.
func (a Action) IsLook() bool {
	return a >= LookUp && a < actionCount
}

// Actions lists every action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, actionCount)
	for a := Forward; a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

// State holds the held flag for every action and the accumulated
// keyboard look rotation.
type State struct {
	held         [actionCount]bool
	LookRotation movement.Look
}

func (s *State) Set(a Action, down bool) {
	if !a.Valid() {
		return
	}
	s.held[a] = down
}

func (s *State) Held(a Action) bool {
	return a.Valid() && s.held[a]
}

func (s *State) AnyLook() bool {
	return s.held[LookUp] || s.held[LookDown] || s.held[LookLeft] || s.held[LookRight]
}

func (s *State) AnyHeld() bool {
	for _, h := range s.held {
		if h {
			return true
		}
	}
	return false
}

// ReleaseAll clears every held flag. The look rotation is kept.
func (s *State) ReleaseAll() {
	s.held = [actionCount]bool{}
}

// Intent returns the movement flags in the form the integrator reads.
func (s *State) Intent() movement.Intent {
	return movement.Intent{
		Forward:  s.held[Forward],
		Backward: s.held[Backward],
		Left:     s.held[Left],
		Right:    s.held[Right],
	}
}
