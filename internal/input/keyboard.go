package input

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Keyboard maps raylib key codes to actions. Close is the key that
// dismisses the popup or releases pointer capture.
type Keyboard struct {
	bindings map[int32]Action
	Close    int32
}

// DefaultKeyboard binds WASD to movement, the arrow keys to look and
// Escape to close.
func DefaultKeyboard() Keyboard {
	return Keyboard{
		bindings: map[int32]Action{
			rl.KeyW:     Forward,
			rl.KeyS:     Backward,
			rl.KeyA:     Left,
			rl.KeyD:     Right,
			rl.KeyUp:    LookUp,
			rl.KeyDown:  LookDown,
			rl.KeyLeft:  LookLeft,
			rl.KeyRight: LookRight,
		},
		Close: rl.KeyEscape,
	}
}

// Bind assigns key to action, replacing any previous binding of that key.
func (k *Keyboard) Bind(key int32, a Action) {
	if k.bindings == nil {
		k.bindings = make(map[int32]Action)
	}
	k.bindings[key] = a
}

func (k Keyboard) Action(key int32) (Action, bool) {
	a, ok := k.bindings[key]
	return a, ok
}

// Keys returns every key the poller must watch, sorted by code.
func (k Keyboard) Keys() []int32 {
	keys := make([]int32, 0, len(k.bindings)+1)
	for key := range k.bindings {
		keys = append(keys, key)
	}
	if _, bound := k.bindings[k.Close]; !bound && k.Close != 0 {
		keys = append(keys, k.Close)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
