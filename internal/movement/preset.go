package movement

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Obstacle is a static vertical cylinder the player cannot enter,
// described by its center on the floor plane and its radius.
type Obstacle struct {
	X, Z   float32
	Radius float32
}

// Bounds is the axis-aligned rectangle the player is kept inside.
type Bounds struct {
	MinX, MaxX float32
	MinZ, MaxZ float32
}

// SquareBounds returns bounds spanning [-half, half] on both axes.
func SquareBounds(half float32) Bounds {
	return Bounds{MinX: -half, MaxX: half, MinZ: -half, MaxZ: half}
}

func (b Bounds) Contains(x, z float32) bool {
	return x >= b.MinX && x <= b.MaxX && z >= b.MinZ && z <= b.MaxZ
}

// Preset is the full set of tunables for one scene layout.
type Preset struct {
	Name         string
	Acceleration float32 // units/s² while a movement key is held
	Friction     float32 // decay rate per second when idle
	MaxSpeed     float32 // units/s
	EyeHeight    float32
	Bounce       float32 // fraction of velocity reflected by an obstacle
	Clearance    float32 // extra distance kept from each obstacle's radius
	MaxDelta     float32 // frame time cap in seconds, 0 disables
	Bounds       Bounds
	Obstacles    []Obstacle
	Spawn        rl.Vector3
}

var ErrInvalidPreset = errors.New("invalid movement preset")

// Validate reports the first tunable that would break the integrator's
// guarantees.
func (p Preset) Validate() error {
	switch {
	case p.Acceleration <= 0:
		return fmt.Errorf("%w %q: acceleration must be positive", ErrInvalidPreset, p.Name)
	case p.MaxSpeed <= 0:
		return fmt.Errorf("%w %q: max speed must be positive", ErrInvalidPreset, p.Name)
	case p.Friction < 0:
		return fmt.Errorf("%w %q: friction must not be negative", ErrInvalidPreset, p.Name)
	case p.Bounce < 0 || p.Bounce > 1:
		return fmt.Errorf("%w %q: bounce must be within [0,1]", ErrInvalidPreset, p.Name)
	case p.Clearance < 0:
		return fmt.Errorf("%w %q: clearance must not be negative", ErrInvalidPreset, p.Name)
	case p.Bounds.MinX >= p.Bounds.MaxX || p.Bounds.MinZ >= p.Bounds.MaxZ:
		return fmt.Errorf("%w %q: bounds are empty or inverted", ErrInvalidPreset, p.Name)
	}
	for i, o := range p.Obstacles {
		r := o.Radius + p.Clearance
		if o.Radius <= 0 {
			return fmt.Errorf("%w %q: obstacle %d has non-positive radius", ErrInvalidPreset, p.Name, i)
		}
		// Pushing out of an obstacle lands on its clearance circle, so the
		// whole circle has to fit inside the room.
		if o.X-r < p.Bounds.MinX || o.X+r > p.Bounds.MaxX || o.Z-r < p.Bounds.MinZ || o.Z+r > p.Bounds.MaxZ {
			return fmt.Errorf("%w %q: obstacle %d crosses the room bounds", ErrInvalidPreset, p.Name, i)
		}
	}
	if !p.Bounds.Contains(p.Spawn.X, p.Spawn.Z) {
		return fmt.Errorf("%w %q: spawn point is outside the bounds", ErrInvalidPreset, p.Name)
	}
	return nil
}

// Showroom is the product hall: a 36x25 rectangular room with two
// display pedestals and no clearance margin.
func Showroom() Preset {
	return Preset{
		Name:         "showroom",
		Acceleration: 15,
		Friction:     8,
		MaxSpeed:     6,
		EyeHeight:    1.7,
		Bounce:       0.3,
		Clearance:    0,
		MaxDelta:     0.1,
		Bounds:       Bounds{MinX: -18, MaxX: 18, MinZ: -13, MaxZ: 12},
		Obstacles: []Obstacle{
			{X: -10, Z: 5, Radius: 1.5},
			{X: 10, Z: 5, Radius: 1.5},
		},
		Spawn: rl.Vector3{X: 0, Y: 1.7, Z: 8},
	}
}

// Sandbox is the open test field: a 48x48 square with six scattered
// primitives and a half-unit clearance around each.
func Sandbox() Preset {
	return Preset{
		Name:         "sandbox",
		Acceleration: 20,
		Friction:     10,
		MaxSpeed:     8,
		EyeHeight:    2,
		Bounce:       0.5,
		Clearance:    0.5,
		MaxDelta:     0.1,
		Bounds:       SquareBounds(24),
		Obstacles: []Obstacle{
			{X: -3, Z: -2, Radius: 1},
			{X: 3, Z: -2, Radius: 1.6},
			{X: 0, Z: -5, Radius: 1},
			{X: 5, Z: 2, Radius: 1},
			{X: -5, Z: 2, Radius: 1},
			{X: 0, Z: 8, Radius: 1},
		},
		Spawn: rl.Vector3{X: 0, Y: 2, Z: 12},
	}
}

// Presets returns the built-in presets keyed by name.
func Presets() map[string]Preset {
	return map[string]Preset{
		"showroom": Showroom(),
		"sandbox":  Sandbox(),
	}
}
