// Package movement integrates first-person walking: acceleration, friction,
// a speed clamp, the room boundary and circular obstacles.
package movement

import (
	"showroom/internal/camera"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// overlapEpsilon is the distance below which the player is treated as
// standing on an obstacle's center. The push direction is undefined there,
// so +X is used instead.
const overlapEpsilon = 1e-4

// Intent is the set of held movement directions for one frame.
type Intent struct {
	Forward, Backward, Left, Right bool
}

func (in Intent) Any() bool {
	return in.Forward || in.Backward || in.Left || in.Right
}

// Look is a yaw/pitch pair in radians.
type Look struct {
	Yaw, Pitch float32
}

// Frame is everything the integrator reads for one step.
type Frame struct {
	Delta     float32
	Intent    Intent
	MouseLook Look
	KeyLook   Look
}

// Result describes what happened during a step.
type Result struct {
	Pose      camera.Pose
	Velocity  rl.Vector3
	HitBounds bool
	Contacts  int // obstacles the player was pushed out of
}

// Integrator owns the player's velocity and position between frames.
type Integrator struct {
	preset   Preset
	position rl.Vector3
	velocity rl.Vector3
	pose     camera.Pose
}

// New returns an integrator configured with the showroom preset, then
// the given options applied in order.
func New(opts ...Option) *Integrator {
	it := &Integrator{}
	WithPreset(Showroom())(it)
	for _, opt := range opts {
		opt(it)
	}
	it.position.Y = it.preset.EyeHeight
	it.pose = camera.Pose{Position: it.position}
	return it
}

func (it *Integrator) Preset() Preset {
	return it.preset
}

func (it *Integrator) Pose() camera.Pose {
	return it.pose
}

func (it *Integrator) Velocity() rl.Vector3 {
	return it.velocity
}

// Teleport moves the player and clears its velocity.
func (it *Integrator) Teleport(pos rl.Vector3) {
	pos.Y = it.preset.EyeHeight
	it.position = pos
	it.velocity = rl.Vector3{}
	it.pose.Position = pos
}

// Step advances one frame and commits the new pose.
func (it *Integrator) Step(f Frame) Result {
	p := &it.preset
	dt := f.Delta
	if p.MaxDelta > 0 && dt > p.MaxDelta {
		dt = p.MaxDelta
	}

	pose := camera.Pose{
		Position: it.position,
		Yaw:      f.MouseLook.Yaw + f.KeyLook.Yaw,
		Pitch:    f.MouseLook.Pitch + f.KeyLook.Pitch,
	}
	if dt <= 0 {
		it.pose = pose
		return Result{Pose: pose, Velocity: it.velocity}
	}

	dir := worldDirection(pose, f.Intent)
	if dir.X != 0 || dir.Z != 0 {
		it.velocity = rl.Vector3Add(it.velocity, rl.Vector3Scale(dir, p.Acceleration*dt))
	} else {
		it.velocity = rl.Vector3Scale(it.velocity, math32.Max(0, 1-p.Friction*dt))
	}

	if speed := rl.Vector3Length(it.velocity); speed > p.MaxSpeed {
		it.velocity = rl.Vector3Scale(it.velocity, p.MaxSpeed/speed)
	}

	next := rl.Vector3Add(it.position, rl.Vector3Scale(it.velocity, dt))
	res := Result{}

	if next.X < p.Bounds.MinX || next.X > p.Bounds.MaxX {
		it.velocity.X = 0
		next.X = math32.Max(p.Bounds.MinX, math32.Min(p.Bounds.MaxX, next.X))
		res.HitBounds = true
	}
	if next.Z < p.Bounds.MinZ || next.Z > p.Bounds.MaxZ {
		it.velocity.Z = 0
		next.Z = math32.Max(p.Bounds.MinZ, math32.Min(p.Bounds.MaxZ, next.Z))
		res.HitBounds = true
	}

	for _, o := range p.Obstacles {
		limit := o.Radius + p.Clearance
		dx := next.X - o.X
		dz := next.Z - o.Z
		dist := math32.Hypot(dx, dz)
		if dist >= limit {
			continue
		}
		nx, nz := float32(1), float32(0)
		if dist > overlapEpsilon {
			nx, nz = dx/dist, dz/dist
		}
		next.X = o.X + nx*limit
		next.Z = o.Z + nz*limit
		it.velocity.X *= -p.Bounce
		it.velocity.Z *= -p.Bounce
		res.Contacts++
	}

	next.Y = p.EyeHeight
	it.position = next
	pose.Position = next
	it.pose = pose

	res.Pose = pose
	res.Velocity = it.velocity
	return res
}

// worldDirection turns the held keys into a unit horizontal direction.
// Returns the zero vector when nothing is held or the keys cancel out.
func worldDirection(pose camera.Pose, in Intent) rl.Vector3 {
	var local rl.Vector3
	if in.Forward {
		local.Z -= 1
	}
	if in.Backward {
		local.Z += 1
	}
	if in.Left {
		local.X -= 1
	}
	if in.Right {
		local.X += 1
	}
	if local.X == 0 && local.Z == 0 {
		return rl.Vector3{}
	}
	local = rl.Vector3Normalize(local)

	world := pose.Rotate(local)
	world.Y = 0
	// Pitch shortens the flattened forward component; restore unit length
	// so looking down does not slow the walk.
	if l := math32.Hypot(world.X, world.Z); l > overlapEpsilon {
		return rl.Vector3{X: world.X / l, Z: world.Z / l}
	}
	// Looking straight up or down: fall back to the yaw-only basis.
	flat := camera.Pose{Yaw: pose.Yaw}.Rotate(local)
	flat.Y = 0
	return rl.Vector3Normalize(flat)
}
