package movement

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const frame = float32(1.0 / 60.0)

func openField() *Integrator {
	return New(
		WithBounds(SquareBounds(1000)),
		WithObstacles(),
	)
}

func speed(v rl.Vector3) float32 {
	return rl.Vector3Length(v)
}

func TestHoldForwardApproachesMaxSpeed(t *testing.T) {
	it := openField()
	it.Teleport(rl.Vector3{})

	var res Result
	for i := 0; i < 60; i++ {
		res = it.Step(Frame{Delta: frame, Intent: Intent{Forward: true}})
		if s := speed(res.Velocity); s > 6+1e-4 {
			t.Fatalf("frame %d: speed %f overshoots max 6", i, s)
		}
	}

	if s := speed(res.Velocity); math32.Abs(s-6) > 1e-4 {
		t.Errorf("speed after 1s = %f, want 6", s)
	}
	if res.Pose.Position.Z >= 0 {
		t.Errorf("forward should move toward -Z, got z=%f", res.Pose.Position.Z)
	}
	if math32.Abs(res.Pose.Position.X) > 1e-4 {
		t.Errorf("forward at yaw 0 should not drift on X, got x=%f", res.Pose.Position.X)
	}
}

func TestFrictionDecaysMonotonically(t *testing.T) {
	it := openField()
	for i := 0; i < 30; i++ {
		it.Step(Frame{Delta: frame, Intent: Intent{Right: true}})
	}

	prev := speed(it.Velocity())
	if prev == 0 {
		t.Fatal("expected non-zero speed after accelerating")
	}
	for i := 0; i < 240; i++ {
		res := it.Step(Frame{Delta: frame})
		s := speed(res.Velocity)
		if s > prev || (s == prev && s != 0) {
			t.Fatalf("frame %d: speed went from %f to %f without input", i, prev, s)
		}
		prev = s
	}
}

func TestLargeFrictionStopsInsteadOfReversing(t *testing.T) {
	it := New(WithBounds(SquareBounds(1000)), WithObstacles(), WithFriction(1000))
	it.Step(Frame{Delta: frame, Intent: Intent{Forward: true}})

	res := it.Step(Frame{Delta: frame})
	if speed(res.Velocity) != 0 {
		t.Errorf("friction*dt > 1 should zero velocity, got %+v", res.Velocity)
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	it := openField()
	res := it.Step(Frame{Delta: frame, Intent: Intent{Forward: true, Backward: true}})
	if speed(res.Velocity) != 0 {
		t.Errorf("forward+backward should not accelerate, got %+v", res.Velocity)
	}
}

func TestDiagonalIsNormalized(t *testing.T) {
	it := openField()
	res := it.Step(Frame{Delta: frame, Intent: Intent{Forward: true, Right: true}})

	want := it.Preset().Acceleration * frame
	if math32.Abs(speed(res.Velocity)-want) > 1e-5 {
		t.Errorf("diagonal speed %f, want %f", speed(res.Velocity), want)
	}
	if res.Velocity.X <= 0 || res.Velocity.Z >= 0 {
		t.Errorf("forward+right at yaw 0 should head +X/-Z, got %+v", res.Velocity)
	}
}

func TestPitchDoesNotSlowWalking(t *testing.T) {
	level := openField()
	tilted := openField()

	a := level.Step(Frame{Delta: frame, Intent: Intent{Forward: true}})
	b := tilted.Step(Frame{Delta: frame, Intent: Intent{Forward: true}, MouseLook: Look{Pitch: -1.2}})

	if math32.Abs(speed(a.Velocity)-speed(b.Velocity)) > 1e-5 {
		t.Errorf("pitched speed %f differs from level %f", speed(b.Velocity), speed(a.Velocity))
	}
	if b.Velocity.Y != 0 {
		t.Errorf("movement must stay horizontal, got vy=%f", b.Velocity.Y)
	}
}

func TestStraightDownStillWalks(t *testing.T) {
	it := openField()
	res := it.Step(Frame{Delta: frame, Intent: Intent{Forward: true}, KeyLook: Look{Pitch: -math32.Pi / 2}})
	if speed(res.Velocity) == 0 {
		t.Error("looking straight down should still move forward")
	}
}

func TestOrientationSumsMouseAndKeyboard(t *testing.T) {
	it := openField()
	res := it.Step(Frame{
		Delta:     frame,
		MouseLook: Look{Yaw: 0.25, Pitch: 0.1},
		KeyLook:   Look{Yaw: 0.5, Pitch: -0.3},
	})
	if math32.Abs(res.Pose.Yaw-0.75) > 1e-6 || math32.Abs(res.Pose.Pitch+0.2) > 1e-6 {
		t.Errorf("pose angles (%f, %f), want (0.75, -0.2)", res.Pose.Yaw, res.Pose.Pitch)
	}
}

func TestYawRotatesMovement(t *testing.T) {
	it := openField()
	res := it.Step(Frame{Delta: frame, Intent: Intent{Forward: true}, KeyLook: Look{Yaw: math32.Pi / 2}})
	if res.Velocity.X >= 0 || math32.Abs(res.Velocity.Z) > 1e-5 {
		t.Errorf("forward after a left quarter turn should head -X, got %+v", res.Velocity)
	}
}

func TestBoundaryClampsAndStopsAxis(t *testing.T) {
	it := New(WithObstacles())
	b := it.Preset().Bounds
	it.Teleport(rl.Vector3{X: b.MaxX - 0.01, Z: 0})

	var res Result
	for i := 0; i < 30; i++ {
		res = it.Step(Frame{Delta: frame, Intent: Intent{Right: true}})
	}
	if res.Pose.Position.X != b.MaxX {
		t.Errorf("x = %f, want clamped to %f", res.Pose.Position.X, b.MaxX)
	}
	if !res.HitBounds {
		t.Error("expected HitBounds")
	}
	// The right key keeps adding one frame of acceleration, but the
	// wall zeroed the accumulated X velocity.
	if res.Velocity.X > it.Preset().Acceleration*frame+1e-5 {
		t.Errorf("x velocity %f should be reset at the wall", res.Velocity.X)
	}
}

func TestRandomWalkInvariants(t *testing.T) {
	for _, preset := range []Preset{Showroom(), Sandbox()} {
		t.Run(preset.Name, func(t *testing.T) {
			it := New(WithPreset(preset))
			rng := rand.New(rand.NewPCG(7, 11))
			var intent Intent
			var look Look

			for i := 0; i < 20000; i++ {
				if i%20 == 0 {
					intent = Intent{
						Forward:  rng.IntN(2) == 0,
						Backward: rng.IntN(4) == 0,
						Left:     rng.IntN(3) == 0,
						Right:    rng.IntN(3) == 0,
					}
					look.Yaw += (rng.Float32() - 0.5) * 2
				}
				res := it.Step(Frame{Delta: frame, Intent: intent, KeyLook: look})
				pos := res.Pose.Position

				if !preset.Bounds.Contains(pos.X, pos.Z) {
					t.Fatalf("step %d: %+v escaped bounds %+v", i, pos, preset.Bounds)
				}
				if s := speed(res.Velocity); s > preset.MaxSpeed+1e-4 {
					t.Fatalf("step %d: speed %f exceeds %f", i, s, preset.MaxSpeed)
				}
				if pos.Y != preset.EyeHeight {
					t.Fatalf("step %d: eye height %f, want %f", i, pos.Y, preset.EyeHeight)
				}
				for _, o := range preset.Obstacles {
					d := math32.Hypot(pos.X-o.X, pos.Z-o.Z)
					if d < o.Radius-1e-4 {
						t.Fatalf("step %d: penetrated obstacle %+v (d=%f)", i, o, d)
					}
				}
			}
		})
	}
}

func TestObstaclePushBackAndBounce(t *testing.T) {
	it := New(
		WithBounds(SquareBounds(50)),
		WithObstacles(Obstacle{X: 0, Z: 0, Radius: 1}),
		WithCollisionResponse(0.5, 0.5),
	)
	it.Teleport(rl.Vector3{X: 3, Z: 0})

	var res Result
	for i := 0; i < 120 && res.Contacts == 0; i++ {
		res = it.Step(Frame{Delta: frame, KeyLook: Look{Yaw: math32.Pi / 2}, Intent: Intent{Forward: true}})
	}
	if res.Contacts == 0 {
		t.Fatal("never reached the obstacle")
	}

	d := math32.Hypot(res.Pose.Position.X, res.Pose.Position.Z)
	if math32.Abs(d-1.5) > 1e-4 {
		t.Errorf("pushed to distance %f, want radius+clearance 1.5", d)
	}
	if res.Velocity.X <= 0 {
		t.Errorf("velocity should be reflected away (+X), got %+v", res.Velocity)
	}
}

func TestObstacleCenterOverlapUsesFallbackDirection(t *testing.T) {
	it := New(
		WithBounds(SquareBounds(50)),
		WithObstacles(Obstacle{X: 2, Z: -3, Radius: 1.5}),
		WithCollisionResponse(0, 0.3),
	)
	it.Teleport(rl.Vector3{X: 2, Z: -3})

	res := it.Step(Frame{Delta: frame})
	pos := res.Pose.Position
	if math32.IsNaN(pos.X) || math32.IsNaN(pos.Z) {
		t.Fatalf("position became NaN: %+v", pos)
	}
	if math32.Abs(pos.X-3.5) > 1e-5 || math32.Abs(pos.Z+3) > 1e-5 {
		t.Errorf("pushed to %+v, want (3.5, -3)", pos)
	}
}

func TestMaxDeltaCapsLongFrames(t *testing.T) {
	it := New(WithBounds(SquareBounds(1000)), WithObstacles(), WithMaxDelta(0.05))
	it.Teleport(rl.Vector3{})

	res := it.Step(Frame{Delta: 2, Intent: Intent{Forward: true}})
	want := it.Preset().Acceleration * 0.05
	if math32.Abs(speed(res.Velocity)-want) > 1e-5 {
		t.Errorf("speed %f, want %f from capped delta", speed(res.Velocity), want)
	}
}

func TestZeroDeltaOnlyUpdatesOrientation(t *testing.T) {
	it := openField()
	before := it.Pose().Position
	res := it.Step(Frame{Delta: 0, Intent: Intent{Forward: true}, MouseLook: Look{Yaw: 1}})

	if res.Pose.Position != before {
		t.Errorf("position moved on zero delta: %+v -> %+v", before, res.Pose.Position)
	}
	if res.Pose.Yaw != 1 {
		t.Errorf("yaw %f, want 1", res.Pose.Yaw)
	}
}

func TestBuilderOptionsApplyInOrder(t *testing.T) {
	it := New(WithPreset(Sandbox()), WithMaxSpeed(3), WithEyeHeight(1.2))
	p := it.Preset()

	if p.Name != "sandbox" || p.MaxSpeed != 3 || p.Acceleration != 20 {
		t.Errorf("unexpected preset %+v", p)
	}
	if it.Pose().Position.Y != 1.2 {
		t.Errorf("eye height %f, want 1.2", it.Pose().Position.Y)
	}
}

func TestPresetValidate(t *testing.T) {
	for name, p := range Presets() {
		if err := p.Validate(); err != nil {
			t.Errorf("built-in preset %s invalid: %v", name, err)
		}
	}

	tests := []struct {
		name   string
		mutate func(*Preset)
	}{
		{"zero max speed", func(p *Preset) { p.MaxSpeed = 0 }},
		{"negative friction", func(p *Preset) { p.Friction = -1 }},
		{"inverted bounds", func(p *Preset) { p.Bounds.MinX, p.Bounds.MaxX = 5, -5 }},
		{"bounce above one", func(p *Preset) { p.Bounce = 1.5 }},
		{"obstacle outside", func(p *Preset) { p.Obstacles = append(p.Obstacles, Obstacle{X: 17.5, Z: 0, Radius: 1}) }},
		{"spawn outside", func(p *Preset) { p.Spawn = rl.Vector3{X: 100} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Showroom()
			tt.mutate(&p)
			if err := p.Validate(); !errors.Is(err, ErrInvalidPreset) {
				t.Errorf("Validate() = %v, want ErrInvalidPreset", err)
			}
		})
	}
}
