package movement

// Option configures an Integrator.
type Option func(*Integrator)

// WithPreset replaces every tunable with p and moves the player to p.Spawn.
func WithPreset(p Preset) Option {
	return func(it *Integrator) {
		p.Obstacles = append([]Obstacle(nil), p.Obstacles...)
		it.preset = p
		it.position = p.Spawn
	}
}

// WithAcceleration sets the acceleration applied while moving.
func WithAcceleration(a float32) Option {
	return func(it *Integrator) { it.preset.Acceleration = a }
}

// WithFriction sets the idle decay rate.
func WithFriction(f float32) Option {
	return func(it *Integrator) { it.preset.Friction = f }
}

// WithMaxSpeed sets the speed clamp.
func WithMaxSpeed(s float32) Option {
	return func(it *Integrator) { it.preset.MaxSpeed = s }
}

// WithEyeHeight sets the fixed camera height.
func WithEyeHeight(h float32) Option {
	return func(it *Integrator) { it.preset.EyeHeight = h }
}

// WithBounds sets the room rectangle.
func WithBounds(b Bounds) Option {
	return func(it *Integrator) { it.preset.Bounds = b }
}

// WithObstacles replaces the obstacle list.
func WithObstacles(obstacles ...Obstacle) Option {
	return func(it *Integrator) {
		it.preset.Obstacles = append([]Obstacle(nil), obstacles...)
	}
}

// WithCollisionResponse sets the obstacle clearance and bounce factor.
func WithCollisionResponse(clearance, bounce float32) Option {
	return func(it *Integrator) {
		it.preset.Clearance = clearance
		it.preset.Bounce = bounce
	}
}

// WithMaxDelta caps the frame time fed to the integrator.
func WithMaxDelta(d float32) Option {
	return func(it *Integrator) { it.preset.MaxDelta = d }
}
