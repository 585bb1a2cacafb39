package components

import (
	"showroom/internal/camera"
	"showroom/internal/engine"
	"showroom/internal/input"
	"showroom/internal/movement"
	"showroom/internal/selection"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlayerController drives the viewpoint from the input state each frame.
// While a product is selected it is frozen: neither pose nor velocity
// changes.
type PlayerController struct {
	engine.BaseComponent

	integrator *movement.Integrator
	state      *input.State
	mouse      *input.MouseLook
	store      *selection.Store
	last       movement.Result
}

func NewPlayerController(it *movement.Integrator, state *input.State, mouse *input.MouseLook, store *selection.Store) *PlayerController {
	return &PlayerController{
		integrator: it,
		state:      state,
		mouse:      mouse,
		store:      store,
		last:       movement.Result{Pose: it.Pose(), Velocity: it.Velocity()},
	}
}

func (p *PlayerController) Start() {
	p.syncTransform()
}

func (p *PlayerController) Update(deltaTime float32) {
	if p.store.IsOpen() {
		return
	}
	p.last = p.integrator.Step(movement.Frame{
		Delta:     deltaTime,
		Intent:    p.state.Intent(),
		MouseLook: p.mouse.Look(),
		KeyLook:   p.state.LookRotation,
	})
	p.syncTransform()
}

func (p *PlayerController) syncTransform() {
	g := p.GetGameObject()
	if g == nil {
		return
	}
	pose := p.integrator.Pose()
	g.Transform.Position = pose.Position
	g.Transform.Rotation = rl.Vector3{X: pose.Pitch * rl.Rad2deg, Y: pose.Yaw * rl.Rad2deg}
}

// Pose is the committed camera pose.
func (p *PlayerController) Pose() camera.Pose {
	return p.integrator.Pose()
}

// LastStep reports what the most recent unfrozen frame did.
func (p *PlayerController) LastStep() movement.Result {
	return p.last
}

func (p *PlayerController) Velocity() rl.Vector3 {
	return p.integrator.Velocity()
}

// EyePosition implements engine.PoseProvider.
func (p *PlayerController) EyePosition() (x, y, z float32) {
	pos := p.integrator.Pose().Position
	return pos.X, pos.Y, pos.Z
}

// LookAngles implements engine.PoseProvider.
func (p *PlayerController) LookAngles() (yaw, pitch float32) {
	pose := p.integrator.Pose()
	return pose.Yaw, pose.Pitch
}
