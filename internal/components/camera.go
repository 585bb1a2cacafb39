package components

import (
	"showroom/internal/camera"
	"showroom/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Camera struct {
	engine.BaseComponent
	FOV float32
}

func NewCamera(fov float32) *Camera {
	return &Camera{FOV: fov}
}

// Pose reads the viewpoint from a PoseProvider on the same object. Without
// one, the object's transform is used.
func (c *Camera) Pose() camera.Pose {
	g := c.GetGameObject()
	if g == nil {
		return camera.Pose{}
	}
	if pp := engine.FindComponent[engine.PoseProvider](g); pp != nil {
		x, y, z := pp.EyePosition()
		yaw, pitch := pp.LookAngles()
		return camera.Pose{Position: rl.Vector3{X: x, Y: y, Z: z}, Yaw: yaw, Pitch: pitch}
	}
	return camera.Pose{
		Position: g.Transform.Position,
		Yaw:      g.Transform.Rotation.Y * rl.Deg2rad,
		Pitch:    g.Transform.Rotation.X * rl.Deg2rad,
	}
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	return c.Pose().Camera3D(c.FOV)
}
