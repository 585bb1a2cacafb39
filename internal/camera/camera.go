// Package camera holds the first-person viewpoint shared by the movement
// integrator, the crosshair raycaster and the renderer.
package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pose is the camera position plus its look angles in radians.
// Yaw turns about +Y (positive turns left), Pitch about the local X axis
// (positive looks up). Roll is always zero.
type Pose struct {
	Position rl.Vector3
	Yaw      float32
	Pitch    float32
}

// Rotate maps a camera-local vector into world space. Pitch is applied
// first and yaw second, so local -Z is the view direction.
func (p Pose) Rotate(v rl.Vector3) rl.Vector3 {
	sp, cp := math32.Sincos(p.Pitch)
	sy, cy := math32.Sincos(p.Yaw)

	// Pitch about X
	y1 := v.Y*cp - v.Z*sp
	z1 := v.Y*sp + v.Z*cp

	// Yaw about Y
	return rl.Vector3{
		X: v.X*cy + z1*sy,
		Y: y1,
		Z: -v.X*sy + z1*cy,
	}
}

// Forward returns the unit view direction (local -Z).
func (p Pose) Forward() rl.Vector3 {
	return p.Rotate(rl.Vector3{Z: -1})
}

// Right returns the unit right vector (local +X). It is always horizontal.
func (p Pose) Right() rl.Vector3 {
	return p.Rotate(rl.Vector3{X: 1})
}

// Up returns the camera up vector (local +Y).
func (p Pose) Up() rl.Vector3 {
	return p.Rotate(rl.Vector3{Y: 1})
}

// CenterRay is the ray from the eye through the middle of the viewport.
func (p Pose) CenterRay() rl.Ray {
	return rl.Ray{Position: p.Position, Direction: p.Forward()}
}

// Camera3D converts the pose into a raylib perspective camera with the
// given vertical field of view in degrees.
func (p Pose) Camera3D(fovy float32) rl.Camera3D {
	// Using the rotated up vector keeps the view matrix valid when looking
	// straight up or down.
	return rl.Camera3D{
		Position:   p.Position,
		Target:     rl.Vector3Add(p.Position, p.Forward()),
		Up:         p.Up(),
		Fovy:       fovy,
		Projection: rl.CameraPerspective,
	}
}

// ClampPitch limits a pitch angle to [-limit, limit].
func ClampPitch(pitch, limit float32) float32 {
	return math32.Max(-limit, math32.Min(limit, pitch))
}
