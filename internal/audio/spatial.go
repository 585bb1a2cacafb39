// Package audio plays short synthesized interface cues, panned toward the
// display that triggered them.
package audio

import (
	"showroom/internal/camera"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Listener represents the audio listener position and orientation
type Listener struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// ListenerFromPose places the listener at the camera.
func ListenerFromPose(p camera.Pose) Listener {
	return Listener{Position: p.Position, Forward: p.Forward(), Right: p.Right()}
}

// Spatialize returns the gain in [0,1] and the pan in [-1,1] (full left to
// full right) for a source heard by l. Gain falls off linearly to zero at
// maxDistance, and a source directly behind the listener plays at 70%.
func (l Listener) Spatialize(source rl.Vector3, maxDistance float32) (gain, pan float32) {
	toSource := rl.Vector3Subtract(source, l.Position)
	distance := rl.Vector3Length(toSource)
	if maxDistance <= 0 || distance >= maxDistance {
		return 0, 0
	}
	gain = 1 - distance/maxDistance
	if distance < 0.001 {
		return gain, 0
	}

	direction := rl.Vector3Scale(toSource, 1/distance)
	pan = math32.Max(-1, math32.Min(1, rl.Vector3DotProduct(direction, l.Right)))
	if front := rl.Vector3DotProduct(direction, l.Forward); front < 0 {
		gain *= 1 + 0.3*front
	}
	return gain, pan
}
