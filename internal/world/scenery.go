package world

import (
	"showroom/internal/components"
	"showroom/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Scenery is static decoration built from model parts. It never blocks the
// crosshair; collision with it is handled by the movement obstacles.
type Scenery struct {
	engine.BaseComponent

	Parts []components.Part
	// Radius bounds the parts around the object's origin for culling.
	Radius float32

	// Bob moves the object up and down by this amplitude, once per 2π seconds.
	Bob     float32
	elapsed float32
	baseY   float32
}

func NewScenery(radius float32, parts ...components.Part) *Scenery {
	return &Scenery{Parts: parts, Radius: radius}
}

func (s *Scenery) Start() {
	if g := s.GetGameObject(); g != nil {
		s.baseY = g.Transform.Position.Y
	}
}

func (s *Scenery) Update(deltaTime float32) {
	if s.Bob == 0 {
		return
	}
	s.elapsed += deltaTime
	if g := s.GetGameObject(); g != nil {
		g.Transform.Position.Y = s.baseY + math32.Sin(s.elapsed)*s.Bob
	}
}

func (s *Scenery) Draw() {
	g := s.GetGameObject()
	if g == nil {
		return
	}
	pos := g.Transform.Position
	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	for _, p := range s.Parts {
		p.Draw(false)
	}
	rl.PopMatrix()
}
