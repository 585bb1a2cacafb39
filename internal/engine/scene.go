package engine

import "slices"

// Scene is an ordered set of game objects. Order is insertion order and
// is the order objects start in.
type Scene struct {
	Name        string
	GameObjects []*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{Name: name}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
}

// RemoveGameObject takes g out of the scene and destroys it. It reports
// false if g was not in the scene.
func (s *Scene) RemoveGameObject(g *GameObject) bool {
	i := slices.Index(s.GameObjects, g)
	if i < 0 {
		return false
	}
	s.GameObjects = slices.Delete(s.GameObjects, i, i+1)
	g.Destroy()
	g.Scene = nil
	return true
}

func (s *Scene) Len() int {
	return len(s.GameObjects)
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var found []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			found = append(found, g)
		}
	}
	return found
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

// Destroy tears down every object, last added first, and empties the scene.
func (s *Scene) Destroy() {
	for _, g := range slices.Backward(s.GameObjects) {
		g.Destroy()
		g.Scene = nil
	}
	s.GameObjects = nil
}
