package engine

import (
	"slices"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var lastID atomic.Uint64

// Transform is an object's placement. Rotation is Euler degrees.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3
	Scale    rl.Vector3
}

// GameObject is a named, taggable holder of components.
type GameObject struct {
	ID        uint64
	Name      string
	Tags      []string
	Transform Transform
	Active    bool
	Scene     *Scene

	components []Component
	started    bool
}

func NewGameObject(name string, tags ...string) *GameObject {
	return &GameObject{
		ID:        lastID.Add(1),
		Name:      name,
		Tags:      tags,
		Active:    true,
		Transform: Transform{Scale: rl.Vector3{X: 1, Y: 1, Z: 1}},
	}
}

// AddComponent attaches components in order. Components added after Start
// are not started automatically.
func (g *GameObject) AddComponent(cs ...Component) {
	for _, c := range cs {
		c.SetGameObject(g)
		g.components = append(g.components, c)
	}
}

// GetComponent returns the first component of concrete type T.
func GetComponent[T Component](g *GameObject) T {
	return FindComponent[T](g)
}

// FindComponent returns the first component that is a T, which may be any
// interface.
func FindComponent[T any](g *GameObject) T {
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	var zero T
	return zero
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	return slices.Contains(g.Tags, tag)
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	g.started = true
	for _, c := range g.components {
		c.Start()
	}
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

// Destroy runs OnDestroy hooks, last attached first.
func (g *GameObject) Destroy() {
	for _, c := range slices.Backward(g.components) {
		if d, ok := c.(Destroyer); ok {
			d.OnDestroy()
		}
	}
	g.started = false
}
