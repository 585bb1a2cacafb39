// Package engine is the small object model the showroom scene is built
// from: game objects carrying components, grouped in a scene, plus
// multicast events with scoped subscriptions.
package engine

// Component is per-object behaviour. Start runs once before the first
// Update; Update runs every frame while the owner is active.
type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Destroyer components release subscriptions or registrations when their
// object leaves the scene.
type Destroyer interface {
	OnDestroy()
}

// PoseProvider is implemented by whatever owns the viewpoint.
type PoseProvider interface {
	EyePosition() (x, y, z float32)
	LookAngles() (yaw, pitch float32)
}

// BaseComponent is embedded to get no-op lifecycle methods and the owner
// back-reference.
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start()                      {}
func (b *BaseComponent) Update(deltaTime float32)    {}
func (b *BaseComponent) SetGameObject(g *GameObject) { b.gameObject = g }
func (b *BaseComponent) GetGameObject() *GameObject  { return b.gameObject }
