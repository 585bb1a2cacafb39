// Package crosshair hit-tests the view-center ray against product displays
// and turns the result into hover and selection.
package crosshair

import (
	"showroom/internal/camera"
	"showroom/internal/catalog"
	"showroom/internal/engine"
	"showroom/internal/physics"
	"showroom/internal/selection"
)

// Target is a display the crosshair can point at.
type Target interface {
	Product() catalog.Product
	// HitShape is the display's current world-space geometry.
	HitShape() physics.Shape
	SetHovered(hovered bool)
	// Clicked is called when the display's product becomes the selection.
	Clicked()
}

// DefaultMaxDistance bounds the crosshair ray. It is longer than the
// room's diagonal.
const DefaultMaxDistance = 100

// Raycaster keeps at most one target hovered: the nearest one hit.
type Raycaster struct {
	store       *selection.Store
	targets     []Target
	hovered     int
	MaxDistance float32

	// HoverChanged fires with the hovered product name, or "" when the
	// crosshair leaves every display.
	HoverChanged engine.EventWithArg[string]
	// Selected fires after a click promoted the hovered display.
	Selected engine.EventWithArg[catalog.Product]
}

func NewRaycaster(store *selection.Store) *Raycaster {
	return &Raycaster{store: store, hovered: -1, MaxDistance: DefaultMaxDistance}
}

func (r *Raycaster) Add(t Target) {
	r.targets = append(r.targets, t)
}

// Remove forgets t. If it was hovered, the hover is cleared.
func (r *Raycaster) Remove(t Target) {
	for i, existing := range r.targets {
		if existing != t {
			continue
		}
		if r.hovered == i {
			r.setHovered(-1)
		} else if r.hovered > i {
			r.hovered--
		}
		r.targets = append(r.targets[:i], r.targets[i+1:]...)
		return
	}
}

func (r *Raycaster) Len() int {
	return len(r.targets)
}

// Hovered returns the hovered target, or nil.
func (r *Raycaster) Hovered() Target {
	if r.hovered < 0 {
		return nil
	}
	return r.targets[r.hovered]
}

// Update casts the center ray from pose. While a product is selected the
// hover state is frozen.
func (r *Raycaster) Update(pose camera.Pose) {
	if r.store.IsOpen() {
		return
	}
	shapes := make([]physics.Shape, len(r.targets))
	for i, t := range r.targets {
		shapes[i] = t.HitShape()
	}
	idx, _, ok := physics.Nearest(pose.CenterRay(), r.MaxDistance, shapes)
	if !ok {
		idx = -1
	}
	r.setHovered(idx)
}

// Click promotes the hovered display to the selection. It reports
// whether a product was selected.
func (r *Raycaster) Click() bool {
	if r.store.IsOpen() || r.hovered < 0 {
		return false
	}
	t := r.targets[r.hovered]
	p := t.Product()
	if !r.store.Select(p) {
		return false
	}
	t.SetHovered(false)
	r.hovered = -1
	t.Clicked()
	r.Selected.Invoke(p)
	return true
}

func (r *Raycaster) setHovered(idx int) {
	if idx == r.hovered {
		return
	}
	if r.hovered >= 0 {
		r.targets[r.hovered].SetHovered(false)
	}
	r.hovered = idx
	if idx < 0 {
		r.store.ClearHovered()
		r.HoverChanged.Invoke("")
		return
	}
	t := r.targets[idx]
	t.SetHovered(true)
	name := t.Product().Name
	r.store.SetHovered(name)
	r.HoverChanged.Invoke(name)
}
