// Package selection owns the selected product (popup open) and the product
// currently under the crosshair.
package selection

import (
	"showroom/internal/catalog"
	"showroom/internal/engine"
)

// Snapshot is the full selection state after a transition.
type Snapshot struct {
	Selected *catalog.Product
	Hovered  string
}

// Open reports whether a product popup is showing.
func (s Snapshot) Open() bool {
	return s.Selected != nil
}

// Store is the single writer of selection state. It is not safe for
// concurrent use; all calls happen on the frame loop.
type Store struct {
	selected *catalog.Product
	hovered  string

	// Changed fires after every transition that altered the state.
	Changed engine.EventWithArg[Snapshot]
}

func NewStore() *Store {
	return &Store{}
}

// Select opens the popup for p and clears the hover name.
// It returns false and does nothing while another product is already selected.
func (s *Store) Select(p catalog.Product) bool {
	if s.selected != nil {
		return false
	}
	s.selected = &p
	s.hovered = ""
	s.notify()
	return true
}

// Close dismisses the popup. Returns false if nothing was selected.
func (s *Store) Close() bool {
	if s.selected == nil {
		return false
	}
	s.selected = nil
	s.notify()
	return true
}

// SetHovered records the product name under the crosshair.
// Ignored while a popup is open.
func (s *Store) SetHovered(name string) {
	if s.selected != nil || s.hovered == name {
		return
	}
	s.hovered = name
	s.notify()
}

// ClearHovered forgets the hovered product.
func (s *Store) ClearHovered() {
	if s.hovered == "" {
		return
	}
	s.hovered = ""
	s.notify()
}

// Selected returns the selected product, if any.
func (s *Store) Selected() (catalog.Product, bool) {
	if s.selected == nil {
		return catalog.Product{}, false
	}
	return *s.selected, true
}

func (s *Store) HoveredName() string {
	return s.hovered
}

func (s *Store) IsOpen() bool {
	return s.selected != nil
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{Hovered: s.hovered}
	if s.selected != nil {
		p := *s.selected
		snap.Selected = &p
	}
	return snap
}

func (s *Store) notify() {
	s.Changed.Invoke(s.Snapshot())
}
