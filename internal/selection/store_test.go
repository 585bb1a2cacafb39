package selection

import (
	"testing"

	"showroom/internal/catalog"
)

func product(id, name string) catalog.Product {
	return catalog.Product{ID: id, Name: name, Price: 1}
}

func TestSelectClearsHover(t *testing.T) {
	s := NewStore()
	s.SetHovered("Mac Pro")
	if s.HoveredName() != "Mac Pro" {
		t.Fatalf("Expected hovered name to be set, got %q", s.HoveredName())
	}

	if !s.Select(product("mac-pro", "Mac Pro")) {
		t.Fatal("Select should succeed when nothing is selected")
	}
	if s.HoveredName() != "" {
		t.Errorf("Select should clear hover, got %q", s.HoveredName())
	}
	p, ok := s.Selected()
	if !ok || p.ID != "mac-pro" {
		t.Errorf("Selected() = %+v, %v", p, ok)
	}
}

func TestSelectIsExclusive(t *testing.T) {
	s := NewStore()
	s.Select(product("a", "A"))

	if s.Select(product("b", "B")) {
		t.Error("second Select should be rejected while a product is open")
	}
	p, _ := s.Selected()
	if p.ID != "a" {
		t.Errorf("Expected first selection to remain, got %q", p.ID)
	}
}

func TestHoverSuppressedWhileOpen(t *testing.T) {
	s := NewStore()
	s.Select(product("a", "A"))
	s.SetHovered("B")
	if s.HoveredName() != "" {
		t.Errorf("hover must not change while popup is open, got %q", s.HoveredName())
	}

	s.Close()
	s.SetHovered("B")
	if s.HoveredName() != "B" {
		t.Errorf("hover should work after close, got %q", s.HoveredName())
	}
}

func TestCloseWithoutSelection(t *testing.T) {
	s := NewStore()
	if s.Close() {
		t.Error("Close should report false when nothing is open")
	}
	if s.IsOpen() {
		t.Error("store should not be open")
	}
}

func TestChangedEvent(t *testing.T) {
	s := NewStore()
	var got []Snapshot
	sub := s.Changed.Subscribe(func(snap Snapshot) { got = append(got, snap) })

	s.SetHovered("A")
	s.SetHovered("A") // no change
	s.Select(product("a", "A"))
	s.Close()
	s.ClearHovered() // already clear

	if len(got) != 3 {
		t.Fatalf("Expected 3 notifications, got %d", len(got))
	}
	if got[0].Hovered != "A" || got[0].Open() {
		t.Errorf("first snapshot = %+v", got[0])
	}
	if !got[1].Open() || got[1].Hovered != "" {
		t.Errorf("second snapshot = %+v", got[1])
	}
	if got[2].Open() {
		t.Errorf("third snapshot should be closed")
	}

	sub.Unsubscribe()
	s.SetHovered("B")
	if len(got) != 3 {
		t.Error("listener should not fire after unsubscribe")
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	s := NewStore()
	s.Select(product("a", "A"))
	snap := s.Snapshot()
	snap.Selected.Name = "mutated"

	p, _ := s.Selected()
	if p.Name != "A" {
		t.Error("snapshot should not alias store state")
	}
}
