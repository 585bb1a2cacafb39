package ui

import (
	"reflect"
	"strings"
	"testing"

	"showroom/internal/catalog"
	"showroom/internal/components"
	"showroom/internal/selection"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestAnchorRect(t *testing.T) {
	parent := screenRect(800, 600)
	tests := []struct {
		name   string
		anchor Anchor
		want   rl.Rectangle
	}{
		{
			name:   "top left with offset",
			anchor: At(topLeft, rl.Vector2{X: 16, Y: 16}, rl.Vector2{X: 100, Y: 50}),
			want:   rl.Rectangle{X: 16, Y: 16, Width: 100, Height: 50},
		},
		{
			name:   "centered",
			anchor: At(middleCenter, rl.Vector2{}, rl.Vector2{X: 200, Y: 100}),
			want:   rl.Rectangle{X: 300, Y: 250, Width: 200, Height: 100},
		},
		{
			name:   "top right pivot",
			anchor: At(topRight, rl.Vector2{X: -10, Y: 10}, rl.Vector2{X: 50, Y: 20}),
			want:   rl.Rectangle{X: 740, Y: 10, Width: 50, Height: 20},
		},
		{
			name:   "bottom center",
			anchor: At(bottomCenter, rl.Vector2{Y: -16}, rl.Vector2{X: 260, Y: 52}),
			want:   rl.Rectangle{X: 270, Y: 532, Width: 260, Height: 52},
		},
		{
			name: "stretched with inset",
			anchor: Anchor{
				Min:    rl.Vector2{X: 0, Y: 0},
				Max:    rl.Vector2{X: 1, Y: 1},
				Offset: rl.Vector2{X: 10, Y: 10},
				Size:   rl.Vector2{X: -20, Y: -20},
			},
			want: rl.Rectangle{X: 10, Y: 10, Width: 780, Height: 580},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.anchor.Rect(parent); got != tt.want {
				t.Errorf("Rect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func inside(outer, inner rl.Rectangle) bool {
	return inner.X >= outer.X && inner.Y >= outer.Y &&
		inner.X+inner.Width <= outer.X+outer.Width &&
		inner.Y+inner.Height <= outer.Y+outer.Height
}

func overlap(a, b rl.Rectangle) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width && a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}

func TestLayoutPopup(t *testing.T) {
	for _, size := range []rl.Vector2{{X: 1280, Y: 720}, {X: 1920, Y: 1080}, {X: 800, Y: 600}} {
		l := LayoutPopup(size.X, size.Y)
		screen := screenRect(size.X, size.Y)

		if !inside(screen, l.Card) {
			t.Errorf("%v: card %+v leaves the screen", size, l.Card)
		}
		if l.Card.Width > popupMaxWidth || l.Card.Height > popupMaxHeight {
			t.Errorf("%v: card %+v larger than the maximum", size, l.Card)
		}
		for name, r := range map[string]rl.Rectangle{
			"close": l.Close, "add to cart": l.AddToCart, "compare": l.Compare,
			"continue": l.Continue, "buy now": l.BuyNow,
		} {
			if !inside(l.Card, r) {
				t.Errorf("%v: %s button %+v outside card %+v", size, name, r, l.Card)
			}
		}
		if overlap(l.AddToCart, l.Compare) {
			t.Errorf("%v: add to cart and compare overlap", size)
		}
		if overlap(l.Continue, l.BuyNow) {
			t.Errorf("%v: continue and buy now overlap", size)
		}
		if overlap(l.Left, l.Right) {
			t.Errorf("%v: columns overlap", size)
		}
	}
}

func TestPopupContainsOnlyWhileOpen(t *testing.T) {
	store := selection.NewStore()
	p := NewPopup(store, nil)
	p.Layout(1280, 720)
	center := rl.Vector2{X: 640, Y: 360}

	if p.Contains(center) {
		t.Error("closed popup should not contain points")
	}
	store.Select(catalog.Product{ID: "ipad-pro", Name: "iPad Pro"})
	if !p.Contains(center) {
		t.Error("open popup should contain the screen center")
	}
	if p.Contains(rl.Vector2{X: 2, Y: 2}) {
		t.Error("screen corner is outside the card")
	}
}

func TestWrap(t *testing.T) {
	// one unit per rune
	measure := func(s string) float32 { return float32(len(s)) }
	tests := []struct {
		name  string
		text  string
		width float32
		want  []string
	}{
		{"empty", "   ", 10, nil},
		{"fits", "hello world", 20, []string{"hello world"}},
		{"breaks", "the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"long word kept", "a supercalifragilistic b", 6, []string{"a", "supercalifragilistic", "b"}},
		{"collapses spaces", "a   b", 10, []string{"a b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.width, measure)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Wrap(%q, %v) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestFlowStopsAtColumnBottom(t *testing.T) {
	measure := func(s string) float32 { return float32(len(s)) }
	col := rl.Rectangle{X: 10, Y: 100, Width: 10, Height: 50}
	paragraphs := []string{
		"the quick brown fox",
		"jumps over the lazy dog",
	}

	lines, rest := Flow(col, paragraphs, 20, 6, measure)
	if len(lines) != 2 {
		t.Fatalf("placed %d lines, want the 2 that fit", len(lines))
	}
	for _, l := range lines {
		if l.Row.Y+l.Row.Height > col.Y+col.Height {
			t.Errorf("line %q at y=%v overflows the column", l.Text, l.Row.Y)
		}
	}
	if !lines[0].First || lines[1].First {
		t.Errorf("First flags = %v, %v; want true, false", lines[0].First, lines[1].First)
	}
	if rest.Height >= 20 {
		t.Errorf("rest height = %v, want less than one line", rest.Height)
	}
}

func TestFlowSeparatesParagraphs(t *testing.T) {
	measure := func(s string) float32 { return float32(len(s)) }
	col := rl.Rectangle{Width: 100, Height: 200}

	lines, rest := Flow(col, []string{"one", "two"}, 20, 6, measure)
	if len(lines) != 2 {
		t.Fatalf("placed %d lines, want 2", len(lines))
	}
	if got := lines[1].Row.Y - lines[0].Row.Y; got != 26 {
		t.Errorf("paragraph step = %v, want 26", got)
	}
	if !lines[1].First {
		t.Error("second paragraph should open with a First line")
	}
	if rest.Y != 52 || rest.Height != 148 {
		t.Errorf("rest = %+v, want y=52 height=148", rest)
	}
}

func TestFraction(t *testing.T) {
	tests := []struct {
		value, limit, want float32
	}{
		{2.5, 5, 0.5},
		{-1, 5, 0},
		{7, 5, 1},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := Fraction(tt.value, tt.limit); got != tt.want {
			t.Errorf("Fraction(%v, %v) = %v, want %v", tt.value, tt.limit, got, tt.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{999, "$999"},
		{2499, "$2,499"},
		{249.99, "$249.99"},
		{1599.5, "$1,599.50"},
		{6999, "$6,999"},
		{0, "$0"},
		{1234567, "$1,234,567"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.price); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestLabels(t *testing.T) {
	if StockLabel(true) != "In Stock" || StockLabel(false) != "Out of Stock" {
		t.Errorf("stock labels = %q / %q", StockLabel(true), StockLabel(false))
	}
	if got := RatingLabel(4.8); got != "(4.8/5 stars)" {
		t.Errorf("RatingLabel(4.8) = %q", got)
	}
	if FooterText(true) == FooterText(false) {
		t.Error("footer should change when the popup opens")
	}
}

func TestInstructionLines(t *testing.T) {
	last := func(open, captured bool) string {
		lines := InstructionLines(open, captured)
		return lines[len(lines)-1].Text
	}
	if got := last(false, false); !strings.Contains(got, "enable mouse look") {
		t.Errorf("idle hint = %q", got)
	}
	if got := last(false, true); !strings.Contains(got, "Esc") {
		t.Errorf("captured hint = %q", got)
	}
	if got := last(true, true); !strings.Contains(got, "popup") {
		t.Errorf("popup hint = %q", got)
	}
	if len(InstructionLines(false, false)) != len(InstructionLines(true, false)) {
		t.Error("help panel height should not depend on state")
	}
}

func TestCrosshairAndPad(t *testing.T) {
	if CrosshairRadius(true) <= CrosshairRadius(false) {
		t.Error("hovering should enlarge the crosshair")
	}
	if PadColor(true) == PadColor(false) {
		t.Error("held buttons should be highlighted")
	}
}

func TestLabelRange(t *testing.T) {
	d := components.NewProductDisplay(catalog.Product{ID: "ipad-pro", Name: "iPad Pro"}, rl.Vector3{Y: 1.5, Z: -10})
	anchor := LabelAnchor(d)
	if anchor.Y <= d.Position().Y {
		t.Errorf("label anchor %v not above display %v", anchor, d.Position())
	}

	facing := rl.Camera3D{Position: rl.Vector3{Y: 1.7}, Target: rl.Vector3{Y: 1.7, Z: -1}, Up: rl.Vector3{Y: 1}}
	if !InLabelRange(facing, anchor) {
		t.Error("label ahead and near should be in range")
	}
	away := facing
	away.Target = rl.Vector3{Y: 1.7, Z: 1}
	if InLabelRange(away, anchor) {
		t.Error("label behind the camera should be out of range")
	}
	far := facing
	far.Position.Z = 30
	far.Target.Z = 29
	if InLabelRange(far, anchor) {
		t.Error("distant label should be out of range")
	}
}
