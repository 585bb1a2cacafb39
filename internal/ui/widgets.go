package ui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Panel is a filled, optionally rounded and bordered rect.
type Panel struct {
	Color       rl.Color
	BorderColor rl.Color
	BorderWidth float32
	Radius      float32
}

func (p Panel) Draw(rect rl.Rectangle) {
	if p.Radius > 0 && rect.Height > 0 {
		roundness := p.Radius / rect.Height
		rl.DrawRectangleRounded(rect, roundness, 8, p.Color)
		if p.BorderWidth > 0 {
			rl.DrawRectangleRoundedLinesEx(rect, roundness, 8, p.BorderWidth, p.BorderColor)
		}
		return
	}
	rl.DrawRectangleRec(rect, p.Color)
	if p.BorderWidth > 0 {
		rl.DrawRectangleLinesEx(rect, p.BorderWidth, p.BorderColor)
	}
}

// Text draws a single line aligned inside rect and vertically centered.
func Text(rect rl.Rectangle, s string, size int32, color rl.Color, align Align) {
	if s == "" {
		return
	}
	width := float32(rl.MeasureText(s, size))
	var x float32
	switch align {
	case AlignCenter:
		x = rect.X + (rect.Width-width)/2
	case AlignRight:
		x = rect.X + rect.Width - width
	default:
		x = rect.X
	}
	y := rect.Y + (rect.Height-float32(size))/2
	rl.DrawText(s, int32(x), int32(y), size, color)
}

// Bar is a horizontal fill gauge.
type Bar struct {
	Background rl.Color
	Fill       rl.Color
	Border     rl.Color
}

// Fraction clamps value/limit into [0,1].
func Fraction(value, limit float32) float32 {
	if limit <= 0 {
		return 0
	}
	f := value / limit
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

func (b Bar) Draw(rect rl.Rectangle, value, limit float32) {
	rl.DrawRectangleRec(rect, b.Background)
	fill := rect
	fill.Width = rect.Width * Fraction(value, limit)
	rl.DrawRectangleRec(fill, b.Fill)
	rl.DrawRectangleLinesEx(rect, 1, b.Border)
}

// Wrap breaks s into lines no wider than width according to measure.
// Words longer than a line are kept whole on their own line.
func Wrap(s string, width float32, measure func(string) float32) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if measure(candidate) <= width {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}

// FlowLine is one wrapped line placed in a column. First marks the opening
// line of its paragraph.
type FlowLine struct {
	Row   rl.Rectangle
	Text  string
	First bool
}

// Flow wraps paragraphs into col, one line per lineHeight row and gap
// between paragraphs. Lines that would run past the bottom of col are
// dropped. It returns the placed lines and the space left below them.
func Flow(col rl.Rectangle, paragraphs []string, lineHeight, gap float32, measure func(string) float32) ([]FlowLine, rl.Rectangle) {
	var out []FlowLine
	for _, para := range paragraphs {
		for i, line := range Wrap(para, col.Width, measure) {
			if col.Height < lineHeight {
				return out, col
			}
			var row rl.Rectangle
			row, col = splitRows(col, lineHeight)
			out = append(out, FlowLine{Row: row, Text: line, First: i == 0})
		}
		if gap > 0 {
			_, col = splitRows(col, min(gap, max(col.Height, 0)))
		}
	}
	return out, col
}

func measurer(size int32) func(string) float32 {
	return func(s string) float32 { return float32(rl.MeasureText(s, size)) }
}
