package ui

import (
	"showroom/internal/selection"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	crosshairRadius = 12
	crosshairLine   = 16
	hoverScale      = 1.25
	pingPeriod      = 1.0
	tagWidthMin     = 180
	helpWidth       = 340
	helpLineHeight  = 22
)

// HelpLine is one row of the instructions panel.
type HelpLine struct {
	Key   string
	Text  string
	Color rl.Color
}

// HUD is the always-on overlay: crosshair, hover tag, instructions and
// footer. The crosshair is hidden while the popup is open.
type HUD struct {
	Title      string
	PresetName string
	elapsed    float32
}

func NewHUD(title, preset string) *HUD {
	return &HUD{Title: title, PresetName: preset}
}

func (h *HUD) Update(deltaTime float32) {
	h.elapsed += deltaTime
}

// InstructionLines lists the controls help. The last line depends on
// whether the popup is open and whether mouse look is active.
func InstructionLines(open, captured bool) []HelpLine {
	lines := []HelpLine{
		{Key: "W/A/S/D", Text: "Move around", Color: rl.White},
		{Key: "Arrow Keys", Text: "Look around", Color: rl.White},
		{Key: "Mouse", Text: "Look around (click to enable)", Color: rl.White},
		{Text: "Aim crosshair at products", Color: rl.NewColor(147, 197, 253, 255)},
		{Text: "Click to view product details", Color: rl.NewColor(134, 239, 172, 255)},
	}
	switch {
	case open:
		lines = append(lines, HelpLine{Text: "Mouse cursor enabled for popup interaction", Color: rl.NewColor(253, 224, 71, 255)})
	case captured:
		lines = append(lines, HelpLine{Text: "Press Esc to release the mouse", Color: rl.NewColor(253, 186, 116, 255)})
	default:
		lines = append(lines, HelpLine{Text: "Click anywhere to enable mouse look", Color: rl.NewColor(253, 186, 116, 255)})
	}
	return lines
}

func FooterText(open bool) string {
	if open {
		return "Interact with popup"
	}
	return "Aim and click to interact"
}

// CrosshairRadius is the ring radius, enlarged while a product is targeted.
func CrosshairRadius(hovering bool) float32 {
	if hovering {
		return crosshairRadius * hoverScale
	}
	return crosshairRadius
}

// HelpRect is where the instructions panel sits.
func HelpRect(lines int) rl.Rectangle {
	return At(topLeft, rl.Vector2{X: 16, Y: 16}, rl.Vector2{X: helpWidth, Y: float32(44 + lines*helpLineHeight)}).
		Rect(screenRect(0, 0))
}

// FooterRect is where the info footer sits for a screen of the given size.
func FooterRect(w, h float32) rl.Rectangle {
	return At(bottomCenter, rl.Vector2{Y: -16}, rl.Vector2{X: 260, Y: 52}).Rect(screenRect(w, h))
}

// TagRect is the hover tag box under the crosshair for a label of the
// given pixel width.
func TagRect(w, h, labelWidth float32) rl.Rectangle {
	width := math32.Max(tagWidthMin, labelWidth+24)
	return At(middleCenter, rl.Vector2{Y: 32 + 35}, rl.Vector2{X: width, Y: 70}).Rect(screenRect(w, h))
}

func (h *HUD) Draw(w, hgt float32, snap selection.Snapshot, captured bool) {
	open := snap.Open()
	if !open {
		h.drawCrosshair(w, hgt, snap.Hovered)
	}
	h.drawHelp(open, captured)
	h.drawFooter(w, hgt, open)
}

func (h *HUD) drawCrosshair(w, hgt float32, hovered string) {
	center := rl.Vector2{X: w / 2, Y: hgt / 2}
	hovering := hovered != ""
	color := colorIdle
	if hovering {
		color = colorDetect
	}

	r := CrosshairRadius(hovering)
	fill := color
	fill.A = 40
	rl.DrawCircleV(center, r, fill)
	rl.DrawRing(center, r-2, r, 0, 360, 32, color)
	rl.DrawCircleV(center, 2, color)
	rl.DrawLineEx(rl.Vector2{X: center.X - crosshairLine, Y: center.Y}, rl.Vector2{X: center.X + crosshairLine, Y: center.Y}, 2, color)
	rl.DrawLineEx(rl.Vector2{X: center.X, Y: center.Y - crosshairLine}, rl.Vector2{X: center.X, Y: center.Y + crosshairLine}, 2, color)

	if !hovering {
		return
	}

	// Expanding ping ring.
	phase := math32.Mod(h.elapsed, pingPeriod) / pingPeriod
	ping := color
	ping.A = uint8(80 * (1 - phase))
	rl.DrawRingLines(center, 24+phase*16, 24+phase*16, 0, 360, 32, ping)

	label := float32(rl.MeasureText(hovered, 20))
	tag := TagRect(w, hgt, label)
	Panel{Color: colorHudBg, Radius: 8}.Draw(tag)
	rl.DrawTriangle(
		rl.Vector2{X: center.X, Y: tag.Y - 8},
		rl.Vector2{X: center.X - 8, Y: tag.Y},
		rl.Vector2{X: center.X + 8, Y: tag.Y},
		colorHudBg)

	rows := inset(tag, 6)
	row, rows := splitRows(rows, 16)
	Text(row, "PRODUCT DETECTED", 12, colorDetect, AlignCenter)
	row, rows = splitRows(rows, 24)
	Text(row, hovered, 20, rl.White, AlignCenter)
	Text(rows, "Click to view details", 12, colorTextLight, AlignCenter)
}

func (h *HUD) drawHelp(open, captured bool) {
	lines := InstructionLines(open, captured)
	rect := HelpRect(len(lines))
	Panel{Color: colorHudBg, Radius: 8}.Draw(rect)

	body := inset(rect, 14)
	row, body := splitRows(body, 26)
	Text(row, h.Title+" Controls", 20, rl.White, AlignLeft)

	for _, l := range lines {
		row, body = splitRows(body, helpLineHeight)
		x := row
		if l.Key != "" {
			kw := float32(rl.MeasureText(l.Key, 16)) + 8
			key := rl.Rectangle{X: row.X, Y: row.Y + 1, Width: kw, Height: helpLineHeight - 4}
			Panel{Color: rl.NewColor(75, 85, 99, 255), Radius: 3}.Draw(key)
			Text(key, l.Key, 16, rl.White, AlignCenter)
			x.X += kw + 6
			x.Width -= kw + 6
			Text(x, "- "+l.Text, 16, l.Color, AlignLeft)
			continue
		}
		Text(x, l.Text, 16, l.Color, AlignLeft)
	}
}

func (h *HUD) drawFooter(w, hgt float32, open bool) {
	rect := FooterRect(w, hgt)
	Panel{Color: colorHudBg, Radius: 8}.Draw(rect)
	rows := inset(rect, 6)
	row, rows := splitRows(rows, 20)
	title := "Premium Tech Showroom"
	if h.PresetName != "" {
		title += " - " + h.PresetName
	}
	Text(row, title, 16, rl.White, AlignCenter)
	Text(rows, FooterText(open), 12, colorTextLight, AlignCenter)
}
