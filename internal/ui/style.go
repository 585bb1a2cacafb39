// Package ui draws the showroom's 2D layer: crosshair HUD, help panels,
// the product popup and the on-screen control pad.
package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Light theme for the popup, dark translucent chrome for the HUD.
var (
	colorCard        = rl.NewColor(255, 255, 255, 242)
	colorCardBorder  = rl.NewColor(226, 232, 240, 255)
	colorBackdrop    = rl.NewColor(0, 0, 0, 153)
	colorHudBg       = rl.NewColor(0, 0, 0, 204)
	colorTextDark    = rl.NewColor(31, 41, 55, 255)
	colorTextBody    = rl.NewColor(55, 65, 81, 255)
	colorTextMuted   = rl.NewColor(107, 114, 128, 255)
	colorTextLight   = rl.NewColor(209, 213, 219, 255)
	colorAccent      = rl.NewColor(37, 99, 235, 255)
	colorAccentHover = rl.NewColor(29, 78, 216, 255)
	colorPrice       = rl.NewColor(22, 163, 74, 255)
	colorStar        = rl.NewColor(250, 204, 21, 255)
	colorStockBg     = rl.NewColor(220, 252, 231, 255)
	colorStockText   = rl.NewColor(22, 101, 52, 255)
	colorSoldOutBg   = rl.NewColor(254, 226, 226, 255)
	colorSoldOutText = rl.NewColor(153, 27, 27, 255)
	colorInfoBg      = rl.NewColor(249, 250, 251, 255)
	colorDetect      = rl.NewColor(74, 222, 128, 255)
	colorIdle        = rl.NewColor(255, 255, 255, 178)
	colorHint        = rl.NewColor(37, 99, 235, 230)

	colorPadIdle   = rl.NewColor(60, 60, 70, 170)
	colorPadHeld   = rl.NewColor(100, 100, 120, 220)
	colorPadBorder = rl.NewColor(100, 100, 115, 255)
)

// InitStyle applies the popup theme to raygui. Call once after the window
// opens.
func InitStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorCard))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(243, 244, 246, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.NewColor(229, 231, 235, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextDark))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextDark))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(rl.White))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(colorCardBorder))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(colorCardBorder))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 18)
}
