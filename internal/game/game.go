// Package game owns the window and the frame loop: it polls input, steps
// the world and draws the scene and overlays in a fixed order.
package game

import (
	"fmt"
	"log/slog"
	"time"

	"showroom/internal/audio"
	"showroom/internal/catalog"
	"showroom/internal/config"
	"showroom/internal/engine"
	"showroom/internal/input"
	"showroom/internal/selection"
	"showroom/internal/ui"
	"showroom/internal/world"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	padButtonSize = 56
	padMargin     = 24
	clearColor    = 0xDBEAFEFF
)

// Options configures New. Zero values fall back to live implementations.
type Options struct {
	Config  *config.Config
	Catalog *catalog.Catalog
	Logger  *slog.Logger
	// Capture defaults to the raylib cursor lock.
	Capture input.PointerCapture
	// Cues defaults to the configured audio device, opened by Run.
	Cues *audio.Cues
}

type Game struct {
	Config     *config.Config
	PresetName string

	Store  *selection.Store
	State  *input.State
	Look   *input.LookAnimator
	Mouse  *input.MouseLook
	Events *input.Events
	Router *input.Router
	World  *world.World
	Pad    *input.ControlPad
	HUD    *ui.HUD
	Popup  *ui.Popup
	Cues   *audio.Cues

	DebugMode bool

	capture input.PointerCapture
	scope   engine.Scope
	closed  bool
	log     *slog.Logger
	width   float32
	height  float32

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New builds the showroom for the configured preset. Nothing here needs a
// window, so a Game can be driven headless through its Events.
func New(opts Options) (*Game, error) {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Capture == nil {
		opts.Capture = input.NewCursorCapture()
	}

	cfg := opts.Config
	preset, err := cfg.ActivePreset()
	if err != nil {
		return nil, err
	}
	look := preset.Look()

	g := &Game{
		Config:     cfg,
		PresetName: cfg.Movement.Preset,
		Store:      selection.NewStore(),
		State:      &input.State{},
		Look:       input.NewLookAnimator(look.KeyRate, look.KeyPitchLimit),
		Mouse:      input.NewMouseLook(look.MouseSensitivity, look.MousePitchLimit),
		Events:     &input.Events{},
		Pad:        input.NewControlPad(padButtonSize, padMargin),
		HUD:        ui.NewHUD(cfg.Window.Title, cfg.Movement.Preset),
		Cues:       opts.Cues,
		capture:    opts.Capture,
		log:        opts.Logger,
	}
	g.Popup = ui.NewPopup(g.Store, g.log)

	g.World, err = world.New(world.Deps{
		PresetName: g.PresetName,
		Preset:     preset,
		Catalog:    opts.Catalog,
		Store:      g.Store,
		State:      g.State,
		Mouse:      g.Mouse,
		FOV:        cfg.Window.FOV,
		Logger:     g.log,
	})
	if err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}

	g.Router = input.NewRouter(input.RouterDeps{
		State:       g.State,
		Look:        g.Look,
		Mouse:       g.Mouse,
		Capture:     g.capture,
		Store:       g.Store,
		Keys:        input.DefaultKeyboard(),
		Picker:      g.World.Raycaster,
		SettleDelay: look.SettleDelay,
		Logger:      g.log,
	})
	g.Router.Attach(g.Events)
	g.bind()

	g.Resize(float32(cfg.Window.Width), float32(cfg.Window.Height))
	return g, nil
}

// Resize lays out the screen-space controls for a new window size.
func (g *Game) Resize(w, h float32) {
	g.width, g.height = w, h
	g.Pad.Layout(w, h)
	g.Popup.Layout(w, h)
}

// OverUI reports whether a free-cursor click at pt belongs to an overlay
// rather than the scene.
func (g *Game) OverUI(pt rl.Vector2) bool {
	if g.Config.Window.ShowControls && !g.Store.IsOpen() && g.Pad.Contains(pt) {
		return true
	}
	return g.Popup.Contains(pt)
}

// Pointer feeds the free cursor to the on-screen control pad.
// The pad is inert while the popup is open.
func (g *Game) Pointer(pos rl.Vector2, down bool) {
	if !g.Config.Window.ShowControls || g.capture.Captured() || g.Store.IsOpen() {
		return
	}
	g.Pad.Update(pos, down, g.Router)
}

// Update advances one frame after input has been dispatched: look
// animation and mouse settling, then the world, then overlays.
func (g *Game) Update(deltaTime float32) {
	updateStart := time.Now()

	g.Look.Tick(deltaTime, g.State)
	g.Mouse.Tick(deltaTime)
	// Cues fired during the world step are heard from the last drawn pose.
	if g.Cues != nil {
		g.Cues.SetListener(g.World.Camera.Pose())
	}
	g.World.Update(deltaTime)
	g.HUD.Update(deltaTime)

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() error {
	focus, ok := g.capture.(input.FocusCapture)
	if !ok {
		return fmt.Errorf("pointer capture %T cannot report window focus", g.capture)
	}

	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(g.Config.Window.Width, g.Config.Window.Height, g.Config.Window.Title)
	defer rl.CloseWindow()

	// Esc closes the popup or releases the mouse, never the window.
	rl.SetExitKey(0)
	rl.SetTargetFPS(g.Config.Window.TargetFPS)
	ui.InitStyle()

	if g.Cues == nil {
		cues, err := audio.NewCues(audio.Config{
			Enabled: g.Config.Audio.Enabled,
			Volume:  g.Config.Audio.Volume,
			Logger:  g.log,
		})
		if err != nil {
			g.log.Warn("audio disabled", "err", err)
		}
		g.Cues = cues
	}
	defer g.Close()

	poller := input.NewPoller(input.DefaultKeyboard(), focus)
	poller.OverUI = g.OverUI
	g.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))

	g.log.Info("showroom running", "preset", g.PresetName, "products", len(g.World.Displays))
	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			g.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
		}
		if rl.IsKeyPressed(rl.KeyF1) {
			g.DebugMode = !g.DebugMode
		}

		poller.Poll(g.Events)
		g.Pointer(rl.GetMousePosition(), rl.IsMouseButtonDown(rl.MouseButtonLeft))
		g.Update(rl.GetFrameTime())
		g.Draw()
	}
	return nil
}

func (g *Game) Draw() {
	drawStart := time.Now()

	rl.BeginDrawing()
	rl.ClearBackground(rl.GetColor(clearColor))

	cam := g.World.CameraPose()
	rl.BeginMode3D(cam)
	g.World.Draw(g.width / g.height)
	rl.EndMode3D()

	open := g.Store.IsOpen()
	if !open {
		ui.DrawDisplayLabels(cam, g.World.Displays)
	}
	g.HUD.Draw(g.width, g.height, g.Store.Snapshot(), g.capture.Captured())
	if g.Config.Window.ShowControls {
		ui.DrawControlPad(g.Pad, open)
	}
	g.Popup.Draw(g.width, g.height)

	if g.DebugMode {
		g.drawDebug()
	}

	rl.EndDrawing()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0
}

func (g *Game) drawDebug() {
	x := int32(g.width) - 230
	rl.DrawRectangle(x, 10, 220, 132, rl.NewColor(0, 0, 0, 160))
	rl.DrawFPS(x+10, 18)
	rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), x+10, 42, 16, rl.White)
	rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), x+10, 62, 16, rl.White)
	rl.DrawText(fmt.Sprintf("Visible: %d/%d", g.World.Visible(g.width/g.height), len(g.World.Displays)), x+10, 82, 16, rl.White)
	p := g.World.Controller.Pose().Position
	rl.DrawText(fmt.Sprintf("Pos: %.1f, %.1f, %.1f", p.X, p.Y, p.Z), x+10, 100, 14, rl.LightGray)
	rl.DrawText(g.stepSummary(), x+10, 118, 14, rl.LightGray)
}

// stepSummary describes the collisions of the last player step.
func (g *Game) stepSummary() string {
	step := g.World.Controller.LastStep()
	v := step.Velocity
	return fmt.Sprintf("Speed: %.2f  Hits: %d  Wall: %t", math32.Hypot(v.X, v.Z), step.Contacts, step.HitBounds)
}

// Close releases subscriptions, the scene and the audio device.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.Router.Detach()
	g.scope.Close()
	g.Pad.ReleaseAll(g.Router)
	g.capture.Release()
	g.World.Unload()
	if g.Cues != nil {
		g.Cues.Close()
	}
}
