// Package world assembles the showroom scene: static layout, the player
// viewpoint and one display per catalog product.
package world

import (
	"fmt"
	"log/slog"

	"showroom/internal/catalog"
	"showroom/internal/components"
	"showroom/internal/config"
	"showroom/internal/crosshair"
	"showroom/internal/engine"
	"showroom/internal/input"
	"showroom/internal/movement"
	"showroom/internal/selection"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	PlayerName = "Player"
	TagDisplay = "display"
	TagScenery = "scenery"
)

// Deps is everything New needs to build a world.
type Deps struct {
	PresetName string
	Preset     config.PresetConfig
	Catalog    *catalog.Catalog
	Store      *selection.Store
	State      *input.State
	Mouse      *input.MouseLook
	FOV        float32
	Logger     *slog.Logger
}

type World struct {
	Scene      *engine.Scene
	Layout     string
	Preset     movement.Preset
	Player     *engine.GameObject
	Controller *components.PlayerController
	Camera     *components.Camera
	Raycaster  *crosshair.Raycaster
	Displays   []*components.ProductDisplay

	log *slog.Logger
}

// New validates the preset and builds the scene. It touches no GPU state,
// so it can run before the window exists.
func New(d Deps) (*World, error) {
	preset := d.Preset.Movement(d.PresetName)
	if err := preset.Validate(); err != nil {
		return nil, err
	}
	if d.Catalog == nil {
		d.Catalog = catalog.Default()
	}
	if d.Store == nil {
		d.Store = selection.NewStore()
	}
	if d.State == nil {
		d.State = &input.State{}
	}
	if d.Mouse == nil {
		look := d.Preset.Look()
		d.Mouse = input.NewMouseLook(look.MouseSensitivity, look.MousePitchLimit)
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	w := &World{
		Scene:     engine.NewScene(d.PresetName),
		Layout:    d.Preset.Layout,
		Preset:    preset,
		Raycaster: crosshair.NewRaycaster(d.Store),
		log:       d.Logger,
	}

	switch w.Layout {
	case config.LayoutHall:
		w.buildHall()
	case config.LayoutField:
		w.buildField()
	default:
		return nil, fmt.Errorf("%w %q: unknown layout %q", movement.ErrInvalidPreset, d.PresetName, w.Layout)
	}

	w.createPlayer(d, preset)
	w.createDisplays(d.Catalog)
	w.Scene.Start()

	w.log.Info("world built",
		"preset", d.PresetName,
		"layout", w.Layout,
		"displays", len(w.Displays),
		"objects", w.Scene.Len())
	return w, nil
}

func (w *World) createPlayer(d Deps, preset movement.Preset) {
	it := movement.New(movement.WithPreset(preset))
	w.Controller = components.NewPlayerController(it, d.State, d.Mouse, d.Store)
	w.Camera = components.NewCamera(d.FOV)

	w.Player = engine.NewGameObject(PlayerName)
	w.Player.AddComponent(w.Controller)
	w.Player.AddComponent(w.Camera)
	w.Scene.AddGameObject(w.Player)
}

func (w *World) createDisplays(c *catalog.Catalog) {
	for i, p := range c.Products() {
		if !catalog.Known(p.ID) {
			w.log.Warn("unknown product id, using generic model", "product", p.ID)
		}
		if i >= catalog.Slots() {
			w.log.Warn("no display slot left, using overflow position", "product", p.ID, "index", i)
		}
		display := components.NewProductDisplay(p, catalog.Placement(i))
		display.Registry = w.Raycaster

		g := engine.NewGameObject(p.Name)
		g.Tags = []string{TagDisplay}
		g.AddComponent(display)
		w.Scene.AddGameObject(g)

		w.Raycaster.Add(display)
		w.Displays = append(w.Displays, display)
	}
}

// Display returns the display showing the product with the given id.
func (w *World) Display(id string) *components.ProductDisplay {
	for _, d := range w.Displays {
		if d.Product().ID == id {
			return d
		}
	}
	return nil
}

// RemoveDisplay takes a product off the floor. Its crosshair registration
// is dropped by the display's own teardown.
func (w *World) RemoveDisplay(id string) bool {
	for i, d := range w.Displays {
		if d.Product().ID != id {
			continue
		}
		w.Displays = append(w.Displays[:i], w.Displays[i+1:]...)
		w.Scene.RemoveGameObject(d.GetGameObject())
		w.log.Debug("display removed", "product", id)
		return true
	}
	return false
}

// Update moves the player, resolves the crosshair against the committed
// pose, then animates scenery and displays. Hover therefore always matches
// the view drawn this frame.
func (w *World) Update(deltaTime float32) {
	w.Player.Update(deltaTime)
	w.Raycaster.Update(w.Camera.Pose())
	for _, tag := range []string{TagScenery, TagDisplay} {
		for _, g := range w.Scene.FindByTag(tag) {
			g.Update(deltaTime)
		}
	}
}

func (w *World) CameraPose() rl.Camera3D {
	return w.Camera.GetRaylibCamera()
}

// Draw renders everything the camera can see. The caller owns the
// BeginMode3D/EndMode3D pair.
func (w *World) Draw(aspect float32) {
	cam := w.CameraPose()
	frustum := ExtractFrustum(cam, aspect)

	for _, g := range w.Scene.FindByTag(TagScenery) {
		if s := engine.GetComponent[*Scenery](g); s != nil {
			if s.Radius > 0 && !frustum.ContainsSphere(g.Transform.Position, s.Radius) {
				continue
			}
			s.Draw()
		}
	}
	for _, d := range w.Displays {
		if !frustum.ContainsSphere(d.Position(), displayRadius*d.Scale()) {
			continue
		}
		d.Draw()
	}
}

// Visible counts the displays inside the current view.
func (w *World) Visible(aspect float32) int {
	frustum := ExtractFrustum(w.CameraPose(), aspect)
	n := 0
	for _, d := range w.Displays {
		if frustum.ContainsSphere(d.Position(), displayRadius*d.Scale()) {
			n++
		}
	}
	return n
}

func (w *World) Unload() {
	w.Scene.Destroy()
	w.Displays = nil
}
