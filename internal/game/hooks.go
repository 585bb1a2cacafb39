package game

import (
	"showroom/internal/audio"
	"showroom/internal/catalog"
	"showroom/internal/selection"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// positioned is a crosshair target that has a place in the world.
type positioned interface {
	Position() rl.Vector3
}

// bind connects selection and crosshair events to audio cues and logging.
func (g *Game) bind() {
	wasOpen := g.Store.IsOpen()

	g.scope.Add(g.World.Raycaster.HoverChanged.Subscribe(func(name string) {
		if name == "" {
			return
		}
		if p, ok := g.World.Raycaster.Hovered().(positioned); ok {
			g.play(audio.CueHover, p.Position(), true)
		}
	}))

	g.scope.Add(g.World.Raycaster.Selected.Subscribe(func(p catalog.Product) {
		g.log.Debug("product selected", "product", p.ID, "name", p.Name)
	}))

	g.scope.Add(g.Store.Changed.Subscribe(func(snap selection.Snapshot) {
		open := snap.Open()
		switch {
		case open && !wasOpen:
			// Presses made through the pad are cleared by the router; drop
			// the buttons' own held flags so they do not re-press on close.
			g.Pad.ReleaseAll(g.Router)
			g.play(audio.CueOpen, rl.Vector3{}, false)
			g.log.Info("popup opened", "product", snap.Selected.ID)
		case !open && wasOpen:
			g.play(audio.CueClose, rl.Vector3{}, false)
			g.log.Info("popup closed")
		}
		wasOpen = open
	}))

	g.scope.Add(g.Popup.AddToCart.Subscribe(func(p catalog.Product) {
		g.log.Info("cart updated", "product", p.ID, "price", p.Price)
	}))
	g.scope.Add(g.Popup.Compare.Subscribe(func(p catalog.Product) {
		g.log.Info("compare requested", "product", p.ID)
	}))
	g.scope.Add(g.Popup.BuyNow.Subscribe(func(p catalog.Product) {
		g.log.Info("buy now requested", "product", p.ID, "price", p.Price)
	}))
}

func (g *Game) play(cue audio.Cue, pos rl.Vector3, spatial bool) {
	if g.Cues == nil {
		return
	}
	if spatial {
		g.Cues.PlayAt(cue, pos)
		return
	}
	g.Cues.Play(cue)
}
