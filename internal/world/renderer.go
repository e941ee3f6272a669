package world

import (
	"diorama/internal/components"
	"diorama/internal/drag"
	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws the scene's boxes and, optionally, the drag debug overlay.
type Renderer struct {
	ShowBounds bool
	ShowProbes bool

	probe *drag.Carrier
}

func NewRenderer(w *World) *Renderer {
	return &Renderer{probe: drag.NewCarrier(w, w.Tuning, nil)}
}

// Draw must run between rl.BeginMode3D and rl.EndMode3D.
func (r *Renderer) Draw(w *World) {
	w.each(func(g *engine.GameObject) {
		if renderer := engine.GetComponent[*components.BoxRenderer](g); renderer != nil {
			renderer.Draw()
		}
	})

	if !r.ShowBounds && !r.ShowProbes {
		return
	}
	for _, d := range w.Registry.All() {
		bounds := d.Bounds()
		if r.ShowBounds {
			color := rl.Green
			if d.State() == drag.Dragging {
				color = rl.Orange
			}
			rl.DrawBoundingBox(rl.BoundingBox{Min: bounds.Min, Max: bounds.Max}, color)
		}
		if r.ShowProbes {
			probe := r.probe.Probe(bounds)
			rl.DrawBoundingBox(rl.BoundingBox{Min: probe.Min, Max: probe.Max}, rl.Fade(rl.Magenta, 0.6))
		}
	}
}
