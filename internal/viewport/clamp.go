package viewport

import "github.com/matjam/smoothview/internal/geom"

// ClampMargins resolves the pan margins (lb for x, ub for y): the configured
// pan anchor wins, then scrollbar mode pins the edges, otherwise half the
// viewport may be left empty.
func ClampMargins(cfg Config, viewport geom.Size) (lb, ub float64) {
	switch {
	case cfg.PanAnchor.X != -1 && cfg.PanAnchor.Y != -1:
		return cfg.PanAnchor.X, cfg.PanAnchor.Y
	case cfg.ShowScrollbars:
		return 0, 0
	default:
		return viewport.W / 2, viewport.H / 2
	}
}

// ClampPosition keeps an image that is larger than the viewport from being
// dragged further than the margins. All four edges are tested against the
// rectangle as it was on entry.
func ClampPosition(world geom.Matrix, imgView geom.Rect, viewport geom.Size, lb, ub float64) geom.Matrix {
	r := world.MapRect(imgView)
	s := world.Scale

	wider := r.W > viewport.W
	taller := r.H > viewport.H

	if wider && r.Left() > lb {
		world = world.Translate((lb-r.Left())/s, 0)
	}
	if taller && r.Top() > ub {
		world = world.Translate(0, (ub-r.Top())/s)
	}
	if wider && r.Right() < viewport.W-lb {
		world = world.Translate(((viewport.W-lb)-r.Right())/s, 0)
	}
	if taller && r.Bottom() < viewport.H-ub {
		world = world.Translate(0, ((viewport.H-ub)-r.Bottom())/s)
	}

	return world
}
