package viewport

import "github.com/matjam/smoothview/internal/geom"

// CenterImage centers every axis on which the image is smaller than the
// viewport. On the other axes a gap at the leading edge is closed first,
// otherwise a gap at the trailing edge.
func CenterImage(world geom.Matrix, imgView geom.Rect, viewport geom.Size) geom.Matrix {
	r := world.MapRect(imgView)
	s := world.Scale

	switch {
	case r.W < viewport.W:
		world = world.Translate(((viewport.W-r.W)*0.5-r.Left())/s, 0)
	case r.Left() > 0:
		world = world.Translate(-r.Left()/s, 0)
	case r.Right() < viewport.W:
		world = world.Translate((viewport.W-r.Right())/s, 0)
	}

	switch {
	case r.H < viewport.H:
		world = world.Translate(0, ((viewport.H-r.H)*0.5-r.Top())/s)
	case r.Top() > 0:
		world = world.Translate(0, -r.Top()/s)
	case r.Bottom() < viewport.H:
		world = world.Translate(0, (viewport.H-r.Bottom())/s)
	}

	return world
}
