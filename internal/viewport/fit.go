package viewport

import "github.com/matjam/smoothview/internal/geom"

// ComputeFit returns the aspect preserving transform that fits img into a
// viewport of the given size and centers it. The image is scaled by the
// constraining dimension so it is never cropped. A zero-area image gets a
// scale of 1.
func ComputeFit(img geom.Rect, viewport geom.Size) geom.Matrix {
	s := 1.0
	if img.W != 0 && img.H != 0 {
		ratioImg := img.W / img.H
		ratioWin := viewport.W / viewport.H
		if ratioImg > ratioWin {
			s = viewport.W / img.W
		} else {
			s = viewport.H / img.H
		}
	}

	m := geom.Identity().Scaled(s)
	view := m.MapRect(img)

	return m.Translate((viewport.W-view.W)*0.5/s, (viewport.H-view.H)*0.5/s)
}

// ImageMatrixFor picks the image matrix for the current configuration.
// Images that already fit inside the viewport are shown at their native
// size, centered, unless cfg.UpscaleSmall is set.
func ImageMatrixFor(cfg Config, img geom.Rect, viewport geom.Size) geom.Matrix {
	if cfg.UpscaleSmall || !viewport.Rect().Contains(img) {
		return ComputeFit(img, viewport)
	}

	return geom.Identity().Translate((viewport.W-img.W)*0.5, (viewport.H-img.H)*0.5)
}
