package viewport

import (
	"time"

	"github.com/matjam/smoothview/internal/geom"
)

func (s State) resize(cfg Config, size geom.Size) (State, []Notification) {
	if size == s.viewport {
		return s, nil
	}
	s.viewport = size

	// an empty viewport keeps the last fit until a real size shows up
	if s.loaded && !size.IsEmpty() {
		s = s.refit(cfg)
	}
	return s, []Notification{s.changed()}
}

func (s State) imageLoaded(cfg Config, rect geom.Rect) (State, []Notification) {
	old, had := s.image, s.loaded

	s.image = rect
	s.loaded = true
	s.unblockAt = time.Time{}

	if !cfg.KeepZoom || !had || rect != old {
		s.world = geom.Identity()
		s.fitted = false
	}

	if !s.viewport.IsEmpty() {
		s = s.refit(cfg)
	}
	return s, []Notification{s.changed()}
}

func (s State) imageUnloaded() (State, []Notification) {
	if !s.loaded {
		return s, nil
	}
	return NewState(s.viewport), []Notification{NewState(s.viewport).changed()}
}

// refit recomputes the image matrix for the current image and viewport. If
// the user has zoomed, the world matrix is corrected so the apparent scale
// and the on-screen position of the image survive the new fit. The image
// is then centered.
func (s State) refit(cfg Config) State {
	oldMatrix, oldView, hadFit := s.imgMatrix, s.imgView, s.fitted

	s.imgMatrix = ImageMatrixFor(cfg, s.image, s.viewport)
	s.imgView = s.imgMatrix.MapRect(s.image)
	s.fitted = true

	if hadFit && s.world.Scale != 1 {
		sf := oldMatrix.Scale / s.imgMatrix.Scale
		dx := oldView.X/sf - s.imgView.X
		dy := oldView.Y/sf - s.imgView.Y

		s.world = s.world.Scaled(sf).Translate(dx, dy)
	}

	s.world = CenterImage(s.world, s.imgView, s.viewport)
	return s
}
