package viewport

import (
	"math"
	"time"

	"github.com/matjam/smoothview/internal/geom"
)

// naturalTolerance keeps a view that was snapped to 100% from being seen
// as slightly below or above it on the next request.
const naturalTolerance = 1e-9

// State is the complete viewport geometry. It is a value: every transition
// returns a new State together with the notifications it caused.
//
// The screen position of an image pixel p is world(imgMatrix(p)).
type State struct {
	image     geom.Rect   // native image bounds
	viewport  geom.Size   // display area
	imgMatrix geom.Matrix // fit transform
	imgView   geom.Rect   // imgMatrix applied to image
	world     geom.Matrix // user pan/zoom
	unblockAt time.Time

	loaded bool
	fitted bool // imgMatrix belongs to the current image and a non-empty viewport
}

func NewState(viewport geom.Size) State {
	return State{
		viewport:  viewport,
		imgMatrix: geom.Identity(),
		world:     geom.Identity(),
	}
}

func (s State) Image() geom.Rect           { return s.image }
func (s State) Viewport() geom.Size        { return s.viewport }
func (s State) ImageMatrix() geom.Matrix   { return s.imgMatrix }
func (s State) ImageViewRect() geom.Rect   { return s.imgView }
func (s State) WorldMatrix() geom.Matrix   { return s.world }
func (s State) UnblockAt() time.Time       { return s.unblockAt }
func (s State) HasImage() bool             { return s.loaded }
func (s State) Blocked(now time.Time) bool { return now.Before(s.unblockAt) }

// CombinedTransform maps native image coordinates to the screen.
func (s State) CombinedTransform() geom.Matrix {
	return s.imgMatrix.Then(s.world)
}

// CombinedScale is the apparent zoom relative to native pixels.
func (s State) CombinedScale() float64 {
	return s.imgMatrix.Scale * s.world.Scale
}

// ImageWorldRect is the on-screen bounding box of the image.
func (s State) ImageWorldRect() geom.Rect {
	return s.world.MapRect(s.imgView)
}

// Pannable reports whether the user is zoomed in far enough that part of
// the image lies outside the viewport.
func (s State) Pannable() bool {
	if !s.loaded || s.world.Scale <= 1 {
		return false
	}
	return !s.viewport.Rect().Contains(s.ImageWorldRect())
}

// VisibleImageRegion returns the part of the image, in native image
// coordinates, that is currently on screen.
func (s State) VisibleImageRegion() geom.Rect {
	if !s.ready() {
		return geom.Rect{}
	}
	inv, ok := s.CombinedTransform().Inverted()
	if !ok {
		return geom.Rect{}
	}
	return inv.MapRect(s.viewport.Rect()).Intersect(s.image)
}

func (s State) ready() bool {
	return s.loaded && s.fitted && !s.viewport.IsEmpty()
}

func (s State) changed() Notification {
	return Notification{Kind: GeometryChanged, Transform: s.CombinedTransform()}
}

// Apply runs one event against the state. An empty notification list means
// the event was rejected or changed nothing.
func (s State) Apply(cfg Config, now time.Time, ev Event) (State, []Notification) {
	switch e := ev.(type) {
	case ZoomBy:
		return s.zoomBy(cfg, now, e.Factor, e.Focal, e.Force)
	case ZoomIn:
		f := cfg.Levels().NextFactor(s.CombinedScale(), cfg.ZoomInStep)
		return s.zoomBy(cfg, now, f, e.Focal, false)
	case ZoomOut:
		f := cfg.Levels().NextFactor(s.CombinedScale(), cfg.ZoomOutStep)
		return s.zoomBy(cfg, now, f, e.Focal, false)
	case Pan:
		return s.pan(cfg, now, e.Delta)
	case PanStep:
		x, y := e.Direction.Unit()
		step := cfg.PanStepPercent / 100
		return s.pan(cfg, now, geom.Pt(x*step*s.viewport.W, y*step*s.viewport.H))
	case Reset:
		if !s.loaded {
			return s, nil
		}
		s.world = geom.Identity()
		return s, []Notification{s.changed()}
	case FullView:
		return s.fullView(cfg)
	case Resize:
		return s.resize(cfg, e.Size)
	case ImageLoaded:
		return s.imageLoaded(cfg, e.Rect)
	case ImageUnloaded:
		return s.imageUnloaded()
	}
	return s, nil
}

func (s State) zoomBy(cfg Config, now time.Time, factor float64, focal *geom.Point, force bool) (State, []Notification) {
	if !s.ready() || !(factor > 0) || math.IsInf(factor, 0) || factor == 1 || s.Blocked(now) {
		return s, nil
	}

	if factor < 1 && s.world.Scale*factor < cfg.MinZoom {
		return s, nil
	}

	cs := s.CombinedScale()
	if !force {
		// zooming out across 100%: stop there and hold the gesture off
		if cs > 1+naturalTolerance && cs*factor < 1-naturalTolerance {
			s = s.snapToNatural(cfg)
			s.unblockAt = now.Add(cfg.BlockZoomDelay)
			return s, []Notification{
				s.changed(),
				{Kind: ZoomBlocked, Transform: s.CombinedTransform(), Until: s.unblockAt},
			}
		}
		if cs < 1-naturalTolerance && cs*factor > 1+naturalTolerance {
			s = s.snapToNatural(cfg)
			return s, []Notification{s.changed()}
		}
	}

	if factor > 1 && cs*factor > cfg.MaxZoom {
		return s, nil
	}

	s = s.scaleAt(cfg, factor, focal)
	return s, []Notification{s.changed()}
}

// snapToNatural resets the world matrix and, if the fit is not already at
// native size, zooms around the image center so that the combined scale is
// exactly 1.
func (s State) snapToNatural(cfg Config) State {
	s.world = geom.Identity()
	if is := s.imgMatrix.Scale; is > 0 && is != 1 {
		s = s.scaleAt(cfg, 1/is, nil)
	}
	return s
}

// scaleAt scales the world matrix by factor keeping the screen point focal
// in place, then clamps the position.
func (s State) scaleAt(cfg Config, factor float64, focal *geom.Point) State {
	pos := s.imgView.Center()
	if focal != nil {
		pos = *focal
	}

	inv, ok := s.world.Inverted()
	if !ok {
		return s
	}
	a := inv.Map(pos)

	s.world = s.world.Translate(a.X-factor*a.X, a.Y-factor*a.Y).Scaled(factor)
	s.world = s.clamp(cfg)
	return s
}

func (s State) clamp(cfg Config) geom.Matrix {
	lb, ub := ClampMargins(cfg, s.viewport)
	return ClampPosition(s.world, s.imgView, s.viewport, lb, ub)
}

func (s State) fullView(cfg Config) (State, []Notification) {
	if !s.loaded {
		return s, nil
	}
	s.world = geom.Identity()
	if s.ready() && s.imgMatrix.Scale > 0 {
		f := 1 / s.imgMatrix.Scale
		inBounds := !(f < 1 && f < cfg.MinZoom) && !(f > 1 && s.imgMatrix.Scale*f > cfg.MaxZoom)
		if f != 1 && inBounds {
			s = s.scaleAt(cfg, f, nil)
		}
	}
	return s, []Notification{s.changed()}
}

func (s State) pan(cfg Config, now time.Time, delta geom.Point) (State, []Notification) {
	if !s.ready() || s.Blocked(now) {
		return s, nil
	}

	r := s.ImageWorldRect()
	if r.W <= s.viewport.W {
		delta.X = 0
	}
	if r.H <= s.viewport.H {
		delta.Y = 0
	}
	if delta.X == 0 && delta.Y == 0 {
		return s, nil
	}

	s.world = s.world.Translate(delta.X/s.world.Scale, delta.Y/s.world.Scale)
	s.world = s.clamp(cfg)
	return s, []Notification{s.changed()}
}
