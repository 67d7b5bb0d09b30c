package viewport

import (
	"time"

	"github.com/matjam/smoothview/internal/geom"
	"github.com/matjam/smoothview/internal/types"
)

// Event is an input to State.Apply.
type Event interface {
	event()
}

// ZoomBy scales the view by a raw factor around Focal (screen coordinates).
// A nil Focal zooms around the center of the fitted image. Force skips the
// 100% snap.
type ZoomBy struct {
	Factor float64
	Focal  *geom.Point
	Force  bool
}

// ZoomIn and ZoomOut are the discrete steps. They go through the zoom level
// policy.
type ZoomIn struct{ Focal *geom.Point }
type ZoomOut struct{ Focal *geom.Point }

// Pan moves the view by Delta screen pixels.
type Pan struct{ Delta geom.Point }

// PanStep pans by a fixed fraction of the viewport.
type PanStep struct{ Direction types.PanDirection }

type Reset struct{}
type FullView struct{}

type Resize struct{ Size geom.Size }

type ImageLoaded struct{ Rect geom.Rect }
type ImageUnloaded struct{}

func (ZoomBy) event()        {}
func (ZoomIn) event()        {}
func (ZoomOut) event()       {}
func (Pan) event()           {}
func (PanStep) event()       {}
func (Reset) event()         {}
func (FullView) event()      {}
func (Resize) event()        {}
func (ImageLoaded) event()   {}
func (ImageUnloaded) event() {}

type NotificationKind int

const (
	// GeometryChanged follows every mutation of the transforms.
	GeometryChanged NotificationKind = iota
	// ZoomBlocked is sent when a zoom out crossed 100% and further zooming
	// is suppressed until Until.
	ZoomBlocked
)

func (k NotificationKind) String() string {
	switch k {
	case GeometryChanged:
		return "geometry-changed"
	case ZoomBlocked:
		return "zoom-blocked"
	}
	return "unknown"
}

type Notification struct {
	Kind      NotificationKind
	Transform geom.Matrix // combined transform after the change
	Until     time.Time   // end of the block window, ZoomBlocked only
}
