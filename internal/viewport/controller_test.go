package viewport

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/matjam/smoothview/internal/geom"
	"github.com/matjam/smoothview/internal/types"
)

func newTestController(t *testing.T, cfg Config) (*Controller, *clockwork.FakeClock, *[]Notification) {
	t.Helper()

	clock := clockwork.NewFakeClockAt(epoch)
	c, err := NewController(cfg, geom.Sz(400, 400), WithClock(clock))
	if err != nil {
		t.Fatal(err)
	}

	var seen []Notification
	c.Subscribe(func(n Notification) {
		seen = append(seen, n)
	})
	return c, clock, &seen
}

func TestControllerNotifiesEveryMutation(t *testing.T) {
	c, _, seen := newTestController(t, DefaultConfig())

	c.OnImageLoaded(geom.Rect{W: 200, H: 200})
	c.ZoomIn(nil)
	c.ZoomIn(nil)
	c.PanBy(geom.Pt(10, 0))
	c.ResetView()
	c.FullView()
	c.OnResize(geom.Sz(600, 400))

	if len(*seen) != 7 {
		t.Fatalf("got %d notifications, want 7", len(*seen))
	}
	for i, n := range *seen {
		if n.Kind != GeometryChanged {
			t.Errorf("notification %d is %v", i, n.Kind)
		}
	}

	last := (*seen)[len(*seen)-1]
	if last.Transform != c.CurrentCombinedTransform() {
		t.Errorf("notification carries %v, controller reports %v", last.Transform, c.CurrentCombinedTransform())
	}
}

func TestControllerBlockWindow(t *testing.T) {
	c, clock, seen := newTestController(t, DefaultConfig())
	c.OnImageLoaded(geom.Rect{W: 200, H: 200})

	if !c.ZoomTo(1.5, nil) {
		t.Fatal("zoom to 150% rejected")
	}
	if !c.ZoomOut(nil) {
		t.Fatal("zoom out rejected")
	}
	if c.State().CombinedScale() != 1 || !c.Blocked() {
		t.Fatalf("after crossing: scale %g, blocked %v", c.State().CombinedScale(), c.Blocked())
	}
	if got := (*seen)[len(*seen)-1].Kind; got != ZoomBlocked {
		t.Errorf("last notification = %v, want zoom-blocked", got)
	}

	clock.Advance(250 * time.Millisecond)
	if c.ZoomOut(nil) {
		t.Error("zoom out accepted inside the block window")
	}

	clock.Advance(250 * time.Millisecond)
	if c.Blocked() {
		t.Error("still blocked after the delay")
	}
	if !c.ZoomOut(nil) || !near(c.State().CombinedScale(), 0.5) {
		t.Errorf("zoom out after the delay: scale %g", c.State().CombinedScale())
	}
}

func TestControllerTriggers(t *testing.T) {
	focal := geom.Pt(200, 200)

	tests := []struct {
		trigger types.ZoomTrigger
		amount  float64
		want    float64
	}{
		{types.ZoomTriggerButton, 2, 1.5},
		{types.ZoomTriggerKey, 2, 1.5},
		{types.ZoomTriggerKeyRepeat, 2, 1.1},
		{types.ZoomTriggerWheel, 120, 1.1},
		{types.ZoomTriggerPinch, 1.25, 1.25},
		{types.ZoomTriggerRaw, 3, 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.trigger), func(t *testing.T) {
			c, _, _ := newTestController(t, DefaultConfig())
			c.OnImageLoaded(geom.Rect{W: 200, H: 200})

			if !c.Zoom(tt.trigger, tt.amount, &focal) {
				t.Fatal("zoom rejected")
			}
			if got := c.State().CombinedScale(); !near(got, tt.want) {
				t.Errorf("scale = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestControllerInvertedWheel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InvertZoom = true
	c, _, _ := newTestController(t, cfg)
	c.OnImageLoaded(geom.Rect{W: 200, H: 200})

	c.ZoomWheel(120, nil)
	if got := c.State().CombinedScale(); !near(got, 0.9) {
		t.Errorf("inverted wheel scale = %g, want 0.9", got)
	}
}

func TestControllerPinchNoise(t *testing.T) {
	c, _, seen := newTestController(t, DefaultConfig())
	c.OnImageLoaded(geom.Rect{W: 200, H: 200})

	if c.ZoomPinch(1, nil) {
		t.Error("pinch of 1 applied")
	}
	if len(*seen) != 1 {
		t.Errorf("pinch noise produced notifications: %v", *seen)
	}
}

func TestNewControllerValidates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinZoom = 10
	cfg.MaxZoom = 1
	if _, err := NewController(cfg, geom.Sz(10, 10)); !errors.Is(err, ErrInvalidZoomBounds) {
		t.Errorf("err = %v, want ErrInvalidZoomBounds", err)
	}

	cfg = DefaultConfig()
	cfg.UseZoomLevels = true
	cfg.ZoomLevels = []float64{2, 1}
	if _, err := NewController(cfg, geom.Sz(10, 10)); !errors.Is(err, ErrInvalidZoomLevels) {
		t.Errorf("err = %v, want ErrInvalidZoomLevels", err)
	}

	for _, anchor := range []geom.Point{geom.Pt(-5, 10), geom.Pt(0, -0.5)} {
		cfg = DefaultConfig()
		cfg.PanAnchor = anchor
		if _, err := NewController(cfg, geom.Sz(10, 10)); !errors.Is(err, ErrInvalidPanAnchor) {
			t.Errorf("anchor %v: err = %v, want ErrInvalidPanAnchor", anchor, err)
		}
	}

	cfg = DefaultConfig()
	cfg.PanAnchor = geom.Pt(0, 25)
	if _, err := NewController(cfg, geom.Sz(10, 10)); err != nil {
		t.Errorf("anchor (0, 25) rejected: %v", err)
	}

	cfg = DefaultConfig()
	cfg.ZoomOutStep = 1.2
	if _, err := NewController(cfg, geom.Sz(10, 10)); !errors.Is(err, ErrInvalidZoomStep) {
		t.Errorf("err = %v, want ErrInvalidZoomStep", err)
	}
}
