package viewport

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/matjam/smoothview/internal/geom"
	"github.com/matjam/smoothview/internal/types"
)

// Controller is the stateful front of the viewport. It is not safe for
// concurrent use: all calls are expected to come from one event loop.
type Controller struct {
	cfg   Config
	clock clockwork.Clock
	state State
	subs  []func(Notification)
}

type Option func(*Controller)

// WithClock injects the clock used for the zoom block window.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

// NewController creates a controller for a viewport of the given size.
func NewController(cfg Config, viewport geom.Size, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("viewport config: %w", err)
	}

	c := &Controller{
		cfg:   cfg,
		clock: clockwork.NewRealClock(),
		state: NewState(viewport),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Subscribe registers fn to receive every notification. Subscribers run
// synchronously on the caller's goroutine.
func (c *Controller) Subscribe(fn func(Notification)) {
	c.subs = append(c.subs, fn)
}

func (c *Controller) Config() Config { return c.cfg }
func (c *Controller) State() State   { return c.state }

// CurrentCombinedTransform maps native image pixels to the screen.
func (c *Controller) CurrentCombinedTransform() geom.Matrix {
	return c.state.CombinedTransform()
}

// Now reads the controller's clock. The clock is fixed at construction, so
// this is safe from any goroutine.
func (c *Controller) Now() time.Time {
	return c.clock.Now()
}

// Blocked reports whether zoom requests are currently being dropped.
func (c *Controller) Blocked() bool {
	return c.state.Blocked(c.clock.Now())
}

// Dispatch applies ev and fans out the resulting notifications. It reports
// whether anything changed.
func (c *Controller) Dispatch(ev Event) bool {
	next, notes := c.state.Apply(c.cfg, c.clock.Now(), ev)
	c.state = next

	if len(notes) == 0 {
		log.Debug("viewport event dropped", "event", fmt.Sprintf("%T", ev), "scale", c.state.CombinedScale())
		return false
	}

	for _, n := range notes {
		if n.Kind == ZoomBlocked {
			log.Debug("zoom blocked", "until", n.Until)
		}
		for _, fn := range c.subs {
			fn(n)
		}
	}
	return true
}

func (c *Controller) ZoomIn(focal *geom.Point) bool {
	return c.Dispatch(ZoomIn{Focal: focal})
}

func (c *Controller) ZoomOut(focal *geom.Point) bool {
	return c.Dispatch(ZoomOut{Focal: focal})
}

// ZoomTo applies a raw continuous zoom factor around focal.
func (c *Controller) ZoomTo(factor float64, focal *geom.Point) bool {
	return c.Dispatch(ZoomBy{Factor: factor, Focal: focal})
}

// ZoomWheel zooms by a mouse wheel angle delta.
func (c *Controller) ZoomWheel(angleDelta float64, focal *geom.Point) bool {
	return c.ZoomTo(WheelFactor(angleDelta, c.cfg.InvertZoom), focal)
}

// ZoomPinch zooms by a pinch gesture scale. Scales indistinguishable from 1
// are ignored.
func (c *Controller) ZoomPinch(scale float64, focal *geom.Point) bool {
	f, ok := PinchFactor(scale)
	if !ok {
		return false
	}
	return c.ZoomTo(f, focal)
}

// ZoomKey zooms by the keyboard step, the finer one on auto-repeat.
func (c *Controller) ZoomKey(in, autoRepeat bool) bool {
	return c.ZoomTo(c.cfg.KeyFactor(in, autoRepeat), nil)
}

// Zoom routes a request from the given input source.
func (c *Controller) Zoom(trigger types.ZoomTrigger, amount float64, focal *geom.Point) bool {
	switch trigger {
	case types.ZoomTriggerButton:
		if amount > 1 {
			return c.ZoomIn(focal)
		}
		return c.ZoomOut(focal)
	case types.ZoomTriggerKey:
		return c.ZoomKey(amount > 1, false)
	case types.ZoomTriggerKeyRepeat:
		return c.ZoomKey(amount > 1, true)
	case types.ZoomTriggerWheel:
		return c.ZoomWheel(amount, focal)
	case types.ZoomTriggerPinch:
		return c.ZoomPinch(amount, focal)
	default:
		return c.ZoomTo(amount, focal)
	}
}

// PanBy moves the view by delta screen pixels.
func (c *Controller) PanBy(delta geom.Point) bool {
	return c.Dispatch(Pan{Delta: delta})
}

// Pan moves the view one step in direction.
func (c *Controller) Pan(direction types.PanDirection) bool {
	return c.Dispatch(PanStep{Direction: direction})
}

func (c *Controller) ResetView() bool {
	return c.Dispatch(Reset{})
}

// FullView shows the image at its native pixel size.
func (c *Controller) FullView() bool {
	return c.Dispatch(FullView{})
}

func (c *Controller) OnResize(size geom.Size) bool {
	return c.Dispatch(Resize{Size: size})
}

func (c *Controller) OnImageLoaded(rect geom.Rect) bool {
	return c.Dispatch(ImageLoaded{Rect: rect})
}

func (c *Controller) OnImageUnloaded() bool {
	return c.Dispatch(ImageUnloaded{})
}
