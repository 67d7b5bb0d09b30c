package viewport

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/matjam/smoothview/internal/geom"
)

var (
	ErrInvalidZoomBounds = errors.New("invalid zoom bounds")
	ErrInvalidZoomLevels = errors.New("invalid zoom levels")
	ErrInvalidZoomStep   = errors.New("invalid zoom step")
	ErrInvalidPanAnchor  = errors.New("invalid pan anchor")
)

// DefaultZoomLevels are the stop points used for discrete zoom steps when
// UseZoomLevels is set.
var DefaultZoomLevels = []float64{
	0.0001, 0.001, 0.01, 0.05, 0.1, 0.125, 0.166, 0.25, 0.333, 0.5, 0.66,
	1, 1.5, 2, 3, 4, 5, 6, 7, 8, 10, 12, 16, 20, 32, 40, 48, 64, 96, 128,
}

// Config is the immutable viewport configuration. It is built once (see
// the cli package) and passed by value.
type Config struct {
	MinZoom float64 // lower bound for the world scale
	MaxZoom float64 // upper bound for the combined scale

	KeepZoom       bool // keep the world matrix when an image of equal size replaces the current one
	ShowScrollbars bool // pan margins collapse to 0
	InvertZoom     bool // flip wheel direction
	UpscaleSmall   bool // fit images smaller than the viewport instead of showing them at 100%

	UseZoomLevels bool
	ZoomLevels    []float64

	ZoomInStep     float64 // discrete zoom in (button, key press)
	ZoomOutStep    float64 // discrete zoom out
	RepeatInStep   float64 // key auto-repeat zoom in
	RepeatOutStep  float64 // key auto-repeat zoom out
	BlockZoomDelay time.Duration

	// PanAnchor overrides the clamp margins. A coordinate of -1 means unset.
	PanAnchor      geom.Point
	PanStepPercent float64
}

func DefaultConfig() Config {
	levels := make([]float64, len(DefaultZoomLevels))
	copy(levels, DefaultZoomLevels)

	return Config{
		MinZoom:        0.01,
		MaxZoom:        100,
		ZoomLevels:     levels,
		ZoomInStep:     1.5,
		ZoomOutStep:    0.5,
		RepeatInStep:   1.1,
		RepeatOutStep:  0.9,
		BlockZoomDelay: 500 * time.Millisecond,
		PanAnchor:      geom.Pt(-1, -1),
		PanStepPercent: 2,
	}
}

// Validate checks the configuration for values the controller cannot work
// with.
func (c Config) Validate() error {
	if c.MinZoom <= 0 || c.MaxZoom <= 0 || c.MinZoom >= c.MaxZoom {
		return fmt.Errorf("%w: min %g, max %g", ErrInvalidZoomBounds, c.MinZoom, c.MaxZoom)
	}

	if c.ZoomInStep <= 1 || c.RepeatInStep <= 1 {
		return fmt.Errorf("%w: zoom in steps must be > 1", ErrInvalidZoomStep)
	}
	if c.ZoomOutStep <= 0 || c.ZoomOutStep >= 1 || c.RepeatOutStep <= 0 || c.RepeatOutStep >= 1 {
		return fmt.Errorf("%w: zoom out steps must be in (0, 1)", ErrInvalidZoomStep)
	}

	for _, v := range []float64{c.PanAnchor.X, c.PanAnchor.Y} {
		if v != -1 && !(v >= 0) {
			return fmt.Errorf("%w: %g is neither -1 nor a margin >= 0", ErrInvalidPanAnchor, v)
		}
	}

	if c.UseZoomLevels && len(c.ZoomLevels) == 0 {
		return fmt.Errorf("%w: zoom levels enabled but none configured", ErrInvalidZoomLevels)
	}
	for _, l := range c.ZoomLevels {
		if l <= 0 {
			return fmt.Errorf("%w: level %g is not positive", ErrInvalidZoomLevels, l)
		}
	}
	if !sort.Float64sAreSorted(c.ZoomLevels) {
		return fmt.Errorf("%w: levels must be sorted ascending", ErrInvalidZoomLevels)
	}

	return nil
}

// Levels returns the zoom policy described by the configuration.
func (c Config) Levels() ZoomPolicy {
	return ZoomPolicy{Enabled: c.UseZoomLevels, Levels: c.ZoomLevels}
}
