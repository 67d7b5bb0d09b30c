package viewport

import "math"

// levelTolerance absorbs drift from repeated multiplication so that a scale
// of 1.4999999 is treated as sitting on the 1.5 level.
const levelTolerance = 1e-6

// pinchEpsilon is the smallest pinch deviation from 1 that is acted on.
const pinchEpsilon = 1.1920929e-07

// ZoomPolicy quantizes discrete zoom requests onto an ordered list of zoom
// levels.
type ZoomPolicy struct {
	Enabled bool
	Levels  []float64 // ascending
}

// NextFactor returns the factor that moves the combined scale current to the
// next level in the direction of delta (delta > 1 zooms in, delta < 1 zooms
// out). When the policy is disabled delta is returned unchanged. A factor of
// 1 means there is no level left in that direction.
func (p ZoomPolicy) NextFactor(current, delta float64) float64 {
	if !p.Enabled {
		return delta
	}
	if current <= 0 || delta <= 0 {
		return 1
	}

	switch {
	case delta > 1:
		for _, l := range p.Levels {
			if current < l*(1-levelTolerance) {
				return l / current
			}
		}
	case delta < 1:
		for i := len(p.Levels) - 1; i >= 0; i-- {
			if current > p.Levels[i]*(1+levelTolerance) {
				return p.Levels[i] / current
			}
		}
	}

	return 1
}

// Bounds returns the lowest and highest configured level.
func (p ZoomPolicy) Bounds() (lo, hi float64) {
	if len(p.Levels) == 0 {
		return 0, math.Inf(1)
	}
	return p.Levels[0], p.Levels[len(p.Levels)-1]
}

// WheelFactor converts a wheel angle delta (eighths of a degree, 120 per
// notch) into a continuous zoom factor.
func WheelFactor(angleDelta float64, invert bool) float64 {
	f := -angleDelta
	if invert {
		f = -f
	}
	return f/-1200 + 1
}

// PinchFactor reports whether a pinch scale is far enough from 1 to be
// applied.
func PinchFactor(scale float64) (float64, bool) {
	if !(scale > 0) || math.IsInf(scale, 0) || math.Abs(scale-1) <= pinchEpsilon {
		return 1, false
	}
	return scale, true
}

// KeyFactor returns the zoom factor for a keyboard zoom. Auto-repeat uses
// the finer repeat steps so a held key zooms smoothly.
func (c Config) KeyFactor(in, autoRepeat bool) float64 {
	switch {
	case in && autoRepeat:
		return c.RepeatInStep
	case in:
		return c.ZoomInStep
	case autoRepeat:
		return c.RepeatOutStep
	default:
		return c.ZoomOutStep
	}
}
