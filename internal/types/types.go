package types

type PanDirection string

const (
	PanLeft  PanDirection = "left"
	PanRight PanDirection = "right"
	PanUp    PanDirection = "up"
	PanDown  PanDirection = "down"
)

func (d PanDirection) Valid() bool {
	switch d {
	case PanLeft, PanRight, PanUp, PanDown:
		return true
	}
	return false
}

// Unit returns the screen direction of d, y growing downwards.
func (d PanDirection) Unit() (x, y float64) {
	switch d {
	case PanLeft:
		return -1, 0
	case PanRight:
		return 1, 0
	case PanUp:
		return 0, -1
	case PanDown:
		return 0, 1
	}
	return 0, 0
}

// ZoomTrigger names the input source of a zoom request.
type ZoomTrigger string

const (
	ZoomTriggerButton    ZoomTrigger = "button"     // discrete, leveled
	ZoomTriggerKey       ZoomTrigger = "key"        // key press, raw step
	ZoomTriggerKeyRepeat ZoomTrigger = "key-repeat" // held key, fine raw step
	ZoomTriggerWheel     ZoomTrigger = "wheel"
	ZoomTriggerPinch     ZoomTrigger = "pinch"
	ZoomTriggerRaw       ZoomTrigger = "raw"
)

func (t ZoomTrigger) Valid() bool {
	switch t {
	case ZoomTriggerButton, ZoomTriggerKey, ZoomTriggerKeyRepeat, ZoomTriggerWheel, ZoomTriggerPinch, ZoomTriggerRaw:
		return true
	}
	return false
}
