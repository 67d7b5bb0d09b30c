package types

import "testing"

func TestZoomTriggerValid(t *testing.T) {
	for _, tr := range []ZoomTrigger{
		ZoomTriggerButton, ZoomTriggerKey, ZoomTriggerKeyRepeat,
		ZoomTriggerWheel, ZoomTriggerPinch, ZoomTriggerRaw,
	} {
		if !tr.Valid() {
			t.Errorf("%q rejected", tr)
		}
	}
	for _, tr := range []ZoomTrigger{"", "scroll", "Wheel"} {
		if tr.Valid() {
			t.Errorf("%q accepted", tr)
		}
	}
}

func TestPanDirectionValid(t *testing.T) {
	if !PanLeft.Valid() {
		t.Error("left rejected")
	}
	if PanDirection("sideways").Valid() {
		t.Error("sideways accepted")
	}
}
