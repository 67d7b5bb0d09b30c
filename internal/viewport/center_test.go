package viewport

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matjam/smoothview/internal/geom"
)

func TestCenterImage(t *testing.T) {
	vp := geom.Sz(400, 400)

	tests := []struct {
		name    string
		imgView geom.Rect
		world   geom.Matrix
		want    geom.Matrix
	}{
		{
			name:    "already_centered",
			imgView: geom.Rect{X: 0, Y: 100, W: 400, H: 200},
			world:   geom.Identity(),
			want:    geom.Identity(),
		},
		{
			name:    "leading_gap_and_off_center",
			imgView: geom.Rect{X: 0, Y: 100, W: 400, H: 200},
			world:   geom.Matrix{Scale: 1, Dx: 30, Dy: -40},
			want:    geom.Identity(),
		},
		{
			name:    "trailing_gap",
			imgView: geom.Rect{W: 400, H: 400},
			world:   geom.Matrix{Scale: 2, Dx: -500, Dy: -100},
			want:    geom.Matrix{Scale: 2, Dx: -400, Dy: -100},
		},
		{
			name:    "small_both_axes",
			imgView: geom.Rect{X: 100, Y: 100, W: 200, H: 100},
			world:   geom.Matrix{Scale: 1.5, Dx: -90, Dy: 12},
			want:    geom.Matrix{Scale: 1.5, Dx: -100, Dy: -25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CenterImage(tt.world, tt.imgView, vp)
			if d := cmp.Diff(tt.want, got, approx); d != "" {
				t.Errorf("CenterImage (-want +got):\n%s", d)
			}

			r := got.MapRect(tt.imgView)
			if r.W < vp.W && !near(r.Center().X, vp.W/2) {
				t.Errorf("x axis not centered: %v", r)
			}
			if r.H < vp.H && !near(r.Center().Y, vp.H/2) {
				t.Errorf("y axis not centered: %v", r)
			}
		})
	}
}
