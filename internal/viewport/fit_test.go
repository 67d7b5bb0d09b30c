package viewport

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/matjam/smoothview/internal/geom"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestComputeFit(t *testing.T) {
	tests := []struct {
		name     string
		img      geom.Rect
		viewport geom.Size
		want     geom.Matrix
	}{
		{
			name:     "wide_into_square",
			img:      geom.Rect{W: 1000, H: 500},
			viewport: geom.Sz(400, 400),
			want:     geom.Matrix{Scale: 0.4, Dx: 0, Dy: 100},
		},
		{
			name:     "tall_into_square",
			img:      geom.Rect{W: 500, H: 1000},
			viewport: geom.Sz(400, 400),
			want:     geom.Matrix{Scale: 0.4, Dx: 100, Dy: 0},
		},
		{
			name:     "same_ratio",
			img:      geom.Rect{W: 2000, H: 2000},
			viewport: geom.Sz(500, 500),
			want:     geom.Matrix{Scale: 0.25},
		},
		{
			name:     "upscale",
			img:      geom.Rect{W: 200, H: 100},
			viewport: geom.Sz(400, 400),
			want:     geom.Matrix{Scale: 2, Dx: 0, Dy: 100},
		},
		{
			name:     "zero_width",
			img:      geom.Rect{W: 0, H: 500},
			viewport: geom.Sz(400, 400),
			want:     geom.Matrix{Scale: 1, Dx: 200, Dy: -50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeFit(tt.img, tt.viewport)
			if d := cmp.Diff(tt.want, got, approx); d != "" {
				t.Errorf("ComputeFit (-want +got):\n%s", d)
			}
		})
	}
}

func TestComputeFitMargins(t *testing.T) {
	img := geom.Rect{W: 1000, H: 500}
	m := ComputeFit(img, geom.Sz(400, 400))
	view := m.MapRect(img)

	want := geom.Rect{X: 0, Y: 100, W: 400, H: 200}
	if d := cmp.Diff(want, view, approx); d != "" {
		t.Errorf("image view rect (-want +got):\n%s", d)
	}
	if top, bottom := view.Top(), 400-view.Bottom(); top != bottom {
		t.Errorf("vertical margins %g and %g differ", top, bottom)
	}
}

func TestImageMatrixFor(t *testing.T) {
	cfg := DefaultConfig()
	img := geom.Rect{W: 200, H: 100}
	vp := geom.Sz(400, 400)

	got := ImageMatrixFor(cfg, img, vp)
	want := geom.Matrix{Scale: 1, Dx: 100, Dy: 150}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("small image should stay at native size (-want +got):\n%s", d)
	}

	cfg.UpscaleSmall = true
	got = ImageMatrixFor(cfg, img, vp)
	if d := cmp.Diff(ComputeFit(img, vp), got, approx); d != "" {
		t.Errorf("upscaled image (-want +got):\n%s", d)
	}

	big := geom.Rect{W: 1000, H: 500}
	if d := cmp.Diff(ComputeFit(big, vp), ImageMatrixFor(DefaultConfig(), big, vp), approx); d != "" {
		t.Errorf("large image should be fitted (-want +got):\n%s", d)
	}
}
