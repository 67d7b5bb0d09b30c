// Package render draws the viewport contents offscreen. The daemon has no
// window of its own, so a frame is a snapshot of what the viewport would
// show, produced with the current combined transform.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matjam/smoothview/internal/geom"
	"golang.org/x/image/draw"
)

type Interpolation string

const (
	InterpolationNone      Interpolation = "none" // pixel aligned copy
	InterpolationNearest   Interpolation = "nearest"
	InterpolationSmooth    Interpolation = "smooth"
	InterpolationDownscale Interpolation = "downscale"
)

// Source is what the renderer draws from. imagestore.Store implements it.
type Source interface {
	Image() image.Image
	RenderAt(target image.Point) image.Image
}

type Renderer struct {
	background color.Color
	// zoom factor above which pixels are no longer smoothed
	interpolateLevel float64
}

// New creates a renderer. interpolateZoomLevel is a percentage; 0 disables
// smoothing when magnified.
func New(background color.Color, interpolateZoomLevel int) *Renderer {
	if background == nil {
		background = color.Black
	}
	return &Renderer{
		background:       background,
		interpolateLevel: float64(interpolateZoomLevel) / 100,
	}
}

// ParseColor parses a "#rrggbb" hex colour.
func ParseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// InterpolationFor picks the resampling mode for a given combined scale.
func (r *Renderer) InterpolationFor(scale float64) Interpolation {
	switch {
	case math.Abs(scale-1) < 1e-9:
		return InterpolationNone
	case scale < 1:
		return InterpolationDownscale
	case scale <= r.interpolateLevel:
		return InterpolationSmooth
	default:
		return InterpolationNearest
	}
}

// Render draws src into a viewport sized frame using m, the transform from
// native image pixels to viewport pixels.
func (r *Renderer) Render(src Source, viewport geom.Size, m geom.Matrix) (*image.RGBA, error) {
	w, h := int(math.Round(viewport.W)), int(math.Round(viewport.H))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("empty viewport %vx%v", viewport.W, viewport.H)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)

	native := src.Image()
	if native == nil {
		return dst, nil
	}

	nb := native.Bounds()
	img := native
	if m.Scale < 1 {
		target := image.Pt(int(math.Round(float64(nb.Dx())*m.Scale)), int(math.Round(float64(nb.Dy())*m.Scale)))
		img = src.RenderAt(target)
	}

	// Transform from the chosen level to the screen.
	ib := img.Bounds()
	levelScale := float64(nb.Dx()) / float64(ib.Dx())
	lm := geom.Matrix{Scale: m.Scale * levelScale, Dx: m.Dx, Dy: m.Dy}.
		Translate(-float64(ib.Min.X), -float64(ib.Min.Y))

	mode := r.InterpolationFor(lm.Scale)
	log.Debug("rendering frame", "scale", m.Scale, "level", ib.Size(), "mode", mode)

	switch mode {
	case InterpolationNone:
		off := image.Pt(int(math.Round(lm.Dx)), int(math.Round(lm.Dy)))
		draw.Draw(dst, ib.Add(off).Sub(ib.Min), img, ib.Min, draw.Over)
	case InterpolationNearest:
		draw.NearestNeighbor.Transform(dst, lm.Aff3(), img, ib, draw.Over, nil)
	case InterpolationSmooth:
		draw.ApproxBiLinear.Transform(dst, lm.Aff3(), img, ib, draw.Over, nil)
	default:
		draw.CatmullRom.Transform(dst, lm.Aff3(), img, ib, draw.Over, nil)
	}
	return dst, nil
}

// WritePNG renders a frame and encodes it to w.
func (r *Renderer) WritePNG(w io.Writer, src Source, viewport geom.Size, m geom.Matrix) error {
	frame, err := r.Render(src, viewport, m)
	if err != nil {
		return err
	}
	if err := png.Encode(w, frame); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}
