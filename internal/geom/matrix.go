package geom

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix is an affine transform restricted to a uniform scale followed by a
// translation:
//
//	x' = Scale*x + Dx
//	y' = Scale*y + Dy
//
// The zero value is not the identity, use Identity.
type Matrix struct {
	Scale float64 `json:"scale"`
	Dx    float64 `json:"dx"`
	Dy    float64 `json:"dy"`
}

func Identity() Matrix {
	return Matrix{Scale: 1}
}

func (m Matrix) IsIdentity() bool {
	return m.Scale == 1 && m.Dx == 0 && m.Dy == 0
}

// Translate returns m with a translation by (dx, dy) applied in m's local
// (pre-scale) coordinates. On screen the content moves by (dx, dy)*Scale.
func (m Matrix) Translate(dx, dy float64) Matrix {
	m.Dx += dx * m.Scale
	m.Dy += dy * m.Scale
	return m
}

// Scaled returns m with an additional uniform scale applied in local
// coordinates. The translation is left untouched.
func (m Matrix) Scaled(s float64) Matrix {
	m.Scale *= s
	return m
}

func (m Matrix) Map(p Point) Point {
	return Point{X: m.Scale*p.X + m.Dx, Y: m.Scale*p.Y + m.Dy}
}

// MapRect maps r through m. Scale is assumed positive.
func (m Matrix) MapRect(r Rect) Rect {
	return Rect{
		X: m.Scale*r.X + m.Dx,
		Y: m.Scale*r.Y + m.Dy,
		W: m.Scale * r.W,
		H: m.Scale * r.H,
	}
}

// Inverted returns the inverse of m. The second result is false if m is
// singular.
func (m Matrix) Inverted() (Matrix, bool) {
	if m.Scale == 0 || math.IsNaN(m.Scale) || math.IsInf(m.Scale, 0) {
		return Matrix{}, false
	}
	return Matrix{Scale: 1 / m.Scale, Dx: -m.Dx / m.Scale, Dy: -m.Dy / m.Scale}, true
}

// Then returns the transform that applies m first and o second.
func (m Matrix) Then(o Matrix) Matrix {
	return Matrix{
		Scale: o.Scale * m.Scale,
		Dx:    o.Scale*m.Dx + o.Dx,
		Dy:    o.Scale*m.Dy + o.Dy,
	}
}

// Aff3 converts m for use with golang.org/x/image/draw transformers.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{
		m.Scale, 0, m.Dx,
		0, m.Scale, m.Dy,
	}
}
