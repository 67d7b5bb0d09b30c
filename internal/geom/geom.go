// Package geom holds the small value types the viewport works in: points,
// sizes, axis-aligned rectangles and uniform scale + translate matrices.
package geom

import "math"

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Div(k float64) Point {
	return Point{X: p.X / k, Y: p.Y / k}
}

type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func Sz(w, h float64) Size {
	return Size{W: w, H: h}
}

// IsEmpty reports whether the size has no area.
func (s Size) IsEmpty() bool {
	return s.W <= 0 || s.H <= 0
}

// Rect returns the origin anchored rectangle of this size.
func (s Size) Rect() Rect {
	return Rect{W: s.W, H: s.H}
}

// Rect is an axis-aligned rectangle. W and H are never negative for the
// rectangles the viewport produces.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether o lies completely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.Left() >= r.Left() && o.Top() >= r.Top() &&
		o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// ContainsPoint reports whether p lies inside r, edges included.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Intersect returns the overlap of r and o, or the zero Rect if they do not
// overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.Left(), o.Left())
	y0 := math.Max(r.Top(), o.Top())
	x1 := math.Min(r.Right(), o.Right())
	y1 := math.Min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
