package cmdlog

import "github.com/chewxy/math32"

// Point is a 2D point in local or device coordinates.
type Point struct {
	X, Y float32
}

// Pt is a shorthand for Point{x, y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle. A Rect is empty when
// Left >= Right or Top >= Bottom.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// XYWH returns the rectangle with origin (x, y) and the given size.
func XYWH(x, y, w, h float32) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// LTRB returns the rectangle with the given edges.
func LTRB(l, t, r, b float32) Rect {
	return Rect{Left: l, Top: t, Right: r, Bottom: b}
}

// Width returns Right - Left.
func (r Rect) Width() float32 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float32 { return r.Bottom - r.Top }

// IsEmpty reports whether the rectangle encloses no area.
// NaN edges also make a rectangle empty.
func (r Rect) IsEmpty() bool {
	return !(r.Left < r.Right && r.Top < r.Bottom)
}

// Sort swaps edges as needed so that Left <= Right and Top <= Bottom.
func (r Rect) Sort() Rect {
	return Rect{
		Left:   math32.Min(r.Left, r.Right),
		Top:    math32.Min(r.Top, r.Bottom),
		Right:  math32.Max(r.Left, r.Right),
		Bottom: math32.Max(r.Top, r.Bottom),
	}
}

// Intersect returns the intersection of r and o. The result is empty
// when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		Left:   math32.Max(r.Left, o.Left),
		Top:    math32.Max(r.Top, o.Top),
		Right:  math32.Min(r.Right, o.Right),
		Bottom: math32.Min(r.Bottom, o.Bottom),
	}
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}

// Intersects reports whether r and o share any area.
func (r Rect) Intersects(o Rect) bool {
	return r.Left < o.Right && o.Left < r.Right && r.Top < o.Bottom && o.Top < r.Bottom
}

// Union returns the smallest rectangle containing both r and o.
// Empty rectangles are ignored.
func (r Rect) Union(o Rect) Rect {
	if o.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return o
	}
	return Rect{
		Left:   math32.Min(r.Left, o.Left),
		Top:    math32.Min(r.Top, o.Top),
		Right:  math32.Max(r.Right, o.Right),
		Bottom: math32.Max(r.Bottom, o.Bottom),
	}
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return !r.IsEmpty() && !o.IsEmpty() &&
		r.Left <= o.Left && r.Top <= o.Top && r.Right >= o.Right && r.Bottom >= o.Bottom
}

// Outset grows the rectangle by dx horizontally and dy vertically on each side.
func (r Rect) Outset(dx, dy float32) Rect {
	return Rect{Left: r.Left - dx, Top: r.Top - dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Offset translates the rectangle.
func (r Rect) Offset(dx, dy float32) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// RoundOut returns the smallest integer rectangle containing r.
func (r Rect) RoundOut() IRect {
	return IRect{
		Left:   int32(math32.Floor(r.Left)),
		Top:    int32(math32.Floor(r.Top)),
		Right:  int32(math32.Ceil(r.Right)),
		Bottom: int32(math32.Ceil(r.Bottom)),
	}
}

// BoundsOf returns the bounding box of pts. It returns an empty Rect for
// no points.
func BoundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Left: pts[0].X, Top: pts[0].Y, Right: pts[0].X, Bottom: pts[0].Y}
	for _, p := range pts[1:] {
		r.Left = math32.Min(r.Left, p.X)
		r.Top = math32.Min(r.Top, p.Y)
		r.Right = math32.Max(r.Right, p.X)
		r.Bottom = math32.Max(r.Bottom, p.Y)
	}
	return r
}

// IRect is an integer rectangle, used for device-space regions and
// nine-patch centers.
type IRect struct {
	Left, Top, Right, Bottom int32
}

// IsEmpty reports whether the rectangle encloses no pixels.
func (r IRect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Rect converts to a float rectangle.
func (r IRect) Rect() Rect {
	return Rect{Left: float32(r.Left), Top: float32(r.Top), Right: float32(r.Right), Bottom: float32(r.Bottom)}
}

// RRect is a rectangle with elliptical corners. Radii are ordered
// upper-left, upper-right, lower-right, lower-left.
type RRect struct {
	Rect  Rect
	Radii [4]Point
}

// RRectXY returns a rounded rectangle with the same radii on every corner.
func RRectXY(r Rect, rx, ry float32) RRect {
	rr := RRect{Rect: r}
	for i := range rr.Radii {
		rr.Radii[i] = Point{X: rx, Y: ry}
	}
	return rr
}

// Bounds returns the enclosing rectangle.
func (rr RRect) Bounds() Rect { return rr.Rect }

// IsEmpty reports whether the underlying rectangle is empty.
func (rr RRect) IsEmpty() bool { return rr.Rect.IsEmpty() }

// IsRect reports whether every corner radius is zero.
func (rr RRect) IsRect() bool {
	for _, r := range rr.Radii {
		if r.X != 0 || r.Y != 0 {
			return false
		}
	}
	return true
}

// Matrix is a 2D affine transformation:
//
//	| A  B  C |
//	| D  E  F |
//
// x' = A*x + B*y + C, y' = D*x + E*y + F.
type Matrix struct {
	A, B, C float32
	D, E, F float32
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a translation matrix.
func Translate(x, y float32) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns a scaling matrix.
func Scale(sx, sy float32) Matrix {
	return Matrix{A: sx, E: sy}
}

// Rotate returns a rotation matrix, angle in radians.
func Rotate(angle float32) Matrix {
	sin, cos := math32.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Skew returns a skew matrix.
func Skew(sx, sy float32) Matrix {
	return Matrix{A: 1, B: sx, D: sy, E: 1}
}

// Multiply returns m * o, i.e. o is applied first.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		A: m.A*o.A + m.B*o.D,
		B: m.A*o.B + m.B*o.E,
		C: m.A*o.C + m.B*o.F + m.C,
		D: m.D*o.A + m.E*o.D,
		E: m.D*o.B + m.E*o.E,
		F: m.D*o.C + m.E*o.F + m.F,
	}
}

// IsIdentity reports whether m is the identity transform.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// RectStaysRect reports whether m maps axis-aligned rectangles to
// axis-aligned rectangles.
func (m Matrix) RectStaysRect() bool {
	return (m.B == 0 && m.D == 0) || (m.A == 0 && m.E == 0)
}

// MapPoint transforms p.
func (m Matrix) MapPoint(p Point) Point {
	return Point{X: m.A*p.X + m.B*p.Y + m.C, Y: m.D*p.X + m.E*p.Y + m.F}
}

// MapRect returns the bounds of r after transformation.
func (m Matrix) MapRect(r Rect) Rect {
	pts := [4]Point{
		m.MapPoint(Point{r.Left, r.Top}),
		m.MapPoint(Point{r.Right, r.Top}),
		m.MapPoint(Point{r.Right, r.Bottom}),
		m.MapPoint(Point{r.Left, r.Bottom}),
	}
	return BoundsOf(pts[:])
}

// Invert returns the inverse of m. ok is false when m is singular.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m.A*m.E - m.B*m.D
	if det == 0 || math32.IsNaN(det) || math32.IsInf(det, 0) {
		return Matrix{}, false
	}
	id := 1 / det
	return Matrix{
		A: m.E * id,
		B: -m.B * id,
		C: (m.B*m.F - m.E*m.C) * id,
		D: -m.D * id,
		E: m.A * id,
		F: (m.D*m.C - m.A*m.F) * id,
	}, true
}
