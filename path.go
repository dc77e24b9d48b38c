package cmdlog

import "github.com/chewxy/math32"

// Verb is a path construction command.
type Verb uint8

const (
	VerbMove Verb = iota
	VerbLine
	VerbQuad
	VerbCubic
	VerbClose
)

// PointCount returns the number of points the verb consumes.
func (v Verb) PointCount() int {
	switch v {
	case VerbMove, VerbLine:
		return 1
	case VerbQuad:
		return 2
	case VerbCubic:
		return 3
	}
	return 0
}

// FillType is the rule used to decide which points are inside a path.
type FillType uint8

const (
	FillWinding FillType = iota
	FillEvenOdd
)

// Path is a sequence of contours. Verbs and points are stored in two
// compact streams, one point group per verb.
type Path struct {
	verbs    []Verb
	pts      []Point
	FillType FillType
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new contour.
func (p *Path) MoveTo(x, y float32) *Path {
	p.verbs = append(p.verbs, VerbMove)
	p.pts = append(p.pts, Point{x, y})
	return p
}

// LineTo adds a line segment.
func (p *Path) LineTo(x, y float32) *Path {
	p.verbs = append(p.verbs, VerbLine)
	p.pts = append(p.pts, Point{x, y})
	return p
}

// QuadTo adds a quadratic Bezier segment.
func (p *Path) QuadTo(cx, cy, x, y float32) *Path {
	p.verbs = append(p.verbs, VerbQuad)
	p.pts = append(p.pts, Point{cx, cy}, Point{x, y})
	return p
}

// CubicTo adds a cubic Bezier segment.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) *Path {
	p.verbs = append(p.verbs, VerbCubic)
	p.pts = append(p.pts, Point{c1x, c1y}, Point{c2x, c2y}, Point{x, y})
	return p
}

// Close closes the current contour.
func (p *Path) Close() *Path {
	p.verbs = append(p.verbs, VerbClose)
	return p
}

// AddRect adds a closed rectangular contour.
func (p *Path) AddRect(r Rect) *Path {
	return p.MoveTo(r.Left, r.Top).
		LineTo(r.Right, r.Top).
		LineTo(r.Right, r.Bottom).
		LineTo(r.Left, r.Bottom).
		Close()
}

// kappa is the cubic control distance for a quarter circle.
const kappa = 0.5522847498

// AddOval adds a closed ellipse inscribed in r.
func (p *Path) AddOval(r Rect) *Path {
	return p.AddRRect(RRectXY(r, r.Width()/2, r.Height()/2))
}

// AddRRect adds a closed rounded rectangle contour.
func (p *Path) AddRRect(rr RRect) *Path {
	r := rr.Rect
	ul, ur, lr, ll := rr.Radii[0], rr.Radii[1], rr.Radii[2], rr.Radii[3]
	p.MoveTo(r.Left+ul.X, r.Top)
	p.LineTo(r.Right-ur.X, r.Top)
	if ur.X != 0 || ur.Y != 0 {
		p.CubicTo(r.Right-ur.X+ur.X*kappa, r.Top, r.Right, r.Top+ur.Y-ur.Y*kappa, r.Right, r.Top+ur.Y)
	}
	p.LineTo(r.Right, r.Bottom-lr.Y)
	if lr.X != 0 || lr.Y != 0 {
		p.CubicTo(r.Right, r.Bottom-lr.Y+lr.Y*kappa, r.Right-lr.X+lr.X*kappa, r.Bottom, r.Right-lr.X, r.Bottom)
	}
	p.LineTo(r.Left+ll.X, r.Bottom)
	if ll.X != 0 || ll.Y != 0 {
		p.CubicTo(r.Left+ll.X-ll.X*kappa, r.Bottom, r.Left, r.Bottom-ll.Y+ll.Y*kappa, r.Left, r.Bottom-ll.Y)
	}
	p.LineTo(r.Left, r.Top+ul.Y)
	if ul.X != 0 || ul.Y != 0 {
		p.CubicTo(r.Left, r.Top+ul.Y-ul.Y*kappa, r.Left+ul.X-ul.X*kappa, r.Top, r.Left+ul.X, r.Top)
	}
	return p.Close()
}

// IsEmpty reports whether the path has no verbs.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.verbs) == 0
}

// Bounds returns the bounds of all control points.
func (p *Path) Bounds() Rect {
	if p == nil {
		return Rect{}
	}
	return BoundsOf(p.pts)
}

// Clone returns a deep copy.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	return &Path{
		verbs:    append([]Verb(nil), p.verbs...),
		pts:      append([]Point(nil), p.pts...),
		FillType: p.FillType,
	}
}

// Transform returns a copy of p with every point mapped by m.
func (p *Path) Transform(m Matrix) *Path {
	c := p.Clone()
	for i, pt := range c.pts {
		c.pts[i] = m.MapPoint(pt)
	}
	return c
}

// Walk calls fn for each verb with the points it consumes.
func (p *Path) Walk(fn func(v Verb, pts []Point)) {
	i := 0
	for _, v := range p.verbs {
		n := v.PointCount()
		fn(v, p.pts[i:i+n])
		i += n
	}
}

// Flatten converts the path to polylines, one per contour. Curves are
// subdivided into segments no longer than tolerance (in the path's units).
func (p *Path) Flatten(tolerance float32) [][]Point {
	if tolerance <= 0 {
		tolerance = 0.25
	}
	var (
		out     [][]Point
		cur     []Point
		last    Point
		start   Point
		started bool
	)
	flush := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	p.Walk(func(v Verb, pts []Point) {
		switch v {
		case VerbMove:
			flush()
			start, last, started = pts[0], pts[0], true
			cur = []Point{pts[0]}
		case VerbLine:
			if !started {
				cur, started = []Point{last}, true
			}
			cur = append(cur, pts[0])
			last = pts[0]
		case VerbQuad:
			n := segments(math32.Hypot(pts[1].X-last.X, pts[1].Y-last.Y)+math32.Hypot(pts[0].X-last.X, pts[0].Y-last.Y), tolerance)
			for i := 1; i <= n; i++ {
				t := float32(i) / float32(n)
				mt := 1 - t
				cur = append(cur, Point{
					X: mt*mt*last.X + 2*mt*t*pts[0].X + t*t*pts[1].X,
					Y: mt*mt*last.Y + 2*mt*t*pts[0].Y + t*t*pts[1].Y,
				})
			}
			last = pts[1]
		case VerbCubic:
			n := segments(math32.Hypot(pts[0].X-last.X, pts[0].Y-last.Y)+
				math32.Hypot(pts[1].X-pts[0].X, pts[1].Y-pts[0].Y)+
				math32.Hypot(pts[2].X-pts[1].X, pts[2].Y-pts[1].Y), tolerance)
			for i := 1; i <= n; i++ {
				t := float32(i) / float32(n)
				mt := 1 - t
				a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
				cur = append(cur, Point{
					X: a*last.X + b*pts[0].X + c*pts[1].X + d*pts[2].X,
					Y: a*last.Y + b*pts[0].Y + c*pts[1].Y + d*pts[2].Y,
				})
			}
			last = pts[2]
		case VerbClose:
			if len(cur) > 0 {
				cur = append(cur, start)
			}
			flush()
			last, started = start, false
		}
	})
	flush()
	return out
}

func segments(length, tolerance float32) int {
	n := int(math32.Ceil(length / tolerance))
	if n < 1 {
		return 1
	}
	if n > 64 {
		return 64
	}
	return n
}
