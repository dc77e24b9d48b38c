package cmdlog

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
)

func TestRectIsEmpty(t *testing.T) {
	nan := math32.NaN()
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"normal", XYWH(0, 0, 10, 10), false},
		{"zero", Rect{}, true},
		{"zero width", XYWH(5, 5, 0, 10), true},
		{"inverted", LTRB(10, 0, 0, 10), true},
		{"nan", LTRB(nan, 0, 10, 10), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsEmpty(); got != tt.want {
				t.Errorf("%v.IsEmpty() = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestRectSetOps(t *testing.T) {
	a := LTRB(0, 0, 10, 10)
	b := LTRB(5, 5, 20, 20)

	if got := a.Intersect(b); got != LTRB(5, 5, 10, 10) {
		t.Errorf("Intersect = %v", got)
	}
	if got := a.Intersect(LTRB(50, 50, 60, 60)); got != (Rect{}) {
		t.Errorf("disjoint Intersect = %v, want zero", got)
	}
	if got := a.Union(b); got != LTRB(0, 0, 20, 20) {
		t.Errorf("Union = %v", got)
	}
	if got := a.Union(Rect{}); got != a {
		t.Errorf("Union with empty = %v", got)
	}
	if !a.Contains(LTRB(1, 1, 9, 9)) || a.Contains(b) {
		t.Error("Contains wrong")
	}
	if got := LTRB(10, 10, 0, 0).Sort(); got != a {
		t.Errorf("Sort = %v", got)
	}
	if got := LTRB(0.5, 0.5, 9.2, 9.8).RoundOut(); got != (IRect{0, 0, 10, 10}) {
		t.Errorf("RoundOut = %v", got)
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Scale first, then translate.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	if got := m.MapPoint(Pt(1, 1)); got != Pt(12, 2) {
		t.Errorf("MapPoint = %v, want (12, 2)", got)
	}
}

func TestMatrixInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		ok   bool
	}{
		{"identity", Identity(), true},
		{"translate", Translate(3, -4), true},
		{"scale", Scale(2, 0.5), true},
		{"rotate", Rotate(math.Pi / 3), true},
		{"skew", Skew(0.5, 0), true},
		{"singular", Scale(0, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Invert()
			if ok != tt.ok {
				t.Fatalf("Invert() ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			p := Pt(7, -3)
			got := inv.MapPoint(tt.m.MapPoint(p))
			if math32.Abs(got.X-p.X) > 1e-4 || math32.Abs(got.Y-p.Y) > 1e-4 {
				t.Errorf("round trip = %v, want %v", got, p)
			}
		})
	}
}

func TestMapRect(t *testing.T) {
	r := XYWH(0, 0, 10, 20)
	if got := Translate(5, 5).MapRect(r); got != XYWH(5, 5, 10, 20) {
		t.Errorf("translate MapRect = %v", got)
	}
	// A quarter turn swaps width and height.
	got := Rotate(math.Pi / 2).MapRect(r)
	if math32.Abs(got.Width()-20) > 1e-4 || math32.Abs(got.Height()-10) > 1e-4 {
		t.Errorf("rotate MapRect = %v", got)
	}
	if !Translate(1, 2).RectStaysRect() || Rotate(0.3).RectStaysRect() {
		t.Error("RectStaysRect wrong")
	}
}
