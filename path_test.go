package cmdlog

import "testing"

func TestPathBoundsAndClone(t *testing.T) {
	p := NewPath().MoveTo(0, 0).LineTo(10, 5).QuadTo(20, 20, 5, 10).Close()
	if got := p.Bounds(); got != LTRB(0, 0, 20, 20) {
		t.Errorf("Bounds() = %v", got)
	}

	c := p.Clone()
	c.LineTo(100, 100)
	if p.Bounds() != LTRB(0, 0, 20, 20) {
		t.Error("Clone shares storage with the original")
	}

	var nilPath *Path
	if !nilPath.IsEmpty() || nilPath.Bounds() != (Rect{}) || nilPath.Clone() != nil {
		t.Error("nil path helpers misbehave")
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath().AddRect(XYWH(0, 0, 10, 10))
	if got := p.Transform(Translate(5, 5)).Bounds(); got != XYWH(5, 5, 10, 10) {
		t.Errorf("transformed Bounds() = %v", got)
	}
	if p.Bounds() != XYWH(0, 0, 10, 10) {
		t.Error("Transform modified the receiver")
	}
}

func TestPathFlatten(t *testing.T) {
	rect := NewPath().AddRect(XYWH(0, 0, 10, 10)).Flatten(1)
	if len(rect) != 1 || len(rect[0]) != 5 {
		t.Fatalf("rect Flatten() = %v", rect)
	}
	if rect[0][0] != rect[0][4] {
		t.Error("closed contour does not return to its start")
	}

	oval := NewPath().AddOval(XYWH(0, 0, 100, 100)).Flatten(0.5)
	if len(oval) != 1 || len(oval[0]) < 16 {
		t.Fatalf("oval flattened into %d contours", len(oval))
	}
	for _, pt := range oval[0] {
		if !XYWH(-0.01, -0.01, 100.02, 100.02).Contains(XYWH(pt.X, pt.Y, 0.001, 0.001)) {
			t.Errorf("flattened point %v outside the oval bounds", pt)
		}
	}
}

func TestPathWalk(t *testing.T) {
	var verbs []Verb
	var npts int
	NewPath().MoveTo(0, 0).LineTo(1, 1).CubicTo(1, 2, 3, 4, 5, 6).Close().
		Walk(func(v Verb, pts []Point) {
			verbs = append(verbs, v)
			npts += len(pts)
		})
	if len(verbs) != 4 || verbs[2] != VerbCubic || npts != 5 {
		t.Errorf("Walk saw %v with %d points", verbs, npts)
	}
}
