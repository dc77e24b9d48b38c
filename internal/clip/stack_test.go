package clip

import (
	"testing"

	"github.com/gogpu/cmdlog"
)

func TestNewStack(t *testing.T) {
	s := NewStack(100, 50)

	if s.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", s.Depth())
	}
	if want := cmdlog.XYWH(0, 0, 100, 50); s.Bounds() != want {
		t.Errorf("Bounds() = %v, want %v", s.Bounds(), want)
	}
	if !s.Matrix().IsIdentity() {
		t.Errorf("Matrix() = %v, want identity", s.Matrix())
	}
	if s.IsEmpty() {
		t.Error("IsEmpty() = true for a fresh stack")
	}
}

func TestStack_ClipRect(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(s *Stack)
		wantBounds cmdlog.Rect
	}{
		{
			name:       "intersect",
			setup:      func(s *Stack) { s.ClipRect(cmdlog.XYWH(10, 10, 50, 50), cmdlog.OpIntersect) },
			wantBounds: cmdlog.XYWH(10, 10, 50, 50),
		},
		{
			name: "intersect twice",
			setup: func(s *Stack) {
				s.ClipRect(cmdlog.XYWH(10, 10, 50, 50), cmdlog.OpIntersect)
				s.ClipRect(cmdlog.XYWH(30, 30, 50, 50), cmdlog.OpIntersect)
			},
			wantBounds: cmdlog.XYWH(30, 30, 30, 30),
		},
		{
			name: "translated",
			setup: func(s *Stack) {
				s.Concat(cmdlog.Translate(5, 5))
				s.ClipRect(cmdlog.XYWH(0, 0, 10, 10), cmdlog.OpIntersect)
			},
			wantBounds: cmdlog.XYWH(5, 5, 10, 10),
		},
		{
			name: "replace",
			setup: func(s *Stack) {
				s.ClipRect(cmdlog.XYWH(0, 0, 10, 10), cmdlog.OpIntersect)
				s.ClipRect(cmdlog.XYWH(50, 50, 500, 500), cmdlog.OpReplace)
			},
			wantBounds: cmdlog.LTRB(50, 50, 100, 100),
		},
		{
			name: "union",
			setup: func(s *Stack) {
				s.ClipRect(cmdlog.XYWH(0, 0, 10, 10), cmdlog.OpIntersect)
				s.ClipRect(cmdlog.XYWH(20, 20, 10, 10), cmdlog.OpUnion)
			},
			wantBounds: cmdlog.XYWH(0, 0, 30, 30),
		},
		{
			name: "difference keeps bound",
			setup: func(s *Stack) {
				s.ClipRect(cmdlog.XYWH(0, 0, 10, 10), cmdlog.OpDifference)
			},
			wantBounds: cmdlog.XYWH(0, 0, 100, 100),
		},
		{
			name: "difference swallowing everything",
			setup: func(s *Stack) {
				s.ClipRect(cmdlog.XYWH(-10, -10, 200, 200), cmdlog.OpDifference)
			},
			wantBounds: cmdlog.Rect{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStack(100, 100)
			tt.setup(s)
			if s.Bounds() != tt.wantBounds {
				t.Errorf("Bounds() = %v, want %v", s.Bounds(), tt.wantBounds)
			}
		})
	}
}

func TestStack_SaveRestore(t *testing.T) {
	s := NewStack(100, 100)

	s.Save()
	s.Concat(cmdlog.Scale(2, 2))
	s.ClipRect(cmdlog.XYWH(10, 10, 10, 10), cmdlog.OpIntersect)
	if want := cmdlog.XYWH(20, 20, 20, 20); s.Bounds() != want {
		t.Fatalf("Bounds() = %v, want %v", s.Bounds(), want)
	}

	if !s.Restore() {
		t.Fatal("Restore() = false with a pending Save")
	}
	if want := cmdlog.XYWH(0, 0, 100, 100); s.Bounds() != want {
		t.Errorf("Bounds() after Restore = %v, want %v", s.Bounds(), want)
	}
	if !s.Matrix().IsIdentity() {
		t.Errorf("Matrix() after Restore = %v", s.Matrix())
	}

	// Unbalanced restore is a no-op.
	if s.Restore() {
		t.Error("Restore() = true with no Save")
	}
}

func TestStack_EmptyClip(t *testing.T) {
	s := NewStack(100, 100)
	s.ClipRect(cmdlog.XYWH(0, 0, 10, 10), cmdlog.OpIntersect)
	s.ClipRect(cmdlog.XYWH(50, 50, 10, 10), cmdlog.OpIntersect)

	if !s.IsEmpty() {
		t.Fatalf("IsEmpty() = false, bounds %v", s.Bounds())
	}
	if !s.QuickReject(cmdlog.XYWH(0, 0, 100, 100)) {
		t.Error("QuickReject() = false on empty clip")
	}
	if !s.QuickRejectY(0, 100) {
		t.Error("QuickRejectY() = false on empty clip")
	}

	s.ClipPath(nil, cmdlog.OpIntersect)
	if !s.IsEmpty() {
		t.Error("IsEmpty() = false after empty path clip")
	}
}

func TestStack_QuickReject(t *testing.T) {
	s := NewStack(100, 100)
	s.ClipRect(cmdlog.XYWH(10, 10, 20, 20), cmdlog.OpIntersect)

	tests := []struct {
		name string
		r    cmdlog.Rect
		want bool
	}{
		{"inside", cmdlog.XYWH(15, 15, 5, 5), false},
		{"overlapping", cmdlog.XYWH(0, 0, 15, 15), false},
		{"far right", cmdlog.XYWH(60, 10, 5, 5), true},
		{"far above", cmdlog.XYWH(10, -40, 5, 5), true},
		{"nan", cmdlog.LTRB(float32NaN(), 0, 1, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.QuickReject(tt.r); got != tt.want {
				t.Errorf("QuickReject(%v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestStack_QuickRejectY(t *testing.T) {
	s := NewStack(100, 100)
	s.Concat(cmdlog.Translate(0, 50))
	s.ClipRect(cmdlog.XYWH(0, 0, 100, 10), cmdlog.OpIntersect)

	// Local clip band is [0, 10], outset by one pixel.
	tests := []struct {
		top, bottom float32
		want        bool
	}{
		{2, 8, false},
		{-5, 0.5, false},
		{20, 30, true},
		{-30, -20, true},
	}
	for _, tt := range tests {
		if got := s.QuickRejectY(tt.top, tt.bottom); got != tt.want {
			t.Errorf("QuickRejectY(%g, %g) = %v, want %v", tt.top, tt.bottom, got, tt.want)
		}
	}
}

func TestStack_ClipRegionIgnoresMatrix(t *testing.T) {
	s := NewStack(100, 100)
	s.Concat(cmdlog.Translate(40, 40))
	s.ClipRegion(cmdlog.NewRegion(cmdlog.IRect{Left: 0, Top: 0, Right: 10, Bottom: 10}), cmdlog.OpIntersect)
	if want := cmdlog.XYWH(0, 0, 10, 10); s.Bounds() != want {
		t.Errorf("Bounds() = %v, want %v", s.Bounds(), want)
	}
}

func TestStack_Reset(t *testing.T) {
	s := NewStack(100, 100)
	s.Save()
	s.Save()
	s.ClipRect(cmdlog.Rect{}, cmdlog.OpIntersect)
	s.Reset()
	if s.Depth() != 0 || s.IsEmpty() {
		t.Errorf("after Reset: depth %d, empty %v", s.Depth(), s.IsEmpty())
	}
}

func float32NaN() float32 {
	var zero float32
	return zero / zero
}
