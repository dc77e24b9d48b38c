package record

import (
	"image"
	"strings"
	"testing"

	"github.com/gogpu/cmdlog"
)

func TestPlacement(t *testing.T) {
	tests := []struct {
		kind   Kind
		inline bool
	}{
		{KindNoOp, true},
		{KindRestore, true},
		{KindSave, true},
		{KindClear, true},
		{KindPopCull, true},
		{KindPushCull, false},
		{KindConcat, false},
		{KindClipRect, false},
		{KindDrawRect, false},
		{KindDrawSprite, false},
		{KindPairedPushCull, false},
		{KindBoundedDrawPosTextH, false},
	}
	for _, tt := range tests {
		if got := IsInline(tt.kind); got != tt.inline {
			t.Errorf("IsInline(%v) = %v, want %v", tt.kind, got, tt.inline)
		}
	}
}

type kindCollector struct {
	NopVisitor
	kinds []Kind
	rects []cmdlog.Rect
}

func (c *kindCollector) Save(op Save)       { c.kinds = append(c.kinds, op.Kind()) }
func (c *kindCollector) Restore(op Restore) { c.kinds = append(c.kinds, op.Kind()) }
func (c *kindCollector) DrawRect(op DrawRect) {
	c.kinds = append(c.kinds, op.Kind())
	c.rects = append(c.rects, op.Rect)
}
func (c *kindCollector) Clear(op Clear) { c.kinds = append(c.kinds, op.Kind()) }

func TestAppendVisit(t *testing.T) {
	l := New()
	Append(l, Save{Flags: cmdlog.SaveMatrixClip})
	Append(l, Clear{Color: cmdlog.White})
	Append(l, DrawRect{Rect: cmdlog.XYWH(1, 2, 3, 4), Paint: *cmdlog.NewPaint()})
	Append(l, Restore{})

	if l.Count() != 4 {
		t.Fatalf("Count() = %d, want 4", l.Count())
	}

	c := &kindCollector{}
	l.VisitAll(c)
	want := []Kind{KindSave, KindClear, KindDrawRect, KindRestore}
	if len(c.kinds) != len(want) {
		t.Fatalf("visited %v, want %v", c.kinds, want)
	}
	for i := range want {
		if c.kinds[i] != want[i] {
			t.Errorf("kind[%d] = %v, want %v", i, c.kinds[i], want[i])
		}
	}
	if c.rects[0] != cmdlog.XYWH(1, 2, 3, 4) {
		t.Errorf("rect = %v", c.rects[0])
	}
	if got := Get[Save](l, 0).Flags; got != cmdlog.SaveMatrixClip {
		t.Errorf("Save flags = %#x, want %#x", got, cmdlog.SaveMatrixClip)
	}
	if got := Get[Clear](l, 1).Color; got != cmdlog.White {
		t.Errorf("Clear color = %#x, want white", got)
	}
}

func TestVisitableImmediately(t *testing.T) {
	l := New(WithChunkSize(64))
	for i := range 100 {
		Append(l, DrawRect{Rect: cmdlog.XYWH(float32(i), 0, 1, 1)})
		if got := Get[DrawRect](l, i).Rect.Left; got != float32(i) {
			t.Fatalf("entry %d left = %g", i, got)
		}
	}
	// Earlier entries survive chunk growth.
	for i := range 100 {
		if got := Get[DrawRect](l, i).Rect.Left; got != float32(i) {
			t.Fatalf("after growth entry %d left = %g", i, got)
		}
	}
}

func TestGetWrongKindPanics(t *testing.T) {
	l := New()
	Append(l, Save{})
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Get with wrong kind did not panic")
		}
		if !strings.HasPrefix(r.(string), "record: ") {
			t.Errorf("panic = %v", r)
		}
	}()
	Get[Restore](l, 0)
}

func TestReplaceAndAdopt(t *testing.T) {
	l := New()
	Append(l, PushCull{Rect: cmdlog.XYWH(0, 0, 10, 10)})
	Append(l, DrawRect{})
	Append(l, PopCull{})

	base := Adopt[PushCull](l, 0)
	if l.Kind(0) != KindNoOp {
		t.Fatalf("after Adopt kind = %v, want NoOp", l.Kind(0))
	}
	Replace(l, 0, PairedPushCull{Base: base, Skip: 2})

	if l.Kind(0) != KindPairedPushCull {
		t.Fatalf("kind = %v, want PairedPushCull", l.Kind(0))
	}
	p := Get[PairedPushCull](l, 0)
	if p.Skip != 2 || p.Base.Rect != cmdlog.XYWH(0, 0, 10, 10) {
		t.Errorf("PairedPushCull = %+v", *p)
	}

	Replace(l, 1, NoOp{})
	if l.Kind(1) != KindNoOp || l.Count() != 3 {
		t.Errorf("Replace changed layout: kind %v count %d", l.Kind(1), l.Count())
	}
}

type bumpMutator struct {
	NopMutator
}

func (bumpMutator) DrawRect(_ int, op *DrawRect) { op.Rect = op.Rect.Offset(1, 1) }

func TestMutateAll(t *testing.T) {
	l := New()
	Append(l, DrawRect{Rect: cmdlog.XYWH(0, 0, 1, 1)})
	Append(l, Save{})
	l.MutateAll(bumpMutator{})
	if got := Get[DrawRect](l, 0).Rect; got != cmdlog.XYWH(1, 1, 1, 1) {
		t.Errorf("rect = %v", got)
	}
}

func TestFrozenWritePanics(t *testing.T) {
	l := New()
	Append(l, Save{})
	l.Freeze()
	defer func() {
		if recover() == nil {
			t.Fatal("Append on frozen log did not panic")
		}
	}()
	Append(l, Restore{})
}

func TestReleaseBalancesPixelRefs(t *testing.T) {
	bm := cmdlog.NewBitmap(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	l := New()
	Append(l, DrawBitmap{Bitmap: bm.Retain()})
	Append(l, DrawSprite{Bitmap: bm.Retain()})
	Append(l, DrawBitmapMatrix{Bitmap: bm.Retain(), Matrix: cmdlog.Identity()})
	if got := bm.Pixels.RefCount(); got != 4 {
		t.Fatalf("RefCount = %d, want 4", got)
	}

	// Replacing destroys the old op.
	Replace(l, 1, NoOp{})
	if got := bm.Pixels.RefCount(); got != 3 {
		t.Fatalf("after Replace RefCount = %d, want 3", got)
	}

	l.Release()
	if got := bm.Pixels.RefCount(); got != 1 {
		t.Errorf("after Release RefCount = %d, want 1", got)
	}
	if !l.Released() {
		t.Error("Released() = false")
	}
}

func TestDoubleReleasePanics(t *testing.T) {
	l := New()
	l.Release()
	defer func() {
		if recover() == nil {
			t.Fatal("second Release did not panic")
		}
	}()
	l.Release()
}

func TestStats(t *testing.T) {
	l := New()
	Append(l, Save{})
	Append(l, DrawRect{})
	Append(l, DrawRect{})
	Append(l, NoOp{})
	Append(l, Restore{})

	s := l.Stats()
	if s.Count != 5 || s.Live() != 4 {
		t.Errorf("Count/Live = %d/%d, want 5/4", s.Count, s.Live())
	}
	if s.Inline != 3 {
		t.Errorf("Inline = %d, want 3", s.Inline)
	}
	if s.ByKind[KindDrawRect] != 2 {
		t.Errorf("DrawRect count = %d, want 2", s.ByKind[KindDrawRect])
	}
	if s.ArenaBytes == 0 {
		t.Error("ArenaBytes = 0, want out-of-line storage accounted")
	}
}

func TestString(t *testing.T) {
	l := New()
	Append(l, Save{Flags: cmdlog.SaveMatrixClip})
	Append(l, ClipRect{Rect: cmdlog.XYWH(0, 0, 5, 5), Op: cmdlog.OpIntersect})
	Append(l, Restore{})

	out := l.String()
	for _, want := range []string{"Save", "ClipRect", "intersect", "Restore"} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "\n"); n != 3 {
		t.Errorf("String() has %d lines, want 3", n)
	}
}
