package record

import (
	"fmt"
	"strings"
)

// Stats summarizes a log's contents.
type Stats struct {
	Count      int
	Inline     int
	ArenaBytes int
	ByKind     [NumKinds]int
}

// Stats counts entries per kind and reports the arena footprint.
func (l *Log) Stats() Stats {
	s := Stats{Count: len(l.tags), ArenaBytes: l.arena.Bytes()}
	for _, k := range l.tags {
		s.ByKind[k]++
		if inline[k] {
			s.Inline++
		}
	}
	for _, c := range l.chunks {
		if b, ok := c.(interface{ Bytes() int }); ok {
			s.ArenaBytes += b.Bytes()
		}
	}
	return s
}

// Live returns the number of entries that are not NoOp.
func (s Stats) Live() int { return s.Count - s.ByKind[KindNoOp] }

func (s Stats) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d entries (%d live, %d inline), %d arena bytes", s.Count, s.Live(), s.Inline, s.ArenaBytes)
	for k, n := range s.ByKind {
		if n > 0 {
			fmt.Fprintf(&sb, "\n  %-20s %d", Kind(k), n)
		}
	}
	return sb.String()
}

// String renders the log one entry per line.
func (l *Log) String() string {
	d := &describer{}
	for i := range l.tags {
		fmt.Fprintf(&d.sb, "%4d ", i)
		l.Visit(i, d)
		d.sb.WriteByte('\n')
	}
	return d.sb.String()
}

// Describe renders the entry at i on one line.
func (l *Log) Describe(i int) string {
	d := &describer{}
	l.Visit(i, d)
	return d.sb.String()
}

type describer struct {
	sb strings.Builder
}

func (d *describer) printf(format string, args ...any) {
	fmt.Fprintf(&d.sb, format, args...)
}

func (d *describer) NoOp(NoOp)       { d.printf("NoOp") }
func (d *describer) Restore(Restore) { d.printf("Restore") }
func (d *describer) Save(op Save)    { d.printf("Save flags=%#x", uint32(op.Flags)) }
func (d *describer) SaveLayer(op SaveLayer) {
	d.printf("SaveLayer flags=%#x bounds=%v paint=%t", uint32(op.Flags), op.Bounds, op.Paint != nil)
}
func (d *describer) Concat(op Concat)       { d.printf("Concat %v", op.Matrix) }
func (d *describer) SetMatrix(op SetMatrix) { d.printf("SetMatrix %v", op.Matrix) }
func (d *describer) ClipPath(op ClipPath) {
	d.printf("ClipPath %v op=%v aa=%t", op.Path.Bounds(), op.Op, op.AntiAlias)
}
func (d *describer) ClipRRect(op ClipRRect) {
	d.printf("ClipRRect %v op=%v aa=%t", op.RRect.Rect, op.Op, op.AntiAlias)
}
func (d *describer) ClipRect(op ClipRect) {
	d.printf("ClipRect %v op=%v aa=%t", op.Rect, op.Op, op.AntiAlias)
}
func (d *describer) ClipRegion(op ClipRegion) {
	d.printf("ClipRegion %v op=%v", op.Region.Bounds(), op.Op)
}
func (d *describer) Clear(op Clear) { d.printf("Clear %#08x", uint32(op.Color)) }
func (d *describer) DrawBitmap(op DrawBitmap) {
	d.printf("DrawBitmap %dx%d at (%g,%g)", op.Bitmap.Width(), op.Bitmap.Height(), op.Left, op.Top)
}
func (d *describer) DrawBitmapMatrix(op DrawBitmapMatrix) {
	d.printf("DrawBitmapMatrix %dx%d %v", op.Bitmap.Width(), op.Bitmap.Height(), op.Matrix)
}
func (d *describer) DrawBitmapNine(op DrawBitmapNine) {
	d.printf("DrawBitmapNine %dx%d center=%v dst=%v", op.Bitmap.Width(), op.Bitmap.Height(), op.Center, op.Dst)
}
func (d *describer) DrawBitmapRectToRect(op DrawBitmapRectToRect) {
	d.printf("DrawBitmapRectToRect %dx%d src=%v dst=%v", op.Bitmap.Width(), op.Bitmap.Height(), op.Src, op.Dst)
}
func (d *describer) DrawDRRect(op DrawDRRect) {
	d.printf("DrawDRRect outer=%v inner=%v", op.Outer.Rect, op.Inner.Rect)
}
func (d *describer) DrawOval(op DrawOval)   { d.printf("DrawOval %v", op.Oval) }
func (d *describer) DrawPaint(op DrawPaint) { d.printf("DrawPaint %#08x", uint32(op.Paint.Color)) }
func (d *describer) DrawPath(op DrawPath)   { d.printf("DrawPath %v", op.Path.Bounds()) }
func (d *describer) DrawPoints(op DrawPoints) {
	d.printf("DrawPoints mode=%d n=%d", op.Mode, len(op.Pts))
}
func (d *describer) DrawPosText(op DrawPosText) {
	d.printf("DrawPosText %q n=%d", op.Paint.Runes(op.Text), len(op.Pos))
}
func (d *describer) DrawPosTextH(op DrawPosTextH) {
	d.printf("DrawPosTextH %q n=%d y=%g", op.Paint.Runes(op.Text), len(op.XPos), op.Y)
}
func (d *describer) DrawRRect(op DrawRRect) { d.printf("DrawRRect %v", op.RRect.Rect) }
func (d *describer) DrawRect(op DrawRect)   { d.printf("DrawRect %v", op.Rect) }
func (d *describer) DrawSprite(op DrawSprite) {
	d.printf("DrawSprite %dx%d at (%d,%d)", op.Bitmap.Width(), op.Bitmap.Height(), op.Left, op.Top)
}
func (d *describer) DrawText(op DrawText) {
	d.printf("DrawText %q at (%g,%g)", op.Paint.Runes(op.Text), op.X, op.Y)
}
func (d *describer) DrawTextOnPath(op DrawTextOnPath) {
	d.printf("DrawTextOnPath %q path=%v", op.Paint.Runes(op.Text), op.Path.Bounds())
}
func (d *describer) DrawVertices(op DrawVertices) {
	d.printf("DrawVertices mode=%d n=%d indices=%d", op.Mode, len(op.Vertices), len(op.Indices))
}
func (d *describer) PushCull(op PushCull) { d.printf("PushCull %v", op.Rect) }
func (d *describer) PopCull(PopCull)      { d.printf("PopCull") }
func (d *describer) PairedPushCull(op PairedPushCull) {
	d.printf("PairedPushCull %v skip=%d", op.Base.Rect, op.Skip)
}
func (d *describer) BoundedDrawPosTextH(op BoundedDrawPosTextH) {
	d.printf("BoundedDrawPosTextH %q n=%d y=%g in [%g,%g]",
		op.Base.Paint.Runes(op.Base.Text), len(op.Base.XPos), op.Base.Y, op.MinY, op.MaxY)
}
