package playback

import (
	"github.com/gogpu/cmdlog"
	"github.com/gogpu/cmdlog/record"
)

// drawer forwards each entry to a canvas. It is stateless beyond the
// canvas; skip decisions are made by the replay loop.
type drawer struct {
	c cmdlog.Canvas
}

var _ record.Visitor = (*drawer)(nil)

func (d *drawer) NoOp(record.NoOp)       {}
func (d *drawer) Restore(record.Restore) { d.c.Restore() }
func (d *drawer) Save(op record.Save)    { d.c.Save(op.Flags) }

func (d *drawer) SaveLayer(op record.SaveLayer) {
	d.c.SaveLayer(op.Bounds, op.Paint, op.Flags)
}

func (d *drawer) Concat(op record.Concat)       { d.c.Concat(op.Matrix) }
func (d *drawer) SetMatrix(op record.SetMatrix) { d.c.SetMatrix(op.Matrix) }

func (d *drawer) ClipPath(op record.ClipPath) {
	d.c.ClipPath(&op.Path, op.Op, op.AntiAlias)
}

func (d *drawer) ClipRRect(op record.ClipRRect) {
	d.c.ClipRRect(op.RRect, op.Op, op.AntiAlias)
}

func (d *drawer) ClipRect(op record.ClipRect) {
	d.c.ClipRect(op.Rect, op.Op, op.AntiAlias)
}

func (d *drawer) ClipRegion(op record.ClipRegion) {
	d.c.ClipRegion(&op.Region, op.Op)
}

func (d *drawer) Clear(op record.Clear) { d.c.Clear(op.Color) }

func (d *drawer) DrawBitmap(op record.DrawBitmap) {
	d.c.DrawBitmap(&op.Bitmap, op.Left, op.Top, op.Paint)
}

func (d *drawer) DrawBitmapMatrix(op record.DrawBitmapMatrix) {
	d.c.DrawBitmapMatrix(&op.Bitmap, op.Matrix, op.Paint)
}

func (d *drawer) DrawBitmapNine(op record.DrawBitmapNine) {
	d.c.DrawBitmapNine(&op.Bitmap, op.Center, op.Dst, op.Paint)
}

func (d *drawer) DrawBitmapRectToRect(op record.DrawBitmapRectToRect) {
	d.c.DrawBitmapRectToRect(&op.Bitmap, op.Src, op.Dst, op.Paint, op.Flags)
}

func (d *drawer) DrawDRRect(op record.DrawDRRect) {
	d.c.DrawDRRect(op.Outer, op.Inner, &op.Paint)
}

func (d *drawer) DrawOval(op record.DrawOval)   { d.c.DrawOval(op.Oval, &op.Paint) }
func (d *drawer) DrawPaint(op record.DrawPaint) { d.c.DrawPaint(&op.Paint) }
func (d *drawer) DrawPath(op record.DrawPath)   { d.c.DrawPath(&op.Path, &op.Paint) }

func (d *drawer) DrawPoints(op record.DrawPoints) {
	d.c.DrawPoints(op.Mode, op.Pts, &op.Paint)
}

func (d *drawer) DrawPosText(op record.DrawPosText) {
	d.c.DrawPosText(op.Text, op.Pos, &op.Paint)
}

func (d *drawer) DrawPosTextH(op record.DrawPosTextH) {
	d.c.DrawPosTextH(op.Text, op.XPos, op.Y, &op.Paint)
}

func (d *drawer) DrawRRect(op record.DrawRRect) { d.c.DrawRRect(op.RRect, &op.Paint) }
func (d *drawer) DrawRect(op record.DrawRect)   { d.c.DrawRect(op.Rect, &op.Paint) }

func (d *drawer) DrawSprite(op record.DrawSprite) {
	d.c.DrawSprite(&op.Bitmap, op.Left, op.Top, op.Paint)
}

func (d *drawer) DrawText(op record.DrawText) {
	d.c.DrawText(op.Text, op.X, op.Y, &op.Paint)
}

func (d *drawer) DrawTextOnPath(op record.DrawTextOnPath) {
	d.c.DrawTextOnPath(op.Text, &op.Path, op.Matrix, &op.Paint)
}

func (d *drawer) DrawVertices(op record.DrawVertices) {
	d.c.DrawVertices(op.Mode, op.Vertices, op.Texs, op.Colors, op.Indices, &op.Paint)
}

func (d *drawer) PushCull(op record.PushCull) { d.c.PushCull(op.Rect) }
func (d *drawer) PopCull(record.PopCull)      { d.c.PopCull() }

// Paired culls are handled by the replay loop; reaching one here means it
// was replayed without its skip check, which is still correct.
func (d *drawer) PairedPushCull(op record.PairedPushCull) { d.c.PushCull(op.Base.Rect) }

func (d *drawer) BoundedDrawPosTextH(op record.BoundedDrawPosTextH) {
	d.DrawPosTextH(op.Base)
}
