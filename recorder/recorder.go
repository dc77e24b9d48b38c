// Package recorder captures canvas calls into a record.Log.
package recorder

import (
	"github.com/gogpu/cmdlog"
	"github.com/gogpu/cmdlog/internal/clip"
	"github.com/gogpu/cmdlog/record"
)

// Recorder is a cmdlog.Canvas that draws nothing: every call appends one
// operation to a log. Arguments are copied once into the operation, so
// the caller may reuse its paints, paths and slices after each call.
//
// Example:
//
//	rec := recorder.New(800, 600)
//	rec.Save(cmdlog.SaveMatrixClip)
//	rec.ClipRect(cmdlog.XYWH(0, 0, 100, 100), cmdlog.OpIntersect, false)
//	rec.DrawRect(cmdlog.XYWH(10, 10, 50, 50), cmdlog.NewPaint())
//	rec.Restore()
//	log := rec.Log()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	log           *record.Log

	// clip mirrors the matrix and clip so that query methods answer
	// like a real canvas would at this point of the recording.
	clip *clip.Stack
}

var _ cmdlog.Canvas = (*Recorder)(nil)

// New creates a Recorder writing into a fresh log.
func New(width, height int, opts ...record.Option) *Recorder {
	return NewForLog(record.New(opts...), width, height)
}

// NewForLog creates a Recorder appending to l.
func NewForLog(l *record.Log, width, height int) *Recorder {
	return &Recorder{
		width:  width,
		height: height,
		log:    l,
		clip:   clip.NewStack(width, height),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Log returns the log being written, or nil after Forget.
func (r *Recorder) Log() *record.Log {
	return r.log
}

// Forget detaches the log. Later calls are ignored; the caller that
// owns the log decides when it is released.
func (r *Recorder) Forget() {
	r.log = nil
}

// SaveDepth returns the number of Saves not yet restored.
func (r *Recorder) SaveDepth() int {
	return r.clip.Depth()
}

func add[T record.Op](r *Recorder, op T) {
	if r.log == nil {
		return
	}
	record.Append(r.log, op)
}

func paintOrDefault(p *cmdlog.Paint) cmdlog.Paint {
	if p == nil {
		return *cmdlog.NewPaint()
	}
	return *p
}

func copyRect(r *cmdlog.Rect) *cmdlog.Rect {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

func copyPath(p *cmdlog.Path) cmdlog.Path {
	if p == nil {
		return cmdlog.Path{}
	}
	return *p.Clone()
}

// --------------------------------------------------------------------------
// State Management
// --------------------------------------------------------------------------

// Save records a Save.
func (r *Recorder) Save(flags cmdlog.SaveFlags) {
	if r.log == nil {
		return
	}
	r.clip.Save()
	add(r, record.Save{Flags: flags})
}

// SaveLayer records a SaveLayer. With SaveClipToLayer the bounds also
// narrow the clip until the matching Restore.
func (r *Recorder) SaveLayer(bounds *cmdlog.Rect, paint *cmdlog.Paint, flags cmdlog.SaveFlags) {
	if r.log == nil {
		return
	}
	r.clip.Save()
	if bounds != nil && flags&cmdlog.SaveClipToLayer != 0 {
		r.clip.ClipRect(*bounds, cmdlog.OpIntersect)
	}
	add(r, record.SaveLayer{Bounds: copyRect(bounds), Paint: paint.Clone(), Flags: flags})
}

// Restore records a Restore. A Restore without a matching Save is
// dropped.
func (r *Recorder) Restore() {
	if r.log == nil {
		return
	}
	if !r.clip.Restore() {
		cmdlog.Logger().Warn("recorder: Restore without matching Save ignored",
			"entry", r.log.Count())
		return
	}
	add(r, record.Restore{})
}

// Concat records a matrix concatenation.
func (r *Recorder) Concat(m cmdlog.Matrix) {
	if r.log == nil {
		return
	}
	r.clip.Concat(m)
	add(r, record.Concat{Matrix: m})
}

// SetMatrix records a matrix replacement.
func (r *Recorder) SetMatrix(m cmdlog.Matrix) {
	if r.log == nil {
		return
	}
	r.clip.SetMatrix(m)
	add(r, record.SetMatrix{Matrix: m})
}

// --------------------------------------------------------------------------
// Clipping
// --------------------------------------------------------------------------

// ClipRect records a rectangle clip.
func (r *Recorder) ClipRect(rect cmdlog.Rect, op cmdlog.RegionOp, antiAlias bool) {
	if r.log == nil {
		return
	}
	r.clip.ClipRect(rect, op)
	add(r, record.ClipRect{Rect: rect, Op: op, AntiAlias: antiAlias})
}

// ClipRRect records a rounded rectangle clip.
func (r *Recorder) ClipRRect(rr cmdlog.RRect, op cmdlog.RegionOp, antiAlias bool) {
	if r.log == nil {
		return
	}
	r.clip.ClipRRect(rr, op)
	add(r, record.ClipRRect{RRect: rr, Op: op, AntiAlias: antiAlias})
}

// ClipPath records a path clip. The path is copied.
func (r *Recorder) ClipPath(path *cmdlog.Path, op cmdlog.RegionOp, antiAlias bool) {
	if r.log == nil {
		return
	}
	r.clip.ClipPath(path, op)
	add(r, record.ClipPath{Path: copyPath(path), Op: op, AntiAlias: antiAlias})
}

// ClipRegion records a device-space region clip. The region is copied.
func (r *Recorder) ClipRegion(rgn *cmdlog.Region, op cmdlog.RegionOp) {
	if r.log == nil {
		return
	}
	r.clip.ClipRegion(rgn, op)
	var c cmdlog.Region
	if rgn != nil {
		c = *rgn.Clone()
	}
	add(r, record.ClipRegion{Region: c, Op: op})
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// Clear records a Clear.
func (r *Recorder) Clear(c cmdlog.Color) {
	add(r, record.Clear{Color: c})
}

// DrawPaint records a DrawPaint.
func (r *Recorder) DrawPaint(paint *cmdlog.Paint) {
	add(r, record.DrawPaint{Paint: paintOrDefault(paint)})
}

// DrawPoints records a DrawPoints; pts is copied into the arena.
func (r *Recorder) DrawPoints(mode cmdlog.PointMode, pts []cmdlog.Point, paint *cmdlog.Paint) {
	if r.log == nil {
		return
	}
	add(r, record.DrawPoints{
		Paint: paintOrDefault(paint),
		Mode:  mode,
		Pts:   r.log.Arena().CopyPoints(pts),
	})
}

// DrawRect records a DrawRect.
func (r *Recorder) DrawRect(rect cmdlog.Rect, paint *cmdlog.Paint) {
	add(r, record.DrawRect{Rect: rect, Paint: paintOrDefault(paint)})
}

// DrawOval records a DrawOval.
func (r *Recorder) DrawOval(oval cmdlog.Rect, paint *cmdlog.Paint) {
	add(r, record.DrawOval{Oval: oval, Paint: paintOrDefault(paint)})
}

// DrawRRect records a DrawRRect.
func (r *Recorder) DrawRRect(rr cmdlog.RRect, paint *cmdlog.Paint) {
	add(r, record.DrawRRect{RRect: rr, Paint: paintOrDefault(paint)})
}

// DrawDRRect records a DrawDRRect.
func (r *Recorder) DrawDRRect(outer, inner cmdlog.RRect, paint *cmdlog.Paint) {
	add(r, record.DrawDRRect{Outer: outer, Inner: inner, Paint: paintOrDefault(paint)})
}

// DrawPath records a DrawPath. The path is copied.
func (r *Recorder) DrawPath(path *cmdlog.Path, paint *cmdlog.Paint) {
	if r.log == nil {
		return
	}
	add(r, record.DrawPath{Path: copyPath(path), Paint: paintOrDefault(paint)})
}

// --------------------------------------------------------------------------
// Bitmaps
// --------------------------------------------------------------------------

// DrawBitmap records a DrawBitmap, retaining the pixels.
func (r *Recorder) DrawBitmap(bm *cmdlog.Bitmap, left, top float32, paint *cmdlog.Paint) {
	if r.log == nil {
		return
	}
	add(r, record.DrawBitmap{Paint: paint.Clone(), Bitmap: bm.Retain(), Left: left, Top: top})
}

// DrawBitmapRectToRect records a DrawBitmapRectToRect, retaining the
// pixels.
func (r *Recorder) DrawBitmapRectToRect(bm *cmdlog.Bitmap, src *cmdlog.Rect, dst cmdlog.Rect, paint *cmdlog.Paint, flags cmdlog.BitmapRectFlags) {
	if r.log == nil {
		return
	}
	add(r, record.DrawBitmapRectToRect{
		Paint:  paint.Clone(),
		Bitmap: bm.Retain(),
		Src:    copyRect(src),
		Dst:    dst,
		Flags:  flags,
	})
}

// DrawBitmapMatrix records a DrawBitmapMatrix, retaining the pixels.
func (r *Recorder) DrawBitmapMatrix(bm *cmdlog.Bitmap, m cmdlog.Matrix, paint *cmdlog.Paint) {
	if r.log == nil {
		return
	}
	add(r, record.DrawBitmapMatrix{Paint: paint.Clone(), Bitmap: bm.Retain(), Matrix: m})
}

// DrawBitmapNine records a DrawBitmapNine, retaining the pixels.
func (r *Recorder) DrawBitmapNine(bm *cmdlog.Bitmap, center cmdlog.IRect, dst cmdlog.Rect, paint *cmdlog.Paint) {
	if r.log == nil {
		return
	}
	add(r, record.DrawBitmapNine{Paint: paint.Clone(), Bitmap: bm.Retain(), Center: center, Dst: dst})
}

// DrawSprite records a DrawSprite, retaining the pixels.
func (r *Recorder) DrawSprite(bm *cmdlog.Bitmap, left, top int32, paint *cmdlog.Paint) {
	if r.log == nil {
		return
	}
	add(r, record.DrawSprite{Paint: paint.Clone(), Bitmap: bm.Retain(), Left: left, Top: top})
}

// --------------------------------------------------------------------------
// Text
// --------------------------------------------------------------------------

// DrawText records a DrawText; text is copied into the arena.
func (r *Recorder) DrawText(text []byte, x, y float32, paint *cmdlog.Paint) {
	if r.log == nil {
		return
	}
	add(r, record.DrawText{
		Text:  r.log.Arena().CopyBytes(text),
		X:     x,
		Y:     y,
		Paint: paintOrDefault(paint),
	})
}

// DrawPosText records a DrawPosText. One position is kept per glyph, as
// counted under the paint's text encoding.
func (r *Recorder) DrawPosText(text []byte, pos []cmdlog.Point, paint *cmdlog.Paint) {
	if r.log == nil {
		return
	}
	p := paintOrDefault(paint)
	n := min(p.CountText(text), len(pos))
	a := r.log.Arena()
	add(r, record.DrawPosText{
		Text:  a.CopyBytes(text),
		Pos:   a.CopyPoints(pos[:n]),
		Paint: p,
	})
}

// DrawPosTextH records a DrawPosTextH, keeping one x position per glyph.
func (r *Recorder) DrawPosTextH(text []byte, xpos []float32, constY float32, paint *cmdlog.Paint) {
	if r.log == nil {
		return
	}
	p := paintOrDefault(paint)
	n := min(p.CountText(text), len(xpos))
	a := r.log.Arena()
	add(r, record.DrawPosTextH{
		Text:  a.CopyBytes(text),
		XPos:  a.CopyScalars(xpos[:n]),
		Y:     constY,
		Paint: p,
	})
}

// DrawTextOnPath records a DrawTextOnPath. The path and matrix are copied.
func (r *Recorder) DrawTextOnPath(text []byte, path *cmdlog.Path, m *cmdlog.Matrix, paint *cmdlog.Paint) {
	if r.log == nil {
		return
	}
	var mc *cmdlog.Matrix
	if m != nil {
		c := *m
		mc = &c
	}
	add(r, record.DrawTextOnPath{
		Text:   r.log.Arena().CopyBytes(text),
		Path:   copyPath(path),
		Matrix: mc,
		Paint:  paintOrDefault(paint),
	})
}

// --------------------------------------------------------------------------
// Meshes and culling
// --------------------------------------------------------------------------

// DrawVertices records a DrawVertices. Every array is copied; absent
// arrays stay nil.
func (r *Recorder) DrawVertices(mode cmdlog.VertexMode, verts, texs []cmdlog.Point, colors []cmdlog.Color, indices []uint16, paint *cmdlog.Paint) {
	if r.log == nil {
		return
	}
	a := r.log.Arena()
	add(r, record.DrawVertices{
		Paint:    paintOrDefault(paint),
		Mode:     mode,
		Vertices: a.CopyPoints(verts),
		Texs:     a.CopyPoints(texs),
		Colors:   a.CopyColors(colors),
		Indices:  a.CopyIndices(indices),
	})
}

// PushCull records the start of a culled range.
func (r *Recorder) PushCull(rect cmdlog.Rect) {
	add(r, record.PushCull{Rect: rect})
}

// PopCull records the end of the innermost culled range.
func (r *Recorder) PopCull() {
	add(r, record.PopCull{})
}

// --------------------------------------------------------------------------
// Queries
// --------------------------------------------------------------------------

// IsClipEmpty reports whether the clip recorded so far is empty.
func (r *Recorder) IsClipEmpty() bool {
	return r.clip.IsEmpty()
}

// QuickReject reports whether rect is certainly outside the clip
// recorded so far.
func (r *Recorder) QuickReject(rect cmdlog.Rect) bool {
	return r.clip.QuickReject(rect)
}

// QuickRejectY reports whether the band [top, bottom] is certainly
// outside the clip recorded so far.
func (r *Recorder) QuickRejectY(top, bottom float32) bool {
	return r.clip.QuickRejectY(top, bottom)
}
