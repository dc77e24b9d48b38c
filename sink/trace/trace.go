// Package trace provides a canvas that writes down every call it
// receives. It is the reference sink for tests and for cmdlogdump.
package trace

import (
	"fmt"
	"strings"

	"github.com/gogpu/cmdlog"
	"github.com/gogpu/cmdlog/internal/clip"
	"github.com/gogpu/cmdlog/sink"
)

func init() {
	sink.Register("trace", func(width, height int) cmdlog.Canvas {
		return New(width, height)
	})
}

// Canvas records one line per call, in the form Name(args). It tracks the
// matrix and clip so that replay sees the same culling decisions a real
// device would make.
type Canvas struct {
	calls   []string
	effects []string
	clip    *clip.Stack
}

var _ cmdlog.Canvas = (*Canvas)(nil)

// New creates a trace canvas with a width x height device clip.
func New(width, height int) *Canvas {
	return &Canvas{clip: clip.NewStack(width, height)}
}

// Calls returns the recorded lines.
func (c *Canvas) Calls() []string {
	return c.calls
}

// Names returns the method name of every recorded call.
func (c *Canvas) Names() []string {
	names := make([]string, len(c.calls))
	for i, call := range c.calls {
		name, _, _ := strings.Cut(call, "(")
		names[i] = name
	}
	return names
}

// Effects returns one line per call that reached the device, tagged with
// the matrix and device clip bounds in force. Positioned text is written
// in one form whether or not it was drawn with a constant baseline, so
// two call sequences that differ only in encoding have equal effects.
func (c *Canvas) Effects() []string {
	return c.effects
}

// String returns the calls one per line.
func (c *Canvas) String() string {
	return strings.Join(c.calls, "\n")
}

// Reset forgets the calls and restores the initial clip.
func (c *Canvas) Reset() {
	c.calls = c.calls[:0]
	c.effects = c.effects[:0]
	c.clip.Reset()
}

func (c *Canvas) add(name string, args ...any) {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, a)
	}
	b.WriteByte(')')
	call := b.String()
	c.calls = append(c.calls, call)

	if name == "Clear" || (strings.HasPrefix(name, "Draw") && !strings.HasPrefix(name, "DrawPosText")) {
		c.effect(call)
	}
}

func (c *Canvas) effect(what string) {
	c.effects = append(c.effects, fmt.Sprintf("%s m=%v clip=%s", what, c.clip.Matrix(), rect(c.clip.Bounds())))
}

func posText(text []byte, pos []cmdlog.Point) string {
	return fmt.Sprintf("PosText(%q, %v)", text, pos)
}

func rect(r cmdlog.Rect) string {
	return fmt.Sprintf("[%g %g %g %g]", r.Left, r.Top, r.Right, r.Bottom)
}

func bitmap(bm *cmdlog.Bitmap) string {
	if bm == nil {
		return "nil"
	}
	return fmt.Sprintf("%dx%d", bm.Width(), bm.Height())
}

func (c *Canvas) Save(flags cmdlog.SaveFlags) {
	c.clip.Save()
	c.add("Save", fmt.Sprintf("%#x", uint32(flags)))
}

func (c *Canvas) SaveLayer(bounds *cmdlog.Rect, _ *cmdlog.Paint, flags cmdlog.SaveFlags) {
	c.clip.Save()
	b := "nil"
	if bounds != nil {
		b = rect(*bounds)
		if flags&cmdlog.SaveClipToLayer != 0 {
			c.clip.ClipRect(*bounds, cmdlog.OpIntersect)
		}
	}
	c.add("SaveLayer", b, fmt.Sprintf("%#x", uint32(flags)))
}

func (c *Canvas) Restore() {
	c.clip.Restore()
	c.add("Restore")
}

func (c *Canvas) Concat(m cmdlog.Matrix) {
	c.clip.Concat(m)
	c.add("Concat", m)
}

func (c *Canvas) SetMatrix(m cmdlog.Matrix) {
	c.clip.SetMatrix(m)
	c.add("SetMatrix", m)
}

func (c *Canvas) ClipRect(r cmdlog.Rect, op cmdlog.RegionOp, _ bool) {
	c.clip.ClipRect(r, op)
	c.add("ClipRect", rect(r), op)
}

func (c *Canvas) ClipRRect(rr cmdlog.RRect, op cmdlog.RegionOp, _ bool) {
	c.clip.ClipRRect(rr, op)
	c.add("ClipRRect", rect(rr.Rect), op)
}

func (c *Canvas) ClipPath(path *cmdlog.Path, op cmdlog.RegionOp, _ bool) {
	c.clip.ClipPath(path, op)
	c.add("ClipPath", rect(path.Bounds()), op)
}

func (c *Canvas) ClipRegion(rgn *cmdlog.Region, op cmdlog.RegionOp) {
	c.clip.ClipRegion(rgn, op)
	c.add("ClipRegion", rgn.Bounds(), op)
}

func (c *Canvas) Clear(col cmdlog.Color) { c.add("Clear", fmt.Sprintf("%#08x", uint32(col))) }

func (c *Canvas) DrawPaint(_ *cmdlog.Paint) { c.add("DrawPaint") }

func (c *Canvas) DrawPoints(mode cmdlog.PointMode, pts []cmdlog.Point, _ *cmdlog.Paint) {
	c.add("DrawPoints", mode, len(pts))
}

func (c *Canvas) DrawRect(r cmdlog.Rect, _ *cmdlog.Paint)    { c.add("DrawRect", rect(r)) }
func (c *Canvas) DrawOval(r cmdlog.Rect, _ *cmdlog.Paint)    { c.add("DrawOval", rect(r)) }
func (c *Canvas) DrawRRect(rr cmdlog.RRect, _ *cmdlog.Paint) { c.add("DrawRRect", rect(rr.Rect)) }

func (c *Canvas) DrawDRRect(outer, inner cmdlog.RRect, _ *cmdlog.Paint) {
	c.add("DrawDRRect", rect(outer.Rect), rect(inner.Rect))
}

func (c *Canvas) DrawPath(path *cmdlog.Path, _ *cmdlog.Paint) {
	c.add("DrawPath", rect(path.Bounds()))
}

func (c *Canvas) DrawBitmap(bm *cmdlog.Bitmap, left, top float32, _ *cmdlog.Paint) {
	c.add("DrawBitmap", bitmap(bm), left, top)
}

func (c *Canvas) DrawBitmapRectToRect(bm *cmdlog.Bitmap, _ *cmdlog.Rect, dst cmdlog.Rect, _ *cmdlog.Paint, _ cmdlog.BitmapRectFlags) {
	c.add("DrawBitmapRectToRect", bitmap(bm), rect(dst))
}

func (c *Canvas) DrawBitmapMatrix(bm *cmdlog.Bitmap, m cmdlog.Matrix, _ *cmdlog.Paint) {
	c.add("DrawBitmapMatrix", bitmap(bm), m)
}

func (c *Canvas) DrawBitmapNine(bm *cmdlog.Bitmap, _ cmdlog.IRect, dst cmdlog.Rect, _ *cmdlog.Paint) {
	c.add("DrawBitmapNine", bitmap(bm), rect(dst))
}

func (c *Canvas) DrawSprite(bm *cmdlog.Bitmap, left, top int32, _ *cmdlog.Paint) {
	c.add("DrawSprite", bitmap(bm), left, top)
}

func (c *Canvas) DrawText(text []byte, x, y float32, _ *cmdlog.Paint) {
	c.add("DrawText", fmt.Sprintf("%q", text), x, y)
}

func (c *Canvas) DrawPosText(text []byte, pos []cmdlog.Point, _ *cmdlog.Paint) {
	c.add("DrawPosText", fmt.Sprintf("%q", text), len(pos))
	c.effect(posText(text, pos))
}

func (c *Canvas) DrawPosTextH(text []byte, xpos []float32, constY float32, _ *cmdlog.Paint) {
	c.add("DrawPosTextH", fmt.Sprintf("%q", text), len(xpos), constY)
	pos := make([]cmdlog.Point, len(xpos))
	for i, x := range xpos {
		pos[i] = cmdlog.Pt(x, constY)
	}
	c.effect(posText(text, pos))
}

func (c *Canvas) DrawTextOnPath(text []byte, path *cmdlog.Path, _ *cmdlog.Matrix, _ *cmdlog.Paint) {
	c.add("DrawTextOnPath", fmt.Sprintf("%q", text), rect(path.Bounds()))
}

func (c *Canvas) DrawVertices(mode cmdlog.VertexMode, verts, _ []cmdlog.Point, _ []cmdlog.Color, indices []uint16, _ *cmdlog.Paint) {
	c.add("DrawVertices", mode, len(verts), len(indices))
}

func (c *Canvas) PushCull(r cmdlog.Rect) { c.add("PushCull", rect(r)) }
func (c *Canvas) PopCull()               { c.add("PopCull") }

func (c *Canvas) IsClipEmpty() bool                     { return c.clip.IsEmpty() }
func (c *Canvas) QuickReject(r cmdlog.Rect) bool        { return c.clip.QuickReject(r) }
func (c *Canvas) QuickRejectY(top, bottom float32) bool { return c.clip.QuickRejectY(top, bottom) }
