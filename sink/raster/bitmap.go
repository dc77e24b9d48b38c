package raster

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/cmdlog"
)

// aff3 converts a matrix to the x/image affine layout; both are row-major
// with the translation in the third column.
func aff3(m cmdlog.Matrix) f64.Aff3 {
	return f64.Aff3{
		float64(m.A), float64(m.B), float64(m.C),
		float64(m.D), float64(m.E), float64(m.F),
	}
}

func interpolator(paint *cmdlog.Paint) draw.Interpolator {
	if paint != nil && !paint.AntiAlias {
		return draw.NearestNeighbor
	}
	return draw.ApproxBiLinear
}

// drawImage maps the src part of bm through m (bitmap pixel space to
// local space) and the current matrix onto the target.
func (c *Canvas) drawImage(bm *cmdlog.Bitmap, src image.Rectangle, m cmdlog.Matrix, paint *cmdlog.Paint) {
	dst := c.clipped()
	if dst == nil || bm == nil || bm.Pixels == nil || src.Empty() {
		return
	}
	s2d := aff3(c.clip.Matrix().Multiply(m))
	interpolator(paint).Transform(dst, s2d, bm.Pixels.Image(), src, draw.Over, nil)
}

func (c *Canvas) DrawBitmap(bm *cmdlog.Bitmap, left, top float32, paint *cmdlog.Paint) {
	b := bm.Bounds()
	m := cmdlog.Translate(left-float32(b.Min.X), top-float32(b.Min.Y))
	c.drawImage(bm, b, m, paint)
}

func (c *Canvas) DrawBitmapMatrix(bm *cmdlog.Bitmap, m cmdlog.Matrix, paint *cmdlog.Paint) {
	b := bm.Bounds()
	c.drawImage(bm, b, m.Multiply(cmdlog.Translate(-float32(b.Min.X), -float32(b.Min.Y))), paint)
}

func (c *Canvas) DrawBitmapRectToRect(bm *cmdlog.Bitmap, src *cmdlog.Rect, dst cmdlog.Rect, paint *cmdlog.Paint, _ cmdlog.BitmapRectFlags) {
	b := bm.Bounds()
	sr := cmdlog.LTRB(0, 0, float32(b.Dx()), float32(b.Dy()))
	if src != nil {
		sr = *src
	}
	c.drawRectToRect(bm, sr, dst, paint)
}

// drawRectToRect draws sr, in bitmap coordinates relative to the bitmap's
// top-left corner, scaled into dst.
func (c *Canvas) drawRectToRect(bm *cmdlog.Bitmap, sr, dst cmdlog.Rect, paint *cmdlog.Paint) {
	sr, dst = sr.Sort(), dst.Sort()
	if sr.IsEmpty() || dst.IsEmpty() {
		return
	}
	b := bm.Bounds()
	origin := cmdlog.Translate(-float32(b.Min.X)-sr.Left, -float32(b.Min.Y)-sr.Top)
	scale := cmdlog.Scale(dst.Width()/sr.Width(), dst.Height()/sr.Height())
	m := cmdlog.Translate(dst.Left, dst.Top).Multiply(scale).Multiply(origin)

	ir := sr.Offset(float32(b.Min.X), float32(b.Min.Y)).RoundOut()
	rect := image.Rect(int(ir.Left), int(ir.Top), int(ir.Right), int(ir.Bottom)).Intersect(b)
	c.drawImage(bm, rect, m, paint)
}

// DrawBitmapNine keeps the corners at their natural size, stretches the
// edges along one axis and the center along both.
func (c *Canvas) DrawBitmapNine(bm *cmdlog.Bitmap, center cmdlog.IRect, dst cmdlog.Rect, paint *cmdlog.Paint) {
	w, h := float32(bm.Width()), float32(bm.Height())
	cl, ct := float32(center.Left), float32(center.Top)
	cr, cb := float32(center.Right), float32(center.Bottom)

	sx := [4]float32{0, cl, cr, w}
	sy := [4]float32{0, ct, cb, h}
	dx := [4]float32{dst.Left, dst.Left + cl, dst.Right - (w - cr), dst.Right}
	dy := [4]float32{dst.Top, dst.Top + ct, dst.Bottom - (h - cb), dst.Bottom}

	for j := range 3 {
		for i := range 3 {
			c.drawRectToRect(bm,
				cmdlog.LTRB(sx[i], sy[j], sx[i+1], sy[j+1]),
				cmdlog.LTRB(dx[i], dy[j], dx[i+1], dy[j+1]),
				paint)
		}
	}
}

// DrawSprite copies pixels in device space; the matrix does not apply.
func (c *Canvas) DrawSprite(bm *cmdlog.Bitmap, left, top int32, _ *cmdlog.Paint) {
	dst := c.clipped()
	if dst == nil || bm == nil || bm.Pixels == nil {
		return
	}
	b := bm.Bounds()
	r := image.Rect(int(left), int(top), int(left)+b.Dx(), int(top)+b.Dy())
	draw.Draw(dst, r, bm.Pixels.Image(), b.Min, draw.Over)
}
