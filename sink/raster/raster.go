// Package raster provides a software canvas that renders a playback into
// an *image.RGBA.
//
// Geometry is scan-converted with golang.org/x/image/vector, bitmaps are
// resampled with golang.org/x/image/draw and text is drawn with
// golang.org/x/image/font. Clips are applied by their device-space bounds,
// which is exact for axis-aligned rectangles and conservative otherwise.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/chewxy/math32"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/cmdlog"
	"github.com/gogpu/cmdlog/internal/clip"
	"github.com/gogpu/cmdlog/sink"
)

func init() {
	sink.Register("raster", func(width, height int) cmdlog.Canvas {
		return New(width, height)
	})
}

// flattenTolerance is the curve flattening tolerance in device pixels.
const flattenTolerance = 0.25

// layer is an offscreen target opened by SaveLayer.
type layer struct {
	img   *image.RGBA
	alpha uint8
	// depth is the save depth that opened the layer.
	depth int
}

// Canvas renders onto an RGBA image. It is not safe for concurrent use;
// give each goroutine its own Canvas.
type Canvas struct {
	img    *image.RGBA
	clip   *clip.Stack
	layers []layer
	ras    *vector.Rasterizer

	warnedFace bool
}

var _ cmdlog.Canvas = (*Canvas)(nil)

// New creates a transparent width x height canvas.
func New(width, height int) *Canvas {
	return NewForImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewForImage creates a canvas drawing onto img. The image origin must be
// (0, 0).
func NewForImage(img *image.RGBA) *Canvas {
	b := img.Bounds()
	return &Canvas{
		img:  img,
		clip: clip.NewStack(b.Dx(), b.Dy()),
		ras:  &vector.Rasterizer{},
	}
}

// Image returns the rendered image. Open layers are not included.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// EncodePNG writes the image as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG writes the image to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// target returns the innermost layer, or the image.
func (c *Canvas) target() *image.RGBA {
	if n := len(c.layers); n > 0 {
		return c.layers[n-1].img
	}
	return c.img
}

// clipped returns the part of the target inside the clip bounds, or nil
// when the clip is empty.
func (c *Canvas) clipped() *image.RGBA {
	if c.clip.IsEmpty() {
		return nil
	}
	ir := c.clip.Bounds().RoundOut()
	r := image.Rect(int(ir.Left), int(ir.Top), int(ir.Right), int(ir.Bottom))
	dst := c.target()
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return nil
	}
	return dst.SubImage(r).(*image.RGBA)
}

// --------------------------------------------------------------------------
// State
// --------------------------------------------------------------------------

func (c *Canvas) Save(cmdlog.SaveFlags) {
	c.clip.Save()
}

func (c *Canvas) SaveLayer(bounds *cmdlog.Rect, paint *cmdlog.Paint, flags cmdlog.SaveFlags) {
	c.clip.Save()
	if bounds != nil && flags&cmdlog.SaveClipToLayer != 0 {
		c.clip.ClipRect(*bounds, cmdlog.OpIntersect)
	}
	alpha := uint8(0xff)
	if paint != nil {
		alpha = paint.Color.A()
	}
	c.layers = append(c.layers, layer{
		img:   image.NewRGBA(c.img.Bounds()),
		alpha: alpha,
		depth: c.clip.Depth(),
	})
}

func (c *Canvas) Restore() {
	if n := len(c.layers); n > 0 && c.layers[n-1].depth == c.clip.Depth() {
		top := c.layers[n-1]
		c.layers = c.layers[:n-1]
		under := c.target()
		mask := image.NewUniform(color.Alpha{A: top.alpha})
		draw.DrawMask(under, under.Bounds(), top.img, image.Point{}, mask, image.Point{}, draw.Over)
	}
	c.clip.Restore()
}

func (c *Canvas) Concat(m cmdlog.Matrix)    { c.clip.Concat(m) }
func (c *Canvas) SetMatrix(m cmdlog.Matrix) { c.clip.SetMatrix(m) }

func (c *Canvas) ClipRect(r cmdlog.Rect, op cmdlog.RegionOp, _ bool) {
	c.clip.ClipRect(r, op)
}

func (c *Canvas) ClipRRect(rr cmdlog.RRect, op cmdlog.RegionOp, _ bool) {
	c.clip.ClipRRect(rr, op)
}

func (c *Canvas) ClipPath(path *cmdlog.Path, op cmdlog.RegionOp, _ bool) {
	c.clip.ClipPath(path, op)
}

func (c *Canvas) ClipRegion(rgn *cmdlog.Region, op cmdlog.RegionOp) {
	c.clip.ClipRegion(rgn, op)
}

func (c *Canvas) IsClipEmpty() bool                     { return c.clip.IsEmpty() }
func (c *Canvas) QuickReject(r cmdlog.Rect) bool        { return c.clip.QuickReject(r) }
func (c *Canvas) QuickRejectY(top, bottom float32) bool { return c.clip.QuickRejectY(top, bottom) }

// Cull markers are hints for replay; a raster device has nothing to do.
func (c *Canvas) PushCull(cmdlog.Rect) {}
func (c *Canvas) PopCull()             {}

// --------------------------------------------------------------------------
// Geometry
// --------------------------------------------------------------------------

func (c *Canvas) Clear(col cmdlog.Color) {
	dst := c.target()
	draw.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) DrawPaint(paint *cmdlog.Paint) {
	dst := c.clipped()
	if dst == nil {
		return
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(paint.Color), image.Point{}, draw.Over)
}

func (c *Canvas) DrawRect(r cmdlog.Rect, paint *cmdlog.Paint) {
	c.drawPath(cmdlog.NewPath().AddRect(r.Sort()), paint)
}

func (c *Canvas) DrawOval(r cmdlog.Rect, paint *cmdlog.Paint) {
	c.drawPath(cmdlog.NewPath().AddOval(r.Sort()), paint)
}

func (c *Canvas) DrawRRect(rr cmdlog.RRect, paint *cmdlog.Paint) {
	c.drawPath(cmdlog.NewPath().AddRRect(rr), paint)
}

// DrawDRRect fills between the two contours; the inner one is wound in
// reverse so that it cancels the outer one.
func (c *Canvas) DrawDRRect(outer, inner cmdlog.RRect, paint *cmdlog.Paint) {
	dst := c.clipped()
	if dst == nil {
		return
	}
	m := c.clip.Matrix()
	polys := cmdlog.NewPath().AddRRect(outer).Transform(m).Flatten(flattenTolerance)
	for _, p := range cmdlog.NewPath().AddRRect(inner).Transform(m).Flatten(flattenTolerance) {
		polys = append(polys, reversed(p))
	}
	c.fillPolygons(dst, polys, paint.Color)
}

func (c *Canvas) DrawPath(path *cmdlog.Path, paint *cmdlog.Paint) {
	if path.IsEmpty() {
		return
	}
	c.drawPath(path, paint)
}

func (c *Canvas) DrawPoints(mode cmdlog.PointMode, pts []cmdlog.Point, paint *cmdlog.Paint) {
	dst := c.clipped()
	if dst == nil || len(pts) == 0 {
		return
	}
	m := c.clip.Matrix()
	dev := make([]cmdlog.Point, len(pts))
	for i, p := range pts {
		dev[i] = m.MapPoint(p)
	}
	half := strokeHalfWidth(paint)

	switch mode {
	case cmdlog.PointsMode:
		for _, p := range dev {
			c.fillPolygons(dst, [][]cmdlog.Point{{
				{X: p.X - half, Y: p.Y - half},
				{X: p.X + half, Y: p.Y - half},
				{X: p.X + half, Y: p.Y + half},
				{X: p.X - half, Y: p.Y + half},
			}}, paint.Color)
		}
	case cmdlog.LinesMode:
		var quads [][]cmdlog.Point
		for i := 0; i+1 < len(dev); i += 2 {
			quads = appendSegment(quads, dev[i], dev[i+1], half)
		}
		c.fillPolygons(dst, quads, paint.Color)
	case cmdlog.PolygonMode:
		c.fillPolygons(dst, strokePolyline(dev, half), paint.Color)
	}
}

func (c *Canvas) DrawVertices(mode cmdlog.VertexMode, verts, _ []cmdlog.Point, colors []cmdlog.Color, indices []uint16, paint *cmdlog.Paint) {
	dst := c.clipped()
	if dst == nil {
		return
	}
	idx := func(i int) int { return i }
	n := len(verts)
	if indices != nil {
		idx = func(i int) int { return int(indices[i]) }
		n = len(indices)
	}
	m := c.clip.Matrix()
	tri := func(a, b, cc int) {
		a, b, cc = idx(a), idx(b), idx(cc)
		if a >= len(verts) || b >= len(verts) || cc >= len(verts) {
			return
		}
		col := paint.Color
		if colors != nil && a < len(colors) {
			col = colors[a]
		}
		c.fillPolygons(dst, [][]cmdlog.Point{{
			m.MapPoint(verts[a]), m.MapPoint(verts[b]), m.MapPoint(verts[cc]),
		}}, col)
	}

	switch mode {
	case cmdlog.Triangles:
		for i := 0; i+2 < n; i += 3 {
			tri(i, i+1, i+2)
		}
	case cmdlog.TriangleStrip:
		for i := 0; i+2 < n; i++ {
			tri(i, i+1, i+2)
		}
	case cmdlog.TriangleFan:
		for i := 1; i+1 < n; i++ {
			tri(0, i, i+1)
		}
	}
}

// drawPath fills and/or strokes a local-space path.
func (c *Canvas) drawPath(path *cmdlog.Path, paint *cmdlog.Paint) {
	dst := c.clipped()
	if dst == nil {
		return
	}
	dev := path.Transform(c.clip.Matrix())
	if paint.Style != cmdlog.StyleStroke {
		c.fillPath(dst, dev, paint.Color)
	}
	if paint.Style != cmdlog.StyleFill {
		half := strokeHalfWidth(paint)
		var quads [][]cmdlog.Point
		for _, poly := range dev.Flatten(flattenTolerance) {
			quads = append(quads, strokePolyline(poly, half)...)
		}
		c.fillPolygons(dst, quads, paint.Color)
	}
}

// fillPath scan-converts a device-space path, curves included, into dst.
func (c *Canvas) fillPath(dst *image.RGBA, path *cmdlog.Path, col cmdlog.Color) {
	r := dst.Bounds()
	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	c.ras.Reset(r.Dx(), r.Dy())
	path.Walk(func(v cmdlog.Verb, pts []cmdlog.Point) {
		switch v {
		case cmdlog.VerbMove:
			c.ras.MoveTo(pts[0].X-ox, pts[0].Y-oy)
		case cmdlog.VerbLine:
			c.ras.LineTo(pts[0].X-ox, pts[0].Y-oy)
		case cmdlog.VerbQuad:
			c.ras.QuadTo(pts[0].X-ox, pts[0].Y-oy, pts[1].X-ox, pts[1].Y-oy)
		case cmdlog.VerbCubic:
			c.ras.CubeTo(pts[0].X-ox, pts[0].Y-oy, pts[1].X-ox, pts[1].Y-oy, pts[2].X-ox, pts[2].Y-oy)
		case cmdlog.VerbClose:
			c.ras.ClosePath()
		}
	})
	c.ras.ClosePath()
	c.ras.Draw(dst, r, image.NewUniform(col), image.Point{})
}

// fillPolygons scan-converts closed device-space polygons into dst.
func (c *Canvas) fillPolygons(dst *image.RGBA, polys [][]cmdlog.Point, col cmdlog.Color) {
	if len(polys) == 0 {
		return
	}
	r := dst.Bounds()
	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	c.ras.Reset(r.Dx(), r.Dy())
	for _, poly := range polys {
		if len(poly) < 2 {
			continue
		}
		c.ras.MoveTo(poly[0].X-ox, poly[0].Y-oy)
		for _, p := range poly[1:] {
			c.ras.LineTo(p.X-ox, p.Y-oy)
		}
		c.ras.ClosePath()
	}
	c.ras.Draw(dst, r, image.NewUniform(col), image.Point{})
}

// strokeHalfWidth returns half the device stroke width; hairlines are one
// pixel wide.
func strokeHalfWidth(paint *cmdlog.Paint) float32 {
	if paint.StrokeWidth <= 1 {
		return 0.5
	}
	return paint.StrokeWidth / 2
}

// strokePolyline covers a polyline with one quad per segment. All quads
// wind the same way, so overlaps at joins do not cancel.
func strokePolyline(poly []cmdlog.Point, half float32) [][]cmdlog.Point {
	var quads [][]cmdlog.Point
	for i := 0; i+1 < len(poly); i++ {
		quads = appendSegment(quads, poly[i], poly[i+1], half)
	}
	return quads
}

func appendSegment(quads [][]cmdlog.Point, a, b cmdlog.Point, half float32) [][]cmdlog.Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math32.Hypot(dx, dy)
	if l == 0 {
		return quads
	}
	nx, ny := -dy/l*half, dx/l*half
	return append(quads, []cmdlog.Point{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	})
}

func reversed(p []cmdlog.Point) []cmdlog.Point {
	out := make([]cmdlog.Point, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}
