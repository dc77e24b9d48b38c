package raster

import (
	"image"
	"sync"

	"github.com/chewxy/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/cmdlog"
)

// faceSource is implemented by typefaces that can rasterize glyphs, such
// as typeface.OpenType.
type faceSource interface {
	Face(size float32) (font.Face, error)
}

// Faces are shared between canvases and a font.Face is not safe for
// concurrent use.
var faceMu sync.Mutex

// face picks the paint's typeface face, falling back to a fixed bitmap
// font.
func (c *Canvas) face(paint *cmdlog.Paint) font.Face {
	if src, ok := paint.Typeface.(faceSource); ok {
		f, err := src.Face(math32.Abs(paint.TextSize))
		if err == nil {
			return f
		}
		if !c.warnedFace {
			cmdlog.Logger().Warn("raster: typeface face failed, using fallback", "err", err)
			c.warnedFace = true
		}
		return basicfont.Face7x13
	}
	if paint.Typeface != nil && !c.warnedFace {
		cmdlog.Logger().Warn("raster: typeface cannot rasterize, using fallback")
		c.warnedFace = true
	}
	return basicfont.Face7x13
}

// glyphDrawer draws single glyphs at device positions.
type glyphDrawer struct {
	d font.Drawer
}

func (c *Canvas) newGlyphDrawer(dst *image.RGBA, paint *cmdlog.Paint) *glyphDrawer {
	return &glyphDrawer{d: font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(paint.Color),
		Face: c.face(paint),
	}}
}

func (g *glyphDrawer) at(p cmdlog.Point, r rune) {
	g.d.Dot = fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
	g.d.DrawString(string(r))
}

func (g *glyphDrawer) advance(r rune) float32 {
	adv, ok := g.d.Face.GlyphAdvance(r)
	if !ok {
		return 0
	}
	return float32(adv) / 64
}

// DrawText lays glyphs out by their advances. As with every text draw
// here, glyph origins are mapped through the matrix but outlines are not.
func (c *Canvas) DrawText(text []byte, x, y float32, paint *cmdlog.Paint) {
	dst := c.clipped()
	if dst == nil {
		return
	}
	faceMu.Lock()
	defer faceMu.Unlock()

	g := c.newGlyphDrawer(dst, paint)
	m := c.clip.Matrix()
	for _, r := range paint.Runes(text) {
		g.at(m.MapPoint(cmdlog.Pt(x, y)), r)
		x += g.advance(r)
	}
}

func (c *Canvas) DrawPosText(text []byte, pos []cmdlog.Point, paint *cmdlog.Paint) {
	dst := c.clipped()
	if dst == nil {
		return
	}
	faceMu.Lock()
	defer faceMu.Unlock()

	g := c.newGlyphDrawer(dst, paint)
	m := c.clip.Matrix()
	for i, r := range paint.Runes(text) {
		if i >= len(pos) {
			break
		}
		g.at(m.MapPoint(pos[i]), r)
	}
}

func (c *Canvas) DrawPosTextH(text []byte, xpos []float32, constY float32, paint *cmdlog.Paint) {
	dst := c.clipped()
	if dst == nil {
		return
	}
	faceMu.Lock()
	defer faceMu.Unlock()

	g := c.newGlyphDrawer(dst, paint)
	m := c.clip.Matrix()
	for i, r := range paint.Runes(text) {
		if i >= len(xpos) {
			break
		}
		g.at(m.MapPoint(cmdlog.Pt(xpos[i], constY)), r)
	}
}

// DrawTextOnPath places each glyph origin at its running advance along
// the flattened path, optionally transformed by m first.
func (c *Canvas) DrawTextOnPath(text []byte, path *cmdlog.Path, m *cmdlog.Matrix, paint *cmdlog.Paint) {
	dst := c.clipped()
	if dst == nil || path.IsEmpty() {
		return
	}
	p := path
	if m != nil {
		p = path.Transform(*m)
	}
	polys := p.Transform(c.clip.Matrix()).Flatten(flattenTolerance)
	if len(polys) == 0 {
		return
	}
	line := polys[0]

	faceMu.Lock()
	defer faceMu.Unlock()

	g := c.newGlyphDrawer(dst, paint)
	var dist float32
	seg, segStart := 0, float32(0)
	for _, r := range paint.Runes(text) {
		// Advance to the segment containing dist.
		for seg+1 < len(line) {
			a, b := line[seg], line[seg+1]
			l := math32.Hypot(b.X-a.X, b.Y-a.Y)
			if dist <= segStart+l {
				t := float32(0)
				if l > 0 {
					t = (dist - segStart) / l
				}
				g.at(cmdlog.Pt(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t), r)
				break
			}
			segStart += l
			seg++
		}
		if seg+1 >= len(line) {
			return
		}
		dist += g.advance(r)
	}
}
