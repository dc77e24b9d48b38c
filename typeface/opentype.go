// Package typeface adapts font files to cmdlog.Typeface so that text
// paints can report real glyph extents.
//
// Two parsers are provided: OpenType, backed by golang.org/x/image, which
// also supplies faces for rasterizing text; and GoText, backed by
// github.com/go-text/typesetting, which reads the horizontal-header
// extents only.
package typeface

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/cmdlog"
	"github.com/gogpu/cmdlog/internal/cache"
)

// maxFaces bounds the number of sizes cached per font.
const maxFaces = 16

// OpenType is a parsed TrueType/OpenType font. It is safe for concurrent
// use.
type OpenType struct {
	font *opentype.Font
	name string

	// Per-em extents, y down: top is negative.
	top, bottom float32

	faces *cache.Cache[float32, font.Face]
}

var _ cmdlog.Typeface = (*OpenType)(nil)

// ParseOpenType parses font data.
func ParseOpenType(data []byte) (*OpenType, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("typeface: failed to parse font: %w", err)
	}

	// At ppem == unitsPerEm one font unit is one pixel.
	var buf sfnt.Buffer
	upem := f.UnitsPerEm()
	ppem := fixed.Int26_6(upem) << 6
	bounds, err := f.Bounds(&buf, ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoMetrics, err)
	}
	metrics, err := f.Metrics(&buf, ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoMetrics, err)
	}

	// Take whichever of the bounding box and the ascent/descent reaches
	// further; some fonts under-report one of them.
	top := min(bounds.Min.Y, -metrics.Ascent)
	bottom := max(bounds.Max.Y, metrics.Descent)
	em := float32(upem)

	t := &OpenType{
		font:   f,
		top:    fixedToFloat32(top) / em,
		bottom: fixedToFloat32(bottom) / em,
		faces:  cache.New(maxFaces, closeFace),
	}
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil {
		t.name = name
	}
	return t, nil
}

// Name returns the font family name, if the font has one.
func (t *OpenType) Name() string {
	return t.name
}

// VerticalExtents implements cmdlog.Typeface.
func (t *OpenType) VerticalExtents(size float32) (top, bottom float32, ok bool) {
	return t.top * size, t.bottom * size, true
}

// Face returns a rasterizing face at the given pixel size. Faces are
// cached per size and shared; a font.Face is not safe for concurrent
// use, so callers drawing from several goroutines must serialize on it.
// Only the most recently used sizes stay cached.
func (t *OpenType) Face(size float32) (font.Face, error) {
	return t.faces.GetOrCreate(size, func() (font.Face, error) {
		f, err := opentype.NewFace(t.font, &opentype.FaceOptions{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			return nil, fmt.Errorf("typeface: failed to create face: %w", err)
		}
		return f, nil
	})
}

// Close releases cached faces.
func (t *OpenType) Close() error {
	t.faces.Clear()
	return nil
}

func closeFace(_ float32, f font.Face) {
	_ = f.Close()
}

var goRegular = sync.OnceValue(func() *OpenType {
	t, err := ParseOpenType(goregular.TTF)
	if err != nil {
		panic("typeface: embedded Go Regular font: " + err.Error())
	}
	return t
})

// Default returns the embedded Go Regular font.
func Default() *OpenType {
	return goRegular()
}

// fixedToFloat32 converts fixed.Int26_6 to float32.
func fixedToFloat32(x fixed.Int26_6) float32 {
	return float32(x) / 64
}
