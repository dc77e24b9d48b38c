package typeface

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"

	"github.com/gogpu/cmdlog"
)

// GoText reads vertical extents through go-text/typesetting. The extents
// come from the horizontal header (ascender and descender) and are
// computed once at parse time, so a GoText is safe for concurrent use.
type GoText struct {
	// Per-em, y up as in the font: descender is negative.
	ascender, descender float32
	upem                uint16
}

var _ cmdlog.Typeface = (*GoText)(nil)

// ParseGoText parses font data.
func ParseGoText(data []byte) (*GoText, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("typeface: failed to parse font: %w", err)
	}
	ext, ok := face.FontHExtents()
	upem := face.Upem()
	if !ok || upem == 0 {
		return nil, ErrNoMetrics
	}
	em := float32(upem)
	return &GoText{
		ascender:  ext.Ascender / em,
		descender: ext.Descender / em,
		upem:      upem,
	}, nil
}

// UnitsPerEm returns the font's design units per em.
func (t *GoText) UnitsPerEm() int {
	return int(t.upem)
}

// VerticalExtents implements cmdlog.Typeface.
func (t *GoText) VerticalExtents(size float32) (top, bottom float32, ok bool) {
	return -t.ascender * size, -t.descender * size, true
}
