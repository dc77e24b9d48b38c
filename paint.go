package cmdlog

import (
	"encoding/binary"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// Color is a non-premultiplied 32-bit ARGB color.
type Color uint32

// Common colors.
const (
	Transparent Color = 0x00000000
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Red         Color = 0xFFFF0000
	Green       Color = 0xFF00FF00
	Blue        Color = 0xFF0000FF
)

// ARGB packs the four 8-bit channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A())
	r = uint32(c.R()) * a / 0xff
	g = uint32(c.G()) * a / 0xff
	b = uint32(c.B()) * a / 0xff
	return r * 0x101, g * 0x101, b * 0x101, a * 0x101
}

// Style selects how geometry is painted.
type Style uint8

const (
	// StyleFill fills the interior of the geometry.
	StyleFill Style = iota
	// StyleStroke strokes the outline of the geometry.
	StyleStroke
	// StyleStrokeAndFill does both.
	StyleStrokeAndFill
)

// Join is the stroke join style.
type Join uint8

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// TextEncoding describes how the bytes passed to text draws are interpreted.
type TextEncoding uint8

const (
	// TextEncodingUTF8 is UTF-8 encoded text.
	TextEncodingUTF8 TextEncoding = iota
	// TextEncodingUTF16 is little-endian UTF-16 encoded text.
	TextEncodingUTF16
	// TextEncodingUTF32 is little-endian UTF-32 encoded text.
	TextEncodingUTF32
	// TextEncodingGlyphID is a sequence of little-endian uint16 glyph IDs.
	TextEncodingGlyphID
)

// Effect is an optional paint effect (blur, shadow, path effect, ...)
// that may enlarge the area touched by a draw.
type Effect interface {
	// FastBounds returns a conservative bound of everything the effect
	// may touch when drawing src. ok is false when no bound can be
	// computed cheaply.
	FastBounds(src Rect) (bounds Rect, ok bool)
}

// Typeface reports font metrics. Implementations live in the typeface
// package; the core only needs vertical extents.
type Typeface interface {
	// VerticalExtents returns the distance above (negative) and below
	// (positive) the baseline that any glyph may reach at size.
	VerticalExtents(size float32) (top, bottom float32, ok bool)
}

// Paint describes how a draw is colored and styled. The command log
// treats it as an opaque value: it is copied at record time and handed
// back unchanged at replay time.
type Paint struct {
	Color       Color
	Style       Style
	StrokeWidth float32
	StrokeMiter float32
	StrokeJoin  Join
	AntiAlias   bool

	TextSize     float32
	TextEncoding TextEncoding
	VerticalText bool
	Typeface     Typeface

	Effect Effect
}

// NewPaint returns a paint with the default settings: opaque black fill,
// 12pt UTF-8 text, miter limit 4.
func NewPaint() *Paint {
	return &Paint{
		Color:       Black,
		StrokeMiter: 4,
		TextSize:    12,
	}
}

// Clone returns a shallow copy of p; Typeface and Effect are shared since
// they are immutable.
func (p *Paint) Clone() *Paint {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// CanComputeFastBounds reports whether ComputeFastBounds can produce a
// conservative result for this paint.
func (p *Paint) CanComputeFastBounds() bool {
	if p.Effect == nil {
		return true
	}
	_, ok := p.Effect.FastBounds(Rect{})
	return ok
}

// ComputeFastBounds returns a conservative bound of the pixels touched
// when drawing geometry with bounds orig using p. The caller must check
// CanComputeFastBounds first.
func (p *Paint) ComputeFastBounds(orig Rect) Rect {
	r := orig.Sort()
	if p.Style != StyleFill {
		radius := p.StrokeWidth / 2
		if radius == 0 {
			// Hairline.
			radius = 1
		} else if p.StrokeJoin == JoinMiter && p.StrokeMiter > 1 {
			radius *= p.StrokeMiter
		}
		r = r.Outset(radius, radius)
	}
	if p.Effect != nil {
		if b, ok := p.Effect.FastBounds(r); ok {
			r = b
		}
	}
	return r
}

// CountText returns the number of glyphs encoded in text under the
// paint's text encoding.
func (p *Paint) CountText(text []byte) int {
	switch p.TextEncoding {
	case TextEncodingUTF8:
		return utf8.RuneCount(text)
	case TextEncodingUTF16:
		return len(p.decodeUTF16(text))
	case TextEncodingUTF32:
		return len(text) / 4
	case TextEncodingGlyphID:
		return len(text) / 2
	}
	return 0
}

// Runes decodes text into code points. Glyph ID text yields the IDs as
// runes.
func (p *Paint) Runes(text []byte) []rune {
	switch p.TextEncoding {
	case TextEncodingUTF8:
		return []rune(string(text))
	case TextEncodingUTF16:
		return p.decodeUTF16(text)
	case TextEncodingUTF32:
		out := make([]rune, 0, len(text)/4)
		for i := 0; i+4 <= len(text); i += 4 {
			out = append(out, rune(binary.LittleEndian.Uint32(text[i:])))
		}
		return out
	case TextEncodingGlyphID:
		out := make([]rune, 0, len(text)/2)
		for i := 0; i+2 <= len(text); i += 2 {
			out = append(out, rune(binary.LittleEndian.Uint16(text[i:])))
		}
		return out
	}
	return nil
}

func (p *Paint) decodeUTF16(text []byte) []rune {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	b, err := dec.Bytes(text)
	if err != nil {
		return nil
	}
	return []rune(string(b))
}
