package cmdlog

import (
	"image"
	"sync/atomic"
)

// PixelRef is a reference-counted pixel buffer. Recording a bitmap draw
// retains the buffer; destroying the recorded operation releases it.
type PixelRef struct {
	img  image.Image
	refs atomic.Int32
}

// NewPixelRef wraps img. The returned ref has one reference owned by the
// caller.
func NewPixelRef(img image.Image) *PixelRef {
	pr := &PixelRef{img: img}
	pr.refs.Store(1)
	return pr
}

// Image returns the pixels.
func (pr *PixelRef) Image() image.Image { return pr.img }

// Ref adds a reference.
func (pr *PixelRef) Ref() { pr.refs.Add(1) }

// Unref drops a reference. Dropping below zero panics.
func (pr *PixelRef) Unref() {
	if pr.refs.Add(-1) < 0 {
		panic("cmdlog: PixelRef released more times than retained")
	}
}

// RefCount returns the current number of references.
func (pr *PixelRef) RefCount() int32 { return pr.refs.Load() }

// Bitmap is a view of a pixel buffer. A nil or empty bitmap draws nothing.
type Bitmap struct {
	Pixels *PixelRef
	// Subset selects part of the pixel buffer; the zero value means
	// the whole image.
	Subset image.Rectangle
}

// NewBitmap returns a bitmap over img.
func NewBitmap(img image.Image) *Bitmap {
	return &Bitmap{Pixels: NewPixelRef(img)}
}

// Bounds returns the pixel rectangle the bitmap covers.
func (b *Bitmap) Bounds() image.Rectangle {
	if b == nil || b.Pixels == nil || b.Pixels.img == nil {
		return image.Rectangle{}
	}
	if !b.Subset.Empty() {
		return b.Subset.Intersect(b.Pixels.img.Bounds())
	}
	return b.Pixels.img.Bounds()
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.Bounds().Dx() }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.Bounds().Dy() }

// Retain returns a copy of b that holds its own reference to the pixels.
func (b *Bitmap) Retain() Bitmap {
	if b == nil {
		return Bitmap{}
	}
	if b.Pixels != nil {
		b.Pixels.Ref()
	}
	return *b
}

// Release drops the reference held by b and clears it.
func (b *Bitmap) Release() {
	if b.Pixels != nil {
		b.Pixels.Unref()
	}
	*b = Bitmap{}
}

// Region is a device-space area made of non-overlapping integer
// rectangles.
type Region struct {
	Rects []IRect
}

// NewRegion returns a region covering r.
func NewRegion(r IRect) *Region {
	if r.IsEmpty() {
		return &Region{}
	}
	return &Region{Rects: []IRect{r}}
}

// IsEmpty reports whether the region covers no pixels.
func (rg *Region) IsEmpty() bool {
	if rg == nil {
		return true
	}
	for _, r := range rg.Rects {
		if !r.IsEmpty() {
			return false
		}
	}
	return true
}

// Bounds returns the bounding box of the region.
func (rg *Region) Bounds() IRect {
	var out Rect
	if rg == nil {
		return IRect{}
	}
	for _, r := range rg.Rects {
		out = out.Union(r.Rect())
	}
	return out.RoundOut()
}

// Clone returns a deep copy.
func (rg *Region) Clone() *Region {
	if rg == nil {
		return nil
	}
	return &Region{Rects: append([]IRect(nil), rg.Rects...)}
}
