// Package arena provides append-only chunked storage whose elements never
// move and are never freed individually; the whole arena is dropped at once.
package arena

import (
	"unsafe"

	"github.com/gogpu/cmdlog"
)

// Ref is a handle to a value in a Chunked store. The zero Ref is nil;
// otherwise it is one plus the number of values allocated before it.
type Ref uint32

// Nil reports whether r is the nil handle.
func (r Ref) Nil() bool { return r == 0 }

// Chunked is an append-only store of T values split into fixed-size
// chunks. Pointers returned by At and slices returned by Make stay valid
// until Reset.
//
// A zero Chunked is ready to use with the default chunk size.
type Chunked[T any] struct {
	chunkBytes int

	// Invariant: every chunk but the last is full, and every chunk
	// used by New has capacity perChunk(). Oversized Make requests get
	// their own chunk, tracked in views so New never indexes into it.
	chunks [][]T
	views  [][]T
	n      int
}

// NewChunked returns a store whose chunks hold chunkBytes worth of T.
func NewChunked[T any](chunkBytes int) *Chunked[T] {
	return &Chunked[T]{chunkBytes: chunkBytes}
}

// DefaultChunkBytes is used when no chunk size is configured.
const DefaultChunkBytes = 4096

func (c *Chunked[T]) perChunk() int {
	size := int(unsafe.Sizeof(*new(T)))
	bytes := c.chunkBytes
	if bytes <= 0 {
		bytes = DefaultChunkBytes
	}
	if size == 0 {
		return bytes
	}
	return max(1, bytes/size)
}

// New stores v and returns its handle.
func (c *Chunked[T]) New(v T) Ref {
	per := c.perChunk()
	if len(c.chunks) == 0 || len(c.chunks[len(c.chunks)-1]) == per {
		c.chunks = append(c.chunks, make([]T, 0, per))
	}
	last := &c.chunks[len(c.chunks)-1]
	*last = append(*last, v)
	c.n++
	return Ref(c.n)
}

// At returns a pointer to the value behind r. It panics on a nil or
// foreign handle.
func (c *Chunked[T]) At(r Ref) *T {
	if r.Nil() || int(r) > c.n {
		panic("arena: handle out of range")
	}
	idx := int(r) - 1
	per := c.perChunk()
	return &c.chunks[idx/per][idx%per]
}

// Len returns the number of values allocated with New.
func (c *Chunked[T]) Len() int { return c.n }

// Make carves n contiguous zeroed elements out of the store. The result's
// capacity equals its length, so appending to it never writes into a
// neighbor's memory.
func (c *Chunked[T]) Make(n int) []T {
	if n == 0 {
		return nil
	}
	per := c.perChunk()
	if n > per/2 {
		v := make([]T, n)
		c.views = append(c.views, v)
		return v
	}
	if len(c.views) == 0 || cap(c.views[len(c.views)-1])-len(c.views[len(c.views)-1]) < n {
		c.views = append(c.views, make([]T, 0, per))
	}
	last := &c.views[len(c.views)-1]
	start := len(*last)
	*last = (*last)[:start+n]
	return (*last)[start : start+n : start+n]
}

// Copy returns an arena-backed copy of src.
func (c *Chunked[T]) Copy(src []T) []T {
	dst := c.Make(len(src))
	copy(dst, src)
	return dst
}

// Bytes returns the memory reserved by the store.
func (c *Chunked[T]) Bytes() int {
	size := int(unsafe.Sizeof(*new(T)))
	total := 0
	for _, ch := range c.chunks {
		total += cap(ch) * size
	}
	for _, v := range c.views {
		total += cap(v) * size
	}
	return total
}

// Reset drops every chunk. Previously returned pointers and slices keep
// their memory alive but no longer belong to the store.
func (c *Chunked[T]) Reset() {
	for i := range c.chunks {
		clear(c.chunks[i])
	}
	for i := range c.views {
		clear(c.views[i])
	}
	c.chunks = nil
	c.views = nil
	c.n = 0
}

// Arena groups the raw-array stores that back recorded operations:
// text bytes, points, scalars, colors and vertex indices.
type Arena struct {
	chunkBytes int

	bytes   Chunked[byte]
	points  Chunked[cmdlog.Point]
	scalars Chunked[float32]
	colors  Chunked[cmdlog.Color]
	indices Chunked[uint16]
}

// New returns an empty arena with the given chunk size in bytes.
func New(chunkBytes int) *Arena {
	if chunkBytes <= 0 {
		chunkBytes = DefaultChunkBytes
	}
	a := &Arena{chunkBytes: chunkBytes}
	a.bytes.chunkBytes = chunkBytes
	a.points.chunkBytes = chunkBytes
	a.scalars.chunkBytes = chunkBytes
	a.colors.chunkBytes = chunkBytes
	a.indices.chunkBytes = chunkBytes
	return a
}

// ChunkBytes returns the configured chunk size.
func (a *Arena) ChunkBytes() int { return a.chunkBytes }

// CopyBytes returns an arena copy of b.
func (a *Arena) CopyBytes(b []byte) []byte { return a.bytes.Copy(b) }

// CopyPoints returns an arena copy of pts.
func (a *Arena) CopyPoints(pts []cmdlog.Point) []cmdlog.Point { return a.points.Copy(pts) }

// CopyScalars returns an arena copy of s.
func (a *Arena) CopyScalars(s []float32) []float32 { return a.scalars.Copy(s) }

// CopyColors returns an arena copy of c.
func (a *Arena) CopyColors(c []cmdlog.Color) []cmdlog.Color { return a.colors.Copy(c) }

// CopyIndices returns an arena copy of idx.
func (a *Arena) CopyIndices(idx []uint16) []uint16 { return a.indices.Copy(idx) }

// Bytes returns the memory reserved by all stores.
func (a *Arena) Bytes() int {
	return a.bytes.Bytes() + a.points.Bytes() + a.scalars.Bytes() + a.colors.Bytes() + a.indices.Bytes()
}

// Reset drops all memory.
func (a *Arena) Reset() {
	a.bytes.Reset()
	a.points.Reset()
	a.scalars.Reset()
	a.colors.Reset()
	a.indices.Reset()
}
