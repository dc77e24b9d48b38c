// Package record holds the closed catalog of drawing operations and the
// log that stores them.
//
// A Log is two parallel arrays, one tag byte and one slot word per entry,
// plus an arena that backs everything larger than a word. Entries are
// dispatched by switching on the tag; there are no per-entry interface
// values and no per-entry heap allocations for small ops.
//
// A Log is built by one goroutine. After Freeze it is read-only and may be
// visited from any number of goroutines.
package record

import (
	"github.com/gogpu/cmdlog"
	"github.com/gogpu/cmdlog/internal/arena"
)

// Option configures a Log.
type Option func(*options)

type options struct {
	chunkBytes int
}

// WithChunkSize sets the arena chunk size in bytes. Non-positive sizes
// fall back to cmdlog.DefaultChunkSize.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkBytes = n
	}
}

// Log is an ordered, index-stable sequence of operations.
type Log struct {
	// Invariant: len(tags) == len(slots).
	tags  []Kind
	slots []slot

	// chunks[k] is an *arena.Chunked[T] for the op type of kind k,
	// created on first out-of-line store.
	chunks     [numKinds]any
	chunkBytes int
	arena      *arena.Arena

	frozen         bool
	cullsAnnotated bool
	released       bool
}

// New returns an empty log.
func New(opts ...Option) *Log {
	o := options{chunkBytes: cmdlog.DefaultChunkSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.chunkBytes <= 0 {
		o.chunkBytes = cmdlog.DefaultChunkSize
	}
	return &Log{
		chunkBytes: o.chunkBytes,
		arena:      arena.New(o.chunkBytes),
	}
}

// Count returns the number of entries.
func (l *Log) Count() int { return len(l.tags) }

// Kind returns the tag at i.
func (l *Log) Kind(i int) Kind { return l.tags[i] }

// Arena returns the arena backing the log's array views. Ops that carry
// slices must take them from here.
func (l *Log) Arena() *arena.Arena { return l.arena }

// VisitAll visits every entry in index order.
func (l *Log) VisitAll(v Visitor) {
	for i := range l.tags {
		l.Visit(i, v)
	}
}

// MutateAll mutates every entry in index order. The mutator may replace
// the entry it is handed but must not append.
func (l *Log) MutateAll(m Mutator) {
	l.mustBeWritable()
	for i := range l.tags {
		l.Mutate(i, m)
	}
}

// Freeze makes the log read-only. Any later write panics.
func (l *Log) Freeze() { l.frozen = true }

// Frozen reports whether Freeze has been called.
func (l *Log) Frozen() bool { return l.frozen }

// MarkCullsAnnotated records that PushCull/PopCull pairs have been
// annotated with their skip distances.
func (l *Log) MarkCullsAnnotated() { l.cullsAnnotated = true }

// CullsAnnotated reports whether MarkCullsAnnotated has been called.
func (l *Log) CullsAnnotated() bool { return l.cullsAnnotated }

// Released reports whether Release has been called.
func (l *Log) Released() bool { return l.released }

func (l *Log) mustBeWritable() {
	if l.released {
		panic("record: log used after Release")
	}
	if l.frozen {
		panic("record: write to frozen log")
	}
}

// Release destroys every entry exactly once, in index order, then drops
// the arena. The log is unusable afterwards. Releasing twice panics.
func (l *Log) Release() {
	if l.released {
		panic("record: log released twice")
	}
	for i := range l.tags {
		l.destroy(i)
	}
	for k := range l.chunks {
		if c, ok := l.chunks[k].(interface{ Reset() }); ok {
			c.Reset()
		}
		l.chunks[k] = nil
	}
	l.arena.Reset()
	l.tags = nil
	l.slots = nil
	l.released = true
}

// destroy releases what the entry at i holds and zeroes its storage. The
// tag is left for the caller to overwrite.
func (l *Log) destroy(i int) {
	l.Mutate(i, destroyer{})
	if inline[l.tags[i]] {
		l.slots[i] = 0
	}
}

// destroyer drops bitmap references and clears out-of-line payloads so
// the collector can reclaim what they point at. Wrappers own their base,
// so clearing the wrapper clears the base too.
type destroyer struct{}

func (destroyer) NoOp(int, *NoOp)       {}
func (destroyer) Restore(int, *Restore) {}
func (destroyer) Save(int, *Save)       {}
func (destroyer) PopCull(int, *PopCull) {}

func (destroyer) SaveLayer(_ int, op *SaveLayer)           { *op = SaveLayer{} }
func (destroyer) Concat(_ int, op *Concat)                 { *op = Concat{} }
func (destroyer) SetMatrix(_ int, op *SetMatrix)           { *op = SetMatrix{} }
func (destroyer) ClipPath(_ int, op *ClipPath)             { *op = ClipPath{} }
func (destroyer) ClipRRect(_ int, op *ClipRRect)           { *op = ClipRRect{} }
func (destroyer) ClipRect(_ int, op *ClipRect)             { *op = ClipRect{} }
func (destroyer) ClipRegion(_ int, op *ClipRegion)         { *op = ClipRegion{} }
func (destroyer) Clear(_ int, op *Clear)                   { *op = Clear{} }
func (destroyer) DrawDRRect(_ int, op *DrawDRRect)         { *op = DrawDRRect{} }
func (destroyer) DrawOval(_ int, op *DrawOval)             { *op = DrawOval{} }
func (destroyer) DrawPaint(_ int, op *DrawPaint)           { *op = DrawPaint{} }
func (destroyer) DrawPath(_ int, op *DrawPath)             { *op = DrawPath{} }
func (destroyer) DrawPoints(_ int, op *DrawPoints)         { *op = DrawPoints{} }
func (destroyer) DrawPosText(_ int, op *DrawPosText)       { *op = DrawPosText{} }
func (destroyer) DrawPosTextH(_ int, op *DrawPosTextH)     { *op = DrawPosTextH{} }
func (destroyer) DrawRRect(_ int, op *DrawRRect)           { *op = DrawRRect{} }
func (destroyer) DrawRect(_ int, op *DrawRect)             { *op = DrawRect{} }
func (destroyer) DrawText(_ int, op *DrawText)             { *op = DrawText{} }
func (destroyer) DrawTextOnPath(_ int, op *DrawTextOnPath) { *op = DrawTextOnPath{} }
func (destroyer) DrawVertices(_ int, op *DrawVertices)     { *op = DrawVertices{} }
func (destroyer) PushCull(_ int, op *PushCull)             { *op = PushCull{} }
func (destroyer) PairedPushCull(_ int, op *PairedPushCull) { *op = PairedPushCull{} }
func (destroyer) BoundedDrawPosTextH(_ int, op *BoundedDrawPosTextH) {
	*op = BoundedDrawPosTextH{}
}

func (destroyer) DrawBitmap(_ int, op *DrawBitmap) {
	op.Bitmap.Release()
	*op = DrawBitmap{}
}

func (destroyer) DrawBitmapMatrix(_ int, op *DrawBitmapMatrix) {
	op.Bitmap.Release()
	*op = DrawBitmapMatrix{}
}

func (destroyer) DrawBitmapNine(_ int, op *DrawBitmapNine) {
	op.Bitmap.Release()
	*op = DrawBitmapNine{}
}

func (destroyer) DrawBitmapRectToRect(_ int, op *DrawBitmapRectToRect) {
	op.Bitmap.Release()
	*op = DrawBitmapRectToRect{}
}

func (destroyer) DrawSprite(_ int, op *DrawSprite) {
	op.Bitmap.Release()
	*op = DrawSprite{}
}
