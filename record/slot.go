package record

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/gogpu/cmdlog/internal/arena"
)

// slot is the fixed per-entry storage. A pointer-free op no wider than a
// slot lives in it directly; any other op lives in its kind's arena chunk
// and the slot holds the arena handle.
type slot uint64

const slotSize = unsafe.Sizeof(slot(0))

// inline is indexed by Kind and fixed at init from each op type's layout.
var inline [numKinds]bool

func init() {
	layout[NoOp]()
	layout[Restore]()
	layout[Save]()
	layout[SaveLayer]()
	layout[Concat]()
	layout[SetMatrix]()
	layout[ClipPath]()
	layout[ClipRRect]()
	layout[ClipRect]()
	layout[ClipRegion]()
	layout[Clear]()
	layout[DrawBitmap]()
	layout[DrawBitmapMatrix]()
	layout[DrawBitmapNine]()
	layout[DrawBitmapRectToRect]()
	layout[DrawDRRect]()
	layout[DrawOval]()
	layout[DrawPaint]()
	layout[DrawPath]()
	layout[DrawPoints]()
	layout[DrawPosText]()
	layout[DrawPosTextH]()
	layout[DrawRRect]()
	layout[DrawRect]()
	layout[DrawSprite]()
	layout[DrawText]()
	layout[DrawTextOnPath]()
	layout[DrawVertices]()
	layout[PushCull]()
	layout[PopCull]()
	layout[PairedPushCull]()
	layout[BoundedDrawPosTextH]()
}

func layout[T Op]() {
	t := reflect.TypeFor[T]()
	var zero T
	inline[zero.Kind()] = t.Size() <= slotSize && uintptr(t.Align()) <= slotSize && !hasPointers(t)
}

// hasPointers reports whether values of t contain anything the garbage
// collector must trace. Such values cannot be hidden inside a slot word.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.String, reflect.UnsafePointer:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

// IsInline reports whether ops of kind k are stored directly in their slot.
func IsInline(k Kind) bool { return inline[k] }

func chunks[T Op](l *Log, k Kind) *arena.Chunked[T] {
	if c, ok := l.chunks[k].(*arena.Chunked[T]); ok {
		return c
	}
	c := arena.NewChunked[T](l.chunkBytes)
	l.chunks[k] = c
	return c
}

func store[T Op](l *Log, k Kind, op T) slot {
	if inline[k] {
		var s slot
		*(*T)(unsafe.Pointer(&s)) = op
		return s
	}
	return slot(chunks[T](l, k).New(op))
}

// at returns the live op at i. The caller guarantees tags[i] is T's kind.
// For inline kinds the pointer aims into l.slots and is only valid until
// the next Append.
func at[T Op](l *Log, i int) *T {
	k := l.tags[i]
	if inline[k] {
		return (*T)(unsafe.Pointer(&l.slots[i]))
	}
	return chunks[T](l, k).At(arena.Ref(l.slots[i]))
}

// Append records op as a new entry at the end of the log. The entry can
// be visited as soon as Append returns.
func Append[T Op](l *Log, op T) {
	l.mustBeWritable()
	k := op.Kind()
	l.tags = append(l.tags, k)
	l.slots = append(l.slots, store(l, k, op))
}

// Get returns a pointer to the op at i. It panics if the entry is not a T.
func Get[T Op](l *Log, i int) *T {
	var zero T
	if k := l.tags[i]; k != zero.Kind() {
		panic(fmt.Sprintf("record: entry %d is %v, not %v", i, k, zero.Kind()))
	}
	return at[T](l, i)
}

// Replace destroys the entry at i and stores op in its place. The index
// is preserved; the tag and payload change.
func Replace[T Op](l *Log, i int, op T) {
	l.mustBeWritable()
	l.destroy(i)
	k := op.Kind()
	l.tags[i] = k
	l.slots[i] = store(l, k, op)
}

// Adopt moves the T at i out of the log without destroying it and leaves
// a NoOp behind. The caller becomes the owner of the returned op and
// normally stores it inside a wrapper with Replace.
func Adopt[T Op](l *Log, i int) T {
	l.mustBeWritable()
	p := Get[T](l, i)
	v := *p
	*p = *new(T)
	l.tags[i] = KindNoOp
	l.slots[i] = 0
	return v
}
