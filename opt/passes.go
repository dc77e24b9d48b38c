package opt

import (
	"fmt"
	"unsafe"

	"github.com/chewxy/math32"

	"github.com/gogpu/cmdlog"
	"github.com/gogpu/cmdlog/record"
)

// NoopSaveRestores erases every Save/Restore pair whose body only changes
// matrix, clip or cull state. Such a pair has no visible effect: the state
// it sets is discarded by the Restore before anything is drawn.
//
// Only plain saves (exactly SaveMatrixClip) qualify; layers and partial
// saves are left alone, and so is a pair that holds only one half of a
// PushCull/PopCull pair. The pass repeats until nothing changes, since
// erasing an inner pair can empty an outer one. It reports whether
// anything was erased.
func NoopSaveRestores(l *record.Log) bool {
	changed := false
	for round := 1; ; round++ {
		n := noopSaveRestoresOnce(l)
		if n == 0 {
			break
		}
		changed = true
		cmdlog.Logger().Debug("opt: erased no-op save/restore pairs", "round", round, "pairs", n)
	}
	return changed
}

func noopSaveRestoresOnce(l *record.Log) int {
	const inactive = -1
	pending := inactive
	// Open cull pushes since pending. Cull markers are a stack of their
	// own, so a pair may only be erased if they balance inside it.
	culls := 0
	erased := 0
	for i := 0; i < l.Count(); i++ {
		switch k := l.Kind(i); {
		case k == record.KindSave:
			if record.Get[record.Save](l, i).Flags == cmdlog.SaveMatrixClip {
				pending = i
			} else {
				pending = inactive
			}
			culls = 0
		case k == record.KindPushCull || k == record.KindPairedPushCull:
			culls++
		case k == record.KindPopCull:
			if culls == 0 {
				// Closes a cull opened before the save.
				pending = inactive
			} else {
				culls--
			}
		case k == record.KindRestore:
			if pending != inactive && culls == 0 {
				for j := pending; j <= i; j++ {
					record.Replace(l, j, record.NoOp{})
				}
				erased++
			}
			pending = inactive
		case k.IsStateOnly():
			// Does not use the save.
		default:
			pending = inactive
		}
	}
	return erased
}

// AnnotateCulls replaces each PushCull with a PairedPushCull that records
// the distance to its matching PopCull, and marks the log as annotated.
// Calling it again on an annotated log does nothing. It panics if pushes
// and pops are unbalanced. It returns the number of pairs.
func AnnotateCulls(l *record.Log) int {
	if l.CullsAnnotated() {
		return 0
	}
	var stack []int
	pairs := 0
	for i := 0; i < l.Count(); i++ {
		switch l.Kind(i) {
		case record.KindPushCull:
			stack = append(stack, i)
		case record.KindPopCull:
			if len(stack) == 0 {
				panic(fmt.Sprintf("opt: PopCull at %d has no matching PushCull", i))
			}
			push := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			base := record.Adopt[record.PushCull](l, push)
			record.Replace(l, push, record.PairedPushCull{Base: base, Skip: i - push})
			pairs++
		}
	}
	if len(stack) != 0 {
		panic(fmt.Sprintf("opt: %d PushCull without matching PopCull, first at %d", len(stack), stack[0]))
	}
	l.MarkCullsAnnotated()
	cmdlog.Logger().Debug("opt: annotated cull pairs", "pairs", pairs)
	return pairs
}

// ReduceTextStrength turns every DrawPosText whose glyphs all sit on one
// baseline into a DrawPosTextH. The x positions are packed in place into
// the front of the point array, so no memory is allocated. It returns the
// number of entries rewritten.
func ReduceTextStrength(l *record.Log) int {
	reduced := 0
	for i := 0; i < l.Count(); i++ {
		if l.Kind(i) != record.KindDrawPosText {
			continue
		}
		op := *record.Get[record.DrawPosText](l, i)
		n := min(op.Paint.CountText(op.Text), len(op.Pos))
		if n == 0 {
			continue
		}
		y := op.Pos[0].Y
		sameY := true
		for _, p := range op.Pos[1:n] {
			if p.Y != y {
				sameY = false
				break
			}
		}
		if !sameY {
			continue
		}

		// Point j's X sits at scalar 2j, which is never below j, so
		// writing scalar j only clobbers points already read.
		xs := unsafe.Slice((*float32)(unsafe.Pointer(&op.Pos[0])), 2*len(op.Pos))
		for j := range n {
			xs[j] = op.Pos[j].X
		}
		record.Replace(l, i, record.DrawPosTextH{
			Text:  op.Text,
			XPos:  xs[:n:n],
			Y:     y,
			Paint: op.Paint,
		})
		reduced++
	}
	if reduced > 0 {
		cmdlog.Logger().Debug("opt: reduced positioned text", "entries", reduced)
	}
	return reduced
}

// BoundText wraps every DrawPosTextH in a BoundedDrawPosTextH carrying a
// conservative [MinY, MaxY] for its glyphs: the baseline plus or minus
// the text size times the bounds factor, grown by whatever the paint's
// stroke and effect may add. Vertical text and paints whose bounds cannot
// be computed are skipped. It returns the number of entries wrapped.
func BoundText(l *record.Log, opts ...Option) int {
	return boundText(l, buildOptions(opts))
}

func boundText(l *record.Log, o options) int {
	bounded := 0
	for i := 0; i < l.Count(); i++ {
		if l.Kind(i) != record.KindDrawPosTextH {
			continue
		}
		op := record.Get[record.DrawPosTextH](l, i)
		if op.Paint.VerticalText || !op.Paint.CanComputeFastBounds() {
			continue
		}
		buffer := math32.Abs(op.Paint.TextSize) * o.factor
		bounds := op.Paint.ComputeFastBounds(cmdlog.LTRB(0, op.Y-buffer, 1, op.Y+buffer))
		if o.checkBounds {
			checkTextBound(i, op, bounds.Top, bounds.Bottom)
		}
		base := record.Adopt[record.DrawPosTextH](l, i)
		record.Replace(l, i, record.BoundedDrawPosTextH{
			Base: base,
			MinY: bounds.Top,
			MaxY: bounds.Bottom,
		})
		bounded++
	}
	if bounded > 0 {
		cmdlog.Logger().Debug("opt: bounded horizontal text", "entries", bounded, "factor", o.factor)
	}
	return bounded
}

// checkTextBound panics if [minY, maxY] does not cover what the paint's
// typeface says its glyphs can reach.
func checkTextBound(i int, op *record.DrawPosTextH, minY, maxY float32) {
	tf := op.Paint.Typeface
	if tf == nil {
		return
	}
	top, bottom, ok := tf.VerticalExtents(math32.Abs(op.Paint.TextSize))
	if !ok {
		return
	}
	if op.Y+top < minY || op.Y+bottom > maxY {
		panic(fmt.Sprintf("opt: text bound [%g, %g] at entry %d misses glyph extents [%g, %g]",
			minY, maxY, i, op.Y+top, op.Y+bottom))
	}
}
