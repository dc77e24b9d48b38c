// Package playback seals a record.Log into an immutable Playback and
// replays it onto any cmdlog.Canvas.
//
// A Playback never changes after Seal. Replay keeps all of its state on
// the stack, so one Playback can be replayed onto independent canvases
// from any number of goroutines without locking.
package playback

import (
	"fmt"

	"github.com/gogpu/cmdlog"
	"github.com/gogpu/cmdlog/opt"
	"github.com/gogpu/cmdlog/record"
)

// Playback is a sealed, replay-ready log. It exclusively owns the log it
// was sealed from.
type Playback struct {
	log           *record.Log
	width, height int
	released      bool
}

// Seal pairs the log's cull markers (unless already done) and freezes it.
// Sealing a log twice panics. The caller must not touch l afterwards.
func Seal(l *record.Log) *Playback {
	if l.Frozen() {
		panic("playback: log sealed twice")
	}
	opt.AnnotateCulls(l)
	l.Freeze()
	cmdlog.Logger().Debug("playback: sealed", "entries", l.Count())
	return &Playback{log: l}
}

// Count returns the number of entries, including erased ones.
func (pb *Playback) Count() int {
	pb.mustBeLive()
	return pb.log.Count()
}

// Bounds returns the size of the canvas the playback was recorded on,
// or zeros when it was sealed from a bare log.
func (pb *Playback) Bounds() (width, height int) {
	return pb.width, pb.height
}

// Stats summarizes the sealed log.
func (pb *Playback) Stats() record.Stats {
	pb.mustBeLive()
	return pb.log.Stats()
}

// String renders the sealed log one entry per line.
func (pb *Playback) String() string {
	pb.mustBeLive()
	return pb.log.String()
}

// Release destroys the log. No replay may be running or start later.
// Releasing twice panics.
func (pb *Playback) Release() {
	if pb.released {
		panic("playback: released twice")
	}
	pb.released = true
	pb.log.Release()
}

func (pb *Playback) mustBeLive() {
	if pb.released {
		panic("playback: use after Release")
	}
}

// Replay issues every live entry to c in order.
func (pb *Playback) Replay(c cmdlog.Canvas) {
	pb.mustBeLive()
	pb.replay(c, 0, pb.log.Count())
}

// ReplayRange issues entries [start, stop) to c. It is meant for
// stepping through a playback; state set up before start is not
// reproduced.
func (pb *Playback) ReplayRange(c cmdlog.Canvas, start, stop int) {
	pb.mustBeLive()
	if start < 0 || stop > pb.log.Count() || start > stop {
		panic(fmt.Sprintf("playback: range [%d, %d) out of [0, %d)", start, stop, pb.log.Count()))
	}
	pb.replay(c, start, stop)
}

// replay skips what cannot be visible:
//   - NoOp never executes;
//   - Save, Restore, SaveLayer, Clear and cull markers always execute;
//   - clips execute unless they intersect an already empty clip;
//   - a paired cull whose rect is rejected jumps past its PopCull;
//   - bounded text is rejected by its vertical band;
//   - anything else executes only while the clip is not empty.
//
// The clip is re-queried after every entry that can change it.
func (pb *Playback) replay(c cmdlog.Canvas, start, stop int) {
	l := pb.log
	d := drawer{c: c}
	clipEmpty := c.IsClipEmpty()

	for i := start; i < stop; i++ {
		k := l.Kind(i)
		switch {
		case k == record.KindNoOp:
			continue
		case k == record.KindPairedPushCull:
			p := record.Get[record.PairedPushCull](l, i)
			if c.QuickReject(p.Base.Rect) {
				// Lands on the PopCull; the loop steps past it.
				i += p.Skip
				continue
			}
			c.PushCull(p.Base.Rect)
			continue
		case k == record.KindBoundedDrawPosTextH:
			if clipEmpty {
				continue
			}
			b := record.Get[record.BoundedDrawPosTextH](l, i)
			if c.QuickRejectY(b.MinY, b.MaxY) {
				continue
			}
		case k.AlwaysReplays():
		case k.IsClip():
			if clipEmpty && clipOp(l, i) == cmdlog.OpIntersect {
				continue
			}
		default:
			if clipEmpty {
				continue
			}
		}

		l.Visit(i, &d)

		if k == record.KindRestore || k == record.KindSaveLayer || k.IsClip() {
			clipEmpty = c.IsClipEmpty()
		}
	}
}

func clipOp(l *record.Log, i int) cmdlog.RegionOp {
	switch l.Kind(i) {
	case record.KindClipRect:
		return record.Get[record.ClipRect](l, i).Op
	case record.KindClipRRect:
		return record.Get[record.ClipRRect](l, i).Op
	case record.KindClipPath:
		return record.Get[record.ClipPath](l, i).Op
	case record.KindClipRegion:
		return record.Get[record.ClipRegion](l, i).Op
	}
	panic("playback: entry " + l.Kind(i).String() + " is not a clip")
}
