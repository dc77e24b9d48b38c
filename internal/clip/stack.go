// Package clip tracks the transform and a conservative device-space clip
// bound through a canvas save stack. The recorder and the reference sinks
// use it to answer clip queries without rasterizing anything.
package clip

import (
	"github.com/gogpu/cmdlog"
)

// Stack manages nested matrix and clip state with save/restore.
// Clip bounds are conservative: a point outside Bounds is never drawn,
// a point inside may still be clipped by a non-rectangular clip.
type Stack struct {
	device  cmdlog.Rect
	entries []state
	cur     state
}

// state is one level of the save stack.
type state struct {
	matrix cmdlog.Matrix
	bounds cmdlog.Rect
}

// NewStack creates a stack for a device of the given size, with an
// identity matrix and the whole device as clip.
func NewStack(width, height int) *Stack {
	device := cmdlog.XYWH(0, 0, float32(width), float32(height))
	return &Stack{
		device:  device,
		entries: make([]state, 0, 8), // Pre-allocate for common case
		cur:     state{matrix: cmdlog.Identity(), bounds: device},
	}
}

// Save pushes the current state.
func (s *Stack) Save() {
	s.entries = append(s.entries, s.cur)
}

// Restore pops the most recent Save. It returns false, and changes
// nothing, when there is no Save to pop.
func (s *Stack) Restore() bool {
	if len(s.entries) == 0 {
		return false
	}
	last := len(s.entries) - 1
	s.cur = s.entries[last]
	s.entries = s.entries[:last]
	return true
}

// Depth returns the number of unmatched Saves.
func (s *Stack) Depth() int {
	return len(s.entries)
}

// Matrix returns the current transform.
func (s *Stack) Matrix() cmdlog.Matrix {
	return s.cur.matrix
}

// Concat pre-multiplies the current transform by m.
func (s *Stack) Concat(m cmdlog.Matrix) {
	s.cur.matrix = s.cur.matrix.Multiply(m)
}

// SetMatrix replaces the current transform.
func (s *Stack) SetMatrix(m cmdlog.Matrix) {
	s.cur.matrix = m
}

// ClipRect combines the clip with r in local coordinates.
func (s *Stack) ClipRect(r cmdlog.Rect, op cmdlog.RegionOp) {
	s.ClipDevice(s.cur.matrix.MapRect(r.Sort()), op)
}

// ClipRRect combines the clip with the bounds of rr.
func (s *Stack) ClipRRect(rr cmdlog.RRect, op cmdlog.RegionOp) {
	s.ClipRect(rr.Rect, op)
}

// ClipPath combines the clip with the bounds of p. An empty path clips
// everything away under intersect.
func (s *Stack) ClipPath(p *cmdlog.Path, op cmdlog.RegionOp) {
	if p.IsEmpty() {
		s.ClipDevice(cmdlog.Rect{}, op)
		return
	}
	s.ClipRect(p.Bounds(), op)
}

// ClipRegion combines the clip with rgn, which is already in device
// coordinates and ignores the matrix.
func (s *Stack) ClipRegion(rgn *cmdlog.Region, op cmdlog.RegionOp) {
	s.ClipDevice(rgn.Bounds().Rect(), op)
}

// ClipDevice combines the clip with a device-space rectangle.
func (s *Stack) ClipDevice(dev cmdlog.Rect, op cmdlog.RegionOp) {
	b := s.cur.bounds
	switch op {
	case cmdlog.OpIntersect:
		b = b.Intersect(dev)
	case cmdlog.OpReplace, cmdlog.OpReverseDifference:
		// Both results lie inside dev.
		b = dev.Intersect(s.device)
	case cmdlog.OpUnion, cmdlog.OpXOR:
		b = b.Union(dev).Intersect(s.device)
	case cmdlog.OpDifference:
		// Subtracting can only shrink the area; keep the old bound
		// unless dev swallows it whole.
		if dev.Contains(b) {
			b = cmdlog.Rect{}
		}
	}
	s.cur.bounds = b
}

// Bounds returns the current device-space clip bound.
func (s *Stack) Bounds() cmdlog.Rect {
	return s.cur.bounds
}

// LocalBounds returns the clip bound mapped back into local coordinates
// and outset by one pixel for anti-aliasing. ok is false when the clip
// is empty or the matrix cannot be inverted.
func (s *Stack) LocalBounds() (r cmdlog.Rect, ok bool) {
	if s.IsEmpty() {
		return cmdlog.Rect{}, false
	}
	inv, ok := s.cur.matrix.Invert()
	if !ok {
		return cmdlog.Rect{}, false
	}
	return inv.MapRect(s.cur.bounds.Outset(1, 1)), true
}

// IsEmpty reports whether nothing can be drawn.
func (s *Stack) IsEmpty() bool {
	return s.cur.bounds.IsEmpty()
}

// QuickReject reports whether drawing anything inside the local rectangle
// r is certain to touch no pixel.
func (s *Stack) QuickReject(r cmdlog.Rect) bool {
	if s.IsEmpty() {
		return true
	}
	dev := s.cur.matrix.MapRect(r.Sort())
	clip := s.cur.bounds.Outset(1, 1)
	// The negated comparisons also reject NaN coordinates.
	return !(dev.Top < clip.Bottom && dev.Bottom > clip.Top &&
		dev.Left < clip.Right && dev.Right > clip.Left)
}

// QuickRejectY reports whether the local horizontal band [top, bottom]
// lies entirely outside the clip.
func (s *Stack) QuickRejectY(top, bottom float32) bool {
	local, ok := s.LocalBounds()
	if !ok {
		return true
	}
	return !(top < local.Bottom && bottom > local.Top)
}

// Reset drops every saved level and restores the initial state.
func (s *Stack) Reset() {
	s.entries = s.entries[:0]
	s.cur = state{matrix: cmdlog.Identity(), bounds: s.device}
}
