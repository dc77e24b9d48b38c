// Package cmdlog is a command-log engine for 2D drawing.
//
// Drawing calls made against a [Canvas] are captured into a compact,
// replayable log, optimized by a fixed pipeline of rewrite passes, and then
// sealed into an immutable playback that can be replayed onto any number of
// canvases, concurrently.
//
// # Architecture
//
//   - record: the operation catalog, the tag/slot storage and the Log
//   - recorder: a [Canvas] that appends to a Log instead of drawing
//   - opt: the rewrite passes (no-op save/restore elision, cull
//     annotation, text strength reduction, text bounding)
//   - playback: sealing and replay, plus the Recording façade
//   - sink: a registry of concrete canvases, with raster and trace sinks
//   - typeface: font metrics adapters used to verify text bounds
//
// This package holds the value types shared by all of them: geometry,
// [Paint], [Path], [Bitmap], [Region], the [Canvas] interface, logging and
// configuration.
//
// # Basic Usage
//
//	rec := playback.NewRecording(800, 600)
//	c := rec.Canvas()
//	c.Save(cmdlog.SaveMatrixClip)
//	c.ClipRect(cmdlog.XYWH(0, 0, 400, 300), cmdlog.OpIntersect, false)
//	c.DrawRect(cmdlog.XYWH(10, 10, 100, 100), cmdlog.NewPaint())
//	c.Restore()
//	pb := rec.Release()
//
//	pb.Replay(sinkA) // any number of times,
//	go pb.Replay(sinkB) // from any goroutine
//
// # Thread Safety
//
// Recording and optimization are single-threaded. A sealed playback is
// immutable and safe for concurrent replay onto independent canvases.
package cmdlog
