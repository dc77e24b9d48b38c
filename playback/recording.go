package playback

import (
	"github.com/gogpu/cmdlog"
	"github.com/gogpu/cmdlog/opt"
	"github.com/gogpu/cmdlog/record"
	"github.com/gogpu/cmdlog/recorder"
)

// Recording records drawing and hands it off as a Playback.
//
// Example:
//
//	rec := playback.NewRecording(800, 600)
//	c := rec.Canvas()
//	c.DrawRect(cmdlog.XYWH(10, 10, 100, 50), cmdlog.NewPaint())
//	pb := rec.Release()
//	defer pb.Release()
//	pb.Replay(target)
type Recording struct {
	rec      *recorder.Recorder
	opts     recordingOptions
	released bool
}

// Option configures a Recording.
type Option func(*recordingOptions)

type recordingOptions struct {
	optimize  bool
	optOpts   []opt.Option
	chunkSize int
}

// WithOptimize enables or disables the rewrite pipeline on Release.
// Optimization is on by default.
func WithOptimize(enabled bool) Option {
	return func(o *recordingOptions) {
		o.optimize = enabled
	}
}

// WithOptOptions passes options to opt.Optimize.
func WithOptOptions(opts ...opt.Option) Option {
	return func(o *recordingOptions) {
		o.optOpts = append(o.optOpts, opts...)
	}
}

// WithChunkSize sets the arena chunk size of the underlying log.
func WithChunkSize(n int) Option {
	return func(o *recordingOptions) {
		o.chunkSize = n
	}
}

// WithConfig applies every pipeline setting of cfg.
func WithConfig(cfg cmdlog.Config) Option {
	return func(o *recordingOptions) {
		o.optimize = cfg.Optimize
		o.optOpts = append(o.optOpts, opt.FromConfig(cfg)...)
		o.chunkSize = cfg.ChunkSize
	}
}

// NewRecording starts a recording on a width x height canvas.
func NewRecording(width, height int, opts ...Option) *Recording {
	o := recordingOptions{optimize: true}
	for _, apply := range opts {
		apply(&o)
	}
	var logOpts []record.Option
	if o.chunkSize > 0 {
		logOpts = append(logOpts, record.WithChunkSize(o.chunkSize))
	}
	return &Recording{
		rec:  recorder.New(width, height, logOpts...),
		opts: o,
	}
}

// Canvas returns the canvas to draw into. After Release it silently
// drops every call.
func (r *Recording) Canvas() cmdlog.Canvas {
	return r.rec
}

// Release optimizes the recorded log (unless disabled) and seals it. The
// recording cannot be used again; a second Release panics.
func (r *Recording) Release() *Playback {
	if r.released {
		panic("playback: Recording released twice")
	}
	r.released = true

	if depth := r.rec.SaveDepth(); depth > 0 {
		cmdlog.Logger().Debug("playback: released with open saves", "depth", depth)
	}

	l := r.rec.Log()
	r.rec.Forget()
	if r.opts.optimize {
		opt.Optimize(l, r.opts.optOpts...)
	}

	pb := Seal(l)
	pb.width, pb.height = r.rec.Width(), r.rec.Height()
	return pb
}
