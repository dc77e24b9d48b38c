// Package opt rewrites a record.Log in place without changing what it
// draws.
//
// Optimize runs four passes in a fixed order:
//
//  1. NoopSaveRestores erases Save/Restore pairs that enclose no drawing.
//  2. AnnotateCulls pairs every PushCull with its PopCull so replay can
//     jump over a rejected range.
//  3. ReduceTextStrength turns DrawPosText whose glyphs share a baseline
//     into DrawPosTextH.
//  4. BoundText attaches a conservative vertical extent to DrawPosTextH so
//     replay can reject it cheaply.
//
// Entries are only ever replaced in place; indices never shift.
package opt

import (
	"github.com/gogpu/cmdlog"
	"github.com/gogpu/cmdlog/record"
)

// TextBoundsFactor is the default multiple of the text size assumed to
// cover any glyph's ascent and descent. Lowering it below real font
// extents makes replay drop visible text.
const TextBoundsFactor = cmdlog.DefaultTextBoundsFactor

// Pass selects rewrite passes.
type Pass uint8

const (
	PassNoopSaveRestores Pass = 1 << iota
	PassAnnotateCulls
	PassReduceTextStrength
	PassBoundText

	// AllPasses runs the full pipeline.
	AllPasses = PassNoopSaveRestores | PassAnnotateCulls | PassReduceTextStrength | PassBoundText
)

// Option configures Optimize and BoundText.
type Option func(*options)

type options struct {
	passes      Pass
	factor      float32
	checkBounds bool
}

func defaultOptions() options {
	return options{
		passes: AllPasses,
		factor: TextBoundsFactor,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPasses restricts Optimize to the given passes. Their order is
// always the pipeline order.
func WithPasses(p Pass) Option {
	return func(o *options) {
		o.passes = p
	}
}

// WithTextBoundsFactor overrides TextBoundsFactor. Values below 1 are
// ignored.
func WithTextBoundsFactor(f float32) Option {
	return func(o *options) {
		if f >= 1 {
			o.factor = f
		}
	}
}

// WithBoundsCheck makes BoundText verify each bound against the extents
// reported by the paint's typeface and panic if a bound is too tight.
func WithBoundsCheck(enabled bool) Option {
	return func(o *options) {
		o.checkBounds = enabled
	}
}

// FromConfig translates the pipeline settings of cfg into options.
func FromConfig(cfg cmdlog.Config) []Option {
	var p Pass
	if cfg.NoopSaveRestores {
		p |= PassNoopSaveRestores
	}
	if cfg.AnnotateCulls {
		p |= PassAnnotateCulls
	}
	if cfg.ReduceText {
		p |= PassReduceTextStrength
	}
	if cfg.BoundText {
		p |= PassBoundText
	}
	return []Option{
		WithPasses(p),
		WithTextBoundsFactor(cfg.TextBoundsFactor),
		WithBoundsCheck(cfg.CheckTextBounds),
	}
}

// Result reports what Optimize changed.
type Result struct {
	SaveRestoresErased bool
	CullsPaired        int
	TextReduced        int
	TextBounded        int
}

// Optimize runs the selected passes over l in pipeline order.
func Optimize(l *record.Log, opts ...Option) Result {
	o := buildOptions(opts)
	var res Result

	if o.passes&PassNoopSaveRestores != 0 {
		res.SaveRestoresErased = NoopSaveRestores(l)
	}
	if o.passes&PassAnnotateCulls != 0 {
		res.CullsPaired = AnnotateCulls(l)
	}
	if o.passes&PassReduceTextStrength != 0 {
		res.TextReduced = ReduceTextStrength(l)
	}
	if o.passes&PassBoundText != 0 {
		res.TextBounded = boundText(l, o)
	}

	cmdlog.Logger().Debug("opt: pipeline done",
		"entries", l.Count(),
		"saveRestoresErased", res.SaveRestoresErased,
		"cullsPaired", res.CullsPaired,
		"textReduced", res.TextReduced,
		"textBounded", res.TextBounded)
	return res
}
