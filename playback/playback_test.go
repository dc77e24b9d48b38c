package playback

import (
	"image"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/cmdlog"
	"github.com/gogpu/cmdlog/record"
	"github.com/gogpu/cmdlog/sink/trace"
)

func assertNames(t *testing.T, c *trace.Canvas, want ...string) {
	t.Helper()
	if got := c.Names(); !slices.Equal(got, want) {
		t.Errorf("calls = %v, want %v\n%s", got, want, c)
	}
}

func mustPanic(t *testing.T, prefix string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		msg, _ := r.(string)
		if !strings.HasPrefix(msg, prefix) {
			t.Errorf("panic = %v, want prefix %q", r, prefix)
		}
	}()
	fn()
}

// scene draws one of everything that replays unchanged when the clip is
// never empty.
func scene(c cmdlog.Canvas) {
	p := cmdlog.NewPaint()
	bounds := cmdlog.XYWH(0, 0, 80, 80)
	rgn := cmdlog.NewRegion(cmdlog.IRect{Right: 90, Bottom: 90})
	path := cmdlog.NewPath().MoveTo(1, 1).LineTo(20, 5).QuadTo(30, 30, 5, 20).Close()
	bm := cmdlog.NewBitmap(image.NewRGBA(image.Rect(0, 0, 8, 8)))

	c.Clear(cmdlog.White)
	c.Save(cmdlog.SaveMatrixClip)
	c.Concat(cmdlog.Translate(2, 3))
	c.ClipRect(cmdlog.XYWH(0, 0, 95, 95), cmdlog.OpIntersect, false)
	c.ClipRRect(cmdlog.RRectXY(cmdlog.XYWH(0, 0, 95, 95), 4, 4), cmdlog.OpIntersect, true)
	c.ClipPath(path, cmdlog.OpUnion, true)
	c.ClipRegion(rgn, cmdlog.OpIntersect)
	c.DrawPaint(p)
	c.DrawPoints(cmdlog.PolygonMode, []cmdlog.Point{{X: 1, Y: 1}, {X: 5, Y: 5}}, p)
	c.DrawRect(cmdlog.XYWH(10, 10, 20, 20), p)
	c.DrawOval(cmdlog.XYWH(10, 10, 20, 20), p)
	c.DrawRRect(cmdlog.RRectXY(cmdlog.XYWH(10, 10, 20, 20), 3, 3), p)
	c.DrawDRRect(cmdlog.RRectXY(cmdlog.XYWH(10, 10, 20, 20), 3, 3), cmdlog.RRectXY(cmdlog.XYWH(12, 12, 5, 5), 1, 1), p)
	c.DrawPath(path, p)
	c.SaveLayer(&bounds, p, cmdlog.SaveARGBClipLayer)
	c.DrawBitmap(bm, 1, 1, nil)
	c.DrawBitmapRectToRect(bm, nil, cmdlog.XYWH(0, 0, 16, 16), p, 0)
	c.DrawBitmapMatrix(bm, cmdlog.Scale(2, 2), nil)
	c.DrawBitmapNine(bm, cmdlog.IRect{Left: 2, Top: 2, Right: 6, Bottom: 6}, cmdlog.XYWH(0, 0, 30, 30), nil)
	c.DrawSprite(bm, 3, 3, nil)
	c.Restore()
	c.SetMatrix(cmdlog.Identity())
	c.DrawText([]byte("hello"), 10, 40, p)
	c.DrawPosText([]byte("ab"), []cmdlog.Point{{X: 10, Y: 50}, {X: 20, Y: 55}}, p)
	c.DrawPosTextH([]byte("cd"), []float32{10, 20}, 60, p)
	c.DrawTextOnPath([]byte("on"), path, nil, p)
	c.PushCull(cmdlog.XYWH(0, 0, 50, 50))
	c.DrawVertices(cmdlog.Triangles, []cmdlog.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}, nil, nil, nil, p)
	c.PopCull()
	c.Restore()
	bm.Release()
}

func TestReplayMatchesDirectDrawing(t *testing.T) {
	direct := trace.New(100, 100)
	scene(direct)

	rec := NewRecording(100, 100, WithOptimize(false))
	scene(rec.Canvas())
	pb := rec.Release()
	t.Cleanup(pb.Release)

	replayed := trace.New(100, 100)
	pb.Replay(replayed)

	if got, want := replayed.String(), direct.String(); got != want {
		t.Errorf("replay differs from direct drawing\ngot:\n%s\nwant:\n%s", got, want)
	}
	if w, h := pb.Bounds(); w != 100 || h != 100 {
		t.Errorf("Bounds() = %d, %d", w, h)
	}
}

// rewritable draws what the pipeline rewrites without changing the
// output: no-op save/restore pairs, constant-baseline text, and cull
// pairs that straddle a save.
func rewritable(c cmdlog.Canvas) {
	p := cmdlog.NewPaint()
	r := cmdlog.XYWH(0, 0, 60, 60)

	c.Save(cmdlog.SaveMatrixClip)
	c.Concat(cmdlog.Translate(10, 10))
	c.ClipRect(r, cmdlog.OpIntersect, false)
	c.Restore()

	c.PushCull(r)
	c.Save(cmdlog.SaveMatrixClip)
	c.PopCull()
	c.Restore()
	c.DrawRect(cmdlog.XYWH(5, 5, 10, 10), p)

	c.Save(cmdlog.SaveMatrixClip)
	c.PushCull(r)
	c.Restore()
	c.DrawOval(cmdlog.XYWH(5, 5, 10, 10), p)
	c.PopCull()

	c.DrawPosText([]byte("xyz"), []cmdlog.Point{{X: 10, Y: 30}, {X: 18, Y: 30}, {X: 26, Y: 30}}, p)
}

func TestOptimizedReplayMatchesDirectDrawing(t *testing.T) {
	direct := trace.New(100, 100)
	scene(direct)
	rewritable(direct)

	rec := NewRecording(100, 100)
	scene(rec.Canvas())
	rewritable(rec.Canvas())
	pb := rec.Release()
	t.Cleanup(pb.Release)

	stats := pb.Stats()
	if stats.ByKind[record.KindNoOp] == 0 || stats.ByKind[record.KindBoundedDrawPosTextH] < 2 {
		t.Fatalf("pipeline did not rewrite the scene: %v", stats)
	}

	replayed := trace.New(100, 100)
	pb.Replay(replayed)

	got, want := replayed.Effects(), direct.Effects()
	if !slices.Equal(got, want) {
		t.Errorf("optimized replay differs from direct drawing\ngot:\n%s\nwant:\n%s",
			strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
	if replayed.IsClipEmpty() || replayed.QuickReject(cmdlog.XYWH(0, 0, 100, 100)) {
		t.Error("replay did not end with the full device clip")
	}
}

func TestReleaseWithCullStraddlingSave(t *testing.T) {
	rec := NewRecording(100, 100)
	c := rec.Canvas()
	c.PushCull(cmdlog.XYWH(0, 0, 10, 10))
	c.Save(cmdlog.SaveMatrixClip)
	c.PopCull()
	c.Restore()
	c.DrawRect(cmdlog.XYWH(0, 0, 5, 5), nil)

	pb := rec.Release()
	t.Cleanup(pb.Release)

	tc := trace.New(100, 100)
	pb.Replay(tc)
	assertNames(t, tc, "PushCull", "Save", "PopCull", "Restore", "DrawRect")
}

func TestReplaySkipsUnderEmptyClip(t *testing.T) {
	rec := NewRecording(100, 100, WithOptimize(false))
	c := rec.Canvas()
	p := cmdlog.NewPaint()

	c.Save(cmdlog.SaveMatrixClip)
	c.ClipRect(cmdlog.XYWH(200, 200, 10, 10), cmdlog.OpIntersect, false)
	c.DrawRect(cmdlog.XYWH(0, 0, 10, 10), p)
	c.ClipRect(cmdlog.XYWH(0, 0, 5, 5), cmdlog.OpIntersect, false)
	c.Clear(cmdlog.Red)
	c.ClipRect(cmdlog.XYWH(0, 0, 50, 50), cmdlog.OpReplace, false)
	c.DrawOval(cmdlog.XYWH(0, 0, 10, 10), p)
	c.Restore()
	c.DrawPaint(p)

	pb := rec.Release()
	t.Cleanup(pb.Release)

	tc := trace.New(100, 100)
	pb.Replay(tc)
	assertNames(t, tc, "Save", "ClipRect", "Clear", "ClipRect", "DrawOval", "Restore", "DrawPaint")
}

func TestEmptySaveRestoreReplaysNothing(t *testing.T) {
	rec := NewRecording(100, 100)
	rec.Canvas().Save(cmdlog.SaveMatrixClip)
	rec.Canvas().Restore()
	pb := rec.Release()
	t.Cleanup(pb.Release)

	if got := pb.Stats().Live(); got != 0 {
		t.Errorf("Live() = %d, want 0", got)
	}
	tc := trace.New(100, 100)
	pb.Replay(tc)
	assertNames(t, tc)
}

func TestReplayJumpsRejectedCull(t *testing.T) {
	rec := NewRecording(100, 100)
	c := rec.Canvas()
	p := cmdlog.NewPaint()

	c.PushCull(cmdlog.XYWH(200, 200, 10, 10))
	c.DrawRect(cmdlog.XYWH(200, 200, 5, 5), p)
	c.PushCull(cmdlog.XYWH(200, 200, 5, 5))
	c.PopCull()
	c.PopCull()
	c.PushCull(cmdlog.XYWH(0, 0, 10, 10))
	c.DrawRect(cmdlog.XYWH(0, 0, 5, 5), p)
	c.PopCull()

	pb := rec.Release()
	t.Cleanup(pb.Release)
	if pb.Stats().ByKind[record.KindPairedPushCull] != 3 {
		t.Fatalf("culls not paired:\n%s", pb)
	}

	tc := trace.New(100, 100)
	pb.Replay(tc)
	assertNames(t, tc, "PushCull", "DrawRect", "PopCull")
}

func TestReplayRejectsBoundedText(t *testing.T) {
	rec := NewRecording(100, 100)
	c := rec.Canvas()
	p := cmdlog.NewPaint()

	c.ClipRect(cmdlog.XYWH(0, 0, 100, 20), cmdlog.OpIntersect, false)
	c.DrawPosText([]byte("ab"), []cmdlog.Point{{X: 10, Y: 80}, {X: 20, Y: 80}}, p)
	c.DrawPosText([]byte("cd"), []cmdlog.Point{{X: 10, Y: 10}, {X: 20, Y: 10}}, p)

	pb := rec.Release()
	t.Cleanup(pb.Release)
	if pb.Stats().ByKind[record.KindBoundedDrawPosTextH] != 2 {
		t.Fatalf("text not bounded:\n%s", pb)
	}

	tc := trace.New(100, 100)
	pb.Replay(tc)
	assertNames(t, tc, "ClipRect", "DrawPosTextH")
	if got := tc.Calls()[1]; got != `DrawPosTextH("cd", 2, 10)` {
		t.Errorf("drawn text = %s", got)
	}
}

func TestReplayRange(t *testing.T) {
	rec := NewRecording(100, 100, WithOptimize(false))
	c := rec.Canvas()
	c.DrawRect(cmdlog.XYWH(0, 0, 1, 1), nil)
	c.DrawOval(cmdlog.XYWH(0, 0, 1, 1), nil)
	c.DrawPaint(nil)
	pb := rec.Release()
	t.Cleanup(pb.Release)

	tc := trace.New(100, 100)
	pb.ReplayRange(tc, 1, 3)
	assertNames(t, tc, "DrawOval", "DrawPaint")

	mustPanic(t, "playback: ", func() { pb.ReplayRange(tc, 2, 4) })
	mustPanic(t, "playback: ", func() { pb.ReplayRange(tc, 2, 1) })
}

func TestConcurrentReplay(t *testing.T) {
	rec := NewRecording(100, 100)
	scene(rec.Canvas())
	pb := rec.Release()
	t.Cleanup(pb.Release)

	ref := trace.New(100, 100)
	pb.Replay(ref)
	want := ref.String()

	const workers = 8
	var wg sync.WaitGroup
	results := make([]string, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tc := trace.New(100, 100)
			for range 10 {
				tc.Reset()
				pb.Replay(tc)
			}
			results[i] = tc.String()
		}()
	}
	wg.Wait()

	for i, got := range results {
		if got != want {
			t.Errorf("worker %d replayed differently", i)
		}
	}
}

func TestSealTwicePanics(t *testing.T) {
	l := record.New()
	pb := Seal(l)
	t.Cleanup(pb.Release)
	mustPanic(t, "playback: ", func() { Seal(l) })
}

func TestSealAnnotatesCulls(t *testing.T) {
	l := record.New()
	record.Append(l, record.PushCull{Rect: cmdlog.XYWH(0, 0, 1, 1)})
	record.Append(l, record.PopCull{})
	pb := Seal(l)
	t.Cleanup(pb.Release)

	if l.Kind(0) != record.KindPairedPushCull || !l.Frozen() {
		t.Errorf("Seal did not pair and freeze: %v, frozen=%v", l.Kind(0), l.Frozen())
	}
}

func TestReleasedPlayback(t *testing.T) {
	bm := cmdlog.NewBitmap(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	rec := NewRecording(10, 10)
	rec.Canvas().DrawBitmap(bm, 0, 0, nil)
	pb := rec.Release()

	if got := bm.Pixels.RefCount(); got != 2 {
		t.Fatalf("RefCount() = %d, want 2", got)
	}
	pb.Release()
	if got := bm.Pixels.RefCount(); got != 1 {
		t.Errorf("RefCount() after Release = %d, want 1", got)
	}

	mustPanic(t, "playback: ", func() { pb.Replay(trace.New(10, 10)) })
	mustPanic(t, "playback: ", func() { pb.Release() })
}

func TestRecordingReleasedTwice(t *testing.T) {
	rec := NewRecording(10, 10)
	pb := rec.Release()
	t.Cleanup(pb.Release)

	// Drawing after release is dropped.
	rec.Canvas().DrawPaint(nil)
	if pb.Count() != 0 {
		t.Errorf("Count() = %d, want 0", pb.Count())
	}
	mustPanic(t, "playback: ", func() { rec.Release() })
}

func TestRecordingWithConfig(t *testing.T) {
	tests := []struct {
		name     string
		optimize bool
		live     int
	}{
		{"optimize", true, 0},
		{"plain", false, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := cmdlog.DefaultConfig()
			cfg.Optimize = tt.optimize
			cfg.ChunkSize = 256

			rec := NewRecording(10, 10, WithConfig(cfg))
			rec.Canvas().Save(cmdlog.SaveMatrixClip)
			rec.Canvas().Restore()
			pb := rec.Release()
			t.Cleanup(pb.Release)

			if got := pb.Stats().Live(); got != tt.live {
				t.Errorf("Live() = %d, want %d", got, tt.live)
			}
		})
	}
}

func TestSealPairsCullsWhateverTheConfig(t *testing.T) {
	cfg := cmdlog.DefaultConfig()
	cfg.AnnotateCulls = false

	rec := NewRecording(10, 10, WithConfig(cfg))
	rec.Canvas().PushCull(cmdlog.XYWH(0, 0, 5, 5))
	rec.Canvas().PopCull()
	pb := rec.Release()
	t.Cleanup(pb.Release)

	if got := pb.Stats().ByKind[record.KindPairedPushCull]; got != 1 {
		t.Errorf("paired culls = %d, want 1 with annotate_culls off", got)
	}
}
