// Command cmdlogdump records a demo scene, prints its command log before
// and after optimization, and optionally renders it to PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/cmdlog"
	"github.com/gogpu/cmdlog/opt"
	"github.com/gogpu/cmdlog/playback"
	"github.com/gogpu/cmdlog/record"
	"github.com/gogpu/cmdlog/recorder"
	"github.com/gogpu/cmdlog/sink"
	"github.com/gogpu/cmdlog/sink/raster"
	"github.com/gogpu/cmdlog/sink/trace"
	"github.com/gogpu/cmdlog/typeface"
)

func main() {
	var (
		width   = flag.Int("width", 400, "canvas width")
		height  = flag.Int("height", 300, "canvas height")
		config  = flag.String("config", "", "TOML config file")
		output  = flag.String("output", "", "render the playback to this PNG file")
		showRun = flag.Bool("trace", false, "print the calls a replay issues")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		cmdlog.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := cmdlog.DefaultConfig()
	if *config != "" {
		var err error
		if cfg, err = cmdlog.LoadConfig(*config); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	rec := recorder.New(*width, *height, record.WithChunkSize(cfg.ChunkSize))
	drawScene(rec, *width, *height)
	l := rec.Log()
	rec.Forget()

	fmt.Println("== recorded ==")
	fmt.Print(l)
	fmt.Println(l.Stats())

	if cfg.Optimize {
		res := opt.Optimize(l, opt.FromConfig(cfg)...)
		fmt.Println("\n== optimized ==")
		fmt.Print(l)
		fmt.Println(l.Stats())
		fmt.Printf("save/restores erased: %v, culls paired: %d, text reduced: %d, text bounded: %d\n",
			res.SaveRestoresErased, res.CullsPaired, res.TextReduced, res.TextBounded)
	}

	pb := playback.Seal(l)
	defer pb.Release()

	if *showRun {
		c, err := sink.New("trace", *width, *height)
		if err != nil {
			log.Fatalf("Failed to create sink: %v", err)
		}
		pb.Replay(c)
		fmt.Println("\n== replay ==")
		fmt.Println(c.(*trace.Canvas))
	}

	if *output != "" {
		c := raster.New(*width, *height)
		pb.Replay(c)
		if err := c.SavePNG(*output); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Playback saved to %s (%dx%d)\n", *output, *width, *height)
	}
}

// drawScene exercises each optimization: an empty save/restore, a cull
// range off screen, and constant-baseline text above and below a clip.
func drawScene(c cmdlog.Canvas, w, h int) {
	fw, fh := float32(w), float32(h)
	c.Clear(cmdlog.White)

	// Erased by the save/restore pass.
	c.Save(cmdlog.SaveMatrixClip)
	c.Concat(cmdlog.Translate(10, 10))
	c.Restore()

	// Shapes.
	fillp := cmdlog.NewPaint()
	fillp.Color = cmdlog.ARGB(0xff, 0x33, 0x66, 0xcc)
	c.DrawRRect(cmdlog.RRectXY(cmdlog.XYWH(20, 20, fw/3, fh/4), 12, 12), fillp)

	strokep := cmdlog.NewPaint()
	strokep.Style = cmdlog.StyleStroke
	strokep.StrokeWidth = 4
	strokep.Color = cmdlog.ARGB(0xff, 0xcc, 0x33, 0x33)
	c.DrawOval(cmdlog.XYWH(fw/2, 20, fw/3, fh/4), strokep)

	path := cmdlog.NewPath().
		MoveTo(20, fh/2).
		CubicTo(fw/4, fh/2-60, fw/2, fh/2+60, fw-20, fh/2)
	c.DrawPath(path, strokep)

	// Off screen: replay jumps over the whole range.
	c.PushCull(cmdlog.XYWH(fw+100, fh+100, 50, 50))
	c.DrawRect(cmdlog.XYWH(fw+100, fh+100, 50, 50), fillp)
	c.PopCull()

	// Text in a band; the lines outside it are rejected by their bounds.
	textp := cmdlog.NewPaint()
	textp.TextSize = 18
	textp.Typeface = typeface.Default()
	c.Save(cmdlog.SaveMatrixClip)
	c.ClipRect(cmdlog.XYWH(0, fh-80, fw, 60), cmdlog.OpIntersect, false)
	for i, y := range []float32{fh - 120, fh - 50, fh + 40} {
		text := []byte(fmt.Sprintf("line %d", i))
		pos := make([]cmdlog.Point, len(text))
		for j := range pos {
			pos[j] = cmdlog.Pt(20+float32(j)*10, y)
		}
		c.DrawPosText(text, pos, textp)
	}
	c.Restore()
}
