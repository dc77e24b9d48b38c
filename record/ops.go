package record

import "github.com/gogpu/cmdlog"

// Op is implemented by every operation in the catalog. Kind must be
// callable on the zero value.
type Op interface {
	Kind() Kind
}

// Field disciplines used below:
//   - plain values (Matrix, Rect, Paint, Path, Region) are owned copies
//     taken when the op is appended;
//   - pointer fields (*cmdlog.Paint, *cmdlog.Rect, *cmdlog.Matrix) are
//     optional and nil when absent;
//   - Bitmap fields hold a retained pixel reference, released when the
//     op is destroyed;
//   - slices are views into the log's arena: the op neither grows nor
//     frees them.

// NoOp does nothing. Rewrite passes use it to erase entries in place.
type NoOp struct{}

// Restore pops the canvas save stack.
type Restore struct{}

// Save pushes the canvas save stack.
type Save struct {
	Flags cmdlog.SaveFlags
}

// SaveLayer pushes the save stack and redirects drawing to an offscreen
// layer that is composited on the matching Restore.
type SaveLayer struct {
	Bounds *cmdlog.Rect
	Paint  *cmdlog.Paint
	Flags  cmdlog.SaveFlags
}

// Concat pre-multiplies the current matrix.
type Concat struct {
	Matrix cmdlog.Matrix
}

// SetMatrix replaces the current matrix.
type SetMatrix struct {
	Matrix cmdlog.Matrix
}

// ClipPath combines the clip with a path.
type ClipPath struct {
	Path      cmdlog.Path
	Op        cmdlog.RegionOp
	AntiAlias bool
}

// ClipRRect combines the clip with a rounded rectangle.
type ClipRRect struct {
	RRect     cmdlog.RRect
	Op        cmdlog.RegionOp
	AntiAlias bool
}

// ClipRect combines the clip with a rectangle.
type ClipRect struct {
	Rect      cmdlog.Rect
	Op        cmdlog.RegionOp
	AntiAlias bool
}

// ClipRegion combines the clip with a device-space region.
type ClipRegion struct {
	Region cmdlog.Region
	Op     cmdlog.RegionOp
}

// Clear fills the whole canvas, ignoring the clip.
type Clear struct {
	Color cmdlog.Color
}

// DrawBitmap draws a bitmap with its top-left corner at (Left, Top).
type DrawBitmap struct {
	Paint     *cmdlog.Paint
	Bitmap    cmdlog.Bitmap
	Left, Top float32
}

// DrawBitmapMatrix draws a bitmap transformed by Matrix.
type DrawBitmapMatrix struct {
	Paint  *cmdlog.Paint
	Bitmap cmdlog.Bitmap
	Matrix cmdlog.Matrix
}

// DrawBitmapNine draws a nine-patch bitmap stretched to Dst.
type DrawBitmapNine struct {
	Paint  *cmdlog.Paint
	Bitmap cmdlog.Bitmap
	Center cmdlog.IRect
	Dst    cmdlog.Rect
}

// DrawBitmapRectToRect draws the Src part of a bitmap (all of it when Src
// is nil) scaled into Dst.
type DrawBitmapRectToRect struct {
	Paint  *cmdlog.Paint
	Bitmap cmdlog.Bitmap
	Src    *cmdlog.Rect
	Dst    cmdlog.Rect
	Flags  cmdlog.BitmapRectFlags
}

// DrawDRRect draws the area between two rounded rectangles.
type DrawDRRect struct {
	Outer, Inner cmdlog.RRect
	Paint        cmdlog.Paint
}

// DrawOval draws the ellipse inscribed in Oval.
type DrawOval struct {
	Oval  cmdlog.Rect
	Paint cmdlog.Paint
}

// DrawPaint fills the clip with Paint.
type DrawPaint struct {
	Paint cmdlog.Paint
}

// DrawPath draws a path.
type DrawPath struct {
	Path  cmdlog.Path
	Paint cmdlog.Paint
}

// DrawPoints draws points, segments or a polyline.
type DrawPoints struct {
	Paint cmdlog.Paint
	Mode  cmdlog.PointMode
	Pts   []cmdlog.Point
}

// DrawPosText draws text with one position per glyph.
type DrawPosText struct {
	Text  []byte
	Pos   []cmdlog.Point
	Paint cmdlog.Paint
}

// DrawPosTextH draws text with one x position per glyph on a shared
// baseline Y.
type DrawPosTextH struct {
	Text  []byte
	XPos  []float32
	Y     float32
	Paint cmdlog.Paint
}

// DrawRRect draws a rounded rectangle.
type DrawRRect struct {
	RRect cmdlog.RRect
	Paint cmdlog.Paint
}

// DrawRect draws a rectangle.
type DrawRect struct {
	Rect  cmdlog.Rect
	Paint cmdlog.Paint
}

// DrawSprite draws a bitmap in device space, ignoring the matrix.
type DrawSprite struct {
	Paint     *cmdlog.Paint
	Bitmap    cmdlog.Bitmap
	Left, Top int32
}

// DrawText draws text starting at (X, Y).
type DrawText struct {
	Text  []byte
	X, Y  float32
	Paint cmdlog.Paint
}

// DrawTextOnPath draws text along a path, optionally transformed.
type DrawTextOnPath struct {
	Text   []byte
	Path   cmdlog.Path
	Matrix *cmdlog.Matrix
	Paint  cmdlog.Paint
}

// DrawVertices draws a triangle mesh. Texs, Colors and Indices are
// optional (nil when absent).
type DrawVertices struct {
	Paint    cmdlog.Paint
	Mode     cmdlog.VertexMode
	Vertices []cmdlog.Point
	Texs     []cmdlog.Point
	Colors   []cmdlog.Color
	Indices  []uint16
}

// PushCull marks the start of a range whose drawing stays inside Rect.
type PushCull struct {
	Rect cmdlog.Rect
}

// PopCull ends the innermost cull range.
type PopCull struct{}

// PairedPushCull replaces a PushCull once its matching PopCull is known.
// It owns Base. The PopCull sits at this entry's index plus Skip.
type PairedPushCull struct {
	Base PushCull
	Skip int
}

// BoundedDrawPosTextH wraps a DrawPosTextH with a conservative vertical
// extent, letting replay reject it without touching the text. It owns
// Base.
type BoundedDrawPosTextH struct {
	Base       DrawPosTextH
	MinY, MaxY float32
}

func (NoOp) Kind() Kind                 { return KindNoOp }
func (Restore) Kind() Kind              { return KindRestore }
func (Save) Kind() Kind                 { return KindSave }
func (SaveLayer) Kind() Kind            { return KindSaveLayer }
func (Concat) Kind() Kind               { return KindConcat }
func (SetMatrix) Kind() Kind            { return KindSetMatrix }
func (ClipPath) Kind() Kind             { return KindClipPath }
func (ClipRRect) Kind() Kind            { return KindClipRRect }
func (ClipRect) Kind() Kind             { return KindClipRect }
func (ClipRegion) Kind() Kind           { return KindClipRegion }
func (Clear) Kind() Kind                { return KindClear }
func (DrawBitmap) Kind() Kind           { return KindDrawBitmap }
func (DrawBitmapMatrix) Kind() Kind     { return KindDrawBitmapMatrix }
func (DrawBitmapNine) Kind() Kind       { return KindDrawBitmapNine }
func (DrawBitmapRectToRect) Kind() Kind { return KindDrawBitmapRectToRect }
func (DrawDRRect) Kind() Kind           { return KindDrawDRRect }
func (DrawOval) Kind() Kind             { return KindDrawOval }
func (DrawPaint) Kind() Kind            { return KindDrawPaint }
func (DrawPath) Kind() Kind             { return KindDrawPath }
func (DrawPoints) Kind() Kind           { return KindDrawPoints }
func (DrawPosText) Kind() Kind          { return KindDrawPosText }
func (DrawPosTextH) Kind() Kind         { return KindDrawPosTextH }
func (DrawRRect) Kind() Kind            { return KindDrawRRect }
func (DrawRect) Kind() Kind             { return KindDrawRect }
func (DrawSprite) Kind() Kind           { return KindDrawSprite }
func (DrawText) Kind() Kind             { return KindDrawText }
func (DrawTextOnPath) Kind() Kind       { return KindDrawTextOnPath }
func (DrawVertices) Kind() Kind         { return KindDrawVertices }
func (PushCull) Kind() Kind             { return KindPushCull }
func (PopCull) Kind() Kind              { return KindPopCull }
func (PairedPushCull) Kind() Kind       { return KindPairedPushCull }
func (BoundedDrawPosTextH) Kind() Kind  { return KindBoundedDrawPosTextH }
