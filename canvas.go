package cmdlog

// SaveFlags select which parts of the canvas state a Save or SaveLayer
// preserves.
type SaveFlags uint32

const (
	SaveMatrix          SaveFlags = 0x01
	SaveClip            SaveFlags = 0x02
	SaveHasAlphaLayer   SaveFlags = 0x04
	SaveFullColorLayer  SaveFlags = 0x08
	SaveClipToLayer     SaveFlags = 0x10
	SaveMatrixClip      SaveFlags = SaveMatrix | SaveClip
	SaveARGBNoClipLayer SaveFlags = 0x0F
	SaveARGBClipLayer   SaveFlags = 0x1F
)

// RegionOp is the set operation a clip applies against the current clip.
type RegionOp uint8

const (
	OpDifference RegionOp = iota
	OpIntersect
	OpUnion
	OpXOR
	OpReverseDifference
	OpReplace
)

var regionOpNames = [...]string{
	OpDifference:        "difference",
	OpIntersect:         "intersect",
	OpUnion:             "union",
	OpXOR:               "xor",
	OpReverseDifference: "reverse-difference",
	OpReplace:           "replace",
}

// String returns the op name.
func (op RegionOp) String() string {
	if int(op) < len(regionOpNames) {
		return regionOpNames[op]
	}
	return "unknown"
}

// PointMode selects how DrawPoints interprets its points.
type PointMode uint8

const (
	// PointsMode draws each point separately.
	PointsMode PointMode = iota
	// LinesMode draws each pair of points as a line segment.
	LinesMode
	// PolygonMode draws the points as a connected polyline.
	PolygonMode
)

// VertexMode selects how DrawVertices groups vertices into triangles.
type VertexMode uint8

const (
	Triangles VertexMode = iota
	TriangleStrip
	TriangleFan
)

// BitmapRectFlags modify DrawBitmapRectToRect.
type BitmapRectFlags uint32

const (
	// BitmapRectBleed allows sampling outside the source rectangle.
	BitmapRectBleed BitmapRectFlags = 0x1
)

// Canvas is the drawing-sink surface. The recorder implements it to
// capture calls; rasterizers and other sinks implement it to execute a
// playback.
//
// Pointer arguments are borrowed for the duration of the call only.
// Slices passed to a Canvas must not be retained or modified.
type Canvas interface {
	Save(flags SaveFlags)
	SaveLayer(bounds *Rect, paint *Paint, flags SaveFlags)
	Restore()

	Concat(m Matrix)
	SetMatrix(m Matrix)

	ClipRect(r Rect, op RegionOp, antiAlias bool)
	ClipRRect(rr RRect, op RegionOp, antiAlias bool)
	ClipPath(path *Path, op RegionOp, antiAlias bool)
	ClipRegion(rgn *Region, op RegionOp)

	Clear(c Color)
	DrawPaint(paint *Paint)
	DrawPoints(mode PointMode, pts []Point, paint *Paint)
	DrawRect(r Rect, paint *Paint)
	DrawOval(r Rect, paint *Paint)
	DrawRRect(rr RRect, paint *Paint)
	DrawDRRect(outer, inner RRect, paint *Paint)
	DrawPath(path *Path, paint *Paint)

	DrawBitmap(bm *Bitmap, left, top float32, paint *Paint)
	DrawBitmapRectToRect(bm *Bitmap, src *Rect, dst Rect, paint *Paint, flags BitmapRectFlags)
	DrawBitmapMatrix(bm *Bitmap, m Matrix, paint *Paint)
	DrawBitmapNine(bm *Bitmap, center IRect, dst Rect, paint *Paint)
	DrawSprite(bm *Bitmap, left, top int32, paint *Paint)

	DrawText(text []byte, x, y float32, paint *Paint)
	DrawPosText(text []byte, pos []Point, paint *Paint)
	DrawPosTextH(text []byte, xpos []float32, constY float32, paint *Paint)
	DrawTextOnPath(text []byte, path *Path, m *Matrix, paint *Paint)

	DrawVertices(mode VertexMode, verts, texs []Point, colors []Color, indices []uint16, paint *Paint)

	PushCull(r Rect)
	PopCull()

	// IsClipEmpty reports whether nothing drawn now could be visible.
	IsClipEmpty() bool
	// QuickReject reports whether r, in local coordinates, is certainly
	// outside the current clip. False negatives are allowed.
	QuickReject(r Rect) bool
	// QuickRejectY reports whether the horizontal band [top, bottom], in
	// local coordinates, is certainly outside the current clip.
	QuickRejectY(top, bottom float32) bool
}
