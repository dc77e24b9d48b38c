package record

// Kind is the one-byte tag identifying which operation occupies a slot.
type Kind uint8

// Kind constants. KindPairedPushCull and KindBoundedDrawPosTextH are only
// ever produced by rewrite passes.
const (
	KindNoOp Kind = iota
	KindRestore
	KindSave
	KindSaveLayer
	KindConcat
	KindSetMatrix
	KindClipPath
	KindClipRRect
	KindClipRect
	KindClipRegion
	KindClear
	KindDrawBitmap
	KindDrawBitmapMatrix
	KindDrawBitmapNine
	KindDrawBitmapRectToRect
	KindDrawDRRect
	KindDrawOval
	KindDrawPaint
	KindDrawPath
	KindDrawPoints
	KindDrawPosText
	KindDrawPosTextH
	KindDrawRRect
	KindDrawRect
	KindDrawSprite
	KindDrawText
	KindDrawTextOnPath
	KindDrawVertices
	KindPushCull
	KindPopCull
	KindPairedPushCull
	KindBoundedDrawPosTextH

	numKinds
)

var kindNames = [numKinds]string{
	KindNoOp:                 "NoOp",
	KindRestore:              "Restore",
	KindSave:                 "Save",
	KindSaveLayer:            "SaveLayer",
	KindConcat:               "Concat",
	KindSetMatrix:            "SetMatrix",
	KindClipPath:             "ClipPath",
	KindClipRRect:            "ClipRRect",
	KindClipRect:             "ClipRect",
	KindClipRegion:           "ClipRegion",
	KindClear:                "Clear",
	KindDrawBitmap:           "DrawBitmap",
	KindDrawBitmapMatrix:     "DrawBitmapMatrix",
	KindDrawBitmapNine:       "DrawBitmapNine",
	KindDrawBitmapRectToRect: "DrawBitmapRectToRect",
	KindDrawDRRect:           "DrawDRRect",
	KindDrawOval:             "DrawOval",
	KindDrawPaint:            "DrawPaint",
	KindDrawPath:             "DrawPath",
	KindDrawPoints:           "DrawPoints",
	KindDrawPosText:          "DrawPosText",
	KindDrawPosTextH:         "DrawPosTextH",
	KindDrawRRect:            "DrawRRect",
	KindDrawRect:             "DrawRect",
	KindDrawSprite:           "DrawSprite",
	KindDrawText:             "DrawText",
	KindDrawTextOnPath:       "DrawTextOnPath",
	KindDrawVertices:         "DrawVertices",
	KindPushCull:             "PushCull",
	KindPopCull:              "PopCull",
	KindPairedPushCull:       "PairedPushCull",
	KindBoundedDrawPosTextH:  "BoundedDrawPosTextH",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// NumKinds is the size of the closed operation catalog.
const NumKinds = int(numKinds)

// IsClip reports whether the kind narrows or otherwise changes the clip.
func (k Kind) IsClip() bool {
	return k >= KindClipPath && k <= KindClipRegion
}

// IsCull reports whether the kind is a cull marker.
func (k Kind) IsCull() bool {
	return k == KindPushCull || k == KindPopCull || k == KindPairedPushCull
}

// IsDraw reports whether the kind puts pixels on the canvas.
func (k Kind) IsDraw() bool {
	return (k >= KindClear && k <= KindDrawVertices) || k == KindBoundedDrawPosTextH
}

// IsStateOnly reports whether the kind only changes matrix, clip or cull
// state and draws nothing. A Save/Restore pair enclosing only such kinds
// is a no-op as long as the cull markers among them balance.
func (k Kind) IsStateOnly() bool {
	switch k {
	case KindNoOp, KindConcat, KindSetMatrix,
		KindClipPath, KindClipRRect, KindClipRect, KindClipRegion,
		KindPushCull, KindPopCull, KindPairedPushCull:
		return true
	}
	return false
}

// AlwaysReplays reports whether replay must execute the kind even when the
// clip is empty, because it changes the save stack or draws regardless of
// the clip.
func (k Kind) AlwaysReplays() bool {
	switch k {
	case KindSave, KindRestore, KindSaveLayer, KindClear, KindPushCull, KindPopCull:
		return true
	}
	return false
}
