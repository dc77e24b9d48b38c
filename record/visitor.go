package record

// Visitor reads entries. It has one method per kind in the catalog, so a
// type that forgets a case does not satisfy it. Ops are passed by value;
// the arena views they carry must not be modified.
type Visitor interface {
	NoOp(NoOp)
	Restore(Restore)
	Save(Save)
	SaveLayer(SaveLayer)
	Concat(Concat)
	SetMatrix(SetMatrix)
	ClipPath(ClipPath)
	ClipRRect(ClipRRect)
	ClipRect(ClipRect)
	ClipRegion(ClipRegion)
	Clear(Clear)
	DrawBitmap(DrawBitmap)
	DrawBitmapMatrix(DrawBitmapMatrix)
	DrawBitmapNine(DrawBitmapNine)
	DrawBitmapRectToRect(DrawBitmapRectToRect)
	DrawDRRect(DrawDRRect)
	DrawOval(DrawOval)
	DrawPaint(DrawPaint)
	DrawPath(DrawPath)
	DrawPoints(DrawPoints)
	DrawPosText(DrawPosText)
	DrawPosTextH(DrawPosTextH)
	DrawRRect(DrawRRect)
	DrawRect(DrawRect)
	DrawSprite(DrawSprite)
	DrawText(DrawText)
	DrawTextOnPath(DrawTextOnPath)
	DrawVertices(DrawVertices)
	PushCull(PushCull)
	PopCull(PopCull)
	PairedPushCull(PairedPushCull)
	BoundedDrawPosTextH(BoundedDrawPosTextH)
}

// Mutator edits entries in place. Each method receives the entry index
// and a pointer to the live op; it may modify the op or call Replace or
// Adopt for that index.
type Mutator interface {
	NoOp(i int, op *NoOp)
	Restore(i int, op *Restore)
	Save(i int, op *Save)
	SaveLayer(i int, op *SaveLayer)
	Concat(i int, op *Concat)
	SetMatrix(i int, op *SetMatrix)
	ClipPath(i int, op *ClipPath)
	ClipRRect(i int, op *ClipRRect)
	ClipRect(i int, op *ClipRect)
	ClipRegion(i int, op *ClipRegion)
	Clear(i int, op *Clear)
	DrawBitmap(i int, op *DrawBitmap)
	DrawBitmapMatrix(i int, op *DrawBitmapMatrix)
	DrawBitmapNine(i int, op *DrawBitmapNine)
	DrawBitmapRectToRect(i int, op *DrawBitmapRectToRect)
	DrawDRRect(i int, op *DrawDRRect)
	DrawOval(i int, op *DrawOval)
	DrawPaint(i int, op *DrawPaint)
	DrawPath(i int, op *DrawPath)
	DrawPoints(i int, op *DrawPoints)
	DrawPosText(i int, op *DrawPosText)
	DrawPosTextH(i int, op *DrawPosTextH)
	DrawRRect(i int, op *DrawRRect)
	DrawRect(i int, op *DrawRect)
	DrawSprite(i int, op *DrawSprite)
	DrawText(i int, op *DrawText)
	DrawTextOnPath(i int, op *DrawTextOnPath)
	DrawVertices(i int, op *DrawVertices)
	PushCull(i int, op *PushCull)
	PopCull(i int, op *PopCull)
	PairedPushCull(i int, op *PairedPushCull)
	BoundedDrawPosTextH(i int, op *BoundedDrawPosTextH)
}

// NopVisitor ignores every kind. Embed it in a Visitor that only cares
// about a few kinds and override those methods.
type NopVisitor struct{}

func (NopVisitor) NoOp(NoOp)                                 {}
func (NopVisitor) Restore(Restore)                           {}
func (NopVisitor) Save(Save)                                 {}
func (NopVisitor) SaveLayer(SaveLayer)                       {}
func (NopVisitor) Concat(Concat)                             {}
func (NopVisitor) SetMatrix(SetMatrix)                       {}
func (NopVisitor) ClipPath(ClipPath)                         {}
func (NopVisitor) ClipRRect(ClipRRect)                       {}
func (NopVisitor) ClipRect(ClipRect)                         {}
func (NopVisitor) ClipRegion(ClipRegion)                     {}
func (NopVisitor) Clear(Clear)                               {}
func (NopVisitor) DrawBitmap(DrawBitmap)                     {}
func (NopVisitor) DrawBitmapMatrix(DrawBitmapMatrix)         {}
func (NopVisitor) DrawBitmapNine(DrawBitmapNine)             {}
func (NopVisitor) DrawBitmapRectToRect(DrawBitmapRectToRect) {}
func (NopVisitor) DrawDRRect(DrawDRRect)                     {}
func (NopVisitor) DrawOval(DrawOval)                         {}
func (NopVisitor) DrawPaint(DrawPaint)                       {}
func (NopVisitor) DrawPath(DrawPath)                         {}
func (NopVisitor) DrawPoints(DrawPoints)                     {}
func (NopVisitor) DrawPosText(DrawPosText)                   {}
func (NopVisitor) DrawPosTextH(DrawPosTextH)                 {}
func (NopVisitor) DrawRRect(DrawRRect)                       {}
func (NopVisitor) DrawRect(DrawRect)                         {}
func (NopVisitor) DrawSprite(DrawSprite)                     {}
func (NopVisitor) DrawText(DrawText)                         {}
func (NopVisitor) DrawTextOnPath(DrawTextOnPath)             {}
func (NopVisitor) DrawVertices(DrawVertices)                 {}
func (NopVisitor) PushCull(PushCull)                         {}
func (NopVisitor) PopCull(PopCull)                           {}
func (NopVisitor) PairedPushCull(PairedPushCull)             {}
func (NopVisitor) BoundedDrawPosTextH(BoundedDrawPosTextH)   {}

// NopMutator ignores every kind. Embed it in a Mutator that only cares
// about a few kinds and override those methods.
type NopMutator struct{}

func (NopMutator) NoOp(int, *NoOp)                                 {}
func (NopMutator) Restore(int, *Restore)                           {}
func (NopMutator) Save(int, *Save)                                 {}
func (NopMutator) SaveLayer(int, *SaveLayer)                       {}
func (NopMutator) Concat(int, *Concat)                             {}
func (NopMutator) SetMatrix(int, *SetMatrix)                       {}
func (NopMutator) ClipPath(int, *ClipPath)                         {}
func (NopMutator) ClipRRect(int, *ClipRRect)                       {}
func (NopMutator) ClipRect(int, *ClipRect)                         {}
func (NopMutator) ClipRegion(int, *ClipRegion)                     {}
func (NopMutator) Clear(int, *Clear)                               {}
func (NopMutator) DrawBitmap(int, *DrawBitmap)                     {}
func (NopMutator) DrawBitmapMatrix(int, *DrawBitmapMatrix)         {}
func (NopMutator) DrawBitmapNine(int, *DrawBitmapNine)             {}
func (NopMutator) DrawBitmapRectToRect(int, *DrawBitmapRectToRect) {}
func (NopMutator) DrawDRRect(int, *DrawDRRect)                     {}
func (NopMutator) DrawOval(int, *DrawOval)                         {}
func (NopMutator) DrawPaint(int, *DrawPaint)                       {}
func (NopMutator) DrawPath(int, *DrawPath)                         {}
func (NopMutator) DrawPoints(int, *DrawPoints)                     {}
func (NopMutator) DrawPosText(int, *DrawPosText)                   {}
func (NopMutator) DrawPosTextH(int, *DrawPosTextH)                 {}
func (NopMutator) DrawRRect(int, *DrawRRect)                       {}
func (NopMutator) DrawRect(int, *DrawRect)                         {}
func (NopMutator) DrawSprite(int, *DrawSprite)                     {}
func (NopMutator) DrawText(int, *DrawText)                         {}
func (NopMutator) DrawTextOnPath(int, *DrawTextOnPath)             {}
func (NopMutator) DrawVertices(int, *DrawVertices)                 {}
func (NopMutator) PushCull(int, *PushCull)                         {}
func (NopMutator) PopCull(int, *PopCull)                           {}
func (NopMutator) PairedPushCull(int, *PairedPushCull)             {}
func (NopMutator) BoundedDrawPosTextH(int, *BoundedDrawPosTextH)   {}

// Visit calls the method of v matching the kind at i.
func (l *Log) Visit(i int, v Visitor) {
	switch k := l.tags[i]; k {
	case KindNoOp:
		v.NoOp(*at[NoOp](l, i))
	case KindRestore:
		v.Restore(*at[Restore](l, i))
	case KindSave:
		v.Save(*at[Save](l, i))
	case KindSaveLayer:
		v.SaveLayer(*at[SaveLayer](l, i))
	case KindConcat:
		v.Concat(*at[Concat](l, i))
	case KindSetMatrix:
		v.SetMatrix(*at[SetMatrix](l, i))
	case KindClipPath:
		v.ClipPath(*at[ClipPath](l, i))
	case KindClipRRect:
		v.ClipRRect(*at[ClipRRect](l, i))
	case KindClipRect:
		v.ClipRect(*at[ClipRect](l, i))
	case KindClipRegion:
		v.ClipRegion(*at[ClipRegion](l, i))
	case KindClear:
		v.Clear(*at[Clear](l, i))
	case KindDrawBitmap:
		v.DrawBitmap(*at[DrawBitmap](l, i))
	case KindDrawBitmapMatrix:
		v.DrawBitmapMatrix(*at[DrawBitmapMatrix](l, i))
	case KindDrawBitmapNine:
		v.DrawBitmapNine(*at[DrawBitmapNine](l, i))
	case KindDrawBitmapRectToRect:
		v.DrawBitmapRectToRect(*at[DrawBitmapRectToRect](l, i))
	case KindDrawDRRect:
		v.DrawDRRect(*at[DrawDRRect](l, i))
	case KindDrawOval:
		v.DrawOval(*at[DrawOval](l, i))
	case KindDrawPaint:
		v.DrawPaint(*at[DrawPaint](l, i))
	case KindDrawPath:
		v.DrawPath(*at[DrawPath](l, i))
	case KindDrawPoints:
		v.DrawPoints(*at[DrawPoints](l, i))
	case KindDrawPosText:
		v.DrawPosText(*at[DrawPosText](l, i))
	case KindDrawPosTextH:
		v.DrawPosTextH(*at[DrawPosTextH](l, i))
	case KindDrawRRect:
		v.DrawRRect(*at[DrawRRect](l, i))
	case KindDrawRect:
		v.DrawRect(*at[DrawRect](l, i))
	case KindDrawSprite:
		v.DrawSprite(*at[DrawSprite](l, i))
	case KindDrawText:
		v.DrawText(*at[DrawText](l, i))
	case KindDrawTextOnPath:
		v.DrawTextOnPath(*at[DrawTextOnPath](l, i))
	case KindDrawVertices:
		v.DrawVertices(*at[DrawVertices](l, i))
	case KindPushCull:
		v.PushCull(*at[PushCull](l, i))
	case KindPopCull:
		v.PopCull(*at[PopCull](l, i))
	case KindPairedPushCull:
		v.PairedPushCull(*at[PairedPushCull](l, i))
	case KindBoundedDrawPosTextH:
		v.BoundedDrawPosTextH(*at[BoundedDrawPosTextH](l, i))
	default:
		panic("record: corrupt tag " + k.String())
	}
}

// Mutate calls the method of m matching the kind at i.
func (l *Log) Mutate(i int, m Mutator) {
	switch k := l.tags[i]; k {
	case KindNoOp:
		m.NoOp(i, at[NoOp](l, i))
	case KindRestore:
		m.Restore(i, at[Restore](l, i))
	case KindSave:
		m.Save(i, at[Save](l, i))
	case KindSaveLayer:
		m.SaveLayer(i, at[SaveLayer](l, i))
	case KindConcat:
		m.Concat(i, at[Concat](l, i))
	case KindSetMatrix:
		m.SetMatrix(i, at[SetMatrix](l, i))
	case KindClipPath:
		m.ClipPath(i, at[ClipPath](l, i))
	case KindClipRRect:
		m.ClipRRect(i, at[ClipRRect](l, i))
	case KindClipRect:
		m.ClipRect(i, at[ClipRect](l, i))
	case KindClipRegion:
		m.ClipRegion(i, at[ClipRegion](l, i))
	case KindClear:
		m.Clear(i, at[Clear](l, i))
	case KindDrawBitmap:
		m.DrawBitmap(i, at[DrawBitmap](l, i))
	case KindDrawBitmapMatrix:
		m.DrawBitmapMatrix(i, at[DrawBitmapMatrix](l, i))
	case KindDrawBitmapNine:
		m.DrawBitmapNine(i, at[DrawBitmapNine](l, i))
	case KindDrawBitmapRectToRect:
		m.DrawBitmapRectToRect(i, at[DrawBitmapRectToRect](l, i))
	case KindDrawDRRect:
		m.DrawDRRect(i, at[DrawDRRect](l, i))
	case KindDrawOval:
		m.DrawOval(i, at[DrawOval](l, i))
	case KindDrawPaint:
		m.DrawPaint(i, at[DrawPaint](l, i))
	case KindDrawPath:
		m.DrawPath(i, at[DrawPath](l, i))
	case KindDrawPoints:
		m.DrawPoints(i, at[DrawPoints](l, i))
	case KindDrawPosText:
		m.DrawPosText(i, at[DrawPosText](l, i))
	case KindDrawPosTextH:
		m.DrawPosTextH(i, at[DrawPosTextH](l, i))
	case KindDrawRRect:
		m.DrawRRect(i, at[DrawRRect](l, i))
	case KindDrawRect:
		m.DrawRect(i, at[DrawRect](l, i))
	case KindDrawSprite:
		m.DrawSprite(i, at[DrawSprite](l, i))
	case KindDrawText:
		m.DrawText(i, at[DrawText](l, i))
	case KindDrawTextOnPath:
		m.DrawTextOnPath(i, at[DrawTextOnPath](l, i))
	case KindDrawVertices:
		m.DrawVertices(i, at[DrawVertices](l, i))
	case KindPushCull:
		m.PushCull(i, at[PushCull](l, i))
	case KindPopCull:
		m.PopCull(i, at[PopCull](l, i))
	case KindPairedPushCull:
		m.PairedPushCull(i, at[PairedPushCull](l, i))
	case KindBoundedDrawPosTextH:
		m.BoundedDrawPosTextH(i, at[BoundedDrawPosTextH](l, i))
	default:
		panic("record: corrupt tag " + k.String())
	}
}
