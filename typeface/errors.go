package typeface

import "errors"

// Sentinel errors for typeface package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("typeface: empty font data")

	// ErrNoMetrics is returned when a font carries no usable vertical
	// metrics.
	ErrNoMetrics = errors.New("typeface: font has no vertical metrics")
)
