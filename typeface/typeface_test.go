package typeface

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestParseOpenType(t *testing.T) {
	tf, err := ParseOpenType(goregular.TTF)
	if err != nil {
		t.Fatalf("ParseOpenType() error = %v", err)
	}
	t.Cleanup(func() { _ = tf.Close() })

	if tf.Name() == "" {
		t.Error("Name() is empty")
	}

	top, bottom, ok := tf.VerticalExtents(10)
	if !ok {
		t.Fatal("VerticalExtents() ok = false")
	}
	if top >= 0 || bottom <= 0 {
		t.Errorf("extents = [%g, %g], want top < 0 < bottom", top, bottom)
	}
	// A sane Latin font stays within 1.5 em of the baseline.
	if top < -15 || bottom > 15 {
		t.Errorf("extents = [%g, %g] exceed 1.5em at size 10", top, bottom)
	}

	top2, bottom2, _ := tf.VerticalExtents(20)
	if !near(top2, 2*top) || !near(bottom2, 2*bottom) {
		t.Errorf("extents do not scale linearly: [%g, %g] vs [%g, %g]", top, bottom, top2, bottom2)
	}
}

func TestOpenTypeFaceCached(t *testing.T) {
	tf := Default()
	a, err := tf.Face(12)
	if err != nil {
		t.Fatalf("Face() error = %v", err)
	}
	b, _ := tf.Face(12)
	if a != b {
		t.Error("Face(12) not cached")
	}
	if m := a.Metrics(); m.Ascent <= 0 {
		t.Errorf("face ascent = %v", m.Ascent)
	}
}

func TestParseGoText(t *testing.T) {
	tf, err := ParseGoText(goregular.TTF)
	if err != nil {
		t.Fatalf("ParseGoText() error = %v", err)
	}
	if tf.UnitsPerEm() <= 0 {
		t.Errorf("UnitsPerEm() = %d", tf.UnitsPerEm())
	}
	top, bottom, ok := tf.VerticalExtents(12)
	if !ok || top >= 0 || bottom <= 0 {
		t.Errorf("VerticalExtents(12) = %g, %g, %v", top, bottom, ok)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		parse func([]byte) error
	}{
		{"opentype", func(b []byte) error { _, err := ParseOpenType(b); return err }},
		{"gotext", func(b []byte) error { _, err := ParseGoText(b); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.parse(nil); !errors.Is(err, ErrEmptyFontData) {
				t.Errorf("empty data error = %v, want ErrEmptyFontData", err)
			}
			if err := tt.parse([]byte("not a font")); err == nil {
				t.Error("garbage data parsed without error")
			}
		})
	}
}

func near(a, b float32) bool {
	d := a - b
	return d < 1e-3 && d > -1e-3
}
