package text

import (
	"testing"

	"github.com/Faultbox/textmesh/pkg/math"
)

// testDescriptor describes a monospace font: every printable glyph advances
// half an em and covers [0, 0.5] x [-0.25, 0.75]; space advances a quarter em.
// Atlas cells are 16x16 pixels, 16 per row, in a 256x128 bottom-origin atlas.
func testDescriptor() Descriptor {
	desc := Descriptor{
		Atlas: Atlas{
			Type:          AtlasMSDF,
			DistanceRange: 4,
			Size:          32,
			Width:         256,
			Height:        128,
			YOrigin:       YOriginBottom,
		},
		Metrics: Metrics{
			EmSize:     1,
			LineHeight: 1.25,
			Ascender:   1,
			Descender:  -0.25,
		},
	}

	desc.Glyphs = append(desc.Glyphs, SourceGlyph{Unicode: ' ', Advance: 0.25})
	for c := uint32(33); c < 127; c++ {
		i := float32(c - 33)
		col, row := float32(int(i)%16), float32(int(i)/16)
		desc.Glyphs = append(desc.Glyphs, SourceGlyph{
			Unicode:     c,
			Advance:     0.5,
			PlaneBounds: &math.Bounds{Left: 0, Top: 0.75, Right: 0.5, Bottom: -0.25},
			AtlasBounds: &math.Bounds{Left: col * 16, Top: row*16 + 16, Right: col*16 + 16, Bottom: row * 16},
		})
	}
	return desc
}

func testFont(t *testing.T) *FontData {
	t.Helper()
	f, err := NewFontData(testDescriptor())
	if err != nil {
		t.Fatalf("NewFontData() error = %v", err)
	}
	return f
}

// testStyles returns n styles of size 10 using the test font, each with a
// distinct color.
func testStyles(t *testing.T, n int) []FontStyle {
	t.Helper()
	font := testFont(t)
	colors := []Color{ColorWhite, ColorRed, ColorGreen, ColorBlue}
	styles := make([]FontStyle, n)
	for i := range styles {
		styles[i] = NewFontStyle(font).WithSize(10).WithColor(colors[i%len(colors)])
	}
	return styles
}

func approx(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}

func approx2(a, b [2]float32) bool {
	return approx(a[0], b[0]) && approx(a[1], b[1])
}

const testFontJSON = `{
  "atlas": {"type": "msdf", "distanceRange": 4, "distanceRangeMiddle": 0, "size": 32,
            "width": 64, "height": 32, "yOrigin": "bottom"},
  "metrics": {"emSize": 1, "lineHeight": 1.2, "ascender": 0.9, "descender": -0.3,
              "underlineY": -0.1, "underlineThickness": 0.05},
  "glyphs": [
    {"unicode": 32, "advance": 0.3},
    {"unicode": 63, "advance": 0.5,
     "planeBounds": {"left": 0.05, "top": 0.8, "right": 0.45, "bottom": 0},
     "atlasBounds": {"left": 0.5, "top": 16.5, "right": 16.5, "bottom": 0.5}},
    {"unicode": 65, "advance": 0.6,
     "planeBounds": {"left": 0, "top": 0.8, "right": 0.6, "bottom": 0},
     "atlasBounds": {"left": 16.5, "top": 16.5, "right": 32.5, "bottom": 0.5}},
    {"unicode": 233, "advance": 0.7,
     "planeBounds": {"left": 0, "top": 1, "right": 0.6, "bottom": 0},
     "atlasBounds": {"left": 32.5, "top": 16.5, "right": 48.5, "bottom": 0.5}}
  ]
}`
