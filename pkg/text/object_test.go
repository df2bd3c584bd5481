package text

import (
	"testing"

	"github.com/Faultbox/textmesh/pkg/math"
)

func TestNewTextObjectDefaults(t *testing.T) {
	o := NewTextObject("Hello")

	if !o.NeedsUpdate() {
		t.Error("new object should need an update")
	}
	if o.HAlign() != HAlignCenter || o.VAlign() != VAlignMiddle {
		t.Errorf("alignment = %v/%v, want center/middle", o.HAlign(), o.VAlign())
	}
	if o.Bounds() != (math.Bounds{}) {
		t.Errorf("Bounds() = %+v, want zero", o.Bounds())
	}
	if o.AutoLineBreak() || o.SizeToFit() || o.HardBreaks() || o.FoldASCII() {
		t.Error("flags should default to off")
	}
	if _, ok := o.Storage().(EmptyStorage); !ok {
		t.Errorf("Storage() = %T, want EmptyStorage", o.Storage())
	}
	if o.Text() != "Hello" {
		t.Errorf("Text() = %q, want Hello", o.Text())
	}
}

func TestNewTextObjectWithStorageNil(t *testing.T) {
	o := NewTextObjectWithStorage("x", nil)
	if _, ok := o.Storage().(EmptyStorage); !ok {
		t.Errorf("Storage() = %T, want EmptyStorage", o.Storage())
	}
}

func TestTextObjectSingleLine(t *testing.T) {
	styles := testStyles(t, 1)
	lines := NewTextObject("Hello").Lines(styles)

	if len(lines) != 1 || lines[0].String() != "Hello" {
		t.Fatalf("Lines() = %q, want one line Hello", lines)
	}
	if len(lines[0].Ranges) != 1 || lines[0].Ranges[0] != (StyleRange{Start: 0, End: 5, Style: 0}) {
		t.Errorf("Ranges = %+v, want one range over 5 glyphs", lines[0].Ranges)
	}
}

func TestTextObjectVariables(t *testing.T) {
	o := NewTextObjectWithVariables("Score: {score}", testVars)
	o.SetClean()

	if !o.SetVariable("score", IntValue(42)) {
		t.Fatal("SetVariable(score) = false, want true")
	}
	if !o.NeedsUpdate() {
		t.Error("SetVariable() should mark the object dirty")
	}
	if o.Text() != "Score: 42" {
		t.Errorf("Text() = %q, want %q", o.Text(), "Score: 42")
	}
	if v, ok := o.Variable("score"); !ok || v != IntValue(42) {
		t.Errorf("Variable(score) = %v, %v", v, ok)
	}

	o.SetClean()
	if !o.SetVariable("score", IntValue(42)) {
		t.Error("SetVariable() with the same value should still report a known name")
	}
	if o.NeedsUpdate() {
		t.Error("setting the same value should not mark the object dirty")
	}

	if o.SetVariable("unknown", IntValue(1)) {
		t.Error("SetVariable(unknown) = true, want false")
	}
	if o.NeedsUpdate() {
		t.Error("an unknown variable should not mark the object dirty")
	}
}

func TestTextObjectDirtyTracking(t *testing.T) {
	tests := []struct {
		name   string
		same   func(o *TextObject)
		change func(o *TextObject)
	}{
		{
			"h align",
			func(o *TextObject) { o.SetHAlign(HAlignCenter) },
			func(o *TextObject) { o.SetHAlign(HAlignRight) },
		},
		{
			"v align",
			func(o *TextObject) { o.SetVAlign(VAlignMiddle) },
			func(o *TextObject) { o.SetVAlign(VAlignTop) },
		},
		{
			"bounds",
			func(o *TextObject) { o.SetBounds(math.Bounds{}) },
			func(o *TextObject) { o.SetBounds(math.NewBounds(0, 0, 10, 10)) },
		},
		{
			"auto line break",
			func(o *TextObject) { o.SetAutoLineBreak(false) },
			func(o *TextObject) { o.SetAutoLineBreak(true) },
		},
		{
			"size to fit",
			func(o *TextObject) { o.SetSizeToFit(false) },
			func(o *TextObject) { o.SetSizeToFit(true) },
		},
		{
			"hard breaks",
			func(o *TextObject) { o.SetHardBreaks(false) },
			func(o *TextObject) { o.SetHardBreaks(true) },
		},
		{
			"fold ascii",
			func(o *TextObject) { o.SetFoldASCII(false) },
			func(o *TextObject) { o.SetFoldASCII(true) },
		},
		{
			"segment",
			func(o *TextObject) {},
			func(o *TextObject) { o.AddSegment(NewTextSegment("more", 0)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewTextObject("text")
			o.SetClean()

			tt.same(o)
			if o.NeedsUpdate() {
				t.Error("setting the current value should not mark the object dirty")
			}

			tt.change(o)
			if !o.NeedsUpdate() {
				t.Error("a change should mark the object dirty")
			}
		})
	}
}

func TestTextObjectTesselateDoesNotClean(t *testing.T) {
	styles := testStyles(t, 1)
	o := NewTextObject("abc")
	o.Tesselate(styles)

	if !o.NeedsUpdate() {
		t.Error("Tesselate() must not clear the dirty flag")
	}
	o.SetClean()
	o.Tesselate(styles)
	if o.NeedsUpdate() {
		t.Error("Tesselate() must not set the dirty flag")
	}
}

func TestTextObjectLayoutCache(t *testing.T) {
	styles := testStyles(t, 1)
	o := NewTextObject("cached")

	first := o.Layout(styles)
	if o.Layout(styles) != first {
		t.Error("Layout() should be cached for the same styles")
	}

	other := []FontStyle{styles[0].WithColor(ColorRed)}
	second := o.Layout(other)
	if second == first {
		t.Error("Layout() should be recomputed for different styles")
	}

	o.SetHAlign(HAlignLeft)
	if o.Layout(other) == second {
		t.Error("Layout() should be recomputed after a change")
	}

	// Editing the caller's slice in place is a different style set.
	third := o.Layout(other)
	other[0].Size = 20
	if o.Layout(other) == third {
		t.Error("Layout() should notice styles changed in place")
	}
}

func TestTextObjectAutoLineBreak(t *testing.T) {
	styles := testStyles(t, 1)
	o := NewTextObject("cat dog")
	o.SetBounds(math.NewBounds(0, 0, 20, 100))

	if n := len(o.Lines(styles)); n != 1 {
		t.Errorf("without auto line break got %d lines, want 1", n)
	}

	o.SetAutoLineBreak(true)
	lines := o.Lines(styles)
	if len(lines) != 2 || lines[0].String() != "cat " || lines[1].String() != "dog" {
		t.Errorf("Lines() = %q, want [\"cat \" \"dog\"]", lines)
	}
}

func TestTextObjectSizeToFit(t *testing.T) {
	styles := []FontStyle{NewFontStyle(testFont(t)).WithSize(20)}
	o := NewTextObject("AAAAAAAAAA")
	o.SetBounds(math.NewBounds(0, 0, 50, 50))

	if l := o.Layout(styles); l.Scale != 1 || l.Width() != 100 {
		t.Errorf("without size to fit: scale %v width %v, want 1, 100", l.Scale, l.Width())
	}

	o.SetSizeToFit(true)
	l := o.Layout(styles)
	if l.Scale != 0.5 {
		t.Errorf("Scale = %v, want 0.5", l.Scale)
	}
	if l.Styles[0].Size != 10 {
		t.Errorf("effective size = %v, want 10", l.Styles[0].Size)
	}
	if styles[0].Size != 20 {
		t.Error("size to fit must not modify the caller's styles")
	}
	if l.Width() != 50 {
		t.Errorf("Width() = %v, want 50", l.Width())
	}

	m := o.Tesselate(styles)[0]
	for _, v := range m.Vertices {
		if v.Position[0] < 0 || v.Position[0] > 50 {
			t.Errorf("vertex x %v outside bounds", v.Position[0])
		}
	}
}

func TestTextObjectSizeToFitHeight(t *testing.T) {
	styles := []FontStyle{NewFontStyle(testFont(t)).WithSize(20)}
	o := NewTextObject("A\nA\nA\nA")
	o.SetHardBreaks(true)
	o.SetSizeToFit(true)
	o.SetBounds(math.NewBounds(0, 0, 100, 50))

	// Four lines of 25 need 100; the bounds hold 50.
	l := o.Layout(styles)
	if l.Scale != 0.5 {
		t.Errorf("Scale = %v, want 0.5", l.Scale)
	}
	if l.Height != 50 {
		t.Errorf("Height = %v, want 50", l.Height)
	}
}

func TestTextObjectSizeToFitNeverGrows(t *testing.T) {
	styles := testStyles(t, 1)
	o := NewTextObject("A")
	o.SetSizeToFit(true)
	o.SetBounds(math.NewBounds(0, 0, 1000, 1000))

	if l := o.Layout(styles); l.Scale != 1 {
		t.Errorf("Scale = %v, want 1", l.Scale)
	}
}

func TestTextObjectMaxStyle(t *testing.T) {
	o := NewTextObject("a")
	o.AddSegment(NewTextSegment("b", 3))
	o.AddSegment(NewTextSegment("c", 1))

	if o.MaxStyle() != 3 {
		t.Errorf("MaxStyle() = %d, want 3", o.MaxStyle())
	}
	if n := len(o.Segments()); n != 3 {
		t.Errorf("len(Segments()) = %d, want 3", n)
	}
}

func TestTextObjectStyleOutOfRange(t *testing.T) {
	styles := testStyles(t, 2)
	o := NewTextObject("a")
	o.AddSegment(NewTextSegment("b", 2))

	defer func() {
		if recover() == nil {
			t.Error("Tesselate() should panic when a segment's style is missing")
		}
	}()
	o.Tesselate(styles)
}

func TestParseAlign(t *testing.T) {
	for _, a := range []HAlign{HAlignLeft, HAlignCenter, HAlignRight} {
		got, err := ParseHAlign(a.String())
		if err != nil || got != a {
			t.Errorf("ParseHAlign(%q) = %v, %v", a.String(), got, err)
		}
	}
	for _, a := range []VAlign{VAlignTop, VAlignMiddle, VAlignBottom} {
		got, err := ParseVAlign(a.String())
		if err != nil || got != a {
			t.Errorf("ParseVAlign(%q) = %v, %v", a.String(), got, err)
		}
	}
	if _, err := ParseHAlign("justify"); err == nil {
		t.Error("ParseHAlign(justify) should fail")
	}
	if _, err := ParseVAlign("baseline"); err == nil {
		t.Error("ParseVAlign(baseline) should fail")
	}
}
