package text

import (
	"reflect"
	"testing"

	"github.com/Faultbox/textmesh/pkg/math"
)

func layoutObject(t *testing.T, text string, h HAlign, v VAlign) *TextObject {
	t.Helper()
	o := NewTextObject(text)
	o.SetBounds(math.NewBounds(0, 0, 100, 50))
	o.SetHAlign(h)
	o.SetVAlign(v)
	return o
}

func TestTesselateBoundsCoordsFollowPlacement(t *testing.T) {
	styles := testStyles(t, 1)
	topLeft := layoutObject(t, "A", HAlignLeft, VAlignTop).Tesselate(styles)[0]
	placed := layoutObject(t, "A", HAlignRight, VAlignBottom).Tesselate(styles)[0]

	for i, v := range placed.Vertices {
		// Bounds are 100x50 at the origin, so BoundsCoords is the placed
		// position scaled into the unit square.
		want := [2]float32{v.Position[0] / 100, v.Position[1] / 50}
		if !approx2(v.BoundsCoords, want) {
			t.Errorf("vertex %d BoundsCoords = %v, want %v", i, v.BoundsCoords, want)
		}
		if approx2(v.BoundsCoords, topLeft.Vertices[i].BoundsCoords) {
			t.Errorf("vertex %d BoundsCoords %v did not move with alignment", i, v.BoundsCoords)
		}
	}
	if got := placed.Vertices[2].BoundsCoords[0]; got < 0.999 {
		t.Errorf("right-aligned top-right x = %v, want 1", got)
	}
	if got := placed.Vertices[0].BoundsCoords[1]; got < 0.999 {
		t.Errorf("bottom-aligned bottom-left y = %v, want 1", got)
	}
}

func TestTesselateSingleGlyph(t *testing.T) {
	styles := testStyles(t, 1)
	meshes := layoutObject(t, "A", HAlignLeft, VAlignTop).Tesselate(styles)

	if len(meshes) != 1 {
		t.Fatalf("len(meshes) = %d, want 1", len(meshes))
	}
	m := meshes[0]
	if len(m.Vertices) != 4 || len(m.Indices) != 6 {
		t.Fatalf("mesh has %d vertices, %d indices, want 4, 6", len(m.Vertices), len(m.Indices))
	}

	// Line 0 spans y 0..12.5, baseline at 12.5 - 2.5. The glyph covers
	// 0.75 em above and 0.25 em below the baseline.
	wantPos := [][2]float32{{0, 12.5}, {0, 2.5}, {5, 2.5}, {5, 12.5}}
	// 'A' sits in atlas cell (0, 2): pixels x 0..16, y 32..48 from the bottom.
	wantAtlas := [][2]float32{{0, 0.75}, {0, 0.625}, {0.0625, 0.625}, {0.0625, 0.75}}
	wantGlyph := [][2]float32{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	wantBounds := [][2]float32{{0, 0.25}, {0, 0.05}, {0.05, 0.05}, {0.05, 0.25}}

	for i, v := range m.Vertices {
		if !approx2(v.Position, wantPos[i]) {
			t.Errorf("vertex %d Position = %v, want %v", i, v.Position, wantPos[i])
		}
		if !approx2(v.AtlasCoords, wantAtlas[i]) {
			t.Errorf("vertex %d AtlasCoords = %v, want %v", i, v.AtlasCoords, wantAtlas[i])
		}
		if v.GlyphCoords != wantGlyph[i] {
			t.Errorf("vertex %d GlyphCoords = %v, want %v", i, v.GlyphCoords, wantGlyph[i])
		}
		if !approx2(v.BoundsCoords, wantBounds[i]) {
			t.Errorf("vertex %d BoundsCoords = %v, want %v", i, v.BoundsCoords, wantBounds[i])
		}
		if v.Color != ColorWhite.Array() {
			t.Errorf("vertex %d Color = %v, want white", i, v.Color)
		}
	}

	if want := []uint32{0, 1, 2, 0, 2, 3}; !reflect.DeepEqual(m.Indices, want) {
		t.Errorf("Indices = %v, want %v", m.Indices, want)
	}
}

func TestTesselateIndicesOffsetPerQuad(t *testing.T) {
	styles := testStyles(t, 1)
	m := layoutObject(t, "ABC", HAlignLeft, VAlignTop).Tesselate(styles)[0]

	want := []uint32{
		0, 1, 2, 0, 2, 3,
		4, 5, 6, 4, 6, 7,
		8, 9, 10, 8, 10, 11,
	}
	if !reflect.DeepEqual(m.Indices, want) {
		t.Errorf("Indices = %v, want %v", m.Indices, want)
	}
	if m.Quads() != 3 {
		t.Errorf("Quads() = %d, want 3", m.Quads())
	}
}

func TestTesselateSkipsWhitespace(t *testing.T) {
	styles := testStyles(t, 1)
	m := layoutObject(t, "A B\tC", HAlignLeft, VAlignTop).Tesselate(styles)[0]

	if m.Quads() != 3 {
		t.Fatalf("Quads() = %d, want 3", m.Quads())
	}
	// Whitespace still advances the pen: A at 0, space 2.5, B at 7.5,
	// tab is a '?' glyph of 5, C at 17.5.
	xs := []float32{m.Vertices[0].Position[0], m.Vertices[4].Position[0], m.Vertices[8].Position[0]}
	if want := []float32{0, 7.5, 17.5}; !reflect.DeepEqual(xs, want) {
		t.Errorf("glyph x = %v, want %v", xs, want)
	}
}

func TestTesselateHorizontalAlign(t *testing.T) {
	styles := testStyles(t, 1)

	// "AB" is 10 wide inside 100.
	tests := []struct {
		align HAlign
		want  float32
	}{
		{HAlignLeft, 0},
		{HAlignCenter, 45},
		{HAlignRight, 90},
	}

	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			m := layoutObject(t, "AB", tt.align, VAlignTop).Tesselate(styles)[0]
			if got := m.Vertices[0].Position[0]; got != tt.want {
				t.Errorf("first glyph x = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTesselateHorizontalAlignOffsetBounds(t *testing.T) {
	styles := testStyles(t, 1)
	o := layoutObject(t, "AB", HAlignCenter, VAlignTop)
	o.SetBounds(math.NewBounds(200, 0, 300, 50))

	m := o.Tesselate(styles)[0]
	if got := m.Vertices[0].Position[0]; got != 245 {
		t.Errorf("first glyph x = %v, want 245", got)
	}
}

func TestTesselateVerticalAlign(t *testing.T) {
	styles := testStyles(t, 1)

	// One line of height 12.5 inside 50; glyph top is 2.5 below the line top.
	tests := []struct {
		align   VAlign
		lineTop float32
	}{
		{VAlignTop, 0},
		{VAlignMiddle, 18.75},
		{VAlignBottom, 37.5},
	}

	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			m := layoutObject(t, "A", HAlignLeft, tt.align).Tesselate(styles)[0]
			if got := m.Vertices[1].Position[1]; got != tt.lineTop+2.5 {
				t.Errorf("glyph top = %v, want %v", got, tt.lineTop+2.5)
			}
		})
	}
}

func TestTesselateMiddleHonorsBoundsTop(t *testing.T) {
	styles := testStyles(t, 1)
	o := layoutObject(t, "A", HAlignLeft, VAlignMiddle)
	o.SetBounds(math.NewBounds(0, 100, 100, 150))

	m := o.Tesselate(styles)[0]
	if got := m.Vertices[1].Position[1]; got != 121.25 {
		t.Errorf("glyph top = %v, want 121.25", got)
	}
}

func TestTesselateDescendsOncePerLine(t *testing.T) {
	styles := testStyles(t, 2)
	o := layoutObject(t, "A ", HAlignLeft, VAlignTop)
	o.AddSegment(NewTextSegment("B", 1))
	o.AddSegment(NewTextSegment("\nC", 0))
	o.SetHardBreaks(true)

	meshes := o.Tesselate(styles)

	// Second line starts at 12.5 even though the first line had two ranges.
	c := meshes[0].Vertices[4]
	if c.Position[1] != 12.5+12.5 {
		t.Errorf("C bottom-left y = %v, want 25", c.Position[1])
	}
	if c.Position[0] != 0 {
		t.Errorf("C x = %v, want 0", c.Position[0])
	}

	b := meshes[1].Vertices[0]
	if b.Position != [2]float32{7.5, 12.5} {
		t.Errorf("B bottom-left = %v, want [7.5 12.5]", b.Position)
	}
	if b.Color != ColorRed.Array() {
		t.Errorf("B color = %v, want red", b.Color)
	}
}

func TestTesselateMeshPerStyle(t *testing.T) {
	styles := testStyles(t, 3)
	o := layoutObject(t, "AA", HAlignLeft, VAlignTop)
	o.AddSegment(NewTextSegment("C", 2))

	meshes := o.Tesselate(styles)
	if len(meshes) != 3 {
		t.Fatalf("len(meshes) = %d, want 3", len(meshes))
	}
	for i, m := range meshes {
		if m.Style != i {
			t.Errorf("meshes[%d].Style = %d", i, m.Style)
		}
	}
	if meshes[0].Quads() != 2 || !meshes[1].Empty() || meshes[2].Quads() != 1 {
		t.Errorf("quads per style = %d, %d, %d, want 2, 0, 1",
			meshes[0].Quads(), meshes[1].Quads(), meshes[2].Quads())
	}
	if cap(meshes[0].Vertices) != 8 || cap(meshes[0].Indices) != 12 {
		t.Errorf("mesh 0 capacity = %d, %d, want 8, 12", cap(meshes[0].Vertices), cap(meshes[0].Indices))
	}
}

func TestTesselateNonASCIIUsesFallback(t *testing.T) {
	styles := testStyles(t, 1)
	m := layoutObject(t, "é", HAlignLeft, VAlignTop).Tesselate(styles)[0]

	if m.Quads() != 1 {
		t.Fatalf("Quads() = %d, want 1", m.Quads())
	}
	// '?' is glyph 30 in the atlas grid: column 14, row 1.
	if got := m.Vertices[0].AtlasCoords[0]; got != 14*16/256.0 {
		t.Errorf("atlas u = %v, want %v", got, 14*16/256.0)
	}
}

func TestTesselateTopOriginFont(t *testing.T) {
	desc := testDescriptor()
	desc.Atlas.YOrigin = YOriginTop
	for i := range desc.Glyphs {
		if pb := desc.Glyphs[i].PlaneBounds; pb != nil {
			// y-down plane bounds
			*pb = math.Bounds{Left: 0, Top: -0.75, Right: 0.5, Bottom: 0.25}
		}
	}
	font, err := NewFontData(desc)
	if err != nil {
		t.Fatal(err)
	}
	styles := []FontStyle{NewFontStyle(font).WithSize(10)}

	m := layoutObject(t, "A", HAlignLeft, VAlignTop).Tesselate(styles)[0]
	wantPos := [][2]float32{{0, 12.5}, {0, 2.5}, {5, 2.5}, {5, 12.5}}
	for i, v := range m.Vertices {
		if !approx2(v.Position, wantPos[i]) {
			t.Errorf("vertex %d Position = %v, want %v", i, v.Position, wantPos[i])
		}
	}
}

func TestTesselateTotalHeightMatchesLines(t *testing.T) {
	styles := testStyles(t, 2)
	styles[1] = styles[1].WithSize(30)

	o := layoutObject(t, "one two three four five", HAlignLeft, VAlignBottom)
	o.AddSegment(NewTextSegment(" SIX", 1))
	o.SetAutoLineBreak(true)
	o.SetBounds(math.NewBounds(0, 0, 40, 200))

	lines := o.Lines(styles)
	total := TotalHeight(lines)

	var sum float32
	for _, l := range lines {
		sum += l.Height
	}
	if sum != total || o.Layout(styles).Height != total {
		t.Errorf("TotalHeight() = %v, Layout.Height = %v, sum = %v", total, o.Layout(styles).Height, sum)
	}

	// Bottom alignment puts the last line's bottom on the bounds.
	last := lines[len(lines)-1]
	meshes := o.Tesselate(styles)
	six := meshes[1].Vertices
	if len(six) == 0 {
		t.Fatal("style 1 has no geometry")
	}
	descender := styles[1].Descender()
	baseline := float32(200) + descender
	if !approx(six[0].Position[1], baseline+0.25*30) {
		t.Errorf("last line glyph bottom = %v, want %v (line height %v)", six[0].Position[1], baseline+0.25*30, last.Height)
	}
}

func TestTesselateFreeFunction(t *testing.T) {
	styles := testStyles(t, 1)
	lines := BuildLines([]TextSegment{NewTextSegment("AB", 0)}, styles, nil, 0)

	meshes := Tesselate(lines, styles, Placement{
		Bounds: math.NewBounds(0, 0, 10, 12.5),
		HAlign: HAlignLeft,
		VAlign: VAlignTop,
	})
	if meshes[0].Quads() != 2 {
		t.Errorf("Quads() = %d, want 2", meshes[0].Quads())
	}

	defer func() {
		if recover() == nil {
			t.Error("Tesselate() should panic for a range outside the style slice")
		}
	}()
	Tesselate(lines, nil, Placement{})
}

func TestPlacementLineBoxes(t *testing.T) {
	lines := []Line{{Width: 10, Height: 12.5}, {Width: 20, Height: 12.5}}

	tests := []struct {
		name   string
		halign HAlign
		valign VAlign
		want   []math.Bounds
	}{
		{
			"left top", HAlignLeft, VAlignTop,
			[]math.Bounds{{Left: 0, Top: 0, Right: 10, Bottom: 12.5}, {Left: 0, Top: 12.5, Right: 20, Bottom: 25}},
		},
		{
			"center middle", HAlignCenter, VAlignMiddle,
			[]math.Bounds{{Left: 45, Top: 37.5, Right: 55, Bottom: 50}, {Left: 40, Top: 50, Right: 60, Bottom: 62.5}},
		},
		{
			"right bottom", HAlignRight, VAlignBottom,
			[]math.Bounds{{Left: 90, Top: 75, Right: 100, Bottom: 87.5}, {Left: 80, Top: 87.5, Right: 100, Bottom: 100}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Placement{Bounds: math.NewBounds(0, 0, 100, 100), HAlign: tt.halign, VAlign: tt.valign}
			got := p.LineBoxes(lines)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("box %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
