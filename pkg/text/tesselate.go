package text

import (
	"fmt"

	"github.com/Faultbox/textmesh/pkg/math"
)

// Vertex is one corner of a glyph quad.
//
// Position is in layout space (y-down). AtlasCoords are normalized texture
// coordinates with v measured from the atlas's first row. GlyphCoords are
// (0,0) at the glyph's bottom-left and (1,1) at its top-right. BoundsCoords
// place the corner within the text object's bounds, (0,0) top-left.
type Vertex struct {
	Position     [2]float32
	Color        [4]float32
	AtlasCoords  [2]float32
	GlyphCoords  [2]float32
	BoundsCoords [2]float32
}

// VertexFloats is the number of float32 values in a Vertex.
const VertexFloats = 2 + 4 + 2 + 2 + 2

// Mesh is the geometry drawn with one style: four vertices and six
// indices per visible glyph.
type Mesh struct {
	Style    int
	Vertices []Vertex
	Indices  []uint32
}

// Empty reports whether the mesh has nothing to draw.
func (m Mesh) Empty() bool {
	return len(m.Indices) == 0
}

// Quads returns the number of glyph quads in the mesh.
func (m Mesh) Quads() int {
	return len(m.Vertices) / 4
}

// Placement positions laid out lines inside a rectangle.
type Placement struct {
	Bounds math.Bounds
	HAlign HAlign
	VAlign VAlign
}

// start returns the top of the text block.
func (p Placement) start(total float32) float32 {
	switch p.VAlign {
	case VAlignTop:
		return p.Bounds.Top
	case VAlignBottom:
		return p.Bounds.Bottom - total
	default:
		return p.Bounds.Top + (p.Bounds.Height()-total)/2
	}
}

// lineStart returns the x of the first glyph of a line.
func (p Placement) lineStart(width float32) float32 {
	switch p.HAlign {
	case HAlignLeft:
		return p.Bounds.Left
	case HAlignRight:
		return p.Bounds.Left + p.Bounds.Width() - width
	default:
		return p.Bounds.Left + (p.Bounds.Width()-width)/2
	}
}

// LineBoxes returns the rectangle each line occupies once placed.
func (p Placement) LineBoxes(lines []Line) []math.Bounds {
	boxes := make([]math.Bounds, len(lines))
	cursorY := p.start(TotalHeight(lines))
	for i, line := range lines {
		left := p.lineStart(line.Width)
		boxes[i] = math.Bounds{Left: left, Top: cursorY, Right: left + line.Width, Bottom: cursorY + line.Height}
		cursorY += line.Height
	}
	return boxes
}

// TotalHeight returns the sum of the line heights.
func TotalHeight(lines []Line) float32 {
	var h float32
	for _, l := range lines {
		h += l.Height
	}
	return h
}

// Tesselate turns lines into one mesh per style. The result has len(styles)
// meshes and mesh i always holds the geometry of styles[i], empty when no
// glyph uses it. A range whose style does not index styles panics.
func Tesselate(lines []Line, styles []FontStyle, p Placement) []Mesh {
	counts := make([]int, len(styles))
	for _, line := range lines {
		for _, r := range line.Ranges {
			if r.Style < 0 || r.Style >= len(styles) {
				panic(fmt.Sprintf("text: line range uses style %d, but only %d styles were given", r.Style, len(styles)))
			}
			for _, g := range line.Glyphs[r.Start:r.End] {
				if !isSpaceRune(g) {
					counts[r.Style]++
				}
			}
		}
	}

	meshes := make([]Mesh, len(styles))
	for i, n := range counts {
		meshes[i] = Mesh{
			Style:    i,
			Vertices: make([]Vertex, 0, n*4),
			Indices:  make([]uint32, 0, n*6),
		}
	}

	cursorY := p.start(TotalHeight(lines))

	for _, line := range lines {
		lineBottom := cursorY + line.Height
		cursorX := p.lineStart(line.Width)

		for _, r := range line.Ranges {
			style := styles[r.Style]
			mesh := &meshes[r.Style]
			baseline := lineBottom + style.Descender()

			for _, ch := range line.Glyphs[r.Start:r.End] {
				glyph := style.Font.Glyph(ch)
				if !isSpaceRune(ch) && glyph.Renderable() {
					emitQuad(mesh, style, glyph, cursorX, baseline, p.Bounds)
				}
				cursorX += glyph.Advance * style.Size
			}
		}

		cursorY += line.Height
	}

	return meshes
}

// emitQuad appends a glyph's corners in bottom-left, top-left, top-right,
// bottom-right order and the two triangles covering them.
func emitQuad(mesh *Mesh, style FontStyle, glyph Glyph, x, baseline float32, container math.Bounds) {
	atlas := style.Font.Atlas

	// Plane bounds are y-up for bottom-origin atlases; layout space is y-down.
	sy := style.Size
	if atlas.YOrigin == YOriginBottom {
		sy = -style.Size
	}
	quad := glyph.PlaneBounds.Transformed(x, baseline, style.Size, sy)
	rel := quad.NormalizedWithin(container)
	ab := *glyph.AtlasBounds
	color := style.Color.Array()

	corners := [4]struct {
		pos, atlas, glyph, bounds math.Vec2
	}{
		{quad.BottomLeft(), ab.BottomLeft(), math.Vec2{X: 0, Y: 0}, rel.BottomLeft()},
		{quad.TopLeft(), ab.TopLeft(), math.Vec2{X: 0, Y: 1}, rel.TopLeft()},
		{quad.TopRight(), ab.TopRight(), math.Vec2{X: 1, Y: 1}, rel.TopRight()},
		{quad.BottomRight(), ab.BottomRight(), math.Vec2{X: 1, Y: 0}, rel.BottomRight()},
	}

	base := uint32(len(mesh.Vertices))
	for _, c := range corners {
		mesh.Vertices = append(mesh.Vertices, Vertex{
			Position:     c.pos.Array(),
			Color:        color,
			AtlasCoords:  atlas.UV(c.atlas).Array(),
			GlyphCoords:  c.glyph.Array(),
			BoundsCoords: c.bounds.Array(),
		})
	}
	mesh.Indices = append(mesh.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

func isSpaceRune(r rune) bool {
	return r < 128 && isASCIISpace(byte(r))
}
