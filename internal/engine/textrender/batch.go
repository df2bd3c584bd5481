package textrender

import (
	"github.com/Faultbox/textmesh/pkg/text"
)

// Batch is one style's mesh flattened into the float layout the text
// program reads.
type Batch struct {
	Style    int
	Vertices []float32
	Indices  []uint32
}

// Interleave appends vertices to dst in attribute order: position, color,
// atlas, glyph and bounds coordinates.
func Interleave(dst []float32, vertices []text.Vertex) []float32 {
	for _, v := range vertices {
		dst = append(dst,
			v.Position[0], v.Position[1],
			v.Color[0], v.Color[1], v.Color[2], v.Color[3],
			v.AtlasCoords[0], v.AtlasCoords[1],
			v.GlyphCoords[0], v.GlyphCoords[1],
			v.BoundsCoords[0], v.BoundsCoords[1],
		)
	}
	return dst
}

// Batches flattens meshes, reusing the buffers of prev where possible.
func Batches(meshes []text.Mesh, prev []Batch) []Batch {
	out := prev[:0]
	for i, m := range meshes {
		var b Batch
		if i < len(prev) {
			b = prev[i]
		}
		b.Style = m.Style
		b.Vertices = Interleave(b.Vertices[:0], m.Vertices)
		b.Indices = append(b.Indices[:0], m.Indices...)
		out = append(out, b)
	}
	return out
}

// Prepare re-tesselates obj when it needs an update and acknowledges the
// change with SetClean. It returns prev and false when nothing changed.
func Prepare(obj *text.TextObject, styles []text.FontStyle, prev []Batch) ([]Batch, bool) {
	if !obj.NeedsUpdate() {
		return prev, false
	}
	return Rebuild(obj, styles, prev), true
}

// Rebuild tesselates obj regardless of its dirty flag and marks it clean.
// Callers use it when the styles changed but the object did not.
func Rebuild(obj *text.TextObject, styles []text.FontStyle, prev []Batch) []Batch {
	batches := Batches(obj.Tesselate(styles), prev)
	obj.SetClean()
	return batches
}

// Quads returns the glyph quad count of b.
func (b Batch) Quads() int {
	return len(b.Indices) / 6
}
