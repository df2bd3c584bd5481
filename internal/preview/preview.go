// Package preview draws the geometry of a text object as a PDF wireframe.
package preview

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/Faultbox/textmesh/pkg/math"
	"github.com/Faultbox/textmesh/pkg/text"
)

// Options controls the page produced by Render.
type Options struct {
	// Scale converts layout units to millimetres.
	Scale float64
	// Margin around the drawing, in millimetres.
	Margin     float64
	Title      string
	ShowLines  bool
	ShowBounds bool
}

// DefaultOptions maps one layout unit to one 96 DPI pixel.
func DefaultOptions() Options {
	return Options{
		Scale:      25.4 / 96,
		Margin:     5,
		ShowLines:  true,
		ShowBounds: true,
	}
}

var (
	boundsColor = canvas.Hex("#888888")
	lineColor   = canvas.Hex("#3366cc")
	transparent = color.RGBA{0, 0, 0, 0}
)

const strokeWidth = 0.1

// Scene is the geometry Render draws, in layout units.
type Scene struct {
	Bounds math.Bounds
	Lines  []math.Bounds
	Meshes []text.Mesh
}

// Capture lays out and tesselates obj. It leaves the dirty flag untouched.
func Capture(obj *text.TextObject, styles []text.FontStyle) Scene {
	l := obj.Layout(styles)
	return Scene{
		Bounds: obj.Bounds(),
		Lines:  obj.Placement().LineBoxes(l.Lines),
		Meshes: obj.Tesselate(styles),
	}
}

// Frame returns the area covering everything in the scene.
func (s Scene) Frame() math.Bounds {
	frame := s.Bounds
	for _, b := range s.Lines {
		frame = frame.Union(b)
	}
	for _, m := range s.Meshes {
		for q := 0; q < m.Quads(); q++ {
			frame = frame.Union(quadBounds(m.Vertices[q*4 : q*4+4]))
		}
	}
	return frame
}

// Render writes a one page PDF of obj laid out with styles.
func Render(w io.Writer, obj *text.TextObject, styles []text.FontStyle, opts Options) error {
	return RenderScene(w, Capture(obj, styles), opts)
}

// RenderScene writes a one page PDF of s.
func RenderScene(w io.Writer, s Scene, opts Options) error {
	if opts.Scale <= 0 {
		return fmt.Errorf("preview: scale must be positive, got %v", opts.Scale)
	}

	frame := s.Frame()
	width := float64(frame.Width())*opts.Scale + 2*opts.Margin
	height := float64(frame.Height())*opts.Scale + 2*opts.Margin
	if width <= 0 || height <= 0 {
		return fmt.Errorf("preview: nothing to draw")
	}

	// page coordinates in millimetres, origin top-left
	at := func(x, y float32) (float64, float64) {
		return float64(x-frame.Left)*opts.Scale + opts.Margin, float64(y-frame.Top)*opts.Scale + opts.Margin
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, width, height, nil)
	writer.SetInfo(opts.Title, "text layout wireframe", "", "", "textmesh")

	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)
	ctx.SetFillColor(transparent)
	ctx.SetStrokeWidth(strokeWidth)

	if opts.ShowBounds && !s.Bounds.IsEmpty() {
		ctx.SetStrokeColor(boundsColor)
		x, y := at(s.Bounds.Left, s.Bounds.Top)
		ctx.DrawPath(x, y, canvas.Rectangle(float64(s.Bounds.Width())*opts.Scale, float64(s.Bounds.Height())*opts.Scale))
	}

	if opts.ShowLines {
		ctx.SetStrokeColor(lineColor)
		for _, b := range s.Lines {
			x, y := at(b.Left, b.Top)
			ctx.DrawPath(x, y, canvas.Rectangle(float64(b.Width())*opts.Scale, float64(b.Height())*opts.Scale))
		}
	}

	for _, m := range s.Meshes {
		for q := 0; q < m.Quads(); q++ {
			quad := m.Vertices[q*4 : q*4+4]
			ctx.SetStrokeColor(vertexColor(quad[0]))

			p := &canvas.Path{}
			x0, y0 := at(quad[0].Position[0], quad[0].Position[1])
			p.MoveTo(0, 0)
			for _, v := range quad[1:] {
				x, y := at(v.Position[0], v.Position[1])
				p.LineTo(x-x0, y-y0)
			}
			p.Close()
			ctx.DrawPath(x0, y0, p)
		}
	}

	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return fmt.Errorf("preview: writing PDF: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func quadBounds(quad []text.Vertex) math.Bounds {
	b := math.Bounds{
		Left: quad[0].Position[0], Top: quad[0].Position[1],
		Right: quad[0].Position[0], Bottom: quad[0].Position[1],
	}
	for _, v := range quad[1:] {
		b = b.Union(math.Bounds{Left: v.Position[0], Top: v.Position[1], Right: v.Position[0], Bottom: v.Position[1]})
	}
	return b
}

// vertexColor makes white glyphs visible on a white page.
func vertexColor(v text.Vertex) color.RGBA {
	c := v.Color
	if c[0] > 0.9 && c[1] > 0.9 && c[2] > 0.9 {
		return color.RGBA{0, 0, 0, 255}
	}
	to8 := func(f float32) uint8 { return uint8(max(0, min(f, 1))*255 + 0.5) }
	return color.RGBA{to8(c[0]), to8(c[1]), to8(c[2]), 255}
}
