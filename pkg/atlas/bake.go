// Package atlas bakes coverage atlases for the text engine from TrueType
// and OpenType fonts.
//
// The baked description uses the same JSON layout as msdf-atlas-gen, with a
// top y-origin, so it loads through text.ParseFontData like any generated
// atlas.
package atlas

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"slices"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/textmesh/pkg/math"
	"github.com/Faultbox/textmesh/pkg/text"
)

// Sentinel errors for atlas baking.
var (
	// ErrAtlasFull is returned when the glyphs do not fit the maximum atlas size.
	ErrAtlasFull = errors.New("atlas: glyphs do not fit the atlas")

	// ErrInvalidOptions is returned for non-positive sizes.
	ErrInvalidOptions = errors.New("atlas: invalid options")
)

// NoPadding packs glyph cells edge to edge.
const NoPadding = -1

// Options controls baking. Zero fields take the defaults below.
type Options struct {
	// Size is the rasterization size in pixels per em. Default 32.
	Size float64
	// Width is the atlas width in pixels. Default 256.
	Width int
	// MaxHeight bounds the atlas height in pixels. Default 4096.
	MaxHeight int
	// Padding is the gap between glyph cells in pixels. Zero means the
	// default of 2; any negative value, such as NoPadding, means no gap.
	Padding int
	// Runes lists the characters to bake. Default: printable ASCII.
	Runes []rune
}

func (o Options) withDefaults() (Options, error) {
	if o.Size == 0 {
		o.Size = 32
	}
	if o.Width == 0 {
		o.Width = 256
	}
	if o.MaxHeight == 0 {
		o.MaxHeight = 4096
	}
	switch {
	case o.Padding == 0:
		o.Padding = 2
	case o.Padding < 0:
		o.Padding = 0
	}
	if o.Runes == nil {
		o.Runes = PrintableASCII()
	}
	if o.Size < 0 || o.Width < 0 || o.MaxHeight < 0 {
		return o, fmt.Errorf("%w: %+v", ErrInvalidOptions, o)
	}
	return o, nil
}

// PrintableASCII returns ' ' through '~'.
func PrintableASCII() []rune {
	runes := make([]rune, 0, 95)
	for r := rune(' '); r <= '~'; r++ {
		runes = append(runes, r)
	}
	return runes
}

// Result is a baked atlas.
type Result struct {
	// Name is the font family name, if the font has one.
	Name       string
	Image      *image.Alpha
	Descriptor text.Descriptor
	Font       *text.FontData
}

// WriteJSON writes the atlas description.
func (r *Result) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.Descriptor); err != nil {
		return fmt.Errorf("atlas: encoding description: %w", err)
	}
	return nil
}

// WritePNG writes the atlas image.
func (r *Result) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.Image); err != nil {
		return fmt.Errorf("atlas: encoding image: %w", err)
	}
	return nil
}

// Bake parses a TrueType or OpenType font and bakes it.
func Bake(data []byte, opts Options) (*Result, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("atlas: parsing font: %w", err)
	}
	return BakeFont(f, opts)
}

type bakedGlyph struct {
	r       rune
	advance fixed.Int26_6
	box     image.Rectangle // pixel box relative to the pen on the baseline, y-down
	at      image.Point     // top-left of the cell in the atlas
}

// BakeFont rasterizes opts.Runes into a softmask atlas. Runes the font has no
// glyph for are skipped; the font must provide '?'.
func BakeFont(f *opentype.Font, opts Options) (*Result, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    opts.Size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("atlas: creating face: %w", err)
	}
	defer face.Close()

	var buf sfnt.Buffer
	glyphs := make([]bakedGlyph, 0, len(opts.Runes))
	for _, r := range opts.Runes {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil || idx == 0 {
			continue
		}
		bounds, advance, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		glyphs = append(glyphs, bakedGlyph{
			r:       r,
			advance: advance,
			box: image.Rect(
				bounds.Min.X.Floor(), bounds.Min.Y.Floor(),
				bounds.Max.X.Ceil(), bounds.Max.Y.Ceil(),
			),
		})
	}

	// Tallest first keeps shelves tight.
	order := make([]int, len(glyphs))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return glyphs[b].box.Dy() - glyphs[a].box.Dy()
	})

	packer := newShelfPacker(opts.Width, opts.MaxHeight, opts.Padding)
	for _, i := range order {
		g := &glyphs[i]
		if g.box.Empty() {
			continue
		}
		x, y, ok := packer.allocate(g.box.Dx(), g.box.Dy())
		if !ok {
			return nil, fmt.Errorf("%w: %q at %vpx in %dx%d", ErrAtlasFull, g.r, opts.Size, opts.Width, opts.MaxHeight)
		}
		g.at = image.Pt(x, y)
	}

	height := nextPowerOfTwo(max(packer.usedHeight(), 1))
	img := image.NewAlpha(image.Rect(0, 0, opts.Width, height))

	drawer := &font.Drawer{Dst: img, Src: image.White, Face: face}
	for _, g := range glyphs {
		if g.box.Empty() {
			continue
		}
		drawer.Dot = fixed.P(g.at.X-g.box.Min.X, g.at.Y-g.box.Min.Y)
		drawer.DrawString(string(g.r))
	}

	metrics, err := f.Metrics(&buf, fixed.Int26_6(opts.Size*64), font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("atlas: reading metrics: %w", err)
	}

	desc := text.Descriptor{
		Atlas: text.Atlas{
			Type:    text.AtlasSoftmask,
			Size:    float32(opts.Size),
			Width:   uint32(opts.Width),
			Height:  uint32(height),
			YOrigin: text.YOriginTop,
		},
		Metrics: text.Metrics{
			EmSize:     1,
			LineHeight: em(metrics.Height, opts.Size),
			Ascender:   em(metrics.Ascent, opts.Size),
			Descender:  -em(metrics.Descent, opts.Size),
		},
		Glyphs: make([]text.SourceGlyph, 0, len(glyphs)),
	}
	if pos, thickness, ok := underline(f); ok {
		desc.Metrics.UnderlineY = pos
		desc.Metrics.UnderlineThickness = thickness
	}

	for _, g := range glyphs {
		sg := text.SourceGlyph{
			Unicode: uint32(g.r),
			Advance: em(g.advance, opts.Size),
		}
		if !g.box.Empty() {
			s := float32(opts.Size)
			sg.PlaneBounds = &math.Bounds{
				Left:   float32(g.box.Min.X) / s,
				Top:    float32(g.box.Min.Y) / s,
				Right:  float32(g.box.Max.X) / s,
				Bottom: float32(g.box.Max.Y) / s,
			}
			sg.AtlasBounds = &math.Bounds{
				Left:   float32(g.at.X),
				Top:    float32(g.at.Y),
				Right:  float32(g.at.X + g.box.Dx()),
				Bottom: float32(g.at.Y + g.box.Dy()),
			}
		}
		desc.Glyphs = append(desc.Glyphs, sg)
	}

	fd, err := text.NewFontData(desc)
	if err != nil {
		return nil, fmt.Errorf("atlas: %w", err)
	}

	name, _ := f.Name(&buf, sfnt.NameIDFamily)

	return &Result{
		Name:       name,
		Image:      img,
		Descriptor: desc,
		Font:       fd,
	}, nil
}

// underline returns the post table's underline position (negative below the
// baseline) and thickness in em units.
func underline(f *opentype.Font) (pos, thickness float32, ok bool) {
	post := f.PostTable()
	if post == nil || f.UnitsPerEm() == 0 {
		return 0, 0, false
	}
	upem := float32(f.UnitsPerEm())
	return float32(post.UnderlinePosition) / upem, float32(post.UnderlineThickness) / upem, true
}

func em(v fixed.Int26_6, size float64) float32 {
	return float32(float64(v) / 64 / size)
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
