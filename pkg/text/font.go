package text

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Faultbox/textmesh/pkg/math"
)

// AtlasType is the kind of image stored in a font atlas.
type AtlasType uint8

// Atlas types, named as msdf-atlas-gen names them.
const (
	AtlasHardmask AtlasType = iota
	AtlasSoftmask
	AtlasSDF
	AtlasPSDF
	AtlasMSDF
	AtlasMTSDF
)

var atlasTypeNames = [...]string{"hardmask", "softmask", "sdf", "psdf", "msdf", "mtsdf"}

// String returns the lower-case atlas type name.
func (t AtlasType) String() string {
	if int(t) < len(atlasTypeNames) {
		return atlasTypeNames[t]
	}
	return fmt.Sprintf("AtlasType(%d)", t)
}

// IsDistanceField reports whether the atlas stores distances rather than coverage.
func (t AtlasType) IsDistanceField() bool {
	return t >= AtlasSDF
}

// ParseAtlasType parses an atlas type name, ignoring case.
func ParseAtlasType(s string) (AtlasType, error) {
	for i, name := range atlasTypeNames {
		if strings.EqualFold(s, name) {
			return AtlasType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAtlasType, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t AtlasType) MarshalText() ([]byte, error) {
	if int(t) >= len(atlasTypeNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAtlasType, t)
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *AtlasType) UnmarshalText(b []byte) error {
	v, err := ParseAtlasType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// YOrigin tells which image edge atlas coordinates are measured from. It
// also fixes the orientation of glyph plane bounds: with YOriginBottom they
// are y-up, with YOriginTop they are y-down.
type YOrigin uint8

const (
	YOriginBottom YOrigin = iota
	YOriginTop
)

// String returns "bottom" or "top".
func (o YOrigin) String() string {
	switch o {
	case YOriginBottom:
		return "bottom"
	case YOriginTop:
		return "top"
	default:
		return fmt.Sprintf("YOrigin(%d)", o)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o YOrigin) MarshalText() ([]byte, error) {
	if o > YOriginTop {
		return nil, fmt.Errorf("%w: %d", ErrUnknownYOrigin, o)
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *YOrigin) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "bottom":
		*o = YOriginBottom
	case "top":
		*o = YOriginTop
	default:
		return fmt.Errorf("%w: %q", ErrUnknownYOrigin, b)
	}
	return nil
}

// Atlas describes the atlas texture.
type Atlas struct {
	Type                AtlasType `json:"type"`
	DistanceRange       float32   `json:"distanceRange"`
	DistanceRangeMiddle float32   `json:"distanceRangeMiddle"`
	Size                float32   `json:"size"`
	Width               uint32    `json:"width"`
	Height              uint32    `json:"height"`
	YOrigin             YOrigin   `json:"yOrigin"`
}

// UV converts a point in atlas pixels to texture coordinates with v measured
// from the first (top) image row. Atlases without dimensions return p as is.
func (a Atlas) UV(p math.Vec2) math.Vec2 {
	if a.Width == 0 || a.Height == 0 {
		return p
	}
	u := p.X / float32(a.Width)
	v := p.Y / float32(a.Height)
	if a.YOrigin == YOriginBottom {
		v = 1 - v
	}
	return math.Vec2{X: u, Y: v}
}

// Metrics are the font's vertical metrics in em units.
type Metrics struct {
	EmSize             float32 `json:"emSize"`
	LineHeight         float32 `json:"lineHeight"`
	Ascender           float32 `json:"ascender"`
	Descender          float32 `json:"descender"`
	UnderlineY         float32 `json:"underlineY"`
	UnderlineThickness float32 `json:"underlineThickness"`
}

// SourceGlyph is a glyph as stored in an atlas description.
type SourceGlyph struct {
	Unicode     uint32       `json:"unicode"`
	Advance     float32      `json:"advance"`
	PlaneBounds *math.Bounds `json:"planeBounds,omitempty"`
	AtlasBounds *math.Bounds `json:"atlasBounds,omitempty"`
}

// Descriptor is the atlas description format written by msdf-atlas-gen
// (and by pkg/atlas).
type Descriptor struct {
	Atlas   Atlas         `json:"atlas"`
	Metrics Metrics       `json:"metrics"`
	Glyphs  []SourceGlyph `json:"glyphs"`
}

// Glyph is the layout data for one ASCII character. PlaneBounds is the
// quad in em units relative to the pen position on the baseline; AtlasBounds
// is the matching rectangle in atlas pixels. A glyph missing either bound
// (a space, for instance) only advances the pen.
type Glyph struct {
	Advance     float32
	PlaneBounds *math.Bounds
	AtlasBounds *math.Bounds
}

// Renderable reports whether the glyph produces a quad.
func (g Glyph) Renderable() bool {
	return g.PlaneBounds != nil && g.AtlasBounds != nil
}

// FontData is an immutable font: atlas description, metrics and a glyph for
// every ASCII code point.
type FontData struct {
	Atlas   Atlas
	Metrics Metrics
	Glyphs  [128]Glyph
}

// NewFontData builds font data from a description. Glyphs outside ASCII are
// dropped and every ASCII code point the description lacks is filled with
// the '?' glyph. A description without '?' yields ErrMissingFallbackGlyph.
func NewFontData(desc Descriptor) (*FontData, error) {
	var (
		glyphs  [128]Glyph
		present [128]bool
	)

	for _, g := range desc.Glyphs {
		if g.Unicode >= 128 {
			continue
		}
		glyphs[g.Unicode] = Glyph{
			Advance:     g.Advance,
			PlaneBounds: copyBounds(g.PlaneBounds),
			AtlasBounds: copyBounds(g.AtlasBounds),
		}
		present[g.Unicode] = true
	}

	if !present['?'] {
		return nil, ErrMissingFallbackGlyph
	}

	fallback := glyphs['?']
	for i := range glyphs {
		if !present[i] {
			glyphs[i] = fallback
		}
	}

	return &FontData{
		Atlas:   desc.Atlas,
		Metrics: desc.Metrics,
		Glyphs:  glyphs,
	}, nil
}

// ParseFontData decodes an msdf-atlas-gen JSON description.
func ParseFontData(data []byte) (*FontData, error) {
	var desc Descriptor
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("text: decoding font description: %w", err)
	}
	return NewFontData(desc)
}

// MustParseFontData is like ParseFontData but panics on error.
func MustParseFontData(data []byte) *FontData {
	f, err := ParseFontData(data)
	if err != nil {
		panic(err)
	}
	return f
}

// LoadFontData reads and decodes a JSON description from disk.
func LoadFontData(path string) (*FontData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: reading font description: %w", err)
	}
	f, err := ParseFontData(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Glyph returns the glyph for r. Code points outside ASCII resolve to '?'.
func (f *FontData) Glyph(r rune) Glyph {
	if r < 0 || r >= 128 {
		return f.Glyphs['?']
	}
	return f.Glyphs[r]
}

func copyBounds(b *math.Bounds) *math.Bounds {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}
