package text

// FontStyle is a font at a size and color. Font points into a registry the
// caller owns; many styles may share one FontData.
type FontStyle struct {
	Font  *FontData
	Size  float32
	Color Color
}

// NewFontStyle returns a white style of size 1.
func NewFontStyle(font *FontData) FontStyle {
	return FontStyle{
		Font:  font,
		Size:  1,
		Color: ColorWhite,
	}
}

// WithSize returns a copy with a different size.
func (s FontStyle) WithSize(size float32) FontStyle {
	s.Size = size
	return s
}

// WithColor returns a copy with a different color.
func (s FontStyle) WithColor(c Color) FontStyle {
	s.Color = c
	return s
}

// LineHeight returns the scaled line height.
func (s FontStyle) LineHeight() float32 {
	return s.Font.Metrics.LineHeight * s.Size
}

// Descender returns the scaled descender. It is negative for fonts whose
// glyphs reach below the baseline.
func (s FontStyle) Descender() float32 {
	return s.Font.Metrics.Descender * s.Size
}

// Ascender returns the scaled ascender.
func (s FontStyle) Ascender() float32 {
	return s.Font.Metrics.Ascender * s.Size
}

// Width returns the advance width of str. Placeholders are not resolved.
func (s FontStyle) Width(str string) float32 {
	var w float32
	for _, r := range str {
		w += s.Font.Glyph(r).Advance
	}
	return w * s.Size
}

func (s FontStyle) runeWidth(r rune) float32 {
	return s.Font.Glyph(r).Advance * s.Size
}
