package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrMissingFallbackGlyph is returned when a font's glyph set has no '?'
	// glyph to back-fill missing ASCII code points with. A font in this state
	// would silently render broken text, so loading it must fail.
	ErrMissingFallbackGlyph = errors.New("text: font has no '?' fallback glyph")

	// ErrUnknownAtlasType is returned for an atlas type outside the known set.
	ErrUnknownAtlasType = errors.New("text: unknown atlas type")

	// ErrUnknownYOrigin is returned for a y-origin other than top or bottom.
	ErrUnknownYOrigin = errors.New("text: unknown y origin")

	// ErrUnsupportedValue is returned by ValueOf for Go types that have no
	// interpolation value equivalent.
	ErrUnsupportedValue = errors.New("text: unsupported interpolation value type")
)
